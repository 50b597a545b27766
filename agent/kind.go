package agent

import "strings"

// Kind identifies one of the statically known agents. It is a closed set;
// identifiers outside it are rejected by ParseKind at the boundary.
type Kind int

const (
	// KindProgress analyzes the user's progress and suggests next steps.
	KindProgress Kind = iota
	// KindSummarize produces a concise summary of the conversation so far.
	KindSummarize
)

// Kinds returns every known agent kind in presentation order.
func Kinds() []Kind { return []Kind{KindProgress, KindSummarize} }

// ParseKind normalizes an identifier (trim whitespace, lowercase) and maps
// it onto the closed Kind set. The boolean reports whether the identifier
// is known.
func ParseKind(id string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "progress":
		return KindProgress, true
	case "summarize":
		return KindSummarize, true
	default:
		return 0, false
	}
}

// String returns the identifier used as registry key and producer tag.
func (k Kind) String() string {
	switch k {
	case KindProgress:
		return "progress"
	case KindSummarize:
		return "summarize"
	default:
		return "unknown"
	}
}

// Description returns the short human-readable description shown by the
// agent listing endpoint.
func (k Kind) Description() string {
	switch k {
	case KindProgress:
		return "Analyzes progress and suggests next steps"
	case KindSummarize:
		return "Summarizes your text concisely"
	default:
		return ""
	}
}

// Instruction returns the fixed system instruction sent ahead of the
// conversation on every completion call for this kind.
func (k Kind) Instruction() string {
	switch k {
	case KindProgress:
		return `You are a Progress Agent. Your role is to:
- Analyze the user's current progress (e.g., journal entries, goals, tasks).
- Identify what has been accomplished and what is pending.
- Suggest clear, actionable next steps to maintain or accelerate progress.
- Be encouraging and specific. Respond in a structured, readable way.`
	case KindSummarize:
		return `You are a Summarize Agent. Your role is to:
- Summarize the user's input clearly and concisely.
- Preserve key points, decisions, and outcomes.
- Use bullet points or short paragraphs when helpful.
- Keep the summary focused and easy to scan.`
	default:
		return ""
	}
}

// Guidance returns the fixed prompt-for-input reply used when an agent is
// invoked with an empty history. This is a local short-circuit, never an
// error, and never reaches the completion service.
func (k Kind) Guidance() string {
	switch k {
	case KindProgress:
		return "Please provide some context about your current progress (e.g., journal notes, goals, or tasks)."
	case KindSummarize:
		return "Please provide the text or notes you want summarized."
	default:
		return ""
	}
}
