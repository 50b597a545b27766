package core

// Role identifies who authored a message in the conversation.
type Role string

const (
	// RoleUser marks the message carrying the original user input.
	RoleUser Role = "user"
	// RoleAssistant marks a message produced by an agent.
	RoleAssistant Role = "assistant"
)

// Message is one immutable turn of the conversation. Agent is only set on
// assistant messages and names the agent that produced the content. Content
// may be empty; an empty completion is a valid reply, not an error.
type Message struct {
	Role    Role   `json:"role"`
	Agent   string `json:"agent,omitempty"`
	Content string `json:"content"`
}

// NewUserMessage creates the user-authored message that opens a run.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAgentMessage creates an assistant message tagged with its producing agent.
func NewAgentMessage(agent, content string) Message {
	return Message{Role: RoleAssistant, Agent: agent, Content: content}
}

// History is the ordered, append-only transcript of one run. Values of this
// type are treated as immutable: Append never mutates its receiver, so a
// History handed to an agent cannot be changed underneath the caller.
type History []Message

// Append returns a new History with msg added at the end. The receiver is
// copied first so earlier snapshots stay valid even if the returned slice
// is appended to again.
func (h History) Append(msg Message) History {
	next := make(History, len(h), len(h)+1)
	copy(next, h)
	return append(next, msg)
}

// LastAssistant scans from the end and returns the most recent assistant
// message. The boolean reports whether one exists; an assistant message with
// empty content still counts.
func (h History) LastAssistant() (Message, bool) {
	for i := len(h) - 1; i >= 0; i-- {
		if h[i].Role == RoleAssistant {
			return h[i], true
		}
	}
	return Message{}, false
}

// Clone returns an independent copy of the history.
func (h History) Clone() History {
	if h == nil {
		return nil
	}
	out := make(History, len(h))
	copy(out, h)
	return out
}
