package chain

import (
	"strings"

	"github.com/google/uuid"

	"github.com/journalassist/crew/core"
)

// State is the request-scoped working data of one run. It is a value type:
// every step produces a fresh State rather than mutating in place, so a
// snapshot taken before a step stays valid after it.
//
// Invariants:
//   - History grows monotonically; Pending shrinks monotonically (FIFO)
//   - Pending is empty exactly when the run is terminal
//   - LastAgent names the most recently processed identifier, including
//     identifiers that resolved to nothing
type State struct {
	RunID     string
	History   core.History
	Pending   []string
	LastAgent string
}

// NewState builds the initial state for a run: the trimmed user input as the
// opening message and the requested identifiers as the pending queue. A
// blank input yields an empty history, which makes the first agent answer
// with its guidance message instead of calling the completion service.
func NewState(input string, sequence []string) State {
	var history core.History
	if trimmed := strings.TrimSpace(input); trimmed != "" {
		history = core.History{core.NewUserMessage(trimmed)}
	}

	pending := make([]string, len(sequence))
	copy(pending, sequence)

	return State{
		RunID:   uuid.NewString(),
		History: history,
		Pending: pending,
	}
}

// Done reports whether the run has reached its terminal state.
func (s State) Done() bool { return len(s.Pending) == 0 }

// Output returns the content of the last assistant message, or the empty
// string if no agent produced one.
func (s State) Output() string {
	msg, ok := s.History.LastAssistant()
	if !ok {
		return ""
	}
	return msg.Content
}
