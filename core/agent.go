package core

import "context"

// Agent is a stateless unit of work in the pipeline. Given the full ordered
// history of the run so far it produces exactly one new message, typically
// via a single call to an external completion service.
//
// Implementations must:
//   - Treat the supplied history as read-only
//   - Keep no per-run mutable state (instances are shared across runs)
//   - Return a guidance message without calling the completion service
//     when the history is empty
//   - Respect context cancellation on the outbound call
type Agent interface {
	Name() string
	Produce(ctx context.Context, history History) (Message, error)
}
