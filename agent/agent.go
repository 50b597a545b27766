package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/journalassist/crew/core"
	"github.com/journalassist/crew/model"
)

// Options configure an Agent instance.
//
// Use functional options with New to override defaults.
type Options struct {
	// Timeout bounds a single completion call. Zero disables the bound and
	// leaves cancellation entirely to the caller's context.
	Timeout time.Duration
}

// Agent is a stateless pipeline participant backed by a completion model.
// Its only configuration is the fixed Kind (instruction + guidance text) and
// the model to call; instances are shared safely across concurrent runs.
type Agent struct {
	kind    Kind
	llm     model.Model
	timeout time.Duration
}

// New creates an agent of the given kind backed by llm.
func New(kind Kind, llm model.Model, optFns ...func(o *Options)) *Agent {
	opts := Options{Timeout: 60 * time.Second}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Agent{kind: kind, llm: llm, timeout: opts.Timeout}
}

// Name implements core.Agent; the name doubles as the producer tag on
// every message this agent emits.
func (a *Agent) Name() string { return a.kind.String() }

// Kind returns the agent's kind.
func (a *Agent) Kind() Kind { return a.kind }

// Produce implements core.Agent. With an empty history it returns the
// kind's fixed guidance message without touching the completion service.
// Otherwise it requests exactly one completion over the full history; an
// empty completion becomes an empty-content message, not an error.
func (a *Agent) Produce(ctx context.Context, history core.History) (core.Message, error) {
	if len(history) == 0 {
		return core.NewAgentMessage(a.Name(), a.kind.Guidance()), nil
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	resp, err := a.llm.Complete(ctx, model.Request{
		Instructions: a.kind.Instruction(),
		Messages:     history,
	})
	if err != nil {
		return core.Message{}, fmt.Errorf("complete: %w", err)
	}

	return core.NewAgentMessage(a.Name(), resp.Content), nil
}
