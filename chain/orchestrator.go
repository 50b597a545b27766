package chain

import (
	"context"

	"github.com/journalassist/crew/agent"
	"github.com/journalassist/crew/core"
	"github.com/journalassist/crew/logging"
)

// Options configure an Orchestrator instance.
type Options struct {
	// Logger receives per-step debug output. Defaults to a no-op logger.
	Logger logging.Logger
}

// Orchestrator consumes a run's pending agent sequence against its growing
// history. It holds only immutable configuration (the registry and a
// logger), so a single instance serves any number of concurrent runs.
type Orchestrator struct {
	registry *agent.Registry
	logger   logging.Logger
}

// New constructs an Orchestrator over the given registry.
func New(registry *agent.Registry, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Orchestrator{registry: registry, logger: opts.Logger}
}

// Run drives the state machine to completion: one dispatch step per pending
// identifier, strictly in order, each agent seeing the full history built so
// far. An empty queue on entry is a valid degenerate run that performs zero
// steps and clears LastAgent.
//
// On an invocation failure the run aborts: the error propagates untouched
// inside an InvocationError and no partial state is returned.
func (o *Orchestrator) Run(ctx context.Context, st State) (State, error) {
	if st.Done() {
		st.LastAgent = ""
		return st, nil
	}

	steps := 0
	for !st.Done() {
		if err := ctx.Err(); err != nil {
			return State{}, err
		}

		next, err := o.step(ctx, st)
		if err != nil {
			return State{}, err
		}
		st = next
		steps++
	}

	o.logger.Debug("chain.run.done",
		"run", st.RunID,
		"steps", steps,
		"messages", len(st.History),
		"last_agent", st.LastAgent,
	)

	return st, nil
}

// step consumes the head of the pending queue and returns the successor
// state. Identifiers arrive already normalized from the boundary.
func (o *Orchestrator) step(ctx context.Context, st State) (State, error) {
	id := st.Pending[0]
	rest := st.Pending[1:]

	a, ok := o.registry.Resolve(id)
	if !ok {
		// Defense-in-depth fallback: the boundary validates identifiers
		// before a run starts, so an unknown id here consumes its queue
		// slot without producing output. See DESIGN.md.
		o.logger.Warn("chain.step.unknown_agent", "run", st.RunID, "agent", id)
		return State{
			RunID:     st.RunID,
			History:   st.History,
			Pending:   rest,
			LastAgent: id,
		}, nil
	}

	msg, err := a.Produce(ctx, st.History)
	if err != nil {
		return State{}, &core.InvocationError{Agent: id, Err: err}
	}

	o.logger.Debug("chain.step.produced", "run", st.RunID, "agent", id)

	return State{
		RunID:     st.RunID,
		History:   st.History.Append(msg),
		Pending:   rest,
		LastAgent: id,
	}, nil
}
