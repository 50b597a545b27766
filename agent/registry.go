package agent

import "github.com/journalassist/crew/core"

// Registry maps the closed set of agent identifiers to configured agent
// instances. It is populated once at startup and never mutated afterwards,
// so concurrent runs can resolve against it without locking.
type Registry struct {
	agents map[Kind]core.Agent
}

// NewRegistry constructs a registry over the given agents.
func NewRegistry(agents ...core.Agent) *Registry {
	r := &Registry{agents: make(map[Kind]core.Agent, len(agents))}
	for _, a := range agents {
		if kind, ok := ParseKind(a.Name()); ok {
			r.agents[kind] = a
		}
	}
	return r
}

// Resolve maps an identifier to its agent. The boolean reports whether the
// identifier names a registered agent; resolution has no side effects, so
// resolving the same identifier twice yields the same instance.
func (r *Registry) Resolve(id string) (core.Agent, bool) {
	kind, ok := ParseKind(id)
	if !ok {
		return nil, false
	}
	a, ok := r.agents[kind]
	return a, ok
}

// Kinds returns the kinds with a registered agent, in presentation order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.agents))
	for _, kind := range Kinds() {
		if _, ok := r.agents[kind]; ok {
			out = append(out, kind)
		}
	}
	return out
}
