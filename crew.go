// Package crew provides a high-level façade over the chain orchestrator and
// the agent registry. Most applications interact with this package by:
//  1. Creating a Crew via New() from a config.Config
//  2. Running an ordered agent sequence over user input with Run()
//
// The façade builds every component exactly once: the completion model, one
// agent per known kind, the registry and the orchestrator are all immutable
// after New returns and shared across concurrent runs.
package crew

import (
	"context"
	"fmt"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"

	"github.com/journalassist/crew/agent"
	"github.com/journalassist/crew/chain"
	"github.com/journalassist/crew/config"
	"github.com/journalassist/crew/logging"
	"github.com/journalassist/crew/model"
	"github.com/journalassist/crew/model/anthropic"
	"github.com/journalassist/crew/model/openai"
)

// Options configure the Crew instance.
type Options struct {
	// Model overrides the provider selected by the config. Useful for
	// tests and embedding with a custom completion backend.
	Model model.Model
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Crew aggregates the configured registry and orchestrator.
type Crew struct {
	registry     *agent.Registry
	orchestrator *chain.Orchestrator
	llm          model.Model
}

// New creates a Crew from cfg with optional overrides.
func New(cfg *config.Config, optFns ...func(o *Options)) (*Crew, error) {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	llm := opts.Model
	if llm == nil {
		var err error
		if llm, err = buildModel(cfg.Model); err != nil {
			return nil, err
		}
	}

	registry := agent.NewRegistry(
		agent.New(agent.KindProgress, llm, withTimeout(cfg)),
		agent.New(agent.KindSummarize, llm, withTimeout(cfg)),
	)

	orchestrator := chain.New(registry, func(o *chain.Options) {
		o.Logger = opts.Logger
	})

	return &Crew{registry: registry, orchestrator: orchestrator, llm: llm}, nil
}

func withTimeout(cfg *config.Config) func(o *agent.Options) {
	return func(o *agent.Options) { o.Timeout = cfg.Model.Timeout }
}

// buildModel selects the provider adapter named by the config.
func buildModel(cfg config.Model) (model.Model, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewModel(func(o *openai.Options) {
			o.Model = cfg.Name
			o.Temperature = cfg.Temperature
			o.MaxCompletionTokens = cfg.MaxTokens
			o.APIKey = cfg.APIKey
		}), nil
	case "anthropic":
		return anthropic.NewModel(func(o *anthropic.Options) {
			o.Model = anthropicsdk.Model(cfg.Name)
			o.Temperature = cfg.Temperature
			o.MaxTokens = cfg.MaxTokens
			o.APIKey = cfg.APIKey
		}), nil
	default:
		return nil, fmt.Errorf("unsupported model provider %q", cfg.Provider)
	}
}

// Registry returns the immutable agent registry.
func (c *Crew) Registry() *agent.Registry { return c.registry }

// Orchestrator returns the shared orchestrator.
func (c *Crew) Orchestrator() *chain.Orchestrator { return c.orchestrator }

// ModelInfo describes the completion model backing the agents.
func (c *Crew) ModelInfo() model.Info { return c.llm.Info() }

// Run executes the ordered agent sequence over input and returns the final
// run state. Sequence identifiers must already be validated against the
// registry by the caller; unknown identifiers are silently skipped here.
func (c *Crew) Run(ctx context.Context, input string, sequence []string) (chain.State, error) {
	return c.orchestrator.Run(ctx, chain.NewState(input, sequence))
}
