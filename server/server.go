// Package server exposes the crew pipeline over HTTP. It owns request
// validation and response shaping; the orchestration itself lives in the
// chain package.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/journalassist/crew/agent"
	"github.com/journalassist/crew/chain"
	"github.com/journalassist/crew/logging"
)

// Options configure a Server instance.
type Options struct {
	// CORSOrigin is the allowed origin for cross-origin requests; "*"
	// allows any origin. Empty disables the CORS middleware.
	CORSOrigin string
	// RequestTimeout bounds a whole request including all agent steps.
	RequestTimeout time.Duration
	// Logger receives request-level output. Defaults to a no-op logger.
	Logger logging.Logger
}

// Server wires the orchestrator and registry into an HTTP handler.
type Server struct {
	orchestrator *chain.Orchestrator
	registry     *agent.Registry
	logger       logging.Logger
	opts         Options
}

// New constructs a Server over the given orchestrator and registry.
func New(orchestrator *chain.Orchestrator, registry *agent.Registry, optFns ...func(o *Options)) *Server {
	opts := Options{
		CORSOrigin:     "*",
		RequestTimeout: 2 * time.Minute,
		Logger:         logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Server{
		orchestrator: orchestrator,
		registry:     registry,
		logger:       opts.Logger,
		opts:         opts,
	}
}

// Router builds the chi router with middleware and all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	if s.opts.CORSOrigin != "" {
		r.Use(CORS(s.opts.CORSOrigin))
	}
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(s.opts.RequestTimeout))

	r.Get("/health", s.handleHealth)
	r.Get("/agents", s.handleListAgents)
	r.Post("/agent/run", s.handleRunAgents)

	return r
}
