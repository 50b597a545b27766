// Package chain contains the orchestration state machine that drives an
// ordered sequence of agents over a growing conversation. The Orchestrator
// is built once at startup and shared across runs; each run carries its own
// State value, threaded functionally through the step loop.
package chain
