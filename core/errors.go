package core

import (
	"errors"
	"fmt"
)

// Validation errors raised by the boundary layer before any agent runs.
// They map to client-error responses; the chain itself never returns them.
var (
	// ErrEmptyInput indicates a blank (or whitespace-only) user input.
	ErrEmptyInput = errors.New("input must be non-empty")
	// ErrEmptySequence indicates that no agent identifiers were supplied.
	ErrEmptySequence = errors.New("agent sequence must be non-empty")
	// ErrUnknownAgent indicates an identifier outside the closed agent set.
	ErrUnknownAgent = errors.New("unknown agent")
)

// InvocationError wraps a failed completion call so callers can tell an
// agent invocation failure apart from validation problems. The chain does
// not retry or recover these; they abort the run.
type InvocationError struct {
	Agent string
	Err   error
}

// Error implements the error interface.
func (e *InvocationError) Error() string {
	return fmt.Sprintf("agent %q invocation failed: %v", e.Agent, e.Err)
}

// Unwrap exposes the underlying transport/service error.
func (e *InvocationError) Unwrap() error { return e.Err }
