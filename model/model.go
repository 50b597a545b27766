package model

import (
	"context"
	"sync"

	"github.com/journalassist/crew/core"
)

// Request is the normalized input for one completion call: a fixed
// agent-specific instruction plus the full conversation so far.
type Request struct {
	Instructions string         `json:"instructions"`
	Messages     []core.Message `json:"messages"`
}

// Response carries the single completion produced for a Request. Content may
// be empty when the provider returns no text.
type Response struct {
	Content string `json:"content"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", ...
}

// Model is the minimal interface agents use to request one completion.
// Implementations must be safe for concurrent use; independent runs share
// a single Model instance.
type Model interface {
	Complete(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests. It replays
// canned completions keyed by the content of the last message in the request
// and records every request it receives.
type MockModel struct {
	mu        sync.Mutex
	info      Info
	responses map[string]string
	requests  []Request
	err       error
}

// NewMockModel constructs an empty MockModel.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for the given
// last-message content.
func (m *MockModel) AddResponse(lastContent, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[lastContent] = response
}

// FailWith makes every subsequent Complete call return err.
func (m *MockModel) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Complete implements Model.
func (m *MockModel) Complete(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	var content string
	if n := len(req.Messages); n > 0 {
		content = m.responses[req.Messages[n-1].Content]
	}
	if content == "" {
		content = "mock completion"
	}
	return &Response{Content: content}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }

// Requests returns a copy of every request seen so far, in order.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// CallCount reports how many Complete calls were made.
func (m *MockModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
