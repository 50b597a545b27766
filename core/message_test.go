package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAppendDoesNotMutateReceiver(t *testing.T) {
	base := History{NewUserMessage("hello")}

	first := base.Append(NewAgentMessage("summarize", "a summary"))
	second := base.Append(NewAgentMessage("progress", "next steps"))

	assert.Len(t, base, 1)
	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Equal(t, "summarize", first[1].Agent)
	assert.Equal(t, "progress", second[1].Agent)
}

func TestHistoryAppendPreservesOrder(t *testing.T) {
	h := History{}
	h = h.Append(NewUserMessage("entry"))
	h = h.Append(NewAgentMessage("summarize", "one"))
	h = h.Append(NewAgentMessage("progress", "two"))

	require.Len(t, h, 3)
	assert.Equal(t, RoleUser, h[0].Role)
	assert.Equal(t, "one", h[1].Content)
	assert.Equal(t, "two", h[2].Content)
}

func TestHistoryLastAssistant(t *testing.T) {
	h := History{
		NewUserMessage("entry"),
		NewAgentMessage("summarize", "summary"),
		NewAgentMessage("progress", ""),
	}

	last, ok := h.LastAssistant()
	require.True(t, ok)
	assert.Equal(t, "progress", last.Agent)
	// Empty content is still a valid reply.
	assert.Equal(t, "", last.Content)
}

func TestHistoryLastAssistantMissing(t *testing.T) {
	h := History{NewUserMessage("entry")}

	_, ok := h.LastAssistant()
	assert.False(t, ok)
}

func TestHistoryClone(t *testing.T) {
	h := History{NewUserMessage("entry")}
	clone := h.Clone()
	clone[0] = NewUserMessage("changed")

	assert.Equal(t, "entry", h[0].Content)
	assert.Nil(t, History(nil).Clone())
}

func TestInvocationErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &InvocationError{Agent: "progress", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `agent "progress" invocation failed`)

	var invErr *InvocationError
	require.ErrorAs(t, error(err), &invErr)
	assert.Equal(t, "progress", invErr.Agent)
}
