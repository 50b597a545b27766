package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/journalassist/crew/agent"
	"github.com/journalassist/crew/core"
	"github.com/journalassist/crew/model"
)

func newTestOrchestrator(llm model.Model) *Orchestrator {
	registry := agent.NewRegistry(
		agent.New(agent.KindProgress, llm),
		agent.New(agent.KindSummarize, llm),
	)
	return New(registry)
}

// failingAgent satisfies core.Agent and always fails its invocation.
type failingAgent struct {
	name string
	err  error
}

func (f *failingAgent) Name() string { return f.name }

func (f *failingAgent) Produce(context.Context, core.History) (core.Message, error) {
	return core.Message{}, f.err
}

func TestRunSingleAgent(t *testing.T) {
	llm := model.NewMockModel("test-model")
	llm.AddResponse("my notes", "progress reply")
	o := newTestOrchestrator(llm)

	final, err := o.Run(context.Background(), NewState("my notes", []string{"progress"}))

	require.NoError(t, err)
	assert.True(t, final.Done())
	assert.Equal(t, "progress", final.LastAgent)
	require.Len(t, final.History, 2)
	assert.Equal(t, "progress reply", final.Output())
}

func TestRunHistoryGrowsPerResolvedStep(t *testing.T) {
	llm := model.NewMockModel("test-model")
	o := newTestOrchestrator(llm)

	final, err := o.Run(context.Background(), NewState("entry", []string{"summarize", "progress", "summarize"}))

	require.NoError(t, err)
	// user message + one reply per resolved identifier
	assert.Len(t, final.History, 4)
	assert.Equal(t, 3, llm.CallCount())
	assert.Equal(t, "summarize", final.LastAgent)
}

func TestRunUnknownAgentMidSequence(t *testing.T) {
	llm := model.NewMockModel("test-model")
	o := newTestOrchestrator(llm)

	final, err := o.Run(context.Background(), NewState("entry", []string{"summarize", "bogus", "progress"}))

	require.NoError(t, err)
	assert.Equal(t, "progress", final.LastAgent)
	require.Len(t, final.History, 3)
	for _, msg := range final.History {
		assert.NotEqual(t, "bogus", msg.Agent)
	}
	assert.Equal(t, 2, llm.CallCount())
}

func TestRunUnknownAgentLast(t *testing.T) {
	llm := model.NewMockModel("test-model")
	o := newTestOrchestrator(llm)

	final, err := o.Run(context.Background(), NewState("entry", []string{"summarize", "bogus"}))

	require.NoError(t, err)
	// The unknown id consumes its slot and is still recorded as last agent.
	assert.Equal(t, "bogus", final.LastAgent)
	assert.Len(t, final.History, 2)
}

func TestRunEmptyInputShortCircuit(t *testing.T) {
	for _, input := range []string{"", "   \n\t"} {
		llm := model.NewMockModel("test-model")
		o := newTestOrchestrator(llm)

		final, err := o.Run(context.Background(), NewState(input, []string{"progress"}))

		require.NoError(t, err, "input=%q", input)
		require.Len(t, final.History, 1, "input=%q", input)
		assert.Equal(t, agent.KindProgress.Guidance(), final.History[0].Content)
		assert.Equal(t, 0, llm.CallCount(), "input=%q", input)
	}
}

func TestRunOrderSensitivity(t *testing.T) {
	llm := model.NewMockModel("test-model")
	llm.AddResponse("entry", "first reply")
	o := newTestOrchestrator(llm)

	_, err := o.Run(context.Background(), NewState("entry", []string{"summarize", "progress"}))
	require.NoError(t, err)

	reqs := llm.Requests()
	require.Len(t, reqs, 2)

	// The second agent's request must contain the first agent's reply verbatim.
	second := reqs[1]
	require.Len(t, second.Messages, 2)
	assert.Equal(t, core.RoleAssistant, second.Messages[1].Role)
	assert.Equal(t, "summarize", second.Messages[1].Agent)
	assert.Equal(t, "first reply", second.Messages[1].Content)
	assert.Equal(t, agent.KindProgress.Instruction(), second.Instructions)
}

func TestRunDegenerateEmptySequence(t *testing.T) {
	llm := model.NewMockModel("test-model")
	o := newTestOrchestrator(llm)

	initial := NewState("entry", nil)
	final, err := o.Run(context.Background(), initial)

	require.NoError(t, err)
	assert.Equal(t, initial.History, final.History)
	assert.Equal(t, "", final.LastAgent)
	assert.Equal(t, "", final.Output())
	assert.Equal(t, 0, llm.CallCount())
}

func TestRunFailureAbortsWithoutPartialResult(t *testing.T) {
	llm := model.NewMockModel("test-model")
	cause := errors.New("service unavailable")
	registry := agent.NewRegistry(
		agent.New(agent.KindProgress, llm),
		&failingAgent{name: "summarize", err: cause},
	)
	o := New(registry)

	final, err := o.Run(context.Background(), NewState("entry", []string{"progress", "summarize", "progress"}))

	require.Error(t, err)
	var invErr *core.InvocationError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, "summarize", invErr.Agent)
	assert.ErrorIs(t, err, cause)

	// No partial transcript escapes a failed run.
	assert.Empty(t, final.History)
	assert.Equal(t, "", final.LastAgent)
	// The third step never ran.
	assert.Equal(t, 1, llm.CallCount())
}

func TestRunStateIsNotSharedBetweenRuns(t *testing.T) {
	llm := model.NewMockModel("test-model")
	o := newTestOrchestrator(llm)

	first, err := o.Run(context.Background(), NewState("entry one", []string{"progress"}))
	require.NoError(t, err)
	second, err := o.Run(context.Background(), NewState("entry two", []string{"progress"}))
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Len(t, first.History, 2)
	assert.Len(t, second.History, 2)
	assert.Equal(t, "entry one", first.History[0].Content)
	assert.Equal(t, "entry two", second.History[0].Content)
}

func TestRunContextCancelled(t *testing.T) {
	llm := model.NewMockModel("test-model")
	o := newTestOrchestrator(llm)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.Run(ctx, NewState("entry", []string{"progress"}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewStateTrimsInput(t *testing.T) {
	st := NewState("  entry  ", []string{"progress"})
	require.Len(t, st.History, 1)
	assert.Equal(t, "entry", st.History[0].Content)
	assert.False(t, st.Done())
	assert.NotEmpty(t, st.RunID)
}
