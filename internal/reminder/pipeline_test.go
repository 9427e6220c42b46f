package reminder_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dlevitan/companion/internal/mocks"
	"github.com/dlevitan/companion/internal/reminder"
)

var testNow = time.Date(2025, 1, 23, 0, 0, 0, 0, time.UTC)

func TestPipelineCompleteCommand(t *testing.T) {
	completer := new(mocks.MockCompleter)
	sink := new(mocks.MockSink)
	pipeline := reminder.NewPipeline(completer, sink)

	completer.On("Complete", mock.Anything, mock.Anything).Return("```json\n"+`{
		"reminders": [{"task": "Call John", "datetime": "2025-01-24T17:00:00", "recurring": null}],
		"incomplete": false,
		"message": "I've set a reminder to call John tomorrow at 5 PM."
	}`+"\n```", nil)

	appended := make(chan reminder.Candidate, 1)
	sink.On("Append", mock.Anything).Run(func(args mock.Arguments) {
		appended <- args.Get(0).(reminder.Candidate)
	}).Return(nil)

	env, err := pipeline.Process(context.Background(), reminder.Request{
		Command: "Remind me to call John tomorrow at 5 PM",
		Now:     testNow,
	})

	require.NoError(t, err)
	assert.False(t, env.Incomplete)
	require.Len(t, env.Reminders, 1)
	require.NotNil(t, env.Reminders[0].Datetime)
	assert.Equal(t, "2025-01-24T17:00:00", *env.Reminders[0].Datetime)

	// Persistence is asynchronous with respect to the response.
	select {
	case c := <-appended:
		assert.Equal(t, "Call John", c.Task)
	case <-time.After(2 * time.Second):
		t.Fatal("reminder was never appended to the sink")
	}
}

func TestPipelineIncompleteCommand(t *testing.T) {
	completer := new(mocks.MockCompleter)
	sink := new(mocks.MockSink)
	pipeline := reminder.NewPipeline(completer, sink)

	completer.On("Complete", mock.Anything, mock.Anything).Return(`{
		"reminders": [],
		"incomplete": true,
		"message": "The date for your reminder is unclear. Could you provide a specific time or date?"
	}`, nil)

	env, err := pipeline.Process(context.Background(), reminder.Request{
		Command: "Remind me to finish my tasks someday",
		Now:     testNow,
	})

	require.NoError(t, err)
	assert.True(t, env.Incomplete)
	assert.Empty(t, env.Reminders)
	assert.NotEmpty(t, env.Message)
	sink.AssertNotCalled(t, "Append", mock.Anything)
}

func TestPipelineProviderError(t *testing.T) {
	completer := new(mocks.MockCompleter)
	sink := new(mocks.MockSink)
	pipeline := reminder.NewPipeline(completer, sink)

	completer.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("rate limited"))

	_, err := pipeline.Process(context.Background(), reminder.Request{Command: "Remind me", Now: testNow})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "completion provider")
	sink.AssertNotCalled(t, "Append", mock.Anything)
}

func TestPipelineMalformedModelOutput(t *testing.T) {
	completer := new(mocks.MockCompleter)
	sink := new(mocks.MockSink)
	pipeline := reminder.NewPipeline(completer, sink)

	completer.On("Complete", mock.Anything, mock.Anything).Return("Sorry, I can't help with that.", nil)

	_, err := pipeline.Process(context.Background(), reminder.Request{Command: "Remind me", Now: testNow})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing model output")
	sink.AssertNotCalled(t, "Append", mock.Anything)
}

func TestPipelinePromptUsesRequestFields(t *testing.T) {
	completer := new(mocks.MockCompleter)
	sink := new(mocks.MockSink)
	pipeline := reminder.NewPipeline(completer, sink)

	completer.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Remind me to call John tomorrow at 5 PM") &&
			strings.Contains(prompt, "2025-01-23T00:00:00") &&
			strings.Contains(prompt, "We discussed the contract")
	})).Return(`{"reminders": [], "incomplete": true, "message": "When?"}`, nil)

	_, err := pipeline.Process(context.Background(), reminder.Request{
		Command: "Remind me to call John tomorrow at 5 PM",
		Context: "We discussed the contract",
		Now:     testNow,
	})

	require.NoError(t, err)
	completer.AssertExpectations(t)
}
