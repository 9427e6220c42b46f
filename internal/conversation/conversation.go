package conversation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dlevitan/companion/internal/reminder"
)

// Completer is the capability consumed from the completion provider.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service produces companion chat replies and transcript summaries.
type Service struct {
	completer Completer
}

func NewService(completer Completer) *Service {
	return &Service{completer: completer}
}

// Summary is the result of the plain summarization prompt.
type Summary struct {
	Summary string `json:"summary"`
	Title   string `json:"title"`
}

// SummaryAndSuggestions adds a friendly reminder-suggestion question to the
// transcript summary.
type SummaryAndSuggestions struct {
	Summary             string `json:"summary"`
	ReminderSuggestions string `json:"reminderSuggestions"`
}

// Chat returns a conversational reply to the user's query, given the prior
// conversation transcript (may be empty).
func (s *Service) Chat(ctx context.Context, query, conversation, language string) (string, error) {
	raw, err := s.completer.Complete(ctx, buildChatPrompt(query, conversation, language))
	if err != nil {
		return "", fmt.Errorf("completion provider: %w", err)
	}
	return reminder.Sanitize(raw), nil
}

// Summarize condenses a dialog into a summary and a short title.
func (s *Service) Summarize(ctx context.Context, dialog string) (*Summary, error) {
	raw, err := s.completer.Complete(ctx, buildSummaryPrompt(dialog))
	if err != nil {
		return nil, fmt.Errorf("completion provider: %w", err)
	}

	var result Summary
	if err := json.Unmarshal([]byte(reminder.Sanitize(raw)), &result); err != nil {
		return nil, fmt.Errorf("parsing model output: %w (raw: %s)", err, raw)
	}
	return &result, nil
}

// SummarizeWithSuggestions condenses a dialog and proposes reminders the user
// may want to set, phrased as a friendly question.
func (s *Service) SummarizeWithSuggestions(ctx context.Context, dialog string) (*SummaryAndSuggestions, error) {
	raw, err := s.completer.Complete(ctx, buildSuggestionsPrompt(dialog))
	if err != nil {
		return nil, fmt.Errorf("completion provider: %w", err)
	}

	var result SummaryAndSuggestions
	if err := json.Unmarshal([]byte(reminder.Sanitize(raw)), &result); err != nil {
		return nil, fmt.Errorf("parsing model output: %w (raw: %s)", err, raw)
	}
	return &result, nil
}
