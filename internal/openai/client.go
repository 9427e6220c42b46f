package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultModel       = "gpt-4o"
	defaultTemperature = 0.7
	defaultMaxTokens   = 1024
)

// Client wraps the OpenAI chat-completions API behind the single capability
// the rest of the system consumes: send a prompt, get raw text back.
type Client struct {
	api         *openai.Client
	apiKey      string
	model       string
	temperature float64
}

// NewClient creates a new completion client
func NewClient(apiKey, model string, temperature float64) *Client {
	if model == "" {
		model = defaultModel
	}
	if temperature <= 0 {
		temperature = defaultTemperature
	}

	return &Client{
		api:         openai.NewClient(apiKey),
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
	}
}

// Complete sends a single-turn prompt and returns the raw model text.
// The text may be wrapped in markdown fences; callers sanitize before parsing.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: float32(c.temperature),
		MaxTokens:   defaultMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return resp.Choices[0].Message.Content, nil
}

// IsConfigured returns true if the client has an API key
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}
