package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name          string
		apiKey        string
		model         string
		temperature   float64
		expectedModel string
		expectedTemp  float64
	}{
		{
			name:          "with all parameters",
			apiKey:        "test-api-key",
			model:         "gpt-4o-mini",
			temperature:   0.3,
			expectedModel: "gpt-4o-mini",
			expectedTemp:  0.3,
		},
		{
			name:          "empty model uses default",
			apiKey:        "test-api-key",
			model:         "",
			temperature:   0.5,
			expectedModel: defaultModel,
			expectedTemp:  0.5,
		},
		{
			name:          "zero temperature uses default",
			apiKey:        "test-api-key",
			model:         "gpt-4o",
			temperature:   0,
			expectedModel: "gpt-4o",
			expectedTemp:  defaultTemperature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.apiKey, tt.model, tt.temperature)

			require.NotNil(t, client)
			assert.Equal(t, tt.expectedModel, client.model)
			assert.Equal(t, tt.expectedTemp, client.temperature)
		})
	}
}

func TestIsConfigured(t *testing.T) {
	assert.True(t, NewClient("test-key", "", 0).IsConfigured())
	assert.False(t, NewClient("", "", 0).IsConfigured())
}

func newTestClient(baseURL string) *Client {
	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = baseURL + "/v1"

	return &Client{
		api:         openai.NewClientWithConfig(config),
		apiKey:      "test-api-key",
		model:       "test-model",
		temperature: 0.7,
	}
}

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "Hello there!"}, "finish_reason": "stop"}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	text, err := client.Complete(context.Background(), "Say hello")

	require.NoError(t, err)
	assert.Equal(t, "Hello there!", text)
}

func TestComplete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limit exceeded", "type": "requests"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Complete(context.Background(), "Say hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "completion request failed")
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-1", "object": "chat.completion", "choices": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Complete(context.Background(), "Say hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
