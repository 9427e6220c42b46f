package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTokenURL = "https://api.assemblyai.com/v2/realtime/token"

// Client issues short-lived AssemblyAI realtime tokens so browsers can open
// a streaming transcription session without seeing the API key.
type Client struct {
	apiKey     string
	tokenURL   string
	httpClient *http.Client
}

// NewClient creates a new AssemblyAI token client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:   apiKey,
		tokenURL: defaultTokenURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type tokenRequest struct {
	ExpiresIn int `json:"expires_in"`
}

type tokenResponse struct {
	Token string `json:"token"`
	Error string `json:"error,omitempty"`
}

// CreateTemporaryToken requests a realtime token valid for expiresIn seconds.
func (c *Client) CreateTemporaryToken(ctx context.Context, expiresIn int) (string, error) {
	reqBody, err := json.Marshal(tokenRequest{ExpiresIn: expiresIn})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.tokenURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if tokenResp.Error != "" {
		return "", fmt.Errorf("API error: %s", tokenResp.Error)
	}
	if tokenResp.Token == "" {
		return "", fmt.Errorf("empty token from API")
	}

	return tokenResp.Token, nil
}

// IsConfigured returns true if the client has an API key
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}
