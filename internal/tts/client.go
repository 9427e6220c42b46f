package tts

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	texttospeech "google.golang.org/api/texttospeech/v1"

	"github.com/dlevitan/companion/internal/config"
)

// Client wraps the Cloud Text-to-Speech API. The synthesis endpoint is a
// pure pass-through: text in, audio bytes out, voice chosen from the static
// language table.
type Client struct {
	svc *texttospeech.Service
}

// NewClient builds a TTS client from service-account credentials supplied
// piecewise through the environment.
func NewClient(ctx context.Context, creds config.GoogleCredentials) (*Client, error) {
	// The private key arrives with escaped newlines when set via env vars.
	privateKey := strings.ReplaceAll(creds.PrivateKey, `\n`, "\n")

	saJSON, err := json.Marshal(map[string]string{
		"type":            "service_account",
		"project_id":      creds.ProjectID,
		"private_key_id":  creds.PrivateKeyID,
		"private_key":     privateKey,
		"client_email":    creds.ClientEmail,
		"client_id":       creds.ClientID,
		"token_uri":       creds.TokenURI,
		"universe_domain": creds.UniverseDomain,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding service account: %w", err)
	}

	googleCreds, err := google.CredentialsFromJSON(ctx, saJSON, texttospeech.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("loading Google credentials: %w", err)
	}

	svc, err := texttospeech.NewService(ctx, option.WithCredentials(googleCreds))
	if err != nil {
		return nil, fmt.Errorf("creating text-to-speech service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// Synthesize converts text to audio bytes using the voice for the given
// language tag (en-US when empty or unknown).
func (c *Client) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	langCode, voiceName := voiceFor(language)

	req := &texttospeech.SynthesizeSpeechRequest{
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding:    "LINEAR16",
			EffectsProfileId: []string{"small-bluetooth-speaker-class-device"},
		},
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: langCode,
			Name:         voiceName,
		},
	}

	resp, err := c.svc.Text.Synthesize(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decoding audio content: %w", err)
	}

	return audio, nil
}
