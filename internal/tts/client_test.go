package tts

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	texttospeech "google.golang.org/api/texttospeech/v1"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	svc, err := texttospeech.NewService(
		context.Background(),
		option.WithEndpoint(baseURL),
		option.WithHTTPClient(http.DefaultClient),
	)
	require.NoError(t, err)

	return &Client{svc: svc}
}

func TestSynthesize(t *testing.T) {
	audio := []byte{0x52, 0x49, 0x46, 0x46, 0x00, 0x01}

	var captured texttospeech.SynthesizeSpeechRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(texttospeech.SynthesizeSpeechResponse{
			AudioContent: base64.StdEncoding.EncodeToString(audio),
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	got, err := client.Synthesize(context.Background(), "hello there", "es-ES")

	require.NoError(t, err)
	assert.Equal(t, audio, got)

	require.NotNil(t, captured.Input)
	assert.Equal(t, "hello there", captured.Input.Text)
	require.NotNil(t, captured.Voice)
	assert.Equal(t, "es-ES", captured.Voice.LanguageCode)
	assert.Equal(t, "es-ES-Neural2-A", captured.Voice.Name)
	require.NotNil(t, captured.AudioConfig)
	assert.Equal(t, "LINEAR16", captured.AudioConfig.AudioEncoding)
	assert.Equal(t, []string{"small-bluetooth-speaker-class-device"}, captured.AudioConfig.EffectsProfileId)
}

func TestSynthesize_UnknownLanguageFallsBack(t *testing.T) {
	var captured texttospeech.SynthesizeSpeechRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(texttospeech.SynthesizeSpeechResponse{
			AudioContent: base64.StdEncoding.EncodeToString([]byte("audio")),
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Synthesize(context.Background(), "hola", "xx-YY")

	require.NoError(t, err)
	require.NotNil(t, captured.Voice)
	assert.Equal(t, "en-US", captured.Voice.LanguageCode)
	assert.Equal(t, "en-US-Journey-F", captured.Voice.Name)
}

func TestSynthesize_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": 403, "message": "permission denied"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Synthesize(context.Background(), "hello", "en-US")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "synthesis request failed")
}
