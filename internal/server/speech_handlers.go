package server

import (
	"fmt"
	"net/http"
)

const tokenExpirySeconds = 3600

func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	if s.synthesizer == nil {
		respondError(w, http.StatusServiceUnavailable, "speech synthesis not configured")
		return
	}

	text := r.URL.Query().Get("text")
	if text == "" {
		respondError(w, http.StatusBadRequest, "text is required as a query parameter")
		return
	}

	audio, err := s.synthesizer.Synthesize(r.Context(), text, r.URL.Query().Get("language"))
	if err != nil {
		fmt.Printf("Error during synthesis: %v\n", err)
		respondError(w, http.StatusInternalServerError, "an error occurred while synthesizing speech")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", `attachment; filename="output.mp3"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		fmt.Printf("Error writing audio response: %v\n", err)
	}
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if s.tokenIssuer == nil {
		respondError(w, http.StatusServiceUnavailable, "transcription not configured")
		return
	}

	token, err := s.tokenIssuer.CreateTemporaryToken(r.Context(), tokenExpirySeconds)
	if err != nil {
		fmt.Printf("Error creating transcription token: %v\n", err)
		respondError(w, http.StatusInternalServerError, "failed to create transcription token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
