package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Health Check

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":        "healthy",
		"synthesis":     "unconfigured",
		"transcription": "unconfigured",
	}

	if s.synthesizer != nil {
		status["synthesis"] = "configured"
	}
	if s.tokenIssuer != nil {
		status["transcription"] = "configured"
	}

	respondJSON(w, http.StatusOK, status)
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("Error encoding JSON response: %v\n", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
