package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dlevitan/companion/internal/reminder"
)

// handleProcessReminder extracts structured reminders from a spoken command.
// Validation failures are 400s and never reach the completion provider;
// provider and parse failures both map to a generic 500 with the detail
// logged server-side only.
func (s *Server) handleProcessReminder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Command  string `json:"command"`
		Context  string `json:"context"`
		Language string `json:"language"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Command) == "" {
		respondError(w, http.StatusBadRequest, "command is required")
		return
	}

	envelope, err := s.pipeline.Process(r.Context(), reminder.Request{
		Command:  req.Command,
		Context:  req.Context,
		Language: req.Language,
		Now:      time.Now(),
	})
	if err != nil {
		fmt.Printf("Error processing reminder command: %v\n", err)
		respondError(w, http.StatusInternalServerError, "failed to process reminder command")
		return
	}

	respondJSON(w, http.StatusOK, envelope)
}
