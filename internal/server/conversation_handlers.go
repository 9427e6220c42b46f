package server

import (
	"fmt"
	"net/http"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		respondError(w, http.StatusBadRequest, "query is required")
		return
	}

	reply, err := s.conversation.Chat(
		r.Context(),
		query,
		r.URL.Query().Get("conversation"),
		r.URL.Query().Get("language"),
	)
	if err != nil {
		fmt.Printf("Error generating chat response: %v\n", err)
		respondError(w, http.StatusInternalServerError, "failed to generate a response")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	dialog := r.URL.Query().Get("dialog")
	if dialog == "" {
		respondError(w, http.StatusBadRequest, "dialog is required")
		return
	}

	summary, err := s.conversation.Summarize(r.Context(), dialog)
	if err != nil {
		fmt.Printf("Error generating summary: %v\n", err)
		respondError(w, http.StatusInternalServerError, "failed to generate a summary")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSummaryAndSuggestions(w http.ResponseWriter, r *http.Request) {
	dialog := r.URL.Query().Get("dialog")
	if dialog == "" {
		respondError(w, http.StatusBadRequest, "dialog is required")
		return
	}

	result, err := s.conversation.SummarizeWithSuggestions(r.Context(), dialog)
	if err != nil {
		fmt.Printf("Error generating summary and suggestions: %v\n", err)
		respondError(w, http.StatusInternalServerError, "failed to generate a summary")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
