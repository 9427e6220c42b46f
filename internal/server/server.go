package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dlevitan/companion/internal/conversation"
	"github.com/dlevitan/companion/internal/reminder"
)

// Synthesizer converts text to audio bytes in the requested language.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}

// TokenIssuer issues short-lived realtime transcription tokens.
type TokenIssuer interface {
	CreateTemporaryToken(ctx context.Context, expiresIn int) (string, error)
}

type Server struct {
	pipeline     *reminder.Pipeline
	conversation *conversation.Service
	synthesizer  Synthesizer
	tokenIssuer  TokenIssuer
	httpSrv      *http.Server
	port         int
}

// ServerConfig holds the injected dependencies for server creation.
// Clients are constructed in main and passed in, never reached as globals,
// so tests can substitute fakes.
type ServerConfig struct {
	Pipeline     *reminder.Pipeline
	Conversation *conversation.Service
	Synthesizer  Synthesizer
	TokenIssuer  TokenIssuer
	Port         int
}

func New(cfg ServerConfig) *Server {
	s := &Server{
		pipeline:     cfg.Pipeline,
		conversation: cfg.Conversation,
		synthesizer:  cfg.Synthesizer,
		tokenIssuer:  cfg.TokenIssuer,
		port:         cfg.Port,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.corsMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", s.handleHealthCheck)

	// Reminder extraction
	mux.HandleFunc("POST /processReminder", s.handleProcessReminder)

	// Companion chat and transcript summaries
	mux.HandleFunc("GET /chat", s.handleChat)
	mux.HandleFunc("GET /summary", s.handleSummary)
	mux.HandleFunc("GET /summaryAndSuggestions", s.handleSummaryAndSuggestions)

	// Speech
	mux.HandleFunc("GET /synthesize", s.handleSynthesize)
	mux.HandleFunc("GET /token", s.handleToken)
}

func (s *Server) Start() error {
	fmt.Printf("Starting HTTP server on http://localhost:%d\n", s.port)
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the server's HTTP handler for testing purposes
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// corsMiddleware adds CORS headers to allow browser requests
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
