package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dlevitan/companion/internal/config"
	"github.com/dlevitan/companion/internal/conversation"
	"github.com/dlevitan/companion/internal/openai"
	"github.com/dlevitan/companion/internal/reminder"
	"github.com/dlevitan/companion/internal/server"
	"github.com/dlevitan/companion/internal/transcribe"
	"github.com/dlevitan/companion/internal/tts"
)

func main() {
	cfg := config.LoadFromEnv()

	if cfg.OpenAIAPIKey == "" {
		fatal("configuration", fmt.Errorf("OPENAI_API_KEY is required"))
	}

	completer := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITemperature)

	remindersLog, err := reminder.NewLog(cfg.RemindersLogPath)
	if err != nil {
		fatal("opening reminders log", err)
	}
	defer remindersLog.Close()

	srv := server.New(server.ServerConfig{
		Pipeline:     reminder.NewPipeline(completer, remindersLog),
		Conversation: conversation.NewService(completer),
		Synthesizer:  initSynthesizer(cfg),
		TokenIssuer:  initTokenIssuer(cfg),
		Port:         cfg.HTTPPort,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "HTTP server error: %v\n", err)
		}
	}()

	waitForShutdown(srv)
}

func initSynthesizer(cfg *config.Config) server.Synthesizer {
	if !cfg.HasGoogleCredentials() {
		fmt.Println("Warning: Google service account not set, speech synthesis disabled")
		return nil
	}
	client, err := tts.NewClient(context.Background(), cfg.Google)
	if err != nil {
		fatal("creating text-to-speech client", err)
	}
	return client
}

func initTokenIssuer(cfg *config.Config) server.TokenIssuer {
	if cfg.AssemblyAIAPIKey == "" {
		fmt.Println("Warning: ASSEMBLYAI_API_KEY not set, transcription tokens disabled")
		return nil
	}
	return transcribe.NewClient(cfg.AssemblyAIAPIKey)
}

func waitForShutdown(srv *server.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "HTTP server shutdown error: %v\n", err)
	}
}

func fatal(what string, err error) {
	fmt.Fprintf(os.Stderr, "Fatal error %s: %v\n", what, err)
	os.Exit(1)
}
