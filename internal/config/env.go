package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
}

type Config struct {
	// Required
	OpenAIAPIKey string

	// Required when the corresponding endpoint is served
	AssemblyAIAPIKey string
	Google           GoogleCredentials

	// Optional with defaults
	HTTPPort          int
	OpenAIModel       string
	OpenAITemperature float64
	RemindersLogPath  string
}

// GoogleCredentials holds the service-account fields used to talk to the
// Cloud Text-to-Speech API. They mirror the keys of a service-account JSON
// file so deployments can pass the account piecewise through the environment.
type GoogleCredentials struct {
	ProjectID      string
	PrivateKeyID   string
	PrivateKey     string
	ClientEmail    string
	ClientID       string
	TokenURI       string
	UniverseDomain string
}

func LoadFromEnv() *Config {
	cfg := &Config{
		// Required
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),

		AssemblyAIAPIKey: os.Getenv("ASSEMBLYAI_API_KEY"),
		Google: GoogleCredentials{
			ProjectID:      os.Getenv("GOOGLE_PROJECT_ID"),
			PrivateKeyID:   os.Getenv("GOOGLE_PRIVATE_KEY_ID"),
			PrivateKey:     os.Getenv("GOOGLE_PRIVATE_KEY"),
			ClientEmail:    os.Getenv("GOOGLE_CLIENT_EMAIL"),
			ClientID:       os.Getenv("GOOGLE_CLIENT_ID"),
			TokenURI:       getEnvOrDefault("GOOGLE_TOKEN_URI", "https://oauth2.googleapis.com/token"),
			UniverseDomain: getEnvOrDefault("GOOGLE_UNIVERSE_DOMAIN", "googleapis.com"),
		},

		// Optional with defaults
		HTTPPort:          getEnvAsIntOrDefault("PORT", 8000),
		OpenAIModel:       getEnvOrDefault("COMPANION_OPENAI_MODEL", "gpt-4o"),
		OpenAITemperature: getEnvAsFloatOrDefault("COMPANION_OPENAI_TEMPERATURE", 0.7),
		RemindersLogPath:  getEnvOrDefault("COMPANION_REMINDERS_LOG", "./reminders.log"),
	}

	return cfg
}

// HasGoogleCredentials reports whether the synthesis client can be constructed.
func (c *Config) HasGoogleCredentials() bool {
	g := c.Google
	return g.ProjectID != "" && g.PrivateKey != "" && g.ClientEmail != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
