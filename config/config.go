// Package config loads runtime settings from the environment, with an
// optional .env file.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting.
type Config struct {
	// Store
	StoreBackend string // "json" or "sqlite"
	StorePath    string

	// AI
	AIProvider   string // "groq", "openai" or "gemini"
	AIAPIKey     string
	AIModel      string
	CustomPrompt string

	// Limits
	AccountType string // "free_account", "premium_account", "sales_navigator"

	Debug bool
}

// Load reads configuration from .env (when present) and the
// environment.
func Load() Config {
	// Missing .env just means the environment is already set up.
	_ = godotenv.Load()

	return Config{
		StoreBackend: envOr("LINNECTFLOW_STORE", "json"),
		StorePath:    envOr("LINNECTFLOW_STORE_PATH", "linnectflow.json"),
		AIProvider:   envOr("LINNECTFLOW_AI_PROVIDER", "groq"),
		AIAPIKey:     os.Getenv("LINNECTFLOW_AI_API_KEY"),
		AIModel:      os.Getenv("LINNECTFLOW_AI_MODEL"),
		CustomPrompt: os.Getenv("LINNECTFLOW_CUSTOM_PROMPT"),
		AccountType:  envOr("LINNECTFLOW_ACCOUNT_TYPE", "free_account"),
		Debug:        os.Getenv("LINNECTFLOW_DEBUG") == "true",
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
