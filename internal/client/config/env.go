package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory, when present, seeds the environment first
// but never overrides variables that are already set.
//
// Recognized variables:
//
//	FINGATE_BASE_URL
//	FINGATE_EMAIL
//	FINGATE_PASSWORD
//	FINGATE_SESSION_FILE
//	FINGATE_SESSION_SECRET
func parseEnv(cfg *Config) {
	// Load ignores a missing file; any other error is not fatal either,
	// the variables just stay unset.
	_ = godotenv.Load()

	if v := os.Getenv("FINGATE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FINGATE_EMAIL"); v != "" {
		cfg.Email = v
	}
	if v := os.Getenv("FINGATE_PASSWORD"); v != "" {
		cfg.Password = v
	}
	if v := os.Getenv("FINGATE_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
	if v := os.Getenv("FINGATE_SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}
}
