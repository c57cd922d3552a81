package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// after loading a .env file from the working directory when one exists.
//
// Recognized variables:
//
//	FITLIFE_API_BASE_URL    backend base URL
//	FITLIFE_REQUEST_TIMEOUT per-request deadline, e.g. "30s"
//	FITLIFE_STATE_DIR       credential/cache directory
//	FITLIFE_LOG_FILE        log file path
func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv("FITLIFE_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("FITLIFE_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("FITLIFE_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv("FITLIFE_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}
