// Package config assembles runtime settings for the FitLife CLI from
// defaults, environment (including a .env file), an optional JSON file and
// command-line flags. Later sources take precedence.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the FitLife CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request deadline for the HTTP client.
//   - StateDir: directory holding the credential file and snapshot cache.
//   - LogFile: path of the rotating log file.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StateDir       string
	LogFile        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.fitlife.app/api"
	c.RequestTimeout = 30 * time.Second

	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	c.StateDir = filepath.Join(base, "fitlife")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (plus .env), a JSON file (if given via -c/-config)
// and command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)

	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.StateDir, "fitlife.log")
	}
	return cfg
}
