package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/KingTechFoundation/fitlife-cli/internal/flagx"
	"github.com/KingTechFoundation/fitlife-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StateDir       string         `json:"state_dir"`
	LogFile        string         `json:"log_file"`
}

// parseJson overlays Config with values from the JSON file given via the
// -c/-config flags. Absent flag means no JSON source. Read or unmarshal
// errors panic; LoadConfig runs before any UI exists, so failing loudly at
// startup is the desired behavior.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.StateDir != "" {
		cfg.StateDir = jc.StateDir
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
}
