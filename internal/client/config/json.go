package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/abelikov/fingate/internal/flagx"
	"github.com/abelikov/fingate/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "30s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL             string         `json:"base_url"`
	SessionFile         string         `json:"session_file"`
	HTTPTimeout         timex.Duration `json:"http_timeout"`
	RefreshTimeout      timex.Duration `json:"refresh_timeout"`
	RefreshPollInterval timex.Duration `json:"refresh_poll_interval"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config; empty/zero JSON values
//     leave the earlier sources untouched.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Credentials and the session secret are deliberately not accepted here;
// use environment variables for those.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
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

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
	if jc.RefreshTimeout.Duration != 0 {
		cfg.RefreshTimeout = time.Duration(jc.RefreshTimeout.Duration)
	}
	if jc.RefreshPollInterval.Duration != 0 {
		cfg.RefreshPollInterval = time.Duration(jc.RefreshPollInterval.Duration)
	}
}
