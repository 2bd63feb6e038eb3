package config

import (
	"path/filepath"
	"time"

	"github.com/abelikov/fingate/internal/filex"
)

// Config holds runtime settings for the fingate CLI.
//
// Fields:
//   - BaseURL: root URL of the remote API.
//   - SessionFile: path of the encrypted session file.
//   - SessionSecret: passphrase protecting the session file.
//   - Email, Password: optional credentials for non-interactive login.
//   - HTTPTimeout: per-request timeout of the HTTP client.
//   - RefreshTimeout: overall wall-clock limit when waiting for an
//     account refresh to finish.
//   - RefreshPollInterval: delay between refresh status polls.
//
// Units: the timeout fields are time.Duration (e.g., 30*time.Second).
type Config struct {
	BaseURL             string
	SessionFile         string
	SessionSecret       string
	Email               string
	Password            string
	HTTPTimeout         time.Duration
	RefreshTimeout      time.Duration
	RefreshPollInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://api.fingate.app"
	if dir, err := filex.EnsureConfigDir(".fingate"); err == nil {
		c.SessionFile = filepath.Join(dir, "session.json")
	} else {
		c.SessionFile = "session.json"
	}
	c.SessionSecret = "fingate"
	c.HTTPTimeout = 30 * time.Second
	c.RefreshTimeout = 5 * time.Minute
	c.RefreshPollInterval = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
