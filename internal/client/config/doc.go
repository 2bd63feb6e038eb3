// Package config loads runtime configuration for the fingate CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, optionally seeded from a .env file
//     (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the remote API
//	-s string   path of the encrypted session file
//	-t int      HTTP request timeout (seconds)
//
// # Environment variables
//
//	FINGATE_BASE_URL         base URL of the remote API
//	FINGATE_EMAIL            login email (non-interactive use)
//	FINGATE_PASSWORD         login password (non-interactive use)
//	FINGATE_SESSION_FILE     path of the encrypted session file
//	FINGATE_SESSION_SECRET   passphrase protecting the session file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://api.example.com",
//	  "session_file": "/home/user/.fingate/session.json",
//	  "http_timeout": "30s",
//	  "refresh_timeout": "5m",
//	  "refresh_poll_interval": "15s"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings of the CLI
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
