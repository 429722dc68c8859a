package config

import "time"

// Config holds runtime settings for the roster client.
//
// Fields:
//   - ServerBaseURL: base URL of the activities backend, no trailing slash.
//   - RequestTimeout: per-request deadline applied by the CLI; zero disables it.
//   - DatabasePath: SQLite file holding durable client state (the session token).
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "roster.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
