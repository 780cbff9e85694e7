package config

import "time"

// Config holds runtime settings for the crewmirror CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - DatabasePath: filesystem path of the SQLite mirror database.
//   - FetchTimeout: per-request timeout for remote dataset fetches.
type Config struct {
	ServerBaseURL string
	DatabasePath  string
	FetchTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "crewmirror.db"
	c.FetchTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags
// (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
