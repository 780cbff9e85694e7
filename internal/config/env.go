package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	envServerBaseURL = "CREWMIRROR_SERVER_URL"
	envDatabasePath  = "CREWMIRROR_DATABASE_PATH"
	envFetchTimeout  = "CREWMIRROR_FETCH_TIMEOUT"
)

// parseEnv overlays Config with values from the environment. A .env file
// in the working directory is loaded first when present; variables
// already exported win over the file, which is godotenv's default.
//
// CREWMIRROR_FETCH_TIMEOUT accepts time.ParseDuration syntax ("10s");
// malformed values are ignored rather than fatal.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envServerBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envFetchTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.FetchTimeout = d
		}
	}
}
