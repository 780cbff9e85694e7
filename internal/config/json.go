package config

import (
	"encoding/json"
	"os"
	"time"

	"crewmirror/internal/flagx"
	"crewmirror/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so the timeout can be written either as a string
// like "10s" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerBaseURL string         `json:"server_base_url"`
	DatabasePath  string         `json:"database_path"`
	FetchTimeout  timex.Duration `json:"fetch_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file. The
// file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); when neither is set, no JSON is loaded.
//
// Absent JSON fields keep the value from the earlier stages. Read or
// unmarshal errors panic; a config file that was explicitly pointed at
// must be usable.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	jc := JsonConfig{
		ServerBaseURL: cfg.ServerBaseURL,
		DatabasePath:  cfg.DatabasePath,
		FetchTimeout:  timex.Duration{Duration: cfg.FetchTimeout},
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerBaseURL = jc.ServerBaseURL
	cfg.DatabasePath = jc.DatabasePath
	cfg.FetchTimeout = time.Duration(jc.FetchTimeout.Duration)
}
