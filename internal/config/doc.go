// Package config loads runtime configuration for the crewmirror CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally loaded from a .env file
//     (see parseEnv): CREWMIRROR_SERVER_URL, CREWMIRROR_DATABASE_PATH,
//     CREWMIRROR_FETCH_TIMEOUT.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP API
//	-d string   path to the SQLite mirror database
//	-t int      remote fetch timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://api.example.com",
//	  "database_path": "crewmirror.db",
//	  "fetch_timeout": "10s"
//	}
package config
