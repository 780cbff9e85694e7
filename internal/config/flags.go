package config

import (
	"flag"
	"os"
	"time"

	"crewmirror/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend HTTP API (default from Config)
//	-d string   path to the SQLite mirror database (default from Config)
//	-t int      remote fetch timeout in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, so subcommand arguments pass through
// untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend HTTP API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the SQLite mirror database")
	fetchTimeout := fs.Int("t", int(cfg.FetchTimeout.Seconds()), "remote fetch timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.FetchTimeout = time.Duration(*fetchTimeout) * time.Second
}
