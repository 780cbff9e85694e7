// Package cli wires the mirror engine into a small command-line app:
// login, daily sync, profile inspection, and per-dataset reset.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"crewmirror/internal/config"
	"crewmirror/internal/logging"
	"crewmirror/internal/remote"
	"crewmirror/internal/repositories/appmeta"
	"crewmirror/internal/services"
	"crewmirror/internal/store"
)

type App struct {
	config   *config.Config
	store    *store.Store
	client   remote.Client
	manager  *services.SyncManager
	profiles *services.ProfileService
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	st, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open mirror database: %w", err)
	}

	client := remote.NewHTTPClient(cfg.ServerBaseURL, cfg.FetchTimeout)

	app := &App{
		config:   cfg,
		store:    st,
		client:   client,
		manager:  services.NewSyncManager(st, client, log),
		profiles: services.NewProfileService(st.Profile, client, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	app.restoreSession(ctx)
	return app, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

// Run dispatches the subcommand. Unknown or missing subcommands print
// usage and return an error so main can exit non-zero.
func (a *App) Run(ctx context.Context, args []string) error {
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "login":
		return a.runLogin(ctx)
	case "sync":
		return a.runSync(ctx)
	case "profile":
		return a.runProfile(ctx)
	case "reset":
		if len(args) < 2 {
			a.usage()
			return fmt.Errorf("reset needs a dataset name")
		}
		return a.runReset(ctx, args[1])
	case "", "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, `Usage: crewmirror <command>

Commands:
  login            authenticate and cache the profile locally
  sync             refresh all reference datasets (once per day)
  profile          show the locally cached profile
  reset <dataset>  clear one dataset's mirror and refetch stamp
  help             show this message`)
}

// restoreSession installs a previously stored token on the client,
// unless it has expired. A missing or expired token is not an error;
// commands that need authentication will ask for a login.
func (a *App) restoreSession(ctx context.Context) {
	token, err := a.store.AppMeta.Get(ctx, appmeta.KeyAuthToken)
	if err != nil || token == "" {
		return
	}
	if remote.TokenExpired(token, timeNow()) {
		a.log.Info(ctx, "stored token expired, login required")
		return
	}
	a.client.SetToken(token)
}
