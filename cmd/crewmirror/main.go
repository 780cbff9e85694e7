package main

import (
	"context"
	"log"
	"os"
	"strings"

	"crewmirror/internal/cli"
	"crewmirror/internal/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	// Strip config flags so only the subcommand and its args remain.
	args := subcommandArgs(os.Args[1:])
	if err := app.Run(ctx, args); err != nil {
		log.Fatalf("%v", err)
	}
}

// subcommandArgs drops the flags handled by the config package,
// leaving positional arguments like "sync" or "reset drivers".
func subcommandArgs(args []string) []string {
	valueFlags := map[string]struct{}{
		"-a": {}, "-d": {}, "-t": {}, "-c": {}, "-config": {},
	}
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			if strings.Contains(arg, "=") {
				continue
			}
			if _, ok := valueFlags[arg]; ok && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
			}
			continue
		}
		rest = append(rest, arg)
	}
	return rest
}
