// Package main is the entry point for the codepad CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/iw2rmb/codepad/internal/cli"
	"github.com/iw2rmb/codepad/internal/logging"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// The program's own stderr has already been printed.
		if !errors.Is(err, cli.ErrRunFailed) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return 1
	}
	return 0
}
