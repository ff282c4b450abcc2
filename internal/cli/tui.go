package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/codepad/highlight"
	"github.com/iw2rmb/codepad/internal/app"
	"github.com/iw2rmb/codepad/internal/clipboard"
	"github.com/iw2rmb/codepad/internal/config"
	"github.com/iw2rmb/codepad/internal/logging"
	"github.com/iw2rmb/codepad/runner"
	"github.com/iw2rmb/codepad/snippet"
)

// runTUI opens the editor. Logs go to the configured log file, or nowhere,
// so they never draw over the alt screen.
func runTUI(ctx context.Context, cfg config.Config, args []string) error {
	logger, closer, err := tuiLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := snippet.NewFileStore(cfg.Snippets.Dir)
	opts := app.Options{
		Config: cfg,
		Runner: runner.New(runner.Config{
			Endpoint: cfg.Runner.Endpoint,
			Timeout:  cfg.Runner.Timeout,
			Logger:   logger,
		}),
		Store:       store,
		Clipboard:   clipboard.Auto(),
		Highlighter: highlight.New(cfg.Theme),
		Logger:      logger,
	}

	if len(args) == 1 {
		s, err := store.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("loading snippet %s: %w", args[0], err)
		}
		opts.Snippet = &s
	}

	logger.Info("starting", logging.FieldLanguage, cfg.Language, logging.FieldPath, store.Dir())
	return app.Run(logging.WithLogger(ctx, logger), opts)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func tuiLogger(cfg config.Config) (*log.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return logging.New(cfg.LogLevel, nil), nopCloser{}, nil
	}
	logger, closer, err := logging.NewFile(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return logger, closer, nil
}
