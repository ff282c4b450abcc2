// Package cli provides the Cobra command structure for codepad.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/iw2rmb/codepad/internal/config"
	"github.com/iw2rmb/codepad/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globals carries persistent flags and the configuration resolved from them
// into subcommands.
type globals struct {
	debug      bool
	configPath string
	color      string

	cfg config.Config
}

// NewRootCommand creates the root codepad command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "codepad [snippet-id]",
		Short: "A terminal code scratchpad with a remote runner",
		Long: `codepad is a terminal code editor for quick experiments.

Write code with auto-indentation and bracket pairing, run it on a remote
execution service, and keep the pieces worth keeping as snippets. Without a
subcommand codepad opens the editor, loading the snippet with the given ID
when one is passed.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), g.cfg, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&g.color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newFormatCommand(g))
	rootCmd.AddCommand(newRunCommand(g))
	rootCmd.AddCommand(newSnippetsCommand(g))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

func (g *globals) load(cmd *cobra.Command) error {
	if err := applyColorMode(g.color, cmd.OutOrStdout()); err != nil {
		return err
	}

	cfg, path, err := config.Load(config.LoadOptions{ExplicitPath: g.configPath})
	if err != nil {
		return err
	}
	g.cfg = cfg

	level := cfg.LogLevel
	if g.debug {
		level = "debug"
		g.cfg.LogLevel = level
	}
	logging.SetLevel(level)

	if path != "" {
		logging.Default().Debug("config loaded", logging.FieldPath, path)
	}
	return nil
}
