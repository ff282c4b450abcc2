package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/codepad/internal/config"
	"github.com/iw2rmb/codepad/internal/langdetect"
	"github.com/iw2rmb/codepad/internal/logging"
	"github.com/iw2rmb/codepad/runner"
)

// ErrRunFailed signals a program that ran and exited non-zero. Its stderr has
// already been printed.
var ErrRunFailed = errors.New("program failed")

type runFlags struct {
	language string
}

func newRunCommand(g *globals) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Execute code on the remote runner",
		Long: `Send code to the execution service and print its output. The language
comes from --language, then from the file name and content, then from the
configured default. Reads stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			lang := flags.language
			if lang == "" {
				lang = langdetect.DetectFile(name, data)
			}
			if lang == "" {
				lang = g.cfg.Language
			}

			logger := logging.Default()
			client := newRunner(g.cfg)
			logger.Debug("running", logging.FieldLanguage, lang, logging.FieldEndpoint, client.Endpoint())

			res, err := client.Run(cmd.Context(), runner.Request{Language: lang, Content: string(data)})
			if err != nil {
				return err
			}
			if res.Stdout != "" {
				fmt.Fprintln(cmd.OutOrStdout(), res.Stdout)
			}
			if !res.Success {
				fmt.Fprintln(cmd.ErrOrStderr(), res.Stderr)
				return ErrRunFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.language, "language", "l", "",
		"language name or runtime key: "+strings.Join(runtimeKeys(), ", "))

	return cmd
}

func runtimeKeys() []string {
	langs := runner.Languages()
	keys := make([]string, 0, len(langs))
	for _, l := range langs {
		keys = append(keys, l.Runtime)
	}
	return keys
}

func newRunner(cfg config.Config) *runner.Client {
	return runner.New(runner.Config{
		Endpoint: cfg.Runner.Endpoint,
		Timeout:  cfg.Runner.Timeout,
		Logger:   logging.Default(),
	})
}
