package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/codepad/indent"
	"github.com/iw2rmb/codepad/internal/fsutil"
	"github.com/iw2rmb/codepad/internal/logging"
)

type formatFlags struct {
	write bool
}

func newFormatCommand(_ *globals) *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Re-indent code by brace and colon nesting",
		Long: `Re-indent every line: leading whitespace is replaced with four spaces per
open "{" or trailing ":" above it, and a line starting with "}" closes one
level. Reads stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := indent.ReformatText(string(data))

			if !flags.write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			}
			if name == "" {
				return errors.New("--write needs a file argument")
			}
			if out == string(data) {
				logging.Default().Debug("already formatted", logging.FieldPath, name)
				return nil
			}

			mode := os.FileMode(0o644)
			if info, err := os.Stat(name); err == nil {
				mode = info.Mode().Perm()
			}
			if err := fsutil.WriteAtomic(cmd.Context(), name, []byte(out), mode); err != nil {
				return fmt.Errorf("writing %s: %w", name, err)
			}
			logging.Default().Info("formatted", logging.FieldPath, name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write the result back to the file")

	return cmd
}
