package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrNoInput is returned when neither a file nor piped stdin was given.
var ErrNoInput = errors.New("no input: pass a file or pipe code on stdin")

// readInput reads the file named by args[0], or stdin when no file (or "-")
// is given. An interactive stdin is rejected rather than waited on.
func readInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return "", nil, ErrNoInput
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", nil, fmt.Errorf("reading stdin: %w", err)
		}
		return "", data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return args[0], data, nil
}
