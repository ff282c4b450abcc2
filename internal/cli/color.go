package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// colorEnabled resolves a --color mode against the output writer.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := w.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// applyColorMode sets the lipgloss color profile for command output.
func applyColorMode(mode string, w io.Writer) error {
	switch mode {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid --color %q: want auto, always or never", mode)
	}

	profile := termenv.Ascii
	if colorEnabled(mode, w) {
		profile = termenv.EnvColorProfile()
		if profile == termenv.Ascii {
			// "always" on a pipe still gets colors.
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
	return nil
}
