// Package clipboard adapts the system clipboard to editor.Clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("system clipboard unsupported")

// System reads and writes the OS clipboard.
type System struct{}

func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	return clipboard.ReadAll()
}

func (System) WriteText(s string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(s)
}

// Memory is an in-process clipboard used when the system one is unavailable.
type Memory struct {
	text string
}

func (m *Memory) ReadText() (string, error) { return m.text, nil }

func (m *Memory) WriteText(s string) error {
	m.text = s
	return nil
}

// Clipboard is the method set shared by System and Memory.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Auto returns System when the platform supports it, otherwise a Memory
// clipboard.
func Auto() Clipboard {
	if clipboard.Unsupported {
		return &Memory{}
	}
	return System{}
}
