package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/codepad/editor"
)

// KeyMap holds the shell's bindings. Everything not bound here goes to the
// editor.
type KeyMap struct {
	Run        key.Binding
	Language   key.Binding
	Save       key.Binding
	Clear      key.Binding
	Timer      key.Binding
	TimerReset key.Binding
	Help       key.Binding
	Quit       key.Binding

	// Title prompt.
	Confirm key.Binding
	Cancel  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Run:        key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "run")),
		Language:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "language")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Clear:      key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "clear output")),
		Timer:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "start/pause timer")),
		TimerReset: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "reset timer")),
		Help:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),

		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// helpKeys merges shell and editor bindings for the help bar.
type helpKeys struct {
	app    KeyMap
	editor editor.KeyMap
}

func (h helpKeys) ShortHelp() []key.Binding {
	return []key.Binding{h.app.Run, h.app.Language, h.app.Save, h.editor.Format, h.app.Timer, h.app.Help, h.app.Quit}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.app.Run, h.app.Language, h.app.Clear},
		{h.app.Save, h.app.Timer, h.app.TimerReset},
		{h.editor.Format, h.editor.Undo, h.editor.Redo},
		{h.editor.Copy, h.editor.Cut, h.editor.Paste},
		{h.app.Help, h.app.Quit},
	}
}

type promptKeys struct{ app KeyMap }

func (p promptKeys) ShortHelp() []key.Binding { return []key.Binding{p.app.Confirm, p.app.Cancel} }

func (p promptKeys) FullHelp() [][]key.Binding { return [][]key.Binding{p.ShortHelp()} }
