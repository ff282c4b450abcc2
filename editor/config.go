package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Language is passed to the Highlighter and the Runner. The editor itself
	// treats it as an opaque string.
	Language string

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// Forwarded to buffer.Options.
	HistoryLimit int

	KeyMap KeyMap

	// ReadOnly disables every text mutation. Movement, selection and copy
	// still work.
	ReadOnly bool

	// Optional integrations.
	Clipboard   Clipboard
	Highlighter Highlighter
	Runner      Runner

	// OnChange is called once per Update that changed text, caret or
	// selection.
	OnChange func(ChangeEvent)
}

// DefaultConfig returns a Config with line numbers, the default style and
// key bindings.
func DefaultConfig() Config {
	return Config{
		ShowLineNums: true,
		Style:        DefaultStyle(),
		KeyMap:       DefaultKeyMap(),
	}
}
