package editor

import "github.com/iw2rmb/codepad/buffer"

type ChangeEvent struct {
	Version     uint64
	TextVersion uint64

	// Caret is a rune offset; Cursor is the same position as (row, col).
	Caret  int
	Cursor buffer.Pos

	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Cause is the intent that produced the change. Programmatic changes
	// (SetText, Reset, Format) report their own kinds.
	Cause IntentKind

	// Simplest payload; host can diff if needed.
	Text string
}

// TextChanged reports whether the event carries a text change relative to
// prevTextVersion.
func (ev ChangeEvent) TextChanged(prevTextVersion uint64) bool {
	return ev.TextVersion != prevTextVersion
}

func buildChangeEvent(b *buffer.Buffer, cause IntentKind) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Caret:       b.Caret(),
		Cursor:      b.PosFromOffset(b.Caret()),
		Cause:       cause,
		Text:        b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
