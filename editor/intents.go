package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codepad/autopair"
	"github.com/iw2rmb/codepad/buffer"
	"github.com/iw2rmb/codepad/indent"
)

// IntentKind identifies the semantic action requested by input handling.
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentInsert
	IntentPair
	IntentTab
	IntentNewline
	IntentDelete
	IntentMove
	IntentSelect
	IntentUndo
	IntentRedo
	IntentCopy
	IntentCut
	IntentPaste
	IntentFormat
	IntentSetText
	IntentReset
	IntentPointer
)

func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "none"
	case IntentInsert:
		return "insert"
	case IntentPair:
		return "pair"
	case IntentTab:
		return "tab"
	case IntentNewline:
		return "newline"
	case IntentDelete:
		return "delete"
	case IntentMove:
		return "move"
	case IntentSelect:
		return "select"
	case IntentUndo:
		return "undo"
	case IntentRedo:
		return "redo"
	case IntentCopy:
		return "copy"
	case IntentCut:
		return "cut"
	case IntentPaste:
		return "paste"
	case IntentFormat:
		return "format"
	case IntentSetText:
		return "set_text"
	case IntentReset:
		return "reset"
	case IntentPointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// mutates reports whether k changes the document text.
func (k IntentKind) mutates() bool {
	switch k {
	case IntentInsert, IntentPair, IntentTab, IntentNewline, IntentDelete,
		IntentUndo, IntentRedo, IntentCut, IntentPaste, IntentFormat:
		return true
	default:
		return false
	}
}

// DeleteDirection identifies requested delete direction semantics.
type DeleteDirection uint8

const (
	DeleteBackward DeleteDirection = iota
	DeleteForward
)

// Intent is the plan produced for one input event, before anything is
// applied. Edit is set for insert-like kinds, Move for movement and Delete
// for deletions.
type Intent struct {
	Kind   IntentKind
	Edit   buffer.Edit
	Move   buffer.Move
	Delete DeleteDirection
}

// planKey maps a key to an intent. The order of checks is the input
// pipeline: history, Tab, auto-pair, newline, then plain insertion.
func (m Model) planKey(msg tea.KeyMsg) (Intent, bool) {
	km := m.cfg.KeyMap
	sel := m.buf.SelectionOrCaret()

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return insertIntent(IntentPaste, sel, normalizeNewlines(string(msg.Runes))), true
	}

	switch {
	case key.Matches(msg, km.Undo):
		return Intent{Kind: IntentUndo}, true
	case key.Matches(msg, km.Redo):
		return Intent{Kind: IntentRedo}, true

	case key.Matches(msg, km.Tab):
		return Intent{Kind: IntentTab, Edit: autopair.Tab(sel)}, true
	case key.Matches(msg, km.Enter):
		return Intent{Kind: IntentNewline, Edit: indent.Newline([]rune(m.buf.Text()), sel)}, true

	case key.Matches(msg, km.Left):
		return moveIntent(buffer.MoveGrapheme, buffer.DirLeft, false), true
	case key.Matches(msg, km.Right):
		return moveIntent(buffer.MoveGrapheme, buffer.DirRight, false), true
	case key.Matches(msg, km.Up):
		return moveIntent(buffer.MoveLine, buffer.DirUp, false), true
	case key.Matches(msg, km.Down):
		return moveIntent(buffer.MoveLine, buffer.DirDown, false), true

	case key.Matches(msg, km.ShiftLeft):
		return moveIntent(buffer.MoveGrapheme, buffer.DirLeft, true), true
	case key.Matches(msg, km.ShiftRight):
		return moveIntent(buffer.MoveGrapheme, buffer.DirRight, true), true
	case key.Matches(msg, km.ShiftUp):
		return moveIntent(buffer.MoveLine, buffer.DirUp, true), true
	case key.Matches(msg, km.ShiftDown):
		return moveIntent(buffer.MoveLine, buffer.DirDown, true), true

	case key.Matches(msg, km.WordLeft):
		return moveIntent(buffer.MoveWord, buffer.DirLeft, false), true
	case key.Matches(msg, km.WordRight):
		return moveIntent(buffer.MoveWord, buffer.DirRight, false), true

	case key.Matches(msg, km.Home):
		return moveIntent(buffer.MoveLine, buffer.DirHome, false), true
	case key.Matches(msg, km.End):
		return moveIntent(buffer.MoveLine, buffer.DirEnd, false), true
	case key.Matches(msg, km.ShiftHome):
		return moveIntent(buffer.MoveLine, buffer.DirHome, true), true
	case key.Matches(msg, km.ShiftEnd):
		return moveIntent(buffer.MoveLine, buffer.DirEnd, true), true
	case key.Matches(msg, km.DocStart):
		return moveIntent(buffer.MoveDoc, buffer.DirHome, false), true
	case key.Matches(msg, km.DocEnd):
		return moveIntent(buffer.MoveDoc, buffer.DirEnd, false), true

	case key.Matches(msg, km.Backspace):
		return Intent{Kind: IntentDelete, Delete: DeleteBackward}, true
	case key.Matches(msg, km.Delete):
		return Intent{Kind: IntentDelete, Delete: DeleteForward}, true

	case key.Matches(msg, km.Copy):
		return Intent{Kind: IntentCopy}, true
	case key.Matches(msg, km.Cut):
		return Intent{Kind: IntentCut}, true
	case key.Matches(msg, km.Paste):
		return Intent{Kind: IntentPaste}, true
	case key.Matches(msg, km.Format):
		return Intent{Kind: IntentFormat}, true
	}

	switch msg.Type {
	case tea.KeySpace:
		return insertIntent(IntentInsert, sel, " "), true
	case tea.KeyRunes:
		if len(msg.Runes) == 0 || msg.Alt {
			return Intent{}, false
		}
		if len(msg.Runes) == 1 {
			if e, ok := autopair.Pair(sel, msg.Runes[0]); ok {
				return Intent{Kind: IntentPair, Edit: e}, true
			}
		}
		return insertIntent(IntentInsert, sel, string(msg.Runes)), true
	}
	return Intent{}, false
}

func moveIntent(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) Intent {
	kind := IntentMove
	if extend {
		kind = IntentSelect
	}
	return Intent{Kind: kind, Move: buffer.Move{Unit: unit, Dir: dir, Extend: extend}}
}

func insertIntent(kind IntentKind, sel buffer.Range, text string) Intent {
	return Intent{
		Kind: kind,
		Edit: buffer.Edit{
			Range: sel,
			Text:  text,
			Caret: sel.Start + len([]rune(text)),
		},
	}
}

// Normalize newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
