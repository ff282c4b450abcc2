package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codepad/buffer"
	"github.com/iw2rmb/codepad/indent"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	in, ok := m.planKey(msg)
	if !ok {
		return m, nil
	}
	m.apply(in)
	m.finish(in.Kind)
	return m, nil
}

// apply executes a planned intent. Text changes go through Replace with the
// caret at the end of the inserted text; the planned caret is recorded as
// pending and applied by finish.
func (m *Model) apply(in Intent) {
	if m.cfg.ReadOnly && in.Kind.mutates() {
		if in.Kind == IntentCut {
			m.copySelection()
		}
		return
	}

	switch in.Kind {
	case IntentMove, IntentSelect:
		m.buf.Move(in.Move)
	case IntentUndo:
		_ = m.buf.Undo()
	case IntentRedo:
		_ = m.buf.Redo()
	case IntentDelete:
		if in.Delete == DeleteForward {
			m.buf.DeleteForward()
		} else {
			m.buf.DeleteBackward()
		}
	case IntentCopy:
		m.copySelection()
	case IntentCut:
		m.cutSelection()
	case IntentPaste:
		if in.Edit.Text == "" {
			m.pasteClipboard()
			return
		}
		m.applyEdit(in.Edit)
	case IntentFormat:
		if e, ok := indent.ReformatEdit([]rune(m.buf.Text()), m.buf.Caret()); ok {
			m.applyEdit(e)
		}
	case IntentInsert, IntentPair, IntentTab, IntentNewline:
		m.applyEdit(in.Edit)
	}
}

func (m *Model) applyEdit(e buffer.Edit) {
	r := buffer.ClampRange(e.Range, m.buf.Len())
	m.buf.Replace(r, e.Text, r.Start+len([]rune(e.Text)))
	m.pendingCaret = e.Caret
	m.hasPending = true
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	r, ok := m.buf.Selection()
	if !ok {
		return
	}
	if s := m.buf.Slice(r); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m *Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	r, ok := m.buf.Selection()
	if !ok {
		return
	}
	if s := m.buf.Slice(r); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
	m.applyEdit(buffer.Edit{Range: r, Caret: r.Start})
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.applyEdit(insertIntent(IntentPaste, m.buf.SelectionOrCaret(), normalizeNewlines(s)).Edit)
}
