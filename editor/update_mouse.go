package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codepad/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if isWheel(msg) {
		var cmd tea.Cmd
		m.text, cmd = m.text.Update(msg)
		m.rebuild(false)
		return m, cmd
	}

	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}

		off := m.screenToOffset(msg.X, msg.Y)
		if msg.Shift {
			anchor := m.buf.Caret()
			if r, ok := m.buf.Selection(); ok {
				anchor = r.Start
				if m.buf.Caret() == r.Start {
					anchor = r.End
				}
			}
			m.mouseAnchor = anchor
			m.buf.SetSelection(buffer.Range{Start: anchor, End: off})
		} else {
			m.mouseAnchor = off
			m.buf.SetCaret(off)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: m.screenToOffset(x, y)})

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	m.finish(IntentPointer)
	return m, nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.width > 0 {
		x = clampInt(x, 0, m.width-1)
	}
	if m.height > 0 {
		y = clampInt(y, 0, m.height-1)
	}
	return x, y
}
