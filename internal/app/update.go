package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codepad/split"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Run):
		return m.run()
	case key.Matches(msg, m.keys.Language):
		return m.cycleLanguage(), nil
	case key.Matches(msg, m.keys.Save):
		return m.promptTitle()
	case key.Matches(msg, m.keys.Clear):
		return m.clearOutput(), nil
	case key.Matches(msg, m.keys.Timer):
		return m, m.stopwatch.Toggle()
	case key.Matches(msg, m.keys.TimerReset):
		return m, tea.Batch(m.stopwatch.Stop(), m.stopwatch.Reset())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.layout(), nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// updateMouse routes screen coordinates to the split divider, the editor or
// the output panel. Editor and output receive pane-local coordinates.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	local := msg
	local.Y = msg.Y - headerHeight

	if m.split.Dragging() ||
		(msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.split.OnDivider(msg.X)) {
		m.split, _ = m.split.Update(msg)
		return m.layout(), nil
	}

	lw, _ := m.split.Widths()
	var cmd tea.Cmd
	switch {
	case msg.X >= lw+split.DividerWidth && msg.Action == tea.MouseActionPress:
		local.X = msg.X - lw - split.DividerWidth
		m.output, cmd = m.output.Update(local)
	case msg.X < lw || msg.Action != tea.MouseActionPress:
		// Motion and release always reach the editor so a selection drag
		// can leave the pane.
		m.editor, cmd = m.editor.Update(local)
	}
	return m, cmd
}
