package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codepad/runner"
)

func (m Model) layout() Model {
	bodyH := max(m.height-headerHeight-lipgloss.Height(m.footerView()), 0)
	m.split = m.split.SetSize(m.width, bodyH)
	lw, rw := m.split.Widths()

	m.editor = m.editor.SetSize(lw, bodyH)
	m.output.Width = rw
	m.output.Height = bodyH
	m.help.Width = m.width
	m.title.Width = max(m.width-lipgloss.Width(m.title.Prompt)-1, 0)
	return m.refreshOutput()
}

func (m Model) refreshOutput() Model {
	_, rw := m.split.Widths()
	st := m.styles

	var body string
	switch {
	case m.running:
		body = st.Output.Render(m.spinner.View() + " Running...")
	case m.errText != "":
		body = st.OutputError.Width(rw).Render(m.errText)
	case m.out != "":
		body = st.Output.Width(rw).Render(m.out)
	default:
		body = st.Placeholder.Width(rw).Render("Output appears here. Press " + m.keys.Run.Help().Key + " to run.")
	}
	m.output.SetContent(body)
	return m
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	body := m.split.View(m.editor.View(), m.output.View())
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.footerView())
}

func (m Model) headerView() string {
	st := m.styles

	lang := m.editor.Language()
	if l, ok := runner.Lookup(lang); ok {
		lang = l.Name
	}

	parts := []string{st.Brand.Render("codepad"), st.Language.Render(lang), m.timerView()}
	if m.snippet.Title != "" {
		parts = append(parts, st.Status.Render(m.snippet.Title))
	}
	if m.status != "" {
		ss := st.Status
		if m.statusErr {
			ss = st.StatusError
		}
		parts = append(parts, ss.Render(m.status))
	}

	line := strings.Join(parts, "│")
	return st.Header.Width(m.width).MaxWidth(m.width).MaxHeight(headerHeight).Render(line)
}

func (m Model) footerView() string {
	if m.mode == modeTitle {
		return lipgloss.JoinVertical(lipgloss.Left, m.title.View(), m.help.View(promptKeys{app: m.keys}))
	}
	return m.help.View(helpKeys{app: m.keys, editor: m.editor.KeyMap()})
}
