package app

import "github.com/charmbracelet/lipgloss"

// Styles controls the shell chrome around the editor.
type Styles struct {
	Header      lipgloss.Style
	Brand       lipgloss.Style
	Language    lipgloss.Style
	Timer       lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style

	Output      lipgloss.Style
	OutputError lipgloss.Style
	Placeholder lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Background(lipgloss.Color("235")),
		Brand:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Padding(0, 1),
		Language:    lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Padding(0, 1),
		Timer:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1),

		Output:      lipgloss.NewStyle().Padding(0, 1),
		OutputError: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1),
	}
}
