// Package split lays out two panes side by side with a divider the user can
// drag. The left pane's share of the width stays within [MinPercent,
// MaxPercent].
package split

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	MinPercent     = 30.0
	MaxPercent     = 70.0
	DefaultPercent = 60.0
)

// DividerWidth is the number of cells the divider occupies.
const DividerWidth = 1

// Style controls how the split is drawn.
type Style struct {
	Divider       lipgloss.Style
	DividerActive lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Divider:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		DividerActive: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	}
}

// Model tracks the split percentage and an in-progress drag.
//
// Coordinates passed to Update are screen coordinates; X is the column at
// which the split starts on screen.
type Model struct {
	X      int
	Width  int
	Height int
	Style  Style

	percent  float64
	dragging bool
}

// New returns a split at percent, or DefaultPercent when percent is out of
// range.
func New(percent float64) Model {
	if !inRange(percent) {
		percent = DefaultPercent
	}
	return Model{percent: percent, Style: DefaultStyle()}
}

// LeftPercent returns the left pane's share of the width.
func (m Model) LeftPercent() float64 { return m.percent }

func (m Model) Dragging() bool { return m.dragging }

// SetSize sets the container size.
func (m Model) SetSize(width, height int) Model {
	m.Width = max(width, 0)
	m.Height = max(height, 0)
	return m
}

// Begin starts tracking a drag.
func (m Model) Begin() Model {
	m.dragging = true
	return m
}

// End stops tracking a drag.
func (m Model) End() Model {
	m.dragging = false
	return m
}

// Move applies a pointer position x, relative to the container's left edge,
// while a drag is in progress. Positions that map outside [MinPercent,
// MaxPercent] and zero-width containers are ignored.
func (m Model) Move(x, containerWidth int) Model {
	if !m.dragging || containerWidth <= 0 {
		return m
	}
	p := 100 * float64(x) / float64(containerWidth)
	if !inRange(p) {
		return m
	}
	m.percent = p
	return m
}

// Update handles mouse input for the divider: a left press on the divider
// starts a drag, motion resizes and release ends it.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	mm, ok := msg.(tea.MouseMsg)
	if !ok {
		return m, nil
	}

	switch mm.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if mm.Button == tea.MouseButtonLeft && m.OnDivider(mm.X) {
			m = m.Begin()
		}
	case tea.MouseActionMotion:
		m = m.Move(mm.X-m.X, m.Width)
	case tea.MouseActionRelease:
		m = m.End()
	}
	return m, nil
}

// OnDivider reports whether screen column x hits the divider.
func (m Model) OnDivider(x int) bool {
	if m.Width <= 0 {
		return false
	}
	left, _ := m.Widths()
	col := x - m.X
	return col >= left && col < left+DividerWidth
}

// Widths returns the left and right pane widths in cells. Their sum plus
// DividerWidth equals Width when Width is large enough.
func (m Model) Widths() (left, right int) {
	avail := m.Width - DividerWidth
	if avail <= 0 {
		return 0, 0
	}
	left = int(math.Round(float64(m.Width) * m.percent / 100))
	left = min(max(left, 0), avail)
	return left, avail - left
}

// View renders left and right in their panes, separated by the divider.
func (m Model) View(left, right string) string {
	lw, rw := m.Widths()
	if lw == 0 && rw == 0 {
		return ""
	}

	h := max(m.Height, 1)
	ds := m.Style.Divider
	if m.dragging {
		ds = m.Style.DividerActive
	}
	divider := ds.Render(strings.TrimSuffix(strings.Repeat("│\n", h), "\n"))

	pane := lipgloss.NewStyle().Height(h).MaxHeight(h)
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		pane.Width(lw).MaxWidth(lw).Render(left),
		divider,
		pane.Width(rw).MaxWidth(rw).Render(right),
	)
}

func inRange(p float64) bool {
	return p >= MinPercent && p <= MaxPercent
}
