package editor

import (
	"fmt"
	"strings"
)

// LineNumberWidth returns the line-number gutter width for lineCount: the
// digits plus one separator cell.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

func (m Model) gutterWidth(lineCount int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	w := LineNumberWidth(lineCount)
	if w > m.width {
		return m.width
	}
	return w
}

// renderGutter renders one number per document line. The gutter content has
// exactly as many lines as the text content so the two scroll in lockstep.
func (m Model) renderGutter(lineCount int) string {
	if !m.cfg.ShowLineNums || lineCount < 1 {
		return ""
	}

	digits := gutterDigits(lineCount)
	cursorRow := m.buf.PosFromOffset(m.buf.Caret()).Row

	out := make([]string, lineCount)
	for row := 0; row < lineCount; row++ {
		numStyle := m.cfg.Style.LineNum
		if m.focused && row == cursorRow {
			numStyle = m.cfg.Style.LineNumActive
		}
		out[row] = numStyle.Render(fmt.Sprintf("%*d", digits, row+1)) + m.cfg.Style.Gutter.Render(" ")
	}
	return strings.Join(out, "\n")
}

// syncGutter copies the text viewport's scroll offset to the gutter.
func (m *Model) syncGutter() {
	m.gutter.YOffset = m.text.YOffset
}
