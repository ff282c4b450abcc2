package editor

import (
	"strings"

	"github.com/iw2rmb/codepad/buffer"
)

// renderText renders the document one line per row. Rows outside the visible
// window are emitted empty: the viewport never shows them, and every scroll
// change triggers a rebuild.
func (m Model) renderText(lines []string) string {
	caret := m.buf.Caret()
	cursor := m.buf.PosFromOffset(caret)
	sel, selOK := m.buf.Selection()

	first, last := 0, len(lines)
	if h := m.text.Height; h > 0 {
		first = clampInt(m.text.YOffset, 0, len(lines))
		last = min(first+h, len(lines))
	}

	left := max(m.xOffset, 0)
	right := int(^uint(0) >> 1)
	if m.text.Width > 0 {
		right = left + m.text.Width
	}

	out := make([]string, len(lines))
	off := 0
	for row, line := range lines {
		if row >= first && row < last {
			cursorCol := -1
			if m.focused && row == cursor.Row {
				cursorCol = cursor.Col
			}
			out[row] = m.renderLine(row, line, off, cursorCol, sel, selOK, left, right)
		}
		off += len([]rune(line)) + 1
	}
	return strings.Join(out, "\n")
}

func (m Model) renderLine(
	row int,
	line string,
	lineOff int,
	cursorCol int,
	sel buffer.Range,
	selOK bool,
	left, right int,
) string {
	st := m.cfg.Style
	highlights := m.highlightForLine(row, line, cursorCol)

	var sb strings.Builder
	end := 0
	for _, c := range lineClusters(line) {
		end = c.Cell + c.Width
		if end <= left {
			continue
		}
		if c.Cell >= right {
			break
		}

		style := st.Text
		if hl, ok := spanStyleAt(highlights, c.Col); ok {
			style = hl.Inherit(style)
		}
		abs := lineOff + c.Col
		if selOK && abs >= sel.Start && abs < sel.End {
			style = st.Selection.Inherit(style)
		}
		if c.Col == cursorCol {
			style = st.Cursor.Inherit(style)
		}

		sb.WriteString(style.Render(visibleCluster(c, left, right)))
	}

	// The caret past the last cluster is drawn as a blank cell.
	if cursorCol >= len([]rune(line)) && end >= left && end < right {
		sb.WriteString(st.Cursor.Inherit(st.Text).Render(" "))
	}
	return sb.String()
}

// visibleCluster returns the text to draw for c clipped to [left, right).
// Tabs and clipped wide clusters are drawn as spaces.
func visibleCluster(c cluster, left, right int) string {
	start := max(c.Cell, left)
	end := min(c.Cell+c.Width, right)
	if c.Text == "\t" || start != c.Cell || end != c.Cell+c.Width {
		return strings.Repeat(" ", max(end-start, 0))
	}
	return c.Text
}

func (m Model) highlightForLine(row int, line string, cursorCol int) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}
	spans, err := m.cfg.Highlighter.HighlightLine(LineContext{
		Row:       row,
		Text:      line,
		Language:  m.cfg.Language,
		CursorCol: cursorCol,
		HasCursor: cursorCol >= 0,
	})
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, len([]rune(line)))
}
