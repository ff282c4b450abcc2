package editor

// screenToOffset maps viewport-local mouse coordinates to a document offset.
//
// Coordinates are in terminal cells and relative to the editor: (0,0) is the
// top-left cell, gutter included. Gutter clicks map to the line start, and
// x/y are clamped into document bounds.
func (m Model) screenToOffset(x, y int) int {
	lines := m.buf.Lines()
	row := clampInt(m.text.YOffset+y, 0, len(lines)-1)

	off := 0
	for r := 0; r < row; r++ {
		off += len([]rune(lines[r])) + 1
	}

	x -= m.gutterWidth(len(lines))
	if x < 0 {
		return off
	}
	target := x + m.xOffset

	line := lines[row]
	for _, c := range lineClusters(line) {
		if target < c.Cell+c.Width {
			return off + c.Col
		}
	}
	return off + len([]rune(line))
}

// docToScreen maps a document offset to viewport-local coordinates. ok is
// false when the position is scrolled out of view.
func (m Model) docToScreen(off int) (x, y int, ok bool) {
	p := m.buf.PosFromOffset(off)
	lines := m.buf.Lines()

	y = p.Row - m.text.YOffset
	if y < 0 || (m.text.Height > 0 && y >= m.text.Height) {
		return 0, 0, false
	}

	cx := cellOffset(lines[p.Row], p.Col) - m.xOffset
	if cx < 0 || (m.text.Width > 0 && cx >= m.text.Width) {
		return 0, 0, false
	}
	return m.gutterWidth(len(lines)) + cx, y, true
}

// CursorScreenPos returns the caret's viewport-local cell, if visible.
func (m Model) CursorScreenPos() (x, y int, ok bool) {
	return m.docToScreen(m.buf.Caret())
}
