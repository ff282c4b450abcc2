package buffer

import "strings"

// SplitLines splits text on '\n'. Joining the result with '\n' reproduces
// text exactly; an empty text yields a single empty line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// LineCount returns 1 + the number of '\n' characters in text.
func LineCount(text string) int {
	return 1 + strings.Count(text, "\n")
}

func (b *Buffer) Lines() []string { return SplitLines(b.Text()) }

func (b *Buffer) LineCount() int {
	n := 1
	for _, r := range b.text {
		if r == '\n' {
			n++
		}
	}
	return n
}

// PosFromOffset converts a rune offset into (row, col). off is clamped.
func (b *Buffer) PosFromOffset(off int) Pos {
	return posFromOffset(b.text, off)
}

// OffsetFromPos converts (row, col) into a rune offset. Rows and columns are
// clamped into the document.
func (b *Buffer) OffsetFromPos(p Pos) int {
	return offsetFromPos(b.text, p)
}

// LineStart returns the offset of the first rune of the line containing off.
func (b *Buffer) LineStart(off int) int {
	return lineStart(b.text, off)
}

// LineEnd returns the offset of the '\n' ending the line containing off, or
// the document length on the last line.
func (b *Buffer) LineEnd(off int) int {
	off = ClampOffset(off, len(b.text))
	for i := off; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			return i
		}
	}
	return len(b.text)
}

func lineStart(text []rune, off int) int {
	off = ClampOffset(off, len(text))
	for i := off - 1; i >= 0; i-- {
		if text[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

func posFromOffset(text []rune, off int) Pos {
	off = ClampOffset(off, len(text))
	row, col := 0, 0
	for i := 0; i < off; i++ {
		if text[i] == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	return Pos{Row: row, Col: col}
}

func offsetFromPos(text []rune, p Pos) int {
	if p.Row < 0 {
		return 0
	}
	row := 0
	i := 0
	for i < len(text) && row < p.Row {
		if text[i] == '\n' {
			row++
		}
		i++
	}
	if row < p.Row {
		// Past the last row: clamp to the end of the document.
		return len(text)
	}
	col := 0
	for i < len(text) && text[i] != '\n' && col < p.Col {
		i++
		col++
	}
	return i
}
