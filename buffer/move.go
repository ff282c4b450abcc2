package buffer

import "github.com/iw2rmb/codepad/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, extends the selection; if false clears it
}

// Move repositions the caret. Movement never touches history.
func (b *Buffer) Move(m Move) {
	lines := b.Lines()
	cur := b.PosFromOffset(b.caret)
	next := b.OffsetFromPos(moveCursor(lines, cur, m))

	anchor := next
	if m.Extend {
		anchor = b.anchor
	}
	if next == b.caret && anchor == b.anchor {
		return
	}
	b.anchor = anchor
	b.caret = next
	b.version++
}

func moveCursor(lines []string, p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return moveGrapheme(lines, p, m.Dir)
	case MoveWord:
		return moveWord(lines, p, m.Dir)
	case MoveLine:
		return moveLine(lines, p, m.Dir)
	case MoveDoc:
		return moveDoc(lines, p, m.Dir)
	default:
		return p
	}
}

func lineRuneLen(lines []string, row int) int {
	return len([]rune(lines[row]))
}

func moveGrapheme(lines []string, p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(lines) - 1

	switch dir {
	case DirLeft:
		if row == 0 && col == 0 {
			return p
		}
		if col > 0 {
			return Pos{Row: row, Col: grapheme.Prev(lines[row], col)}
		}
		return Pos{Row: row - 1, Col: lineRuneLen(lines, row-1)}
	case DirRight:
		if row == lastRow && col == lineRuneLen(lines, lastRow) {
			return p
		}
		if col < lineRuneLen(lines, row) {
			return Pos{Row: row, Col: grapheme.Next(lines[row], col)}
		}
		return Pos{Row: row + 1, Col: 0}
	default:
		return moveLine(lines, p, dir)
	}
}

func moveLine(lines []string, p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(lines) - 1

	switch dir {
	case DirHome:
		return Pos{Row: row, Col: 0}
	case DirEnd:
		return Pos{Row: row, Col: lineRuneLen(lines, row)}
	case DirUp:
		if row == 0 {
			return p
		}
		nr := row - 1
		return Pos{Row: nr, Col: grapheme.Snap(lines[nr], col)}
	case DirDown:
		if row == lastRow {
			return p
		}
		nr := row + 1
		return Pos{Row: nr, Col: grapheme.Snap(lines[nr], col)}
	default:
		return p
	}
}

func moveWord(lines []string, p Pos, dir MoveDir) Pos {
	line := grapheme.Split(lines[p.Row])
	bounds := grapheme.Boundaries(lines[p.Row])
	idx := clusterIndex(bounds, p.Col)

	switch dir {
	case DirLeft:
		return Pos{Row: p.Row, Col: bounds[prevWordBoundary(line, idx)]}
	case DirRight:
		return Pos{Row: p.Row, Col: bounds[nextWordBoundary(line, idx)]}
	default:
		return moveLine(lines, p, dir)
	}
}

func moveDoc(lines []string, p Pos, dir MoveDir) Pos {
	lastRow := len(lines) - 1

	switch dir {
	case DirHome, DirUp:
		return Pos{Row: 0, Col: 0}
	case DirEnd, DirDown:
		return Pos{Row: lastRow, Col: lineRuneLen(lines, lastRow)}
	default:
		return p
	}
}

func clusterIndex(bounds []int, col int) int {
	idx := 0
	for i, b := range bounds {
		if b > col {
			break
		}
		idx = i
	}
	return idx
}

// Word boundaries skip whitespace, then non-whitespace. A newline is a hard
// boundary, so these operate on a single line of clusters.
func prevWordBoundary(line []string, i int) int {
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, i int) int {
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
