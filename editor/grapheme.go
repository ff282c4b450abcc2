package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	graphemeutil "github.com/iw2rmb/codepad/internal/grapheme"
)

const tabWidth = 4

// cluster is one grapheme cluster of a line with its rune column and the
// terminal cells it occupies.
type cluster struct {
	Text  string
	Col   int
	Runes int
	Cell  int
	Width int
}

// lineClusters splits a line into clusters and lays them out in cells.
func lineClusters(line string) []cluster {
	parts := graphemeutil.Split(line)
	out := make([]cluster, 0, len(parts))
	col, cell := 0, 0
	for _, p := range parts {
		w := graphemeCellWidth(p, cell)
		n := len([]rune(p))
		out = append(out, cluster{Text: p, Col: col, Runes: n, Cell: cell, Width: w})
		col += n
		cell += w
	}
	return out
}

// cellOffset returns the cell at which rune column col starts in line.
func cellOffset(line string, col int) int {
	cell := 0
	for _, c := range lineClusters(line) {
		if c.Col >= col {
			return c.Cell
		}
		cell = c.Cell + c.Width
	}
	return cell
}

func graphemeCellWidth(text string, visualCol int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tw int) int {
	if tw <= 0 {
		tw = tabWidth
	}
	return tw - (visualCol % tw)
}
