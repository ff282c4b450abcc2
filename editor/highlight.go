package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type HighlightSpan struct {
	// StartCol and EndCol are rune indices in the line, half-open
	// [StartCol, EndCol).
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

type LineContext struct {
	Row      int
	Text     string
	Language string

	// CursorCol is the rune index of the caret if it is on this row;
	// otherwise -1.
	CursorCol int
	HasCursor bool
}

// Highlighter styles a single line. Errors drop highlighting for that line.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = max(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartCol, 0, lineLen)
		end := clampInt(sp.EndCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartCol: start, EndCol: end, Style: sp.Style})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol < out[j].EndCol
	})

	// Enforce non-overlap deterministically by dropping any overlapping spans.
	merged := make([]HighlightSpan, 0, len(out))
	for _, sp := range out {
		if len(merged) > 0 && sp.StartCol < merged[len(merged)-1].EndCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func spanStyleAt(spans []HighlightSpan, col int) (lipgloss.Style, bool) {
	for _, sp := range spans {
		if col < sp.StartCol {
			break
		}
		if col < sp.EndCol {
			return sp.Style, true
		}
	}
	return lipgloss.Style{}, false
}
