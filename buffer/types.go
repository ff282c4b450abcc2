package buffer

// Range is a half-open span of rune offsets into the document: [Start, End).
type Range struct {
	Start int
	End   int
}

// Pos points into the document by (row, col) in runes. Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Edit replaces the text in Range with Text and then places the caret at
// Caret (an absolute rune offset into the resulting document).
type Edit struct {
	Range Range
	Text  string
	Caret int
}

// Document is a value snapshot of buffer state.
//
// Selection is normalized (Start <= End). A collapsed selection means no
// selection; Caret is the insertion point.
type Document struct {
	Text      string
	Caret     int
	Selection Range
}

// Snapshot is the unit stored by History.
type Snapshot = Document

// Collapsed returns an empty range at off.
func Collapsed(off int) Range {
	return Range{Start: off, End: off}
}

func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) Len() int {
	r = NormalizeRange(r)
	return r.End - r.Start
}

// HasSelection reports whether d carries a non-empty selection.
func (d Document) HasSelection() bool {
	return !d.Selection.IsEmpty()
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampOffset clamps off into [0, length].
func ClampOffset(off, length int) int {
	return clampInt(off, 0, length)
}

// ClampRange clamps both ends of r into [0, length] and normalizes it.
func ClampRange(r Range, length int) Range {
	return NormalizeRange(Range{
		Start: ClampOffset(r.Start, length),
		End:   ClampOffset(r.End, length),
	})
}
