package buffer

// DefaultHistoryLimit bounds undo depth when Options.HistoryLimit is zero.
const DefaultHistoryLimit = 500

type Options struct {
	// HistoryLimit bounds the undo stack. Zero means DefaultHistoryLimit;
	// a negative value disables history.
	HistoryLimit int
}

// Buffer is the pure document state: text, caret, and selection.
//
// All text mutations go through Replace, which records the pre-edit state in
// the buffer's History.
type Buffer struct {
	text        []rune
	version     uint64
	textVersion uint64

	// anchor is the fixed end of the selection; caret is the moving end.
	// anchor == caret means no selection.
	anchor int
	caret  int

	hist *History
}

func New(text string, opt Options) *Buffer {
	limit := opt.HistoryLimit
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	return &Buffer{
		text: []rune(text),
		hist: NewHistory(limit),
	}
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the document length in runes.
func (b *Buffer) Len() int { return len(b.text) }

// Version increments on every effective change (text, caret, or selection).
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Caret() int { return b.caret }

// Selection returns the normalized selection. ok is false when collapsed.
func (b *Buffer) Selection() (Range, bool) {
	r := NormalizeRange(Range{Start: b.anchor, End: b.caret})
	if r.IsEmpty() {
		return Collapsed(b.caret), false
	}
	return r, true
}

// SelectionOrCaret returns the selection, or a collapsed range at the caret.
func (b *Buffer) SelectionOrCaret() Range {
	r, _ := b.Selection()
	return r
}

// Document returns a value snapshot of the current state.
func (b *Buffer) Document() Document {
	return Document{
		Text:      b.Text(),
		Caret:     b.caret,
		Selection: b.SelectionOrCaret(),
	}
}

// SetCaret moves the caret and clears the selection. Out-of-range offsets are
// clamped. Caret movement is never recorded in history.
func (b *Buffer) SetCaret(off int) {
	off = ClampOffset(off, len(b.text))
	if off == b.caret && b.anchor == b.caret {
		return
	}
	b.anchor = off
	b.caret = off
	b.version++
}

// SetSelection selects r with the caret at r.End. r is clamped but not
// normalized, so a reversed range keeps its direction.
func (b *Buffer) SetSelection(r Range) {
	anchor := ClampOffset(r.Start, len(b.text))
	caret := ClampOffset(r.End, len(b.text))
	if anchor == b.anchor && caret == b.caret {
		return
	}
	b.anchor = anchor
	b.caret = caret
	b.version++
}

func (b *Buffer) ClearSelection() {
	if b.anchor == b.caret {
		return
	}
	b.anchor = b.caret
	b.version++
}

// History exposes the buffer's undo/redo stacks.
func (b *Buffer) History() *History { return b.hist }

func (b *Buffer) CanUndo() bool { return b.hist.CanUndo() }

func (b *Buffer) CanRedo() bool { return b.hist.CanRedo() }

// Reset replaces the whole document and clears history. Used when a
// different document is loaded into the same buffer.
func (b *Buffer) Reset(text string) {
	b.text = []rune(text)
	b.anchor = 0
	b.caret = 0
	b.hist.Reset()
	b.version++
	b.textVersion++
}

// Slice returns the text in r (clamped).
func (b *Buffer) Slice(r Range) string {
	r = ClampRange(r, len(b.text))
	return string(b.text[r.Start:r.End])
}

// RuneAt returns the rune at off, if any.
func (b *Buffer) RuneAt(off int) (rune, bool) {
	if off < 0 || off >= len(b.text) {
		return 0, false
	}
	return b.text[off], true
}

func (b *Buffer) restore(d Document) {
	b.text = []rune(d.Text)
	sel := ClampRange(d.Selection, len(b.text))
	caret := ClampOffset(d.Caret, len(b.text))
	b.anchor, b.caret = caret, caret
	if !sel.IsEmpty() {
		if caret == sel.Start {
			b.anchor = sel.End
		} else {
			b.anchor = sel.Start
		}
	}
	b.version++
	b.textVersion++
}
