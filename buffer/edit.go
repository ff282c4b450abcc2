package buffer

import "github.com/iw2rmb/codepad/internal/grapheme"

// Replace substitutes the text in r with text and places the caret at caret.
//
// r and caret are clamped into the document. The pre-edit state is recorded in
// history before the text changes. The selection is cleared. A replace that
// would not change the text only moves the caret.
func (b *Buffer) Replace(r Range, text string, caret int) Document {
	r = ClampRange(r, len(b.text))
	if string(b.text[r.Start:r.End]) == text {
		b.SetCaret(caret)
		return b.Document()
	}

	b.hist.RecordBeforeEdit(b.Document())

	ins := []rune(text)
	next := make([]rune, 0, len(b.text)-r.Len()+len(ins))
	next = append(next, b.text[:r.Start]...)
	next = append(next, ins...)
	next = append(next, b.text[r.End:]...)
	b.text = next

	caret = ClampOffset(caret, len(b.text))
	b.anchor = caret
	b.caret = caret
	b.version++
	b.textVersion++
	return b.Document()
}

// InsertText inserts s at the caret, or replaces the active selection. The
// caret lands after the inserted text.
func (b *Buffer) InsertText(s string) {
	r := b.SelectionOrCaret()
	if s == "" && r.IsEmpty() {
		return
	}
	b.Replace(r, s, r.Start+len([]rune(s)))
}

// InsertNewline inserts a bare line break at the caret.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics: the selection if any, otherwise
// the grapheme cluster (or line break) before the caret.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.caret == 0 {
		return
	}
	start := b.caret - 1
	if b.text[start] != '\n' {
		ls := lineStart(b.text, b.caret)
		line := string(b.text[ls:b.caret])
		start = ls + grapheme.Prev(line, b.caret-ls)
	}
	b.Replace(Range{Start: start, End: b.caret}, "", start)
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.caret >= len(b.text) {
		return
	}
	end := b.caret + 1
	if b.text[b.caret] != '\n' {
		line := string(b.text[b.caret:b.LineEnd(b.caret)])
		end = b.caret + grapheme.Next(line, 0)
	}
	b.Replace(Range{Start: b.caret, End: end}, "", b.caret)
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.Replace(r, "", r.Start)
}
