// Package autopair closes brackets and quotes as they are typed and defines
// the Tab insertion.
package autopair

import "github.com/iw2rmb/codepad/buffer"

// TabText is inserted by Tab. It is deliberately narrower than indent.Unit.
const TabText = "  "

var pairs = map[rune]rune{
	'(':  ')',
	'[':  ']',
	'{':  '}',
	'"':  '"',
	'\'': '\'',
	'`':  '`',
}

// Closer returns the closing counterpart of opener.
func Closer(opener rune) (rune, bool) {
	c, ok := pairs[opener]
	return c, ok
}

func IsOpener(r rune) bool {
	_, ok := pairs[r]
	return ok
}

// Openers returns the recognized openers in a stable order.
func Openers() []rune {
	return []rune{'(', '[', '{', '"', '\'', '`'}
}

// Pair returns the edit for typing r over sel. For an opener the selection is
// replaced with the opener and its closer and the caret lands between them.
// ok is false for any other rune, and the caller falls back to plain
// insertion.
//
// A closer typed in front of an identical closer is inserted, not skipped.
func Pair(sel buffer.Range, r rune) (buffer.Edit, bool) {
	closer, ok := pairs[r]
	if !ok {
		return buffer.Edit{}, false
	}
	sel = buffer.NormalizeRange(sel)
	return buffer.Edit{
		Range: sel,
		Text:  string([]rune{r, closer}),
		Caret: sel.Start + 1,
	}, true
}

// Tab returns the edit for the Tab key: the selection is replaced with
// TabText and the caret moves past it.
func Tab(sel buffer.Range) buffer.Edit {
	sel = buffer.NormalizeRange(sel)
	return buffer.Edit{
		Range: sel,
		Text:  TabText,
		Caret: sel.Start + len(TabText),
	}
}
