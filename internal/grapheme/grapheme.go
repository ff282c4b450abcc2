package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Boundaries returns the rune offsets at which grapheme clusters start, plus
// the rune length of text as the final entry. An empty text yields [0].
func Boundaries(text string) []int {
	out := []int{0}
	if text == "" {
		return out
	}
	g := uniseg.NewGraphemes(text)
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Prev returns the largest cluster boundary strictly before col, or 0.
func Prev(text string, col int) int {
	prev := 0
	for _, b := range Boundaries(text) {
		if b >= col {
			break
		}
		prev = b
	}
	return prev
}

// Next returns the smallest cluster boundary strictly after col, or the rune
// length of text.
func Next(text string, col int) int {
	bounds := Boundaries(text)
	for _, b := range bounds {
		if b > col {
			return b
		}
	}
	return bounds[len(bounds)-1]
}

// Snap returns the largest cluster boundary at or before col.
func Snap(text string, col int) int {
	snapped := 0
	for _, b := range Boundaries(text) {
		if b > col {
			break
		}
		snapped = b
	}
	return snapped
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
