// Package buffer implements the document model for codepad: text, caret and
// selection, plus bounded snapshot history.
//
// Offsets are 0-based rune offsets into the whole document. Ranges are
// half-open: [Start, End). Row/column coordinates are 0-based and also count
// runes.
package buffer
