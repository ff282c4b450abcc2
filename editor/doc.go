// Package editor provides a Bubble Tea source-code editor component backed by
// the buffer package.
//
// Every key goes through the same pipeline: undo/redo, Tab, bracket and quote
// pairing, newline indentation, and finally plain insertion. Edits are applied
// through buffer.Replace, and the caret target chosen by the pipeline is
// applied as the last step of each Update.
//
// The component renders a line-number gutter that scrolls with the text and
// exposes hooks for highlighting, clipboard access, change events and running
// the document through an external Runner.
package editor
