package indent

import (
	"strings"

	"github.com/iw2rmb/codepad/buffer"
)

// Reformat re-indents lines.
//
// Each line is trimmed. A line starting with '}' closes the innermost level
// before it is emitted. The line is emitted at the current depth, then a
// trailing ':' opens a Colon level or a trailing '{' opens a Brace level.
//
// The result has the same number of lines and the same trimmed content.
// Unbalanced input never fails: a '}' with nothing open stays at depth zero,
// and levels left open at the end are ignored.
func Reformat(lines []string) []string {
	out := make([]string, len(lines))
	var st Stack
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "}") {
			st.Pop()
		}

		out[i] = st.Indent() + trimmed

		switch {
		case strings.HasSuffix(trimmed, ":"):
			st.Push(Colon)
		case strings.HasSuffix(trimmed, "{"):
			st.Push(Brace)
		}
	}
	return out
}

// ReformatText splits text into lines, reformats them and joins them back.
func ReformatText(text string) string {
	return buffer.JoinLines(Reformat(buffer.SplitLines(text)))
}

// ReformatEdit returns an edit replacing the whole document with its
// reformatted text. The caret keeps its (row, col) position, clamped into the
// new line. ok is false when formatting would not change the text.
func ReformatEdit(text []rune, caret int) (e buffer.Edit, ok bool) {
	src := string(text)
	lines := buffer.SplitLines(src)
	formatted := Reformat(lines)
	dst := buffer.JoinLines(formatted)
	if dst == src {
		return buffer.Edit{}, false
	}

	row, col := rowCol(text, caret)
	off := 0
	for i := 0; i < row; i++ {
		off += len([]rune(formatted[i])) + 1
	}
	lineLen := len([]rune(formatted[row]))
	if col > lineLen {
		col = lineLen
	}

	return buffer.Edit{
		Range: buffer.Range{Start: 0, End: len(text)},
		Text:  dst,
		Caret: off + col,
	}, true
}

func rowCol(text []rune, off int) (row, col int) {
	off = buffer.ClampOffset(off, len(text))
	for i := 0; i < off; i++ {
		if text[i] == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	return row, col
}
