package indent

import (
	"strings"
	"unicode"

	"github.com/iw2rmb/codepad/buffer"
)

var bracketPairs = map[rune]rune{
	'{': '}',
	'[': ']',
	'(': ')',
}

// Newline returns the edit for Enter with selection sel.
//
// The new line repeats the leading whitespace of the caret's line (up to the
// caret). Between a bracket pair the pair is split over three lines and the
// caret lands on the middle one, one level deeper. After a line ending in ':'
// the new line gets one extra level.
func Newline(text []rune, sel buffer.Range) buffer.Edit {
	sel = buffer.ClampRange(sel, len(text))
	start := sel.Start

	ls := start
	for ls > 0 && text[ls-1] != '\n' {
		ls--
	}
	line := string(text[ls:start])
	base := leadingSpace(line)

	if start > 0 && start < len(text) {
		if closer, ok := bracketPairs[text[start-1]]; ok && text[start] == closer {
			head := "\n" + base + Unit
			return buffer.Edit{
				Range: sel,
				Text:  head + "\n" + base,
				Caret: start + len([]rune(head)),
			}
		}
	}

	ins := "\n" + base
	if strings.HasSuffix(strings.TrimSpace(line), ":") {
		ins += Unit
	}
	return buffer.Edit{
		Range: sel,
		Text:  ins,
		Caret: start + len([]rune(ins)),
	}
}

// leadingSpace returns the whitespace prefix of line.
func leadingSpace(line string) string {
	end := strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) })
	if end < 0 {
		return line
	}
	return line[:end]
}
