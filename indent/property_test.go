package indent

import (
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_ReformatIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOf(rapid.StringMatching(`[ \t]{0,3}[a-z(){}:]{0,6}[ ]{0,2}`)).Draw(t, "lines")
		once := Reformat(lines)
		twice := Reformat(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("not idempotent:\n once=%q\ntwice=%q", once, twice)
		}
	})
}

func TestProperty_ReformatPreservesTrimmedContent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOf(rapid.StringMatching(`[ \t]{0,3}[a-z(){}:]{0,6}`)).Draw(t, "lines")
		out := Reformat(lines)
		if len(out) != len(lines) {
			t.Fatalf("len=%d, want %d", len(out), len(lines))
		}
		for i := range lines {
			if strings.TrimSpace(out[i]) != strings.TrimSpace(lines[i]) {
				t.Fatalf("line %d: %q -> %q", i, lines[i], out[i])
			}
			indent := len(out[i]) - len(strings.TrimLeft(out[i], " "))
			if indent%len(Unit) != 0 {
				t.Fatalf("line %d indent %d is not a multiple of %d", i, indent, len(Unit))
			}
		}
	})
}
