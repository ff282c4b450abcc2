package highlight

import (
	"testing"

	"github.com/iw2rmb/codepad/editor"
)

func TestHighlightLine_Go(t *testing.T) {
	h := New("monokai")
	spans, err := h.HighlightLine(editor.LineContext{Text: "func main() {}", Language: "go"})
	if err != nil {
		t.Fatalf("HighlightLine: %v", err)
	}
	if len(spans) == 0 {
		t.Fatalf("expected spans for Go source")
	}
	if spans[0].StartCol != 0 || spans[0].EndCol != 4 {
		t.Fatalf("first span=[%d,%d), want keyword [0,4)", spans[0].StartCol, spans[0].EndCol)
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].StartCol < spans[i-1].EndCol {
			t.Fatalf("spans overlap: %v then %v", spans[i-1], spans[i])
		}
	}
}

func TestHighlightLine_RuntimeKeys(t *testing.T) {
	h := New("monokai")
	for _, lang := range []string{"cpp", "csharp", "javascript", "python", "rust"} {
		if lexerFor(lang) == nil {
			t.Fatalf("no lexer for %q", lang)
		}
	}
	spans, err := h.HighlightLine(editor.LineContext{Text: "x", Language: "no-such-language"})
	if err != nil || spans != nil {
		t.Fatalf("unknown language: spans=%v err=%v", spans, err)
	}
}

func TestHighlightLine_EmptyAndCached(t *testing.T) {
	h := New("does-not-exist")
	if spans, _ := h.HighlightLine(editor.LineContext{Language: "go"}); spans != nil {
		t.Fatalf("expected no spans for empty line")
	}

	ctx := editor.LineContext{Text: "return 1", Language: "go"}
	a, _ := h.HighlightLine(ctx)
	if _, ok := h.cache[cacheKey{lang: "go", text: "return 1"}]; !ok {
		t.Fatalf("expected line to be cached")
	}
	b, _ := h.HighlightLine(ctx)
	if len(a) != len(b) {
		t.Fatalf("cached result differs: %d vs %d spans", len(a), len(b))
	}
}
