// Package highlight implements editor.Highlighter with chroma lexers and
// styles.
package highlight

import (
	"sync"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codepad/editor"
)

// DefaultTheme is used for unknown theme names.
const DefaultTheme = "monokai"

// maxCacheEntries bounds the per-line span cache.
const maxCacheEntries = 4096

// Chroma highlights one line at a time. Lines are tokenised independently,
// so constructs spanning lines (block comments, raw strings) are styled
// per line.
type Chroma struct {
	style *chroma.Style

	mu    sync.Mutex
	cache map[cacheKey][]editor.HighlightSpan
}

type cacheKey struct {
	lang string
	text string
}

var _ editor.Highlighter = (*Chroma)(nil)

// New returns a highlighter for the named chroma style.
func New(theme string) *Chroma {
	st := styles.Get(theme)
	if st == nil {
		st = styles.Get(DefaultTheme)
	}
	return &Chroma{style: st, cache: make(map[cacheKey][]editor.HighlightSpan)}
}

// Themes lists the available style names.
func Themes() []string { return styles.Names() }

// HighlightLine implements editor.Highlighter.
func (c *Chroma) HighlightLine(ctx editor.LineContext) ([]editor.HighlightSpan, error) {
	if ctx.Text == "" {
		return nil, nil
	}
	key := cacheKey{lang: ctx.Language, text: ctx.Text}

	c.mu.Lock()
	if spans, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return spans, nil
	}
	c.mu.Unlock()

	lexer := lexerFor(ctx.Language)
	if lexer == nil {
		return nil, nil
	}
	it, err := lexer.Tokenise(nil, ctx.Text)
	if err != nil {
		return nil, err
	}

	var spans []editor.HighlightSpan
	col := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		n := utf8.RuneCountInString(tok.Value)
		if st, ok := c.tokenStyle(tok.Type); ok && n > 0 {
			spans = append(spans, editor.HighlightSpan{StartCol: col, EndCol: col + n, Style: st})
		}
		col += n
	}

	c.mu.Lock()
	if len(c.cache) >= maxCacheEntries {
		c.cache = make(map[cacheKey][]editor.HighlightSpan)
	}
	c.cache[key] = spans
	c.mu.Unlock()
	return spans, nil
}

func (c *Chroma) tokenStyle(t chroma.TokenType) (lipgloss.Style, bool) {
	entry := c.style.Get(t)
	st := lipgloss.NewStyle()
	set := false
	if entry.Colour.IsSet() {
		st = st.Foreground(lipgloss.Color(entry.Colour.String()))
		set = true
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
		set = true
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
		set = true
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
		set = true
	}
	return st, set
}

// lexerFor resolves runtime keys ("cpp", "csharp") as well as chroma names.
func lexerFor(lang string) chroma.Lexer {
	if lang == "" {
		return nil
	}
	l := lexers.Get(lang)
	if l == nil {
		return nil
	}
	return chroma.Coalesce(l)
}
