package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codepad/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer.
//
// The text and the line-number gutter live in two viewports. The gutter never
// scrolls on its own: its YOffset is copied from the text viewport after
// every scroll change.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	text   viewport.Model
	gutter viewport.Model

	width  int
	height int

	// xOffset is the first visible cell column of the text area.
	xOffset int

	// pendingCaret is the caret target planned for the current Update. It is
	// applied after the edit, as the last mutation of the cycle.
	pendingCaret int
	hasPending   bool

	mouseDragging bool
	mouseAnchor   int

	lastBufVersion uint64
	lastCaret      int
}

func New(cfg Config) Model {
	if isZeroKeyMap(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:     cfg,
		buf:     buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused: true,
		text:    viewport.New(0, 0),
		gutter:  viewport.New(0, 0),
	}
	m.gutter.MouseWheelEnabled = false
	m.lastBufVersion = m.buf.Version()
	m.lastCaret = m.buf.Caret()
	m.rebuild(false)
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Text() string { return m.buf.Text() }

// Caret returns the caret as a rune offset.
func (m Model) Caret() int { return m.buf.Caret() }

func (m Model) Language() string { return m.cfg.Language }

func (m Model) SetLanguage(lang string) Model {
	if m.cfg.Language == lang {
		return m
	}
	m.cfg.Language = lang
	m.rebuild(false)
	return m
}

// LineCount returns the number of lines shown in the gutter.
func (m Model) LineCount() int { return m.buf.LineCount() }

// SetText replaces the whole document. The replacement is a regular edit and
// can be undone.
func (m Model) SetText(text string) Model {
	m.applyEdit(buffer.Edit{
		Range: buffer.Range{Start: 0, End: m.buf.Len()},
		Text:  text,
		Caret: len([]rune(text)),
	})
	m.finish(IntentSetText)
	return m
}

// Reset loads a different document. History is cleared and the caret moves
// to the start.
func (m Model) Reset(text string) Model {
	m.buf.Reset(text)
	m.xOffset = 0
	m.text.SetYOffset(0)
	m.finish(IntentReset)
	return m
}

// Format re-indents the whole document as a single undoable edit.
func (m Model) Format() Model {
	if m.cfg.ReadOnly {
		return m
	}
	m.apply(Intent{Kind: IntentFormat})
	m.finish(IntentFormat)
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.rebuild(true)
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuild(true)
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuild(false)
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// YOffset returns the first visible line of the text area.
func (m Model) YOffset() int { return m.text.YOffset }

// GutterYOffset returns the first visible line of the gutter.
func (m Model) GutterYOffset() int { return m.gutter.YOffset }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		// Hosts may mutate the buffer directly between updates.
		m.finish(IntentNone)
		return m, nil
	}
}

func (m Model) View() string {
	if !m.cfg.ShowLineNums {
		return m.text.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.gutter.View(), m.text.View())
}

// finish ends an Update: it applies the pending caret, then rebuilds the
// view and emits a change event when the buffer moved on.
func (m *Model) finish(cause IntentKind) {
	if m.hasPending {
		m.buf.SetCaret(m.pendingCaret)
		m.hasPending = false
	}

	ver := m.buf.Version()
	caret := m.buf.Caret()
	if ver == m.lastBufVersion && caret == m.lastCaret {
		return
	}
	m.lastBufVersion = ver
	m.lastCaret = caret
	m.rebuild(true)

	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, cause))
	}
}

// rebuild renders both viewports. With follow set, the text viewport first
// scrolls so the caret is visible.
func (m *Model) rebuild(follow bool) {
	lines := m.buf.Lines()

	gw := m.gutterWidth(len(lines))
	tw := m.width - gw
	if tw < 0 {
		tw = 0
	}
	m.gutter.Width = gw
	m.gutter.Height = m.height
	m.text.Width = tw
	m.text.Height = m.height

	if follow {
		m.followCursor(lines)
	}
	m.clampYOffset(len(lines))

	m.text.SetContent(m.renderText(lines))
	m.gutter.SetContent(m.renderGutter(len(lines)))
	m.syncGutter()
}

func (m *Model) followCursor(lines []string) {
	cur := m.buf.PosFromOffset(m.buf.Caret())

	if h := m.text.Height; h > 0 {
		y := m.text.YOffset
		if cur.Row < y {
			y = cur.Row
		} else if cur.Row >= y+h {
			y = cur.Row - h + 1
		}
		m.text.YOffset = y
	}

	if w := m.text.Width; w > 0 && cur.Row < len(lines) {
		// Leave one cell for the cursor drawn past the end of the line.
		cx := cellOffset(lines[cur.Row], cur.Col)
		if cx < m.xOffset {
			m.xOffset = cx
		} else if cx >= m.xOffset+w {
			m.xOffset = cx - w + 1
		}
	}
}

func (m *Model) clampYOffset(lineCount int) {
	maxY := lineCount - m.text.Height
	if maxY < 0 {
		maxY = 0
	}
	m.text.YOffset = clampInt(m.text.YOffset, 0, maxY)
}

func isZeroKeyMap(km KeyMap) bool {
	return len(km.Left.Keys()) == 0 && len(km.Enter.Keys()) == 0 && len(km.Undo.Keys()) == 0
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
