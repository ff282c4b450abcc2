// Package app is the interactive codepad shell: an editor and an output
// panel side by side, a language selector, snippets and a session timer.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/codepad/editor"
	"github.com/iw2rmb/codepad/internal/config"
	"github.com/iw2rmb/codepad/internal/logging"
	"github.com/iw2rmb/codepad/runner"
	"github.com/iw2rmb/codepad/snippet"
	"github.com/iw2rmb/codepad/split"
)

const headerHeight = 1

// Options wires the shell's collaborators. Zero values disable the matching
// feature: no Runner means ctrl+r reports an error, no Store disables saving.
type Options struct {
	Context     context.Context
	Config      config.Config
	Runner      editor.Runner
	Store       snippet.Store
	Clipboard   editor.Clipboard
	Highlighter editor.Highlighter
	Logger      *log.Logger

	// Snippet, when set, is loaded into the editor on start.
	Snippet *snippet.Snippet
}

type mode int

const (
	modeEdit mode = iota
	modeTitle
)

type snippetSavedMsg struct {
	snippet snippet.Snippet
	err     error
}

type Model struct {
	ctx    context.Context
	keys   KeyMap
	styles Styles
	logger *log.Logger
	store  snippet.Store

	editor    editor.Model
	split     split.Model
	output    viewport.Model
	spinner   spinner.Model
	stopwatch stopwatch.Model
	help      help.Model
	title     textinput.Model
	mode      mode

	snippet snippet.Snippet
	running bool
	out     string
	errText string

	status    string
	statusErr bool

	width  int
	height int
}

func New(opts Options) Model {
	cfg := opts.Config
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.New(cfg.LogLevel, nil)
	}

	lang := runner.DefaultLanguage
	if l, ok := runner.Lookup(cfg.Language); ok {
		lang = l.Runtime
	}

	ecfg := editor.DefaultConfig()
	ecfg.Language = lang
	ecfg.ShowLineNums = cfg.LineNumbers
	ecfg.HistoryLimit = cfg.HistoryLimit
	ecfg.Clipboard = opts.Clipboard
	ecfg.Highlighter = opts.Highlighter
	ecfg.Runner = opts.Runner

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ti := textinput.New()
	ti.Prompt = "Title: "
	ti.Placeholder = "snippet title"
	ti.CharLimit = 120

	m := Model{
		ctx:       ctx,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		logger:    logger,
		store:     opts.Store,
		editor:    editor.New(ecfg),
		split:     split.New(cfg.SplitPercent),
		output:    viewport.New(0, 0),
		spinner:   sp,
		stopwatch: stopwatch.NewWithInterval(time.Second),
		help:      help.New(),
		title:     ti,
	}
	if opts.Snippet != nil {
		m = m.LoadSnippet(*opts.Snippet)
	}
	return m.refreshOutput()
}

// Run starts the shell on the alternate screen and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	opts.Context = ctx
	p := tea.NewProgram(New(opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// Editor returns the embedded editor.
func (m Model) Editor() editor.Model { return m.editor }

// Snippet returns the snippet being edited. Its ID is empty until the first
// save.
func (m Model) Snippet() snippet.Snippet { return m.snippet }

// LoadSnippet replaces the document with s. Undo history is cleared.
func (m Model) LoadSnippet(s snippet.Snippet) Model {
	m.editor = m.editor.Reset(s.Content)
	if l, ok := runner.Lookup(s.Language); ok {
		m.editor = m.editor.SetLanguage(l.Runtime)
	}
	m.snippet = s
	m.out, m.errText = "", ""
	m = m.setStatus("loaded "+s.Title, false)
	m.logger.Debug("snippet loaded", logging.FieldSnippetID, s.ID, logging.FieldLanguage, s.Language)
	return m.refreshOutput()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.layout(), nil

	case tea.KeyMsg:
		if m.mode == modeTitle {
			return m.updateTitle(msg)
		}
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case editor.RunFinishedMsg:
		return m.finishRun(msg), nil

	case snippetSavedMsg:
		return m.finishSave(msg), nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m.refreshOutput(), cmd

	case stopwatch.TickMsg, stopwatch.StartStopMsg, stopwatch.ResetMsg:
		var cmd tea.Cmd
		m.stopwatch, cmd = m.stopwatch.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.mode == modeTitle {
		m.title, cmd = m.title.Update(msg)
		return m, cmd
	}
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) run() (Model, tea.Cmd) {
	if m.running {
		return m, nil
	}
	cmd := m.editor.Run(m.ctx)
	if cmd == nil {
		return m.setStatus("no runner configured", true), nil
	}

	m.running = true
	m.out, m.errText = "", ""
	m.logger.Debug("run started",
		logging.FieldLanguage, m.editor.Language(),
		logging.FieldBytes, len(m.editor.Text()),
	)
	return m.refreshOutput(), tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) finishRun(msg editor.RunFinishedMsg) Model {
	m.running = false
	switch {
	case msg.Err != nil:
		m.errText = runErrorText(msg.Err)
		m.logger.Warn("run failed", logging.FieldLanguage, msg.Request.Language, logging.FieldError, msg.Err)
	case !msg.Result.Success:
		m.errText = msg.Result.Stderr
	default:
		m.out = msg.Result.Stdout
	}
	m.logger.Info("run finished",
		logging.FieldLanguage, msg.Request.Language,
		logging.FieldSuccess, msg.Err == nil && msg.Result.Success,
		logging.FieldDuration, msg.Result.Duration,
	)
	m.output.GotoTop()
	return m.refreshOutput()
}

func runErrorText(err error) string {
	switch {
	case errors.Is(err, runner.ErrEmptyCode):
		return "Please enter some code"
	case errors.Is(err, runner.ErrUnsupportedLanguage):
		return "Unsupported language"
	case errors.Is(err, runner.ErrRequestFailed):
		return "Error executing code"
	default:
		return err.Error()
	}
}

func (m Model) cycleLanguage() Model {
	l := runner.Next(m.editor.Language())
	m.editor = m.editor.SetLanguage(l.Runtime)
	return m.setStatus("language: "+l.Name, false)
}

func (m Model) clearOutput() Model {
	if m.running {
		return m
	}
	m.out, m.errText = "", ""
	return m.refreshOutput()
}

func (m Model) promptTitle() (Model, tea.Cmd) {
	if m.store == nil {
		return m.setStatus("snippets are not configured", true), nil
	}
	m.mode = modeTitle
	m.title.SetValue(m.snippet.Title)
	m.title.CursorEnd()
	return m.layout(), m.title.Focus()
}

func (m Model) updateTitle(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeEdit
		m.title.Blur()
		return m.layout(), nil
	case key.Matches(msg, m.keys.Confirm):
		m.mode = modeEdit
		m.title.Blur()

		s := m.snippet
		s.Title = m.title.Value()
		s.Language = m.editor.Language()
		s.Content = m.editor.Text()
		return m.layout(), m.save(s)
	}

	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	return m, cmd
}

func (m Model) save(s snippet.Snippet) tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		saved, err := store.Save(ctx, s)
		return snippetSavedMsg{snippet: saved, err: err}
	}
}

func (m Model) finishSave(msg snippetSavedMsg) Model {
	if msg.err != nil {
		m.logger.Warn("snippet save failed", logging.FieldError, msg.err)
		switch {
		case errors.Is(msg.err, snippet.ErrExists):
			return m.setStatus("a snippet with this title already exists", true)
		case errors.Is(msg.err, snippet.ErrInvalid):
			return m.setStatus("title and code are required", true)
		default:
			return m.setStatus("save failed: "+msg.err.Error(), true)
		}
	}
	m.snippet = msg.snippet
	m.logger.Info("snippet saved", logging.FieldSnippetID, msg.snippet.ID, logging.FieldTitle, msg.snippet.Title)
	return m.setStatus("saved "+msg.snippet.Title, false)
}

func (m Model) setStatus(s string, isErr bool) Model {
	m.status = s
	m.statusErr = isErr
	return m
}
