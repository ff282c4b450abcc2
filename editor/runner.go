package editor

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codepad/runner"
)

// Runner executes a document. Implementations are called from a tea.Cmd
// goroutine and must not touch the Model.
type Runner interface {
	Run(ctx context.Context, req runner.Request) (runner.Result, error)
}

// RunFinishedMsg carries the outcome of Model.Run.
type RunFinishedMsg struct {
	Request runner.Request
	Result  runner.Result
	Err     error
}

// Run returns a command that sends the current text and language to the
// configured Runner. It returns nil when no Runner is configured.
func (m Model) Run(ctx context.Context) tea.Cmd {
	if m.cfg.Runner == nil {
		return nil
	}
	r := m.cfg.Runner
	req := runner.Request{Language: m.cfg.Language, Content: m.buf.Text()}
	return func() tea.Msg {
		res, err := r.Run(ctx, req)
		return RunFinishedMsg{Request: req, Result: res, Err: err}
	}
}
