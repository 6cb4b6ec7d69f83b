// Package tui implements the interactive terminal catalog browser on
// bubbletea. The browser is a presentation layer over view.Controller:
// every key press becomes a view action and every snapshot is redrawn.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentstation/ainything/pkg/errors"
	"github.com/agentstation/ainything/pkg/view"
)

// Run starts the browser on the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, session *view.Controller, opts Options, programOpts ...tea.ProgramOption) error {
	programOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, programOpts...)
	p := tea.NewProgram(New(ctx, session, opts), programOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
