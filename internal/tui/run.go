package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"calendar-pro/internal/model"
)

// Run starts the full-screen program and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, deps Deps) error {
	p := tea.NewProgram(New(ctx, deps), tea.WithAltScreen(), tea.WithContext(ctx))

	// Mutations run inside Update, so Send must not block the caller.
	unsubscribe := deps.Source.Subscribe(func(c model.Change) {
		go p.Send(changeMsg{change: c})
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		deps.Logger.Errorf(ctx, "tui.Run: %v", err)
		return err
	}
	return nil
}
