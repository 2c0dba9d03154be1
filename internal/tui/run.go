package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marimarques/cobrador/internal/engine"
	"github.com/marimarques/cobrador/internal/storage"
)

// Run starts the interactive chat session and blocks until the operator
// quits or the context is canceled. The store may be nil; chat then runs
// without transcript persistence.
func Run(ctx context.Context, eng *engine.Engine, store *storage.Store) error {
	p := tea.NewProgram(
		newModel(ctx, eng, store),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat session failed: %w", err)
	}
	return nil
}
