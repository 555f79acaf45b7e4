package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/ledgervox/internal/engine"
)

// Run shows the dashboard until the user quits or ctx is canceled. sink
// must be the presenter the executor was built with.
func Run(ctx context.Context, executor *engine.Executor, sink *Sink, opts ...Option) error {
	if executor == nil {
		return fmt.Errorf("executor is required")
	}
	if sink == nil {
		return fmt.Errorf("presenter sink is required")
	}

	m := NewModel(ctx, executor, sink, opts...)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if m.config.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
