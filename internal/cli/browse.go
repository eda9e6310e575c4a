package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/dailylog/internal/ui"
)

func newBrowseCommand(ctx context.Context, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse day logs interactively in the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, app.Manager)
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}
}
