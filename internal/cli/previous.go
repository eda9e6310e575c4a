package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/dailylog/internal/render"
)

func newPreviousCommand(ctx context.Context, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "previous",
		Short: "View the previous day's log entry.",
		RunE: func(cmd *cobra.Command, args []string) error {
			date := previousDay()
			out := cmd.OutOrStdout()

			content, exists, err := app.Manager.ReadDay(date)
			if err != nil {
				return err
			}
			if !exists {
				fmt.Fprintf(out, "No log entry found for previous day: %s\n", app.Manager.DayPath(date))
				return nil
			}
			if strings.TrimSpace(content) == "" {
				fmt.Fprintf(out, "Previous day's log is empty: %s\n", app.Manager.DayPath(date))
				return nil
			}

			dateStr := date.Format("2006-01-02")
			fmt.Fprintln(out, render.Banner(fmt.Sprintf("=== Log entry for %s ===", dateStr)))
			fmt.Fprintln(out, render.Markdown(content))
			fmt.Fprintln(out, render.Banner("=== End of log entry ==="))
			return nil
		},
	}
}

func newYesterdayCommand(ctx context.Context, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "yesterday",
		Short: "Add to the previous day's log entry.",
		RunE: func(cmd *cobra.Command, args []string) error {
			date := previousDay()
			dateStr := date.Format("2006-01-02")
			out := cmd.OutOrStdout()

			content, exists, err := app.Manager.ReadDay(date)
			if err != nil {
				return err
			}

			if exists && strings.TrimSpace(content) != "" {
				fmt.Fprintf(out, "Existing entry for %s:\n", dateStr)
				fmt.Fprintln(out, render.Banner(fmt.Sprintf("=== Log entry for %s ===", dateStr)))
				fmt.Fprintln(out, render.Markdown(content))
				fmt.Fprintln(out, render.Banner("=== End of existing entry ==="))
				fmt.Fprintln(out, "\nAppending to yesterday's log...")
			} else {
				fmt.Fprintf(out, "Creating new entry for yesterday (%s)\n", dateStr)
			}

			return captureEntry(ctx, cmd, app, date)
		},
	}
}
