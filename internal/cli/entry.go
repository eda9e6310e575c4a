package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/dailylog/internal/logbook"
)

// captureEntry opens the text source for a fresh entry and appends it to the
// day file for date. Empty input aborts with an informational message, not
// an error.
func captureEntry(ctx context.Context, cmd *cobra.Command, app *App, date time.Time) error {
	raw, err := app.Source.Capture(ctx)
	if err != nil {
		return err
	}

	if strings.TrimSpace(raw) == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "No content written. Aborted.")
		return nil
	}

	writer := logbook.NewWriter(app.Manager)
	if err := writer.Append(ctx, date, raw); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Log saved to %s\n", app.Manager.DayPath(date))
	app.syncService().AutoSync(ctx)
	return nil
}

func newEditCommand(ctx context.Context, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit today's log file in place.",
		Long:  "edit opens today's full log in the editor. Saving changed content rewrites the file; clearing it deletes the file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := logbook.NewWriter(app.Manager)
			outcome, err := writer.EditInPlace(ctx, today(), app.Source)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch outcome {
			case logbook.EditUpdated:
				fmt.Fprintf(out, "Log saved to %s\n", app.Manager.TodayPath())
				app.syncService().AutoSync(ctx)
			case logbook.EditRemoved:
				fmt.Fprintln(out, "Log file removed (content was empty)")
				app.syncService().AutoSync(ctx)
			default:
				fmt.Fprintln(out, "No changes made.")
			}
			return nil
		},
	}
}
