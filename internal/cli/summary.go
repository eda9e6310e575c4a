package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/faizmokh/dailylog/internal/render"
	"github.com/faizmokh/dailylog/internal/summary"
)

func newSummaryCommand(ctx context.Context, app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize and review logs for the past N days.",
		RunE: func(cmd *cobra.Command, args []string) error {
			summarizer := summary.NewSummarizer(app.Manager, app.Config.SummaryDays)
			result, err := summarizer.Run(ctx, days)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "Number of days to include in summary")

	return cmd
}

func printSummary(out io.Writer, result summary.Result) {
	fmt.Fprintln(out, render.Header(fmt.Sprintf("=== Log Summary for Past %d Days ===", result.SpanDays)))

	if result.Empty() {
		fmt.Fprintf(out, "No log entries found for the past %d days on configured days.\n", result.SpanDays)
		return
	}

	fmt.Fprintln(out, render.Stat("\nSummary Statistics:"))
	fmt.Fprintf(out, "- Total days with entries: %d\n", result.TotalEntries)
	fmt.Fprintf(out, "- Logging consistency: %.1f%% (%d/%d days)\n",
		result.Consistency(), result.TotalEntries, result.EligibleDays)

	fmt.Fprintln(out, render.Section("\nDaily Entries:"))
	for _, day := range result.Days {
		fmt.Fprintln(out, render.DayHeading(fmt.Sprintf("\n--- %s (%s) ---",
			day.Date.Format("2006-01-02"), day.Date.Weekday())))
		for _, line := range day.Lines {
			if day.FromTitles {
				fmt.Fprintln(out, render.Title(fmt.Sprintf("  - %s", line)))
			} else {
				fmt.Fprintf(out, "  %s\n", line)
			}
		}
	}

	fmt.Fprintln(out, render.Header("\n=== End of Summary ==="))
}
