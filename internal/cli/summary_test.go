package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/faizmokh/dailylog/internal/summary"
)

func TestPrintSummaryEmptyResult(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, summary.Result{SpanDays: 7})

	if !strings.Contains(out.String(), "No log entries found for the past 7 days on configured days.") {
		t.Fatalf("output = %q, want no-entries message", out.String())
	}
}

func TestPrintSummaryStatsAndDays(t *testing.T) {
	result := summary.Result{
		SpanDays:     7,
		TotalEntries: 3,
		EligibleDays: 5,
		Days: []summary.DaySummary{
			{
				Date:       time.Date(2025, time.November, 7, 0, 0, 0, 0, time.Local),
				Lines:      []string{"Friday entry", "Second title"},
				FromTitles: true,
			},
			{
				Date:  time.Date(2025, time.November, 5, 0, 0, 0, 0, time.Local),
				Lines: []string{"a plain paragraph"},
			},
		},
	}

	var out bytes.Buffer
	printSummary(&out, result)
	got := out.String()

	for _, want := range []string{
		"=== Log Summary for Past 7 Days ===",
		"- Total days with entries: 3",
		"- Logging consistency: 60.0% (3/5 days)",
		"--- 2025-11-07 (Friday) ---",
		"  - Friday entry",
		"  - Second title",
		"--- 2025-11-05 (Wednesday) ---",
		"  a plain paragraph",
		"=== End of Summary ===",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryCommandReadsLogDir(t *testing.T) {
	app := newTestApp(t, &fakeSource{}, &fakeVCS{})
	// Every weekday is eligible so the test does not depend on what day it runs.
	app.Config.SummaryDays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

	if err := os.WriteFile(app.Manager.TodayPath(), []byte("## 09:00 - Today's entry\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := runCommand(t, app, "summary", "--days", "3")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.Contains(out, "=== Log Summary for Past 3 Days ===") {
		t.Fatalf("output = %q, want summary header", out)
	}
	if !strings.Contains(out, "Today's entry") {
		t.Fatalf("output = %q, want today's title", out)
	}
	if !strings.Contains(out, "(1/3 days)") {
		t.Fatalf("output = %q, want 1/3 consistency", out)
	}
}
