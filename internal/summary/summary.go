package summary

import (
	"context"
	"strings"
	"time"

	"github.com/faizmokh/dailylog/internal/files"
	"github.com/faizmokh/dailylog/internal/logbook"
)

// DaySummary is one recorded day inside the summary window.
type DaySummary struct {
	Date time.Time
	// Lines holds the extracted entry titles, or the first non-blank line
	// of content when no titles could be found.
	Lines []string
	// FromTitles distinguishes extracted titles from the fallback snippet.
	FromTitles bool
}

// Result carries the aggregated window: recorded days most recent first plus
// the consistency statistics.
type Result struct {
	SpanDays     int
	TotalEntries int
	EligibleDays int
	Days         []DaySummary
}

// Empty reports whether no eligible day in the window produced content.
func (r Result) Empty() bool {
	return len(r.Days) == 0
}

// Consistency returns the percentage of eligible days that have at least one
// non-empty entry. Only meaningful when the result is not empty, which
// guarantees at least one eligible day.
func (r Result) Consistency() float64 {
	return float64(r.TotalEntries) / float64(r.EligibleDays) * 100
}

// Summarizer scans a backward window of day files filtered by the configured
// weekdays and computes per-day display lines and consistency statistics.
type Summarizer struct {
	manager *files.Manager
	allowed map[time.Weekday]bool

	// now anchors the window. Tests override it.
	now func() time.Time
}

// NewSummarizer wires a summarizer over the log directory, resolving the
// configured weekday names into the allowed set.
func NewSummarizer(manager *files.Manager, summaryDays []string) *Summarizer {
	return &Summarizer{
		manager: manager,
		allowed: ResolveWeekdays(summaryDays),
		now:     time.Now,
	}
}

// Run walks spanDays calendar days backward from today. Each date whose
// weekday is allowed counts as eligible; eligible days whose file holds
// non-blank content are recorded in scan order, so the most recent day comes
// first.
func (s *Summarizer) Run(ctx context.Context, spanDays int) (Result, error) {
	today := s.today()
	result := Result{SpanDays: spanDays}

	for i := 0; i < spanDays; i++ {
		date := today.AddDate(0, 0, -i)
		if !s.allowed[date.Weekday()] {
			continue
		}
		result.EligibleDays++

		content, ok, err := s.manager.ReadDay(date)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			continue
		}
		day, ok := summarizeDay(date, content)
		if !ok {
			continue
		}
		result.TotalEntries++
		result.Days = append(result.Days, day)
	}

	return result, nil
}

func summarizeDay(date time.Time, content string) (DaySummary, bool) {
	if strings.TrimSpace(content) == "" {
		return DaySummary{}, false
	}

	titles := logbook.ExtractTitles(content)
	if len(titles) > 0 {
		return DaySummary{Date: date, Lines: titles, FromTitles: true}, true
	}

	line, _ := logbook.FirstNonBlankLine(content)
	return DaySummary{Date: date, Lines: []string{line}}, true
}

func (s *Summarizer) today() time.Time {
	now := s.now().In(time.Local)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
