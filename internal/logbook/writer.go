package logbook

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/faizmokh/dailylog/internal/files"
)

const filePermissions = 0o644

// TextSource acquires free-form text from the user. The production
// implementation launches an external editor; tests substitute a fake.
type TextSource interface {
	// Capture returns text authored from a blank starting point.
	Capture(ctx context.Context) (string, error)
	// CaptureSeeded returns text authored starting from seed.
	CaptureSeeded(ctx context.Context, seed string) (string, error)
}

// EditOutcome describes what an in-place edit did to the day file.
type EditOutcome uint8

const (
	// EditUnchanged means the file was left untouched.
	EditUnchanged EditOutcome = iota
	// EditUpdated means the file now holds the replacement content.
	EditUpdated
	// EditRemoved means the file was deleted because it was blanked out.
	EditRemoved
)

// Writer appends formatted entries to per-day markdown files and supports
// full-file in-place edits of a day.
type Writer struct {
	manager *files.Manager

	// now supplies the timestamp stamped onto titled entries. Tests override it.
	now func() time.Time
}

// NewWriter wires the dependencies required to manipulate day files.
func NewWriter(manager *files.Manager) *Writer {
	return &Writer{manager: manager, now: time.Now}
}

// Append parses raw editor text, formats it with the current time, and
// appends the fragment to the day file for date, creating the file if
// absent. An empty fragment is a no-op success: the file is neither created
// nor modified. Existing content is never truncated.
func (w *Writer) Append(ctx context.Context, date time.Time, raw string) error {
	if w == nil || w.manager == nil {
		return fmt.Errorf("writer not initialized with file manager")
	}

	entry := ParseEntry(raw)
	fragment := FormatEntry(entry, w.now())
	if strings.TrimSpace(fragment) == "" {
		return nil
	}

	path := w.manager.DayPath(date)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePermissions)
	if err != nil {
		return fmt.Errorf("open day file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(fragment + "\n"); err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}

// EditInPlace loads the full content of the day file, hands it to the text
// source as a seed, and reconciles the result: changed non-blank content
// replaces the file verbatim, blanked-out content deletes an existing file,
// anything else leaves the file untouched.
func (w *Writer) EditInPlace(ctx context.Context, date time.Time, source TextSource) (EditOutcome, error) {
	if w == nil || w.manager == nil {
		return EditUnchanged, fmt.Errorf("writer not initialized with file manager")
	}

	existing, existed, err := w.manager.ReadDay(date)
	if err != nil {
		return EditUnchanged, err
	}

	replacement, err := source.CaptureSeeded(ctx, existing)
	if err != nil {
		return EditUnchanged, fmt.Errorf("capture replacement content: %w", err)
	}

	path := w.manager.DayPath(date)
	switch {
	case replacement != existing && strings.TrimSpace(replacement) != "":
		if err := atomic.WriteFile(path, strings.NewReader(replacement)); err != nil {
			return EditUnchanged, fmt.Errorf("replace day file: %w", err)
		}
		return EditUpdated, nil
	case strings.TrimSpace(replacement) == "" && existed:
		if err := os.Remove(path); err != nil {
			return EditUnchanged, fmt.Errorf("remove day file: %w", err)
		}
		return EditRemoved, nil
	default:
		return EditUnchanged, nil
	}
}
