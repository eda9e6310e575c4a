package logbook

import (
	"fmt"
	"time"
)

// FormatEntry renders an entry as the markdown fragment appended to a day
// file. Titled entries become a `## HH:MM - Title` header with the body
// below; untitled entries pass their body through as a bare paragraph. The
// clock is always supplied by the caller.
func FormatEntry(entry Entry, now time.Time) string {
	if entry.HasTitle() {
		timestamp := now.Format("15:04")
		if entry.Body == "" {
			return fmt.Sprintf("## %s - %s\n", timestamp, entry.Title)
		}
		return fmt.Sprintf("## %s - %s\n\n%s\n", timestamp, entry.Title, entry.Body)
	}

	if entry.Body == "" {
		return ""
	}
	return fmt.Sprintf("%s\n", entry.Body)
}
