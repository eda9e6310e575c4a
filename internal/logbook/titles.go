package logbook

import "strings"

// ExtractTitles scans markdown content for header lines and returns the
// human-readable titles in document order. Entry headers written by
// FormatEntry (`## HH:MM - Title`) yield everything after the first " - ";
// plain `# ` and `### ` headers yield their text with the leading hashes
// stripped.
func ExtractTitles(content string) []string {
	var titles []string

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "## ") && strings.Contains(trimmed, " - "):
			parts := strings.SplitN(trimmed, " - ", 2)
			titles = append(titles, parts[1])
		case strings.HasPrefix(trimmed, "# ") || strings.HasPrefix(trimmed, "### "):
			titles = append(titles, strings.TrimSpace(strings.TrimLeft(trimmed, "#")))
		}
	}

	return titles
}

// FirstNonBlankLine returns the first line of content with visible text,
// trimmed. Used as a display fallback when a day has no extractable titles.
func FirstNonBlankLine(content string) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			return trimmed, true
		}
	}
	return "", false
}
