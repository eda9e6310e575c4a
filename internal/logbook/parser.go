package logbook

import "strings"

// ParseEntry splits raw editor text into an Entry using the git commit
// message convention: first line is the title, content after the first blank
// line is the body. When no blank line separates them, everything after the
// first line is still body. When the first line is blank, the entire raw
// input passes through untouched as body.
func ParseEntry(raw string) Entry {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return Entry{}
	}

	title := strings.TrimSpace(lines[0])
	if title == "" {
		return Entry{Body: raw}
	}

	bodyStart := 1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			bodyStart = i + 1
			break
		}
	}

	var body string
	if bodyStart < len(lines) {
		body = strings.TrimSpace(strings.Join(lines[bodyStart:], "\n"))
	}

	return Entry{Title: title, Body: body}
}

// splitLines tokenizes editor text without treating a trailing newline as an
// extra empty line.
func splitLines(input string) []string {
	if input == "" {
		return nil
	}
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
