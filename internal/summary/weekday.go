package summary

import (
	"strings"
	"time"
)

// ParseWeekday matches a configured day name against full English weekday
// names and their 3-letter abbreviations, case-insensitive. Unrecognized
// strings yield ok=false.
func ParseWeekday(name string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "monday", "mon":
		return time.Monday, true
	case "tuesday", "tue":
		return time.Tuesday, true
	case "wednesday", "wed":
		return time.Wednesday, true
	case "thursday", "thu":
		return time.Thursday, true
	case "friday", "fri":
		return time.Friday, true
	case "saturday", "sat":
		return time.Saturday, true
	case "sunday", "sun":
		return time.Sunday, true
	default:
		return time.Sunday, false
	}
}

// ResolveWeekdays builds the allowed-weekday set from configured names.
// Unrecognized names are silently dropped, not an error.
func ResolveWeekdays(names []string) map[time.Weekday]bool {
	allowed := make(map[time.Weekday]bool, len(names))
	for _, name := range names {
		if day, ok := ParseWeekday(name); ok {
			allowed[day] = true
		}
	}
	return allowed
}
