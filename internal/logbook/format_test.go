package logbook

import (
	"testing"
	"time"
)

var formatClock = time.Date(2025, time.November, 2, 9, 5, 0, 0, time.UTC)

func TestFormatEntryTitleOnly(t *testing.T) {
	got := FormatEntry(Entry{Title: "T"}, formatClock)
	want := "## 09:05 - T\n"
	if got != want {
		t.Fatalf("FormatEntry = %q, want %q", got, want)
	}
}

func TestFormatEntryTitleAndBody(t *testing.T) {
	got := FormatEntry(Entry{Title: "T", Body: "B"}, formatClock)
	want := "## 09:05 - T\n\nB\n"
	if got != want {
		t.Fatalf("FormatEntry = %q, want %q", got, want)
	}
}

func TestFormatEntryBodyOnly(t *testing.T) {
	got := FormatEntry(Entry{Body: "B"}, formatClock)
	if got != "B\n" {
		t.Fatalf("FormatEntry = %q, want %q", got, "B\n")
	}
}

func TestFormatEntryEmpty(t *testing.T) {
	if got := FormatEntry(Entry{}, formatClock); got != "" {
		t.Fatalf("FormatEntry = %q, want empty", got)
	}
}

func TestFormatEntryZeroPadsTimestamp(t *testing.T) {
	late := time.Date(2025, time.November, 2, 23, 7, 0, 0, time.UTC)
	got := FormatEntry(Entry{Title: "Late night"}, late)
	want := "## 23:07 - Late night\n"
	if got != want {
		t.Fatalf("FormatEntry = %q, want %q", got, want)
	}
}

func TestFormatThenExtractRecoversTitle(t *testing.T) {
	inputs := []string{
		"Stand-up notes\n\nDiscussed the rollout.",
		"Stand-up notes",
		"Fix - with dash in title\n\nBody",
	}

	for _, raw := range inputs {
		entry := ParseEntry(raw)
		fragment := FormatEntry(entry, formatClock)
		titles := ExtractTitles(fragment)
		if len(titles) != 1 {
			t.Fatalf("ExtractTitles(%q) returned %d titles, want 1", fragment, len(titles))
		}
		if titles[0] != entry.Title {
			t.Fatalf("round-trip title = %q, want %q", titles[0], entry.Title)
		}
	}
}
