package logbook

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractTitlesFromEntryHeaders(t *testing.T) {
	content := "## 09:00 - Stand-up\n\nNotes\n\n## 10:00 - Review"
	got := ExtractTitles(content)
	want := []string{"Stand-up", "Review"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ExtractTitles mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractTitlesFromPlainHeaders(t *testing.T) {
	content := "# Big Header\n### Small Header"
	got := ExtractTitles(content)
	want := []string{"Big Header", "Small Header"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ExtractTitles mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractTitlesKeepsDashesInsideTitle(t *testing.T) {
	content := "## 14:30 - Fix - the - build"
	got := ExtractTitles(content)
	want := []string{"Fix - the - build"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ExtractTitles mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractTitlesIgnoresBodyLines(t *testing.T) {
	content := "## 09:00 - Stand-up\n\nTalked about - various things\nplain paragraph\n\n## without dash separator"
	got := ExtractTitles(content)
	want := []string{"Stand-up"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ExtractTitles mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractTitlesEmptyContent(t *testing.T) {
	if got := ExtractTitles(""); len(got) != 0 {
		t.Fatalf("ExtractTitles(\"\") = %#v, want none", got)
	}
}

func TestFirstNonBlankLine(t *testing.T) {
	line, ok := FirstNonBlankLine("\n\n  a thought  \nmore")
	if !ok {
		t.Fatalf("FirstNonBlankLine ok = false, want true")
	}
	if line != "a thought" {
		t.Fatalf("FirstNonBlankLine = %q, want %q", line, "a thought")
	}

	if _, ok := FirstNonBlankLine(" \n\t\n"); ok {
		t.Fatalf("FirstNonBlankLine ok = true for blank content")
	}
}
