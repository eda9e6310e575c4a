package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDayPath(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	date := time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)
	path := mgr.DayPath(date)

	want := filepath.Join(tmp, "2025-11-02.md")
	if path != want {
		t.Fatalf("DayPath() = %q, want %q", path, want)
	}
}

func TestDayPathZeroPadsMonthAndDay(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	date := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	want := filepath.Join(tmp, "2025-03-05.md")
	if got := mgr.DayPath(date); got != want {
		t.Fatalf("DayPath() = %q, want %q", got, want)
	}
}

func TestEnsureLogDirCreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "nested", "logs")

	mgr, err := NewManager(root)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if err := mgr.EnsureLogDir(); err != nil {
		t.Fatalf("EnsureLogDir: %v", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		t.Fatalf("expected directory %q to exist: %v", root, err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be a directory", root)
	}
}

func TestReadDayMissingFile(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	date := time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)
	content, ok, err := mgr.ReadDay(date)
	if err != nil {
		t.Fatalf("ReadDay: %v", err)
	}
	if ok {
		t.Fatalf("ReadDay ok = true for missing file")
	}
	if content != "" {
		t.Fatalf("ReadDay content = %q, want empty", content)
	}
}

func TestDayHasContent(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	date := time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)
	if err := os.WriteFile(mgr.DayPath(date), []byte("  \n\t\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := mgr.DayHasContent(date)
	if err != nil {
		t.Fatalf("DayHasContent: %v", err)
	}
	if got {
		t.Fatalf("DayHasContent = true for blank file")
	}

	if err := os.WriteFile(mgr.DayPath(date), []byte("## 09:00 - Stand-up\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err = mgr.DayHasContent(date)
	if err != nil {
		t.Fatalf("DayHasContent: %v", err)
	}
	if !got {
		t.Fatalf("DayHasContent = false for non-blank file")
	}
}
