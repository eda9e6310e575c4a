package files

import (
	"path/filepath"
	"testing"
)

func TestResolveLogDirHonorsDailylogHome(t *testing.T) {
	tmp := t.TempDir()
	custom := filepath.Join(tmp, "custom-root")

	t.Setenv("DAILYLOG_HOME", custom)

	got, err := ResolveLogDir()
	if err != nil {
		t.Fatalf("ResolveLogDir() error = %v", err)
	}
	if got != custom {
		t.Fatalf("ResolveLogDir() = %q, want %q", got, custom)
	}
}

func TestResolveLogDirExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DAILYLOG_HOME", "~/log-data")

	got, err := ResolveLogDir()
	if err != nil {
		t.Fatalf("ResolveLogDir() error = %v", err)
	}

	want := filepath.Join(home, "log-data")
	if got != want {
		t.Fatalf("ResolveLogDir() = %q, want %q", got, want)
	}
}

func TestResolveLogDirDefaultsToHomeDotDailylog(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DAILYLOG_HOME", "")

	got, err := ResolveLogDir()
	if err != nil {
		t.Fatalf("ResolveLogDir() error = %v", err)
	}

	want := filepath.Join(home, DefaultDirName)
	if got != want {
		t.Fatalf("ResolveLogDir() = %q, want %q", got, want)
	}
}
