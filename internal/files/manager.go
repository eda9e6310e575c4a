package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	dirPermissions = 0o755
)

// Manager centralizes where day logs live on disk and how files are named.
// One markdown file holds all entries for one calendar date.
type Manager struct {
	logDir string
}

// NewManager constructs a Manager rooted at the provided directory. If logDir
// is empty, it falls back to ~/.dailylog (or another location determined by
// ResolveLogDir).
func NewManager(logDir string) (*Manager, error) {
	var err error
	if logDir == "" {
		logDir, err = ResolveLogDir()
		if err != nil {
			return nil, err
		}
	}
	logDir, err = ExpandPath(logDir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(logDir)
	if err != nil {
		return nil, err
	}

	return &Manager{logDir: abs}, nil
}

// LogDir returns the directory storing all day files.
func (m *Manager) LogDir() string {
	return m.logDir
}

// DayPath resolves the absolute path to the markdown file for the supplied
// date, using the YYYY-MM-DD.md naming convention. The file may not exist
// yet; callers can choose to create it.
func (m *Manager) DayPath(t time.Time) string {
	return filepath.Join(m.logDir, t.Format("2006-01-02")+".md")
}

// TodayPath resolves the day file for the current local date.
func (m *Manager) TodayPath() string {
	return m.DayPath(time.Now().In(time.Local))
}

// PreviousDayPath resolves the day file for one day before the current local date.
func (m *Manager) PreviousDayPath() string {
	return m.DayPath(time.Now().In(time.Local).AddDate(0, 0, -1))
}

// EnsureLogDir guarantees the log directory exists. Called once at startup;
// day files themselves are created lazily on first append.
func (m *Manager) EnsureLogDir() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.logDir, dirPermissions); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	return nil
}

// ReadDay returns the raw content of the day file for the supplied date. A
// missing file yields ok=false rather than an error.
func (m *Manager) ReadDay(t time.Time) (string, bool, error) {
	data, err := os.ReadFile(m.DayPath(t))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read day file: %w", err)
	}
	return string(data), true, nil
}

// DayHasContent reports whether the day file exists with non-blank content.
func (m *Manager) DayHasContent(t time.Time) (bool, error) {
	content, ok, err := m.ReadDay(t)
	if err != nil || !ok {
		return false, err
	}
	return strings.TrimSpace(content) != "", nil
}
