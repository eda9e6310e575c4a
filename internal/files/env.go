package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the log folder under the user's home directory.
	DefaultDirName = ".dailylog"
)

// ResolveLogDir determines where dailylog stores Markdown logs, defaulting to
// ~/.dailylog. The location can be overridden by exporting DAILYLOG_HOME.
func ResolveLogDir() (string, error) {
	if override, ok := os.LookupEnv("DAILYLOG_HOME"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return ExpandPath(override)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

// ExpandPath resolves a leading "~" against the user's home directory.
func ExpandPath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
