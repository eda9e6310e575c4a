package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/faizmokh/dailylog/internal/files"
)

// FileName is the optional settings file looked up under the user's home directory.
const FileName = ".dailylog.toml"

// Config holds the settings loaded once at startup and passed to every
// component. A missing or unparseable settings file never fails loading; it
// resolves to defaults instead.
type Config struct {
	// LogDir is the directory storing one markdown file per day.
	LogDir string `toml:"log_dir"`
	// GitRepo is the optional remote URL used for syncing logs.
	GitRepo string `toml:"git_repo"`
	// GitAutoSync triggers a best-effort sync after every write operation.
	GitAutoSync bool `toml:"git_auto_sync"`
	// GitBranchName is the branch used for pull and push.
	GitBranchName string `toml:"git_branch_name"`
	// SummaryDays lists weekday names counted by the summary command.
	SummaryDays []string `toml:"summary_days"`
}

// Default returns the configuration used when no settings file exists.
func Default() (Config, error) {
	logDir, err := files.ResolveLogDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve log directory: %w", err)
	}
	return Config{
		LogDir:        logDir,
		GitBranchName: "master",
		SummaryDays:   []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
	}, nil
}

// Load reads ~/.dailylog.toml and merges it over the defaults. The only
// fatal condition is an undeterminable home directory.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	return LoadFrom(filepath.Join(home, FileName))
}

// LoadFrom reads the settings file at path. Missing files and parse errors
// both resolve to defaults.
func LoadFrom(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		defaults, derr := Default()
		if derr != nil {
			return Config{}, derr
		}
		return defaults, nil
	}

	if cfg.LogDir == "" {
		cfg.LogDir, err = files.ResolveLogDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve log directory: %w", err)
		}
	}
	if cfg.GitBranchName == "" {
		cfg.GitBranchName = "master"
	}
	if cfg.SummaryDays == nil {
		cfg.SummaryDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	}
	return cfg, nil
}
