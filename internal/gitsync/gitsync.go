package gitsync

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ErrNoRepo is returned when a pull or push targets a directory that has not
// been initialized as a git repository yet.
var ErrNoRepo = errors.New("not a git repository")

// ErrNoRemote is returned when sync runs without a configured git_repo URL.
var ErrNoRemote = errors.New("no git repository configured")

// VersionControl abstracts the repository operations consumed by the sync
// flows, so they can run against a test double instead of the git binary.
type VersionControl interface {
	// IsRepo reports whether the log directory is already a repository.
	IsRepo() bool
	// EnsureRepo initializes the repository and its remote if absent.
	EnsureRepo(ctx context.Context, remoteURL, branch string) error
	// Pull fetches and merges the remote branch.
	Pull(ctx context.Context, branch string) error
	// Push stages day files, commits when anything changed, and pushes.
	Push(ctx context.Context, branch string) error
}

// CLI implements VersionControl by shelling out to the external git binary,
// blocking until each command exits.
type CLI struct {
	dir string

	// now stamps commit messages. Tests override it.
	now func() time.Time
}

// NewCLI returns a VersionControl operating on the supplied log directory.
func NewCLI(dir string) *CLI {
	return &CLI{dir: dir, now: time.Now}
}

// IsRepo reports whether the log directory contains a .git directory.
func (c *CLI) IsRepo() bool {
	_, err := os.Stat(filepath.Join(c.dir, ".git"))
	return err == nil
}

// EnsureRepo initializes the log directory as a repository with the given
// remote. Pulling from a brand-new remote is expected to fail; that case is
// recovered by creating the branch locally instead.
func (c *CLI) EnsureRepo(ctx context.Context, remoteURL, branch string) error {
	if c.IsRepo() {
		return nil
	}

	log.Info("initializing git repository", "dir", c.dir)
	if err := c.run(ctx, "init"); err != nil {
		return err
	}
	if err := c.run(ctx, "remote", "add", "origin", remoteURL); err != nil {
		return err
	}

	if err := c.run(ctx, "pull", "origin", branch); err != nil {
		log.Warn("could not pull from remote (this is normal for new repos)", "err", err)
		if err := c.run(ctx, "checkout", "-b", branch); err != nil {
			return err
		}
	}
	return nil
}

// Pull fetches and merges the remote branch into the log directory.
func (c *CLI) Pull(ctx context.Context, branch string) error {
	if !c.IsRepo() {
		return fmt.Errorf("%w: run 'dailylog sync' to set up git sync first", ErrNoRepo)
	}
	return c.run(ctx, "pull", "origin", branch)
}

// Push stages all day files, commits them with a timestamped message when
// anything changed, and pushes the branch. A clean tree pushes nothing.
func (c *CLI) Push(ctx context.Context, branch string) error {
	if !c.IsRepo() {
		return fmt.Errorf("%w: run 'dailylog sync' to set up git sync first", ErrNoRepo)
	}

	if err := c.run(ctx, "add", "*.md"); err != nil {
		return err
	}

	status, err := c.output(ctx, "status", "--porcelain")
	if err != nil {
		return err
	}
	if strings.TrimSpace(status) == "" {
		log.Debug("no changes to push")
		return nil
	}

	message := fmt.Sprintf("Update logs - %s", c.now().Format("2006-01-02 15:04"))
	if err := c.run(ctx, "commit", "-m", message); err != nil {
		return err
	}
	return c.run(ctx, "push", "origin", branch)
}

func (c *CLI) run(ctx context.Context, args ...string) error {
	_, err := c.output(ctx, args...)
	return err
}

func (c *CLI) output(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			return "", fmt.Errorf("git %s: %w", args[0], err)
		}
		return "", fmt.Errorf("git %s: %s", args[0], detail)
	}
	return stdout.String(), nil
}
