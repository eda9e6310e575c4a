package gitsync

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// Service orchestrates the sync flows over an injected VersionControl.
type Service struct {
	vcs      VersionControl
	repoURL  string
	branch   string
	autoSync bool
}

// NewService wires the sync flows with the configured remote and branch.
func NewService(vcs VersionControl, repoURL, branch string, autoSync bool) *Service {
	return &Service{vcs: vcs, repoURL: repoURL, branch: branch, autoSync: autoSync}
}

// Sync ensures the repository exists, pulls, then pushes.
func (s *Service) Sync(ctx context.Context) error {
	if s.repoURL == "" {
		return fmt.Errorf("%w: add 'git_repo = \"your-repo-url\"' to ~/.dailylog.toml", ErrNoRemote)
	}

	if !s.vcs.IsRepo() {
		if err := s.vcs.EnsureRepo(ctx, s.repoURL, s.branch); err != nil {
			return err
		}
	}

	if err := s.vcs.Pull(ctx, s.branch); err != nil {
		return err
	}
	return s.vcs.Push(ctx, s.branch)
}

// AutoSync runs Sync when auto-sync is configured with a remote. Failures
// are logged as warnings and never propagated, so a sync problem cannot
// block the journaling action that triggered it.
func (s *Service) AutoSync(ctx context.Context) {
	if !s.autoSync || s.repoURL == "" {
		return
	}
	if err := s.Sync(ctx); err != nil {
		log.Warn("auto-sync failed", "err", err)
	}
}
