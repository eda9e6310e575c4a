package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/dailylog/internal/config"
	"github.com/faizmokh/dailylog/internal/editor"
	"github.com/faizmokh/dailylog/internal/files"
	"github.com/faizmokh/dailylog/internal/gitsync"
	"github.com/faizmokh/dailylog/internal/logbook"
	"github.com/faizmokh/dailylog/internal/version"
)

// App bundles the collaborators every command needs: immutable settings, the
// file manager, the text source, and the version control capability. Tests
// substitute fakes for the last two.
type App struct {
	Config  config.Config
	Manager *files.Manager
	Source  logbook.TextSource
	VCS     gitsync.VersionControl
}

func (a *App) syncService() *gitsync.Service {
	return gitsync.NewService(a.VCS, a.Config.GitRepo, a.Config.GitBranchName, a.Config.GitAutoSync)
}

// NewRootCommand creates the top-level Cobra command. Running it without a
// subcommand captures a new entry for today.
func NewRootCommand(ctx context.Context, app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dailylog",
		Short:   "A minimal journaling tool with per-day markdown logs and git sync.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return captureEntry(ctx, cmd, app, today())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newEditCommand(ctx, app),
		newPreviousCommand(ctx, app),
		newYesterdayCommand(ctx, app),
		newSummaryCommand(ctx, app),
		newSyncCommand(ctx, app),
		newPullCommand(ctx, app),
		newPushCommand(ctx, app),
		newBrowseCommand(ctx, app),
	)

	return cmd
}

// ExecuteCommand loads configuration, prepares the log directory, and
// executes the Cobra root command with production collaborators.
func ExecuteCommand(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	manager, err := files.NewManager(cfg.LogDir)
	if err != nil {
		return err
	}
	if err := manager.EnsureLogDir(); err != nil {
		return err
	}

	app := &App{
		Config:  cfg,
		Manager: manager,
		Source:  editor.New(),
		VCS:     gitsync.NewCLI(manager.LogDir()),
	}

	cmd := NewRootCommand(ctx, app)
	return cmd.Execute()
}

// Main is a helper used by cmd/dailylog/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
