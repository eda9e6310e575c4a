package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSyncCommand(ctx context.Context, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Sync logs with the git repository (pull then push).",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.syncService().Sync(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logs synced.")
			return nil
		},
	}
}

func newPullCommand(ctx context.Context, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Pull the latest logs from the git repository.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Pulling latest logs from git repository...")
			if err := app.VCS.Pull(ctx, app.Config.GitBranchName); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Successfully pulled latest logs.")
			return nil
		},
	}
}

func newPushCommand(ctx context.Context, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Push local logs to the git repository.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Pushing logs to git repository...")
			if err := app.VCS.Push(ctx, app.Config.GitBranchName); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Successfully pushed logs.")
			return nil
		},
	}
}
