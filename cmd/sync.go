package cmd

import (
	"context"
	"errors"

	"update-sync/di"
	"update-sync/job"

	"github.com/spf13/cobra"
)

var errSyncRetry = errors.New("sync incomplete, retry later")

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync pass over every collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Sync.Timeout)
		defer cancel()

		return withContainer(ctx, func(container *di.ApplicationComponents) error {
			if container.SyncWorker.DoWork(ctx) == job.ResultRetry {
				printer.Error("sync did not complete")
				return errSyncRetry
			}
			versions, err := container.PreferencesDataSource.GetChangeListVersions(ctx)
			if err != nil {
				return err
			}
			printer.Success("synced: topics at version %d, news at version %d", versions.TopicVersion, versions.NewsResourceVersion)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
