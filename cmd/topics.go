package cmd

import (
	"context"
	"fmt"
	"strings"

	"update-sync/di"
	"update-sync/domain"
	"update-sync/utils/output"
	"update-sync/utils/stream"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics and whether they are followed",
	RunE: func(cmd *cobra.Command, args []string) error {
		sortFlag, _ := cmd.Flags().GetString("sort")
		sortBy := domain.TopicSortNone
		switch strings.ToLower(sortFlag) {
		case "", "none":
		case "name":
			sortBy = domain.TopicSortName
		default:
			return fmt.Errorf("invalid --sort %q: must be name or none", sortFlag)
		}

		ctx := cmd.Context()
		return withContainer(ctx, func(container *di.ApplicationComponents) error {
			topics, err := stream.First(ctx, container.FollowableTopicsUsecase.Execute(sortBy))
			if err != nil {
				return err
			}
			table := output.NewTable(printer.Out(), []string{"id", "name", "followed", "description"})
			for _, t := range topics {
				table.AddRow(t.Topic.ID, t.Topic.Name, printer.Mark(t.IsFollowed), t.Topic.ShortDescription)
			}
			return table.Render()
		})
	},
}

var followCmd = &cobra.Command{
	Use:   "follow <topic-id>...",
	Short: "Follow topics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTopicsFollowed(cmd.Context(), args, true)
	},
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <topic-id>...",
	Short: "Stop following topics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTopicsFollowed(cmd.Context(), args, false)
	},
}

func setTopicsFollowed(ctx context.Context, ids []string, followed bool) error {
	return withContainer(ctx, func(container *di.ApplicationComponents) error {
		for _, id := range ids {
			if err := container.UserDataRepository.SetTopicIDFollowed(ctx, id, followed); err != nil {
				return err
			}
		}
		verb := "followed"
		if !followed {
			verb = "unfollowed"
		}
		printer.Success("%s %s", verb, strings.Join(ids, ", "))
		return nil
	})
}

func init() {
	rootCmd.AddCommand(topicsCmd, followCmd, unfollowCmd)
	topicsCmd.Flags().String("sort", "", "sort order: name or none")
}
