package cmd

import (
	"context"
	"errors"
	"strings"

	"update-sync/di"
	"update-sync/domain"
	"update-sync/utils/output"
	"update-sync/utils/stream"

	"github.com/spf13/cobra"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "List news resources with the user's state",
	RunE: func(cmd *cobra.Command, args []string) error {
		followed, _ := cmd.Flags().GetBool("followed")
		bookmarked, _ := cmd.Flags().GetBool("bookmarked")
		if followed && bookmarked {
			return errors.New("--followed and --bookmarked are exclusive")
		}

		ctx := cmd.Context()
		return withContainer(ctx, func(container *di.ApplicationComponents) error {
			flow := container.UserNewsRepository.ObserveAll(domain.NewsResourceQuery{})
			switch {
			case followed:
				flow = container.UserNewsRepository.ObserveAllForFollowedTopics()
			case bookmarked:
				flow = container.UserNewsRepository.ObserveAllBookmarked()
			}
			news, err := stream.First(ctx, flow)
			if err != nil {
				return err
			}
			if len(news) == 0 {
				printer.Info("no news")
				return nil
			}

			table := output.NewTable(printer.Out(), []string{"id", "published", "title", "topics", "saved", "viewed"})
			for _, n := range news {
				topics := make([]string, 0, len(n.FollowableTopics))
				for _, t := range n.FollowableTopics {
					topics = append(topics, t.Topic.Name)
				}
				table.AddRow(n.ID, n.PublishDate.Format("2006-01-02"), n.Title, strings.Join(topics, ", "), printer.Mark(n.IsSaved), printer.Mark(n.HasBeenViewed))
			}
			return table.Render()
		})
	},
}

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark <news-id>",
	Short: "Bookmark a news resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setBookmarked(cmd.Context(), args[0], true)
	},
}

var unbookmarkCmd = &cobra.Command{
	Use:   "unbookmark <news-id>",
	Short: "Remove a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setBookmarked(cmd.Context(), args[0], false)
	},
}

func setBookmarked(ctx context.Context, id string, bookmarked bool) error {
	return withContainer(ctx, func(container *di.ApplicationComponents) error {
		if err := container.UserDataRepository.SetNewsResourceBookmarked(ctx, id, bookmarked); err != nil {
			return err
		}
		if bookmarked {
			printer.Success("bookmarked %s", id)
		} else {
			printer.Success("removed bookmark %s", id)
		}
		return nil
	})
}

func init() {
	rootCmd.AddCommand(feedCmd, bookmarkCmd, unbookmarkCmd)
	feedCmd.Flags().Bool("followed", false, "only news from followed topics")
	feedCmd.Flags().Bool("bookmarked", false, "only bookmarked news")
}
