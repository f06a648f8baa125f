package cmd

import (
	"strconv"

	"update-sync/di"
	"update-sync/domain"
	"update-sync/utils/output"
	"update-sync/utils/stream"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change user preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		return withContainer(ctx, func(container *di.ApplicationComponents) error {
			repo := container.UserDataRepository
			flags := cmd.Flags()
			if flags.Changed("theme") {
				v, _ := flags.GetString("theme")
				brand, err := domain.ParseThemeBrand(v)
				if err != nil {
					return err
				}
				if err := repo.SetThemeBrand(ctx, brand); err != nil {
					return err
				}
			}
			if flags.Changed("dark") {
				v, _ := flags.GetString("dark")
				dark, err := domain.ParseDarkThemeConfig(v)
				if err != nil {
					return err
				}
				if err := repo.SetDarkThemeConfig(ctx, dark); err != nil {
					return err
				}
			}
			if flags.Changed("dynamic-color") {
				v, _ := flags.GetBool("dynamic-color")
				if err := repo.SetDynamicColorPreference(ctx, v); err != nil {
					return err
				}
			}

			data, err := stream.First(ctx, repo.UserData())
			if err != nil {
				return err
			}
			versions, err := container.PreferencesDataSource.GetChangeListVersions(ctx)
			if err != nil {
				return err
			}

			table := output.NewTable(printer.Out(), []string{"setting", "value"})
			table.AddRow("theme brand", string(data.ThemeBrand))
			table.AddRow("dark theme", string(data.DarkThemeConfig))
			table.AddRow("dynamic color", strconv.FormatBool(data.UseDynamicColor))
			table.AddRow("hide topic selection", strconv.FormatBool(data.ShouldHideTopicSelection))
			table.AddRow("followed topics", strconv.Itoa(data.FollowedTopics.Len()))
			table.AddRow("bookmarks", strconv.Itoa(data.BookmarkedNewsResources.Len()))
			table.AddRow("viewed", strconv.Itoa(data.ViewedNewsResources.Len()))
			table.AddRow("topic version", strconv.Itoa(versions.TopicVersion))
			table.AddRow("news version", strconv.Itoa(versions.NewsResourceVersion))
			return table.Render()
		})
	},
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.Flags().String("theme", "", "theme brand: DEFAULT or ANDROID")
	prefsCmd.Flags().String("dark", "", "dark theme: FOLLOW_SYSTEM, LIGHT or DARK")
	prefsCmd.Flags().Bool("dynamic-color", false, "use dynamic color")
}
