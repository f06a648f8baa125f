// Package cmd contains the update-sync CLI.
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"update-sync/config"
	"update-sync/di"
	"update-sync/utils/logger"
	"update-sync/utils/output"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbose   bool
	colorMode string
	cfg       *config.Config
	log       *slog.Logger
	printer   *output.Printer
	version   = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "update-sync",
	Short: "Offline-first news sync host",
	Long: `update-sync mirrors topics and news resources from a remote source into a
local store and keeps the user's preferences next to them.

Example usage:
  update-sync sync                  # run one sync pass
  update-sync serve                 # run the daemon with the REST API
  update-sync follow 1 3            # follow topics
  update-sync feed --followed       # news from followed topics`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func SetVersion(v string) {
	version = v
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&colorMode, "color", "auto", "color output: auto, always or never")
	flags.String("store", "", "local store driver (sqlite or postgres)")
	flags.String("sqlite-path", "", "sqlite database path")
	flags.String("remote", "", "remote mode (demo or http)")
	flags.String("remote-url", "", "remote base url for http mode")

	_ = viper.BindPFlag("store.driver", flags.Lookup("store"))
	_ = viper.BindPFlag("store.sqlite_path", flags.Lookup("sqlite-path"))
	_ = viper.BindPFlag("remote.mode", flags.Lookup("remote"))
	_ = viper.BindPFlag("remote.base_url", flags.Lookup("remote-url"))
}

// initConfig loads the environment configuration and applies flag overrides.
func initConfig(cmd *cobra.Command) error {
	mode, err := output.ParseColorMode(colorMode)
	if err != nil {
		return err
	}
	printer = output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ResolveColors(mode))

	cfg, err = config.NewConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOverrides(cfg)

	level := "warn"
	if verbose {
		level = "debug"
	}
	log = logger.Init(logger.Options{Level: level, Format: "text", Output: cmd.ErrOrStderr()})
	return nil
}

func applyOverrides(c *config.Config) {
	if viper.IsSet("store.driver") {
		c.Store.Driver = viper.GetString("store.driver")
	}
	if viper.IsSet("store.sqlite_path") {
		c.Store.SQLitePath = viper.GetString("store.sqlite_path")
	}
	if viper.IsSet("remote.mode") {
		c.Remote.Mode = viper.GetString("remote.mode")
	}
	if viper.IsSet("remote.base_url") {
		c.Remote.BaseURL = viper.GetString("remote.base_url")
	}
}

// withContainer opens the application components for one command.
func withContainer(ctx context.Context, fn func(container *di.ApplicationComponents) error) error {
	container, err := di.NewApplicationComponents(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer container.Close()
	return fn(container)
}
