package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

type buildInfo struct {
	Version   string `json:"version"`
	Revision  string `json:"revision,omitempty"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

func currentBuild() buildInfo {
	info := buildInfo{
		Version:   version,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				info.Revision = s.Value[:7]
			}
		}
	}
	return info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	// no config or logger needed
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := currentBuild()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(info)
		}
		line := "update-sync version " + info.Version
		if info.Revision != "" {
			line += "+" + info.Revision
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s %s)\n", line, info.GoVersion, info.Platform)
		return err
	},
}

func init() {
	versionCmd.Flags().Bool("json", false, "print build information as JSON")
	rootCmd.AddCommand(versionCmd)
}
