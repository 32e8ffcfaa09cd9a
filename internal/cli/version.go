package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/skeletonlabs/create-skeleton-app/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

type versionInfo struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Date     string `json:"date"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		info := versionInfo{
			Version:  buildVersion,
			Commit:   buildCommit,
			Date:     buildDate,
			Go:       runtime.Version(),
			Platform: runtime.GOOS + "/" + runtime.GOARCH,
		}

		switch {
		case versionShort:
			fmt.Fprintln(out, info.Version)
		case versionJSON:
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
		default:
			fmt.Fprintf(out, "%s %s (commit %s, built %s, %s %s)\n",
				branding.CLIName(), info.Version, info.Commit, info.Date, info.Go, info.Platform)
		}
		return nil
	},
}
