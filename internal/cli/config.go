package cli

import (
	"fmt"
	"strings"

	"github.com/skeletonlabs/create-skeleton-app/internal/branding"
	"github.com/skeletonlabs/create-skeleton-app/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write ` + branding.DisplayName() + ` settings stored at ~/` + branding.HomeDir() + `/config.yaml.

Settings change the defaults used for options you do not pass; command-line
flags always win. Every key can also be set with the ` + branding.EnvPrefix() + `_<KEY>
environment variable.

Keys: ` + strings.Join(config.Keys, ", "),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		if !config.IsKnown(args[0]) {
			return fmt.Errorf("unknown config key %q (known: %s)", args[0], strings.Join(config.Keys, ", "))
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		for _, key := range config.Keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
		}
		return nil
	},
}
