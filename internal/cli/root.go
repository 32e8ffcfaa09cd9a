package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/skeletonlabs/create-skeleton-app/internal/branding"
	"github.com/skeletonlabs/create-skeleton-app/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [name]",
	Short: branding.Description(),
	Long: `Create a new ` + branding.DisplayName() + ` app.

Without --quiet, every option not given on the command line is asked for
interactively. With --quiet nothing is asked and these defaults apply:

` + quietDefaultsHelp(),
	Example: `  ` + branding.CLIName() + `
  ` + branding.CLIName() + ` my-app --quiet --skeletontheme rocket --forms
  ` + branding.CLIName() + ` --name docs --framework svelte-kit-lib --types null --eslint=false`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCreate,
}

// Execute runs the root command with build info injected via ldflags. A
// cancelled prompt is not an error: it prints "Exiting" and returns nil.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(os.Stderr, "Exiting")
		return nil
	}
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}
