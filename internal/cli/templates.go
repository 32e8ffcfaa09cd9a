package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/skeletonlabs/create-skeleton-app/internal/catalog"
	"github.com/skeletonlabs/create-skeleton-app/internal/config"
	"github.com/spf13/cobra"
)

var (
	templatesDir  string
	templatesJSON bool
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available app templates",
	Long: `List the enabled app templates in display order. Pass an id to
--skeletontemplate to skip the template question.`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().StringVar(&templatesDir, "dir", "", "Read templates from this directory instead of the built-in set")
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(templatesCmd)
}

// templateEntry is a catalog entry for display.
type templateEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

func runTemplates(cmd *cobra.Command, args []string) error {
	config.Load()
	dir := templatesDir
	if !cmd.Flags().Changed("dir") {
		dir = config.Get(config.KeyTemplateDir)
	}

	fsys, err := catalog.Open(dir)
	if err != nil {
		return err
	}
	list, err := catalog.List(fsys)
	if err != nil {
		return err
	}

	entries := make([]templateEntry, len(list))
	for i, d := range list {
		entries[i] = templateEntry{ID: d.ID, Title: d.Title, Description: d.Description, Position: d.Position}
	}

	if templatesJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates available.")
		return nil
	}
	return printTemplatesTable(cmd, entries)
}

func printTemplatesTable(cmd *cobra.Command, entries []templateEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDESCRIPTION")
	for _, e := range entries {
		desc := e.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.Title, desc)
	}
	return w.Flush()
}
