package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/skeletonlabs/create-skeleton-app/internal/catalog"
	"github.com/skeletonlabs/create-skeleton-app/internal/config"
	"github.com/skeletonlabs/create-skeleton-app/internal/manifest"
	"github.com/skeletonlabs/create-skeleton-app/internal/pkgmanager"
	"github.com/skeletonlabs/create-skeleton-app/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	checkRuntime   bool
	checkTemplates bool
	checkConfig    bool
	checkMeta      string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify Node.js and the package manager are installed and recent enough")
	doctorCmd.Flags().BoolVar(&checkTemplates, "check-templates", false, "Validate the metadata of every app template")
	doctorCmd.Flags().BoolVar(&checkConfig, "check-config", false, "Verify the settings file and its values")
	doctorCmd.Flags().StringVar(&checkMeta, "check-meta", "", "Validate a template meta.json file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment projects are created in",
	Long:  `Run diagnostic checks on the tools and templates used to create projects.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		out := cmd.OutOrStdout()

		anyFlag := checkRuntime || checkTemplates || checkConfig || checkMeta != ""
		if !anyFlag {
			runRuntimeCheck(cmd, out)
			runConfigCheck(out)
			if err := runTemplatesCheck(out, templateDir(cmd.Flags())); err != nil {
				fmt.Fprintf(out, "  [WARN] %v\n", err)
			}
			return nil
		}

		if checkRuntime {
			runRuntimeCheck(cmd, out)
		}
		if checkConfig {
			runConfigCheck(out)
		}
		if checkTemplates {
			if err := runTemplatesCheck(out, templateDir(cmd.Flags())); err != nil {
				return err
			}
		}
		if checkMeta != "" {
			if err := runMetaCheck(out, checkMeta); err != nil {
				return err
			}
		}
		return nil
	},
}

func runRuntimeCheck(cmd *cobra.Command, out io.Writer) {
	fmt.Fprintln(out, "Runtime check:")
	checkTool(cmd, out, "node")
	checkTool(cmd, out, packageManager())
}

func checkTool(cmd *cobra.Command, out io.Writer, name string) {
	v, err := pkgmanager.Probe(cmd.Context(), name)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %v\n", err)
		return
	}
	ok, err := pkgmanager.CheckVersion(name, v)
	if err != nil {
		fmt.Fprintf(out, "  [WARN] %s %s: %v\n", name, v, err)
		return
	}
	if !ok {
		fmt.Fprintf(out, "  [FAIL] %s %s is older than the supported minimum %s\n", name, v, pkgmanager.MinVersions[name])
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s %s\n", name, v)
}

func runConfigCheck(out io.Writer) {
	fmt.Fprintln(out, "Config check:")
	path := config.FilePath()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(out, "  [INFO] No settings file at %s; built-in defaults apply\n", path)
	} else if err != nil {
		fmt.Fprintf(out, "  [FAIL] Cannot read %s: %v\n", path, err)
	} else {
		fmt.Fprintf(out, "  [ OK ] %s\n", path)
	}

	if _, err := userDefaults(); err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
	}
	if pm := config.Get(config.KeyPackageManager); pm != "" {
		if _, known := pkgmanager.MinVersions[pm]; !known {
			fmt.Fprintf(out, "  [WARN] %s %q is not a known package manager\n", config.KeyPackageManager, pm)
		}
	}
}

func runTemplatesCheck(out io.Writer, dir string) error {
	source := "built-in templates"
	if dir != "" {
		source = dir
	}
	fmt.Fprintf(out, "Templates check (%s):\n", source)

	fsys, err := catalog.Open(dir)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}
	failed := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := manifest.ReadFS(fsys, path.Join(e.Name(), manifest.MetaFileName))
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %s: %v\n", e.Name(), err)
			failed++
			continue
		}
		fmt.Fprintf(out, "  [ OK ] %s (%s)\n", e.Name(), meta.Title)
	}

	if id := config.Get(config.KeyDefaultTemplate); id != "" {
		if _, err := catalog.Find(fsys, id); err != nil {
			fmt.Fprintf(out, "  [WARN] default template: %v\n", err)
		}
	}
	fmt.Fprintf(out, "  [INFO] base scaffolds: %v\n", scaffold.Sets())

	if failed > 0 {
		return fmt.Errorf("%d template(s) have invalid metadata", failed)
	}
	return nil
}

func runMetaCheck(out io.Writer, path string) error {
	fmt.Fprintf(out, "Metadata validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("metadata validation failed: %w", err)
	}

	if result.Valid {
		meta, err := manifest.ParseFile(path)
		if err != nil {
			fmt.Fprintf(out, "  [ OK ] Valid metadata\n")
			return nil
		}
		fmt.Fprintf(out, "  [ OK ] Valid metadata: %s (position %d, enabled %v)\n", meta.Title, meta.Position, meta.Enabled)
		return nil
	}

	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(out, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("metadata %s has %d validation issue(s)", path, len(result.Issues))
}
