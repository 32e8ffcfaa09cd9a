package cli

import (
	"fmt"
	"os"

	"github.com/skeletonlabs/create-skeleton-app/internal/catalog"
	"github.com/skeletonlabs/create-skeleton-app/internal/config"
	"github.com/skeletonlabs/create-skeleton-app/internal/materialize"
	"github.com/skeletonlabs/create-skeleton-app/internal/options"
	"github.com/skeletonlabs/create-skeleton-app/internal/pkgmanager"
	"github.com/skeletonlabs/create-skeleton-app/internal/prompt"
	"github.com/skeletonlabs/create-skeleton-app/internal/scaffold"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// createFlags holds the root command's flag values. Presence is read from
// the flag set, never from the values, so "--eslint=false" and an absent
// --eslint stay distinct.
type createFlags struct {
	quiet       bool
	name        string
	path        string
	framework   string
	types       string
	prettier    bool
	eslint      bool
	playwright  bool
	forms       bool
	typography  bool
	lineclamp   bool
	aspectratio bool
	theme       string
	template    string
	templateDir string
	monorepo    bool
	verbose     bool
}

var createOpts createFlags

func init() {
	createOpts.bind(rootCmd.Flags())
}

// pluginFlags maps each plugin flag to its plugin.
var pluginFlags = []struct {
	flag   string
	plugin options.Plugin
}{
	{"forms", options.PluginForms},
	{"typography", options.PluginTypography},
	{"lineclamp", options.PluginLineClamp},
	{"aspectratio", options.PluginAspectRatio},
}

func (f *createFlags) bind(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "Use defaults for every option not given; ask nothing")
	fs.StringVarP(&f.name, "name", "n", "", "Name of the project directory")
	fs.StringVarP(&f.path, "path", "p", "", "Directory the project directory is created in")
	fs.StringVarP(&f.framework, "framework", "f", "", "Project type: svelte-kit or svelte-kit-lib")
	fs.StringVar(&f.types, "types", "", "Type checking: typescript, checkjs or null")
	fs.BoolVar(&f.prettier, "prettier", false, "Add Prettier for code formatting")
	fs.BoolVar(&f.eslint, "eslint", false, "Add ESLint for code linting")
	fs.BoolVar(&f.playwright, "playwright", false, "Add Playwright for browser testing")
	fs.BoolVar(&f.forms, "forms", false, "Add the @tailwindcss/forms plugin")
	fs.BoolVar(&f.typography, "typography", false, "Add the @tailwindcss/typography plugin")
	fs.BoolVar(&f.lineclamp, "lineclamp", false, "Add the @tailwindcss/line-clamp plugin")
	fs.BoolVar(&f.aspectratio, "aspectratio", false, "Add the @tailwindcss/aspect-ratio plugin")
	fs.StringVarP(&f.theme, "skeletontheme", "t", "", "Skeleton theme")
	fs.StringVar(&f.template, "skeletontemplate", "", "Skeleton app template id")
	fs.StringVar(&f.templateDir, "skeletontemplatedir", "", "Directory to read app templates from instead of the built-in set")
	fs.BoolVarP(&f.monorepo, "monorepo", "m", false, "Create the project inside the Skeleton monorepo")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Print package manager output")
	_ = fs.MarkHidden("skeletontemplatedir")
}

func (f *createFlags) pluginValue(flag string) bool {
	switch flag {
	case "forms":
		return f.forms
	case "typography":
		return f.typography
	case "lineclamp":
		return f.lineclamp
	case "aspectratio":
		return f.aspectratio
	}
	return false
}

// args converts the parsed flags into options.Args. The first positional
// argument names the project when --name is absent.
func (f *createFlags) args(fs *pflag.FlagSet, positional []string) (options.Args, error) {
	var a options.Args

	switch {
	case fs.Changed("name"):
		a.Name = stringPtr(f.name)
	case len(positional) > 0:
		a.Name = stringPtr(positional[0])
	}
	if fs.Changed("path") {
		a.Path = stringPtr(f.path)
	}
	if fs.Changed("framework") {
		fw, err := options.ParseFramework(f.framework)
		if err != nil {
			return a, err
		}
		a.Framework = &fw
	}
	if fs.Changed("types") {
		t, err := options.ParseTypes(f.types)
		if err != nil {
			return a, err
		}
		a.Types = &t
	}
	if fs.Changed("skeletontheme") {
		t, err := options.ParseTheme(f.theme)
		if err != nil {
			return a, err
		}
		a.Theme = &t
	}
	if fs.Changed("skeletontemplate") {
		a.TemplateID = stringPtr(f.template)
	}

	a.Prettier = toggle(fs, "prettier", f.prettier)
	a.ESLint = toggle(fs, "eslint", f.eslint)
	a.Playwright = toggle(fs, "playwright", f.playwright)
	a.Monorepo = toggle(fs, "monorepo", f.monorepo)
	a.Verbose = toggle(fs, "verbose", f.verbose)
	for _, pf := range pluginFlags {
		if t := toggle(fs, pf.flag, f.pluginValue(pf.flag)); t.IsSet() {
			a.SetPlugin(pf.plugin, t)
		}
	}
	return a, nil
}

func toggle(fs *pflag.FlagSet, name string, value bool) options.Toggle {
	if !fs.Changed(name) {
		return options.Unset
	}
	return options.ToggleOf(value)
}

func stringPtr(s string) *string { return &s }

// userDefaults overlays the settings in ~/.skeleton/config.yaml on the
// built-in defaults.
func userDefaults() (options.Configuration, error) {
	d := options.Defaults()
	if v := config.Get(config.KeyDefaultTheme); v != "" {
		t, err := options.ParseTheme(v)
		if err != nil {
			return d, fmt.Errorf("config %s: %w", config.KeyDefaultTheme, err)
		}
		d.Theme = t
	}
	if v := config.Get(config.KeyDefaultTemplate); v != "" {
		d.TemplateID = v
	}
	d.Verbose = config.GetBool(config.KeyVerbose)
	return d, nil
}

// packageManager returns the configured package manager, or the one that
// launched the tool.
func packageManager() string {
	if pm := config.Get(config.KeyPackageManager); pm != "" {
		return pm
	}
	return pkgmanager.FromEnv().Name
}

// templateDir returns the template root chosen by flag or setting; empty
// means the built-in templates.
func templateDir(fs *pflag.FlagSet) string {
	if fs.Changed("skeletontemplatedir") {
		return createOpts.templateDir
	}
	return config.Get(config.KeyTemplateDir)
}

func runCreate(cmd *cobra.Command, positional []string) error {
	config.Load()

	args, err := createOpts.args(cmd.Flags(), positional)
	if err != nil {
		return err
	}
	pm := packageManager()
	args.PackageManager = &pm

	defaults, err := userDefaults()
	if err != nil {
		return err
	}

	templates, err := catalog.Open(templateDir(cmd.Flags()))
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	quiet := createOpts.quiet
	var prompter prompt.Prompter
	if !quiet {
		printBanner(cmd.OutOrStdout(), buildVersion)
		prompter = prompt.NewTerminal()
	}

	cfg, err := options.Resolve(cmd.Context(), args, options.ResolveOptions{
		Quiet:    quiet,
		Prompter: prompter,
		Templates: func() ([]catalog.Descriptor, error) {
			return catalog.List(templates)
		},
		Defaults: &defaults,
		WorkDir:  workDir,
	})
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose, cfg.Quiet)
	logger.Debug("Resolved configuration", "name", cfg.Name, "path", cfg.Path,
		"framework", cfg.Framework, "types", cfg.Types, "theme", cfg.Theme,
		"template", cfg.TemplateID, "plugins", cfg.Plugins, "pm", cfg.PackageManager)

	m := &materialize.Materializer{
		Scaffolder: scaffold.Embedded{},
		Installer:  &pkgmanager.Exec{Manager: cfg.PackageManager},
		Templates:  templates,
	}
	exec := materialize.NewExecutionContext(cfg.Path, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
	if _, err := m.Run(cmd.Context(), exec, cfg); err != nil {
		return err
	}

	if !cfg.Quiet {
		printDone(cmd.OutOrStdout(), workDir, cfg)
	}
	return nil
}
