package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/skeletonlabs/create-skeleton-app/internal/branding"
	"github.com/skeletonlabs/create-skeleton-app/internal/catalog"
	"github.com/skeletonlabs/create-skeleton-app/internal/materialize"
	"github.com/skeletonlabs/create-skeleton-app/internal/options"
	"github.com/skeletonlabs/create-skeleton-app/internal/pkgmanager"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	commandStyle = lipgloss.NewStyle().Bold(true)
)

// newLogger returns a stderr logger: debug output with --verbose, warnings
// only with --quiet, progress otherwise.
func newLogger(w io.Writer, verbose, quiet bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case verbose:
		level = log.DebugLevel
	case quiet:
		level = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: branding.CLIName(),
	})
}

func printBanner(w io.Writer, version string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Create "+branding.DisplayName()+" App")+" "+mutedStyle.Render("(version "+version+")"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, warningStyle.Render("This is BETA software; expect bugs and missing features."))
	fmt.Fprintln(w, "Problems? Open an issue on "+branding.IssuesURL()+" if none exists already.")
	fmt.Fprintln(w)
}

// printDone prints the follow-up commands for the new project.
func printDone(w io.Writer, workDir string, cfg *options.Configuration) {
	rel, err := filepath.Rel(workDir, cfg.Path)
	if err != nil {
		rel = cfg.Path
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Done! You can now:"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+commandStyle.Render("cd "+rel))
	fmt.Fprintln(w, "  "+commandStyle.Render(pkgmanager.RunCommand(cfg.PackageManager)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, mutedStyle.Render("Need some help or found an issue? Visit us on Discord "+branding.DiscordURL()))
}

// printError reports err with a hint for the error classes a user can act on.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, warningStyle.Render("Error:")+" "+err.Error())
	if hint := errorHint(err); hint != "" {
		fmt.Fprintln(w, mutedStyle.Render(hint))
	}
}

func errorHint(err error) string {
	switch {
	case errors.Is(err, materialize.ErrTargetExists):
		return "Nothing was written. Choose another --name or --path."
	case errors.Is(err, catalog.ErrMetadata), errors.Is(err, catalog.ErrNotFound):
		return "Run '" + branding.CLIName() + " templates' to see the available templates."
	case errors.Is(err, pkgmanager.ErrInstall):
		return "The partially created project was left in place for inspection."
	case errors.Is(err, materialize.ErrWrite):
		return "The partially created project was left in place for inspection."
	}
	return ""
}

// quietDefaultsHelp renders the defaults used in quiet mode.
func quietDefaultsHelp() string {
	d := options.Defaults()
	onOff := func(b bool) string {
		if b {
			return "true"
		}
		return "false"
	}
	rows := [][2]string{
		{"--name", d.Name},
		{"--path", "current directory"},
		{"--framework", string(d.Framework)},
		{"--types", string(d.Types)},
		{"--prettier", onOff(d.Prettier)},
		{"--eslint", onOff(d.ESLint)},
		{"--playwright", onOff(d.Playwright)},
		{"--forms, --typography", "false"},
		{"--lineclamp, --aspectratio", "false"},
		{"--skeletontheme", string(d.Theme)},
		{"--skeletontemplate", d.TemplateID},
		{"--monorepo", onOff(d.Monorepo)},
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-28s %s\n", r[0], r[1])
	}
	b.WriteString("\nThemes: ")
	for i, t := range options.Themes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(t))
	}
	b.WriteString("\n")
	return b.String()
}
