package scaffold

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/skeletonlabs/create-skeleton-app/internal/options"
)

//go:embed all:scaffolds
var scaffoldFS embed.FS

// commonSet is rendered before every template set.
const commonSet = "common"

// dotfiles are stored without their leading dot so they stay visible in the
// source tree.
var dotfiles = map[string]bool{
	"gitignore":      true,
	"npmrc":          true,
	"prettierrc":     true,
	"prettierignore": true,
	"eslintrc.cjs":   true,
	"eslintignore":   true,
}

// funcs are available to every .tmpl file.
var funcs = template.FuncMap{
	"json": jsonString,
}

// jsonString renders s as a quoted JSON string. HTML characters are kept
// as-is so scripts like "a && b" stay readable.
func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Entry is a name/value pair rendered into package.json.
type Entry struct {
	Name  string
	Value string
}

// ScaffoldData holds all template variables available to scaffold templates.
type ScaffoldData struct {
	Name       string
	Library    bool
	TypeScript bool
	CheckJS    bool
	Prettier   bool
	ESLint     bool
	Playwright bool

	Scripts         []Entry
	DevDependencies []Entry
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
}

// Scaffolder writes a base project into dir.
type Scaffolder interface {
	Scaffold(ctx context.Context, dir string, cfg *options.Configuration) (*Result, error)
}

// Embedded is the Scaffolder backed by the template sets compiled into the
// binary.
type Embedded struct{}

// Scaffold renders the template set named by cfg.Template into dir.
func (Embedded) Scaffold(ctx context.Context, dir string, cfg *options.Configuration) (*Result, error) {
	return Generate(ctx, cfg.Template, NewScaffoldData(cfg), dir)
}

// NewScaffoldData derives template variables from a resolved configuration.
func NewScaffoldData(cfg *options.Configuration) *ScaffoldData {
	d := &ScaffoldData{
		Name:       cfg.Name,
		Library:    cfg.Framework == options.FrameworkSvelteKitLib,
		TypeScript: cfg.Types == options.TypesTypeScript,
		CheckJS:    cfg.Types == options.TypesCheckJS,
		Prettier:   cfg.Prettier,
		ESLint:     cfg.ESLint,
		Playwright: cfg.Playwright,
	}
	d.Scripts = d.scripts()
	d.DevDependencies = d.devDependencies()
	return d
}

func (d *ScaffoldData) checked() bool {
	return d.TypeScript || d.CheckJS
}

func (d *ScaffoldData) scripts() []Entry {
	s := []Entry{
		{"dev", "vite dev"},
		{"build", "vite build"},
	}
	if d.Library {
		s = append(s, Entry{"package", "svelte-kit sync && svelte-package"})
	}
	s = append(s, Entry{"preview", "vite preview"})
	if d.Playwright {
		s = append(s, Entry{"test", "playwright test"})
	}
	if d.checked() {
		check := "svelte-kit sync && svelte-check"
		if d.TypeScript {
			check += " --tsconfig ./tsconfig.json"
		}
		s = append(s, Entry{"check", check}, Entry{"check:watch", check + " --watch"})
	}
	switch {
	case d.Prettier && d.ESLint:
		s = append(s, Entry{"lint", "prettier --plugin-search-dir . --check . && eslint ."})
	case d.Prettier:
		s = append(s, Entry{"lint", "prettier --plugin-search-dir . --check ."})
	case d.ESLint:
		s = append(s, Entry{"lint", "eslint ."})
	}
	if d.Prettier {
		s = append(s, Entry{"format", "prettier --plugin-search-dir . --write ."})
	}
	return s
}

func (d *ScaffoldData) devDependencies() []Entry {
	deps := []Entry{
		{"@sveltejs/adapter-auto", "next"},
		{"@sveltejs/kit", "next"},
	}
	if d.Library {
		deps = append(deps, Entry{"@sveltejs/package", "next"})
	}
	if d.Playwright {
		deps = append(deps, Entry{"@playwright/test", "1.25.0"})
	}
	if d.ESLint {
		if d.TypeScript {
			deps = append(deps,
				Entry{"@typescript-eslint/eslint-plugin", "^5.27.0"},
				Entry{"@typescript-eslint/parser", "^5.27.0"})
		}
		deps = append(deps, Entry{"eslint", "^8.16.0"})
		if d.Prettier {
			deps = append(deps, Entry{"eslint-config-prettier", "^8.3.0"})
		}
		deps = append(deps, Entry{"eslint-plugin-svelte3", "^4.0.0"})
	}
	if d.Prettier {
		deps = append(deps,
			Entry{"prettier", "^2.6.2"},
			Entry{"prettier-plugin-svelte", "^2.7.0"})
	}
	deps = append(deps, Entry{"svelte", "^3.44.0"})
	if d.checked() {
		deps = append(deps, Entry{"svelte-check", "^2.7.1"})
	}
	if d.TypeScript {
		deps = append(deps, Entry{"tslib", "^2.3.1"}, Entry{"typescript", "^4.7.4"})
	}
	deps = append(deps, Entry{"vite", "^3.1.0"})
	return deps
}

// Sets returns the names of the embedded template sets.
func Sets() []string {
	entries, _ := fs.ReadDir(scaffoldFS, "scaffolds")
	var sets []string
	for _, e := range entries {
		if e.IsDir() && e.Name() != commonSet {
			sets = append(sets, e.Name())
		}
	}
	return sets
}

// Generate renders the common files and then the named template set into
// outputDir. Files ending in .tmpl are executed as text/template and written
// without the suffix; a template that renders to whitespace only is skipped.
// Other files are copied verbatim.
func Generate(ctx context.Context, setName string, data *ScaffoldData, outputDir string) (*Result, error) {
	if setName == commonSet {
		return nil, fmt.Errorf("template set %q not found", setName)
	}
	setDir := path.Join("scaffolds", setName)

	// Verify template set exists in embedded FS.
	if _, err := fs.ReadDir(scaffoldFS, setDir); err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", setName, err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{OutputDir: outputDir}
	seen := make(map[string]bool)

	for _, dir := range []string{path.Join("scaffolds", commonSet), setDir} {
		err := fs.WalkDir(scaffoldFS, dir, func(p string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			rel := strings.TrimPrefix(p, dir+"/")
			written, outName, err := render(p, rel, data, outputDir)
			if err != nil {
				return err
			}
			if written && !seen[outName] {
				seen[outName] = true
				result.Files = append(result.Files, outName)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// render writes one template file and reports whether anything was written
// and under which slash-separated relative name.
func render(src, rel string, data *ScaffoldData, outputDir string) (bool, string, error) {
	raw, err := fs.ReadFile(scaffoldFS, src)
	if err != nil {
		return false, "", fmt.Errorf("reading template %s: %w", src, err)
	}

	outName := outputName(rel)
	content := raw
	if strings.HasSuffix(rel, ".tmpl") {
		tmpl, err := template.New(path.Base(rel)).Funcs(funcs).Option("missingkey=error").Parse(string(raw))
		if err != nil {
			return false, "", fmt.Errorf("parsing template %s: %w", rel, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return false, "", fmt.Errorf("executing template %s: %w", rel, err)
		}
		if len(bytes.TrimSpace(buf.Bytes())) == 0 {
			return false, outName, nil
		}
		content = buf.Bytes()
	}

	outPath := filepath.Join(outputDir, filepath.FromSlash(outName))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return false, "", fmt.Errorf("creating directory for %s: %w", outName, err)
	}
	if err := os.WriteFile(outPath, content, 0o644); err != nil {
		return false, "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	return true, outName, nil
}

// outputName strips the .tmpl suffix and restores a leading dot on dotfiles.
func outputName(rel string) string {
	name := strings.TrimSuffix(rel, ".tmpl")
	dir, base := path.Split(name)
	if dotfiles[base] {
		base = "." + base
	}
	return dir + base
}
