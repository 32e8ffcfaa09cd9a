package options

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/skeletonlabs/create-skeleton-app/internal/catalog"
	"github.com/skeletonlabs/create-skeleton-app/internal/prompt"
)

func ptr[T any](v T) *T { return &v }

func fixedTemplates(ids ...string) TemplateLister {
	return func() ([]catalog.Descriptor, error) {
		out := make([]catalog.Descriptor, len(ids))
		for i, id := range ids {
			out[i] = catalog.Descriptor{ID: id, Title: id, Position: i, Enabled: true}
		}
		return out, nil
	}
}

func TestResolveQuietUsesDefaults(t *testing.T) {
	work := t.TempDir()
	cfg, err := Resolve(context.Background(), Args{}, ResolveOptions{Quiet: true, WorkDir: work})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	d := Defaults()
	if cfg.Name != d.Name {
		t.Errorf("Name = %q, want %q", cfg.Name, d.Name)
	}
	if cfg.Path != filepath.Join(work, d.Name) {
		t.Errorf("Path = %q", cfg.Path)
	}
	if cfg.Framework != FrameworkSvelteKit || cfg.Template != "skeleton" {
		t.Errorf("Framework = %q, Template = %q", cfg.Framework, cfg.Template)
	}
	if !cfg.ESLint || !cfg.Prettier || cfg.Playwright {
		t.Errorf("toggles = eslint %v prettier %v playwright %v", cfg.ESLint, cfg.Prettier, cfg.Playwright)
	}
	if len(cfg.Plugins) != 0 {
		t.Errorf("Plugins = %v, want none", cfg.Plugins)
	}
	if cfg.Theme != ThemeSkeleton || cfg.TemplateID != "bare" {
		t.Errorf("Theme = %q, TemplateID = %q", cfg.Theme, cfg.TemplateID)
	}
	if !cfg.Quiet {
		t.Error("Quiet = false")
	}
}

func TestResolveQuietArgsOverride(t *testing.T) {
	args := Args{
		Name:      ptr("My Cool App"),
		Framework: ptr(FrameworkSvelteKitLib),
		Types:     ptr(TypesNone),
		ESLint:    Off,
		Theme:     ptr(ThemeRocket),
	}
	args.SetPlugin(PluginForms, On)
	args.SetPlugin(PluginTypography, On)

	work := t.TempDir()
	cfg, err := Resolve(context.Background(), args, ResolveOptions{Quiet: true, WorkDir: work})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.Name != "my-cool-app" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Path != filepath.Join(work, "my-cool-app") {
		t.Errorf("Path = %q", cfg.Path)
	}
	if cfg.Template != "skeletonlib" {
		t.Errorf("Template = %q", cfg.Template)
	}
	if cfg.Types != TypesNone || cfg.ESLint || !cfg.Prettier {
		t.Errorf("Types = %q eslint %v prettier %v", cfg.Types, cfg.ESLint, cfg.Prettier)
	}
	if !slices.Equal(cfg.Plugins, []Plugin{PluginForms, PluginTypography}) {
		t.Errorf("Plugins = %v", cfg.Plugins)
	}
	if cfg.Theme != ThemeRocket {
		t.Errorf("Theme = %q", cfg.Theme)
	}
}

func TestResolveExplicitFalseIsNotMissing(t *testing.T) {
	p := &prompt.Scripted{Answers: prompt.Answers{
		KeyName:       "app",
		KeyFramework:  "svelte-kit",
		KeyTypes:      "typescript",
		KeyPrettier:   true,
		KeyPlaywright: true,
		KeyPlugins:    []string{},
		KeyTheme:      "modern",
		KeyTemplate:   "bare",
	}}
	args := Args{ESLint: Off}

	cfg, err := Resolve(context.Background(), args, ResolveOptions{
		Prompter:  p,
		Templates: fixedTemplates("bare"),
		WorkDir:   t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if slices.Contains(p.AskedKeys(), KeyESLint) {
		t.Error("eslint was prompted although given as false")
	}
	if cfg.ESLint {
		t.Error("ESLint = true, want false")
	}
	if !cfg.Playwright {
		t.Error("Playwright answer was ignored")
	}
}

func TestResolveInteractiveAsksInOrder(t *testing.T) {
	p := &prompt.Scripted{Answers: prompt.Answers{
		KeyName:       "Demo",
		KeyFramework:  "svelte-kit-lib",
		KeyTypes:      "checkjs",
		KeyESLint:     false,
		KeyPrettier:   false,
		KeyPlaywright: false,
		KeyPlugins:    []string{"line-clamp", "forms"},
		KeyTheme:      "gold-nouveau",
		KeyTemplate:   "welcome",
	}}
	cfg, err := Resolve(context.Background(), Args{}, ResolveOptions{
		Prompter:  p,
		Templates: fixedTemplates("welcome", "bare"),
		WorkDir:   t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := []string{KeyName, KeyFramework, KeyTypes, KeyESLint, KeyPrettier, KeyPlaywright, KeyPlugins, KeyTheme, KeyTemplate}
	if got := p.AskedKeys(); !slices.Equal(got, want) {
		t.Errorf("asked = %v, want %v", got, want)
	}
	if cfg.Name != "demo" || cfg.Template != "skeletonlib" || cfg.Types != TypesCheckJS {
		t.Errorf("cfg = %+v", cfg)
	}
	if !slices.Equal(cfg.Plugins, []Plugin{PluginForms, PluginLineClamp}) {
		t.Errorf("Plugins = %v", cfg.Plugins)
	}
	if cfg.Theme != ThemeGoldNouveau || cfg.TemplateID != "welcome" {
		t.Errorf("Theme = %q, TemplateID = %q", cfg.Theme, cfg.TemplateID)
	}
}

func TestResolveNothingMissingAsksNothing(t *testing.T) {
	args := Args{
		Name:       ptr("app"),
		Framework:  ptr(FrameworkSvelteKit),
		Types:      ptr(TypesTypeScript),
		ESLint:     On,
		Prettier:   On,
		Playwright: Off,
		Theme:      ptr(ThemeSeafoam),
		TemplateID: ptr("bare"),
	}
	for _, pl := range Plugins {
		args.SetPlugin(pl, Off)
	}
	p := &prompt.Scripted{}
	if _, err := Resolve(context.Background(), args, ResolveOptions{Prompter: p, WorkDir: t.TempDir()}); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(p.Asked) != 0 {
		t.Errorf("asked %v, want nothing", p.AskedKeys())
	}
}

func TestResolvePluginQuestionSkipsGivenPlugins(t *testing.T) {
	args := Args{}
	args.SetPlugin(PluginForms, Off)
	args.SetPlugin(PluginTypography, On)

	qs, err := Checklist(args, Defaults(), fixedTemplates("bare"))
	if err != nil {
		t.Fatalf("Checklist() error = %v", err)
	}
	for _, q := range qs {
		if q.Key != KeyPlugins {
			continue
		}
		var values []string
		for _, c := range q.Choices {
			values = append(values, c.Value)
		}
		if !slices.Equal(values, []string{"line-clamp", "aspect-ratio"}) {
			t.Errorf("plugin choices = %v", values)
		}
		return
	}
	t.Error("no plugin question")
}

func TestResolveCancelled(t *testing.T) {
	p := &prompt.Scripted{Cancel: true}
	_, err := Resolve(context.Background(), Args{}, ResolveOptions{Prompter: p, Templates: fixedTemplates("bare")})
	if !errors.Is(err, prompt.ErrCancelled) {
		t.Errorf("error = %v, want ErrCancelled", err)
	}
}

func TestResolveCatalogError(t *testing.T) {
	failing := func() ([]catalog.Descriptor, error) {
		return nil, catalog.ErrMetadata
	}
	_, err := Resolve(context.Background(), Args{}, ResolveOptions{Prompter: &prompt.Scripted{}, Templates: failing})
	if !errors.Is(err, catalog.ErrMetadata) {
		t.Errorf("error = %v, want ErrMetadata", err)
	}

	_, err = Resolve(context.Background(), Args{}, ResolveOptions{Prompter: &prompt.Scripted{}, Templates: fixedTemplates()})
	if !errors.Is(err, ErrNoTemplates) {
		t.Errorf("error = %v, want ErrNoTemplates", err)
	}
}

func TestResolveEmptyName(t *testing.T) {
	_, err := Resolve(context.Background(), Args{Name: ptr("   ")}, ResolveOptions{Quiet: true})
	if !errors.Is(err, ErrInvalidName) {
		t.Errorf("error = %v, want ErrInvalidName", err)
	}
}

func TestResolveRejectsUnsafeNames(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"parent traversal", "../../etc/evil"},
		{"dot", "."},
		{"dot dot", ".."},
		{"slash", "apps/site"},
		{"backslash", `apps\site`},
		{"quote", `My "Quoted" App`},
		{"leading underscore", "_private"},
		{"leading dot", ".hidden"},
		{"reserved", "node_modules"},
		{"too long", strings.Repeat("a", 215)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Resolve(context.Background(), Args{Name: ptr(tt.in)}, ResolveOptions{Quiet: true, WorkDir: "/work/here"})
			if !errors.Is(err, ErrInvalidName) {
				t.Fatalf("Resolve(%q) error = %v, want ErrInvalidName", tt.in, err)
			}
			if cfg != nil {
				t.Errorf("Resolve(%q) returned config with Path %q", tt.in, cfg.Path)
			}
		})
	}
}

func TestValidateNameAccepts(t *testing.T) {
	for _, name := range []string{"app", "my-skeleton-app", "site.v2", "0day", "a_b", strings.Repeat("a", 214)} {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v", name, err)
		}
	}
}

func TestMergeRejectsBadAnswer(t *testing.T) {
	_, err := Merge(Args{}, prompt.Answers{KeyTheme: "neon"}, Defaults())
	if err == nil {
		t.Error("Merge() should reject unknown theme")
	}
}

func TestMergeArgumentBeatsAnswer(t *testing.T) {
	cfg, err := Merge(Args{Theme: ptr(ThemeCrimson), Prettier: Off}, prompt.Answers{
		KeyTheme:    "vintage",
		KeyPrettier: true,
	}, Defaults())
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if cfg.Theme != ThemeCrimson || cfg.Prettier {
		t.Errorf("Theme = %q, Prettier = %v", cfg.Theme, cfg.Prettier)
	}
}

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"My App":          "my-app",
		"  spaced   out ": "spaced-out",
		"tab\tname":       "tab-name",
		"already-fine":    "already-fine",
		"":                "",
	}
	for in, want := range tests {
		if got := SanitizeName(in); got != want {
			t.Errorf("SanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInstallPath(t *testing.T) {
	work := t.TempDir()
	if got := InstallPath(work, "", "app"); got != filepath.Join(work, "app") {
		t.Errorf("InstallPath(empty) = %q", got)
	}
	if got := InstallPath(work, "sub", "app"); got != filepath.Join(work, "sub", "app") {
		t.Errorf("InstallPath(relative) = %q", got)
	}
	abs := t.TempDir()
	if got := InstallPath(work, abs, "app"); got != filepath.Join(abs, "app") {
		t.Errorf("InstallPath(absolute) = %q", got)
	}
}

func TestTemplateFor(t *testing.T) {
	if TemplateFor(FrameworkSvelteKit) != "skeleton" {
		t.Error("svelte-kit should map to skeleton")
	}
	if TemplateFor(FrameworkSvelteKitLib) != "skeletonlib" {
		t.Error("svelte-kit-lib should map to skeletonlib")
	}
}
