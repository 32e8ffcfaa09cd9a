package options

import (
	"context"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func orDefault[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

func toggleGen() gopter.Gen {
	return gen.IntRange(0, 2).Map(func(i int) Toggle { return Toggle(i) })
}

// pick returns a pointer to xs[i], or nil when i is out of range so the
// generated argument counts as absent.
func pick[T any](xs []T, i int) *T {
	if i >= len(xs) {
		return nil
	}
	return &xs[i]
}

// indexGen yields 0..n, where n means "absent".
func indexGen(n int) gopter.Gen {
	return gen.IntRange(0, n)
}

var (
	propNames     = []string{"app", "My Cool App", "site-2"}
	propPaths     = []string{"", "apps", "/abs/out"}
	propTypes     = []Types{TypesTypeScript, TypesCheckJS, TypesNone}
	propTemplates = []string{"bare", "welcome", "custom"}
)

// TestQuietResolveOverlaysArgs checks that a quiet resolve equals the default
// record with every present argument written over it.
func TestQuietResolveOverlaysArgs(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("quiet resolve is defaults overlaid by args", prop.ForAll(
		func(eslint, prettier, playwright, forms, typography, lineClamp, aspect Toggle,
			themeIdx, nameIdx, pathIdx, frameworkIdx, typesIdx, templateIdx int) bool {
			args := Args{
				Name:       pick(propNames, nameIdx),
				Path:       pick(propPaths, pathIdx),
				Framework:  pick(Frameworks, frameworkIdx),
				Types:      pick(propTypes, typesIdx),
				Theme:      pick(Themes, themeIdx),
				TemplateID: pick(propTemplates, templateIdx),
				ESLint:     eslint,
				Prettier:   prettier,
				Playwright: playwright,
			}
			args.SetPlugin(PluginForms, forms)
			args.SetPlugin(PluginTypography, typography)
			args.SetPlugin(PluginLineClamp, lineClamp)
			args.SetPlugin(PluginAspectRatio, aspect)

			d := Defaults()
			cfg, err := Resolve(context.Background(), args, ResolveOptions{Quiet: true, WorkDir: "/work"})
			if err != nil {
				return false
			}

			if cfg.ESLint != eslint.Or(d.ESLint) ||
				cfg.Prettier != prettier.Or(d.Prettier) ||
				cfg.Playwright != playwright.Or(d.Playwright) {
				return false
			}
			for _, p := range Plugins {
				if cfg.HasPlugin(p) != args.Plugin(p).Or(slices.Contains(d.Plugins, p)) {
					return false
				}
			}

			wantName := d.Name
			if args.Name != nil {
				wantName = SanitizeName(*args.Name)
			}
			wantPath := d.Path
			if args.Path != nil {
				wantPath = *args.Path
			}
			return cfg.Name == wantName &&
				cfg.Path == InstallPath("/work", wantPath, wantName) &&
				cfg.Framework == orDefault(args.Framework, d.Framework) &&
				cfg.Template == TemplateFor(cfg.Framework) &&
				cfg.Types == orDefault(args.Types, d.Types) &&
				cfg.Theme == orDefault(args.Theme, d.Theme) &&
				cfg.TemplateID == orDefault(args.TemplateID, d.TemplateID) &&
				cfg.Quiet
		},
		toggleGen(), toggleGen(), toggleGen(),
		toggleGen(), toggleGen(), toggleGen(), toggleGen(),
		indexGen(len(Themes)), indexGen(len(propNames)), indexGen(len(propPaths)),
		indexGen(len(Frameworks)), indexGen(len(propTypes)), indexGen(len(propTemplates)),
	))

	properties.Property("plugins are ordered and unique", prop.ForAll(
		func(picked []int) bool {
			names := []string{"forms", "typography", "line-clamp", "aspect-ratio", "bogus"}
			var valid []string
			for _, i := range picked {
				if p, err := ParsePlugin(names[i]); err == nil {
					valid = append(valid, string(p))
				}
			}
			cfg, err := Merge(Args{}, map[string]any{KeyPlugins: valid}, Defaults())
			if err != nil {
				return false
			}
			last := -1
			for _, p := range cfg.Plugins {
				i := slices.Index(Plugins, p)
				if i <= last {
					return false
				}
				last = i
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 4)),
	))

	properties.TestingRun(t)
}
