package generate

import (
	"fmt"
	"strings"

	"github.com/skeletonlabs/create-skeleton-app/internal/options"
)

// Output paths, relative to the project root and slash-separated.
const (
	SvelteConfigFile   = "svelte.config.js"
	TailwindConfigFile = "tailwind.config.cjs"
	PostCSSConfigFile  = "postcss.config.cjs"
	LayoutFile         = "src/routes/+layout.svelte"
	AppPostCSSFile     = "src/app.postcss"
)

// ThemePluginRef is the Tailwind plugin every project loads.
const ThemePluginRef = "require('@brainandbones/skeleton/tailwind/theme.cjs')"

// File is one generated file.
type File struct {
	Path    string
	Content string
}

// Files returns every generated file for cfg in write order.
func Files(cfg *options.Configuration) []File {
	return []File{
		{SvelteConfigFile, SvelteConfig()},
		{TailwindConfigFile, TailwindConfig(cfg.Plugins)},
		{PostCSSConfigFile, PostCSSConfig()},
		{LayoutFile, Layout(cfg.Theme)},
		{AppPostCSSFile, AppPostCSS()},
	}
}

// SvelteConfig returns svelte.config.js with svelte-preprocess wired for
// PostCSS.
func SvelteConfig() string {
	return `import adapter from '@sveltejs/adapter-auto';
import preprocess from 'svelte-preprocess';

/** @type {import('@sveltejs/kit').Config} */
const config = {
	kit: {
		adapter: adapter()
	},
	vitePlugin: {
		emitCss: false
	},
	compilerOptions: {
		css: 'injected'
	},
	preprocess: [
		preprocess({
			postcss: true
		})
	]
};

export default config;
`
}

// PluginRef returns the require expression for a Tailwind plugin.
func PluginRef(p options.Plugin) string {
	return fmt.Sprintf("require('%s')", p.Package())
}

// aspectRatios is the ratio table installed with the aspect-ratio plugin.
// Named ratios come first, then 1 through 16.
func aspectRatios() [][2]string {
	ratios := [][2]string{
		{"auto", "auto"},
		{"square", "1 / 1"},
		{"video", "16 / 9"},
	}
	for i := 1; i <= 16; i++ {
		n := fmt.Sprint(i)
		ratios = append(ratios, [2]string{n, n})
	}
	return ratios
}

// TailwindConfig returns tailwind.config.cjs. Plugin references follow
// catalog order whatever the order of plugins, duplicates are dropped, and
// the Skeleton theme plugin is always last. With aspect-ratio enabled the
// core aspectRatio plugin is disabled and the ratio table is added to the
// theme extension.
func TailwindConfig(plugins []options.Plugin) string {
	enabled := make(map[options.Plugin]bool, len(plugins))
	for _, p := range plugins {
		enabled[p] = true
	}

	var refs []string
	for _, p := range options.SortPlugins(enabled) {
		refs = append(refs, PluginRef(p))
	}
	refs = append(refs, ThemePluginRef)

	var b strings.Builder
	b.WriteString("/** @type {import('tailwindcss').Config} */\n")
	b.WriteString("module.exports = {\n")
	b.WriteString("\tdarkMode: 'class',\n")
	if enabled[options.PluginAspectRatio] {
		b.WriteString("\tcorePlugins: {\n\t\taspectRatio: false\n\t},\n")
	}
	b.WriteString("\tcontent: [\n")
	b.WriteString("\t\t'./src/**/*.{html,js,svelte,ts}',\n")
	b.WriteString("\t\trequire('path').join(require.resolve('@brainandbones/skeleton'), '../**/*.{html,js,svelte,ts}')\n")
	b.WriteString("\t],\n")
	b.WriteString("\ttheme: {\n")
	if enabled[options.PluginAspectRatio] {
		b.WriteString("\t\textend: {\n\t\t\taspectRatio: {\n")
		ratios := aspectRatios()
		for i, r := range ratios {
			sep := ","
			if i == len(ratios)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "\t\t\t\t'%s': '%s'%s\n", r[0], r[1], sep)
		}
		b.WriteString("\t\t\t}\n\t\t}\n")
	} else {
		b.WriteString("\t\textend: {}\n")
	}
	b.WriteString("\t},\n")
	b.WriteString("\tplugins: [\n")
	for i, ref := range refs {
		sep := ","
		if i == len(refs)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "\t\t%s%s\n", ref, sep)
	}
	b.WriteString("\t]\n")
	b.WriteString("};\n")
	return b.String()
}

// PostCSSConfig returns postcss.config.cjs.
func PostCSSConfig() string {
	return `module.exports = {
	plugins: {
		tailwindcss: {},
		autoprefixer: {}
	}
};
`
}

// ThemeImport returns the stylesheet import line for theme. The overlay
// patch looks for exactly this shape.
func ThemeImport(theme options.Theme) string {
	return fmt.Sprintf("import '@brainandbones/skeleton/themes/%s';", theme.Stylesheet())
}

// Layout returns the root +layout.svelte importing the theme, the Skeleton
// stylesheet and the app's global styles.
func Layout(theme options.Theme) string {
	return "<script>\n" +
		"\t" + ThemeImport(theme) + "\n" +
		"\timport '@brainandbones/skeleton/styles/all.css';\n" +
		"\timport '../app.postcss';\n" +
		"</script>\n\n" +
		"<slot />\n"
}

// AppPostCSS returns the global stylesheet.
func AppPostCSS() string {
	return "/*place global styles here */\n"
}
