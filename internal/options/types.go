package options

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Toggle is a boolean that remembers whether it was set at all.
type Toggle uint8

const (
	Unset Toggle = iota
	On
	Off
)

// ToggleOf returns On for true and Off for false.
func ToggleOf(b bool) Toggle {
	if b {
		return On
	}
	return Off
}

// IsSet reports whether the toggle carries a value.
func (t Toggle) IsSet() bool { return t != Unset }

// Bool returns true only for On.
func (t Toggle) Bool() bool { return t == On }

// Or returns the toggle's value, or def when unset.
func (t Toggle) Or(def bool) bool {
	if t == Unset {
		return def
	}
	return t == On
}

func (t Toggle) String() string {
	switch t {
	case On:
		return "true"
	case Off:
		return "false"
	}
	return "unset"
}

// Framework is the kind of project created by the base scaffold.
type Framework string

const (
	FrameworkSvelteKit    Framework = "svelte-kit"
	FrameworkSvelteKitLib Framework = "svelte-kit-lib"
)

// Frameworks lists the supported frameworks in prompt order.
var Frameworks = []Framework{FrameworkSvelteKit, FrameworkSvelteKitLib}

// ParseFramework validates a framework name.
func ParseFramework(s string) (Framework, error) {
	f := Framework(strings.TrimSpace(s))
	if !slices.Contains(Frameworks, f) {
		return "", fmt.Errorf("invalid framework %q: must be one of %s", s, joinValues(Frameworks))
	}
	return f, nil
}

// Title returns the display label of the framework.
func (f Framework) Title() string {
	switch f {
	case FrameworkSvelteKit:
		return "Svelte Kit"
	case FrameworkSvelteKitLib:
		return "Svelte Kit Library"
	}
	return string(f)
}

// Types selects how the project is type checked.
type Types string

const (
	TypesTypeScript Types = "typescript"
	TypesCheckJS    Types = "checkjs"
	TypesNone       Types = "null"
)

// ParseTypes validates a type checking mode. "none" and the empty string
// both mean no type checking.
func ParseTypes(s string) (Types, error) {
	switch strings.TrimSpace(s) {
	case "typescript":
		return TypesTypeScript, nil
	case "checkjs":
		return TypesCheckJS, nil
	case "null", "none", "":
		return TypesNone, nil
	}
	return "", fmt.Errorf("invalid types %q: must be one of typescript, checkjs, null", s)
}

// Plugin is an optional Tailwind plugin.
type Plugin string

const (
	PluginForms       Plugin = "forms"
	PluginTypography  Plugin = "typography"
	PluginLineClamp   Plugin = "line-clamp"
	PluginAspectRatio Plugin = "aspect-ratio"
)

// Plugins lists every plugin in catalog order. Generated files and install
// lists follow this order.
var Plugins = []Plugin{PluginForms, PluginTypography, PluginLineClamp, PluginAspectRatio}

// ParsePlugin validates a plugin id. "lineclamp" and "aspectratio" are
// accepted as the flag spellings.
func ParsePlugin(s string) (Plugin, error) {
	switch strings.TrimSpace(s) {
	case "forms":
		return PluginForms, nil
	case "typography":
		return PluginTypography, nil
	case "line-clamp", "lineclamp":
		return PluginLineClamp, nil
	case "aspect-ratio", "aspectratio":
		return PluginAspectRatio, nil
	}
	return "", fmt.Errorf("invalid tailwind plugin %q: must be one of %s", s, joinValues(Plugins))
}

// Package returns the npm package providing the plugin.
func (p Plugin) Package() string {
	return "@tailwindcss/" + string(p)
}

// SortPlugins returns the members of set in catalog order.
func SortPlugins(set map[Plugin]bool) []Plugin {
	var out []Plugin
	for _, p := range Plugins {
		if set[p] {
			out = append(out, p)
		}
	}
	return out
}

// Theme is one of the bundled Skeleton themes.
type Theme string

const (
	ThemeSkeleton    Theme = "skeleton"
	ThemeModern      Theme = "modern"
	ThemeHamlindigo  Theme = "hamlindigo"
	ThemeRocket      Theme = "rocket"
	ThemeSahara      Theme = "sahara"
	ThemeGoldNouveau Theme = "gold-nouveau"
	ThemeVintage     Theme = "vintage"
	ThemeSeafoam     Theme = "seafoam"
	ThemeCrimson     Theme = "crimson"
)

// Themes lists every theme in prompt order. The first entry is the default.
var Themes = []Theme{
	ThemeSkeleton,
	ThemeModern,
	ThemeHamlindigo,
	ThemeRocket,
	ThemeSahara,
	ThemeGoldNouveau,
	ThemeVintage,
	ThemeSeafoam,
	ThemeCrimson,
}

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Themes, t) {
		return "", fmt.Errorf("invalid theme %q: must be one of %s", s, joinValues(Themes))
	}
	return t, nil
}

var titleCaser = cases.Title(language.English)

// Title returns the display label, e.g. "Gold Nouveau".
func (t Theme) Title() string {
	return titleCaser.String(strings.ReplaceAll(string(t), "-", " "))
}

// Stylesheet returns the theme's stylesheet file name, e.g. "theme-rocket.css".
func (t Theme) Stylesheet() string {
	return "theme-" + string(t) + ".css"
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
