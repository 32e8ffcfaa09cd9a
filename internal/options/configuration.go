package options

// Defaults used when neither an argument nor a prompt answer supplies a value.
const (
	DefaultName           = "new-skel-app"
	DefaultTemplateID     = "bare"
	DefaultPackageManager = "npm"
)

// Args holds parsed command-line arguments. A nil pointer or an Unset toggle
// means the argument was absent.
type Args struct {
	Name       *string
	Path       *string
	Framework  *Framework
	Types      *Types
	Prettier   Toggle
	ESLint     Toggle
	Playwright Toggle
	Plugins    map[Plugin]Toggle
	Theme      *Theme
	TemplateID *string
	Monorepo   Toggle
	Verbose    Toggle

	// PackageManager is never a flag; the cli fills it from detection or
	// user settings.
	PackageManager *string
}

// Plugin returns the toggle for p, Unset when absent.
func (a Args) Plugin(p Plugin) Toggle {
	if a.Plugins == nil {
		return Unset
	}
	return a.Plugins[p]
}

// SetPlugin records an explicit plugin toggle.
func (a *Args) SetPlugin(p Plugin, t Toggle) {
	if a.Plugins == nil {
		a.Plugins = make(map[Plugin]Toggle, len(Plugins))
	}
	a.Plugins[p] = t
}

// Configuration is the fully resolved project description. Every field holds
// a concrete value.
type Configuration struct {
	Name      string
	Path      string
	Framework Framework
	// Template is the base scaffold template derived from Framework.
	Template   string
	Types      Types
	Prettier   bool
	ESLint     bool
	Playwright bool
	// Plugins is ordered by the plugin catalog and holds no duplicates.
	Plugins        []Plugin
	Theme          Theme
	TemplateID     string
	Quiet          bool
	Verbose        bool
	Monorepo       bool
	PackageManager string
}

// HasPlugin reports whether p is enabled.
func (c *Configuration) HasPlugin(p Plugin) bool {
	for _, q := range c.Plugins {
		if q == p {
			return true
		}
	}
	return false
}

// Defaults returns the default record used in quiet mode and for any field
// left unanswered.
func Defaults() Configuration {
	return Configuration{
		Name:           DefaultName,
		Path:           "",
		Framework:      FrameworkSvelteKit,
		Template:       TemplateFor(FrameworkSvelteKit),
		Types:          TypesTypeScript,
		Prettier:       true,
		ESLint:         true,
		Playwright:     false,
		Plugins:        nil,
		Theme:          ThemeSkeleton,
		TemplateID:     DefaultTemplateID,
		Monorepo:       false,
		PackageManager: DefaultPackageManager,
	}
}

// TemplateFor maps a framework to the base scaffold template it uses.
func TemplateFor(f Framework) string {
	switch f {
	case FrameworkSvelteKitLib:
		return "skeletonlib"
	default:
		return "skeleton"
	}
}
