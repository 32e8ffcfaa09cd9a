package options

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/skeletonlabs/create-skeleton-app/internal/catalog"
	"github.com/skeletonlabs/create-skeleton-app/internal/prompt"
)

// Question keys. They match the long flag names so scripted answers and
// flags read the same.
const (
	KeyName       = "name"
	KeyFramework  = "framework"
	KeyTypes      = "types"
	KeyESLint     = "eslint"
	KeyPrettier   = "prettier"
	KeyPlaywright = "playwright"
	KeyPlugins    = "twplugins"
	KeyTheme      = "skeletontheme"
	KeyTemplate   = "skeletontemplate"
)

// ErrInvalidName is returned when a sanitized project name cannot be used as
// both a directory name and an npm package name.
var ErrInvalidName = errors.New("invalid project name")

// ErrNoTemplates is returned when the template catalog offers nothing to
// choose from.
var ErrNoTemplates = errors.New("no enabled templates found")

// TemplateLister returns the enabled templates ordered by position.
type TemplateLister func() ([]catalog.Descriptor, error)

// ResolveOptions controls a Resolve call.
type ResolveOptions struct {
	// Quiet skips every prompt and uses Defaults for missing fields.
	Quiet    bool
	Prompter prompt.Prompter
	// Templates lists the choices for the template question. It is only
	// called when that question is asked.
	Templates TemplateLister
	// Defaults overrides Defaults() when non-nil.
	Defaults *Configuration
	// WorkDir is the directory relative paths are resolved against.
	WorkDir string
}

// Resolve produces the final Configuration. In quiet mode it is the default
// record overlaid by args; otherwise every missing checklist field is asked
// for first.
func Resolve(ctx context.Context, args Args, opts ResolveOptions) (*Configuration, error) {
	defaults := Defaults()
	if opts.Defaults != nil {
		defaults = *opts.Defaults
	}

	var answers prompt.Answers
	if !opts.Quiet {
		questions, err := Checklist(args, defaults, opts.Templates)
		if err != nil {
			return nil, err
		}
		if len(questions) > 0 {
			if opts.Prompter == nil {
				return nil, errors.New("interactive mode requires a prompter")
			}
			answers, err = opts.Prompter.Ask(ctx, questions)
			if err != nil {
				return nil, err
			}
		}
	}

	cfg, err := Merge(args, answers, defaults)
	if err != nil {
		return nil, err
	}
	cfg.Quiet = opts.Quiet

	cfg.Name = SanitizeName(cfg.Name)
	if err := ValidateName(cfg.Name); err != nil {
		return nil, err
	}
	cfg.Path = InstallPath(opts.WorkDir, cfg.Path, cfg.Name)
	return &cfg, nil
}

// Checklist returns the questions for every field args leaves unset, in the
// fixed order name, framework, types, eslint, prettier, playwright, plugins,
// theme, template. Initial values come from defaults.
func Checklist(args Args, defaults Configuration, templates TemplateLister) ([]prompt.Question, error) {
	var qs []prompt.Question

	if args.Name == nil {
		qs = append(qs, prompt.Question{
			Kind:    prompt.Text,
			Key:     KeyName,
			Message: "Name for your new project:",
			Initial: defaults.Name,
		})
	}
	if args.Framework == nil {
		choices := make([]prompt.Choice, len(Frameworks))
		for i, f := range Frameworks {
			choices[i] = prompt.Choice{Title: f.Title(), Value: string(f)}
		}
		qs = append(qs, prompt.Question{
			Kind:    prompt.Select,
			Key:     KeyFramework,
			Message: "What type of project?",
			Choices: choices,
			Initial: string(defaults.Framework),
		})
	}
	if args.Types == nil {
		qs = append(qs, prompt.Question{
			Kind:    prompt.Select,
			Key:     KeyTypes,
			Message: "Add type checking with TypeScript?",
			Choices: []prompt.Choice{
				{Title: "Yes, using JavaScript with JSDoc comments", Value: string(TypesCheckJS)},
				{Title: "Yes, using TypeScript syntax", Value: string(TypesTypeScript)},
				{Title: "No", Value: string(TypesNone)},
			},
			Initial: string(defaults.Types),
		})
	}
	toggles := []struct {
		toggle  Toggle
		key     string
		message string
		initial bool
	}{
		{args.ESLint, KeyESLint, "Add ESLint for code linting?", defaults.ESLint},
		{args.Prettier, KeyPrettier, "Add Prettier for code formatting?", defaults.Prettier},
		{args.Playwright, KeyPlaywright, "Add Playwright for browser testing?", defaults.Playwright},
	}
	for _, t := range toggles {
		if t.toggle.IsSet() {
			continue
		}
		qs = append(qs, prompt.Question{
			Kind:        prompt.Toggle,
			Key:         t.key,
			Message:     t.message,
			InitialBool: t.initial,
		})
	}

	var pluginChoices []prompt.Choice
	for _, p := range Plugins {
		if args.Plugin(p).IsSet() {
			continue
		}
		pluginChoices = append(pluginChoices, prompt.Choice{Title: string(p), Value: string(p)})
	}
	if len(pluginChoices) > 0 {
		qs = append(qs, prompt.Question{
			Kind:    prompt.MultiSelect,
			Key:     KeyPlugins,
			Message: "Pick tailwind plugins to add:",
			Choices: pluginChoices,
		})
	}

	if args.Theme == nil {
		choices := make([]prompt.Choice, len(Themes))
		for i, t := range Themes {
			choices[i] = prompt.Choice{Title: t.Title(), Value: string(t)}
		}
		qs = append(qs, prompt.Question{
			Kind:    prompt.Select,
			Key:     KeyTheme,
			Message: "Select a theme:",
			Choices: choices,
			Initial: string(defaults.Theme),
		})
	}

	if args.TemplateID == nil {
		if templates == nil {
			return nil, ErrNoTemplates
		}
		list, err := templates()
		if err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return nil, ErrNoTemplates
		}
		choices := make([]prompt.Choice, len(list))
		initial := list[0].ID
		for i, d := range list {
			choices[i] = prompt.Choice{Title: d.Title, Value: d.ID, Description: d.Description}
			if d.ID == defaults.TemplateID {
				initial = d.ID
			}
		}
		qs = append(qs, prompt.Question{
			Kind:    prompt.Select,
			Key:     KeyTemplate,
			Message: "Which Skeleton app template?",
			Choices: choices,
			Initial: initial,
		})
	}

	return qs, nil
}

// Merge combines args, answers and defaults field by field with precedence
// argument > answer > default. Answers of the wrong shape are ignored;
// answers with invalid enum values are errors.
func Merge(args Args, answers prompt.Answers, defaults Configuration) (Configuration, error) {
	cfg := defaults

	if args.Name != nil {
		cfg.Name = *args.Name
	} else if v, ok := answers.String(KeyName); ok {
		cfg.Name = v
	}

	if args.Path != nil {
		cfg.Path = *args.Path
	}

	if args.Framework != nil {
		cfg.Framework = *args.Framework
	} else if v, ok := answers.String(KeyFramework); ok {
		f, err := ParseFramework(v)
		if err != nil {
			return Configuration{}, err
		}
		cfg.Framework = f
	}
	cfg.Template = TemplateFor(cfg.Framework)

	if args.Types != nil {
		cfg.Types = *args.Types
	} else if v, ok := answers.String(KeyTypes); ok {
		t, err := ParseTypes(v)
		if err != nil {
			return Configuration{}, err
		}
		cfg.Types = t
	}

	cfg.ESLint = mergeBool(args.ESLint, answers, KeyESLint, defaults.ESLint)
	cfg.Prettier = mergeBool(args.Prettier, answers, KeyPrettier, defaults.Prettier)
	cfg.Playwright = mergeBool(args.Playwright, answers, KeyPlaywright, defaults.Playwright)

	picked, answered := answers.Strings(KeyPlugins)
	set := make(map[Plugin]bool, len(Plugins))
	for _, p := range Plugins {
		switch {
		case args.Plugin(p).IsSet():
			set[p] = args.Plugin(p).Bool()
		case answered:
			set[p] = slices.Contains(picked, string(p))
		default:
			set[p] = slices.Contains(defaults.Plugins, p)
		}
	}
	cfg.Plugins = SortPlugins(set)

	if args.Theme != nil {
		cfg.Theme = *args.Theme
	} else if v, ok := answers.String(KeyTheme); ok {
		t, err := ParseTheme(v)
		if err != nil {
			return Configuration{}, err
		}
		cfg.Theme = t
	}

	if args.TemplateID != nil {
		cfg.TemplateID = *args.TemplateID
	} else if v, ok := answers.String(KeyTemplate); ok {
		cfg.TemplateID = v
	}

	cfg.Monorepo = args.Monorepo.Or(defaults.Monorepo)
	cfg.Verbose = args.Verbose.Or(defaults.Verbose)
	if args.PackageManager != nil && *args.PackageManager != "" {
		cfg.PackageManager = *args.PackageManager
	}

	return cfg, nil
}

func mergeBool(t Toggle, answers prompt.Answers, key string, def bool) bool {
	if t.IsSet() {
		return t.Bool()
	}
	if v, ok := answers.Bool(key); ok {
		return v
	}
	return def
}

// SanitizeName lowercases name and joins its whitespace separated words
// with "-".
func SanitizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

// maxNameLength is the npm limit on package name length.
const maxNameLength = 214

// packageName matches unscoped npm package names: lowercase URL-safe
// characters, not starting with "." or "_".
var packageName = regexp.MustCompile(`^[a-z0-9-][a-z0-9._-]*$`)

// ValidateName reports whether a sanitized name is usable as the leaf
// directory of the project and as the package.json name.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case name == "." || name == ".." || strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q must be a single directory name", ErrInvalidName, name)
	case len(name) > maxNameLength:
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidName, maxNameLength)
	case name == "node_modules" || name == "favicon.ico":
		return fmt.Errorf("%w: %q is a reserved name", ErrInvalidName, name)
	case !packageName.MatchString(name):
		return fmt.Errorf("%w: %q is not a valid npm package name", ErrInvalidName, name)
	}
	return nil
}

// InstallPath returns the absolute directory the project is created in:
// path joined with name, with a relative path taken from workDir.
func InstallPath(workDir, path, name string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}
	dir := filepath.Join(path, name)
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
