// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GitHubRepo  string `yaml:"github_repo"`
	DiscordURL  string `yaml:"discord_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "create-skeleton-app",
			DisplayName: "Skeleton",
			Description: "Create a new Skeleton project for Svelte + Tailwind",
			HomeDir:     ".skeleton",
			EnvPrefix:   "SKELETON",
			GitHubRepo:  "skeletonlabs/skeleton",
			DiscordURL:  "https://discord.gg/EXqV7W8MtY",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-skeleton-app").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Skeleton").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".skeleton").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SKELETON").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// IssuesURL returns the issue tracker URL derived from GitHubRepo.
func IssuesURL() string { load(); return "https://github.com/" + defaults.GitHubRepo + "/issues" }

// DiscordURL returns the community support link printed after a run.
func DiscordURL() string { load(); return defaults.DiscordURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("THEME") → "SKELETON_THEME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
