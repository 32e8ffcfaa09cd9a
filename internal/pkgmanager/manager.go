package pkgmanager

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Supported package manager names.
const (
	NPM  = "npm"
	Yarn = "yarn"
	PNPM = "pnpm"
	Bun  = "bun"
)

// UserAgentEnv is set by npm, yarn and pnpm when they run a package binary.
const UserAgentEnv = "npm_config_user_agent"

// Manager identifies a package manager and, when known, its version.
type Manager struct {
	Name    string
	Version *semver.Version
}

func (m Manager) String() string {
	if m.Version == nil {
		return m.Name
	}
	return m.Name + "@" + m.Version.String()
}

// Detect parses a user agent such as "pnpm/7.13.2 npm/? node/v18.12.0
// linux x64". An empty or unrecognizable agent yields npm.
func Detect(userAgent string) Manager {
	fields := strings.Fields(userAgent)
	if len(fields) == 0 {
		return Manager{Name: NPM}
	}
	name, version, _ := strings.Cut(fields[0], "/")
	if name == "" {
		return Manager{Name: NPM}
	}
	m := Manager{Name: name}
	if v, err := parseSemver(version); err == nil {
		m.Version = v
	}
	return m
}

// FromEnv detects the package manager from the process environment.
func FromEnv() Manager {
	return Detect(os.Getenv(UserAgentEnv))
}

// RunCommand returns the command that starts the dev server.
func RunCommand(pm string) string {
	if pm == NPM || pm == "" {
		return "npm run dev"
	}
	return pm + " dev"
}

// AddArgs returns the arguments that add pkg as a dev dependency.
func AddArgs(pm, pkg string) []string {
	if pm == NPM || pm == "" {
		return []string{"install", "-D", pkg}
	}
	return []string{"add", "-D", pkg}
}

// MinVersions lists the oldest tool versions the generated project supports.
var MinVersions = map[string]string{
	"node": "16.14.0",
	NPM:    "7.0.0",
	Yarn:   "1.22.0",
	PNPM:   "7.0.0",
	Bun:    "1.0.0",
}

// Probe runs "<bin> --version" and parses the first version it prints.
func Probe(ctx context.Context, bin string) (*semver.Version, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", bin, err)
	}
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "--version")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running %s --version: %w", bin, err)
	}
	v, err := parseSemver(strings.TrimSpace(out.String()))
	if err != nil {
		return nil, fmt.Errorf("parsing %s version %q: %w", bin, strings.TrimSpace(out.String()), err)
	}
	return v, nil
}

// CheckVersion reports whether version satisfies the minimum for tool.
// Tools without a known minimum always pass.
func CheckVersion(tool string, version *semver.Version) (bool, error) {
	minimum, ok := MinVersions[tool]
	if !ok {
		return true, nil
	}
	c, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return false, fmt.Errorf("parsing constraint for %s: %w", tool, err)
	}
	return c.Check(version), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
