package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/skeletonlabs/create-skeleton-app/internal/branding"
	"github.com/skeletonlabs/create-skeleton-app/internal/options"
	"github.com/skeletonlabs/create-skeleton-app/internal/pkgmanager"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyPackageManager  = "package_manager"
	KeyTemplateDir     = "template_dir"
	KeyDefaultTheme    = "default_theme"
	KeyDefaultTemplate = "default_template"
	KeyVerbose         = "verbose"
)

// Keys lists every key accepted by Set.
var Keys = []string{
	KeyPackageManager,
	KeyTemplateDir,
	KeyDefaultTheme,
	KeyDefaultTemplate,
	KeyVerbose,
}

// Dir returns the path to the config directory (~/.skeleton/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.skeleton/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// A missing file just means nothing was set yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value. Unset keys read as false.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// IsKnown reports whether key is one of Keys.
func IsKnown(key string) bool {
	return slices.Contains(Keys, key)
}

// checks validates values for keys that are not free-form.
var checks = map[string]func(string) error{
	KeyPackageManager: func(v string) error {
		switch v {
		case pkgmanager.NPM, pkgmanager.Yarn, pkgmanager.PNPM, pkgmanager.Bun:
			return nil
		}
		return fmt.Errorf("unsupported package manager %q", v)
	},
	KeyDefaultTheme: func(v string) error {
		_, err := options.ParseTheme(v)
		return err
	},
	KeyVerbose: func(v string) error {
		if _, err := strconv.ParseBool(v); err != nil {
			return fmt.Errorf("verbose must be true or false, got %q", v)
		}
		return nil
	},
}

// Set validates value, stores it under key and rewrites the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys)
	}
	if check, ok := checks[key]; ok {
		if err := check(value); err != nil {
			return fmt.Errorf("config %s: %w", key, err)
		}
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)
	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
