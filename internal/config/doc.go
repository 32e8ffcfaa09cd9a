// Package config manages user-level settings stored at ~/.skeleton/config.yaml.
// Settings tune the defaults used in quiet mode (theme, template), the template
// directory, and the package manager override. Every key can also be supplied
// through a SKELETON_* environment variable.
package config
