// Package pkgmanager detects the package manager that launched the tool and
// installs project dependencies through it, one package per invocation.
package pkgmanager
