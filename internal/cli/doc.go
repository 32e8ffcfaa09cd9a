// Package cli defines the Cobra command tree for create-skeleton-app. The root
// command creates a project; each other file registers one subcommand
// (templates, config, doctor, version). Commands delegate to internal packages
// for business logic and only handle flag parsing, I/O formatting, and user
// interaction.
package cli
