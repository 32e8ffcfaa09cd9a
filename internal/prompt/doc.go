// Package prompt asks the user for configuration values that were not given on
// the command line. Questions are plain data (text, select, toggle and
// multi-select); the Terminal prompter renders them with huh, the Scripted
// prompter answers them from a fixed table.
package prompt
