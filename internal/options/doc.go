// Package options turns parsed command-line arguments, prompt answers and
// defaults into one resolved Configuration.
//
// Every optional field keeps its presence: a flag that was given as false is
// different from a flag that was not given. Precedence is always
// argument > prompt answer > default, field by field.
package options
