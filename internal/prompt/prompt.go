package prompt

import (
	"context"
	"errors"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("prompt cancelled by user")

// ErrNoTerminal is returned when interactive prompting is requested but stdin
// is not a terminal.
var ErrNoTerminal = errors.New("interactive mode requires a terminal; pass --quiet to use defaults")

// Kind selects how a question is rendered.
type Kind int

const (
	Text Kind = iota
	Select
	Toggle
	MultiSelect
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Select:
		return "select"
	case Toggle:
		return "toggle"
	case MultiSelect:
		return "multiselect"
	}
	return "unknown"
}

// Choice is one option of a Select or MultiSelect question.
type Choice struct {
	Title       string
	Value       string
	Description string
}

// Question describes a single value to collect.
type Question struct {
	Kind    Kind
	Key     string
	Message string
	Choices []Choice

	// Initial is the preselected value for Text and Select questions.
	Initial string
	// InitialBool is the preselected value for Toggle questions.
	InitialBool bool
}

// Prompter collects answers for a list of questions, in order.
type Prompter interface {
	Ask(ctx context.Context, questions []Question) (Answers, error)
}

// Answers maps question keys to answers. Values are string (Text, Select),
// bool (Toggle) or []string (MultiSelect).
type Answers map[string]any

// String returns the answer for key if it is a string.
func (a Answers) String(key string) (string, bool) {
	v, ok := a[key].(string)
	return v, ok
}

// Bool returns the answer for key if it is a bool.
func (a Answers) Bool(key string) (bool, bool) {
	v, ok := a[key].(bool)
	return v, ok
}

// Strings returns the answer for key if it is a string list.
func (a Answers) Strings(key string) ([]string, bool) {
	v, ok := a[key].([]string)
	return v, ok
}
