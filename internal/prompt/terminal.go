package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Terminal renders questions as an interactive huh form on the controlling
// terminal, one question per page.
type Terminal struct {
	// Input is checked for a TTY before prompting. Defaults to os.Stdin.
	Input *os.File
}

// NewTerminal returns a Terminal prompter bound to stdin.
func NewTerminal() *Terminal {
	return &Terminal{Input: os.Stdin}
}

// Ask runs the form and returns the answers keyed by Question.Key.
func (t *Terminal) Ask(ctx context.Context, questions []Question) (Answers, error) {
	if len(questions) == 0 {
		return Answers{}, nil
	}

	in := t.Input
	if in == nil {
		in = os.Stdin
	}
	if !isatty.IsTerminal(in.Fd()) && !isatty.IsCygwinTerminal(in.Fd()) {
		return nil, ErrNoTerminal
	}

	groups := make([]*huh.Group, 0, len(questions))
	collect := make(map[string]func() any, len(questions))

	for _, q := range questions {
		field, value, err := buildField(q)
		if err != nil {
			return nil, err
		}
		groups = append(groups, huh.NewGroup(field))
		collect[q.Key] = value
	}

	form := huh.NewForm(groups...)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("running prompt: %w", err)
	}

	answers := make(Answers, len(collect))
	for key, value := range collect {
		answers[key] = value()
	}
	return answers, nil
}

// buildField converts a Question into a huh field plus a getter for its value.
func buildField(q Question) (huh.Field, func() any, error) {
	switch q.Kind {
	case Text:
		v := q.Initial
		field := huh.NewInput().
			Title(q.Message).
			Value(&v).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("a value is required")
				}
				return nil
			})
		return field, func() any { return strings.TrimSpace(v) }, nil

	case Select:
		v := q.Initial
		field := huh.NewSelect[string]().
			Title(q.Message).
			Options(options(q.Choices)...).
			Value(&v)
		return field, func() any { return v }, nil

	case Toggle:
		v := q.InitialBool
		field := huh.NewConfirm().
			Title(q.Message).
			Affirmative("Yes").
			Negative("No").
			Value(&v)
		return field, func() any { return v }, nil

	case MultiSelect:
		var v []string
		field := huh.NewMultiSelect[string]().
			Title(q.Message).
			Options(options(q.Choices)...).
			Value(&v)
		return field, func() any { return v }, nil
	}
	return nil, nil, fmt.Errorf("question %q: unsupported kind %s", q.Key, q.Kind)
}

func options(choices []Choice) []huh.Option[string] {
	opts := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		label := c.Title
		if c.Description != "" {
			label = c.Title + " - " + c.Description
		}
		opts[i] = huh.NewOption(label, c.Value)
	}
	return opts
}
