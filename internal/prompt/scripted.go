package prompt

import (
	"context"
	"fmt"
)

// Scripted answers questions from a fixed table. It records every question it
// was asked so callers can check which fields were considered missing.
type Scripted struct {
	Answers Answers
	// Cancel makes Ask behave as if the user aborted.
	Cancel bool

	Asked []Question
}

// Ask returns the scripted answer for every question. A question without a
// scripted answer is an error.
func (s *Scripted) Ask(_ context.Context, questions []Question) (Answers, error) {
	s.Asked = append(s.Asked, questions...)
	if s.Cancel {
		return nil, ErrCancelled
	}

	out := make(Answers, len(questions))
	for _, q := range questions {
		v, ok := s.Answers[q.Key]
		if !ok {
			return nil, fmt.Errorf("no scripted answer for %q", q.Key)
		}
		out[q.Key] = v
	}
	return out, nil
}

// AskedKeys returns the keys of every recorded question, in order.
func (s *Scripted) AskedKeys() []string {
	keys := make([]string, len(s.Asked))
	for i, q := range s.Asked {
		keys[i] = q.Key
	}
	return keys
}
