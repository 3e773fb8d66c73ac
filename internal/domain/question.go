package domain

import (
	"sort"
	"strings"
)

// Question represents a single multiple-choice question in the catalog.
// Instances are built once at startup and never mutated afterwards.
type Question struct {
	Prompt      string
	Options     map[string]string // option key (single letter) -> option text
	CorrectKey  string
	Explanation string // shown when the question is answered incorrectly; may be empty
}

// NewQuestion creates a new Question instance
func NewQuestion(prompt string, options map[string]string, correctKey, explanation string) *Question {
	return &Question{
		Prompt:      prompt,
		Options:     options,
		CorrectKey:  correctKey,
		Explanation: explanation,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Prompt == "" {
		return NewInvalidInputError("question prompt is required")
	}
	if len(q.Options) < 2 {
		return NewInvalidInputError("question requires at least two options")
	}
	for key := range q.Options {
		if len(key) != 1 || key != strings.ToUpper(key) {
			return NewInvalidInputError("option key must be a single uppercase letter, got: " + key)
		}
	}
	if _, ok := q.Options[q.CorrectKey]; !ok {
		return NewInvalidInputError("correct key '" + q.CorrectKey + "' is not among the options")
	}
	return nil
}

// OptionKeys returns the option keys in alphabetical order.
func (q *Question) OptionKeys() []string {
	keys := make([]string, 0, len(q.Options))
	for key := range q.Options {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// HasOption reports whether key names one of the question's options.
// Matching is case-insensitive on the key, never on the option text.
func (q *Question) HasOption(key string) bool {
	_, ok := q.Options[strings.ToUpper(key)]
	return ok
}

// IsCorrect reports whether key matches the correct answer, ignoring case.
func (q *Question) IsCorrect(key string) bool {
	return strings.EqualFold(key, q.CorrectKey)
}
