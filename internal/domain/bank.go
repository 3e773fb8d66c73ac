package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// Bank holds the static question catalog. It is read-only after construction
// and may be shared by any number of concurrent sessions.
type Bank struct {
	questions []Question
}

// NewBank creates a Bank from a catalog of questions. Every question is
// validated; the catalog itself may be empty, in which case SelectSlate fails
// with an EMPTY_BANK error.
func NewBank(questions []Question) (*Bank, error) {
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return nil, NewError(ErrInvalidInput, fmt.Sprintf("question %d is invalid", i+1), err)
		}
	}
	catalog := make([]Question, len(questions))
	copy(catalog, questions)
	return &Bank{questions: catalog}, nil
}

// Len returns the number of questions in the catalog.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns a copy of the full catalog in its original order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// SelectSlate copies the catalog, shuffles the copy with Fisher-Yates and
// returns the first count questions. A count that is zero, negative or larger
// than the catalog yields the whole shuffled catalog. The catalog itself is
// never mutated, so concurrent calls are safe.
func (b *Bank) SelectSlate(count int) ([]Question, error) {
	if len(b.questions) == 0 {
		return nil, NewEmptyBankError()
	}

	// A fresh source per call keeps the bank free of mutable state.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	shuffled := make([]Question, len(b.questions))
	copy(shuffled, b.questions)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	if count <= 0 || count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count], nil
}
