package domain

import (
	"errors"
	"fmt"
	"testing"
)

func sampleCatalog(n int) []Question {
	catalog := make([]Question, 0, n)
	for i := 0; i < n; i++ {
		catalog = append(catalog, Question{
			Prompt: fmt.Sprintf("Question %d", i+1),
			Options: map[string]string{
				"A": "first",
				"B": "second",
				"C": "third",
				"D": "fourth",
			},
			CorrectKey:  "B",
			Explanation: "because",
		})
	}
	return catalog
}

func assertErrorCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("expected a DomainError, got %v", err)
	}
	if derr.Code != code {
		t.Fatalf("expected error code %s, got %s (%v)", code, derr.Code, err)
	}
}

func TestQuestion_Validate(t *testing.T) {
	valid := func() Question {
		return Question{
			Prompt:     "What is up?",
			Options:    map[string]string{"A": "sky", "B": "ground"},
			CorrectKey: "A",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Question)
		wantErr bool
	}{
		{"valid question", func(q *Question) {}, false},
		{"missing prompt", func(q *Question) { q.Prompt = "" }, true},
		{"single option", func(q *Question) { q.Options = map[string]string{"A": "sky"} }, true},
		{"lowercase option key", func(q *Question) { q.Options = map[string]string{"a": "sky", "B": "ground"} }, true},
		{"multi-letter option key", func(q *Question) { q.Options = map[string]string{"AB": "sky", "B": "ground"} }, true},
		{"correct key not among options", func(q *Question) { q.CorrectKey = "Z" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid()
			tt.mutate(&q)
			err := q.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected a validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestNewBank_RejectsInvalidQuestion(t *testing.T) {
	catalog := sampleCatalog(3)
	catalog[1].CorrectKey = "Z"
	if _, err := NewBank(catalog); err == nil {
		t.Fatal("expected NewBank to reject a question with an unknown correct key")
	}
}

func TestBank_SelectSlate_Lengths(t *testing.T) {
	bank, err := NewBank(sampleCatalog(5))
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	tests := []struct {
		name    string
		count   int
		wantLen int
	}{
		{"negative count selects all", -1, 5},
		{"zero count selects all", 0, 5},
		{"count within range", 3, 3},
		{"count equal to catalog", 5, 5},
		{"count beyond catalog selects all", 9, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slate, err := bank.SelectSlate(tt.count)
			if err != nil {
				t.Fatalf("SelectSlate(%d): %v", tt.count, err)
			}
			if len(slate) != tt.wantLen {
				t.Errorf("SelectSlate(%d) returned %d questions, want %d", tt.count, len(slate), tt.wantLen)
			}
		})
	}
}

func TestBank_SelectSlate_NoDuplicates(t *testing.T) {
	bank, err := NewBank(sampleCatalog(8))
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	slate, err := bank.SelectSlate(8)
	if err != nil {
		t.Fatalf("SelectSlate: %v", err)
	}

	seen := make(map[string]bool)
	for _, q := range slate {
		if seen[q.Prompt] {
			t.Errorf("question %q appears more than once in the slate", q.Prompt)
		}
		seen[q.Prompt] = true
		if _, ok := q.Options[q.CorrectKey]; !ok {
			t.Errorf("question %q lost its correct key after selection", q.Prompt)
		}
	}
}

func TestBank_SelectSlate_IsPermutation(t *testing.T) {
	catalog := sampleCatalog(6)
	bank, err := NewBank(catalog)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	slate, err := bank.SelectSlate(0)
	if err != nil {
		t.Fatalf("SelectSlate: %v", err)
	}

	want := make(map[string]int)
	for _, q := range catalog {
		want[q.Prompt]++
	}
	got := make(map[string]int)
	for _, q := range slate {
		got[q.Prompt]++
	}
	for prompt, n := range want {
		if got[prompt] != n {
			t.Errorf("slate is not a permutation of the catalog: %q occurs %d times, want %d", prompt, got[prompt], n)
		}
	}
}

func TestBank_SelectSlate_DoesNotMutateCatalog(t *testing.T) {
	catalog := sampleCatalog(6)
	bank, err := NewBank(catalog)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	for i := 0; i < 10; i++ {
		if _, err := bank.SelectSlate(3); err != nil {
			t.Fatalf("SelectSlate: %v", err)
		}
	}

	questions := bank.Questions()
	for i, q := range questions {
		if q.Prompt != catalog[i].Prompt {
			t.Fatalf("catalog order changed at %d: got %q, want %q", i, q.Prompt, catalog[i].Prompt)
		}
	}
}

func TestBank_SelectSlate_EmptyBank(t *testing.T) {
	bank, err := NewBank(nil)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	_, err = bank.SelectSlate(3)
	if err == nil {
		t.Fatal("expected an error selecting from an empty bank")
	}
	assertErrorCode(t, err, ErrEmptyBank)
}
