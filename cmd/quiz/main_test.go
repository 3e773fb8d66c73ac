package main

import "testing"

func TestQuestionCount(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		fallback int
		want     int
	}{
		{"no argument", []string{"quiz"}, 0, 0},
		{"valid number", []string{"quiz", "5"}, 0, 5},
		{"zero falls back", []string{"quiz", "0"}, 3, 3},
		{"negative falls back", []string{"quiz", "-2"}, 3, 3},
		{"non-numeric falls back", []string{"quiz", "five"}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := questionCount(tt.args, tt.fallback); got != tt.want {
				t.Errorf("questionCount(%v, %d) = %d, want %d", tt.args, tt.fallback, got, tt.want)
			}
		})
	}
}
