// Command quiz runs the quiz in the terminal against the embedded catalog or
// the catalog configured in config.yaml.
//
// Usage:
//
//	quiz [number_of_questions]
//
// A missing, non-numeric or non-positive argument selects the whole catalog.
package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"quizline/internal/catalog"
	"quizline/internal/config"
	"quizline/internal/domain"
	"quizline/internal/tui"
)

func questionCount(args []string, fallback int) int {
	if len(args) < 2 {
		return fallback
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	bank, err := catalog.Load(cfg.Quiz.CatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load question catalog: %v\n", err)
		os.Exit(1)
	}

	count := questionCount(os.Args, cfg.Quiz.QuestionCount)
	session, err := domain.NewSession(bank, count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start quiz: %v\n", err)
		os.Exit(1)
	}

	final, err := tea.NewProgram(tui.NewModel(session)).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "quiz aborted: %v\n", err)
		os.Exit(1)
	}
	if model, ok := final.(tui.Model); ok && model.Err() != nil {
		fmt.Fprintf(os.Stderr, "quiz aborted: %v\n", model.Err())
		os.Exit(1)
	}
	fmt.Println("Thanks for playing, goodbye!")
}
