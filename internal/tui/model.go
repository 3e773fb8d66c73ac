// Package tui renders a quiz session as an interactive terminal program
// using Bubble Tea. It is a thin shell over the engine: every state change
// goes through the session's operations and all feedback comes from their
// return values.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizline/internal/domain"
)

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseReport
)

// Model drives one quiz session in the terminal.
type Model struct {
	session *domain.Session
	phase   phase
	outcome *domain.Outcome
	report  *domain.Report
	flash   string // re-prompt message after invalid input
	err     error
}

// NewModel constructs a terminal UI over an already created session.
func NewModel(session *domain.Session) Model {
	m := Model{session: session}
	if session.State() == domain.StateComplete {
		m.phase = phaseReport
		m.report, m.err = session.Report()
	}
	return m
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.Type == tea.KeyCtrlC || keyMsg.Type == tea.KeyEsc {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseQuestion:
		return m.updateQuestion(keyMsg)
	case phaseFeedback:
		return m.updateFeedback()
	case phaseReport:
		return m.updateReport(keyMsg)
	}
	return m, nil
}

func (m Model) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return m, nil
	}

	outcome, err := m.session.SubmitAnswer(string(msg.Runes))
	if err != nil {
		var derr *domain.DomainError
		if errors.As(err, &derr) && derr.Code == domain.ErrInvalidInput {
			// Invalid key: keep the question on screen and re-prompt.
			m.flash = derr.Message
			return m, nil
		}
		m.err = err
		return m, tea.Quit
	}

	m.flash = ""
	m.outcome = outcome
	m.phase = phaseFeedback
	return m, nil
}

func (m Model) updateFeedback() (tea.Model, tea.Cmd) {
	if err := m.session.Advance(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.outcome = nil

	if m.session.State() == domain.StateComplete {
		report, err := m.session.Report()
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.report = report
		m.phase = phaseReport
		return m, nil
	}
	m.phase = phaseQuestion
	return m, nil
}

func (m Model) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return m, nil
	}
	switch strings.ToLower(string(msg.Runes)) {
	case "y":
		if err := m.session.Restart(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.report = nil
		m.phase = phaseQuestion
		return m, nil
	case "n", "q":
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render("error: "+m.err.Error()) + "\n"
	}

	switch m.phase {
	case phaseQuestion:
		return m.viewQuestion()
	case phaseFeedback:
		return m.viewFeedback()
	case phaseReport:
		return m.viewReport()
	}
	return ""
}

func (m Model) viewQuestion() string {
	question, err := m.session.CurrentQuestion()
	if err != nil {
		return errorStyle.Render("error: "+err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Question %d of %d", m.session.Position()+1, m.session.Len())))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(question.Prompt))
	b.WriteString("\n\n")
	for _, key := range question.OptionKeys() {
		b.WriteString(fmt.Sprintf("  %s. %s\n", key, question.Options[key]))
	}
	b.WriteString("\n")
	if m.flash != "" {
		b.WriteString(wrongStyle.Render(m.flash))
		b.WriteString("\n")
	}
	keys := strings.Join(question.OptionKeys(), "/")
	b.WriteString(dimStyle.Render("Press " + keys + " to answer, esc to quit."))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewFeedback() string {
	var b strings.Builder
	if m.outcome.IsCorrect {
		b.WriteString(correctStyle.Render("Correct!"))
	} else {
		b.WriteString(wrongStyle.Render("Incorrect. The correct answer is " + m.outcome.CorrectKey + "."))
		if m.outcome.Explanation != "" {
			b.WriteString("\n\n")
			b.WriteString(m.outcome.Explanation)
		}
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Press any key to continue."))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewReport() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Quiz complete!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score: %d/%d (%.1f%%)\n", m.report.Score, m.report.Total, m.report.Percent))

	if len(m.report.Missed) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Review of incorrect answers:"))
		b.WriteString("\n")
		for _, miss := range m.report.Missed {
			q := miss.Question
			b.WriteString(fmt.Sprintf("\nQuestion %d: %s\n", miss.Number, q.Prompt))
			b.WriteString(wrongStyle.Render(fmt.Sprintf("  Your answer: %s. %s", miss.GivenKey, q.Options[miss.GivenKey])))
			b.WriteString("\n")
			b.WriteString(correctStyle.Render(fmt.Sprintf("  Correct: %s. %s", q.CorrectKey, q.Options[q.CorrectKey])))
			b.WriteString("\n")
			if q.Explanation != "" {
				b.WriteString(fmt.Sprintf("  Explanation: %s\n", q.Explanation))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(m.report.Grade())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Play again? (y/n)"))
	b.WriteString("\n")
	return b.String()
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	promptStyle  = lipgloss.NewStyle().Bold(true)
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)
