package domain

import (
	"strings"
)

// SessionState represents where a quiz session is in its lifecycle
type SessionState string

const (
	// StateActive means the current question is waiting for an answer.
	StateActive SessionState = "ACTIVE"
	// StateAwaitingAdvance means the current question has been finalized and
	// feedback is available, but the session has not moved on yet.
	StateAwaitingAdvance SessionState = "AWAITING_ADVANCE"
	// StateComplete means every question has been answered.
	StateComplete SessionState = "COMPLETE"
)

// Outcome is the feedback produced by finalizing an answer. It is the only
// channel through which the engine reports per-question results; the engine
// itself never prints anything.
type Outcome struct {
	IsCorrect   bool
	CorrectKey  string
	Explanation string
}

// MissedAnswer records one incorrectly answered question for the end-of-quiz
// review. Number is 1-based in the order the questions were asked.
type MissedAnswer struct {
	Number   int
	Question Question
	GivenKey string
}

// Report summarizes a completed session.
type Report struct {
	Score   int
	Total   int
	Percent float64
	Missed  []MissedAnswer
}

// Grade returns the closing remark for the report, shared by all renderers.
func (r Report) Grade() string {
	switch {
	case r.Total > 0 && r.Score == r.Total:
		return "Excellent! You got a perfect score."
	case r.Percent >= 70:
		return "Well done, a strong result."
	default:
		return "Keep practicing, there is more to learn."
	}
}

// Session owns the mutable state of one quiz run: the shuffled slate, the
// cursor, the score and the missed-answer list. A Session belongs to exactly
// one quiz taker and is not safe for concurrent use.
type Session struct {
	bank          *Bank
	requested     int // slate size asked for at creation, reused by Restart
	questions     []Question
	position      int
	score         int
	missed        []MissedAnswer
	currentAnswer string
	state         SessionState
}

// NewSession draws a fresh shuffled slate of count questions from the bank
// and starts a session over it. Count follows SelectSlate's rules: zero,
// negative or oversized values select the whole catalog.
func NewSession(bank *Bank, count int) (*Session, error) {
	s := &Session{bank: bank, requested: count}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) reset() error {
	slate, err := s.bank.SelectSlate(s.requested)
	if err != nil {
		return err
	}
	s.questions = slate
	s.position = 0
	s.score = 0
	s.missed = nil
	s.currentAnswer = ""
	if len(slate) == 0 {
		s.state = StateComplete
	} else {
		s.state = StateActive
	}
	return nil
}

// State returns the session's current lifecycle state.
func (s *Session) State() SessionState {
	return s.state
}

// Len returns the number of questions in the slate.
func (s *Session) Len() int {
	return len(s.questions)
}

// Position returns the 0-based index of the current question. It equals
// Len() once the session is complete.
func (s *Session) Position() int {
	return s.position
}

// Score returns the number of correctly answered questions so far.
func (s *Session) Score() int {
	return s.score
}

// CurrentQuestion returns the question at the cursor. It fails with an
// INVALID_STATE error unless the session is active.
func (s *Session) CurrentQuestion() (*Question, error) {
	if s.state != StateActive {
		return nil, NewInvalidStateError("no current question: session is " + string(s.state))
	}
	return &s.questions[s.position], nil
}

// SubmitAnswer finalizes the current question with the given option key.
// Blank input or a key outside the question's options fails with an
// INVALID_INPUT error and leaves the session untouched, so the caller can
// re-prompt. A valid key scores the question, records a miss when wrong and
// moves the session to AwaitingAdvance.
func (s *Session) SubmitAnswer(key string) (*Outcome, error) {
	if s.state != StateActive {
		return nil, NewInvalidStateError("cannot submit an answer: session is " + string(s.state))
	}

	answer := strings.ToUpper(strings.TrimSpace(key))
	if answer == "" {
		return nil, NewInvalidInputError("answer must not be blank")
	}

	question := s.questions[s.position]
	if !question.HasOption(answer) {
		return nil, NewInvalidInputError("'" + answer + "' is not one of the options " + strings.Join(question.OptionKeys(), "/"))
	}

	s.currentAnswer = answer
	outcome := &Outcome{
		IsCorrect:   question.IsCorrect(answer),
		CorrectKey:  question.CorrectKey,
		Explanation: question.Explanation,
	}
	if outcome.IsCorrect {
		s.score++
	} else {
		s.missed = append(s.missed, MissedAnswer{
			Number:   s.position + 1,
			Question: question,
			GivenKey: answer,
		})
	}
	s.state = StateAwaitingAdvance
	return outcome, nil
}

// Advance moves past a finalized question. It fails with an INVALID_STATE
// error unless the previous answer has been finalized.
func (s *Session) Advance() error {
	if s.state != StateAwaitingAdvance {
		return NewInvalidStateError("cannot advance: session is " + string(s.state))
	}
	s.position++
	s.currentAnswer = ""
	if s.position < len(s.questions) {
		s.state = StateActive
	} else {
		s.state = StateComplete
	}
	return nil
}

// Report returns the final results. It fails with an INVALID_STATE error
// until the session is complete; once complete it is idempotent.
func (s *Session) Report() (*Report, error) {
	if s.state != StateComplete {
		return nil, NewInvalidStateError("cannot report: session is " + string(s.state))
	}
	total := len(s.questions)
	percent := 0.0
	if total > 0 {
		percent = float64(s.score) / float64(total) * 100
	}
	missed := make([]MissedAnswer, len(s.missed))
	copy(missed, s.missed)
	return &Report{
		Score:   s.score,
		Total:   total,
		Percent: percent,
		Missed:  missed,
	}, nil
}

// Restart throws away all progress and draws a new shuffled slate of the
// same size from the bank. It is valid in every state.
func (s *Session) Restart() error {
	return s.reset()
}
