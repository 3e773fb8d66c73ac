package service

import (
	"sync"

	"quizline/internal/domain"
	"quizline/internal/dto"
	"quizline/internal/logger"
	"quizline/internal/util"

	"go.uber.org/zap"
)

// SessionService defines the interface for driving quiz sessions over the
// shared question bank. Every quiz taker gets their own session; the service
// keys them by ULID.
type SessionService interface {
	StartSession(req *dto.StartSessionRequest) (*dto.SessionResponse, error)
	GetCurrentQuestion(sessionID string) (*dto.QuestionResponse, error)
	SubmitAnswer(sessionID string, req *dto.SubmitAnswerRequest) (*dto.AnswerOutcomeResponse, error)
	Advance(sessionID string) (*dto.SessionResponse, error)
	GetReport(sessionID string) (*dto.ReportResponse, error)
	RestartSession(sessionID string) (*dto.SessionResponse, error)
	EndSession(sessionID string) error
}

// sessionService implements SessionService with an in-memory registry.
// Sessions live only for the lifetime of the process; discarding one has no
// cleanup obligation beyond removing the registry entry.
type sessionService struct {
	bank     *domain.Bank
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

// sessionEntry serializes access to one session. The engine itself is not
// safe for concurrent use, and two requests racing on the same session ID
// must not corrupt its state machine.
type sessionEntry struct {
	mu      sync.Mutex
	session *domain.Session
}

// NewSessionService creates a new instance of sessionService
func NewSessionService(bank *domain.Bank) SessionService {
	return &sessionService{
		bank:     bank,
		sessions: make(map[string]*sessionEntry),
	}
}

func (s *sessionService) lookup(sessionID string) (*sessionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return entry, nil
}

// StartSession implements SessionService
func (s *sessionService) StartSession(req *dto.StartSessionRequest) (*dto.SessionResponse, error) {
	count := 0
	if req != nil {
		count = req.Count
	}

	session, err := domain.NewSession(s.bank, count)
	if err != nil {
		return nil, err
	}

	id := util.NewULID()
	s.mu.Lock()
	s.sessions[id] = &sessionEntry{session: session}
	s.mu.Unlock()

	logger.Get().Info("Quiz session started",
		zap.String("session_id", id),
		zap.Int("questions", session.Len()),
	)
	return toSessionResponse(id, session), nil
}

// GetCurrentQuestion implements SessionService
func (s *sessionService) GetCurrentQuestion(sessionID string) (*dto.QuestionResponse, error) {
	entry, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	question, err := entry.session.CurrentQuestion()
	if err != nil {
		return nil, err
	}

	options := make(map[string]string, len(question.Options))
	for key, text := range question.Options {
		options[key] = text
	}
	return &dto.QuestionResponse{
		Number:  entry.session.Position() + 1,
		Total:   entry.session.Len(),
		Prompt:  question.Prompt,
		Options: options,
	}, nil
}

// SubmitAnswer implements SessionService
func (s *sessionService) SubmitAnswer(sessionID string, req *dto.SubmitAnswerRequest) (*dto.AnswerOutcomeResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}
	entry, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	outcome, err := entry.session.SubmitAnswer(req.Answer)
	if err != nil {
		return nil, err
	}
	return &dto.AnswerOutcomeResponse{
		Correct:     outcome.IsCorrect,
		CorrectKey:  outcome.CorrectKey,
		Explanation: outcome.Explanation,
	}, nil
}

// Advance implements SessionService
func (s *sessionService) Advance(sessionID string) (*dto.SessionResponse, error) {
	entry, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.session.Advance(); err != nil {
		return nil, err
	}
	return toSessionResponse(sessionID, entry.session), nil
}

// GetReport implements SessionService
func (s *sessionService) GetReport(sessionID string) (*dto.ReportResponse, error) {
	entry, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	report, err := entry.session.Report()
	if err != nil {
		return nil, err
	}

	missed := make([]dto.MissedAnswerResponse, 0, len(report.Missed))
	for _, miss := range report.Missed {
		missed = append(missed, dto.MissedAnswerResponse{
			Number:      miss.Number,
			Prompt:      miss.Question.Prompt,
			GivenKey:    miss.GivenKey,
			GivenText:   miss.Question.Options[miss.GivenKey],
			CorrectKey:  miss.Question.CorrectKey,
			CorrectText: miss.Question.Options[miss.Question.CorrectKey],
			Explanation: miss.Question.Explanation,
		})
	}
	return &dto.ReportResponse{
		Score:   report.Score,
		Total:   report.Total,
		Percent: report.Percent,
		Grade:   report.Grade(),
		Missed:  missed,
	}, nil
}

// RestartSession implements SessionService
func (s *sessionService) RestartSession(sessionID string) (*dto.SessionResponse, error) {
	entry, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.session.Restart(); err != nil {
		return nil, err
	}
	logger.Get().Info("Quiz session restarted", zap.String("session_id", sessionID))
	return toSessionResponse(sessionID, entry.session), nil
}

// EndSession implements SessionService
func (s *sessionService) EndSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return domain.NewSessionNotFoundError(sessionID)
	}
	delete(s.sessions, sessionID)
	logger.Get().Info("Quiz session ended", zap.String("session_id", sessionID))
	return nil
}

func toSessionResponse(id string, session *domain.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:       id,
		State:    string(session.State()),
		Position: session.Position(),
		Score:    session.Score(),
		Total:    session.Len(),
	}
}
