package handler

import (
	"quizline/internal/domain"
	"quizline/internal/dto"
	"quizline/internal/service"
	"quizline/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles quiz-session HTTP requests. Errors are returned as
// is and translated by the central error middleware.
type SessionHandler struct {
	service service.SessionService
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{
		service: service,
	}
}

// RegisterRoutes mounts the session endpoints on the given router group.
func (h *SessionHandler) RegisterRoutes(router fiber.Router) {
	sessions := router.Group("/sessions")
	sessions.Post("/", h.StartSession)
	sessions.Get("/:id/question", h.GetQuestion)
	sessions.Post("/:id/answer", h.SubmitAnswer)
	sessions.Post("/:id/advance", h.Advance)
	sessions.Get("/:id/report", h.GetReport)
	sessions.Post("/:id/restart", h.Restart)
	sessions.Delete("/:id", h.EndSession)
}

// StartSession handles POST /sessions. The body is optional; without one the
// session covers the whole catalog.
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("request body must be JSON with an optional 'count' field")
		}
	}

	resp, err := h.service.StartSession(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// sessionID extracts and validates the :id path parameter.
func sessionID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if err := validation.SessionID(id); err != nil {
		return "", err
	}
	return id, nil
}

// GetQuestion handles GET /sessions/:id/question
func (h *SessionHandler) GetQuestion(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetCurrentQuestion(id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswer handles POST /sessions/:id/answer
func (h *SessionHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON with an 'answer' field")
	}

	id, err := sessionID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.SubmitAnswer(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Advance handles POST /sessions/:id/advance
func (h *SessionHandler) Advance(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.Advance(id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetReport handles GET /sessions/:id/report
func (h *SessionHandler) GetReport(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetReport(id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Restart handles POST /sessions/:id/restart
func (h *SessionHandler) Restart(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.RestartSession(id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EndSession handles DELETE /sessions/:id
func (h *SessionHandler) EndSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	if err := h.service.EndSession(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
