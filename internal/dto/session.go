package dto

// StartSessionRequest asks for a new quiz session.
// @Description Request body for starting a session
type StartSessionRequest struct {
	// Count is the number of questions to draw. Zero, negative or oversized
	// values select the whole catalog.
	Count int `json:"count"`
}

// SessionResponse describes a session's progress in the API response
type SessionResponse struct {
	ID       string `json:"id"`
	State    string `json:"state"`
	Position int    `json:"position"`
	Score    int    `json:"score"`
	Total    int    `json:"total"`
}

// QuestionResponse presents the current question. The correct key is never
// part of this payload.
type QuestionResponse struct {
	Number  int               `json:"number"` // 1-based position in the slate
	Total   int               `json:"total"`
	Prompt  string            `json:"prompt"`
	Options map[string]string `json:"options"`
}

// SubmitAnswerRequest carries the quiz taker's chosen option key
type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

// AnswerOutcomeResponse is the per-question feedback after an answer is
// finalized.
type AnswerOutcomeResponse struct {
	Correct     bool   `json:"correct"`
	CorrectKey  string `json:"correct_key"`
	Explanation string `json:"explanation,omitempty"`
}

// MissedAnswerResponse is one entry of the end-of-quiz review
type MissedAnswerResponse struct {
	Number      int    `json:"number"`
	Prompt      string `json:"prompt"`
	GivenKey    string `json:"given_key"`
	GivenText   string `json:"given_text"`
	CorrectKey  string `json:"correct_key"`
	CorrectText string `json:"correct_text"`
	Explanation string `json:"explanation,omitempty"`
}

// ReportResponse summarizes a completed session
type ReportResponse struct {
	Score   int                    `json:"score"`
	Total   int                    `json:"total"`
	Percent float64                `json:"percent"`
	Grade   string                 `json:"grade"`
	Missed  []MissedAnswerResponse `json:"missed"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
