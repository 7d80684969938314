package driving

import (
	"context"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
)

// StartResult is the opening turn of an interview.
type StartResult struct {
	// Message is the framing preamble plus the first question.
	Message string `json:"message"`

	QuestionNumber int     `json:"question_number"`
	TotalQuestions int     `json:"total_questions"`
	Progress       float64 `json:"progress"`
}

// AnswerResult is the outcome of recording one answer.
type AnswerResult struct {
	// Completed is true when the recorded answer was the last one.
	Completed bool `json:"completed"`

	// NextQuestion is the next question text; empty when Completed.
	NextQuestion string `json:"next_question,omitempty"`

	QuestionNumber int     `json:"question_number,omitempty"`
	TotalQuestions int     `json:"total_questions"`
	Progress       float64 `json:"progress"`
}

// SessionStatus is a read-only view of a session.
type SessionStatus struct {
	Exists          bool    `json:"exists"`
	ReportTypeID    string  `json:"report_type,omitempty"`
	ReportName      string  `json:"report_name,omitempty"`
	CurrentQuestion int     `json:"current_question,omitempty"`
	TotalQuestions  int     `json:"total_questions,omitempty"`
	Progress        float64 `json:"progress,omitempty"`
	Completed       bool    `json:"completed,omitempty"`
	AnswersCount    int     `json:"answers_count,omitempty"`
}

// InterviewService drives the conversational report flow: a per-session
// state machine that asks an ordered question list one question at a time
// and synthesizes a narrative report once every question is answered.
type InterviewService interface {
	// Start creates a session for the given report type. Fails with
	// domain.ErrUnknownReportType without creating a session when the
	// report type does not exist. The question list is snapshotted into
	// the session, decoupling it from later catalog edits.
	Start(ctx context.Context, reportTypeID, sessionID string) (*StartResult, error)

	// ProcessAnswer records the answer to the current question and
	// advances to the next one. Exactly one question advances per call.
	// Fails with domain.ErrSessionNotFound or domain.ErrSessionCompleted
	// without mutating the session.
	ProcessAnswer(ctx context.Context, sessionID, answer string) (*AnswerResult, error)

	// ReviseAnswer replaces the text of an already-given answer. It does
	// not move the question cursor or change completion state.
	ReviseAnswer(ctx context.Context, sessionID string, index int, answer string) error

	// GenerateReport synthesizes the final narrative report from a
	// completed session. Fails with domain.ErrSessionNotCompleted while
	// questions remain. Retrieval context and learning context are
	// gathered internally when the corresponding services are available.
	GenerateReport(ctx context.Context, sessionID string) (*domain.GeneratedReport, error)

	// Status returns a read-only session view. A missing session yields
	// Exists=false, not an error.
	Status(ctx context.Context, sessionID string) (*SessionStatus, error)

	// Reset deletes the session. The boolean reports whether a session
	// existed.
	Reset(ctx context.Context, sessionID string) (bool, error)
}
