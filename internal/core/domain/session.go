package domain

import "time"

// Answer is one recorded interview turn.
type Answer struct {
	// Question is the question text as it was asked.
	Question string `json:"question"`

	// Text is the trimmed answer text. May be empty; answer-quality
	// nudging is a UI concern, not enforced here.
	Text string `json:"text"`

	// AnsweredAt is when the answer was recorded.
	AnsweredAt time.Time `json:"answered_at"`
}

// Session is the per-interview state machine. It walks an ordered question
// list one question at a time and accumulates answers.
//
// Invariants:
//   - 0 <= Current <= len(Questions)
//   - len(Answers) == Current
//   - Completed iff Current == len(Questions)
type Session struct {
	// ID is the caller-supplied opaque session token.
	ID string `json:"id"`

	// ReportTypeID references the report type the session was started from.
	ReportTypeID string `json:"report_type_id"`

	// ReportName and ReportDescription are snapshotted display strings.
	ReportName        string `json:"report_name"`
	ReportDescription string `json:"report_description"`

	// KnowledgeBase is the report type's reference text, snapshotted so
	// the synthesis prompt can embed it. Often empty.
	KnowledgeBase string `json:"knowledge_base,omitempty"`

	// Questions is the question list snapshotted at session start.
	// Later edits to the report type do not affect a running session.
	Questions []string `json:"questions"`

	// Current is the index of the next unanswered question.
	Current int `json:"current"`

	// Answers holds one entry per answered question, in interview order.
	Answers []Answer `json:"answers"`

	// Completed is true once every question has been answered.
	Completed bool `json:"completed"`

	// StartedAt is when the session was created.
	StartedAt time.Time `json:"started_at"`
}

// TotalQuestions returns the length of the snapshotted question list.
func (s *Session) TotalQuestions() int {
	return len(s.Questions)
}

// Progress returns interview completion as a percentage (0-100).
func (s *Session) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.Current) / float64(len(s.Questions)) * 100
}

// CurrentQuestion returns the next unanswered question, or "" when the
// session is completed.
func (s *Session) CurrentQuestion() string {
	if s.Current >= len(s.Questions) {
		return ""
	}
	return s.Questions[s.Current]
}

// Duration returns the elapsed time since the session started, truncated
// to whole seconds.
func (s *Session) Duration() time.Duration {
	return time.Since(s.StartedAt).Truncate(time.Second)
}
