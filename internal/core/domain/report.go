package domain

import (
	"strings"
	"time"
)

// ReportMetadata describes a generated report.
type ReportMetadata struct {
	ReportTypeID      string    `json:"report_type"`
	ReportName        string    `json:"report_name"`
	GeneratedAt       time.Time `json:"generated_at"`
	SessionDuration   string    `json:"session_duration"`
	QuestionsAnswered int       `json:"questions_answered"`
	WordCount         int       `json:"word_count"`
	CharacterCount    int       `json:"character_count"`
}

// GeneratedReport is the final narrative report synthesized from a
// completed interview session.
type GeneratedReport struct {
	Content  string         `json:"content"`
	Metadata ReportMetadata `json:"metadata"`
}

// NewReportMetadata fills in the derived counts for report content.
func NewReportMetadata(s *Session, content string) ReportMetadata {
	return ReportMetadata{
		ReportTypeID:      s.ReportTypeID,
		ReportName:        s.ReportName,
		GeneratedAt:       time.Now(),
		SessionDuration:   s.Duration().String(),
		QuestionsAnswered: len(s.Answers),
		WordCount:         len(strings.Fields(content)),
		CharacterCount:    len(content),
	}
}
