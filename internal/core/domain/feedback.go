package domain

import "time"

// FeedbackKind classifies user feedback on a generated report.
type FeedbackKind string

// Feedback kinds.
const (
	FeedbackPositive FeedbackKind = "positive"
	FeedbackNeutral  FeedbackKind = "neutral"
	FeedbackNegative FeedbackKind = "negative"
)

// Valid reports whether k is a known feedback kind.
func (k FeedbackKind) Valid() bool {
	switch k {
	case FeedbackPositive, FeedbackNeutral, FeedbackNegative:
		return true
	}
	return false
}

// Feedback is one append-only record of user feedback on a generated
// report, together with the revision the user made.
type Feedback struct {
	ID           int          `json:"id"`
	Timestamp    time.Time    `json:"timestamp"`
	ReportTypeID string       `json:"report_type"`
	Original     string       `json:"original_report"`
	Revised      string       `json:"revised_report"`
	Kind         FeedbackKind `json:"feedback_type"`
	Comments     string       `json:"user_comments"`

	// Improvements are the improvement categories detected between the
	// original and revised report.
	Improvements []string `json:"improvements_detected"`
}

// Insight is a periodic LLM summarisation of recent feedback records,
// injected into future synthesis prompts as learning context.
type Insight struct {
	Timestamp            time.Time         `json:"timestamp"`
	CommonImprovements   []string          `json:"common_improvements"`
	ReportTypeInsights   map[string]string `json:"report_type_insights"`
	LanguageObservations []string          `json:"language_observations"`
	FutureRecommendations []string         `json:"future_recommendations"`
	FeedbackCount        int               `json:"feedback_count"`
}

// FeedbackStats aggregates the feedback log.
type FeedbackStats struct {
	TotalFeedbacks    int        `json:"total_feedbacks"`
	PositiveFeedbacks int        `json:"positive_feedbacks"`
	ImprovementRate   float64    `json:"improvement_rate"`
	Latest            []Feedback `json:"latest_feedbacks"`
}
