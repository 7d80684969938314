package domain

import "time"

// MaxKnowledgeBaseLen bounds the reference text retained on a report type.
const MaxKnowledgeBaseLen = 10000

// ReportType is a named, reusable interview template: an ordered question
// list plus optional reference text from the documents it was induced from.
type ReportType struct {
	// ID is the stable identifier (e.g. "sosyal_inceleme").
	ID string `json:"id"`

	// Name is the display name of the report type.
	Name string `json:"name"`

	// Description is a one-line summary shown when an interview starts.
	Description string `json:"description"`

	// Questions is the ordered interview sequence. Order is meaningful:
	// questions run from demographic/general to specific.
	Questions []string `json:"questions"`

	// KnowledgeBase is concatenated source text from the documents used
	// for induction, truncated to MaxKnowledgeBaseLen. Optional.
	KnowledgeBase string `json:"knowledge_base,omitempty"`

	// CreatedAt is when the report type was created.
	CreatedAt time.Time `json:"created_at"`
}

// QuestionCount returns the number of interview questions.
func (rt ReportType) QuestionCount() int {
	return len(rt.Questions)
}

// TruncateKnowledgeBase caps the knowledge base at MaxKnowledgeBaseLen.
func (rt *ReportType) TruncateKnowledgeBase() {
	if len(rt.KnowledgeBase) > MaxKnowledgeBaseLen {
		rt.KnowledgeBase = rt.KnowledgeBase[:MaxKnowledgeBaseLen]
	}
}
