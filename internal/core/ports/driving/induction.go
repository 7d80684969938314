package driving

import (
	"context"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
)

// InductionService derives interview question sets from sample documents.
type InductionService interface {
	// AnalyzeStructure classifies the topical categories present in one
	// sample document. Documents shorter than the minimum text length
	// fail with domain.ErrInsufficientText before any LLM call.
	AnalyzeStructure(ctx context.Context, path string) (*domain.DocumentAnalysis, error)

	// InduceQuestions analyzes every path and synthesizes an ordered
	// question list from the union of detected categories and themes.
	// When the LLM reply is missing or malformed the deterministic
	// fallback question bank is used instead, so a successful return
	// never carries an empty question list. nameHint optionally suggests
	// a report type name.
	InduceQuestions(ctx context.Context, paths []string, nameHint string) (*domain.InducedQuestions, error)

	// OptimizeQuestions re-runs induction over the documents and asks
	// the LLM to merge, dedupe and reorder the existing list with the
	// newly induced one.
	OptimizeQuestions(ctx context.Context, existing []string, paths []string) (*domain.OptimizedQuestions, error)

	// DeepAnalyze performs the five-axis structural assessment over a
	// set of sample reports for the named report type.
	DeepAnalyze(ctx context.Context, paths []string, reportTypeName string) (*domain.DeepAnalysis, error)
}
