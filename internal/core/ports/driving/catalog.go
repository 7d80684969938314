package driving

import (
	"context"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
)

// CatalogService manages the report-type catalog.
type CatalogService interface {
	// Create validates and stores a new report type. The knowledge base
	// is truncated to its configured cap.
	Create(ctx context.Context, rt domain.ReportType) error

	// Get retrieves a report type by ID.
	Get(ctx context.Context, id string) (*domain.ReportType, error)

	// List returns all report types.
	List(ctx context.Context) ([]domain.ReportType, error)

	// Delete removes a report type. Running sessions are unaffected
	// because they hold question snapshots.
	Delete(ctx context.Context, id string) error
}

// LearningService records user feedback on generated reports and surfaces
// aggregated guidance for future synthesis prompts.
type LearningService interface {
	// SaveFeedback appends a feedback record, detects improvements
	// between the original and revised report, and periodically triggers
	// insight aggregation. Returns the assigned feedback ID.
	SaveFeedback(ctx context.Context, fb domain.Feedback) (int, error)

	// LearningContext renders the most recent insights as a text block
	// for injection into synthesis prompts. Empty when no insights exist.
	LearningContext(ctx context.Context, reportTypeID string) (string, error)

	// Statistics aggregates the feedback log.
	Statistics(ctx context.Context) (*domain.FeedbackStats, error)
}
