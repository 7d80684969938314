package driven

import (
	"context"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
)

// ReportTypeStore persists the report-type catalog.
// Backed by a JSON file that is read at startup and rewritten in full
// after every mutation.
type ReportTypeStore interface {
	// Save stores or replaces a report type.
	Save(ctx context.Context, rt domain.ReportType) error

	// Get retrieves a report type by ID.
	// Returns domain.ErrUnknownReportType when absent.
	Get(ctx context.Context, id string) (*domain.ReportType, error)

	// List returns all report types, ordered by ID.
	List(ctx context.Context) ([]domain.ReportType, error)

	// Delete removes a report type by ID.
	// Returns domain.ErrUnknownReportType when absent.
	Delete(ctx context.Context, id string) error
}

// SessionStore holds interview sessions keyed by session ID. Sessions are
// in-memory state with the lifetime of the process; implementations must
// be safe for concurrent use.
type SessionStore interface {
	// Get retrieves a session by ID.
	// Returns domain.ErrSessionNotFound when absent.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Put stores or replaces a session.
	Put(ctx context.Context, s *domain.Session) error

	// Delete removes a session. The boolean reports whether a session
	// existed under that ID.
	Delete(ctx context.Context, id string) (bool, error)
}

// FeedbackStore persists the append-only feedback log and the derived
// insight snapshots.
type FeedbackStore interface {
	// Append adds a feedback record and returns its assigned ID.
	Append(ctx context.Context, fb domain.Feedback) (int, error)

	// Recent returns up to n of the most recent feedback records,
	// oldest first.
	Recent(ctx context.Context, n int) ([]domain.Feedback, error)

	// Count returns the total number of feedback records.
	Count(ctx context.Context) (int, error)

	// CountByKind returns the number of records with the given kind.
	CountByKind(ctx context.Context, kind domain.FeedbackKind) (int, error)

	// SaveInsight appends an insight snapshot. Implementations cap the
	// insight log at the 50 most recent snapshots.
	SaveInsight(ctx context.Context, in domain.Insight) error

	// RecentInsights returns up to n of the most recent insight
	// snapshots, oldest first.
	RecentInsights(ctx context.Context, n int) ([]domain.Insight, error)
}

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value. The value is persisted
	// immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
