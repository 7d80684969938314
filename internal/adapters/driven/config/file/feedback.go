package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
)

// maxStoredInsights caps the insight log at the most recent snapshots.
const maxStoredInsights = 50

// Ensure FeedbackStore implements the interface.
var _ driven.FeedbackStore = (*FeedbackStore)(nil)

// FeedbackStore is a JSON-file implementation of driven.FeedbackStore.
// The feedback log and the derived insights live in separate files under
// the learning directory; both are rewritten in full on change.
type FeedbackStore struct {
	mu           sync.Mutex
	feedbackPath string
	insightsPath string
	feedbacks    []domain.Feedback
	insights     []domain.Insight
}

// NewFeedbackStore creates a feedback store under configDir.
// If configDir is empty, defaults to ~/.rapor.
func NewFeedbackStore(configDir string) (*FeedbackStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".rapor")
	}

	dir := filepath.Join(configDir, "learning")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	s := &FeedbackStore{
		feedbackPath: filepath.Join(dir, "feedback.json"),
		insightsPath: filepath.Join(dir, "insights.json"),
	}

	if err := readJSONFile(s.feedbackPath, &s.feedbacks); err != nil {
		return nil, fmt.Errorf("loading feedback log: %w", err)
	}
	if err := readJSONFile(s.insightsPath, &s.insights); err != nil {
		return nil, fmt.Errorf("loading insights: %w", err)
	}

	return s, nil
}

// Append adds a feedback record and returns its assigned ID.
func (s *FeedbackStore) Append(_ context.Context, fb domain.Feedback) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fb.ID = len(s.feedbacks) + 1
	s.feedbacks = append(s.feedbacks, fb)
	if err := writeJSONFile(s.feedbackPath, s.feedbacks); err != nil {
		s.feedbacks = s.feedbacks[:len(s.feedbacks)-1]
		return 0, err
	}
	return fb.ID, nil
}

// Recent returns up to n of the most recent feedback records, oldest first.
func (s *FeedbackStore) Recent(_ context.Context, n int) ([]domain.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := len(s.feedbacks) - n
	if n <= 0 || start < 0 {
		start = 0
	}
	return append([]domain.Feedback(nil), s.feedbacks[start:]...), nil
}

// Count returns the total number of feedback records.
func (s *FeedbackStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.feedbacks), nil
}

// CountByKind returns the number of records with the given kind.
func (s *FeedbackStore) CountByKind(_ context.Context, kind domain.FeedbackKind) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, fb := range s.feedbacks {
		if fb.Kind == kind {
			count++
		}
	}
	return count, nil
}

// SaveInsight appends an insight snapshot, keeping only the most recent
// maxStoredInsights entries.
func (s *FeedbackStore) SaveInsight(_ context.Context, in domain.Insight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.insights = append(s.insights, in)
	if len(s.insights) > maxStoredInsights {
		s.insights = s.insights[len(s.insights)-maxStoredInsights:]
	}
	return writeJSONFile(s.insightsPath, s.insights)
}

// RecentInsights returns up to n of the most recent insight snapshots,
// oldest first.
func (s *FeedbackStore) RecentInsights(_ context.Context, n int) ([]domain.Insight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := len(s.insights) - n
	if n <= 0 || start < 0 {
		start = 0
	}
	return append([]domain.Insight(nil), s.insights[start:]...), nil
}

// readJSONFile unmarshals path into v; a missing file leaves v untouched.
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// writeJSONFile rewrites path with the indented JSON encoding of v.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
