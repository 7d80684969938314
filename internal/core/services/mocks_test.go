package services

import (
	"context"
	"sort"
	"strings"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
)

// --- Mock implementations shared by the service tests ---

// mockLLM implements driven.LLMService. Replies are consumed in order;
// the last one repeats once the queue is exhausted. Prompts are recorded
// for assertions on prompt assembly.
type mockLLM struct {
	replies []string
	err     error
	prompts []string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	if len(m.replies) == 0 {
		return "", nil
	}
	reply := m.replies[0]
	if len(m.replies) > 1 {
		m.replies = m.replies[1:]
	}
	return reply, nil
}

func (m *mockLLM) ModelName() string             { return "mock-llm" }
func (m *mockLLM) Ping(_ context.Context) error  { return m.err }
func (m *mockLLM) Close() error                  { return nil }
func (m *mockLLM) lastPrompt() string {
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// mockEmbedding implements driven.EmbeddingService with a fixed vector.
type mockEmbedding struct {
	embedding []float32
	err       error
	calls     int
}

func (m *mockEmbedding) Embed(_ context.Context, _ string) ([]float32, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.embedding, nil
}

func (m *mockEmbedding) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, 0, len(texts))
	for range texts {
		v, err := m.Embed(ctx, "")
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (m *mockEmbedding) Dimensions() int             { return len(m.embedding) }
func (m *mockEmbedding) ModelName() string           { return "mock-embed" }
func (m *mockEmbedding) Ping(_ context.Context) error { return m.err }
func (m *mockEmbedding) Close() error                { return nil }

// mockVectorStore implements driven.VectorStore in memory. Search returns
// stored chunks in insertion order with increasing distance.
type mockVectorStore struct {
	chunks    map[string]domain.Chunk
	order     []string
	upsertErr error
	searchErr error
}

func newMockVectorStore() *mockVectorStore {
	return &mockVectorStore{chunks: make(map[string]domain.Chunk)}
}

func (m *mockVectorStore) Upsert(_ context.Context, chunk domain.Chunk) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if _, ok := m.chunks[chunk.ID]; !ok {
		m.order = append(m.order, chunk.ID)
	}
	m.chunks[chunk.ID] = chunk
	return nil
}

func (m *mockVectorStore) Search(_ context.Context, _ []float32, k int) ([]domain.SearchHit, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	hits := []domain.SearchHit{}
	for i, id := range m.order {
		if len(hits) == k {
			break
		}
		chunk := m.chunks[id]
		hits = append(hits, domain.SearchHit{
			ID:       chunk.ID,
			Text:     chunk.Text,
			Meta:     chunk.Meta,
			Distance: float64(i) * 0.1,
		})
	}
	return hits, nil
}

func (m *mockVectorStore) Delete(_ context.Context, id string) error {
	if _, ok := m.chunks[id]; ok {
		delete(m.chunks, id)
		for i, got := range m.order {
			if got == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
	return nil
}

func (m *mockVectorStore) Clear(_ context.Context) error {
	m.chunks = make(map[string]domain.Chunk)
	m.order = nil
	return nil
}

func (m *mockVectorStore) Count(_ context.Context) (int, error) { return len(m.chunks), nil }
func (m *mockVectorStore) CollectionName() string               { return "test_collection" }
func (m *mockVectorStore) Path() string                         { return "/tmp/test.db" }
func (m *mockVectorStore) Close() error                         { return nil }

// mockExtractor implements driven.TextExtractor over a path→text map.
type mockExtractor struct {
	texts map[string]string
	errs  map[string]error
}

func (m *mockExtractor) Extract(_ context.Context, path string) (*driven.Extraction, error) {
	if err, ok := m.errs[path]; ok {
		return nil, err
	}
	text, ok := m.texts[path]
	if !ok {
		return nil, domain.ErrUnsupportedFormat
	}
	return &driven.Extraction{Text: text}, nil
}

func (m *mockExtractor) Supports(ext string) bool {
	return strings.EqualFold(ext, ".txt") || strings.EqualFold(ext, ".pdf")
}

func (m *mockExtractor) Extensions() []string { return []string{".pdf", ".txt"} }

// mockReportTypeStore implements driven.ReportTypeStore in memory.
type mockReportTypeStore struct {
	types   map[string]domain.ReportType
	saveErr error
}

func newMockReportTypeStore() *mockReportTypeStore {
	return &mockReportTypeStore{types: make(map[string]domain.ReportType)}
}

func (m *mockReportTypeStore) Save(_ context.Context, rt domain.ReportType) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.types[rt.ID] = rt
	return nil
}

func (m *mockReportTypeStore) Get(_ context.Context, id string) (*domain.ReportType, error) {
	rt, ok := m.types[id]
	if !ok {
		return nil, domain.ErrUnknownReportType
	}
	return &rt, nil
}

func (m *mockReportTypeStore) List(_ context.Context) ([]domain.ReportType, error) {
	ids := make([]string, 0, len(m.types))
	for id := range m.types {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]domain.ReportType, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.types[id])
	}
	return out, nil
}

func (m *mockReportTypeStore) Delete(_ context.Context, id string) error {
	if _, ok := m.types[id]; !ok {
		return domain.ErrUnknownReportType
	}
	delete(m.types, id)
	return nil
}

// mockSessionStore implements driven.SessionStore in memory.
type mockSessionStore struct {
	sessions map[string]*domain.Session
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string]*domain.Session)}
}

func (m *mockSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (m *mockSessionStore) Put(_ context.Context, s *domain.Session) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *mockSessionStore) Delete(_ context.Context, id string) (bool, error) {
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	return ok, nil
}

// mockFeedbackStore implements driven.FeedbackStore in memory.
type mockFeedbackStore struct {
	feedbacks []domain.Feedback
	insights  []domain.Insight
}

func (m *mockFeedbackStore) Append(_ context.Context, fb domain.Feedback) (int, error) {
	fb.ID = len(m.feedbacks) + 1
	m.feedbacks = append(m.feedbacks, fb)
	return fb.ID, nil
}

func (m *mockFeedbackStore) Recent(_ context.Context, n int) ([]domain.Feedback, error) {
	if n > len(m.feedbacks) {
		n = len(m.feedbacks)
	}
	return append([]domain.Feedback(nil), m.feedbacks[len(m.feedbacks)-n:]...), nil
}

func (m *mockFeedbackStore) Count(_ context.Context) (int, error) {
	return len(m.feedbacks), nil
}

func (m *mockFeedbackStore) CountByKind(_ context.Context, kind domain.FeedbackKind) (int, error) {
	count := 0
	for _, fb := range m.feedbacks {
		if fb.Kind == kind {
			count++
		}
	}
	return count, nil
}

func (m *mockFeedbackStore) SaveInsight(_ context.Context, in domain.Insight) error {
	m.insights = append(m.insights, in)
	return nil
}

func (m *mockFeedbackStore) RecentInsights(_ context.Context, n int) ([]domain.Insight, error) {
	if n > len(m.insights) {
		n = len(m.insights)
	}
	return append([]domain.Insight(nil), m.insights[len(m.insights)-n:]...), nil
}
