package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driving"
)

// setupTestServices installs mock services and returns a cleanup that
// restores the previous wiring.
func setupTestServices() func() {
	prev := Services{
		Indexer:   indexerService,
		Search:    searchService,
		Catalog:   catalogService,
		Induction: inductionService,
		Interview: interviewService,
		Learning:  learningService,
		Config:    configStore,
	}

	SetServices(Services{
		Indexer:   &mockIndexer{},
		Search:    &mockSearch{},
		Catalog:   &mockCatalog{types: map[string]domain.ReportType{}},
		Induction: &mockInduction{},
		Learning:  &mockLearning{},
	})

	return func() { SetServices(prev) }
}

type mockIndexer struct {
	clearCalled bool
}

func (m *mockIndexer) IndexFile(_ context.Context, _ string, _ driving.IndexOptions) (int, error) {
	return 3, nil
}

func (m *mockIndexer) IndexDirectory(_ context.Context, _ string, _ driving.IndexOptions) (*domain.IndexReport, error) {
	return &domain.IndexReport{TotalFiles: 2, ProcessedFiles: 2, TotalChunks: 5}, nil
}

func (m *mockIndexer) Stats(_ context.Context) (domain.IndexStats, error) {
	return domain.IndexStats{DocumentCount: 5, CollectionName: "report_chunks", StoragePath: "/tmp/vectors.db"}, nil
}

func (m *mockIndexer) Delete(_ context.Context, _ string) error { return nil }

func (m *mockIndexer) Clear(_ context.Context) error {
	m.clearCalled = true
	return nil
}

type mockSearch struct{}

func (m *mockSearch) Search(_ context.Context, _ string, k int) ([]domain.SearchHit, error) {
	hits := []domain.SearchHit{
		{ID: "a", Text: "ilk örnek metin", Meta: domain.ChunkMeta{SourceFile: "ornek1.pdf"}, Distance: 0.1},
		{ID: "b", Text: "ikinci örnek metin", Meta: domain.ChunkMeta{SourceFile: "ornek2.pdf"}, Distance: 0.2},
	}
	if k < len(hits) {
		hits = hits[:k]
	}
	return hits, nil
}

type mockCatalog struct {
	types map[string]domain.ReportType
}

func (m *mockCatalog) Create(_ context.Context, rt domain.ReportType) error {
	m.types[rt.ID] = rt
	return nil
}

func (m *mockCatalog) Get(_ context.Context, id string) (*domain.ReportType, error) {
	rt, ok := m.types[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, domain.ErrUnknownReportType)
	}
	return &rt, nil
}

func (m *mockCatalog) List(_ context.Context) ([]domain.ReportType, error) {
	out := make([]domain.ReportType, 0, len(m.types))
	for _, rt := range m.types {
		out = append(out, rt)
	}
	return out, nil
}

func (m *mockCatalog) Delete(_ context.Context, id string) error {
	if _, ok := m.types[id]; !ok {
		return fmt.Errorf("%q: %w", id, domain.ErrUnknownReportType)
	}
	delete(m.types, id)
	return nil
}

type mockInduction struct{}

func (m *mockInduction) AnalyzeStructure(_ context.Context, _ string) (*domain.DocumentAnalysis, error) {
	return &domain.DocumentAnalysis{
		Categories:           []string{domain.CategoryDemographics},
		ReportTypeSuggestion: "Sosyal İnceleme Raporu",
		Complexity:           "orta",
		TextLength:           1200,
	}, nil
}

func (m *mockInduction) InduceQuestions(_ context.Context, _ []string, _ string) (*domain.InducedQuestions, error) {
	return &domain.InducedQuestions{
		Questions:            []string{"Soru 1", "Soru 2"},
		ReportTypeSuggestion: "Önerilen Tür",
		SourceText:           "Örnek belgelerden çıkarılan metin.",
	}, nil
}

func (m *mockInduction) OptimizeQuestions(_ context.Context, existing []string, _ []string) (*domain.OptimizedQuestions, error) {
	return &domain.OptimizedQuestions{
		Questions:   append(existing, "Yeni Soru"),
		ChangesMade: []string{"Bir soru eklendi"},
	}, nil
}

func (m *mockInduction) DeepAnalyze(_ context.Context, _ []string, _ string) (*domain.DeepAnalysis, error) {
	var da domain.DeepAnalysis
	da.ReportStructure.Sections = []string{"Özet", "Değerlendirme"}
	return &da, nil
}

type mockLearning struct{}

func (m *mockLearning) SaveFeedback(_ context.Context, _ domain.Feedback) (int, error) {
	return 1, nil
}

func (m *mockLearning) LearningContext(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (m *mockLearning) Statistics(_ context.Context) (*domain.FeedbackStats, error) {
	return &domain.FeedbackStats{
		TotalFeedbacks:    4,
		PositiveFeedbacks: 2,
		ImprovementRate:   50,
		Latest:            []domain.Feedback{{ID: 4, Timestamp: time.Now(), Kind: domain.FeedbackPositive}},
	}, nil
}
