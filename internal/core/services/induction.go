package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driving"
	"github.com/kanca-labs/rapor-cli/internal/jsonextract"
	"github.com/kanca-labs/rapor-cli/internal/logger"
)

// Ensure InductionService implements the interface.
var _ driving.InductionService = (*InductionService)(nil)

const (
	// minAnalyzableText is the minimum extracted text length for
	// structure analysis. Shorter documents fail before any LLM call.
	minAnalyzableText = 500

	// classifyPrefixLen bounds the document text sent for classification.
	classifyPrefixLen = 3000

	// deepAnalysisLen bounds the combined text sent for deep analysis.
	deepAnalysisLen = 6000

	// maxFallbackQuestions caps the deterministic fallback question list.
	maxFallbackQuestions = 10
)

// fallbackBaseQuestions is the deterministic question bank used when the
// LLM reply is missing or malformed. The interview flow must never be
// left without questions once analysis succeeded.
var fallbackBaseQuestions = []string{
	"Kişi/aile hakkında temel bilgileri verebilir misiniz?",
	"Mevcut yaşam koşulları ve sosyal çevre nasıl?",
	"Karşılaştığınız temel problemler nelerdir?",
	"Hangi konularda desteğe ihtiyaç duyuyorsunuz?",
	"Daha önce hangi hizmetlerden yararlandınız?",
	"Kişisel güçlü yanlarınız ve kaynaklarınız nelerdir?",
	"Kısa vadeli hedefleriniz nelerdir?",
	"Bu süreçten beklentileriniz nelerdir?",
}

// fallbackCategoryQuestions maps detected categories to add-on questions.
var fallbackCategoryQuestions = map[string]string{
	domain.CategoryHealth:    "Sağlık durumunuz ve tedavi geçmişiniz hakkında bilgi verebilir misiniz?",
	domain.CategoryEducation: "Eğitim ve mesleki durumunuz nasıl?",
	domain.CategoryRisk:      "Güvenlik ve koruma ihtiyaçlarınız var mı?",
}

// InductionService derives interview question sets from sample documents
// through a two-stage pipeline: per-document classification, then one
// question-writing call over the aggregated categories and themes. The
// split keeps per-document LLM cost bounded and dedupes themes before the
// more expensive question call.
type InductionService struct {
	extractor driven.TextExtractor
	llm       driven.LLMService
	prompts   driven.PromptStore
}

// NewInductionService creates a new question induction engine.
// The prompt store is optional; embedded defaults are used when nil.
func NewInductionService(extractor driven.TextExtractor, llm driven.LLMService, prompts driven.PromptStore) *InductionService {
	return &InductionService{
		extractor: extractor,
		llm:       llm,
		prompts:   prompts,
	}
}

// AnalyzeStructure classifies the topical categories present in one
// sample document.
func (s *InductionService) AnalyzeStructure(ctx context.Context, path string) (*domain.DocumentAnalysis, error) {
	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}

	extraction, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}
	return s.analyzeText(ctx, path, extraction.Text)
}

// analyzeText classifies already-extracted document text.
func (s *InductionService) analyzeText(ctx context.Context, path, text string) (*domain.DocumentAnalysis, error) {
	if len(text) < minAnalyzableText {
		return nil, fmt.Errorf("analyze %s (%d chars): %w", path, len(text), domain.ErrInsufficientText)
	}

	prompt := fmt.Sprintf(loadPrompt(s.prompts, driven.PromptClassify),
		truncate(text, classifyPrefixLen))

	reply, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   1024,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("classify %s: %w", path, err)
	}

	var analysis domain.DocumentAnalysis
	if !jsonextract.Unmarshal(reply, &analysis) {
		return nil, fmt.Errorf("classify %s: %w", path, domain.ErrMalformedResponse)
	}
	analysis.TextLength = len(text)

	logger.Debug("Analyzed %s: %d categories, %d themes", path, len(analysis.Categories), len(analysis.KeyThemes))
	return &analysis, nil
}

// InduceQuestions analyzes every path, aggregates the detected categories
// and themes, and asks the LLM for an ordered question list. A missing or
// malformed reply triggers the deterministic fallback bank; the result is
// never empty once at least one document analyzed successfully. The
// extracted source texts are returned alongside, capped, so the caller
// can retain them as the new report type's knowledge base.
func (s *InductionService) InduceQuestions(ctx context.Context, paths []string, nameHint string) (*domain.InducedQuestions, error) {
	logger.Section("Question Induction")

	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}

	categories := newOrderedSet()
	themes := newOrderedSet()
	var sources []string
	analyzed := 0

	for _, path := range paths {
		extraction, err := s.extractor.Extract(ctx, path)
		if err != nil {
			logger.Warn("Skipping %s: %v", path, err)
			continue
		}
		analysis, err := s.analyzeText(ctx, path, extraction.Text)
		if err != nil {
			logger.Warn("Skipping %s: %v", path, err)
			continue
		}
		analyzed++
		sources = append(sources, extraction.Text)
		categories.addAll(analysis.Categories)
		themes.addAll(analysis.KeyThemes)
	}

	if analyzed == 0 {
		return nil, domain.ErrNoAnalyzableDocuments
	}
	logger.Debug("Aggregated %d documents: %d categories, %d themes", analyzed, categories.len(), themes.len())

	hintLine := ""
	if nameHint != "" {
		hintLine = "- Önerilen rapor türü: " + nameHint
	}

	prompt := fmt.Sprintf(loadPrompt(s.prompts, driven.PromptInduce),
		analyzed,
		strings.Join(themes.values(), ", "),
		strings.Join(categories.values(), ", "),
		hintLine)

	reply, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   2048,
		Temperature: 0.5,
	})

	var induced domain.InducedQuestions
	if err != nil || !jsonextract.Unmarshal(reply, &induced) || len(induced.Questions) == 0 {
		logger.Warn("Induction reply unusable (err=%v), using fallback question bank", err)
		induced = fallbackQuestions(categories.values())
	}
	induced.Categories = categories.values()
	induced.Themes = themes.values()
	induced.SourceText = truncate(strings.Join(sources, "\n\n"), domain.MaxKnowledgeBaseLen)
	if induced.Rationale.QuestionCount == 0 {
		induced.Rationale.QuestionCount = len(induced.Questions)
	}

	logger.Info("Induced %d questions (fallback=%t)", len(induced.Questions), induced.Fallback)
	return &induced, nil
}

// OptimizeQuestions merges an existing question list with a freshly
// induced one. Unlike induction there is no fallback: a malformed reply
// is surfaced so the existing list stays authoritative.
func (s *InductionService) OptimizeQuestions(ctx context.Context, existing []string, paths []string) (*domain.OptimizedQuestions, error) {
	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}

	induced, err := s.InduceQuestions(ctx, paths, "")
	if err != nil {
		return nil, fmt.Errorf("induce for optimization: %w", err)
	}

	prompt := fmt.Sprintf(loadPrompt(s.prompts, driven.PromptOptimize),
		numberedList(existing),
		numberedList(induced.Questions))

	reply, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   2048,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("optimize questions: %w", err)
	}

	var optimized domain.OptimizedQuestions
	if !jsonextract.Unmarshal(reply, &optimized) || len(optimized.Questions) == 0 {
		return nil, fmt.Errorf("optimize questions: %w", domain.ErrMalformedResponse)
	}
	return &optimized, nil
}

// DeepAnalyze performs the five-axis structural assessment over a set of
// sample reports.
func (s *InductionService) DeepAnalyze(ctx context.Context, paths []string, reportTypeName string) (*domain.DeepAnalysis, error) {
	logger.Section("Deep Analysis")

	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}

	var texts []string
	for _, path := range paths {
		extraction, err := s.extractor.Extract(ctx, path)
		if err != nil {
			logger.Warn("Skipping %s: %v", path, err)
			continue
		}
		texts = append(texts, extraction.Text)
	}
	if len(texts) == 0 {
		return nil, domain.ErrNoAnalyzableDocuments
	}

	combined := truncate(strings.Join(texts, "\n\n--- YENİ RAPOR ---\n\n"), deepAnalysisLen)
	prompt := fmt.Sprintf(loadPrompt(s.prompts, driven.PromptDeepAnalysis),
		len(texts), reportTypeName, combined)

	reply, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   4096,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("deep analysis: %w", err)
	}

	var analysis domain.DeepAnalysis
	if !jsonextract.Unmarshal(reply, &analysis) {
		return nil, fmt.Errorf("deep analysis: %w", domain.ErrMalformedResponse)
	}
	return &analysis, nil
}

// fallbackQuestions builds the deterministic default question set: the
// fixed base list plus up to 3 category add-ons, capped at 10 questions.
func fallbackQuestions(categories []string) domain.InducedQuestions {
	questions := make([]string, len(fallbackBaseQuestions), maxFallbackQuestions)
	copy(questions, fallbackBaseQuestions)

	for _, category := range categories {
		if q, ok := fallbackCategoryQuestions[category]; ok && len(questions) < maxFallbackQuestions {
			questions = append(questions, q)
		}
	}

	return domain.InducedQuestions{
		Questions:            questions,
		ReportTypeSuggestion: "Genel Sosyal Hizmet Değerlendirmesi",
		Rationale: domain.QuestionRationale{
			QuestionCount:     len(questions),
			FocusAreas:        categories,
			EstimatedDuration: "15-20 dakika",
			Complexity:        "orta",
		},
		Fallback: true,
	}
}

// numberedList renders questions as "1. ..." lines for prompt embedding.
func numberedList(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, item)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// orderedSet is a string set that preserves first-seen order, so prompt
// content stays deterministic across runs.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) addAll(values []string) {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := s.seen[v]; ok {
			continue
		}
		s.seen[v] = struct{}{}
		s.items = append(s.items, v)
	}
}

func (s *orderedSet) values() []string { return s.items }
func (s *orderedSet) len() int         { return len(s.items) }
