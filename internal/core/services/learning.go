package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driving"
	"github.com/kanca-labs/rapor-cli/internal/jsonextract"
	"github.com/kanca-labs/rapor-cli/internal/logger"
)

// Ensure LearningService implements the interface.
var _ driving.LearningService = (*LearningService)(nil)

const (
	// improvementDiffLen bounds each report side of the improvement
	// detection prompt.
	improvementDiffLen = 1000

	// maxImprovements caps the detected improvement categories per record.
	maxImprovements = 5

	// insightTriggerEvery triggers insight aggregation on every n-th
	// feedback record.
	insightTriggerEvery = 5

	// insightWindow is how many recent records feed one aggregation.
	insightWindow = 10

	// contextInsights is how many recent insights render into the
	// learning context block.
	contextInsights = 3

	// statsLatest is how many recent records Statistics returns.
	statsLatest = 5
)

// LearningService records feedback on generated reports and periodically
// distills it into insights that steer future synthesis prompts.
//
// All LLM involvement is best-effort: a failed improvement analysis
// degrades to a placeholder category and a failed aggregation is skipped.
// Feedback itself is never lost to an LLM error.
type LearningService struct {
	store   driven.FeedbackStore
	llm     driven.LLMService
	prompts driven.PromptStore
}

// NewLearningService creates a learning subsystem. llm is optional; when
// nil improvement detection and insight aggregation degrade gracefully.
func NewLearningService(store driven.FeedbackStore, llm driven.LLMService, prompts driven.PromptStore) *LearningService {
	return &LearningService{
		store:   store,
		llm:     llm,
		prompts: prompts,
	}
}

// SaveFeedback appends a feedback record, detecting improvement
// categories when a revision was supplied. Every fifth record triggers
// insight aggregation over the recent window.
func (l *LearningService) SaveFeedback(ctx context.Context, fb domain.Feedback) (int, error) {
	if !fb.Kind.Valid() {
		return 0, fmt.Errorf("save feedback %q: %w", fb.Kind, domain.ErrInvalidFeedbackKind)
	}
	if fb.Timestamp.IsZero() {
		fb.Timestamp = time.Now()
	}
	if fb.Revised != "" && fb.Revised != fb.Original {
		fb.Improvements = l.analyzeImprovements(ctx, fb.Original, fb.Revised)
	}

	id, err := l.store.Append(ctx, fb)
	if err != nil {
		return 0, fmt.Errorf("append feedback: %w", err)
	}
	logger.Info("Saved feedback #%d (%s)", id, fb.Kind)

	count, err := l.store.Count(ctx)
	if err == nil && count >= insightTriggerEvery && count%insightTriggerEvery == 0 {
		l.aggregateInsights(ctx, count)
	}
	return id, nil
}

// LearningContext renders the recent insights as a prompt block. Empty
// when no insights exist yet.
func (l *LearningService) LearningContext(ctx context.Context, reportTypeID string) (string, error) {
	insights, err := l.store.RecentInsights(ctx, contextInsights)
	if err != nil {
		return "", fmt.Errorf("load insights: %w", err)
	}
	if len(insights) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("SİSTEM ÖĞRENMELERİ (Geçmiş geri bildirimlerden):\n\n")
	for _, in := range insights {
		if len(in.CommonImprovements) > 0 {
			sb.WriteString("Sık İyileştirme Alanları:\n")
			for _, item := range in.CommonImprovements {
				sb.WriteString("- " + item + "\n")
			}
			sb.WriteString("\n")
		}
		if hint, ok := in.ReportTypeInsights[reportTypeID]; ok {
			fmt.Fprintf(&sb, "%s Özel Önerileri:\n- %s\n\n", reportTypeID, hint)
		}
		if len(in.LanguageObservations) > 0 {
			sb.WriteString("Dil ve Üslup Önerileri:\n")
			for _, item := range in.LanguageObservations {
				sb.WriteString("- " + item + "\n")
			}
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// Statistics aggregates the feedback log.
func (l *LearningService) Statistics(ctx context.Context) (*domain.FeedbackStats, error) {
	total, err := l.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count feedback: %w", err)
	}
	positive, err := l.store.CountByKind(ctx, domain.FeedbackPositive)
	if err != nil {
		return nil, fmt.Errorf("count positive feedback: %w", err)
	}
	latest, err := l.store.Recent(ctx, statsLatest)
	if err != nil {
		return nil, fmt.Errorf("load recent feedback: %w", err)
	}

	stats := &domain.FeedbackStats{
		TotalFeedbacks:    total,
		PositiveFeedbacks: positive,
		Latest:            latest,
	}
	if total > 0 {
		stats.ImprovementRate = float64(positive) / float64(total) * 100
	}
	return stats, nil
}

// analyzeImprovements asks the LLM which improvement categories the
// revision introduced. Any failure yields the manual-revision placeholder.
func (l *LearningService) analyzeImprovements(ctx context.Context, original, revised string) []string {
	fallback := []string{"Manuel revizyon yapıldı"}
	if l.llm == nil {
		return fallback
	}

	prompt := fmt.Sprintf(loadPrompt(l.prompts, driven.PromptImprovements),
		truncate(original, improvementDiffLen),
		truncate(revised, improvementDiffLen))

	reply, err := l.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   512,
		Temperature: 0.3,
	})
	if err != nil {
		logger.Warn("improvement analysis failed: %v", err)
		return fallback
	}

	var improvements []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		improvements = append(improvements, line)
		if len(improvements) == maxImprovements {
			break
		}
	}
	if len(improvements) == 0 {
		return fallback
	}
	return improvements
}

// aggregateInsights distills the recent feedback window into one insight
// snapshot. Failures are logged, never surfaced.
func (l *LearningService) aggregateInsights(ctx context.Context, total int) {
	if l.llm == nil {
		return
	}

	recent, err := l.store.Recent(ctx, insightWindow)
	if err != nil || len(recent) < insightTriggerEvery {
		return
	}

	var sb strings.Builder
	for _, fb := range recent {
		fmt.Fprintf(&sb, "Rapor Türü: %s\n", fb.ReportTypeID)
		fmt.Fprintf(&sb, "Feedback: %s\n", fb.Kind)
		fmt.Fprintf(&sb, "İyileştirmeler: %s\n", strings.Join(fb.Improvements, ", "))
		fmt.Fprintf(&sb, "Yorumlar: %s\n\n", fb.Comments)
	}

	prompt := fmt.Sprintf(loadPrompt(l.prompts, driven.PromptInsights), sb.String())
	reply, err := l.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   2048,
		Temperature: 0.4,
	})
	if err != nil {
		logger.Warn("insight aggregation failed: %v", err)
		return
	}

	var insight domain.Insight
	if !jsonextract.Unmarshal(reply, &insight) {
		logger.Warn("insight aggregation: malformed reply")
		return
	}
	insight.Timestamp = time.Now()
	insight.FeedbackCount = total

	if err := l.store.SaveInsight(ctx, insight); err != nil {
		logger.Warn("save insight failed: %v", err)
		return
	}
	logger.Info("Aggregated insight over %d recent feedbacks", len(recent))
}
