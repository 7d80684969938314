package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
	"github.com/kanca-labs/rapor-cli/internal/logger"
)

// knowledgeBaseContextLen bounds the report type's reference text
// embedded in the synthesis prompt.
const knowledgeBaseContextLen = 3000

// Synthesizer turns a completed interview session into a narrative
// report with a single LLM call. The prompt carries the full question
// and answer transcript plus optional retrieval and learning blocks.
type Synthesizer struct {
	llm     driven.LLMService
	prompts driven.PromptStore
}

// NewSynthesizer creates a report synthesizer.
func NewSynthesizer(llm driven.LLMService, prompts driven.PromptStore) *Synthesizer {
	return &Synthesizer{
		llm:     llm,
		prompts: prompts,
	}
}

// Synthesize generates the report for a completed session. contextBlock
// carries retrieved sample-report excerpts and learningBlock carries
// feedback-derived guidance; either may be empty. expanded selects the
// longer report template for thin transcripts.
func (s *Synthesizer) Synthesize(ctx context.Context, session *domain.Session, contextBlock, learningBlock string, expanded bool) (*domain.GeneratedReport, error) {
	logger.Section("Report Synthesis")

	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}
	if !session.Completed {
		return nil, domain.ErrSessionNotCompleted
	}

	name := driven.PromptSynthesize
	if expanded {
		name = driven.PromptSynthesizeExpanded
	}
	prompt := fmt.Sprintf(loadPrompt(s.prompts, name),
		session.ReportName,
		transcript(session, contextBlock, learningBlock),
		session.ReportName)
	logger.Debug("Synthesis prompt: %d chars (expanded=%t)", len(prompt), expanded)

	content, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   8192,
		Temperature: 0.6,
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize report: %w", err)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("synthesize report: %w", domain.ErrEmptyReply)
	}

	report := &domain.GeneratedReport{
		Content:  content,
		Metadata: domain.NewReportMetadata(session, content),
	}
	logger.Info("Generated report: %d words", report.Metadata.WordCount)
	return report, nil
}

// transcript renders the interview data section of the synthesis prompt:
// type header, numbered question/answer pairs, then the optional context
// and learning blocks.
func transcript(session *domain.Session, contextBlock, learningBlock string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "RAPOR TÜRÜ: %s\n", session.ReportName)
	if session.ReportDescription != "" {
		fmt.Fprintf(&sb, "AÇIKLAMA: %s\n", session.ReportDescription)
	}
	sb.WriteString("\nGÖRÜŞME VERİLERİ:\n")
	for i, answer := range session.Answers {
		fmt.Fprintf(&sb, "\n%d. SORU: %s\nCEVAP: %s\n", i+1, answer.Question, answer.Text)
	}

	if session.KnowledgeBase != "" {
		sb.WriteString("\nREFERANS BİLGİ TABANI (bu rapor türünün örnek belgelerinden):\n")
		sb.WriteString(truncate(session.KnowledgeBase, knowledgeBaseContextLen))
		sb.WriteString("\n")
	}
	if contextBlock != "" {
		sb.WriteString("\nEK BAĞLAM BİLGİSİ (benzer raporlardan):\n")
		sb.WriteString(contextBlock)
		sb.WriteString("\n")
	}
	if learningBlock != "" {
		sb.WriteString("\n")
		sb.WriteString(learningBlock)
		sb.WriteString("\n")
	}
	return sb.String()
}
