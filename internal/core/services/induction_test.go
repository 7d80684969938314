package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
)

// longSampleText builds a document comfortably above the analysis
// threshold.
func longSampleText() string {
	return strings.Repeat("Aile görüşmesinde sosyoekonomik durum ve konut koşulları değerlendirildi. ", 20)
}

const classifyReply = `{
  "detected_categories": ["DEMOGRAFİK BİLGİLER", "SAĞLIK DURUMU"],
  "report_type_suggestion": "Sosyal İnceleme Raporu",
  "complexity_level": "orta",
  "key_themes": ["aile yapısı", "sağlık"],
  "target_population": "aileler"
}`

func TestAnalyzeStructure(t *testing.T) {
	extractor := &mockExtractor{texts: map[string]string{"a.pdf": longSampleText()}}
	llm := &mockLLM{replies: []string{"İşte analiz:\n" + classifyReply}}
	svc := NewInductionService(extractor, llm, nil)

	analysis, err := svc.AnalyzeStructure(context.Background(), "a.pdf")
	require.NoError(t, err)

	assert.Equal(t, []string{"DEMOGRAFİK BİLGİLER", "SAĞLIK DURUMU"}, analysis.Categories)
	assert.Equal(t, []string{"aile yapısı", "sağlık"}, analysis.KeyThemes)
	assert.Equal(t, "orta", analysis.Complexity)
	assert.Equal(t, len(longSampleText()), analysis.TextLength)
}

func TestAnalyzeStructure_InsufficientText(t *testing.T) {
	extractor := &mockExtractor{texts: map[string]string{"kisa.pdf": "Çok kısa metin."}}
	llm := &mockLLM{}
	svc := NewInductionService(extractor, llm, nil)

	_, err := svc.AnalyzeStructure(context.Background(), "kisa.pdf")
	assert.ErrorIs(t, err, domain.ErrInsufficientText)
	assert.Empty(t, llm.prompts, "no LLM call for short documents")
}

func TestAnalyzeStructure_TruncatesLongText(t *testing.T) {
	extractor := &mockExtractor{texts: map[string]string{"uzun.pdf": strings.Repeat("a", 10000)}}
	llm := &mockLLM{replies: []string{classifyReply}}
	svc := NewInductionService(extractor, llm, nil)

	_, err := svc.AnalyzeStructure(context.Background(), "uzun.pdf")
	require.NoError(t, err)
	assert.NotContains(t, llm.lastPrompt(), strings.Repeat("a", classifyPrefixLen+1))
	assert.Contains(t, llm.lastPrompt(), strings.Repeat("a", classifyPrefixLen))
}

func TestAnalyzeStructure_MalformedReply(t *testing.T) {
	extractor := &mockExtractor{texts: map[string]string{"a.pdf": longSampleText()}}
	llm := &mockLLM{replies: []string{"bu yanıtta json yok"}}
	svc := NewInductionService(extractor, llm, nil)

	_, err := svc.AnalyzeStructure(context.Background(), "a.pdf")
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestInduceQuestions(t *testing.T) {
	extractor := &mockExtractor{texts: map[string]string{
		"a.pdf": longSampleText(),
		"b.pdf": longSampleText(),
	}}
	induceReply := `{
	  "report_type_suggestion": "Aile Değerlendirme Raporu",
	  "questions": ["Aile yapısı nasıl?", "Gelir durumu nedir?", "Sağlık sorunları var mı?"],
	  "rationale": {"question_count": 3, "focus_areas": ["aile"], "target_duration": "10 dakika", "complexity": "basit"}
	}`
	llm := &mockLLM{replies: []string{classifyReply, classifyReply, induceReply}}
	svc := NewInductionService(extractor, llm, nil)

	induced, err := svc.InduceQuestions(context.Background(), []string{"a.pdf", "b.pdf"}, "Aile Raporu")
	require.NoError(t, err)

	assert.False(t, induced.Fallback)
	assert.Len(t, induced.Questions, 3)
	assert.Equal(t, "Aile Değerlendirme Raporu", induced.ReportTypeSuggestion)
	assert.Equal(t, []string{"DEMOGRAFİK BİLGİLER", "SAĞLIK DURUMU"}, induced.Categories)
	assert.Contains(t, llm.lastPrompt(), "Aile Raporu")

	// The extracted source texts come back for the knowledge base.
	assert.Contains(t, induced.SourceText, "Aile görüşmesinde sosyoekonomik durum")
}

func TestInduceQuestions_SourceTextCapped(t *testing.T) {
	extractor := &mockExtractor{texts: map[string]string{
		"uzun.pdf": strings.Repeat("a", domain.MaxKnowledgeBaseLen+2000),
	}}
	induceReply := `{"report_type_suggestion": "t", "questions": ["Soru?"], "rationale": {"question_count": 1}}`
	llm := &mockLLM{replies: []string{classifyReply, induceReply}}
	svc := NewInductionService(extractor, llm, nil)

	induced, err := svc.InduceQuestions(context.Background(), []string{"uzun.pdf"}, "")
	require.NoError(t, err)
	assert.Len(t, induced.SourceText, domain.MaxKnowledgeBaseLen)
}

func TestInduceQuestions_FallbackOnMalformedReply(t *testing.T) {
	extractor := &mockExtractor{texts: map[string]string{"a.pdf": longSampleText()}}
	llm := &mockLLM{replies: []string{classifyReply, "geçersiz yanıt"}}
	svc := NewInductionService(extractor, llm, nil)

	induced, err := svc.InduceQuestions(context.Background(), []string{"a.pdf"}, "")
	require.NoError(t, err)

	assert.True(t, induced.Fallback)
	assert.Equal(t, "Genel Sosyal Hizmet Değerlendirmesi", induced.ReportTypeSuggestion)
	// 8 base questions + the SAĞLIK DURUMU add-on from the detected categories.
	assert.Len(t, induced.Questions, 9)
	assert.Contains(t, induced.Questions, "Sağlık durumunuz ve tedavi geçmişiniz hakkında bilgi verebilir misiniz?")
	assert.Equal(t, 9, induced.Rationale.QuestionCount)
}

func TestInduceQuestions_FallbackCap(t *testing.T) {
	induced := fallbackQuestions([]string{
		domain.CategoryHealth,
		domain.CategoryEducation,
		domain.CategoryRisk,
	})
	assert.Len(t, induced.Questions, 10)
	assert.True(t, induced.Fallback)
}

func TestInduceQuestions_NoAnalyzableDocuments(t *testing.T) {
	extractor := &mockExtractor{
		texts: map[string]string{"kisa.pdf": "kısa"},
		errs:  map[string]error{"bozuk.pdf": errors.New("corrupt")},
	}
	llm := &mockLLM{}
	svc := NewInductionService(extractor, llm, nil)

	_, err := svc.InduceQuestions(context.Background(), []string{"kisa.pdf", "bozuk.pdf"}, "")
	assert.ErrorIs(t, err, domain.ErrNoAnalyzableDocuments)
}

func TestOptimizeQuestions(t *testing.T) {
	extractor := &mockExtractor{texts: map[string]string{"a.pdf": longSampleText()}}
	induceReply := `{"report_type_suggestion": "t", "questions": ["Yeni soru?"], "rationale": {"question_count": 1}}`
	optimizeReply := `{
	  "optimized_questions": ["Birleştirilmiş soru?"],
	  "changes_made": ["iki soru birleştirildi"],
	  "improvement_reasons": ["mükerrerlik"]
	}`
	llm := &mockLLM{replies: []string{classifyReply, induceReply, optimizeReply}}
	svc := NewInductionService(extractor, llm, nil)

	optimized, err := svc.OptimizeQuestions(context.Background(), []string{"Eski soru?"}, []string{"a.pdf"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Birleştirilmiş soru?"}, optimized.Questions)
	assert.Equal(t, []string{"iki soru birleştirildi"}, optimized.ChangesMade)
	assert.Contains(t, llm.prompts[len(llm.prompts)-1], "1. Eski soru?")
}

func TestOptimizeQuestions_MalformedReply(t *testing.T) {
	extractor := &mockExtractor{texts: map[string]string{"a.pdf": longSampleText()}}
	induceReply := `{"report_type_suggestion": "t", "questions": ["Soru?"], "rationale": {"question_count": 1}}`
	llm := &mockLLM{replies: []string{classifyReply, induceReply, "json değil"}}
	svc := NewInductionService(extractor, llm, nil)

	_, err := svc.OptimizeQuestions(context.Background(), []string{"Eski soru?"}, []string{"a.pdf"})
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestDeepAnalyze(t *testing.T) {
	extractor := &mockExtractor{texts: map[string]string{
		"a.pdf": "Birinci rapor metni.",
		"b.pdf": "İkinci rapor metni.",
	}}
	reply := `{
	  "report_structure": {"sections": ["özet", "değerlendirme"], "methodology": "görüşme", "assessment_tools": ["gözlem"]},
	  "content_analysis": {"primary_focus_areas": ["aile"], "risk_factors": ["ekonomik"], "dimensions": ["sosyal"]},
	  "professional_approach": {"theories_used": ["sistem teorisi"], "terminology_level": "yüksek", "objectivity": "iyi", "cultural_sensitivity": "yeterli"},
	  "output_characteristics": {"conclusion_style": "önerili", "recommendation_type": "somut", "action_plan_approach": "aşamalı"},
	  "target_context": {"target_audience": "kurum", "institutional_context": "kamu", "legal_requirements": "var"}
	}`
	llm := &mockLLM{replies: []string{reply}}
	svc := NewInductionService(extractor, llm, nil)

	analysis, err := svc.DeepAnalyze(context.Background(), []string{"a.pdf", "b.pdf"}, "Sosyal İnceleme Raporu")
	require.NoError(t, err)

	assert.Equal(t, []string{"özet", "değerlendirme"}, analysis.ReportStructure.Sections)
	assert.Contains(t, llm.lastPrompt(), "--- YENİ RAPOR ---")
	assert.Contains(t, llm.lastPrompt(), "Sosyal İnceleme Raporu")
}

func TestDeepAnalyze_NoDocuments(t *testing.T) {
	extractor := &mockExtractor{errs: map[string]error{"bozuk.pdf": errors.New("corrupt")}}
	svc := NewInductionService(extractor, &mockLLM{}, nil)

	_, err := svc.DeepAnalyze(context.Background(), []string{"bozuk.pdf"}, "Rapor")
	assert.ErrorIs(t, err, domain.ErrNoAnalyzableDocuments)
}
