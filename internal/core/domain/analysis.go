package domain

// The ten topical categories the structure analysis classifies against.
// These mirror the categories used in the classification prompt.
const (
	CategoryDemographics  = "DEMOGRAFİK BİLGİLER"
	CategorySocioeconomic = "SOSYOEKONOMIK DURUM"
	CategoryHealth        = "SAĞLIK DURUMU"
	CategoryEducation     = "EĞİTİM DURUMU"
	CategorySocialEnv     = "SOSYAL ÇEVRE"
	CategoryProblems      = "MEVCUT PROBLEMLER"
	CategoryStrengths     = "GÜÇLÜ YANLAR"
	CategoryInterventions = "MÜDAHALE GEÇMİŞİ"
	CategoryGoals         = "HEDEFLER VE PLANLAR"
	CategoryRisk          = "RİSK DEĞERLENDİRMESİ"
)

// DocumentAnalysis is the structural classification of one sample document.
type DocumentAnalysis struct {
	// Categories are the topical categories detected in the document.
	Categories []string `json:"detected_categories"`

	// ReportTypeSuggestion is the LLM's suggested report type name.
	ReportTypeSuggestion string `json:"report_type_suggestion"`

	// Complexity is one of "basit", "orta", "karmaşık".
	Complexity string `json:"complexity_level"`

	// KeyThemes are free-text themes present in the document.
	KeyThemes []string `json:"key_themes"`

	// TargetPopulation describes the group the document is about.
	TargetPopulation string `json:"target_population"`

	// TextLength is the length of the extracted text, recorded for
	// reporting; not part of the LLM reply.
	TextLength int `json:"-"`
}

// QuestionRationale explains an induced question set.
type QuestionRationale struct {
	QuestionCount     int      `json:"question_count"`
	FocusAreas        []string `json:"focus_areas"`
	EstimatedDuration string   `json:"target_duration"`
	Complexity        string   `json:"complexity"`
}

// InducedQuestions is the outcome of question induction over one or more
// sample documents.
type InducedQuestions struct {
	// Questions is the ordered interview question list, general to
	// specific. Never empty on success.
	Questions []string `json:"questions"`

	// ReportTypeSuggestion is a suggested name for the report type.
	ReportTypeSuggestion string `json:"report_type_suggestion"`

	// Rationale explains the question selection.
	Rationale QuestionRationale `json:"rationale"`

	// Categories and Themes are the union across all analyzed documents.
	Categories []string `json:"categories"`
	Themes     []string `json:"themes"`

	// Fallback is true when the deterministic default question bank was
	// used because the LLM reply was missing or malformed.
	Fallback bool `json:"fallback"`

	// SourceText is the concatenated extracted text of the analyzed
	// documents, capped at MaxKnowledgeBaseLen. It seeds the report
	// type's knowledge base; not part of the LLM reply.
	SourceText string `json:"-"`
}

// OptimizedQuestions is the outcome of merging an existing question list
// with a freshly induced one.
type OptimizedQuestions struct {
	Questions          []string `json:"optimized_questions"`
	ChangesMade        []string `json:"changes_made"`
	ImprovementReasons []string `json:"improvement_reasons"`
}

// DeepAnalysis is the five-axis structural assessment produced by the
// deep-analysis pipeline over a set of sample reports.
type DeepAnalysis struct {
	ReportStructure struct {
		Sections        []string `json:"sections"`
		Methodology     string   `json:"methodology"`
		AssessmentTools []string `json:"assessment_tools"`
	} `json:"report_structure"`

	ContentAnalysis struct {
		PrimaryFocusAreas []string `json:"primary_focus_areas"`
		RiskFactors       []string `json:"risk_factors"`
		Dimensions        []string `json:"dimensions"`
	} `json:"content_analysis"`

	ProfessionalApproach struct {
		TheoriesUsed        []string `json:"theories_used"`
		TerminologyLevel    string   `json:"terminology_level"`
		Objectivity         string   `json:"objectivity"`
		CulturalSensitivity string   `json:"cultural_sensitivity"`
	} `json:"professional_approach"`

	OutputCharacteristics struct {
		ConclusionStyle    string `json:"conclusion_style"`
		RecommendationType string `json:"recommendation_type"`
		ActionPlanApproach string `json:"action_plan_approach"`
	} `json:"output_characteristics"`

	TargetContext struct {
		TargetAudience       string `json:"target_audience"`
		InstitutionalContext string `json:"institutional_context"`
		LegalRequirements    string `json:"legal_requirements"`
	} `json:"target_context"`
}
