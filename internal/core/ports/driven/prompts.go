package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from user-editable files or embed
// defaults in the binary. Each pipeline stage has exactly one template so
// the natural-language contract lives in one place per stage.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next
	// access. Useful when prompts have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptClassify tags the topical categories present in a sample
	// document. Placeholders: %s (document text prefix).
	PromptClassify = "classify"

	// PromptInduce writes an ordered interview question list from
	// aggregated analysis results. Placeholders: %d (document count),
	// %s (themes), %s (categories), %s (optional name-hint line).
	PromptInduce = "induce"

	// PromptOptimize merges an existing question list with a freshly
	// induced one. Placeholders: %s (existing), %s (suggested).
	PromptOptimize = "optimize"

	// PromptSynthesize turns a completed interview into a narrative
	// report. Placeholders: %s (report name), %s (body: report header,
	// Q/A pairs and context blocks), %s (report name again).
	PromptSynthesize = "synthesize"

	// PromptSynthesizeExpanded is the maximal-expansion synthesis
	// variant (2000+ words from minimal input). Same placeholders as
	// PromptSynthesize.
	PromptSynthesizeExpanded = "synthesize_expanded"

	// PromptDeepAnalysis performs the five-axis structural assessment
	// of sample reports. Placeholders: %d (report count), %s (report
	// type name), %s (joined report texts).
	PromptDeepAnalysis = "deep_analysis"

	// PromptImprovements lists improvement categories between an
	// original and a revised report. Placeholders: %s (original prefix),
	// %s (revised prefix).
	PromptImprovements = "improvements"

	// PromptInsights summarises recent feedback into forward-looking
	// guidance. Placeholders: %s (feedback summary).
	PromptInsights = "insights"
)
