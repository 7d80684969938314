package driven

import "context"

// LLMService provides text generation for question induction, report
// synthesis and feedback analysis.
//
// Implementations may include:
//   - Gemini (gemini-1.5-flash)
//   - Ollama (local models)
type LLMService interface {
	// Generate produces text completion from a prompt. The reply is raw
	// model output; callers expecting JSON must scan it with the
	// jsonextract package rather than unmarshalling directly.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the LLM model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
