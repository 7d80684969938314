package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnknownReportType indicates a report type id with no catalog entry.
	ErrUnknownReportType = errors.New("unknown report type")

	// ErrSessionNotFound indicates an unknown interview session id.
	ErrSessionNotFound = errors.New("no such session")

	// ErrSessionCompleted indicates the session has already answered
	// every question; no further answers are accepted.
	ErrSessionCompleted = errors.New("session already completed")

	// ErrSessionNotCompleted indicates a report was requested before all
	// questions were answered.
	ErrSessionNotCompleted = errors.New("answer all questions first")

	// ErrInsufficientText indicates a document is too short to analyze.
	// Raised before any LLM call is made.
	ErrInsufficientText = errors.New("insufficient text for analysis")

	// ErrMalformedResponse indicates the LLM reply contained no parseable
	// JSON object where one was required.
	ErrMalformedResponse = errors.New("malformed LLM response")

	// ErrNoAnalyzableDocuments indicates every supplied sample document
	// failed structure analysis.
	ErrNoAnalyzableDocuments = errors.New("no analyzable documents")

	// ErrUnsupportedFormat indicates a file extension no extractor handles.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyDocument indicates extraction succeeded but yielded no text.
	ErrEmptyDocument = errors.New("document contains no extractable text")

	// ErrEmptyReply indicates the LLM returned an empty reply.
	ErrEmptyReply = errors.New("empty LLM reply")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured; indexing and semantic search are disabled.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrInvalidAnswerIndex indicates a revision targeted a question that
	// has not been answered yet.
	ErrInvalidAnswerIndex = errors.New("invalid answer index")

	// ErrInvalidFeedbackKind indicates an unknown feedback classification.
	ErrInvalidFeedbackKind = errors.New("invalid feedback kind")
)
