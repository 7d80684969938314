package driven

import "context"

// Extraction is the plain-text content of a document file.
type Extraction struct {
	// Text is the extracted text, trimmed of surrounding whitespace.
	Text string

	// PageCount is the number of pages, when the format has pages.
	// Zero for flat text formats.
	PageCount int
}

// TextExtractor turns a document file into plain text. PDF parsing is
// treated as a black box: the core only consumes the extracted text.
type TextExtractor interface {
	// Extract reads the file at path and returns its plain text.
	// Returns domain.ErrUnsupportedFormat for extensions the extractor
	// does not handle and domain.ErrEmptyDocument when extraction
	// succeeds but yields no text.
	Extract(ctx context.Context, path string) (*Extraction, error)

	// Supports reports whether the extractor handles the given file
	// extension (including the leading dot, case-insensitive).
	Supports(ext string) bool

	// Extensions lists the supported file extensions.
	Extensions() []string
}
