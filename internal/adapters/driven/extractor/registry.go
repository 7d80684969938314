package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.TextExtractor = (*Registry)(nil)

// Registry dispatches extraction to the first registered extractor that
// supports the file's extension.
type Registry struct {
	extractors []driven.TextExtractor
}

// NewRegistry creates a registry over the given extractors.
func NewRegistry(extractors ...driven.TextExtractor) *Registry {
	return &Registry{extractors: extractors}
}

// NewDefaultRegistry creates a registry with the standard extractors:
// PDF via pdftotext, plus flat text formats.
func NewDefaultRegistry() *Registry {
	return NewRegistry(NewPDF(), NewPlainText())
}

// Extract dispatches to the extractor registered for the file extension.
func (r *Registry) Extract(ctx context.Context, path string) (*driven.Extraction, error) {
	ext := filepath.Ext(path)
	for _, e := range r.extractors {
		if e.Supports(ext) {
			return e.Extract(ctx, path)
		}
	}
	return nil, fmt.Errorf("extract %s: %w", path, domain.ErrUnsupportedFormat)
}

// Supports reports whether any registered extractor handles the extension.
func (r *Registry) Supports(ext string) bool {
	for _, e := range r.extractors {
		if e.Supports(ext) {
			return true
		}
	}
	return false
}

// Extensions lists the union of supported file extensions.
func (r *Registry) Extensions() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range r.extractors {
		for _, ext := range e.Extensions() {
			key := strings.ToLower(ext)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}
	}
	return out
}
