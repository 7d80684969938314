package extractor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
)

// Ensure PlainText implements the interface.
var _ driven.TextExtractor = (*PlainText)(nil)

// PlainText reads flat text formats directly.
type PlainText struct{}

// NewPlainText creates a plain text extractor.
func NewPlainText() *PlainText {
	return &PlainText{}
}

// Extract reads the file as UTF-8 text.
func (p *PlainText) Extract(_ context.Context, path string) (*driven.Extraction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, fmt.Errorf("extract %s: %w", path, domain.ErrEmptyDocument)
	}
	return &driven.Extraction{Text: text}, nil
}

// Supports reports whether the extractor handles the extension.
func (p *PlainText) Supports(ext string) bool {
	for _, supported := range p.Extensions() {
		if strings.EqualFold(ext, supported) {
			return true
		}
	}
	return false
}

// Extensions lists the supported file extensions.
func (p *PlainText) Extensions() []string {
	return []string{".txt", ".md"}
}
