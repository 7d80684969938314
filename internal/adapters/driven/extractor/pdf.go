package extractor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
)

// Ensure PDF implements the interface.
var _ driven.TextExtractor = (*PDF)(nil)

// CommandRunner executes an external command and returns its combined
// stdout. Abstracted for testing.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// PDF extracts text from PDF files by shelling out to pdftotext.
type PDF struct {
	runner CommandRunner
}

// NewPDF creates a PDF extractor using the system pdftotext binary.
func NewPDF() *PDF {
	return &PDF{runner: execRunner{}}
}

// NewPDFWithRunner creates a PDF extractor with a custom command runner.
func NewPDFWithRunner(runner CommandRunner) *PDF {
	return &PDF{runner: runner}
}

// Extract runs pdftotext over the file and returns the text. Pages are
// separated by form feeds in the tool output; PageCount is derived from
// them.
func (p *PDF) Extract(ctx context.Context, path string) (*driven.Extraction, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	// "-" writes the text to stdout.
	out, err := p.runner.Run(ctx, "pdftotext", "-layout", "-enc", "UTF-8", path, "-")
	if err != nil {
		return nil, fmt.Errorf("pdftotext %s: %w", path, err)
	}

	raw := string(out)
	pages := strings.Count(raw, "\f")
	if len(raw) > 0 {
		pages++
	}

	text := strings.TrimSpace(strings.ReplaceAll(raw, "\f", "\n"))
	if text == "" {
		return nil, fmt.Errorf("extract %s: %w", path, domain.ErrEmptyDocument)
	}

	return &driven.Extraction{
		Text:      text,
		PageCount: pages,
	}, nil
}

// Supports reports whether the extractor handles the extension.
func (p *PDF) Supports(ext string) bool {
	return strings.EqualFold(ext, ".pdf")
}

// Extensions lists the supported file extensions.
func (p *PDF) Extensions() []string {
	return []string{".pdf"}
}
