package driving

import (
	"context"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
)

// IndexOptions configures a chunking/indexing run.
// Zero values fall back to the chunker defaults (1000/200).
type IndexOptions struct {
	ChunkSize int
	Overlap   int
}

// IndexerService ingests sample documents into the embedding index.
type IndexerService interface {
	// IndexFile extracts, chunks and stores one file. Returns the number
	// of chunks successfully stored, which may be less than the number
	// produced when individual embeddings fail. Extraction failures and
	// zero-chunk extractions are hard errors.
	IndexFile(ctx context.Context, path string, opts IndexOptions) (int, error)

	// IndexDirectory indexes every supported file directly under dir
	// (non-recursive). Per-file failures are recorded in the report's
	// FailedFiles; the run never aborts early.
	IndexDirectory(ctx context.Context, dir string, opts IndexOptions) (*domain.IndexReport, error)

	// Stats reports the state of the underlying embedding index.
	Stats(ctx context.Context) (domain.IndexStats, error)

	// Delete removes one indexed chunk by ID.
	Delete(ctx context.Context, id string) error

	// Clear drops every indexed chunk.
	Clear(ctx context.Context) error
}

// SearchService answers semantic similarity queries over the indexed
// document chunks.
type SearchService interface {
	// Search returns up to k chunks most similar to the query, ordered
	// by ascending distance. An empty index or a failed query embedding
	// yields an empty slice, not an error.
	Search(ctx context.Context, query string, k int) ([]domain.SearchHit, error)
}
