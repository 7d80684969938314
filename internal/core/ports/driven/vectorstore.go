package driven

import (
	"context"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
)

// VectorStore persists chunks with their embeddings and answers
// nearest-neighbour queries. Backed by SQLite; every mutation is durable
// immediately, there is no separate flush step.
type VectorStore interface {
	// Upsert stores a chunk, replacing any existing chunk with the same
	// ID. Re-running an index job must not create duplicate entries.
	Upsert(ctx context.Context, chunk domain.Chunk) error

	// Search returns the k nearest chunks to the query vector, ordered
	// by ascending distance. An empty store yields an empty slice.
	Search(ctx context.Context, query []float32, k int) ([]domain.SearchHit, error)

	// Delete removes a chunk by ID. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Clear drops every chunk in the collection.
	Clear(ctx context.Context) error

	// Count returns the number of stored chunks.
	Count(ctx context.Context) (int, error)

	// CollectionName identifies the logical collection.
	CollectionName() string

	// Path returns the storage location.
	Path() string

	// Close releases resources.
	Close() error
}
