package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driving"
	"github.com/kanca-labs/rapor-cli/internal/logger"
)

// Ensure EmbeddingIndex implements the search port.
var _ driving.SearchService = (*EmbeddingIndex)(nil)

// EmbeddingIndex pairs the embedding service with the vector store: it
// embeds chunk text on write and query text on read.
//
// Failure policy: embedding errors are logged and degrade the operation
// to a no-op returning false or an empty slice. Ingestion and search must
// never take down the interview flow.
type EmbeddingIndex struct {
	embedder driven.EmbeddingService
	store    driven.VectorStore
}

// NewEmbeddingIndex creates an embedding index over the given services.
func NewEmbeddingIndex(embedder driven.EmbeddingService, store driven.VectorStore) *EmbeddingIndex {
	return &EmbeddingIndex{
		embedder: embedder,
		store:    store,
	}
}

// Add embeds text and upserts it under the given ID. Returns false, not
// an error, when the embedding capability fails or returns no vector.
// Adding the same ID again overwrites the previous entry.
func (ix *EmbeddingIndex) Add(ctx context.Context, id, text string, meta domain.ChunkMeta) bool {
	if ix.embedder == nil {
		logger.Warn("embedding index: no embedding service, dropping %s", id)
		return false
	}

	embedding, err := ix.embedder.Embed(ctx, text)
	if err != nil || len(embedding) == 0 {
		logger.Warn("embedding index: embed %s failed: %v", id, err)
		return false
	}

	meta.CharCount = len(text)
	meta.WordCount = len(strings.Fields(text))

	chunk := domain.Chunk{
		ID:        id,
		Text:      text,
		Embedding: embedding,
		Meta:      meta,
	}
	if err := ix.store.Upsert(ctx, chunk); err != nil {
		logger.Warn("embedding index: store %s failed: %v", id, err)
		return false
	}

	logger.Debug("embedding index: stored %s (%d chars)", id, len(text))
	return true
}

// AddBatch adds chunks individually and returns the number stored.
// A single failure does not abort the batch; partial success is expected.
func (ix *EmbeddingIndex) AddBatch(ctx context.Context, chunks []domain.Chunk) int {
	added := 0
	for _, chunk := range chunks {
		if chunk.ID == "" || chunk.Text == "" {
			continue
		}
		if ix.Add(ctx, chunk.ID, chunk.Text, chunk.Meta) {
			added++
		}
	}
	return added
}

// Search embeds the query and returns the k nearest chunks by ascending
// distance. A failed query embedding or an empty index yields an empty
// slice, never an error.
func (ix *EmbeddingIndex) Search(ctx context.Context, query string, k int) ([]domain.SearchHit, error) {
	if ix.embedder == nil {
		return []domain.SearchHit{}, nil
	}
	if k <= 0 {
		k = 5
	}

	embedding, err := ix.embedder.Embed(ctx, query)
	if err != nil || len(embedding) == 0 {
		logger.Warn("embedding index: query embed failed: %v", err)
		return []domain.SearchHit{}, nil
	}

	hits, err := ix.store.Search(ctx, embedding, k)
	if err != nil {
		logger.Warn("embedding index: search failed: %v", err)
		return []domain.SearchHit{}, nil
	}
	if hits == nil {
		hits = []domain.SearchHit{}
	}
	return hits, nil
}

// Stats reports the current index state.
func (ix *EmbeddingIndex) Stats(ctx context.Context) (domain.IndexStats, error) {
	count, err := ix.store.Count(ctx)
	if err != nil {
		return domain.IndexStats{}, fmt.Errorf("count chunks: %w", err)
	}
	return domain.IndexStats{
		DocumentCount:  count,
		CollectionName: ix.store.CollectionName(),
		StoragePath:    ix.store.Path(),
	}, nil
}

// Delete removes one chunk by ID.
func (ix *EmbeddingIndex) Delete(ctx context.Context, id string) error {
	return ix.store.Delete(ctx, id)
}

// Clear drops every stored chunk.
func (ix *EmbeddingIndex) Clear(ctx context.Context) error {
	return ix.store.Clear(ctx)
}
