package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
)

func TestEmbeddingIndex_Add(t *testing.T) {
	embedder := &mockEmbedding{embedding: []float32{0.1, 0.2, 0.3}}
	store := newMockVectorStore()
	ix := NewEmbeddingIndex(embedder, store)

	ok := ix.Add(context.Background(), "doc_chunk_0_abc", "Aile yapısı çekirdek ailedir.", domain.ChunkMeta{
		SourceFile: "doc.pdf",
	})
	require.True(t, ok)

	chunk, found := store.chunks["doc_chunk_0_abc"]
	require.True(t, found)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, chunk.Embedding)
	assert.Equal(t, len("Aile yapısı çekirdek ailedir."), chunk.Meta.CharCount)
	assert.Equal(t, 4, chunk.Meta.WordCount)
}

func TestEmbeddingIndex_AddOverwritesSameID(t *testing.T) {
	embedder := &mockEmbedding{embedding: []float32{1}}
	store := newMockVectorStore()
	ix := NewEmbeddingIndex(embedder, store)

	require.True(t, ix.Add(context.Background(), "id1", "first", domain.ChunkMeta{}))
	require.True(t, ix.Add(context.Background(), "id1", "second", domain.ChunkMeta{}))

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "second", store.chunks["id1"].Text)
}

func TestEmbeddingIndex_AddDegradesOnEmbedFailure(t *testing.T) {
	embedder := &mockEmbedding{err: errors.New("quota exceeded")}
	store := newMockVectorStore()
	ix := NewEmbeddingIndex(embedder, store)

	ok := ix.Add(context.Background(), "id1", "text", domain.ChunkMeta{})
	assert.False(t, ok)
	assert.Empty(t, store.chunks)
}

func TestEmbeddingIndex_AddNilEmbedder(t *testing.T) {
	ix := NewEmbeddingIndex(nil, newMockVectorStore())
	assert.False(t, ix.Add(context.Background(), "id1", "text", domain.ChunkMeta{}))
}

func TestEmbeddingIndex_AddBatchPartialFailure(t *testing.T) {
	embedder := &mockEmbedding{embedding: []float32{1}}
	store := newMockVectorStore()
	store.upsertErr = nil
	ix := NewEmbeddingIndex(embedder, store)

	chunks := []domain.Chunk{
		{ID: "a", Text: "one"},
		{ID: "", Text: "missing id"},
		{ID: "b", Text: ""},
		{ID: "c", Text: "three"},
	}
	added := ix.AddBatch(context.Background(), chunks)
	assert.Equal(t, 2, added)
}

func TestEmbeddingIndex_SearchEmptyIndex(t *testing.T) {
	embedder := &mockEmbedding{embedding: []float32{1}}
	ix := NewEmbeddingIndex(embedder, newMockVectorStore())

	hits, err := ix.Search(context.Background(), "herhangi bir sorgu", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
	assert.NotNil(t, hits)
}

func TestEmbeddingIndex_SearchDegradesOnEmbedFailure(t *testing.T) {
	embedder := &mockEmbedding{err: errors.New("network down")}
	ix := NewEmbeddingIndex(embedder, newMockVectorStore())

	hits, err := ix.Search(context.Background(), "sorgu", 3)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestEmbeddingIndex_SearchReturnsNearest(t *testing.T) {
	embedder := &mockEmbedding{embedding: []float32{1}}
	store := newMockVectorStore()
	ix := NewEmbeddingIndex(embedder, store)

	for _, id := range []string{"a", "b", "c", "d"} {
		require.True(t, ix.Add(context.Background(), id, "metin "+id, domain.ChunkMeta{}))
	}

	hits, err := ix.Search(context.Background(), "metin", 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.LessOrEqual(t, hits[0].Distance, hits[1].Distance)
}

func TestEmbeddingIndex_Stats(t *testing.T) {
	embedder := &mockEmbedding{embedding: []float32{1}}
	store := newMockVectorStore()
	ix := NewEmbeddingIndex(embedder, store)

	require.True(t, ix.Add(context.Background(), "a", "metin", domain.ChunkMeta{}))

	stats, err := ix.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DocumentCount)
	assert.Equal(t, "test_collection", stats.CollectionName)
	assert.Equal(t, "/tmp/test.db", stats.StoragePath)
}

func TestEmbeddingIndex_Clear(t *testing.T) {
	embedder := &mockEmbedding{embedding: []float32{1}}
	store := newMockVectorStore()
	ix := NewEmbeddingIndex(embedder, store)

	require.True(t, ix.Add(context.Background(), "a", "metin", domain.ChunkMeta{}))
	require.NoError(t, ix.Clear(context.Background()))

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
