package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *VectorStore {
	t.Helper()
	store, err := NewVectorStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testChunk(id string, embedding []float32) domain.Chunk {
	return domain.Chunk{
		ID:        id,
		Text:      "örnek metin " + id,
		Embedding: embedding,
		Meta: domain.ChunkMeta{
			SourceFile:   id + ".pdf",
			DocumentType: domain.DocumentTypeReport,
			ChunkIndex:   0,
			TotalChunks:  1,
		},
	}
}

func TestVectorStore_UpsertAndSearch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, testChunk("a", []float32{1, 0, 0})))
	require.NoError(t, store.Upsert(ctx, testChunk("b", []float32{0, 1, 0})))
	require.NoError(t, store.Upsert(ctx, testChunk("c", []float32{0.9, 0.1, 0})))

	hits, err := store.Search(ctx, []float32{1, 0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)

	assert.Equal(t, "a", hits[0].ID)
	assert.Equal(t, "c", hits[1].ID)
	assert.Less(t, hits[0].Distance, hits[1].Distance)
	assert.InDelta(t, 0, hits[0].Distance, 1e-6)
	assert.Equal(t, "a.pdf", hits[0].Meta.SourceFile)
}

func TestVectorStore_UpsertReplacesSameID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	chunk := testChunk("a", []float32{1, 0})
	require.NoError(t, store.Upsert(ctx, chunk))

	chunk.Text = "güncellenmiş metin"
	require.NoError(t, store.Upsert(ctx, chunk))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	hits, err := store.Search(ctx, []float32{1, 0}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "güncellenmiş metin", hits[0].Text)
}

func TestVectorStore_SearchEmpty(t *testing.T) {
	store := newTestStore(t)

	hits, err := store.Search(context.Background(), []float32{1, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
	assert.NotNil(t, hits)
}

func TestVectorStore_SearchSkipsMismatchedDimensions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, testChunk("eski", []float32{1, 0})))
	require.NoError(t, store.Upsert(ctx, testChunk("yeni", []float32{1, 0, 0})))

	hits, err := store.Search(ctx, []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "yeni", hits[0].ID)
}

func TestVectorStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, testChunk("a", []float32{1})))
	require.NoError(t, store.Delete(ctx, "a"))
	require.NoError(t, store.Delete(ctx, "a"), "deleting a missing ID is not an error")

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestVectorStore_Clear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, testChunk("a", []float32{1})))
	require.NoError(t, store.Upsert(ctx, testChunk("b", []float32{0.5})))
	require.NoError(t, store.Clear(ctx))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestVectorStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewVectorStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Upsert(ctx, testChunk("a", []float32{1, 0})))
	require.NoError(t, store.Close())

	reopened, err := NewVectorStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	count, err := reopened.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestVectorCodecRoundTrip(t *testing.T) {
	in := []float32{0, 1, -1, 0.5, 3.14159, -2.71828}
	out, err := decodeVector(encodeVector(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = decodeVector([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestCosineDistance(t *testing.T) {
	assert.InDelta(t, 0, cosineDistance([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 1, cosineDistance([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, 2, cosineDistance([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.InDelta(t, 1, cosineDistance([]float32{0, 0}, []float32{1, 0}), 1e-9)
}
