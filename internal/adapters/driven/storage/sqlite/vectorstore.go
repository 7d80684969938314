package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/kanca-labs/rapor-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
)

// Ensure VectorStore implements the interface.
var _ driven.VectorStore = (*VectorStore)(nil)

// DefaultCollection is the logical collection name for indexed report
// chunks.
const DefaultCollection = "report_chunks"

// VectorStore persists chunks and their embeddings in SQLite.
type VectorStore struct {
	db         *sql.DB
	path       string
	collection string
}

// NewVectorStore opens (or creates) the vector database under dataDir.
// If dataDir is empty, defaults to ~/.rapor/data.
func NewVectorStore(dataDir string) (*VectorStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".rapor", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "vectors.db")

	// WAL mode for better concurrency between index and search.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &VectorStore{
		db:         db,
		path:       dbPath,
		collection: DefaultCollection,
	}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// migrate runs all pending migrations.
func (s *VectorStore) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}
	return nil
}

// Upsert stores a chunk, replacing any existing chunk with the same ID.
func (s *VectorStore) Upsert(ctx context.Context, chunk domain.Chunk) error {
	metaJSON, err := json.Marshal(chunk.Meta)
	if err != nil {
		return fmt.Errorf("marshalling meta: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO chunks (id, text, embedding, meta)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			text = excluded.text,
			embedding = excluded.embedding,
			meta = excluded.meta
	`, chunk.ID, chunk.Text, encodeVector(chunk.Embedding), string(metaJSON))
	if err != nil {
		return fmt.Errorf("saving chunk: %w", err)
	}
	return nil
}

// Search scans the collection and returns the k nearest chunks by
// cosine distance, ascending.
func (s *VectorStore) Search(ctx context.Context, query []float32, k int) ([]domain.SearchHit, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, text, embedding, meta FROM chunks`)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	hits := []domain.SearchHit{}
	for rows.Next() {
		var (
			id, text, metaJSON string
			blob               []byte
		)
		if err := rows.Scan(&id, &text, &blob, &metaJSON); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}

		embedding, err := decodeVector(blob)
		if err != nil {
			return nil, fmt.Errorf("decoding embedding for %s: %w", id, err)
		}
		if len(embedding) != len(query) {
			continue // Indexed under a different embedding model.
		}

		var meta domain.ChunkMeta
		if err := json.Unmarshal([]byte(metaJSON), &meta); err != nil {
			return nil, fmt.Errorf("unmarshaling meta for %s: %w", id, err)
		}

		hits = append(hits, domain.SearchHit{
			ID:       id,
			Text:     text,
			Meta:     meta,
			Distance: cosineDistance(query, embedding),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunks: %w", err)
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	if k > 0 && len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// Delete removes a chunk by ID. Deleting a missing ID is not an error.
func (s *VectorStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM chunks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting chunk: %w", err)
	}
	return nil
}

// Clear drops every chunk in the collection.
func (s *VectorStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM chunks`); err != nil {
		return fmt.Errorf("clearing chunks: %w", err)
	}
	return nil
}

// Count returns the number of stored chunks.
func (s *VectorStore) Count(ctx context.Context) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chunks`)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting chunks: %w", err)
	}
	return count, nil
}

// CollectionName identifies the logical collection.
func (s *VectorStore) CollectionName() string {
	return s.collection
}

// Path returns the database file path.
func (s *VectorStore) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *VectorStore) Close() error {
	return s.db.Close()
}

// encodeVector packs a float32 vector into a little-endian blob.
func encodeVector(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// decodeVector unpacks a little-endian blob into a float32 vector.
func decodeVector(blob []byte) ([]float32, error) {
	if len(blob)%4 != 0 {
		return nil, fmt.Errorf("blob length %d not a multiple of 4", len(blob))
	}
	v := make([]float32, len(blob)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[i*4:]))
	}
	return v, nil
}

// cosineDistance returns 1 - cosine similarity. Zero vectors are treated
// as maximally distant.
func cosineDistance(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
