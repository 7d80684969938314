package domain

// DocumentTypeReport is the document type recorded for indexed report chunks.
const DocumentTypeReport = "social_service_report"

// ChunkMeta describes where an indexed chunk came from.
type ChunkMeta struct {
	// SourceFile is the base name of the originating file.
	SourceFile string `json:"source_file"`

	// FilePath is the full path the file was indexed from.
	FilePath string `json:"file_path"`

	// ChunkIndex is the ordinal position within the source document.
	ChunkIndex int `json:"chunk_index"`

	// TotalChunks is the number of chunks the source document produced.
	TotalChunks int `json:"total_chunks"`

	// FileSize is the source file size in bytes.
	FileSize int64 `json:"file_size"`

	// DocumentType classifies the source document.
	DocumentType string `json:"document_type"`

	// CharCount and WordCount describe the chunk text. Filled in by the
	// embedding index when the chunk is stored.
	CharCount int `json:"char_count"`
	WordCount int `json:"word_count"`
}

// Chunk is the unit of vector-index storage: a bounded, overlapping
// substring of a source document plus its embedding.
type Chunk struct {
	// ID is unique per chunk, derived from the source file name, chunk
	// index and a random suffix.
	ID string `json:"id"`

	// Text is the chunk content.
	Text string `json:"text"`

	// Embedding is the vector representation. Its dimension is constant
	// across the whole index, fixed by the embedding model.
	Embedding []float32 `json:"-"`

	// Meta describes the chunk's origin.
	Meta ChunkMeta `json:"meta"`
}

// SearchHit is one nearest-neighbour result from the embedding index.
// Smaller Distance means more similar.
type SearchHit struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Meta     ChunkMeta `json:"meta"`
	Distance float64   `json:"distance"`
}

// IndexStats summarises the state of the embedding index.
type IndexStats struct {
	DocumentCount  int    `json:"document_count"`
	CollectionName string `json:"collection_name"`
	StoragePath    string `json:"storage_path"`
}

// IndexReport is the outcome of a directory-wide indexing run. A per-file
// failure is recorded in FailedFiles; the run itself never aborts early.
type IndexReport struct {
	TotalFiles     int      `json:"total_files"`
	ProcessedFiles int      `json:"processed_files"`
	TotalChunks    int      `json:"total_chunks"`
	FailedFiles    []string `json:"failed_files"`
}
