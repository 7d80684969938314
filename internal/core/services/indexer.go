package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/kanca-labs/rapor-cli/internal/chunker"
	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driving"
	"github.com/kanca-labs/rapor-cli/internal/logger"
)

// Ensure IndexerService implements the interface.
var _ driving.IndexerService = (*IndexerService)(nil)

// IndexerService extracts sample documents, splits them into overlapping
// chunks and feeds them to the embedding index.
type IndexerService struct {
	extractor driven.TextExtractor
	index     *EmbeddingIndex
}

// NewIndexerService creates a new document indexer.
func NewIndexerService(extractor driven.TextExtractor, index *EmbeddingIndex) *IndexerService {
	return &IndexerService{
		extractor: extractor,
		index:     index,
	}
}

// IndexFile extracts, chunks and stores one file. Returns the number of
// chunks successfully stored. Extraction failures and zero-chunk results
// are hard errors; individual embedding failures only lower the count.
func (s *IndexerService) IndexFile(ctx context.Context, path string, opts driving.IndexOptions) (int, error) {
	logger.Section("Index File")
	logger.Debug("Path: %s", path)

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}

	extraction, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("extract %s: %w", path, err)
	}

	ck := chunker.New(
		chunker.WithChunkSize(opts.ChunkSize),
		chunker.WithOverlap(opts.Overlap),
	)
	pieces := ck.Split(extraction.Text)
	if len(pieces) == 0 {
		return 0, fmt.Errorf("chunk %s: %w", path, domain.ErrEmptyDocument)
	}
	logger.Debug("Produced %d chunks (size=%d overlap=%d)", len(pieces), ck.ChunkSize(), ck.Overlap())

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	chunks := make([]domain.Chunk, len(pieces))
	for i, text := range pieces {
		chunks[i] = domain.Chunk{
			ID:   fmt.Sprintf("%s_chunk_%d_%s", stem, i, uuid.NewString()[:8]),
			Text: text,
			Meta: domain.ChunkMeta{
				SourceFile:   filepath.Base(path),
				FilePath:     path,
				ChunkIndex:   i,
				TotalChunks:  len(pieces),
				FileSize:     info.Size(),
				DocumentType: domain.DocumentTypeReport,
			},
		}
	}

	added := s.index.AddBatch(ctx, chunks)
	logger.Info("Indexed %d/%d chunks from %s", added, len(chunks), filepath.Base(path))
	return added, nil
}

// IndexDirectory indexes every supported file directly under dir. A
// per-file failure is logged and recorded in FailedFiles; the run always
// completes. A file that produces zero stored chunks counts as failed.
func (s *IndexerService) IndexDirectory(ctx context.Context, dir string, opts driving.IndexOptions) (*domain.IndexReport, error) {
	logger.Section("Index Directory")
	logger.Debug("Directory: %s", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if s.extractor.Supports(filepath.Ext(entry.Name())) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	logger.Debug("Found %d supported files", len(paths))

	report := &domain.IndexReport{
		TotalFiles:  len(paths),
		FailedFiles: []string{},
	}

	for _, path := range paths {
		added, err := s.IndexFile(ctx, path, opts)
		if err != nil || added == 0 {
			logger.Warn("Index %s failed: %v", path, err)
			report.FailedFiles = append(report.FailedFiles, path)
			continue
		}
		report.ProcessedFiles++
		report.TotalChunks += added
	}

	logger.Info("Directory done: %d/%d files, %d chunks, %d failed",
		report.ProcessedFiles, report.TotalFiles, report.TotalChunks, len(report.FailedFiles))
	return report, nil
}

// Stats reports the embedding index state.
func (s *IndexerService) Stats(ctx context.Context) (domain.IndexStats, error) {
	return s.index.Stats(ctx)
}

// Delete removes one indexed chunk by ID.
func (s *IndexerService) Delete(ctx context.Context, id string) error {
	return s.index.Delete(ctx, id)
}

// Clear drops every indexed chunk.
func (s *IndexerService) Clear(ctx context.Context) error {
	return s.index.Clear(ctx)
}
