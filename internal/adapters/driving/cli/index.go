package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kanca-labs/rapor-cli/internal/core/ports/driving"
	"github.com/kanca-labs/rapor-cli/internal/watcher"
)

var (
	indexChunkSize int
	indexOverlap   int
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the sample-document index",
	Long: `Index sample reports into the embedding index so interviews can pull
similar passages as retrieval context and inductions have material to
learn from.`,
}

var indexFileCmd = &cobra.Command{
	Use:   "file [path]",
	Short: "Index a single document",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndexFile,
}

var indexDirCmd = &cobra.Command{
	Use:   "dir [path]",
	Short: "Index every supported document in a directory",
	Long: `Indexes every supported file directly under the directory
(non-recursive). Per-file failures are reported at the end; the run
never aborts early.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndexDir,
}

var indexWatchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Watch a directory and index changes as they happen",
	Long: `Watches the directory and re-indexes files as they are created or
modified. Stops on Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndexWatch,
}

var indexStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	RunE:  runIndexStats,
}

var indexClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every indexed chunk",
	RunE:  runIndexClear,
}

func init() {
	for _, cmd := range []*cobra.Command{indexFileCmd, indexDirCmd} {
		cmd.Flags().IntVar(&indexChunkSize, "chunk-size", 0, "chunk size in characters (0 = default)")
		cmd.Flags().IntVar(&indexOverlap, "overlap", 0, "chunk overlap in characters (0 = default)")
	}

	indexCmd.AddCommand(indexFileCmd)
	indexCmd.AddCommand(indexDirCmd)
	indexCmd.AddCommand(indexWatchCmd)
	indexCmd.AddCommand(indexStatsCmd)
	indexCmd.AddCommand(indexClearCmd)
	rootCmd.AddCommand(indexCmd)
}

func indexOptions() driving.IndexOptions {
	return driving.IndexOptions{ChunkSize: indexChunkSize, Overlap: indexOverlap}
}

func runIndexFile(cmd *cobra.Command, args []string) error {
	if indexerService == nil {
		return errors.New("indexer service not configured")
	}

	chunks, err := indexerService.IndexFile(cmd.Context(), args[0], indexOptions())
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	cmd.Printf("Indexed %s: %d chunks stored\n", args[0], chunks)
	return nil
}

func runIndexDir(cmd *cobra.Command, args []string) error {
	if indexerService == nil {
		return errors.New("indexer service not configured")
	}

	report, err := indexerService.IndexDirectory(cmd.Context(), args[0], indexOptions())
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	cmd.Printf("Files found:     %d\n", report.TotalFiles)
	cmd.Printf("Files processed: %d\n", report.ProcessedFiles)
	cmd.Printf("Chunks stored:   %d\n", report.TotalChunks)
	if len(report.FailedFiles) > 0 {
		cmd.Println("Failed files:")
		for _, f := range report.FailedFiles {
			cmd.Printf("  - %s\n", f)
		}
	}
	return nil
}

func runIndexWatch(cmd *cobra.Command, args []string) error {
	if indexerService == nil {
		return errors.New("indexer service not configured")
	}

	w, err := watcher.New(args[0], watchSupports)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", args[0])
	for change := range w.Watch(ctx) {
		switch change.Type {
		case watcher.ChangeCreated, watcher.ChangeUpdated:
			chunks, err := indexerService.IndexFile(ctx, change.Path, indexOptions())
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				cmd.Printf("  %s: indexing failed: %v\n", change.Path, err)
				continue
			}
			cmd.Printf("  %s: %d chunks\n", change.Path, chunks)
		case watcher.ChangeDeleted:
			// Chunk IDs carry random suffixes, so stale chunks from a
			// deleted file cannot be removed individually here.
			cmd.Printf("  %s: removed (re-run 'index clear' and 'index dir' to rebuild)\n", change.Path)
		}
	}
	return nil
}

func runIndexStats(cmd *cobra.Command, _ []string) error {
	if indexerService == nil {
		return errors.New("indexer service not configured")
	}

	stats, err := indexerService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	cmd.Printf("Collection: %s\n", stats.CollectionName)
	cmd.Printf("Documents:  %d\n", stats.DocumentCount)
	cmd.Printf("Storage:    %s\n", stats.StoragePath)
	return nil
}

func runIndexClear(cmd *cobra.Command, _ []string) error {
	if indexerService == nil {
		return errors.New("indexer service not configured")
	}

	if err := indexerService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	cmd.Println("Index cleared.")
	return nil
}
