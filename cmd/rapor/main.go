// Command rapor is the social-work report assistant: it indexes sample
// reports, induces interview question sets from them, runs the
// conversational interview, and synthesizes the final narrative report.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kanca-labs/rapor-cli/internal/adapters/driven/config/file"
	geminiembed "github.com/kanca-labs/rapor-cli/internal/adapters/driven/embedding/gemini"
	ollamaembed "github.com/kanca-labs/rapor-cli/internal/adapters/driven/embedding/ollama"
	"github.com/kanca-labs/rapor-cli/internal/adapters/driven/extractor"
	geminillm "github.com/kanca-labs/rapor-cli/internal/adapters/driven/llm/gemini"
	ollamallm "github.com/kanca-labs/rapor-cli/internal/adapters/driven/llm/ollama"
	"github.com/kanca-labs/rapor-cli/internal/adapters/driven/storage/memory"
	"github.com/kanca-labs/rapor-cli/internal/adapters/driven/storage/sqlite"
	"github.com/kanca-labs/rapor-cli/internal/adapters/driving/cli"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
	"github.com/kanca-labs/rapor-cli/internal/core/services"
	"github.com/kanca-labs/rapor-cli/internal/logger"
)

// version is overridden at build time via
// -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rapor: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if os.Getenv("RAPOR_DEBUG") != "" {
		logger.SetVerbose(true)
	}

	// File-backed stores under ~/.rapor.
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	promptStore, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("opening prompt store: %w", err)
	}
	reportTypeStore, err := file.NewReportTypeStore("")
	if err != nil {
		return fmt.Errorf("opening report type store: %w", err)
	}
	feedbackStore, err := file.NewFeedbackStore("")
	if err != nil {
		return fmt.Errorf("opening feedback store: %w", err)
	}

	vectorStore, err := sqlite.NewVectorStore(configStore.GetString("index.data_dir"))
	if err != nil {
		return fmt.Errorf("opening vector store: %w", err)
	}
	defer vectorStore.Close()

	llm, embedder := buildProviders(configStore)

	registry := extractor.NewDefaultRegistry()
	index := services.NewEmbeddingIndex(embedder, vectorStore)
	indexer := services.NewIndexerService(registry, index)
	induction := services.NewInductionService(registry, llm, promptStore)
	catalog := services.NewCatalogService(reportTypeStore)
	learning := services.NewLearningService(feedbackStore, llm, promptStore)
	synthesizer := services.NewSynthesizer(llm, promptStore)
	interview := services.NewInterviewService(
		reportTypeStore, memory.NewSessionStore(), synthesizer, index, learning)

	// Seed the built-in report types; user edits are never overwritten.
	if err := catalog.EnsureDefaults(context.Background()); err != nil {
		logger.Warn("seeding default report types: %v", err)
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Indexer:   indexer,
		Search:    index,
		Catalog:   catalog,
		Induction: induction,
		Interview: interview,
		Learning:  learning,
		Config:    configStore,
		WatchSupports: func(path string) bool {
			return registry.Supports(filepath.Ext(path))
		},
	})

	return cli.Execute()
}

// buildProviders selects the LLM and embedding backends from
// configuration. Gemini is the default; llm.provider=ollama switches to
// a local Ollama instance. A missing Gemini API key leaves the LLM nil:
// indexing and catalog management still work, generation commands fail
// with a clear error.
func buildProviders(cfg driven.ConfigStore) (driven.LLMService, driven.EmbeddingService) {
	provider := cfg.GetString("llm.provider")
	if provider == "ollama" {
		llm := ollamallm.NewLLMService(ollamallm.LLMConfig{
			BaseURL: cfg.GetString("ollama.base_url"),
			Model:   cfg.GetString("ollama.llm_model"),
		})
		embedder := ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL: cfg.GetString("ollama.base_url"),
			Model:   cfg.GetString("ollama.embedding_model"),
		})
		return llm, embedder
	}

	apiKey := cfg.GetString("gemini.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		logger.Warn("no Gemini API key configured; run 'rapor config set-key'")
		return nil, nil
	}

	llm := geminillm.NewLLMService(geminillm.LLMConfig{
		APIKey: apiKey,
		Model:  cfg.GetString("gemini.llm_model"),
	})
	embedder := geminiembed.NewEmbeddingService(geminiembed.Config{
		APIKey: apiKey,
		Model:  cfg.GetString("gemini.embedding_model"),
	})
	return llm, embedder
}
