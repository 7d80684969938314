// Package cli wires the cobra command tree. Commands talk to the core
// exclusively through the driving ports; services are injected once at
// startup via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driving"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "rapor",
	Short: "Sosyal hizmet raporu üretim aracı",
	Long: `rapor indexes sample social-work reports, induces interview question
sets from them, runs the conversational interview, and synthesizes the
final narrative report with retrieval and learning context.`,
	SilenceUsage: true,
}

// Injected services. Nil services make the dependent commands fail with
// a clear error instead of panicking.
var (
	indexerService   driving.IndexerService
	searchService    driving.SearchService
	catalogService   driving.CatalogService
	inductionService driving.InductionService
	interviewService driving.InterviewService
	learningService  driving.LearningService
	configStore      driven.ConfigStore

	// watchSupports filters watcher events to extractable files.
	watchSupports func(path string) bool
)

// Services bundles everything the command tree needs.
type Services struct {
	Indexer       driving.IndexerService
	Search        driving.SearchService
	Catalog       driving.CatalogService
	Induction     driving.InductionService
	Interview     driving.InterviewService
	Learning      driving.LearningService
	Config        driven.ConfigStore
	WatchSupports func(path string) bool
}

// SetServices injects the service implementations used by the commands.
func SetServices(s Services) {
	indexerService = s.Indexer
	searchService = s.Search
	catalogService = s.Catalog
	inductionService = s.Induction
	interviewService = s.Interview
	learningService = s.Learning
	configStore = s.Config
	watchSupports = s.WatchSupports
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
