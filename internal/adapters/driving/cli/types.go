package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
)

var (
	typesCreateName      string
	typesCreateDesc      string
	typesCreateFrom      []string
	typesCreateQuestions []string
	typesOptimizeFrom    []string
	typesOptimizeApply   bool
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Manage the report-type catalog",
	Long: `Report types are reusable interview templates: an ordered question
list plus optional reference text from the documents they were induced
from. Built-in types are seeded on first run and can be edited or
replaced.`,
}

var typesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List report types",
	RunE:  runTypesList,
}

var typesShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a report type and its questions",
	Args:  cobra.ExactArgs(1),
	RunE:  runTypesShow,
}

var typesCreateCmd = &cobra.Command{
	Use:   "create [id]",
	Short: "Create a report type",
	Long: `Creates a report type either from explicit questions (--question, may
repeat) or by inducing questions from sample documents (--from, may
repeat). When inducing, the LLM derives an ordered question list from
the structure of the samples; on failure a deterministic default set
covering the detected categories is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runTypesCreate,
}

var typesOptimizeCmd = &cobra.Command{
	Use:   "optimize [id]",
	Short: "Optimize a report type's questions against sample documents",
	Long: `Re-induces questions from the sample documents and asks the LLM to
merge, dedupe and reorder them with the existing list. The result is
printed; pass --apply to save it.`,
	Args: cobra.ExactArgs(1),
	RunE: runTypesOptimize,
}

var typesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a report type",
	Args:  cobra.ExactArgs(1),
	RunE:  runTypesDelete,
}

func init() {
	typesCreateCmd.Flags().StringVar(&typesCreateName, "name", "", "display name (defaults to the induced suggestion)")
	typesCreateCmd.Flags().StringVar(&typesCreateDesc, "description", "", "one-line description")
	typesCreateCmd.Flags().StringArrayVar(&typesCreateFrom, "from", nil, "sample document to induce questions from (repeatable)")
	typesCreateCmd.Flags().StringArrayVar(&typesCreateQuestions, "question", nil, "explicit interview question (repeatable)")

	typesOptimizeCmd.Flags().StringArrayVar(&typesOptimizeFrom, "from", nil, "sample document to induce against (repeatable)")
	typesOptimizeCmd.Flags().BoolVar(&typesOptimizeApply, "apply", false, "save the optimized question list")

	typesCmd.AddCommand(typesListCmd)
	typesCmd.AddCommand(typesShowCmd)
	typesCmd.AddCommand(typesCreateCmd)
	typesCmd.AddCommand(typesOptimizeCmd)
	typesCmd.AddCommand(typesDeleteCmd)
	rootCmd.AddCommand(typesCmd)
}

func runTypesList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	types, err := catalogService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing report types: %w", err)
	}

	if len(types) == 0 {
		cmd.Println("No report types defined.")
		return nil
	}

	for _, rt := range types {
		cmd.Printf("%-24s %s (%d questions)\n", rt.ID, rt.Name, rt.QuestionCount())
	}
	return nil
}

func runTypesShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	rt, err := catalogService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	cmd.Printf("ID:          %s\n", rt.ID)
	cmd.Printf("Name:        %s\n", rt.Name)
	if rt.Description != "" {
		cmd.Printf("Description: %s\n", rt.Description)
	}
	cmd.Printf("Created:     %s\n", rt.CreatedAt.Format(time.RFC3339))
	cmd.Println("Questions:")
	for i, q := range rt.Questions {
		cmd.Printf("  %2d. %s\n", i+1, q)
	}
	return nil
}

func runTypesCreate(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	id := args[0]
	rt := domain.ReportType{
		ID:          id,
		Name:        typesCreateName,
		Description: typesCreateDesc,
		Questions:   typesCreateQuestions,
	}

	if len(typesCreateFrom) > 0 {
		if inductionService == nil {
			return errors.New("induction service not configured")
		}

		cmd.Printf("Analyzing %d document(s)...\n", len(typesCreateFrom))
		induced, err := inductionService.InduceQuestions(cmd.Context(), typesCreateFrom, typesCreateName)
		if err != nil {
			return fmt.Errorf("question induction failed: %w", err)
		}

		rt.Questions = induced.Questions
		rt.KnowledgeBase = induced.SourceText
		if rt.Name == "" {
			rt.Name = induced.ReportTypeSuggestion
		}
		if induced.Fallback {
			cmd.Println("Note: LLM reply was unusable; default question set used.")
		}
	}

	if rt.Name == "" {
		rt.Name = id
	}

	if err := catalogService.Create(cmd.Context(), rt); err != nil {
		return fmt.Errorf("creating report type: %w", err)
	}

	cmd.Printf("Created %s with %d questions.\n", rt.ID, len(rt.Questions))
	for i, q := range rt.Questions {
		cmd.Printf("  %2d. %s\n", i+1, q)
	}
	return nil
}

func runTypesOptimize(cmd *cobra.Command, args []string) error {
	if catalogService == nil || inductionService == nil {
		return errors.New("catalog or induction service not configured")
	}
	if len(typesOptimizeFrom) == 0 {
		return errors.New("at least one --from document is required")
	}

	rt, err := catalogService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	optimized, err := inductionService.OptimizeQuestions(cmd.Context(), rt.Questions, typesOptimizeFrom)
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}

	cmd.Println("Optimized questions:")
	for i, q := range optimized.Questions {
		cmd.Printf("  %2d. %s\n", i+1, q)
	}
	if len(optimized.ChangesMade) > 0 {
		cmd.Println("Changes:")
		for _, c := range optimized.ChangesMade {
			cmd.Printf("  - %s\n", c)
		}
	}

	if !typesOptimizeApply {
		cmd.Println("\nRun again with --apply to save.")
		return nil
	}

	rt.Questions = optimized.Questions
	if err := catalogService.Create(cmd.Context(), *rt); err != nil {
		return fmt.Errorf("saving optimized questions: %w", err)
	}
	cmd.Printf("Saved %s with %d questions.\n", rt.ID, len(rt.Questions))
	return nil
}

func runTypesDelete(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	if err := catalogService.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}

	cmd.Printf("Deleted %s.\n", args[0])
	return nil
}
