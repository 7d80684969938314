package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	analyzeJSON     bool
	deepAnalyzeName string
	deepAnalyzeJSON bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Classify the structure of a sample document",
	Long: `Extracts the document text and classifies which of the ten social-work
topical categories it covers, plus key themes and complexity.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var deepAnalyzeCmd = &cobra.Command{
	Use:   "deep-analyze [files...]",
	Short: "Run the five-axis structural assessment over sample reports",
	Long: `Performs a deep structural assessment over a set of sample reports:
report structure and methodology, content and scope, professional
approach, output characteristics, and target context.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDeepAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output as JSON")
	deepAnalyzeCmd.Flags().StringVar(&deepAnalyzeName, "name", "Genel Değerlendirme", "report type name the samples belong to")
	deepAnalyzeCmd.Flags().BoolVar(&deepAnalyzeJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(deepAnalyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if inductionService == nil {
		return errors.New("induction service not configured")
	}

	analysis, err := inductionService.AnalyzeStructure(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Suggested type: %s\n", analysis.ReportTypeSuggestion)
	cmd.Printf("Complexity:     %s\n", analysis.Complexity)
	cmd.Printf("Text length:    %d characters\n", analysis.TextLength)
	if analysis.TargetPopulation != "" {
		cmd.Printf("Population:     %s\n", analysis.TargetPopulation)
	}
	cmd.Printf("Categories:     %s\n", strings.Join(analysis.Categories, ", "))
	cmd.Printf("Themes:         %s\n", strings.Join(analysis.KeyThemes, ", "))
	return nil
}

func runDeepAnalyze(cmd *cobra.Command, args []string) error {
	if inductionService == nil {
		return errors.New("induction service not configured")
	}

	analysis, err := inductionService.DeepAnalyze(cmd.Context(), args, deepAnalyzeName)
	if err != nil {
		return fmt.Errorf("deep analysis failed: %w", err)
	}

	if deepAnalyzeJSON {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("[Structure]")
	cmd.Printf("  Sections:    %s\n", strings.Join(analysis.ReportStructure.Sections, ", "))
	cmd.Printf("  Methodology: %s\n", analysis.ReportStructure.Methodology)
	cmd.Println("[Content]")
	cmd.Printf("  Focus areas: %s\n", strings.Join(analysis.ContentAnalysis.PrimaryFocusAreas, ", "))
	cmd.Printf("  Risks:       %s\n", strings.Join(analysis.ContentAnalysis.RiskFactors, ", "))
	cmd.Println("[Approach]")
	cmd.Printf("  Theories:    %s\n", strings.Join(analysis.ProfessionalApproach.TheoriesUsed, ", "))
	cmd.Printf("  Terminology: %s\n", analysis.ProfessionalApproach.TerminologyLevel)
	cmd.Println("[Output]")
	cmd.Printf("  Conclusions: %s\n", analysis.OutputCharacteristics.ConclusionStyle)
	cmd.Printf("  Action plan: %s\n", analysis.OutputCharacteristics.ActionPlanApproach)
	cmd.Println("[Context]")
	cmd.Printf("  Audience:    %s\n", analysis.TargetContext.TargetAudience)
	cmd.Printf("  Legal:       %s\n", analysis.TargetContext.LegalRequirements)
	return nil
}
