package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
)

var (
	feedbackKind     string
	feedbackType     string
	feedbackComments string
	feedbackOriginal string
	feedbackRevised  string
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Record feedback on generated reports",
	Long: `Feedback drives the learning loop: revisions are diffed against the
original to detect improvement categories, and every fifth feedback
triggers insight aggregation. Insights flow back into future synthesis
prompts as learning context.`,
}

var feedbackAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a feedback record",
	Long: `Records feedback on a generated report. --original and --revised take
file paths; when a revision differs from the original, the improvement
categories are detected automatically.`,
	RunE: runFeedbackAdd,
}

var feedbackStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show feedback statistics",
	RunE:  runFeedbackStats,
}

func init() {
	feedbackAddCmd.Flags().StringVar(&feedbackKind, "kind", "neutral", "feedback kind: positive, neutral or negative")
	feedbackAddCmd.Flags().StringVar(&feedbackType, "type", "", "report type the feedback applies to")
	feedbackAddCmd.Flags().StringVar(&feedbackComments, "comments", "", "free-text comments")
	feedbackAddCmd.Flags().StringVar(&feedbackOriginal, "original", "", "path to the generated report")
	feedbackAddCmd.Flags().StringVar(&feedbackRevised, "revised", "", "path to the user-revised report")

	feedbackCmd.AddCommand(feedbackAddCmd)
	feedbackCmd.AddCommand(feedbackStatsCmd)
	rootCmd.AddCommand(feedbackCmd)
}

func runFeedbackAdd(cmd *cobra.Command, _ []string) error {
	if learningService == nil {
		return errors.New("learning service not configured")
	}

	fb := domain.Feedback{
		ReportTypeID: feedbackType,
		Kind:         domain.FeedbackKind(feedbackKind),
		Comments:     feedbackComments,
	}

	if feedbackOriginal != "" {
		data, err := os.ReadFile(feedbackOriginal)
		if err != nil {
			return fmt.Errorf("reading original report: %w", err)
		}
		fb.Original = string(data)
	}
	if feedbackRevised != "" {
		data, err := os.ReadFile(feedbackRevised)
		if err != nil {
			return fmt.Errorf("reading revised report: %w", err)
		}
		fb.Revised = string(data)
	}

	id, err := learningService.SaveFeedback(cmd.Context(), fb)
	if err != nil {
		return fmt.Errorf("saving feedback: %w", err)
	}

	cmd.Printf("Feedback #%d saved.\n", id)
	return nil
}

func runFeedbackStats(cmd *cobra.Command, _ []string) error {
	if learningService == nil {
		return errors.New("learning service not configured")
	}

	stats, err := learningService.Statistics(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading statistics: %w", err)
	}

	cmd.Printf("Total feedback:    %d\n", stats.TotalFeedbacks)
	cmd.Printf("Positive feedback: %d\n", stats.PositiveFeedbacks)
	cmd.Printf("Positive rate:     %.1f%%\n", stats.ImprovementRate)
	if len(stats.Latest) > 0 {
		cmd.Println("Recent:")
		for _, fb := range stats.Latest {
			cmd.Printf("  #%d %s [%s] %s\n", fb.ID, fb.Timestamp.Format("2006-01-02"), fb.Kind, fb.ReportTypeID)
		}
	}
	return nil
}
