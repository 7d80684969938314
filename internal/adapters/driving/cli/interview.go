package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kanca-labs/rapor-cli/internal/adapters/driving/tui"
)

var (
	interviewTUI    bool
	interviewOutput string
)

var interviewCmd = &cobra.Command{
	Use:   "interview [report-type]",
	Short: "Run a conversational interview and generate the report",
	Long: `Starts an interview for the given report type, asking one question at a
time. When every question is answered, the narrative report is
synthesized with retrieval context from indexed sample documents and
learning context from past feedback.

During the interview:
  /durum        show progress
  /geri N metin replace answer N with the given text
  /iptal        abandon the session`,
	Args: cobra.ExactArgs(1),
	RunE: runInterview,
}

func init() {
	interviewCmd.Flags().BoolVar(&interviewTUI, "tui", false, "use the full-screen terminal interface")
	interviewCmd.Flags().StringVarP(&interviewOutput, "output", "o", "", "write the report to a file instead of stdout")
	rootCmd.AddCommand(interviewCmd)
}

func runInterview(cmd *cobra.Command, args []string) error {
	if interviewService == nil {
		return errors.New("interview service not configured")
	}

	if interviewTUI {
		return runInterviewTUI(cmd, args[0])
	}
	return runInterviewLoop(cmd, args[0])
}

func runInterviewTUI(cmd *cobra.Command, reportTypeID string) error {
	model, err := tui.NewInterviewModel(cmd.Context(), interviewService, reportTypeID, interviewOutput)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func runInterviewLoop(cmd *cobra.Command, reportTypeID string) error {
	ctx := cmd.Context()
	sessionID := uuid.NewString()

	start, err := interviewService.Start(ctx, reportTypeID, sessionID)
	if err != nil {
		return err
	}

	cmd.Println(start.Message)
	cmd.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		cmd.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF abandons the session cleanly.
			_, _ = interviewService.Reset(ctx, sessionID)
			return errors.New("interview aborted: input closed")
		}
		answer := strings.TrimSpace(line)

		if handled, err := handleInterviewCommand(cmd, sessionID, answer); handled {
			if err != nil {
				return err
			}
			continue
		}

		if answer == "" {
			cmd.Println("Boş cevap kaydedilmez; lütfen cevabınızı yazın.")
			continue
		}
		if len(strings.Fields(answer)) < 3 {
			cmd.Println("(Kısa cevap: daha fazla detay raporun kalitesini artırır.)")
		}

		result, err := interviewService.ProcessAnswer(ctx, sessionID, answer)
		if err != nil {
			return err
		}

		if !result.Completed {
			cmd.Printf("\nSoru %d/%d (%%%.0f):\n%s\n\n",
				result.QuestionNumber, result.TotalQuestions, result.Progress, result.NextQuestion)
			continue
		}

		cmd.Println("\nTüm sorular tamamlandı. Rapor oluşturuluyor...")
		report, err := interviewService.GenerateReport(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("report generation failed: %w", err)
		}

		if interviewOutput != "" {
			if err := os.WriteFile(interviewOutput, []byte(report.Content), 0600); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			cmd.Printf("Report written to %s (%d words).\n", interviewOutput, report.Metadata.WordCount)
		} else {
			cmd.Println()
			cmd.Println(report.Content)
			cmd.Println()
			cmd.Printf("(%d words, %d questions, took %s)\n",
				report.Metadata.WordCount, report.Metadata.QuestionsAnswered, report.Metadata.SessionDuration)
		}

		_, _ = interviewService.Reset(ctx, sessionID)
		return nil
	}
}

// handleInterviewCommand interprets slash commands inside the interview
// loop. Returns handled=false for ordinary answers.
func handleInterviewCommand(cmd *cobra.Command, sessionID, input string) (bool, error) {
	if !strings.HasPrefix(input, "/") {
		return false, nil
	}
	ctx := cmd.Context()

	switch {
	case input == "/durum":
		status, err := interviewService.Status(ctx, sessionID)
		if err != nil {
			return true, err
		}
		cmd.Printf("%s: soru %d/%d, ilerleme %%%.0f\n",
			status.ReportName, status.CurrentQuestion+1, status.TotalQuestions, status.Progress)
		return true, nil

	case input == "/iptal":
		_, _ = interviewService.Reset(ctx, sessionID)
		return true, errors.New("interview cancelled")

	case strings.HasPrefix(input, "/geri "):
		rest := strings.TrimPrefix(input, "/geri ")
		parts := strings.SplitN(rest, " ", 2)
		if len(parts) != 2 {
			cmd.Println("Kullanım: /geri N yeni cevap")
			return true, nil
		}
		var index int
		if _, err := fmt.Sscanf(parts[0], "%d", &index); err != nil {
			cmd.Println("Kullanım: /geri N yeni cevap")
			return true, nil
		}
		if err := interviewService.ReviseAnswer(ctx, sessionID, index-1, parts[1]); err != nil {
			cmd.Printf("Cevap güncellenemedi: %v\n", err)
			return true, nil
		}
		cmd.Printf("Cevap %d güncellendi.\n", index)
		return true, nil
	}

	cmd.Println("Bilinmeyen komut. Komutlar: /durum, /geri N metin, /iptal")
	return true, nil
}
