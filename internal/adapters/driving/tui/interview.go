// Package tui implements the full-screen interview interface following
// the Elm architecture.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kanca-labs/rapor-cli/internal/adapters/driving/tui/styles"
	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driving"
)

// phase tracks which screen the interview model is showing.
type phase int

const (
	phaseAnswering phase = iota
	phaseGenerating
	phaseReport
	phaseError
)

// Messages produced by service calls.
type (
	answerRecordedMsg struct{ result *driving.AnswerResult }
	reportReadyMsg    struct{ report *domain.GeneratedReport }
	serviceErrMsg     struct{ err error }
)

// InterviewModel is the tea.Model for the interview flow: one question
// at a time with a textarea, a progress bar, a spinner while the report
// generates, and a viewport for the finished report.
type InterviewModel struct {
	ctx       context.Context
	service   driving.InterviewService
	sessionID string
	output    string

	styles   *styles.Styles
	answer   textarea.Model
	progress progress.Model
	spin     spinner.Model
	report   viewport.Model

	phase      phase
	reportName string
	question   string
	questionNo int
	totalCount int
	percent    float64
	hint       string
	generated  *domain.GeneratedReport
	err        error

	width  int
	height int
	ready  bool
}

// Ensure InterviewModel implements tea.Model.
var _ tea.Model = (*InterviewModel)(nil)

// NewInterviewModel starts a session for the report type and builds the
// model showing its first question.
func NewInterviewModel(ctx context.Context, service driving.InterviewService, reportTypeID, output string) (*InterviewModel, error) {
	if service == nil {
		return nil, fmt.Errorf("interview service is required")
	}

	sessionID := fmt.Sprintf("tui-%s", reportTypeID)
	start, err := service.Start(ctx, reportTypeID, sessionID)
	if err != nil {
		return nil, err
	}

	st := styles.NewStyles(nil)

	ta := textarea.New()
	ta.Placeholder = "Cevabınızı yazın..."
	ta.ShowLineNumbers = false
	ta.SetHeight(5)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &InterviewModel{
		ctx:        ctx,
		service:    service,
		sessionID:  sessionID,
		output:     output,
		styles:     st,
		answer:     ta,
		progress:   progress.New(progress.WithDefaultGradient()),
		spin:       sp,
		report:     viewport.New(80, 20),
		phase:      phaseAnswering,
		question:   lastLine(start.Message),
		questionNo: start.QuestionNumber,
		totalCount: start.TotalQuestions,
		percent:    start.Progress / 100,
	}
	m.reportName = firstLine(start.Message)
	return m, nil
}

// Init implements tea.Model.
func (m *InterviewModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *InterviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.answer.SetWidth(msg.Width - 4)
		m.progress.Width = msg.Width - 4
		m.report.Width = msg.Width - 4
		m.report.Height = msg.Height - 6
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case answerRecordedMsg:
		result := msg.result
		m.percent = result.Progress / 100
		if result.Completed {
			m.phase = phaseGenerating
			return m, tea.Batch(m.spin.Tick, m.generateReport())
		}
		m.question = result.NextQuestion
		m.questionNo = result.QuestionNumber
		m.answer.Reset()
		m.answer.Focus()
		return m, nil

	case reportReadyMsg:
		m.generated = msg.report
		m.phase = phaseReport
		m.report.SetContent(msg.report.Content)
		if m.output != "" {
			if err := os.WriteFile(m.output, []byte(msg.report.Content), 0600); err != nil {
				m.hint = fmt.Sprintf("Dosyaya yazılamadı: %v", err)
			} else {
				m.hint = fmt.Sprintf("Rapor %s dosyasına kaydedildi.", m.output)
			}
		}
		return m, nil

	case serviceErrMsg:
		m.err = msg.err
		m.phase = phaseError
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseGenerating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		model, cmd := m.progress.Update(msg)
		if p, ok := model.(progress.Model); ok {
			m.progress = p
		}
		return m, cmd
	}

	if m.phase == phaseAnswering {
		var cmd tea.Cmd
		m.answer, cmd = m.answer.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *InterviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		// In the answer phase "q" is ordinary input.
		if m.phase != phaseAnswering {
			return m, tea.Quit
		}
	case "esc":
		if m.phase == phaseAnswering || m.phase == phaseError {
			return m, tea.Quit
		}
	case "ctrl+s", "ctrl+d":
		if m.phase == phaseAnswering {
			return m.submitAnswer()
		}
	}

	switch m.phase {
	case phaseAnswering:
		var cmd tea.Cmd
		m.answer, cmd = m.answer.Update(msg)
		return m, cmd
	case phaseReport:
		var cmd tea.Cmd
		m.report, cmd = m.report.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *InterviewModel) submitAnswer() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.answer.Value())
	if text == "" {
		m.hint = "Boş cevap kaydedilmez."
		return m, nil
	}
	if len(strings.Fields(text)) < 3 {
		// Accepted anyway; short answers just weaken the report.
		m.hint = "Kısa cevap: daha fazla detay raporun kalitesini artırır."
	} else {
		m.hint = ""
	}

	m.answer.Blur()
	return m, func() tea.Msg {
		result, err := m.service.ProcessAnswer(m.ctx, m.sessionID, text)
		if err != nil {
			return serviceErrMsg{err: err}
		}
		return answerRecordedMsg{result: result}
	}
}

func (m *InterviewModel) generateReport() tea.Cmd {
	return func() tea.Msg {
		report, err := m.service.GenerateReport(m.ctx, m.sessionID)
		if err != nil {
			return serviceErrMsg{err: err}
		}
		return reportReadyMsg{report: report}
	}
}

// View implements tea.Model.
func (m *InterviewModel) View() string {
	if !m.ready {
		return "Yükleniyor..."
	}

	switch m.phase {
	case phaseGenerating:
		return fmt.Sprintf("\n  %s Rapor oluşturuluyor...\n\n  %s\n",
			m.spin.View(),
			m.styles.Muted.Render("Bu işlem bir dakikadan uzun sürebilir."))

	case phaseReport:
		var b strings.Builder
		b.WriteString(m.styles.Title.Render("Rapor hazır"))
		if m.generated != nil {
			b.WriteString(m.styles.Muted.Render(
				fmt.Sprintf("  (%d kelime)", m.generated.Metadata.WordCount)))
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Border.Render(m.report.View()))
		b.WriteString("\n")
		if m.hint != "" {
			b.WriteString(m.styles.Success.Render(m.hint))
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Help.Render("↑/↓ kaydır · q çıkış"))
		return b.String()

	case phaseError:
		return fmt.Sprintf("\n  %s\n\n  %s\n",
			m.styles.Error.Render(fmt.Sprintf("Hata: %v", m.err)),
			m.styles.Help.Render("esc/q çıkış"))
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.reportName))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Soru %d/%d", m.questionNo, m.totalCount)))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.percent))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Question.Render(m.question))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Border.Render(m.answer.View()))
	b.WriteString("\n")
	if m.hint != "" {
		b.WriteString(m.styles.Error.Render(m.hint))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("ctrl+s cevabı kaydet · esc çıkış"))
	return b.String()
}

// firstLine returns text up to the first newline.
func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return text
}

// lastLine returns the text after the final newline, which in the start
// message is the first question.
func lastLine(text string) string {
	if i := strings.LastIndexByte(strings.TrimRight(text, "\n"), '\n'); i >= 0 {
		return strings.TrimSpace(text[i+1:])
	}
	return text
}
