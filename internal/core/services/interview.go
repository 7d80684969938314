package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driving"
	"github.com/kanca-labs/rapor-cli/internal/logger"
)

// Ensure InterviewService implements the interface.
var _ driving.InterviewService = (*InterviewService)(nil)

const (
	// retrievalTopK is the number of sample-report chunks pulled into the
	// synthesis prompt as additional context.
	retrievalTopK = 3

	// expandedReportThreshold is the combined answer length below which
	// the expanded synthesis template is used, so thin transcripts still
	// yield a full report.
	expandedReportThreshold = 600
)

// InterviewService is the conversational interview engine. It snapshots a
// report type's question list into a session, records answers one at a
// time, and synthesizes the final report once every question is answered.
//
// All session mutation happens under a single coarse mutex. Interviews
// are human-paced; contention is not a concern, losing an answer is.
type InterviewService struct {
	types       driven.ReportTypeStore
	sessions    driven.SessionStore
	synthesizer *Synthesizer
	search      driving.SearchService
	learning    driving.LearningService

	mu sync.Mutex
}

// NewInterviewService creates an interview engine. search and learning
// are optional; when nil the synthesis prompt simply omits the
// corresponding blocks.
func NewInterviewService(types driven.ReportTypeStore, sessions driven.SessionStore, synthesizer *Synthesizer, search driving.SearchService, learning driving.LearningService) *InterviewService {
	return &InterviewService{
		types:       types,
		sessions:    sessions,
		synthesizer: synthesizer,
		search:      search,
		learning:    learning,
	}
}

// Start creates a session for the given report type and returns the
// opening message with the first question.
func (s *InterviewService) Start(ctx context.Context, reportTypeID, sessionID string) (*driving.StartResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, err := s.types.Get(ctx, reportTypeID)
	if err != nil {
		return nil, fmt.Errorf("start interview: %w", err)
	}
	if rt.QuestionCount() == 0 {
		return nil, fmt.Errorf("start interview: report type %q has no questions", reportTypeID)
	}

	session := &domain.Session{
		ID:                sessionID,
		ReportTypeID:      rt.ID,
		ReportName:        rt.Name,
		ReportDescription: rt.Description,
		KnowledgeBase:     rt.KnowledgeBase,
		Questions:         append([]string(nil), rt.Questions...),
		StartedAt:         time.Now(),
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	logger.Info("Started interview %s (%s, %d questions)", sessionID, rt.ID, len(session.Questions))

	var msg strings.Builder
	fmt.Fprintf(&msg, "%s hazırlamaya başlıyoruz.", rt.Name)
	if rt.Description != "" {
		fmt.Fprintf(&msg, "\n%s", rt.Description)
	}
	fmt.Fprintf(&msg, "\n\nSize %d soru soracağım.\n\nSoru 1: %s",
		len(session.Questions), session.Questions[0])
	message := msg.String()

	return &driving.StartResult{
		Message:        message,
		QuestionNumber: 1,
		TotalQuestions: len(session.Questions),
		Progress:       0,
	}, nil
}

// ProcessAnswer records the answer to the current question and advances
// the cursor by exactly one.
func (s *InterviewService) ProcessAnswer(ctx context.Context, sessionID, answer string) (*driving.AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, domain.ErrSessionCompleted
	}

	session.Answers = append(session.Answers, domain.Answer{
		Question:   session.Questions[session.Current],
		Text:       strings.TrimSpace(answer),
		AnsweredAt: time.Now(),
	})
	session.Current++
	session.Completed = session.Current == len(session.Questions)

	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	result := &driving.AnswerResult{
		Completed:      session.Completed,
		TotalQuestions: len(session.Questions),
		Progress:       session.Progress(),
	}
	if !session.Completed {
		result.NextQuestion = session.CurrentQuestion()
		result.QuestionNumber = session.Current + 1
	}
	logger.Debug("Session %s: answered %d/%d", sessionID, session.Current, len(session.Questions))
	return result, nil
}

// ReviseAnswer replaces the text of an already-given answer without
// moving the cursor.
func (s *InterviewService) ReviseAnswer(ctx context.Context, sessionID string, index int, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(session.Answers) {
		return fmt.Errorf("revise answer %d of %d: %w", index, len(session.Answers), domain.ErrInvalidAnswerIndex)
	}

	session.Answers[index].Text = strings.TrimSpace(answer)
	session.Answers[index].AnsweredAt = time.Now()
	if err := s.sessions.Put(ctx, session); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// GenerateReport synthesizes the narrative report from a completed
// session. Retrieval and learning context are best-effort: failures there
// are logged and the report is generated without the block.
func (s *InterviewService) GenerateReport(ctx context.Context, sessionID string) (*domain.GeneratedReport, error) {
	s.mu.Lock()
	session, err := s.sessions.Get(ctx, sessionID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if !session.Completed {
		return nil, domain.ErrSessionNotCompleted
	}

	contextBlock := s.retrievalContext(ctx, session)
	learningBlock := s.learningContext(ctx, session.ReportTypeID)

	answeredLen := 0
	for _, a := range session.Answers {
		answeredLen += len(a.Text)
	}
	expanded := answeredLen < expandedReportThreshold

	return s.synthesizer.Synthesize(ctx, session, contextBlock, learningBlock, expanded)
}

// Status returns a read-only session view.
func (s *InterviewService) Status(ctx context.Context, sessionID string) (*driving.SessionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return &driving.SessionStatus{Exists: false}, nil
		}
		return nil, err
	}
	return &driving.SessionStatus{
		Exists:          true,
		ReportTypeID:    session.ReportTypeID,
		ReportName:      session.ReportName,
		CurrentQuestion: session.Current,
		TotalQuestions:  len(session.Questions),
		Progress:        session.Progress(),
		Completed:       session.Completed,
		AnswersCount:    len(session.Answers),
	}, nil
}

// Reset deletes the session.
func (s *InterviewService) Reset(ctx context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Delete(ctx, sessionID)
}

// retrievalContext searches the embedding index with the concatenated
// answers and renders the top hits as a context block. Empty when no
// search service is wired or nothing matches.
func (s *InterviewService) retrievalContext(ctx context.Context, session *domain.Session) string {
	if s.search == nil {
		return ""
	}

	var parts []string
	for _, a := range session.Answers {
		if a.Text != "" {
			parts = append(parts, a.Text)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	hits, err := s.search.Search(ctx, strings.Join(parts, " "), retrievalTopK)
	if err != nil || len(hits) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, hit := range hits {
		fmt.Fprintf(&sb, "[Örnek %d - %s]\n%s\n\n", i+1, hit.Meta.SourceFile, hit.Text)
	}
	logger.Debug("Retrieval context: %d hits, %d chars", len(hits), sb.Len())
	return strings.TrimSpace(sb.String())
}

// learningContext pulls the feedback-derived guidance block.
func (s *InterviewService) learningContext(ctx context.Context, reportTypeID string) string {
	if s.learning == nil {
		return ""
	}
	block, err := s.learning.LearningContext(ctx, reportTypeID)
	if err != nil {
		logger.Warn("learning context unavailable: %v", err)
		return ""
	}
	return block
}
