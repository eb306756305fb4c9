package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hakimdiab/seamnote/internal/ai"
	"github.com/hakimdiab/seamnote/internal/pkg/errs"
	"github.com/hakimdiab/seamnote/internal/repo"
	"github.com/hakimdiab/seamnote/internal/seam"
)

// SummaryService turns a session's anonymized notes into a consultant
// diagnostic brief. Only anonymized text reaches the oracle.
type SummaryService struct {
	sessions *repo.SessionRepo
	notes    *repo.FieldNoteRepo
	oracle   ai.IChatOracle
}

func NewSummaryService(sessions *repo.SessionRepo, notes *repo.FieldNoteRepo, oracle ai.IChatOracle) *SummaryService {
	return &SummaryService{sessions: sessions, notes: notes, oracle: oracle}
}

// Generate builds and stores the brief for one session, returning the
// markdown text.
func (s *SummaryService) Generate(ctx context.Context, sessionID string) (string, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return "", err
	}
	notes, err := s.notes.ListBySession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if len(notes) == 0 {
		return "", errs.ErrNoFieldNotes
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Interview session (role level: %s, department: %s)\n\nField notes:\n", session.RoleLevel, session.Department)
	for i, note := range notes {
		category := note.PrimaryCategory
		if category == "" {
			category = "uncategorized"
		}
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, category, note.AnonymizedText)
		if len(note.Tags) > 0 {
			fmt.Fprintf(&b, "   tags: %s\n", strings.Join(note.Tags, ", "))
		}
	}

	summary, err := s.oracle.Chat(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: seam.SummarySystemPrompt},
		{Role: ai.RoleUser, Content: b.String()},
	})
	if err != nil {
		return "", err
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", errs.ErrNoSummary
	}
	if err := s.sessions.SetSummary(ctx, sessionID, summary); err != nil {
		return "", err
	}
	return summary, nil
}

// GetOrGenerate returns the stored brief, generating it on first access.
func (s *SummaryService) GetOrGenerate(ctx context.Context, sessionID string) (string, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if session.Summary != "" {
		return session.Summary, nil
	}
	return s.Generate(ctx, sessionID)
}
