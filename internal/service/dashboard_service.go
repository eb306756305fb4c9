package service

import (
	"context"
	"math"
	"sort"

	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/repo"
	"github.com/hakimdiab/seamnote/internal/seam"
)

// DashboardService backs the consultant views: session lists, per-session
// detail and cross-session analytics.
type DashboardService struct {
	sessions *repo.SessionRepo
	messages *repo.MessageRepo
	notes    *repo.FieldNoteRepo
}

func NewDashboardService(sessions *repo.SessionRepo, messages *repo.MessageRepo, notes *repo.FieldNoteRepo) *DashboardService {
	return &DashboardService{sessions: sessions, messages: messages, notes: notes}
}

// SessionOverview is one session-list row with the counts the dashboard
// table shows next to it.
type SessionOverview struct {
	model.InterviewSession
	MessageCount   int  `json:"message_count"`
	FieldNoteCount int  `json:"field_notes_count"`
	HasSummary     bool `json:"has_summary"`
}

func (s *DashboardService) ListSessions(ctx context.Context, status, department string) ([]SessionOverview, error) {
	sessions, err := s.sessions.List(ctx, status, department)
	if err != nil {
		return nil, err
	}
	messageCounts, err := s.messages.CountPerSession(ctx)
	if err != nil {
		return nil, err
	}
	noteCounts, err := s.notes.CountPerSession(ctx)
	if err != nil {
		return nil, err
	}
	overviews := make([]SessionOverview, 0, len(sessions))
	for _, session := range sessions {
		overviews = append(overviews, SessionOverview{
			InterviewSession: session,
			MessageCount:     messageCounts[session.ID],
			FieldNoteCount:   noteCounts[session.ID],
			HasSummary:       session.Summary != "",
		})
	}
	return overviews, nil
}

type SessionDetail struct {
	Session    *model.InterviewSession `json:"session"`
	FieldNotes []model.FieldNote       `json:"field_notes"`
	TurnCount  int                     `json:"turn_count"`
}

func (s *DashboardService) SessionDetail(ctx context.Context, sessionID string) (*SessionDetail, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	notes, err := s.notes.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	turns, err := s.messages.CountBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &SessionDetail{Session: session, FieldNotes: notes, TurnCount: turns}, nil
}

func (s *DashboardService) Conversation(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.messages.ListBySession(ctx, sessionID)
}

type CategoryStat struct {
	Key           string  `json:"key"`
	NameEN        string  `json:"name_en"`
	NameAR        string  `json:"name_ar"`
	NoteCount     int     `json:"note_count"`
	Percentage    float64 `json:"percentage"`
	AvgConfidence float64 `json:"avg_confidence"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

const topTagLimit = 15

type Analytics struct {
	TotalSessions     int            `json:"total_sessions"`
	ActiveSessions    int            `json:"active_sessions"`
	CompletedSessions int            `json:"completed_sessions"`
	TotalNotes        int            `json:"total_notes"`
	Uncategorized     int            `json:"uncategorized_notes"`
	Categories        []CategoryStat `json:"categories"`
	TopTags           []TagCount     `json:"top_tags"`
}

// Analytics aggregates note counts per taxonomy category across all
// sessions. Categories stay in interview order, including empty ones.
// Percentages are over categorized notes only, rounded to one decimal.
func (s *DashboardService) Analytics(ctx context.Context) (*Analytics, error) {
	active, err := s.sessions.CountByStatus(ctx, model.SessionStatusActive)
	if err != nil {
		return nil, err
	}
	completed, err := s.sessions.CountByStatus(ctx, model.SessionStatusCompleted)
	if err != nil {
		return nil, err
	}
	cancelled, err := s.sessions.CountByStatus(ctx, model.SessionStatusCancelled)
	if err != nil {
		return nil, err
	}
	notes, err := s.notes.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	confidenceSums := map[string]int{}
	tagCounts := map[string]int{}
	uncategorized := 0
	for _, note := range notes {
		if note.PrimaryCategory == "" {
			uncategorized++
			continue
		}
		counts[note.PrimaryCategory]++
		confidenceSums[note.PrimaryCategory] += note.Confidence
		for _, tag := range note.Tags {
			tagCounts[tag]++
		}
	}
	categorized := len(notes) - uncategorized

	stats := make([]CategoryStat, 0, seam.CategoryCount)
	for _, key := range seam.CategoryOrder {
		cat := seam.CategoryByKey(key)
		stat := CategoryStat{Key: key, NameEN: cat.NameEN, NameAR: cat.NameAR, NoteCount: counts[key]}
		if stat.NoteCount > 0 {
			stat.AvgConfidence = float64(confidenceSums[key]) / float64(stat.NoteCount)
			stat.Percentage = roundTenth(float64(stat.NoteCount) / float64(categorized) * 100)
		}
		stats = append(stats, stat)
	}

	return &Analytics{
		TotalSessions:     active + completed + cancelled,
		ActiveSessions:    active,
		CompletedSessions: completed,
		TotalNotes:        len(notes),
		Uncategorized:     uncategorized,
		Categories:        stats,
		TopTags:           topTags(tagCounts, topTagLimit),
	}, nil
}

// topTags ranks tags by count, most frequent first, ties broken
// alphabetically so the ranking is stable across runs.
func topTags(tagCounts map[string]int, limit int) []TagCount {
	ranked := make([]TagCount, 0, len(tagCounts))
	for tag, count := range tagCounts {
		ranked = append(ranked, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Tag < ranked[j].Tag
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
