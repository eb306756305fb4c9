package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/repo"
	"github.com/hakimdiab/seamnote/internal/seam"
)

type dashboardFixture struct {
	svc      *DashboardService
	sessions *repo.SessionRepo
	messages *repo.MessageRepo
	notes    *repo.FieldNoteRepo
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()
	database := newTestDB(t)
	sessions := repo.NewSessionRepo(database)
	messages := repo.NewMessageRepo(database)
	notes := repo.NewFieldNoteRepo(database)
	return &dashboardFixture{
		svc:      NewDashboardService(sessions, messages, notes),
		sessions: sessions,
		messages: messages,
		notes:    notes,
	}
}

func (f *dashboardFixture) addSession(t *testing.T, department, status, summary string) string {
	t.Helper()
	session := &model.InterviewSession{
		ID:              newID(),
		ParticipantCode: newParticipantCode(),
		Department:      department,
		RoleLevel:       model.RoleOperational,
		LanguagePref:    "en",
		Status:          status,
		Summary:         summary,
		Ctime:           time.Now().Unix(),
	}
	require.NoError(t, f.sessions.Create(context.Background(), session))
	return session.ID
}

func (f *dashboardFixture) addNote(t *testing.T, sessionID, category string, tags []string) {
	t.Helper()
	require.NoError(t, f.notes.Create(context.Background(), &model.FieldNote{
		ID:              newID(),
		SessionID:       sessionID,
		OriginalText:    "original",
		AnonymizedText:  "anonymized",
		PrimaryCategory: category,
		Tags:            tags,
		Confidence:      70,
		Language:        "en",
		Ctime:           time.Now().UnixNano(),
	}))
}

func (f *dashboardFixture) addMessage(t *testing.T, sessionID string) {
	t.Helper()
	require.NoError(t, f.messages.Create(context.Background(), &model.ChatMessage{
		ID:        newID(),
		SessionID: sessionID,
		Role:      model.MessageRoleParticipant,
		Content:   "hello",
		Language:  "en",
		Ctime:     time.Now().UnixNano(),
	}))
}

func TestListSessionsFiltersAndCounts(t *testing.T) {
	f := newDashboardFixture(t)
	opsID := f.addSession(t, "Operations", model.SessionStatusCompleted, "a brief")
	hrID := f.addSession(t, "HR", model.SessionStatusActive, "")
	f.addMessage(t, opsID)
	f.addMessage(t, opsID)
	f.addNote(t, opsID, seam.KeyTimeManagement, nil)

	all, err := f.svc.ListSessions(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	ops, err := f.svc.ListSessions(context.Background(), "", "Operations")
	require.NoError(t, err)
	require.Len(t, ops, 1)
	require.Equal(t, opsID, ops[0].ID)
	require.Equal(t, 2, ops[0].MessageCount)
	require.Equal(t, 1, ops[0].FieldNoteCount)
	require.True(t, ops[0].HasSummary)

	active, err := f.svc.ListSessions(context.Background(), model.SessionStatusActive, "")
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, hrID, active[0].ID)
	require.Zero(t, active[0].MessageCount)
	require.Zero(t, active[0].FieldNoteCount)
	require.False(t, active[0].HasSummary)
}

func TestAnalyticsPercentagesAndTags(t *testing.T) {
	f := newDashboardFixture(t)
	sessionID := f.addSession(t, "Operations", model.SessionStatusActive, "")
	f.addNote(t, sessionID, seam.KeyTimeManagement, []string{"excessive_meetings", "time_waste"})
	f.addNote(t, sessionID, seam.KeyTimeManagement, []string{"excessive_meetings"})
	f.addNote(t, sessionID, seam.KeyWorkingConditions, []string{"poor_tools"})
	// Uncategorized notes count in totals but not in percentages.
	f.addNote(t, sessionID, "", nil)

	analytics, err := f.svc.Analytics(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, analytics.TotalNotes)
	require.Equal(t, 1, analytics.Uncategorized)

	byKey := map[string]CategoryStat{}
	for _, stat := range analytics.Categories {
		byKey[stat.Key] = stat
	}
	require.Equal(t, 66.7, byKey[seam.KeyTimeManagement].Percentage)
	require.Equal(t, 33.3, byKey[seam.KeyWorkingConditions].Percentage)
	require.Zero(t, byKey[seam.KeyWorkOrganization].Percentage)

	require.Equal(t, []TagCount{
		{Tag: "excessive_meetings", Count: 2},
		{Tag: "poor_tools", Count: 1},
		{Tag: "time_waste", Count: 1},
	}, analytics.TopTags)
}

func TestTopTagsCapAndOrder(t *testing.T) {
	counts := map[string]int{}
	for i := 0; i < 20; i++ {
		counts[fmt.Sprintf("tag_%02d", i)] = i + 1
	}
	ranked := topTags(counts, topTagLimit)
	require.Len(t, ranked, topTagLimit)
	require.Equal(t, TagCount{Tag: "tag_19", Count: 20}, ranked[0])
	require.Equal(t, TagCount{Tag: "tag_05", Count: 6}, ranked[topTagLimit-1])
	for i := 1; i < len(ranked); i++ {
		require.GreaterOrEqual(t, ranked[i-1].Count, ranked[i].Count)
	}
}
