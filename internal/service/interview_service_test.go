package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hakimdiab/seamnote/internal/config"
	"github.com/hakimdiab/seamnote/internal/db"
	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/nlp"
	"github.com/hakimdiab/seamnote/internal/pkg/errs"
	"github.com/hakimdiab/seamnote/internal/repo"
	"github.com/hakimdiab/seamnote/internal/seam"
)

func newTestDB(t *testing.T) *repo.DB {
	t.Helper()
	cfg := config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "test.db"),
	}
	conn, err := db.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.ApplyMigrations(conn, cfg.Driver))
	return repo.NewDB(conn, cfg.Driver)
}

func newTestInterviewService(t *testing.T, oracle *fakeChatOracle) (*InterviewService, *repo.FieldNoteRepo) {
	t.Helper()
	database := newTestDB(t)
	notes := repo.NewFieldNoteRepo(database)
	detector := nlp.NewDetectorWithFallback(func(string) (nlp.Language, bool) { return "", false })
	categorizerOracle := &fakeChatOracle{replies: []string{
		`{"primary_category": "time_management", "confidence": 80}`,
	}}
	svc := NewInterviewService(
		repo.NewSessionRepo(database),
		repo.NewMessageRepo(database),
		notes,
		detector,
		nlp.NewAnonymizer(nil),
		NewCategorizerService(categorizerOracle),
		oracle,
	)
	return svc, notes
}

func TestStartCreatesActiveSession(t *testing.T) {
	svc, _ := newTestInterviewService(t, &fakeChatOracle{})
	result, err := svc.Start(context.Background(), StartRequest{Department: "Operations", RoleLevel: model.RoleManagerial})
	require.NoError(t, err)
	require.Equal(t, model.SessionStatusActive, result.Session.Status)
	require.Equal(t, 0, result.Session.CategoryIndex)
	require.True(t, strings.HasPrefix(result.Session.ParticipantCode, "P-"))
	require.NotEmpty(t, result.Greeting)

	firstQuestion, _ := seam.OpeningQuestion(seam.CategoryOrder[0])
	require.Contains(t, result.Greeting, firstQuestion.EN)
}

func TestStartRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestInterviewService(t, &fakeChatOracle{})
	_, err := svc.Start(context.Background(), StartRequest{RoleLevel: "intern"})
	require.ErrorIs(t, err, errs.ErrInvalid)
}

func TestMessageSubstantiveTurnCreatesFieldNote(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{"Thanks for sharing. Could you give an example?"}}
	svc, notes := newTestInterviewService(t, oracle)
	started, err := svc.Start(context.Background(), StartRequest{})
	require.NoError(t, err)

	result, err := svc.Message(context.Background(), started.Session.ID,
		"The monthly planning meeting always overruns and nothing gets decided")
	require.NoError(t, err)
	require.NotEmpty(t, result.FieldNoteID)
	require.Equal(t, "Thanks for sharing. Could you give an example?", result.Reply)
	require.Equal(t, 0, result.CategoryIndex)
	require.False(t, result.Completed)

	stored, err := notes.ListBySession(context.Background(), started.Session.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, "time_management", stored[0].PrimaryCategory)
}

func TestMessageDismissiveTurnSkipsFieldNote(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{"No problem, take your time."}}
	svc, notes := newTestInterviewService(t, oracle)
	started, err := svc.Start(context.Background(), StartRequest{})
	require.NoError(t, err)

	result, err := svc.Message(context.Background(), started.Session.ID, "i don't know anything about that")
	require.NoError(t, err)
	require.Empty(t, result.FieldNoteID)

	stored, err := notes.ListBySession(context.Background(), started.Session.ID)
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestMessageAdvanceMarkerMovesCategory(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{
		"Great insights. Let's talk about your workspace next. How do you find the physical conditions? " + seam.AdvanceMarker,
	}}
	svc, _ := newTestInterviewService(t, oracle)
	started, err := svc.Start(context.Background(), StartRequest{})
	require.NoError(t, err)

	result, err := svc.Message(context.Background(), started.Session.ID,
		"We never hear what the strategy means for our daily work")
	require.NoError(t, err)
	require.Equal(t, 1, result.CategoryIndex)
	require.False(t, result.Completed)
	require.NotContains(t, result.Reply, seam.AdvanceMarker)

	session, err := svc.Get(context.Background(), started.Session.ID)
	require.NoError(t, err)
	require.Equal(t, 1, session.CategoryIndex)
}

func TestMessageEmptyReplyAfterAdvanceSynthesizesBridge(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{seam.AdvanceMarker}}
	svc, _ := newTestInterviewService(t, oracle)
	started, err := svc.Start(context.Background(), StartRequest{})
	require.NoError(t, err)

	result, err := svc.Message(context.Background(), started.Session.ID,
		"Everything about the strategy is decided far away from us")
	require.NoError(t, err)
	require.Equal(t, 1, result.CategoryIndex)

	next, _ := seam.OpeningQuestion(seam.CategoryOrder[1])
	require.Contains(t, result.Reply, next.EN)
}

func TestMessageEmptyReplySynthesizesContinuation(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{"   "}}
	svc, _ := newTestInterviewService(t, oracle)
	started, err := svc.Start(context.Background(), StartRequest{})
	require.NoError(t, err)

	result, err := svc.Message(context.Background(), started.Session.ID,
		"There is a lot to say about how plans reach the floor")
	require.NoError(t, err)
	require.NotEmpty(t, result.Reply)
	require.Equal(t, seam.ContinuationPrompt("en"), result.Reply)
}

func TestMessageReplacesEmDash(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{"Interesting—tell me more"}}
	svc, _ := newTestInterviewService(t, oracle)
	started, err := svc.Start(context.Background(), StartRequest{})
	require.NoError(t, err)

	result, err := svc.Message(context.Background(), started.Session.ID,
		"The tools we use every day are outdated and slow")
	require.NoError(t, err)
	require.NotContains(t, result.Reply, "—")
	require.Equal(t, "Interesting, tell me more", result.Reply)
}

func TestMessageOracleFailureTwiceApologizesWithoutStateChange(t *testing.T) {
	oracle := &fakeChatOracle{errs: []error{errors.New("timeout"), errors.New("timeout")}}
	svc, _ := newTestInterviewService(t, oracle)
	started, err := svc.Start(context.Background(), StartRequest{})
	require.NoError(t, err)

	result, err := svc.Message(context.Background(), started.Session.ID,
		"Our team keeps redoing work because priorities flip weekly")
	require.NoError(t, err)
	require.Equal(t, 2, oracle.calls)
	require.Equal(t, seam.ApologyMessage("en"), result.Reply)
	require.Equal(t, 0, result.CategoryIndex)

	session, err := svc.Get(context.Background(), started.Session.ID)
	require.NoError(t, err)
	require.Equal(t, 0, session.CategoryIndex)
	require.Equal(t, model.SessionStatusActive, session.Status)
}

func TestMessageOracleFailureOnceRecovers(t *testing.T) {
	oracle := &fakeChatOracle{
		errs:    []error{errors.New("blip"), nil},
		replies: []string{"", "Could you walk me through a typical day?"},
	}
	svc, _ := newTestInterviewService(t, oracle)
	started, err := svc.Start(context.Background(), StartRequest{})
	require.NoError(t, err)

	result, err := svc.Message(context.Background(), started.Session.ID,
		"The schedule changes every single day without notice")
	require.NoError(t, err)
	require.Equal(t, "Could you walk me through a typical day?", result.Reply)
}

func TestInterviewCompletesAfterLastCategory(t *testing.T) {
	replies := make([]string, seam.CategoryCount)
	for i := range replies {
		replies[i] = "Understood, moving on. " + seam.AdvanceMarker
	}
	oracle := &fakeChatOracle{replies: replies}
	svc, _ := newTestInterviewService(t, oracle)
	started, err := svc.Start(context.Background(), StartRequest{})
	require.NoError(t, err)

	var last *TurnResult
	for i := 0; i < seam.CategoryCount; i++ {
		last, err = svc.Message(context.Background(), started.Session.ID,
			"Here is yet another detailed answer about our organization")
		require.NoError(t, err)
	}
	require.True(t, last.Completed)
	require.Equal(t, seam.CategoryCount, last.CategoryIndex)

	session, err := svc.Get(context.Background(), started.Session.ID)
	require.NoError(t, err)
	require.Equal(t, model.SessionStatusCompleted, session.Status)
	require.NotZero(t, session.CompletedAt)

	_, err = svc.Message(context.Background(), started.Session.ID, "one more thing")
	require.ErrorIs(t, err, errs.ErrSessionFinished)
}

func TestCompletionHooksRun(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{"Done. " + seam.AdvanceMarker}}
	svc, _ := newTestInterviewService(t, oracle)
	started, err := svc.Start(context.Background(), StartRequest{})
	require.NoError(t, err)

	var hooked *model.InterviewSession
	svc.AddCompletionHook(func(_ context.Context, session *model.InterviewSession) {
		hooked = session
	})

	_, err = svc.End(context.Background(), started.Session.ID)
	require.NoError(t, err)
	require.NotNil(t, hooked)
	require.Equal(t, model.SessionStatusCompleted, hooked.Status)
}

func TestEndFinishedSessionFails(t *testing.T) {
	svc, _ := newTestInterviewService(t, &fakeChatOracle{})
	started, err := svc.Start(context.Background(), StartRequest{})
	require.NoError(t, err)

	_, err = svc.End(context.Background(), started.Session.ID)
	require.NoError(t, err)
	_, err = svc.End(context.Background(), started.Session.ID)
	require.ErrorIs(t, err, errs.ErrSessionFinished)
}

func TestGetByParticipantCode(t *testing.T) {
	svc, _ := newTestInterviewService(t, &fakeChatOracle{})
	started, err := svc.Start(context.Background(), StartRequest{Department: "HR"})
	require.NoError(t, err)

	found, err := svc.GetByParticipantCode(context.Background(), started.Session.ParticipantCode)
	require.NoError(t, err)
	require.Equal(t, started.Session.ID, found.ID)

	_, err = svc.GetByParticipantCode(context.Background(), "P-NOPE42")
	require.ErrorIs(t, err, errs.ErrNotFound)
}
