package repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hakimdiab/seamnote/internal/config"
	"github.com/hakimdiab/seamnote/internal/db"
	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/pkg/errs"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	cfg := config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "test.db"),
	}
	conn, err := db.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.ApplyMigrations(conn, cfg.Driver))
	return NewDB(conn, cfg.Driver)
}

func createTestSession(t *testing.T, database *DB, code string) *model.InterviewSession {
	t.Helper()
	session := &model.InterviewSession{
		ID:              "sess-" + code,
		ParticipantCode: code,
		RoleLevel:       model.RoleOperational,
		LanguagePref:    "en",
		Status:          model.SessionStatusActive,
		Ctime:           time.Now().Unix(),
	}
	require.NoError(t, NewSessionRepo(database).Create(context.Background(), session))
	return session
}

func TestFieldNoteEmbeddingRoundTrip(t *testing.T) {
	database := newTestDB(t)
	session := createTestSession(t, database, "P-AAAA11")
	notes := NewFieldNoteRepo(database)

	note := &model.FieldNote{
		ID:              "note-1",
		SessionID:       session.ID,
		OriginalText:    "the schedule slips every week",
		AnonymizedText:  "the schedule slips every week",
		PrimaryCategory: "time_management",
		Tags:            []string{"schedule", "delays"},
		Confidence:      70,
		Language:        "en",
		Ctime:           time.Now().Unix(),
	}
	require.NoError(t, notes.Create(context.Background(), note))

	missing, err := notes.ListMissingEmbedding(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, missing, 1)
	require.Equal(t, "note-1", missing[0].ID)

	embedding := []float32{0.25, -1.5, 3}
	require.NoError(t, notes.SetEmbedding(context.Background(), "note-1", embedding))

	stored, err := notes.GetByID(context.Background(), "note-1")
	require.NoError(t, err)
	require.Equal(t, embedding, stored.Embedding)
	require.Equal(t, []string{"schedule", "delays"}, stored.Tags)
	require.Nil(t, stored.ClusterID)

	missing, err = notes.ListMissingEmbedding(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, missing)
}

func TestFieldNoteSetClusterID(t *testing.T) {
	database := newTestDB(t)
	session := createTestSession(t, database, "P-BBBB22")
	notes := NewFieldNoteRepo(database)

	note := &model.FieldNote{
		ID:             "note-2",
		SessionID:      session.ID,
		OriginalText:   "x",
		AnonymizedText: "x",
		Language:       "en",
		Ctime:          time.Now().Unix(),
	}
	require.NoError(t, notes.Create(context.Background(), note))

	clusterID := 3
	require.NoError(t, notes.SetClusterID(context.Background(), "note-2", &clusterID))
	stored, err := notes.GetByID(context.Background(), "note-2")
	require.NoError(t, err)
	require.NotNil(t, stored.ClusterID)
	require.Equal(t, 3, *stored.ClusterID)

	require.NoError(t, notes.SetClusterID(context.Background(), "note-2", nil))
	stored, err = notes.GetByID(context.Background(), "note-2")
	require.NoError(t, err)
	require.Nil(t, stored.ClusterID)
}

func TestFieldNoteGetMissing(t *testing.T) {
	database := newTestDB(t)
	notes := NewFieldNoteRepo(database)
	_, err := notes.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSessionCreateConflict(t *testing.T) {
	database := newTestDB(t)
	createTestSession(t, database, "P-CCCC33")

	dup := &model.InterviewSession{
		ID:              "sess-other",
		ParticipantCode: "P-CCCC33",
		RoleLevel:       model.RoleOperational,
		LanguagePref:    "en",
		Status:          model.SessionStatusActive,
		Ctime:           time.Now().Unix(),
	}
	err := NewSessionRepo(database).Create(context.Background(), dup)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestClusterRunLatest(t *testing.T) {
	database := newTestDB(t)
	runs := NewClusterRunRepo(database)

	_, err := runs.Latest(context.Background())
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, runs.Create(context.Background(), &model.ClusterRun{
		ID: "run-1", RanAt: 100, SessionCount: 2, Result: `[]`,
	}))
	require.NoError(t, runs.Create(context.Background(), &model.ClusterRun{
		ID: "run-2", RanAt: 200, SessionCount: 3, Result: `[{"cluster_id":0}]`,
	}))

	latest, err := runs.Latest(context.Background())
	require.NoError(t, err)
	require.Equal(t, "run-2", latest.ID)
	require.Equal(t, 3, latest.SessionCount)
}
