package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/didi/gendry/builder"
	"github.com/pgvector/pgvector-go"

	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/pkg/dbutil"
	"github.com/hakimdiab/seamnote/internal/pkg/errs"
)

type FieldNoteRepo struct {
	db *DB
}

func NewFieldNoteRepo(db *DB) *FieldNoteRepo {
	return &FieldNoteRepo{db: db}
}

// fieldNoteRow carries the storage form of the json-encoded columns.
type fieldNoteRow struct {
	ID                string         `db:"id"`
	SessionID         string         `db:"session_id"`
	OriginalText      string         `db:"original_text"`
	AnonymizedText    string         `db:"anonymized_text"`
	PrimaryCategory   string         `db:"primary_category"`
	SecondaryCategory string         `db:"secondary_category"`
	Tags              string         `db:"tags"`
	Confidence        int            `db:"confidence"`
	ClusterID         *int           `db:"cluster_id"`
	Embedding         sql.NullString `db:"embedding"`
	Language          string         `db:"language"`
	Ctime             int64          `db:"ctime"`
}

func fieldNoteColumns() []string {
	return []string{
		"id", "session_id", "original_text", "anonymized_text", "primary_category",
		"secondary_category", "tags", "confidence", "cluster_id", "embedding",
		"language", "ctime",
	}
}

func (r *FieldNoteRepo) Create(ctx context.Context, note *model.FieldNote) error {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return err
	}
	embedding, err := r.encodeEmbedding(note.Embedding)
	if err != nil {
		return err
	}
	sqlStr := `
		INSERT INTO field_notes (id, session_id, original_text, anonymized_text, primary_category,
			secondary_category, tags, confidence, cluster_id, embedding, language, ctime)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	args := []interface{}{
		note.ID,
		note.SessionID,
		note.OriginalText,
		note.AnonymizedText,
		note.PrimaryCategory,
		note.SecondaryCategory,
		tags,
		note.Confidence,
		note.ClusterID,
		embedding,
		note.Language,
		note.Ctime,
	}
	_, err = r.db.ExecContext(ctx, dbutil.Rebind(r.db.Driver, sqlStr), args...)
	return err
}

func (r *FieldNoteRepo) GetByID(ctx context.Context, id string) (*model.FieldNote, error) {
	sqlStr, args, err := builder.BuildSelect("field_notes", map[string]interface{}{"id": id}, fieldNoteColumns())
	if err != nil {
		return nil, err
	}
	var row fieldNoteRow
	err = r.db.GetContext(ctx, &row, dbutil.Rebind(r.db.Driver, sqlStr), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.toModel(&row)
}

func (r *FieldNoteRepo) ListBySession(ctx context.Context, sessionID string) ([]model.FieldNote, error) {
	return r.list(ctx, map[string]interface{}{"session_id": sessionID, "_orderby": "ctime asc, id asc"})
}

func (r *FieldNoteRepo) ListAll(ctx context.Context) ([]model.FieldNote, error) {
	return r.list(ctx, map[string]interface{}{"_orderby": "ctime asc, id asc"})
}

// ListMissingEmbedding feeds the backfill job.
func (r *FieldNoteRepo) ListMissingEmbedding(ctx context.Context, limit uint) ([]model.FieldNote, error) {
	sqlStr := `
		SELECT id, session_id, original_text, anonymized_text, primary_category,
			secondary_category, tags, confidence, cluster_id, embedding, language, ctime
		FROM field_notes
		WHERE embedding IS NULL
		ORDER BY ctime ASC, id ASC
	`
	args := make([]interface{}, 0, 1)
	if limit > 0 {
		sqlStr += " LIMIT ?"
		args = append(args, limit)
	}
	rows := make([]fieldNoteRow, 0)
	if err := r.db.SelectContext(ctx, &rows, dbutil.Rebind(r.db.Driver, sqlStr), args...); err != nil {
		return nil, err
	}
	items := make([]model.FieldNote, 0, len(rows))
	for i := range rows {
		item, err := r.toModel(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *FieldNoteRepo) list(ctx context.Context, where map[string]interface{}) ([]model.FieldNote, error) {
	sqlStr, args, err := builder.BuildSelect("field_notes", where, fieldNoteColumns())
	if err != nil {
		return nil, err
	}
	rows := make([]fieldNoteRow, 0)
	if err := r.db.SelectContext(ctx, &rows, dbutil.Rebind(r.db.Driver, sqlStr), args...); err != nil {
		return nil, err
	}
	items := make([]model.FieldNote, 0, len(rows))
	for i := range rows {
		item, err := r.toModel(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *FieldNoteRepo) SetEmbedding(ctx context.Context, id string, embedding []float32) error {
	encoded, err := r.encodeEmbedding(embedding)
	if err != nil {
		return err
	}
	sqlStr, args, err := builder.BuildUpdate("field_notes",
		map[string]interface{}{"id": id},
		map[string]interface{}{"embedding": encoded})
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, dbutil.Rebind(r.db.Driver, sqlStr), args...)
	return err
}

func (r *FieldNoteRepo) SetClusterID(ctx context.Context, id string, clusterID *int) error {
	sqlStr, args, err := builder.BuildUpdate("field_notes",
		map[string]interface{}{"id": id},
		map[string]interface{}{"cluster_id": clusterID})
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, dbutil.Rebind(r.db.Driver, sqlStr), args...)
	return err
}

func (r *FieldNoteRepo) CountPerSession(ctx context.Context) (map[string]int, error) {
	sqlStr := `SELECT session_id, COUNT(*) AS cnt FROM field_notes GROUP BY session_id`
	rows := make([]sessionCount, 0)
	if err := r.db.SelectContext(ctx, &rows, sqlStr); err != nil {
		return nil, err
	}
	return countsBySession(rows), nil
}

func (r *FieldNoteRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM field_notes`); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *FieldNoteRepo) toModel(row *fieldNoteRow) (*model.FieldNote, error) {
	tags, err := decodeTags(row.Tags)
	if err != nil {
		return nil, fmt.Errorf("decode tags of note %s: %w", row.ID, err)
	}
	embedding, err := r.decodeEmbedding(row.Embedding)
	if err != nil {
		return nil, fmt.Errorf("decode embedding of note %s: %w", row.ID, err)
	}
	return &model.FieldNote{
		ID:                row.ID,
		SessionID:         row.SessionID,
		OriginalText:      row.OriginalText,
		AnonymizedText:    row.AnonymizedText,
		PrimaryCategory:   row.PrimaryCategory,
		SecondaryCategory: row.SecondaryCategory,
		Tags:              tags,
		Confidence:        row.Confidence,
		ClusterID:         row.ClusterID,
		Embedding:         embedding,
		Language:          row.Language,
		Ctime:             row.Ctime,
	}, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeTags(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// Postgres stores embeddings in a pgvector column, sqlite as a JSON array.
func (r *FieldNoteRepo) encodeEmbedding(embedding []float32) (interface{}, error) {
	if len(embedding) == 0 {
		return nil, nil
	}
	if r.db.Driver == dbutil.DriverPostgres {
		return pgvector.NewVector(embedding), nil
	}
	data, err := json.Marshal(embedding)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (r *FieldNoteRepo) decodeEmbedding(raw sql.NullString) ([]float32, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	if r.db.Driver == dbutil.DriverPostgres {
		var vec pgvector.Vector
		if err := vec.Scan(raw.String); err != nil {
			return nil, err
		}
		return vec.Slice(), nil
	}
	var embedding []float32
	if err := json.Unmarshal([]byte(raw.String), &embedding); err != nil {
		return nil, err
	}
	return embedding, nil
}
