package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/didi/gendry/builder"

	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/pkg/dbutil"
	"github.com/hakimdiab/seamnote/internal/pkg/errs"
)

const sessionFields = `id, participant_code, department, role_level, language_pref, status, category_index, summary, ctime, completed_at`

type SessionRepo struct {
	db *DB
}

func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

func (r *SessionRepo) Create(ctx context.Context, session *model.InterviewSession) error {
	sqlStr := `
		INSERT INTO interview_sessions (` + sessionFields + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	args := []interface{}{
		session.ID,
		session.ParticipantCode,
		session.Department,
		session.RoleLevel,
		session.LanguagePref,
		session.Status,
		session.CategoryIndex,
		session.Summary,
		session.Ctime,
		session.CompletedAt,
	}
	_, err := r.db.ExecContext(ctx, dbutil.Rebind(r.db.Driver, sqlStr), args...)
	if err != nil && dbutil.IsConflict(err) {
		return errs.ErrConflict
	}
	return err
}

func (r *SessionRepo) GetByID(ctx context.Context, id string) (*model.InterviewSession, error) {
	return r.getOne(ctx, map[string]interface{}{"id": id})
}

func (r *SessionRepo) GetByParticipantCode(ctx context.Context, code string) (*model.InterviewSession, error) {
	return r.getOne(ctx, map[string]interface{}{"participant_code": code})
}

func (r *SessionRepo) getOne(ctx context.Context, where map[string]interface{}) (*model.InterviewSession, error) {
	sqlStr, args, err := builder.BuildSelect("interview_sessions", where, sessionColumns())
	if err != nil {
		return nil, err
	}
	var item model.InterviewSession
	err = r.db.GetContext(ctx, &item, dbutil.Rebind(r.db.Driver, sqlStr), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *SessionRepo) List(ctx context.Context, status, department string) ([]model.InterviewSession, error) {
	where := map[string]interface{}{"_orderby": "ctime desc"}
	if status != "" {
		where["status"] = status
	}
	if department != "" {
		where["department"] = department
	}
	sqlStr, args, err := builder.BuildSelect("interview_sessions", where, sessionColumns())
	if err != nil {
		return nil, err
	}
	items := make([]model.InterviewSession, 0)
	if err := r.db.SelectContext(ctx, &items, dbutil.Rebind(r.db.Driver, sqlStr), args...); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateProgress moves the category pointer. The status guard keeps the
// update from resurrecting a finished session.
func (r *SessionRepo) UpdateProgress(ctx context.Context, id string, categoryIndex int) error {
	sqlStr, args, err := builder.BuildUpdate("interview_sessions",
		map[string]interface{}{"id": id, "status": model.SessionStatusActive},
		map[string]interface{}{"category_index": categoryIndex})
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, dbutil.Rebind(r.db.Driver, sqlStr), args...)
	return err
}

func (r *SessionRepo) Finish(ctx context.Context, id string, status string, completedAt int64) error {
	sqlStr, args, err := builder.BuildUpdate("interview_sessions",
		map[string]interface{}{"id": id, "status": model.SessionStatusActive},
		map[string]interface{}{"status": status, "completed_at": completedAt})
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, dbutil.Rebind(r.db.Driver, sqlStr), args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrSessionFinished
	}
	return nil
}

func (r *SessionRepo) SetSummary(ctx context.Context, id string, summary string) error {
	sqlStr, args, err := builder.BuildUpdate("interview_sessions",
		map[string]interface{}{"id": id},
		map[string]interface{}{"summary": summary})
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, dbutil.Rebind(r.db.Driver, sqlStr), args...)
	return err
}

func (r *SessionRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	sqlStr := `SELECT COUNT(*) FROM interview_sessions WHERE status = ?`
	var count int
	if err := r.db.GetContext(ctx, &count, dbutil.Rebind(r.db.Driver, sqlStr), status); err != nil {
		return 0, err
	}
	return count, nil
}

func sessionColumns() []string {
	return []string{
		"id", "participant_code", "department", "role_level", "language_pref",
		"status", "category_index", "summary", "ctime", "completed_at",
	}
}
