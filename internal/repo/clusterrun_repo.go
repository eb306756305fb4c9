package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/pkg/dbutil"
	"github.com/hakimdiab/seamnote/internal/pkg/errs"
)

type ClusterRunRepo struct {
	db *DB
}

func NewClusterRunRepo(db *DB) *ClusterRunRepo {
	return &ClusterRunRepo{db: db}
}

func (r *ClusterRunRepo) Create(ctx context.Context, run *model.ClusterRun) error {
	sqlStr := `
		INSERT INTO cluster_runs (id, ran_at, session_count, result)
		VALUES (?, ?, ?, ?)
	`
	args := []interface{}{run.ID, run.RanAt, run.SessionCount, run.Result}
	_, err := r.db.ExecContext(ctx, dbutil.Rebind(r.db.Driver, sqlStr), args...)
	return err
}

// Latest returns the most recent run snapshot.
func (r *ClusterRunRepo) Latest(ctx context.Context) (*model.ClusterRun, error) {
	sqlStr := `
		SELECT id, ran_at, session_count, result
		FROM cluster_runs
		ORDER BY ran_at DESC, id DESC
		LIMIT 1
	`
	var item model.ClusterRun
	err := r.db.GetContext(ctx, &item, sqlStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
