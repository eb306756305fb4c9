package repo

import (
	"context"

	"github.com/didi/gendry/builder"

	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/pkg/dbutil"
)

type MessageRepo struct {
	db *DB
}

func NewMessageRepo(db *DB) *MessageRepo {
	return &MessageRepo{db: db}
}

func (r *MessageRepo) Create(ctx context.Context, msg *model.ChatMessage) error {
	sqlStr := `
		INSERT INTO chat_messages (id, session_id, role, content, language, category_index, ctime)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	args := []interface{}{msg.ID, msg.SessionID, msg.Role, msg.Content, msg.Language, msg.CategoryIndex, msg.Ctime}
	_, err := r.db.ExecContext(ctx, dbutil.Rebind(r.db.Driver, sqlStr), args...)
	return err
}

// ListBySession returns the transcript in chronological order.
func (r *MessageRepo) ListBySession(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	sqlStr, args, err := builder.BuildSelect("chat_messages",
		map[string]interface{}{"session_id": sessionID, "_orderby": "ctime asc, id asc"},
		[]string{"id", "session_id", "role", "content", "language", "category_index", "ctime"})
	if err != nil {
		return nil, err
	}
	items := make([]model.ChatMessage, 0)
	if err := r.db.SelectContext(ctx, &items, dbutil.Rebind(r.db.Driver, sqlStr), args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MessageRepo) CountBySession(ctx context.Context, sessionID string) (int, error) {
	sqlStr := `SELECT COUNT(*) FROM chat_messages WHERE session_id = ?`
	var count int
	if err := r.db.GetContext(ctx, &count, dbutil.Rebind(r.db.Driver, sqlStr), sessionID); err != nil {
		return 0, err
	}
	return count, nil
}

// CountPerSession returns every session's transcript length in one grouped
// query so the session list does not fan out one count per row.
func (r *MessageRepo) CountPerSession(ctx context.Context) (map[string]int, error) {
	sqlStr := `SELECT session_id, COUNT(*) AS cnt FROM chat_messages GROUP BY session_id`
	rows := make([]sessionCount, 0)
	if err := r.db.SelectContext(ctx, &rows, sqlStr); err != nil {
		return nil, err
	}
	return countsBySession(rows), nil
}

// CountExchanges counts participant turns taken within one category, which
// is the depth the interview engine tracks.
func (r *MessageRepo) CountExchanges(ctx context.Context, sessionID string, categoryIndex int) (int, error) {
	sqlStr := `SELECT COUNT(*) FROM chat_messages WHERE session_id = ? AND category_index = ? AND role = ?`
	var count int
	if err := r.db.GetContext(ctx, &count, dbutil.Rebind(r.db.Driver, sqlStr), sessionID, categoryIndex, model.MessageRoleParticipant); err != nil {
		return 0, err
	}
	return count, nil
}
