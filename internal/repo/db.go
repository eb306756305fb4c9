package repo

import "github.com/jmoiron/sqlx"

// DB pairs the connection with the driver it was opened for, so repos can
// rebind placeholders per driver.
type DB struct {
	*sqlx.DB
	Driver string
}

func NewDB(db *sqlx.DB, driver string) *DB {
	return &DB{DB: db, Driver: driver}
}

type sessionCount struct {
	SessionID string `db:"session_id"`
	Cnt       int    `db:"cnt"`
}

func countsBySession(rows []sessionCount) map[string]int {
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.SessionID] = row.Cnt
	}
	return counts
}
