package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects the SQL flavor for the small spots where SQLite and
// Postgres differ (placeholders, auto-increment keys).
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// rebind rewrites ? placeholders to $1..$n for Postgres. Queries here carry no
// literal question marks, so a plain scan is enough.
func (d Dialect) rebind(query string) string {
	if d != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query))
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Initialize the leaderboard schema.
func InitSchema(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	idColumn := "id INTEGER PRIMARY KEY"
	if dialect == DialectPostgres {
		idColumn = "id BIGSERIAL PRIMARY KEY"
	}

	createLeaderboardQuery := `
	CREATE TABLE IF NOT EXISTS leaderboard (
		` + idColumn + `,
		player TEXT NOT NULL,
		mode TEXT NOT NULL,
		score INTEGER NOT NULL,
		efficiency INTEGER NOT NULL,
		player_distance REAL NOT NULL,
		duration_seconds REAL NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_leaderboard_score_created
	ON leaderboard(score DESC, created_at DESC);
	`

	statements := []string{
		createLeaderboardQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
