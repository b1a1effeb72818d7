package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"delivery-game-service/internal/ports"
)

// database/sql-backed implementation of the LeaderboardRepository port.
// Queries are written with ? placeholders and rebound per dialect, so the same
// code runs on the local SQLite file and on Postgres.
type SQLLeaderboardRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLLeaderboardRepository(db *sql.DB, dialect Dialect) *SQLLeaderboardRepository {
	return &SQLLeaderboardRepository{DB: db, Dialect: dialect}
}

// Persist one finished game result.
func (s *SQLLeaderboardRepository) SaveResult(ctx context.Context, entry ports.LeaderboardEntry) error {
	if s.DB == nil {
		return errors.New("leaderboard repository: DB is nil")
	}

	query := `
	INSERT INTO leaderboard (
		player,
		mode,
		score,
		efficiency,
		player_distance,
		duration_seconds,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	_, err := s.DB.ExecContext(
		ctx,
		s.Dialect.rebind(query),
		entry.Player,
		entry.Mode,
		entry.Score,
		entry.Efficiency,
		entry.PlayerDistance,
		entry.DurationSeconds,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save result: insert player=%q: %w", entry.Player, err)
	}
	return nil
}

// Return the best results ordered by score, then recency.
func (s *SQLLeaderboardRepository) TopResults(ctx context.Context, limit int) ([]ports.LeaderboardEntry, error) {
	if s.DB == nil {
		return nil, errors.New("leaderboard repository: DB is nil")
	}
	if limit <= 0 {
		limit = 10
	}

	query := `
	SELECT
		player,
		mode,
		score,
		efficiency,
		player_distance,
		duration_seconds,
		created_at
	FROM leaderboard
	ORDER BY score DESC, created_at DESC
	LIMIT ?;
	`
	rows, err := s.DB.QueryContext(ctx, s.Dialect.rebind(query), limit)
	if err != nil {
		return nil, fmt.Errorf("top results: query leaderboard table: %w", err)
	}
	defer rows.Close()

	entries := make([]ports.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e ports.LeaderboardEntry
		err := rows.Scan(&e.Player, &e.Mode, &e.Score, &e.Efficiency, &e.PlayerDistance, &e.DurationSeconds, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("top results: scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top results: row iteration: %w", err)
	}

	return entries, nil
}
