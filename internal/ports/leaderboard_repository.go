package ports

import (
	"context"
	"time"
)

// One leaderboard row: the outcome of a finished game.
type LeaderboardEntry struct {
	Player          string
	Mode            string
	Score           int
	Efficiency      int
	PlayerDistance  float64
	DurationSeconds float64
	CreatedAt       time.Time
}

// Port: a boundary for persisting and ranking finished game results.
type LeaderboardRepository interface {
	// Persist one finished game result.
	SaveResult(ctx context.Context, entry LeaderboardEntry) error
	// Return the best results ordered by score, then recency.
	TopResults(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
