package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"delivery-game-service/internal/ports"
)

func newTestRepository(t *testing.T) *SQLLeaderboardRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db, DialectSQLite); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return NewSQLLeaderboardRepository(db, DialectSQLite)
}

func TestSaveAndRankResults(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []ports.LeaderboardEntry{
		{Player: "alice", Mode: "Speed Run", Score: 80, Efficiency: 90, PlayerDistance: 10, DurationSeconds: 30, CreatedAt: now},
		{Player: "bob", Mode: "Speed Run", Score: 95, Efficiency: 100, PlayerDistance: 8, DurationSeconds: 25, CreatedAt: now.Add(time.Minute)},
		{Player: "carol", Mode: "Package Delivery", Score: 80, Efficiency: 85, PlayerDistance: 12, DurationSeconds: 40, CreatedAt: now.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		if err := repo.SaveResult(ctx, e); err != nil {
			t.Fatalf("save %q: %v", e.Player, err)
		}
	}

	top, err := repo.TopResults(ctx, 10)
	if err != nil {
		t.Fatalf("top results: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("results = %d, want 3", len(top))
	}
	if top[0].Player != "bob" {
		t.Fatalf("top player = %q, want bob", top[0].Player)
	}
	// Equal scores rank by recency.
	if top[1].Player != "carol" || top[2].Player != "alice" {
		t.Fatalf("tie order = %q, %q, want carol then alice", top[1].Player, top[2].Player)
	}
}

func TestTopResultsHonorsLimit(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		entry := ports.LeaderboardEntry{
			Player:    "player",
			Mode:      "Speed Run",
			Score:     50 + i,
			CreatedAt: time.Now(),
		}
		if err := repo.SaveResult(ctx, entry); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	top, err := repo.TopResults(ctx, 2)
	if err != nil {
		t.Fatalf("top results: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("results = %d, want 2", len(top))
	}
	if top[0].Score != 54 {
		t.Fatalf("top score = %d, want 54", top[0].Score)
	}
}

func TestRebind(t *testing.T) {
	query := "INSERT INTO t (a, b, c) VALUES (?, ?, ?);"

	if got := DialectSQLite.rebind(query); got != query {
		t.Fatalf("sqlite rebind changed the query: %s", got)
	}
	want := "INSERT INTO t (a, b, c) VALUES ($1, $2, $3);"
	if got := DialectPostgres.rebind(query); got != want {
		t.Fatalf("postgres rebind = %s, want %s", got, want)
	}
}
