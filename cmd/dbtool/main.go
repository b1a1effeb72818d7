package main

import (
	"context"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"delivery-game-service/internal/adapters/repositories"
	"delivery-game-service/internal/platform/db"
)

// dbtool initializes the leaderboard schema on a shared Postgres instance
// and prints the current top scores.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn, repositories.DialectPostgres); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	board := repositories.NewSQLLeaderboardRepository(conn, repositories.DialectPostgres)
	entries, err := board.TopResults(context.Background(), 10)
	if err != nil {
		log.Fatalf("fetch top results failed: %v", err)
	}
	for i, e := range entries {
		log.Printf("rank=%d player=%q mode=%q score=%d", i+1, e.Player, e.Mode, e.Score)
	}
}
