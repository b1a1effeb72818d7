package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"delivery-game-service/internal/adapters/repositories"
	"delivery-game-service/internal/api"
	"delivery-game-service/internal/config"
	"delivery-game-service/internal/game"
	"delivery-game-service/internal/netmap"
	"delivery-game-service/internal/planner"
)

// main is the application composition root.
// It wires the network, planner, game engine and leaderboard store behind
// their ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	port := config.Get("PORT", "8080")
	networkPath := strings.TrimSpace(os.Getenv("NETWORK_PATH"))

	network := netmap.Default()
	if networkPath != "" {
		loaded, err := netmap.LoadFile(networkPath)
		if err != nil {
			log.Fatal(err)
		}
		network = loaded
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema on startup for local runs.
	if err := repositories.InitSchema(db, repositories.DialectSQLite); err != nil {
		log.Fatal(err)
	}

	board := repositories.NewSQLLeaderboardRepository(db, repositories.DialectSQLite)
	pl := planner.New(network.Distances, planner.DefaultOptions())
	engine := game.NewEngine(network, pl, board, nil)
	router := api.NewRouter(engine, pl, network, board)

	log.Printf("Server listening addr=:%s locations=%d roads=%d", port, len(network.Positions), len(network.Distances))
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
