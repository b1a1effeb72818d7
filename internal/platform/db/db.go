package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open connects to a shared Postgres instance through the pgx stdlib driver.
// The leaderboard is the only remote state this service keeps, so the pool
// stays small.
func Open(databaseURL string) (*sql.DB, error) {
	conn, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("db: open postgres: %w", err)
	}

	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("db: verify postgres connection: %w", err)
	}

	return conn, nil
}
