// internal/database/db.go
package database

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// DB is the global connection pool. Call ConnectDB once at startup.
var DB *pgxpool.Pool

// ConnectDB opens the pool from DATABASE_URL and verifies connectivity.
func ConnectDB() {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	config, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		log.Fatalf("unable to parse pgx config: %v", err)
	}

	DB, err = pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatalf("unable to create pgx pool: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := DB.Ping(ctx); err != nil {
		log.Fatalf("db ping error: %v", err)
	}

	log.Info("Connected to database")
}

// EnsureSchema creates the games document table and the game_events archive
// table if they do not exist yet.
func EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id   TEXT PRIMARY KEY,
			data JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS game_events (
			id          BIGSERIAL PRIMARY KEY,
			game_id     TEXT NOT NULL,
			actor_id    TEXT,
			event_type  TEXT NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS game_events_game_id_idx ON game_events (game_id)`,
	}
	for _, stmt := range statements {
		if _, err := DB.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
