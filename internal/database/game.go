// internal/database/game.go
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"runo-server/internal/game"
)

// ErrNotFound is returned when no live game exists under the given id.
var ErrNotFound = errors.New("game not found")

// retention is how long a game document remains loadable after creation.
const retention = "1 day"

// openWindow is how long a not-yet-started game stays on the open list.
const openWindow = "30 minutes"

// Store is the whole-document game state store: each game is one JSONB row,
// written and read in full, last write wins. Serializing concurrent access to
// a game id is the caller's concern.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Load returns the game document, or ErrNotFound when it does not exist or
// has aged out of retention.
func (s *Store) Load(ctx context.Context, gameID string) (*game.Game, error) {
	q := `
		SELECT data FROM games
		WHERE id = $1
		  AND (data->>'created_at')::timestamptz > NOW() - INTERVAL '` + retention + `'
	`
	var data []byte
	err := s.pool.QueryRow(ctx, q, gameID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", gameID, err)
	}
	var g game.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("decode game %s: %w", gameID, err)
	}
	return &g, nil
}

// Save upserts the entire game document.
func (s *Store) Save(ctx context.Context, g *game.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", g.ID, err)
	}
	q := `
		INSERT INTO games (id, data) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data
	`
	if _, err := s.pool.Exec(ctx, q, g.ID, data); err != nil {
		return fmt.Errorf("save game %s: %w", g.ID, err)
	}
	return nil
}

// ListOpen returns recent games still accepting players, newest first.
func (s *Store) ListOpen(ctx context.Context) ([]*game.Game, error) {
	q := `
		SELECT data FROM games
		WHERE (data->>'active')::boolean = FALSE
		  AND data->>'ended_at' IS NULL
		  AND (data->>'created_at')::timestamptz > NOW() - INTERVAL '` + openWindow + `'
		ORDER BY (data->>'created_at')::timestamptz DESC
	`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list open games: %w", err)
	}
	defer rows.Close()

	var games []*game.Game
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan open game: %w", err)
		}
		var g game.Game
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("decode open game: %w", err)
		}
		if !g.Active && g.EndedAt == nil {
			games = append(games, &g)
		}
	}
	return games, rows.Err()
}

// CountCreatedSince reports how many games were created after the given time.
// Feeds the daily creation throttle.
func (s *Store) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	q := `SELECT COUNT(*) FROM games WHERE (data->>'created_at')::timestamptz > $1`
	var n int
	if err := s.pool.QueryRow(ctx, q, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return n, nil
}

// Stats summarizes table activity over the last 24 hours.
type Stats struct {
	Created int `json:"created"`
	Started int `json:"started"`
	Ended   int `json:"ended"`
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	q := `
		SELECT
			(SELECT COUNT(*) FROM games WHERE (data->>'created_at')::timestamptz > NOW() - INTERVAL '24 hours'),
			(SELECT COUNT(*) FROM games WHERE (data->>'started_at')::timestamptz > NOW() - INTERVAL '24 hours'),
			(SELECT COUNT(*) FROM games WHERE (data->>'ended_at')::timestamptz > NOW() - INTERVAL '24 hours')
	`
	var st Stats
	if err := s.pool.QueryRow(ctx, q).Scan(&st.Created, &st.Started, &st.Ended); err != nil {
		return Stats{}, fmt.Errorf("game stats: %w", err)
	}
	return st, nil
}
