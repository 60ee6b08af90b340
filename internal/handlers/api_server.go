// internal/handlers/api_server.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"runo-server/internal/cache"
	"runo-server/internal/database"
	"runo-server/internal/game"
)

// MaxGamesPerDay caps how many games can be created in a 24-hour period.
const MaxGamesPerDay = 1000

// Store is the game-state document store consumed by the handlers. The
// pgx-backed implementation lives in internal/database; tests substitute an
// in-memory double.
type Store interface {
	Load(ctx context.Context, gameID string) (*game.Game, error)
	Save(ctx context.Context, g *game.Game) error
	ListOpen(ctx context.Context) ([]*game.Game, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
	Stats(ctx context.Context) (database.Stats, error)
}

// Publisher pushes game event records to the historian queue.
type Publisher interface {
	Publish(ctx context.Context, rec cache.EventRecord) error
}

// GameServer holds the HTTP handlers for the game API. Every mutating handler
// is one load -> engine operation -> save cycle against the store; the store
// gives no isolation, so concurrent operations on one game are last-write-wins.
type GameServer struct {
	Store  Store
	Events Publisher
	Logger *logrus.Logger
}

func NewGameServer(store Store, events Publisher, logger *logrus.Logger) *GameServer {
	if logger == nil {
		logger = logrus.New()
	}
	return &GameServer{Store: store, Events: events, Logger: logger}
}

// publish queues an event record, best effort. A nil Publisher or a queue
// failure never affects the player-facing response.
func (s *GameServer) publish(ctx context.Context, gameID, actorUXID, eventType string) {
	if s.Events == nil {
		return
	}
	rec := cache.EventRecord{
		GameID:    gameID,
		ActorID:   actorUXID,
		EventType: eventType,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.Events.Publish(ctx, rec); err != nil {
		s.Logger.WithError(err).Warnf("failed to publish %s event for game %s", eventType, gameID)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeResult sends the {"result": bool} envelope used by all mutating
// endpoints. Failures carry no detail beyond the boolean.
func writeResult(w http.ResponseWriter, status int, ok bool) {
	writeJSON(w, status, map[string]bool{"result": ok})
}

// clampName truncates a display name to the accepted length.
func clampName(name string) string {
	runes := []rune(name)
	if len(runes) > game.MaxPlayerNameLength {
		return string(runes[:game.MaxPlayerNameLength])
	}
	return name
}
