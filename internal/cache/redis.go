// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Rdb is the global Redis client. Connect it once at application startup.
var Rdb *redis.Client

// DefaultQueueName is the Redis list (queue) name for game event records.
var DefaultQueueName = "runo_events"

// EventRecord is one game event pushed to the queue for the historian to
// archive. ActorID is the acting player's public ux_id, never the private id.
type EventRecord struct {
	GameID    string `json:"game_id"`
	ActorID   string `json:"actor_id,omitempty"`
	EventType string `json:"event_type"`
	Timestamp int64  `json:"timestamp"`
}

// ConnectRedis initializes the global Redis client with environment variables:
//   - REDIS_ADDR (default "localhost:6379")
//   - REDIS_DB (optional, default 0)
func ConnectRedis() error {
	addr := getEnv("REDIS_ADDR", "localhost:6379")
	dbIdx := getEnvInt("REDIS_DB", 0)

	Rdb = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   dbIdx,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return nil
}

// Publisher pushes event records onto the queue.
type Publisher struct {
	client *redis.Client
	queue  string
}

// NewPublisher builds a Publisher over the global client, with the queue name
// taken from EVENT_QUEUE_NAME.
func NewPublisher() *Publisher {
	return &Publisher{
		client: Rdb,
		queue:  getEnv("EVENT_QUEUE_NAME", DefaultQueueName),
	}
}

// Publish serializes the record to JSON and RPushes it onto the queue.
func (p *Publisher) Publish(ctx context.Context, rec EventRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal EventRecord: %w", err)
	}
	if err := p.client.RPush(ctx, p.queue, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", p.queue, err)
	}
	return nil
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
