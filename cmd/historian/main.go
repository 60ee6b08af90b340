// cmd/historian/main.go is an asynchronous archiver that pops game event
// records from the Redis queue and persists them to PostgreSQL.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"runo-server/internal/cache"
	"runo-server/internal/database"
)

// HistorianService reads event records off the Redis queue, accumulates them
// in a batch, and periodically flushes the batch to the game_events table.
type HistorianService struct {
	redisClient *redis.Client
	queueName   string
	batchSize   int
	flushDelay  time.Duration

	batchMu  sync.Mutex
	batch    []cache.EventRecord
	ctx      context.Context
	cancelFn context.CancelFunc
}

// NewHistorianService constructs a HistorianService from environment variables or defaults.
func NewHistorianService() *HistorianService {
	batchSize := getEnvInt("HISTORIAN_BATCH_SIZE", 20)
	flushMs := getEnvInt("HISTORIAN_FLUSH_MS", 500)

	rdb := redis.NewClient(&redis.Options{
		Addr: getEnv("REDIS_ADDR", "localhost:6379"),
	})

	ctx, cancel := context.WithCancel(context.Background())
	return &HistorianService{
		redisClient: rdb,
		queueName:   getEnv("EVENT_QUEUE_NAME", cache.DefaultQueueName),
		batchSize:   batchSize,
		flushDelay:  time.Duration(flushMs) * time.Millisecond,
		batch:       make([]cache.EventRecord, 0, batchSize),
		ctx:         ctx,
		cancelFn:    cancel,
	}
}

// Run connects to the database and consumes the queue until Stop is called.
func (hs *HistorianService) Run() {
	database.ConnectDB()
	if err := database.EnsureSchema(hs.ctx); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	go hs.readRedisLoop()

	log.Println("runo-historian service started.")
	<-hs.ctx.Done()
	hs.flushBatchToDB()
	log.Println("runo-historian shutting down.")
}

// readRedisLoop continuously uses BLPop to retrieve records from the queue.
func (hs *HistorianService) readRedisLoop() {
	ticker := time.NewTicker(hs.flushDelay)
	defer ticker.Stop()

	for {
		select {
		case <-hs.ctx.Done():
			return

		case <-ticker.C:
			hs.flushBatchToDB()

		default:
			// BLPop with a short timeout so context cancellation is handled.
			res, err := hs.redisClient.BLPop(hs.ctx, 3*time.Second, hs.queueName).Result()
			if err != nil && !errors.Is(err, redis.Nil) {
				if hs.ctx.Err() != nil {
					return
				}
				log.Errorf("BLPop: %v", err)
				continue
			}
			if len(res) < 2 {
				continue
			}

			// res[0] is the queue name and res[1] the payload.
			var rec cache.EventRecord
			if err := json.Unmarshal([]byte(res[1]), &rec); err != nil {
				log.Warnf("invalid event record: %v", err)
				continue
			}
			hs.appendToBatch(rec)
		}
	}
}

// appendToBatch adds a record to the in-memory batch and flushes if the threshold is reached.
func (hs *HistorianService) appendToBatch(rec cache.EventRecord) {
	hs.batchMu.Lock()
	hs.batch = append(hs.batch, rec)
	full := len(hs.batch) >= hs.batchSize
	hs.batchMu.Unlock()
	if full {
		hs.flushBatchToDB()
	}
}

// flushBatchToDB flushes the current batch to the database in a single transaction.
func (hs *HistorianService) flushBatchToDB() {
	hs.batchMu.Lock()
	if len(hs.batch) == 0 {
		hs.batchMu.Unlock()
		return
	}
	batchCopy := make([]cache.EventRecord, len(hs.batch))
	copy(batchCopy, hs.batch)
	hs.batch = hs.batch[:0]
	hs.batchMu.Unlock()

	ctx := context.Background()
	err := pgx.BeginTxFunc(ctx, database.DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `
			INSERT INTO game_events (game_id, actor_id, event_type, recorded_at)
			VALUES ($1, $2, $3, $4)
		`
		for _, rec := range batchCopy {
			recordedAt := time.UnixMilli(rec.Timestamp).UTC()
			if _, err := tx.Exec(ctx, q, rec.GameID, rec.ActorID, rec.EventType, recordedAt); err != nil {
				return fmt.Errorf("insert game event: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		log.Errorf("flushBatchToDB: %v", err)
	} else {
		log.Infof("Flushed %d events to DB.", len(batchCopy))
	}
}

// Stop gracefully stops the historian service.
func (hs *HistorianService) Stop() {
	hs.cancelFn()
}

func main() {
	hs := NewHistorianService()
	go hs.Run()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	hs.Stop()
	log.Println("Historian shutdown complete.")
}

// getEnv retrieves an environment variable's value or returns a default.
func getEnv(key, defVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defVal
}

// getEnvInt retrieves an integer value from an environment variable or returns a default value.
func getEnvInt(key string, defVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defVal
	}
	return i
}
