// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"runo-server/internal/cache"
	"runo-server/internal/database"
	"runo-server/internal/handlers"
	"runo-server/internal/middleware"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	database.ConnectDB()
	if err := database.EnsureSchema(context.Background()); err != nil {
		logger.Fatalf("failed to ensure schema: %v", err)
	}
	store := database.NewStore(database.DB)

	// The event queue is best effort: without Redis the API still serves.
	var events handlers.Publisher
	if err := cache.ConnectRedis(); err != nil {
		logger.Warnf("event queue disabled: %v", err)
	} else {
		events = cache.NewPublisher()
	}

	srv := handlers.NewGameServer(store, events, logger)

	// CORS_ALLOWED_ORIGINS holds zero or more origin URLs separated by
	// semicolons. With none set, cross-origin requests are blocked.
	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ";") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		return middleware.LogMiddleware(logger)(middleware.CORSMiddleware(origins)(h))
	}

	mux := http.NewServeMux()
	mux.Handle("/games", wrap(srv.HandleGames))
	mux.Handle("/games/join", wrap(srv.HandleJoin))
	mux.Handle("/games/start", wrap(srv.HandleStart))
	mux.Handle("/games/play", wrap(srv.HandlePlay))
	mux.Handle("/games/draw", wrap(srv.HandleDraw))
	mux.Handle("/games/leave", wrap(srv.HandleLeave))
	mux.Handle("/games/state", wrap(srv.HandleState))
	mux.Handle("/stats", wrap(srv.HandleStats))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
