// internal/handlers/game.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"runo-server/internal/database"
	"runo-server/internal/game"
	"runo-server/internal/models"
)

type createGameRequest struct {
	GameName    string `json:"game_name"`
	PlayerName  string `json:"player_name"`
	PointsToWin int    `json:"points_to_win"`
	MinPlayers  int    `json:"min_players"`
	MaxPlayers  int    `json:"max_players"`
}

type joinGameRequest struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"player_name"`
}

type gamePlayerRequest struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
}

type playCardRequest struct {
	GameID        string `json:"game_id"`
	PlayerID      string `json:"player_id"`
	CardID        string `json:"card_id"`
	SelectedColor string `json:"selected_color"`
}

// openGame is one row of the open-games listing.
type openGame struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Players    int       `json:"players"`
	MaxPlayers int       `json:"max_players"`
	CreatedAt  time.Time `json:"created_at"`
}

// HandleGames serves GET /games (open-games listing) and POST /games
// (create a new game seating the caller as admin).
func (s *GameServer) HandleGames(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listOpenGames(w, r)
	case http.MethodPost:
		s.createGame(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *GameServer) listOpenGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.Store.ListOpen(r.Context())
	if err != nil {
		s.Logger.WithError(err).Error("failed to list open games")
		http.Error(w, "service unavailable", http.StatusInternalServerError)
		return
	}
	list := make([]openGame, 0, len(games))
	for _, g := range games {
		list = append(list, openGame{
			ID:         g.ID,
			Name:       g.Name,
			Players:    len(g.Players),
			MaxPlayers: g.MaxPlayers,
			CreatedAt:  g.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *GameServer) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	created, err := s.Store.CountCreatedSince(r.Context(), cutoff)
	if err != nil {
		s.Logger.WithError(err).Error("failed to count recent games")
		writeResult(w, http.StatusInternalServerError, false)
		return
	}
	if created >= MaxGamesPerDay {
		writeResult(w, http.StatusTooManyRequests, false)
		return
	}

	g := game.NewGame(req.GameName, clampName(req.PlayerName), req.PointsToWin, req.MinPlayers, req.MaxPlayers)
	if err := s.Store.Save(r.Context(), g); err != nil {
		s.Logger.WithError(err).Error("failed to save new game")
		writeResult(w, http.StatusInternalServerError, false)
		return
	}
	admin := g.Players[0]
	s.publish(r.Context(), g.ID, admin.UXID, "game_created")
	writeJSON(w, http.StatusOK, map[string]string{
		"game_id":   g.ID,
		"player_id": admin.ID,
	})
}

// HandleJoin seats a new player in a not-yet-started game.
func (s *GameServer) HandleJoin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req joinGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	g, ok := s.loadGame(w, r, req.GameID)
	if !ok {
		return
	}
	p, err := g.Join(clampName(req.PlayerName))
	if err != nil {
		writeResult(w, http.StatusConflict, false)
		return
	}
	if err := s.Store.Save(r.Context(), g); err != nil {
		s.Logger.WithError(err).Errorf("failed to save game %s after join", g.ID)
		writeResult(w, http.StatusInternalServerError, false)
		return
	}
	s.publish(r.Context(), g.ID, p.UXID, "player_joined")
	writeJSON(w, http.StatusOK, map[string]string{
		"game_id":   g.ID,
		"player_id": p.ID,
	})
}

// HandleStart deals the first round. Admin only.
func (s *GameServer) HandleStart(w http.ResponseWriter, r *http.Request) {
	s.mutateGame(w, r, "game_started", func(g *game.Game, playerID string) error {
		return g.Start(playerID)
	})
}

// HandlePlay resolves one play attempt. A rule violation still persists the
// game so the private rejection notice reaches the player on their next poll.
func (s *GameServer) HandlePlay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req playCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	g, ok := s.loadGame(w, r, req.GameID)
	if !ok {
		return
	}
	actor := g.PlayerByID(req.PlayerID)

	playErr := g.PlayCard(req.PlayerID, req.CardID, models.Color(req.SelectedColor))
	switch {
	case playErr == nil:
		if err := s.Store.Save(r.Context(), g); err != nil {
			s.Logger.WithError(err).Errorf("failed to save game %s after play", g.ID)
			writeResult(w, http.StatusInternalServerError, false)
			return
		}
		event := "card_played"
		if g.EndedAt != nil {
			event = "game_over"
		}
		s.publish(r.Context(), g.ID, actor.UXID, event)
		writeResult(w, http.StatusOK, true)
	case errors.Is(playErr, game.ErrCardNotPlayable):
		if err := s.Store.Save(r.Context(), g); err != nil {
			s.Logger.WithError(err).Errorf("failed to save game %s after rejected play", g.ID)
		}
		writeResult(w, http.StatusOK, false)
	case errors.Is(playErr, game.ErrNoOpeningCard):
		s.Logger.WithError(playErr).Errorf("corrupted deck in game %s", g.ID)
		writeResult(w, http.StatusInternalServerError, false)
	default:
		writeResult(w, http.StatusOK, false)
	}
}

// HandleDraw draws one card for the active player.
func (s *GameServer) HandleDraw(w http.ResponseWriter, r *http.Request) {
	s.mutateGame(w, r, "card_drawn", func(g *game.Game, playerID string) error {
		return g.DrawCard(playerID)
	})
}

// HandleLeave removes a player from a game.
func (s *GameServer) HandleLeave(w http.ResponseWriter, r *http.Request) {
	s.mutateGame(w, r, "player_left", func(g *game.Game, playerID string) error {
		return g.Leave(playerID)
	})
}

// HandleState serves the redacted per-player view. Draining the viewer's
// notices mutates the document, so a drain is saved back before responding.
func (s *GameServer) HandleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	gameID := r.URL.Query().Get("game_id")
	playerID := r.URL.Query().Get("player_id")
	g, ok := s.loadGame(w, r, gameID)
	if !ok {
		return
	}
	view, drained, err := g.StateFor(playerID)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if drained {
		if err := s.Store.Save(r.Context(), g); err != nil {
			s.Logger.WithError(err).Errorf("failed to persist message drain for game %s", g.ID)
			http.Error(w, "service unavailable", http.StatusInternalServerError)
			return
		}
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleStats reports 24-hour created/started/ended counts.
func (s *GameServer) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	stats, err := s.Store.Stats(r.Context())
	if err != nil {
		s.Logger.WithError(err).Error("failed to read stats")
		http.Error(w, "service unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// mutateGame runs the shared decode -> load -> operate -> save cycle for the
// endpoints that take {game_id, player_id} and answer with {result}.
func (s *GameServer) mutateGame(w http.ResponseWriter, r *http.Request, eventType string, op func(g *game.Game, playerID string) error) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req gamePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	g, ok := s.loadGame(w, r, req.GameID)
	if !ok {
		return
	}
	actor := g.PlayerByID(req.PlayerID)

	if err := op(g, req.PlayerID); err != nil {
		if errors.Is(err, game.ErrNoOpeningCard) {
			s.Logger.WithError(err).Errorf("corrupted deck in game %s", g.ID)
			writeResult(w, http.StatusInternalServerError, false)
			return
		}
		writeResult(w, http.StatusOK, false)
		return
	}
	if err := s.Store.Save(r.Context(), g); err != nil {
		s.Logger.WithError(err).Errorf("failed to save game %s", g.ID)
		writeResult(w, http.StatusInternalServerError, false)
		return
	}
	actorUXID := ""
	if actor != nil {
		actorUXID = actor.UXID
	}
	s.publish(r.Context(), g.ID, actorUXID, eventType)
	writeResult(w, http.StatusOK, true)
}

// loadGame fetches the game document, answering result:false on absence and
// a generic 5xx on storage failure.
func (s *GameServer) loadGame(w http.ResponseWriter, r *http.Request, gameID string) (*game.Game, bool) {
	g, err := s.Store.Load(r.Context(), gameID)
	if errors.Is(err, database.ErrNotFound) {
		writeResult(w, http.StatusNotFound, false)
		return nil, false
	}
	if err != nil {
		s.Logger.WithError(err).Errorf("failed to load game %s", gameID)
		writeResult(w, http.StatusInternalServerError, false)
		return nil, false
	}
	return g, true
}
