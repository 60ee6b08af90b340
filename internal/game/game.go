// internal/game/game.go
package game

import (
	"time"

	"runo-server/internal/ident"
	"runo-server/internal/models"
)

const (
	// DeckSize is the fixed card population of a game. The invariant
	// deck + stack + all hands == DeckSize holds after every operation.
	DeckSize = 108

	// MaxPlayerNameLength is the longest accepted display name.
	MaxPlayerNameLength = 16

	MinPlayersAllowed  = 2
	MaxPlayersAllowed  = 10
	DefaultPointsToWin = 250
)

// Game is the entire state of one table: draw pile, discard pile, roster,
// turn direction and scoring target. It is a plain document: every operation
// is a synchronous in-memory transformation, and the whole struct round-trips
// through JSON for persistence. Deck and Stack are ordered bottom-to-top: the
// last element is the top of the pile.
type Game struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Deck        []*models.Card   `json:"deck"`
	Stack       []*models.Card   `json:"stack"`
	CreatedAt   time.Time        `json:"created_at"`
	StartedAt   *time.Time       `json:"started_at"`
	EndedAt     *time.Time       `json:"ended_at"`
	Active      bool             `json:"active"`
	Reverse     bool             `json:"reverse"`
	MinPlayers  int              `json:"min_players"`
	MaxPlayers  int              `json:"max_players"`
	Players     []*models.Player `json:"players"`
	PointsToWin int              `json:"points_to_win"`
}

// NewGame builds an empty game with a freshly shuffled deck and seats the
// creating player as admin. Zero or out-of-range arguments fall back to the
// standard table limits.
func NewGame(name, adminName string, pointsToWin, minPlayers, maxPlayers int) *Game {
	if name == "" {
		name = ident.GameName()
	}
	if pointsToWin <= 0 {
		pointsToWin = DefaultPointsToWin
	}
	if minPlayers < MinPlayersAllowed {
		minPlayers = MinPlayersAllowed
	}
	if maxPlayers <= 0 || maxPlayers > MaxPlayersAllowed {
		maxPlayers = MaxPlayersAllowed
	}
	g := &Game{
		ID:          ident.NewGameID(),
		Name:        name,
		Deck:        newDeck(),
		Stack:       []*models.Card{},
		CreatedAt:   time.Now().UTC(),
		MinPlayers:  minPlayers,
		MaxPlayers:  maxPlayers,
		Players:     []*models.Player{},
		PointsToWin: pointsToWin,
	}
	g.addPlayer(adminName, true)
	g.flashBroadcast(models.InfoMessage(`Click "Start" after all player(s) have joined`))
	return g
}

// PlayerByID returns the player holding the given private identifier, or nil.
func (g *Game) PlayerByID(playerID string) *models.Player {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

func (g *Game) activePlayer() *models.Player {
	for _, p := range g.Players {
		if p.Active {
			return p
		}
	}
	return nil
}

func (g *Game) topOfStack() *models.Card {
	if len(g.Stack) == 0 {
		return nil
	}
	return g.Stack[len(g.Stack)-1]
}

func now() *time.Time {
	t := time.Now().UTC()
	return &t
}
