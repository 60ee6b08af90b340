// internal/game/errors.go
package game

import "errors"

// Precondition failures: rejected before any state change.
var (
	ErrPlayerNotFound   = errors.New("player not found in game")
	ErrNotActivePlayer  = errors.New("player is not the active player")
	ErrGameNotActive    = errors.New("game is not active")
	ErrGameStarted      = errors.New("game has already started")
	ErrGameEnded        = errors.New("game has already ended")
	ErrGameFull         = errors.New("game is full")
	ErrNotEnoughPlayers = errors.New("not enough players to start")
	ErrNotAdmin         = errors.New("player is not the game administrator")
	ErrCardNotHeld      = errors.New("player does not hold that card")
)

// ErrCardNotPlayable is a rule violation: the acting player has been flashed
// a rejection notice and no other state changed. Callers should still persist
// the game so the notice is delivered.
var ErrCardNotPlayable = errors.New("card cannot be played")

// ErrNoOpeningCard indicates a corrupted deck: a deal found no non-special
// card to open the discard pile with. Unreachable with a standard 108-card
// deck; treated as fatal.
var ErrNoOpeningCard = errors.New("deck contains no non-special opening card")
