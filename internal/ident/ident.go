// internal/ident/ident.go
package ident

import (
	"math/rand"

	"github.com/google/uuid"
)

const (
	uxIDLength   = 8
	cardIDLength = 6

	nameDigits = 5

	defaultGameName   = "Game"
	defaultPlayerName = "Player"
)

const idChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
const digitChars = "0123456789"

// NewGameID returns an opaque identifier for a game.
func NewGameID() string {
	return uuid.NewString()
}

// NewPlayerID returns an opaque identifier for a player. Possession of this
// string is the player's only credential.
func NewPlayerID() string {
	return uuid.NewString()
}

// NewUXID returns a short public identifier for a player, safe to show to
// other players.
func NewUXID() string {
	return randomString(idChars, uxIDLength)
}

// NewCardID returns a short identifier for a card. Uniqueness only matters
// within a single 108-card deck.
func NewCardID() string {
	return randomString(idChars, cardIDLength)
}

// GameName returns a generated display name for an unnamed game.
func GameName() string {
	return defaultGameName + randomString(digitChars, nameDigits)
}

// PlayerName returns a generated display name for an unnamed player.
func PlayerName() string {
	return defaultPlayerName + randomString(digitChars, nameDigits)
}

func randomString(charset string, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
