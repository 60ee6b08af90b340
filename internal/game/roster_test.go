// internal/game/roster_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runo-server/internal/models"
)

func TestNewGameSeatsAdmin(t *testing.T) {
	g := NewGame("", "Alice", 0, 0, 0)

	require.Len(t, g.Players, 1)
	admin := g.Players[0]
	assert.True(t, admin.Admin)
	assert.False(t, admin.Active)
	assert.NotEmpty(t, admin.ID)
	assert.NotEmpty(t, admin.UXID)
	assert.NotEqual(t, admin.ID, admin.UXID)
	assert.Equal(t, MinPlayersAllowed, g.MinPlayers)
	assert.Equal(t, MaxPlayersAllowed, g.MaxPlayers)
	assert.Len(t, g.Deck, DeckSize)
	assert.Empty(t, g.Stack)
	assert.Nil(t, g.StartedAt)
	assert.Nil(t, g.EndedAt)
}

func TestJoin(t *testing.T) {
	g := NewGame("", "Alice", 0, 0, 0)
	bob, err := g.Join("Bob")

	require.NoError(t, err)
	assert.False(t, bob.Admin)
	assert.False(t, bob.Active)
	assert.True(t, hasMessage(bob, models.MessageInfo, "You have joined the game"))
	assert.True(t, hasMessage(g.Players[0], models.MessageInfo, "Bob has joined the game"))
}

func TestJoinGeneratesMissingName(t *testing.T) {
	g := NewGame("", "Alice", 0, 0, 0)
	p, err := g.Join("")
	require.NoError(t, err)
	assert.NotEmpty(t, p.Name)
}

func TestJoinFullGame(t *testing.T) {
	g := NewGame("", "Alice", 0, 0, 2)
	_, err := g.Join("Bob")
	require.NoError(t, err)
	_, err = g.Join("Carol")
	assert.ErrorIs(t, err, ErrGameFull)
}

func TestJoinStartedOrEndedGame(t *testing.T) {
	g := startedGame(t, "Alice", "Bob")
	_, err := g.Join("Carol")
	assert.ErrorIs(t, err, ErrGameStarted)

	g.Active = false
	g.EndedAt = now()
	_, err = g.Join("Carol")
	assert.ErrorIs(t, err, ErrGameEnded)
}

func TestLeaveBeforeStartHandsOffAdmin(t *testing.T) {
	g := NewGame("", "Alice", 0, 0, 0)
	alice := g.Players[0]
	bob, err := g.Join("Bob")
	require.NoError(t, err)

	require.NoError(t, g.Leave(alice.ID))

	require.Len(t, g.Players, 1)
	assert.True(t, bob.Admin)
	assert.True(t, hasMessage(bob, models.MessageInfo, "You are now the game administrator"))
	assert.True(t, hasMessage(bob, models.MessageInfo, "Alice has left the game"))
	assert.Nil(t, g.EndedAt, "a populated unstarted game stays open")
}

func TestActiveAdminQuitsTwoPlayerGame(t *testing.T) {
	g := startedGame(t, "Alice", "Bob")
	alice, bob := g.Players[0], g.Players[1]
	require.True(t, alice.Active)

	require.NoError(t, g.Leave(alice.ID))

	require.Len(t, g.Players, 1)
	assert.False(t, g.Active, "one player left ends the game")
	assert.NotNil(t, g.EndedAt)
	assert.False(t, bob.Active, "no active player once the game has ended")
	assert.True(t, bob.Admin, "admin role transfers even mid-game")
	assert.False(t, hasMessage(bob, models.MessageInfo, "You are now the game administrator"),
		"mid-game admin handoff is not announced")
	assert.True(t, hasMessage(bob, models.MessageInfo, "The game has ended"))
}

func TestActiveQuitterAdvancesTurnWithoutEffects(t *testing.T) {
	g := startedGame(t, "Alice", "Bob", "Carol")
	alice, bob, carol := g.Players[0], g.Players[1], g.Players[2]
	// A DRAW_TWO on top of the discard must not re-apply when the active
	// player quits.
	setDiscardTop(g, models.ValueDrawTwo, models.ColorRed)
	bobCards := len(bob.Hand)

	require.NoError(t, g.Leave(alice.ID))

	require.Len(t, g.Players, 2)
	assert.True(t, bob.Active, "turn passes to the immediate neighbor")
	assert.False(t, carol.Active)
	assert.Len(t, bob.Hand, bobCards, "discard effects do not replay on a quit")
}

func TestQuitterHandIsReclaimedWhileGameActive(t *testing.T) {
	g := startedGame(t, "Alice", "Bob", "Carol")
	carol := g.Players[2]
	stackSize := len(g.Stack)
	top := g.topOfStack()

	require.NoError(t, g.Leave(carol.ID))

	assert.True(t, g.Active, "two players remain")
	assert.Len(t, g.Stack, stackSize+7, "quitter's hand goes into the discard pile")
	assert.Equal(t, top.ID, g.topOfStack().ID, "discard top unaffected")
	assert.Equal(t, DeckSize, countCards(g))
}

func TestLastPlayerLeavingEndsGame(t *testing.T) {
	g := NewGame("", "Alice", 0, 0, 0)
	require.NoError(t, g.Leave(g.Players[0].ID))
	assert.Empty(t, g.Players)
	assert.NotNil(t, g.EndedAt)
}

func TestLeavePreconditions(t *testing.T) {
	g := NewGame("", "Alice", 0, 0, 0)
	assert.ErrorIs(t, g.Leave("nobody"), ErrPlayerNotFound)

	g.EndedAt = now()
	assert.ErrorIs(t, g.Leave(g.Players[0].ID), ErrGameEnded)
}
