// internal/game/turns_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"runo-server/internal/models"
)

func rosterOf(names ...string) []*models.Player {
	players := make([]*models.Player, 0, len(names))
	for _, n := range names {
		players = append(players, &models.Player{ID: n, Name: n})
	}
	return players
}

func TestIteratorForward(t *testing.T) {
	players := rosterOf("a", "b", "c")
	it := newPlayerIterator(players, players[0], false)
	assert.Equal(t, "b", it.next().Name)
	assert.Equal(t, "c", it.next().Name)
	assert.Equal(t, "a", it.next().Name, "wraps at the end")
}

func TestIteratorReversed(t *testing.T) {
	players := rosterOf("a", "b", "c")
	it := newPlayerIterator(players, players[0], true)
	assert.Equal(t, "c", it.next().Name, "wraps at the start")
	assert.Equal(t, "b", it.next().Name)
	assert.Equal(t, "a", it.next().Name)
}

func TestIteratorFromMiddle(t *testing.T) {
	players := rosterOf("a", "b", "c", "d")
	it := newPlayerIterator(players, players[2], false)
	assert.Equal(t, "d", it.next().Name)

	it = newPlayerIterator(players, players[2], true)
	assert.Equal(t, "b", it.next().Name)
}

func TestIteratorNeverRepeatsWithTwoPlayers(t *testing.T) {
	players := rosterOf("a", "b")
	it := newPlayerIterator(players, players[0], false)
	first := it.next()
	second := it.next()
	assert.NotEqual(t, first.Name, second.Name)
}

func TestIteratorSinglePlayer(t *testing.T) {
	players := rosterOf("a")
	it := newPlayerIterator(players, players[0], false)
	assert.Equal(t, "a", it.next().Name)
	assert.Equal(t, "a", it.next().Name)
}
