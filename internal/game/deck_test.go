// internal/game/deck_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runo-server/internal/models"
)

func countCards(g *Game) int {
	n := len(g.Deck) + len(g.Stack)
	for _, p := range g.Players {
		n += len(p.Hand)
	}
	return n
}

func TestNewDeckComposition(t *testing.T) {
	deck := newDeck()
	require.Len(t, deck, DeckSize)

	type face struct {
		value models.Value
		color models.Color
	}
	counts := make(map[face]int)
	for _, c := range deck {
		counts[face{c.Value, c.Color}]++
	}

	for _, color := range models.Colors {
		assert.Equal(t, 1, counts[face{models.ValueZero, color}], "one %s 0", color)
		for _, v := range models.NumberValues[1:] {
			assert.Equal(t, 2, counts[face{v, color}], "two %s %s", color, v)
		}
		for _, v := range models.ColoredSpecialValues {
			assert.Equal(t, 2, counts[face{v, color}], "two %s %s", color, v)
		}
	}
	assert.Equal(t, 4, counts[face{models.ValueWild, models.ColorNone}])
	assert.Equal(t, 4, counts[face{models.ValueWildDrawFour, models.ColorNone}])
}

func TestShuffleIsPermutation(t *testing.T) {
	deck := newDeck()
	before := make(map[string]int)
	for _, c := range deck {
		before[c.ID]++
	}
	shuffleCards(deck)
	after := make(map[string]int)
	for _, c := range deck {
		after[c.ID]++
	}
	assert.Equal(t, before, after)
}

func TestDrawCardReclaimsEmptyDeck(t *testing.T) {
	g := NewGame("", "Alice", 0, 0, 0)
	p := g.Players[0]

	// Leave one card in the deck and stage a discard pile containing a wild
	// with a chosen color.
	wild := newCard(models.ValueWild, models.ColorNone)
	wild.Color = models.ColorBlue
	top := newCard(models.ValueFive, models.ColorRed)
	g.Deck = g.Deck[:1]
	g.Stack = []*models.Card{newCard(models.ValueTwo, models.ColorGreen), wild, top}

	g.drawCard(p, false)

	require.Len(t, p.Hand, 1)
	assert.Len(t, g.Stack, 1, "reclaim must reseed exactly one discard card")
	assert.Equal(t, top.ID, g.Stack[0].ID, "discard top must survive the reclaim")
	assert.Len(t, g.Deck, 2)
	for _, c := range g.Deck {
		if c.Value.IsWild() {
			assert.Equal(t, models.ColorNone, c.Color, "wild colors must be scrubbed on reclaim")
		}
	}
}

func TestDrawCardWithOnlyDiscardTopLeft(t *testing.T) {
	g := NewGame("", "Alice", 0, 0, 0)
	p := g.Players[0]

	// Everything but the discard top is in hands; the one stack card can
	// never become a drawable deck.
	p.Hand = g.Deck
	g.Deck = []*models.Card{}
	g.Stack = []*models.Card{newCard(models.ValueFive, models.ColorRed)}
	handSize := len(p.Hand)

	card := g.drawCard(p, false)

	assert.Nil(t, card)
	assert.Len(t, p.Hand, handSize)
	assert.Len(t, g.Stack, 1, "discard top stays in place")
	assert.Empty(t, g.Deck)
}

func TestReclaimPlayerCards(t *testing.T) {
	g := NewGame("", "Alice", 0, 0, 0)
	p := g.Players[0]
	top := newCard(models.ValueNine, models.ColorYellow)
	g.Stack = []*models.Card{newCard(models.ValueOne, models.ColorRed), top}
	held := []*models.Card{
		newCard(models.ValueThree, models.ColorBlue),
		newCard(models.ValueSkip, models.ColorGreen),
	}
	p.Hand = append([]*models.Card{}, held...)

	g.reclaimPlayerCards(p)

	require.Empty(t, p.Hand)
	require.Len(t, g.Stack, 4)
	assert.Equal(t, held[0].ID, g.Stack[0].ID, "hand goes to the bottom of the stack")
	assert.Equal(t, held[1].ID, g.Stack[1].ID)
	assert.Equal(t, top.ID, g.Stack[len(g.Stack)-1].ID, "discard top unaffected")
}

func TestDealCards(t *testing.T) {
	g := NewGame("", "Alice", 0, 0, 0)
	_, err := g.Join("Bob")
	require.NoError(t, err)

	require.NoError(t, g.dealCards())

	for _, p := range g.Players {
		assert.Len(t, p.Hand, 7)
	}
	require.Len(t, g.Stack, 1)
	assert.False(t, g.Stack[0].Value.IsSpecial(), "opening discard must not be a special card")
	assert.Equal(t, DeckSize, countCards(g))
}

func TestDealFailsWithoutPlainCard(t *testing.T) {
	g := NewGame("", "Alice", 0, 0, 0)
	_, err := g.Join("Bob")
	require.NoError(t, err)

	deck := make([]*models.Card, 0, 20)
	for i := 0; i < 20; i++ {
		deck = append(deck, newCard(models.ValueSkip, models.ColorRed))
	}
	g.Deck = deck

	assert.ErrorIs(t, g.dealCards(), ErrNoOpeningCard)
}
