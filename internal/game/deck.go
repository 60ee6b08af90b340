// internal/game/deck.go
package game

import (
	"math/rand"

	"runo-server/internal/ident"
	"runo-server/internal/models"
)

const handSize = 7

func newCard(value models.Value, color models.Color) *models.Card {
	return &models.Card{ID: ident.NewCardID(), Value: value, Color: color}
}

// newDeck builds the standard 108-card deck, shuffled: per color one "0",
// two each of "1".."9", two each of DRAW_TWO/SKIP/REVERSE, plus four
// colorless WILD and four colorless WILD_DRAW_FOUR.
func newDeck() []*models.Card {
	cards := make([]*models.Card, 0, DeckSize)
	for _, color := range models.Colors {
		cards = append(cards, newCard(models.NumberValues[0], color))
		for _, value := range models.NumberValues[1:] {
			cards = append(cards, newCard(value, color), newCard(value, color))
		}
		for _, value := range models.ColoredSpecialValues {
			cards = append(cards, newCard(value, color), newCard(value, color))
		}
	}
	for _, value := range models.WildValues {
		for i := 0; i < 4; i++ {
			cards = append(cards, newCard(value, models.ColorNone))
		}
	}
	shuffleCards(cards)
	return cards
}

// shuffleCards permutes in place via Fisher–Yates.
func shuffleCards(cards []*models.Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// drawCard moves the top deck card into the player's hand and returns it.
// When the deck empties the discard pile is reclaimed, so the draw pile never
// permanently runs dry while cards remain in play. Returns nil without
// drawing when every card outside the discard top sits in hands; a one-card
// discard pile cannot be reclaimed into a drawable deck.
func (g *Game) drawCard(p *models.Player, isDeal bool) *models.Card {
	if len(g.Deck) == 0 {
		g.reclaimStack(isDeal)
		if len(g.Deck) == 0 {
			return nil
		}
	}
	top := len(g.Deck) - 1
	card := g.Deck[top]
	p.Hand = append(p.Hand, card)
	g.Deck = g.Deck[:top]
	if len(g.Deck) == 0 {
		g.reclaimStack(isDeal)
	}
	return card
}

func (g *Game) drawTwo(p *models.Player) {
	g.drawCard(p, false)
	g.drawCard(p, false)
}

func (g *Game) drawFour(p *models.Player) {
	g.drawTwo(p)
	g.drawTwo(p)
}

// reclaimStack turns the discard pile into the new draw pile. During a deal
// the discard is left empty; otherwise the discard top is popped back out
// first so play continues against the same card. The new deck is shuffled
// and wild-family cards have their chosen color scrubbed.
func (g *Game) reclaimStack(isDeal bool) {
	if len(g.Stack) == 0 {
		return
	}
	g.Deck = g.Stack
	if isDeal {
		g.Stack = []*models.Card{}
	} else {
		top := len(g.Deck) - 1
		g.Stack = []*models.Card{g.Deck[top]}
		g.Deck = g.Deck[:top]
	}
	shuffleCards(g.Deck)
	for _, c := range g.Deck {
		if c.Value.IsWild() {
			c.Color = models.ColorNone
		}
	}
}

// reclaimPlayerCards inserts the player's hand at the bottom of the discard
// pile, leaving the discard top unaffected, and empties the hand. Used when a
// player quits or a round ends.
func (g *Game) reclaimPlayerCards(p *models.Player) {
	stack := make([]*models.Card, 0, len(p.Hand)+len(g.Stack))
	stack = append(stack, p.Hand...)
	stack = append(stack, g.Stack...)
	g.Stack = stack
	p.Hand = []*models.Card{}
}

func (g *Game) reclaimAllHands() {
	for _, p := range g.Players {
		g.reclaimPlayerCards(p)
	}
}

// dealCards draws seven cards per player, then opens the discard pile with
// the lowest non-special card in the deck, leaving deck order otherwise
// unchanged. A deck with no non-special card left is corrupted and fatal.
func (g *Game) dealCards() error {
	for _, p := range g.Players {
		for i := 0; i < handSize; i++ {
			g.drawCard(p, true)
		}
	}
	chosen := -1
	for i, c := range g.Deck {
		if !c.Value.IsSpecial() {
			chosen = i
			break
		}
	}
	if chosen == -1 {
		return ErrNoOpeningCard
	}
	card := g.Deck[chosen]
	g.Deck = append(g.Deck[:chosen], g.Deck[chosen+1:]...)
	g.Stack = append(g.Stack, card)
	return nil
}
