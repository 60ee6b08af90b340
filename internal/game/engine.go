// internal/game/engine.go
package game

import (
	"fmt"

	"runo-server/internal/models"
)

// CanPlay reports whether the card is legal against the current discard top.
// Wild-family cards are always legal; anything else must match the top's
// color or value.
func (g *Game) CanPlay(card *models.Card) bool {
	if card.Value.IsWild() {
		return true
	}
	top := g.topOfStack()
	if top == nil {
		return false
	}
	return card.Color == top.Color || card.Value == top.Value
}

// hasMatchingColorCard reports whether the player holds a card of the current
// discard color. A WILD_DRAW_FOUR may not be played while this is true.
func (g *Game) hasMatchingColorCard(p *models.Player) bool {
	top := g.topOfStack()
	if top == nil {
		return false
	}
	for _, c := range p.Hand {
		if c.Color == top.Color {
			return true
		}
	}
	return false
}

// PlayCard resolves one play attempt by the given player. Rule violations
// flash a private rejection notice and leave the game otherwise untouched;
// callers should persist the game even on ErrCardNotPlayable so the notice
// is delivered.
func (g *Game) PlayCard(playerID, cardID string, selectedColor models.Color) error {
	if !g.Active {
		return ErrGameNotActive
	}
	p := g.PlayerByID(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	if !p.Active {
		return ErrNotActivePlayer
	}
	card := p.HoldsCard(cardID)
	if card == nil {
		return ErrCardNotHeld
	}

	rejection := models.DangerMessage("You can't play that card!")
	if !g.CanPlay(card) {
		p.Flash(rejection)
		return ErrCardNotPlayable
	}
	if card.Value == models.ValueWildDrawFour && g.hasMatchingColorCard(p) {
		p.Flash(rejection)
		return ErrCardNotPlayable
	}
	if card.Value.IsWild() {
		// Known quirk kept from the original rules: an invalid chosen color
		// flashes the rejection notice but the play still proceeds with that
		// color assigned.
		if !selectedColor.Valid() {
			p.Flash(rejection)
		}
		card.Color = selectedColor
	}

	hand := p.Hand[:0]
	for _, c := range p.Hand {
		if c != card {
			hand = append(hand, c)
		}
	}
	p.Hand = hand
	g.Stack = append(g.Stack, card)

	if len(p.Hand) == 1 {
		p.Flash(models.InfoMessage("Only one card to go!"))
		g.flashOthers(p, models.WarningMessage(fmt.Sprintf("%s only has one card left!", p.Name)))
	}

	if card.Value == models.ValueReverse {
		g.Reverse = !g.Reverse
		// With two players REVERSE acts as a skip, announced during turn
		// advancement instead.
		if len(g.Players) != 2 {
			if g.Reverse {
				g.flashBroadcast(models.InfoMessage("Game order has been reversed"))
			} else {
				g.flashBroadcast(models.InfoMessage("Game order is back to normal"))
			}
		}
	}

	if len(p.Hand) == 0 {
		return g.setRoundWinner(p)
	}
	g.activateNextPlayer(true)
	return nil
}

// DrawCard draws one card for the active player. If the drawn card cannot be
// played against the discard top the draw counts as a forced pass and the
// turn advances; otherwise the player stays active to decide. When no card
// can be drawn at all the turn passes with a notice to the player.
func (g *Game) DrawCard(playerID string) error {
	if !g.Active {
		return ErrGameNotActive
	}
	p := g.PlayerByID(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	if !p.Active {
		return ErrNotActivePlayer
	}
	drawn := g.drawCard(p, false)
	if drawn == nil {
		p.Flash(models.InfoMessage("There are no cards left to draw"))
		g.activateNextPlayer(false)
		return nil
	}
	if !g.CanPlay(drawn) {
		g.activateNextPlayer(false)
		g.flashOthers(p, models.InfoMessage(fmt.Sprintf("%s drew a card but couldn't play it", p.Name)))
	} else {
		p.Flash(models.InfoMessage("You drew a card"))
	}
	return nil
}

// activateNextPlayer deactivates the current active player and activates the
// next one in turn order. When applyEffects is set, the discard top's effect
// is applied first: SKIP (and REVERSE at a two-player table) skips the
// immediate neighbor, DRAW_TWO/WILD_DRAW_FOUR make them draw and then skips
// them. Turn advances caused by a forced pass or a quit use the plain path.
func (g *Game) activateNextPlayer(applyEffects bool) {
	current := g.activePlayer()
	if current == nil {
		return
	}
	current.Active = false
	iter := newPlayerIterator(g.Players, current, g.Reverse)
	next := iter.next()
	if applyEffects {
		last := g.topOfStack()
		switch {
		case len(g.Players) == 2 && last.Value == models.ValueReverse:
			next.Flash(models.WarningMessage(fmt.Sprintf("%s just skipped you via REVERSE!", current.Name)))
			g.flashExclude(models.InfoMessage(fmt.Sprintf("%s just skipped %s via REVERSE!", current.Name, next.Name)), current, next)
			next = iter.next()
		case last.Value == models.ValueSkip:
			next.Flash(models.WarningMessage(fmt.Sprintf("%s just skipped you!", current.Name)))
			g.flashExclude(models.InfoMessage(fmt.Sprintf("%s just skipped %s!", current.Name, next.Name)), current, next)
			next = iter.next()
		case last.Value == models.ValueDrawTwo:
			g.drawTwo(next)
			next.Flash(models.WarningMessage(fmt.Sprintf("%s made you draw two cards!", current.Name)))
			g.flashExclude(models.InfoMessage(fmt.Sprintf("%s made %s draw two cards!", current.Name, next.Name)), current, next)
			next = iter.next()
		case last.Value == models.ValueWildDrawFour:
			g.drawFour(next)
			next.Flash(models.WarningMessage(fmt.Sprintf("%s made you draw four cards!", current.Name)))
			g.flashExclude(models.InfoMessage(fmt.Sprintf("%s made %s draw four cards!", current.Name, next.Name)), current, next)
			next = iter.next()
		}
	}
	next.Active = true
}

// opponentPoints sums the hand values of every player except the winner.
func (g *Game) opponentPoints(winner *models.Player) int {
	points := 0
	for _, p := range g.Players {
		if p == winner {
			continue
		}
		for _, c := range p.Hand {
			points += c.Points()
		}
	}
	return points
}

// setRoundWinner credits the winner with the opponents' hand points. If the
// point target is reached the game ends; otherwise all hands return to the
// discard pile, a fresh round is dealt and the turn advances.
func (g *Game) setRoundWinner(winner *models.Player) error {
	winner.Points += g.opponentPoints(winner)
	winner.RoundsWon++
	if winner.Points >= g.PointsToWin {
		g.setGameWinner(winner)
		return nil
	}
	g.reclaimAllHands()
	if err := g.dealCards(); err != nil {
		return err
	}
	g.activateNextPlayer(true)
	winner.Flash(models.SuccessMessage("You won the round!"))
	g.flashOthers(winner, models.InfoMessage(fmt.Sprintf("%s won the round!", winner.Name)))
	return nil
}

func (g *Game) setGameWinner(winner *models.Player) {
	g.Active = false
	winner.Active = false
	g.EndedAt = now()
	winner.GameWinner = true
	winner.Flash(models.SuccessMessage("You won the game!"))
	g.flashOthers(winner, models.InfoMessage(fmt.Sprintf("%s won the game!", winner.Name)))
}

// Start deals the opening round and activates the admin. Only the admin of a
// not-yet-started game with enough players may start it.
func (g *Game) Start(playerID string) error {
	if g.Active {
		return ErrGameStarted
	}
	if g.EndedAt != nil {
		return ErrGameEnded
	}
	if len(g.Players) < g.MinPlayers {
		return ErrNotEnoughPlayers
	}
	p := g.PlayerByID(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	if !p.Admin {
		return ErrNotAdmin
	}
	if err := g.dealCards(); err != nil {
		return err
	}
	p.Active = true
	g.Active = true
	g.StartedAt = now()
	p.Flash(models.InfoMessage("The game has started"))
	g.flashOthers(p, models.InfoMessage(fmt.Sprintf("%s started the game", p.Name)))
	g.flashBroadcast(models.InfoMessage(fmt.Sprintf("The first player to reach %d points wins!", g.PointsToWin)))
	return nil
}
