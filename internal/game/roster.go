// internal/game/roster.go
package game

import (
	"fmt"

	"runo-server/internal/ident"
	"runo-server/internal/models"
)

func (g *Game) addPlayer(name string, admin bool) (*models.Player, error) {
	if len(g.Players) == g.MaxPlayers {
		return nil, ErrGameFull
	}
	if name == "" {
		name = ident.PlayerName()
	}
	p := &models.Player{
		ID:       ident.NewPlayerID(),
		UXID:     ident.NewUXID(),
		Name:     name,
		Admin:    admin,
		Hand:     []*models.Card{},
		Messages: []models.Message{},
	}
	g.Players = append(g.Players, p)
	return p, nil
}

// Join seats a new player. Only games that have not started and not ended
// accept joins, up to max_players.
func (g *Game) Join(name string) (*models.Player, error) {
	if g.Active {
		return nil, ErrGameStarted
	}
	if g.EndedAt != nil {
		return nil, ErrGameEnded
	}
	p, err := g.addPlayer(name, false)
	if err != nil {
		return nil, err
	}
	p.Flash(models.InfoMessage("You have joined the game"))
	g.flashOthers(p, models.InfoMessage(fmt.Sprintf("%s has joined the game", p.Name)))
	return p, nil
}

// Leave removes a player from the roster. An active quitter's turn advances
// on the plain path first, so the engine never walks a roster the quitter has
// already left; discard effects do not replay on a quit. The admin role moves
// to the first remaining player. An active game with one player left ends,
// and a depopulated game is marked ended. While the game remains active the
// quitter's hand returns to the discard pile.
func (g *Game) Leave(playerID string) error {
	quitter := g.PlayerByID(playerID)
	if quitter == nil {
		return ErrPlayerNotFound
	}
	if g.EndedAt != nil {
		return ErrGameEnded
	}
	quitter.Flash(models.InfoMessage("You have left the game"))
	g.flashOthers(quitter, models.InfoMessage(fmt.Sprintf("%s has left the game", quitter.Name)))

	if quitter.Active {
		g.activateNextPlayer(false)
	}

	players := make([]*models.Player, 0, len(g.Players)-1)
	for _, p := range g.Players {
		if p != quitter {
			players = append(players, p)
		}
	}
	g.Players = players

	var newAdmin *models.Player
	if quitter.Admin && len(g.Players) > 0 {
		newAdmin = g.Players[0]
		newAdmin.Admin = true
	}

	if g.Active && len(g.Players) == 1 {
		g.Active = false
		g.Players[0].Active = false
		g.EndedAt = now()
		g.flashBroadcast(models.InfoMessage("The game has ended"))
	}

	// Mid-game the admin role is inert, so the handoff is only announced
	// before the game has started.
	if newAdmin != nil && g.StartedAt == nil && g.EndedAt == nil {
		newAdmin.Flash(models.InfoMessage("You are now the game administrator"))
	}

	if len(g.Players) == 0 {
		g.EndedAt = now()
	}

	if g.Active {
		g.reclaimPlayerCards(quitter)
	}
	return nil
}
