// internal/models/player.go
package models

// Player is one seat at the table. Exactly one player per game holds Admin;
// at most one holds Active while the game is running. The ID is the player's
// private credential; UXID is the public identifier shown to other players.
type Player struct {
	ID         string    `json:"id"`
	UXID       string    `json:"ux_id"`
	Name       string    `json:"name"`
	Admin      bool      `json:"admin"`
	Active     bool      `json:"active"`
	Hand       []*Card   `json:"hand"`
	Points     int       `json:"points"`
	RoundsWon  int       `json:"rounds_won"`
	GameWinner bool      `json:"game_winner"`
	Messages   []Message `json:"messages"`
}

// HoldsCard returns the card with the given id from the player's hand, or nil.
func (p *Player) HoldsCard(cardID string) *Card {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return c
		}
	}
	return nil
}

// Flash appends a notice to the player's outbox.
func (p *Player) Flash(msg Message) {
	p.Messages = append(p.Messages, msg)
}
