// internal/game/messages.go
package game

import "runo-server/internal/models"

// flashBroadcast queues a notice for every player at the table.
func (g *Game) flashBroadcast(msg models.Message) {
	for _, p := range g.Players {
		p.Flash(msg)
	}
}

// flashOthers queues a notice for everyone except the given player.
func (g *Game) flashOthers(except *models.Player, msg models.Message) {
	for _, p := range g.Players {
		if p != except {
			p.Flash(msg)
		}
	}
}

// flashExclude queues a notice for everyone not in the excluded set.
func (g *Game) flashExclude(msg models.Message, excluded ...*models.Player) {
	for _, p := range g.Players {
		skip := false
		for _, e := range excluded {
			if p == e {
				skip = true
				break
			}
		}
		if !skip {
			p.Flash(msg)
		}
	}
}
