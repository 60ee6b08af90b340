// internal/game/turns.go
package game

import "runo-server/internal/models"

// playerIterator is a directional cursor over the roster. It never touches
// player flags; activating and deactivating players is the engine's job.
type playerIterator struct {
	players []*models.Player
	index   int
	step    int
}

func newPlayerIterator(players []*models.Player, current *models.Player, reversed bool) *playerIterator {
	step := 1
	if reversed {
		step = -1
	}
	index := 0
	for i, p := range players {
		if p == current {
			index = i
			break
		}
	}
	return &playerIterator{players: players, index: index, step: step}
}

// next advances the cursor one step, wrapping at both ends, and returns the
// player now pointed to.
func (it *playerIterator) next() *models.Player {
	it.index += it.step
	if it.index < 0 {
		it.index = len(it.players) - 1
	} else if it.index == len(it.players) {
		it.index = 0
	}
	return it.players[it.index]
}
