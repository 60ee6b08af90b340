// internal/game/view.go
package game

import (
	"time"

	"runo-server/internal/models"
)

// PlayerView is one roster entry as seen by a particular viewer. Only the
// viewer's own entry carries the private id and the full hand; everyone else
// is reduced to a hand size and public fields.
type PlayerView struct {
	ID           string         `json:"id,omitempty"`
	UXID         string         `json:"ux_id"`
	Name         string         `json:"name"`
	Admin        bool           `json:"admin"`
	Active       bool           `json:"active"`
	HandSize     int            `json:"hand_size"`
	Hand         []*models.Card `json:"hand,omitempty"`
	Points       int            `json:"points"`
	RoundsWon    int            `json:"rounds_won"`
	GameWinner   bool           `json:"game_winner"`
	DrawRequired *bool          `json:"draw_required,omitempty"`
}

// GameView is the redacted projection served to a polling client: piles are
// reduced to counts plus the discard top, and the viewer's pending notices
// ride along.
type GameView struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	CreatedAt       time.Time        `json:"created_at"`
	StartedAt       *time.Time       `json:"started_at"`
	EndedAt         *time.Time       `json:"ended_at"`
	Active          bool             `json:"active"`
	Reverse         bool             `json:"reverse"`
	MinPlayers      int              `json:"min_players"`
	MaxPlayers      int              `json:"max_players"`
	PointsToWin     int              `json:"points_to_win"`
	DrawPileSize    int              `json:"draw_pile_size"`
	DiscardPileSize int              `json:"discard_pile_size"`
	LastDiscard     *models.Card     `json:"last_discard"`
	Players         []*PlayerView    `json:"players"`
	Messages        []models.Message `json:"messages"`
}

// StateFor projects the game for one viewing player, draining the viewer's
// message outbox into the view. The second return value reports whether any
// messages were drained, in which case the caller must persist the game so
// they are not delivered twice. The viewer's draw_required flag is present
// only while they are active: true when no card in hand is playable, an
// explicit false otherwise.
func (g *Game) StateFor(playerID string) (*GameView, bool, error) {
	viewer := g.PlayerByID(playerID)
	if viewer == nil {
		return nil, false, ErrPlayerNotFound
	}

	messages := viewer.Messages
	drained := len(messages) > 0
	if drained {
		viewer.Messages = []models.Message{}
	}
	if messages == nil {
		messages = []models.Message{}
	}

	view := &GameView{
		ID:              g.ID,
		Name:            g.Name,
		CreatedAt:       g.CreatedAt,
		StartedAt:       g.StartedAt,
		EndedAt:         g.EndedAt,
		Active:          g.Active,
		Reverse:         g.Reverse,
		MinPlayers:      g.MinPlayers,
		MaxPlayers:      g.MaxPlayers,
		PointsToWin:     g.PointsToWin,
		DrawPileSize:    len(g.Deck),
		DiscardPileSize: len(g.Stack),
		LastDiscard:     g.topOfStack(),
		Players:         make([]*PlayerView, 0, len(g.Players)),
		Messages:        messages,
	}

	for _, p := range g.Players {
		pv := &PlayerView{
			UXID:       p.UXID,
			Name:       p.Name,
			Admin:      p.Admin,
			Active:     p.Active,
			HandSize:   len(p.Hand),
			Points:     p.Points,
			RoundsWon:  p.RoundsWon,
			GameWinner: p.GameWinner,
		}
		if p == viewer {
			pv.ID = p.ID
			pv.Hand = p.Hand
			// The flag is present only on an active viewer's own entry,
			// explicitly false when a playable card is in hand.
			if p.Active {
				required := true
				for _, c := range p.Hand {
					if g.CanPlay(c) {
						required = false
						break
					}
				}
				pv.DrawRequired = &required
			}
		}
		view.Players = append(view.Players, pv)
	}
	return view, drained, nil
}
