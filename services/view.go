package services

import "github.com/bellapacxx/squares-backend/game"

// GameView is what clients receive: the document plus derived totals. The
// host's session token is left out; the host appears everywhere else under
// HostParticipantID.
type GameView struct {
	game.State
	CreatorSessionID string               `json:"creatorSessionId,omitempty"`
	PotSize          float64              `json:"potSize"`
	BoxesClaimed     int                  `json:"boxesClaimed"`
	Ready            bool                 `json:"ready"`
	Payouts          []game.PayoutSummary `json:"payouts"`
}

func NewGameView(g game.State) GameView {
	return GameView{
		State:        g,
		PotSize:      g.PotSize(),
		BoxesClaimed: g.BoxesClaimed(),
		Ready:        g.Ready(),
		Payouts:      g.Payouts(),
	}
}

// Event is the envelope pushed over the websocket.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}
