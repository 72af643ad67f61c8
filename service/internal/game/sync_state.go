package game

import (
	"github.com/Neha1998/colorful-dice-adventure/engine"
	"github.com/google/uuid"
)

// PlayerView is one player as shown to the UI.
type PlayerView struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	Color           engine.Color `json:"color"`
	Score           int          `json:"score"`
	Position        int          `json:"position"`        // committed tile
	DisplayPosition int          `json:"displayPosition"` // tile to draw the token on
}

// StandingView is one row of the score card.
type StandingView struct {
	Rank     int    `json:"rank"`
	Label    string `json:"label"`
	PlayerID int    `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// View is a read-only snapshot of a session for presentation. It shares no
// memory with the live state.
type View struct {
	SessionID              uuid.UUID      `json:"sessionId"`
	Phase                  string         `json:"phase"`
	Started                bool           `json:"started"`
	CurrentPlayerID        *int           `json:"currentPlayerId"`
	CurrentPlayerHasRolled bool           `json:"currentPlayerHasRolled"`
	LastRoll               *int           `json:"lastRoll"`
	Winner                 *PlayerView    `json:"winner"`
	Players                []PlayerView   `json:"players"`
	Board                  []engine.Color `json:"board"`
	BoardSize              int            `json:"boardSize"`
	Spiral                 [][]int        `json:"spiral"`
	Standings              []StandingView `json:"standings"`

	MovingPlayerID     *int  `json:"movingPlayerId"`
	LastPosition       *int  `json:"lastPosition"`
	AnimationPath      []int `json:"animationPath,omitempty"`
	AnimationCursor    *int  `json:"animationCursor"`
	ScoreFlashPlayerID *int  `json:"scoreFlashPlayerId"`
	DiceRolling        bool  `json:"diceRolling"`

	Epoch   uint64 `json:"epoch"`
	Turn    int    `json:"turn"`
	Version uint64 `json:"version"` // grows with every pushed view; older ones are stale
}

func intPtr(v int) *int { return &v }

// viewLocked builds a View from a clone of the engine state.
// Assumes lock is held by caller.
func (s *Session) viewLocked() View {
	g := s.state.Clone()

	v := View{
		SessionID:   s.ID,
		Phase:       g.Phase.String(),
		Started:     g.IsStarted(),
		Board:       g.Board.Tiles,
		BoardSize:   g.Board.Size,
		Spiral:      engine.SpiralGrid(g.Board.Size),
		DiceRolling: s.rolling,
		Epoch:       g.Epoch,
		Turn:        g.TurnNumber,
		Version:     s.version,
	}
	if g.IsStarted() {
		v.CurrentPlayerID = intPtr(g.CurrentPlayerID())
		v.CurrentPlayerHasRolled = g.HasRolled
	}
	if g.LastRoll != 0 {
		v.LastRoll = intPtr(g.LastRoll)
	}

	v.Players = make([]PlayerView, len(g.Players))
	for i, p := range g.Players {
		pv := PlayerView{
			ID:              p.ID,
			Name:            p.Name,
			Color:           p.Color,
			Score:           p.Score,
			Position:        p.Position,
			DisplayPosition: p.Position,
		}
		if g.Anim != nil && g.Anim.MovingPlayerID == p.ID {
			pv.DisplayPosition = g.Anim.DisplayPosition()
		}
		v.Players[i] = pv
		if p.ID == g.WinnerID && g.IsTerminal() {
			w := pv
			v.Winner = &w
		}
	}

	for _, st := range g.Standings() {
		v.Standings = append(v.Standings, StandingView{
			Rank:     st.Rank,
			Label:    st.Label,
			PlayerID: st.Player.ID,
			Name:     st.Player.Name,
			Score:    st.Player.Score,
		})
	}

	if a := g.Anim; a != nil {
		v.MovingPlayerID = intPtr(a.MovingPlayerID)
		v.LastPosition = intPtr(a.LastPosition)
		v.AnimationPath = a.Path
		v.AnimationCursor = intPtr(a.Cursor)
		if a.ScoreFlashPlayerID != 0 {
			v.ScoreFlashPlayerID = intPtr(a.ScoreFlashPlayerID)
		}
	}
	return v
}
