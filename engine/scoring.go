package engine

import (
	"fmt"
	"sort"
)

// scoreLanding awards MatchPoints when p stands on a tile of its own color.
func (g *GameState) scoreLanding(p *Player) (bool, []Event) {
	color, ok := g.Board.TileColor(p.Position)
	if !ok || color != p.Color {
		return false, nil
	}
	p.Score += MatchPoints
	return true, []Event{{Type: EventPointsAwarded, PlayerID: p.ID, Value: MatchPoints, Score: p.Score}}
}

// checkWin reports whether p has reached the winning score. Turns are
// strictly sequential so the first player across the threshold wins.
func (g *GameState) checkWin(p *Player) bool {
	return p.Score >= WinningScore
}

// Standing is one row of the score card.
type Standing struct {
	Rank   int // 1-based
	Label  string
	Player Player
}

// Standings returns the players ordered by score, highest first. Equal
// scores keep roster order.
func (g *GameState) Standings() []Standing {
	sorted := make([]Player, len(g.Players))
	copy(sorted, g.Players)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	out := make([]Standing, len(sorted))
	for i, p := range sorted {
		out[i] = Standing{Rank: i + 1, Label: ordinal(i + 1), Player: p}
	}
	return out
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return fmt.Sprintf("%dth", n)
}
