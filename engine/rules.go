package engine

// Board and scoring constants. The board size and scoring rules are fixed.
const (
	BoardSize    = 5
	TotalTiles   = BoardSize * BoardSize
	WinningScore = 30
	MatchPoints  = 10
	DieMin       = 1
	DieMax       = 6
)

// Rules holds the behavioural switches of the turn loop.
type Rules struct {
	// AutoAdvance hands the turn to the next player at the end of every
	// animation. When false the same player stays current until NextPlayer.
	AutoAdvance bool
}

// DefaultRules returns the standard rules (automatic turn hand-off).
func DefaultRules() Rules {
	return Rules{AutoAdvance: true}
}

// clampTarget returns where a token at position lands after moving value
// tiles. Overshooting stops exactly on the final tile.
func clampTarget(position, value, totalTiles int) (target int, clamped bool) {
	target = position + value
	if target >= totalTiles {
		return totalTiles - 1, true
	}
	return target, false
}
