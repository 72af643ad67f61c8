package engine

import "fmt"

// Color is a tile or player color.
type Color uint8

const (
	ColorRed    Color = 0
	ColorBlue   Color = 1
	ColorGreen  Color = 2
	ColorYellow Color = 3
	ColorPurple Color = 4 // tile-only; never matches a player
)

// TilePalette is the fixed order used by the board pattern.
var TilePalette = [...]Color{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple}

var colorNames = [...]string{"red", "blue", "green", "yellow", "purple"}

// String returns the lowercase color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// IsPlayerColor reports whether a player may be assigned this color.
func (c Color) IsPlayerColor() bool { return c <= ColorYellow }

// ParseColor is the inverse of Color.String.
func ParseColor(s string) (Color, error) {
	for i, name := range colorNames {
		if name == s {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// MarshalText encodes the color as its lowercase name.
func (c Color) MarshalText() ([]byte, error) {
	if int(c) >= len(colorNames) {
		return nil, fmt.Errorf("invalid color %d", uint8(c))
	}
	return []byte(colorNames[c]), nil
}

// UnmarshalText parses a lowercase color name.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ---------------------------------------------------------------------------
// Phase: the tagged state of a GameState
// ---------------------------------------------------------------------------

// Phase is the top-level state of the turn engine.
type Phase uint8

const (
	PhaseIdle         Phase = iota // 0: not started
	PhaseAwaitingRoll              // 1
	PhaseAnimating                 // 2: movement/scoring in flight, Anim is set
	PhaseFinished                  // 3: WinnerID is set
)

var phaseNames = [...]string{"idle", "awaiting_roll", "animating", "finished"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// ---------------------------------------------------------------------------
// Stage: pending continuation of the animation pipeline
// ---------------------------------------------------------------------------

// Stage identifies the delayed step the animation pipeline is waiting on.
// The pipeline always runs Move (once per path tile) → Settle → [Flash] → Pause.
type Stage uint8

const (
	StageNone   Stage = iota // 0: pipeline finished
	StageMove                // 1: advance the token one tile
	StageSettle              // 2: score and win evaluation
	StageFlash               // 3: end of the score-flash window
	StagePause               // 4: hand-off to the next turn
)

var stageNames = [...]string{"none", "move", "settle", "flash", "pause"}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// Animation is the ephemeral payload of PhaseAnimating.
type Animation struct {
	MovingPlayerID     int
	LastPosition       int
	Path               []int
	Cursor             int // index into Path of the tile the token is drawn on; -1 before the first tick
	Target             int
	Clamped            bool // roll overshot the final tile
	ScoreFlashPlayerID int  // 0 = no flash
	Next               Stage
	AdvanceRequested   bool // NextPlayer was pressed mid-animation
}

// DisplayPosition returns the tile the moving token should be drawn on.
func (a *Animation) DisplayPosition() int {
	if a.Cursor < 0 {
		return a.LastPosition
	}
	return a.Path[a.Cursor]
}
