// Package engine implements the rules of the colorful dice board game.
//
// The engine is a pure state machine: every transition is a method on
// GameState that either applies completely or reports an ignored request
// and leaves the state untouched. Timing lives with the caller, which feeds
// the pending animation stage back through Step once its delay elapses.
package engine

// GameState holds the complete state of one game session.
type GameState struct {
	Board      Board
	Players    []Player
	Current    int // index into Players
	Phase      Phase
	HasRolled  bool
	LastRoll   int        // 0 = no roll this turn
	WinnerID   int        // set only in PhaseFinished
	Anim       *Animation // set only in PhaseAnimating
	Epoch      uint64     // bumped by Reset; invalidates pending continuations
	TurnNumber int
	Rules      Rules

	roster []Player
}

// NewGame creates an unstarted game for the given roster. Roster order is
// turn order.
func NewGame(roster []Player, rules Rules) (GameState, error) {
	if err := validateRoster(roster); err != nil {
		return GameState{}, err
	}
	initial := make([]Player, len(roster))
	copy(initial, roster)
	for i := range initial {
		initial[i].Score = 0
		initial[i].Position = 0
	}

	g := GameState{Rules: rules, roster: initial}
	g.restoreInitial()
	return g, nil
}

// restoreInitial puts the aggregate back to its freshly created shape.
// Epoch is left to the caller.
func (g *GameState) restoreInitial() {
	g.Board = NewBoard(BoardSize)
	g.Players = make([]Player, len(g.roster))
	copy(g.Players, g.roster)
	g.Current = 0
	g.Phase = PhaseIdle
	g.HasRolled = false
	g.LastRoll = 0
	g.WinnerID = 0
	g.Anim = nil
	g.TurnNumber = 0
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// IsStarted reports whether Start has been called since the last Reset.
func (g *GameState) IsStarted() bool { return g.Phase != PhaseIdle }

// IsTerminal returns true once a winner exists.
func (g *GameState) IsTerminal() bool { return g.Phase == PhaseFinished }

// IsAnimating reports whether a movement pipeline is in flight.
func (g *GameState) IsAnimating() bool { return g.Phase == PhaseAnimating }

// CurrentPlayer returns the player whose turn it is.
func (g *GameState) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return &g.Players[g.Current]
}

// CurrentPlayerID returns the id of the player whose turn it is.
func (g *GameState) CurrentPlayerID() int {
	if p := g.CurrentPlayer(); p != nil {
		return p.ID
	}
	return 0
}

// PlayerByID returns the player with the given id, or nil.
func (g *GameState) PlayerByID(id int) *Player {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return &g.Players[i]
		}
	}
	return nil
}

// Winner returns the winning player, or nil while the game is undecided.
func (g *GameState) Winner() *Player {
	if g.Phase != PhaseFinished {
		return nil
	}
	return g.PlayerByID(g.WinnerID)
}

// NumPlayers returns the roster size.
func (g *GameState) NumPlayers() int { return len(g.Players) }

// NextIndex returns the roster index after current in turn order.
func (g *GameState) NextIndex(current int) int {
	return (current + 1) % len(g.Players)
}

// ---------------------------------------------------------------------------
// Clone
// ---------------------------------------------------------------------------

// Clone returns a deep copy. Read models are built from clones so the
// presentation layer never aliases live state.
func (g *GameState) Clone() GameState {
	c := *g
	c.Board = g.Board.clone()
	c.Players = make([]Player, len(g.Players))
	copy(c.Players, g.Players)
	c.roster = make([]Player, len(g.roster))
	copy(c.roster, g.roster)
	if g.Anim != nil {
		a := *g.Anim
		a.Path = make([]int, len(g.Anim.Path))
		copy(a.Path, g.Anim.Path)
		c.Anim = &a
	}
	return c
}
