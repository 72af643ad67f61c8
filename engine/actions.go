package engine

// Start begins the game with the first player in roster order.
func (g *GameState) Start() ([]Event, error) {
	if g.Phase != PhaseIdle {
		return nil, ErrAlreadyStarted
	}
	g.Phase = PhaseAwaitingRoll
	g.Current = 0
	g.WinnerID = 0
	g.HasRolled = false
	g.LastRoll = 0
	g.TurnNumber = 1

	p := g.CurrentPlayer()
	return []Event{
		{Type: EventGameStarted},
		{Type: EventTurnChanged, PlayerID: p.ID, Value: g.TurnNumber},
	}, nil
}

// Roll accepts a die value for the current player and starts the movement
// animation. The caller drives the animation by calling Step with the
// returned pending stage once its delay has elapsed.
func (g *GameState) Roll(value int) ([]Event, error) {
	if err := g.checkRoll(value); err != nil {
		return nil, err
	}

	p := g.CurrentPlayer()
	target, clamped := clampTarget(p.Position, value, g.Board.TotalTiles())

	g.LastRoll = value
	g.HasRolled = true
	g.Phase = PhaseAnimating
	g.Anim = &Animation{
		MovingPlayerID: p.ID,
		LastPosition:   p.Position,
		Path:           ComputePath(p.Position, target),
		Cursor:         -1,
		Target:         target,
		Clamped:        clamped,
		Next:           StageMove,
	}

	return []Event{{Type: EventDiceRolled, PlayerID: p.ID, Value: value, Score: p.Score}}, nil
}

// NextPlayer hands the turn to the next player in roster order. While the
// current roll is still animating the request is remembered and honored
// when the animation finishes.
func (g *GameState) NextPlayer() ([]Event, error) {
	if err := g.checkNextPlayer(); err != nil {
		return nil, err
	}
	if g.Phase == PhaseAnimating {
		g.Anim.AdvanceRequested = true
		return nil, nil
	}
	return g.advanceTurn(), nil
}

// advanceTurn rotates to the next player. Assumes PhaseAwaitingRoll.
func (g *GameState) advanceTurn() []Event {
	g.Current = g.NextIndex(g.Current)
	g.HasRolled = false
	g.LastRoll = 0
	g.TurnNumber++
	return []Event{{Type: EventTurnChanged, PlayerID: g.CurrentPlayerID(), Value: g.TurnNumber}}
}

// Reset restores the initial roster, regenerates the board and returns to
// PhaseIdle from any phase. Continuations scheduled before the reset are
// invalidated by the epoch bump.
func (g *GameState) Reset() []Event {
	g.restoreInitial()
	g.Epoch++
	return []Event{{Type: EventGameReset}}
}
