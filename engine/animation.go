package engine

// Step runs the pending continuation of the animation pipeline and returns
// the stage to schedule next, or StageNone once the pipeline is done.
//
// epoch and stage must be the values captured when the continuation was
// scheduled. A continuation from before a Reset, or one that arrives out of
// order, is rejected with ErrStaleContinuation and changes nothing.
func (g *GameState) Step(epoch uint64, stage Stage) (Stage, []Event, error) {
	if err := g.checkStep(epoch, stage); err != nil {
		return StageNone, nil, err
	}

	var events []Event
	switch stage {
	case StageMove:
		events = g.stepMove()
	case StageSettle:
		events = g.stepSettle()
	case StageFlash:
		g.Anim.ScoreFlashPlayerID = 0
		g.Anim.Next = StagePause
	case StagePause:
		events = g.finishTurn()
	}

	if g.Anim == nil {
		return StageNone, events, nil
	}
	return g.Anim.Next, events, nil
}

// PendingStage returns the stage the pipeline is waiting on.
func (g *GameState) PendingStage() Stage {
	if g.Anim == nil {
		return StageNone
	}
	return g.Anim.Next
}

// stepMove advances the token one tile and commits the position at the end
// of the path.
func (g *GameState) stepMove() []Event {
	a := g.Anim
	a.Cursor++
	if a.Cursor < len(a.Path)-1 {
		a.Next = StageMove
		return nil
	}

	p := g.PlayerByID(a.MovingPlayerID)
	p.Position = a.Target
	a.Next = StageSettle

	events := []Event{{Type: EventTokenMoved, PlayerID: p.ID, Value: p.Position, Score: p.Score}}
	if a.Clamped {
		events = append(events, Event{Type: EventBoardEndReached, PlayerID: p.ID, Value: p.Position, Score: p.Score})
	}
	return events
}

// stepSettle scores the landing tile and checks for a winner.
func (g *GameState) stepSettle() []Event {
	a := g.Anim
	p := g.PlayerByID(a.MovingPlayerID)

	awarded, events := g.scoreLanding(p)
	if g.checkWin(p) {
		g.Phase = PhaseFinished
		g.WinnerID = p.ID
		g.Anim = nil
		return append(events, Event{Type: EventGameWon, PlayerID: p.ID, Score: p.Score})
	}

	if awarded {
		a.ScoreFlashPlayerID = p.ID
		a.Next = StageFlash
	} else {
		a.Next = StagePause
	}
	return events
}

// finishTurn clears the animation and either hands the turn over or leaves
// the same player waiting for NextPlayer.
func (g *GameState) finishTurn() []Event {
	advance := g.Rules.AutoAdvance || g.Anim.AdvanceRequested
	g.Anim = nil
	g.Phase = PhaseAwaitingRoll
	if !advance {
		return nil
	}
	return g.advanceTurn()
}
