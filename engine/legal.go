package engine

import (
	"errors"
	"fmt"
)

// ErrIgnored is wrapped by every error a transition returns. An ignored
// request is a no-op: the state is exactly as it was before the call.
var ErrIgnored = errors.New("request ignored")

var (
	ErrNotStarted        = fmt.Errorf("%w: game not started", ErrIgnored)
	ErrAlreadyStarted    = fmt.Errorf("%w: game already started", ErrIgnored)
	ErrGameOver          = fmt.Errorf("%w: game is already over", ErrIgnored)
	ErrAnimating         = fmt.Errorf("%w: animation in progress", ErrIgnored)
	ErrAlreadyRolled     = fmt.Errorf("%w: current player already rolled", ErrIgnored)
	ErrNotRolled         = fmt.Errorf("%w: current player has not rolled", ErrIgnored)
	ErrInvalidRoll       = fmt.Errorf("%w: roll out of range", ErrIgnored)
	ErrNoAnimation       = fmt.Errorf("%w: no animation in progress", ErrIgnored)
	ErrStaleContinuation = fmt.Errorf("%w: stale continuation", ErrIgnored)
)

// checkRoll returns why a roll of value would be ignored, or nil.
func (g *GameState) checkRoll(value int) error {
	switch g.Phase {
	case PhaseIdle:
		return ErrNotStarted
	case PhaseFinished:
		return ErrGameOver
	case PhaseAnimating:
		return ErrAnimating
	}
	if g.HasRolled {
		return ErrAlreadyRolled
	}
	if value < DieMin || value > DieMax {
		return fmt.Errorf("%w: %d", ErrInvalidRoll, value)
	}
	return nil
}

// CanRoll reports whether the current player may roll now.
func (g *GameState) CanRoll() bool { return g.checkRoll(DieMin) == nil }

// checkNextPlayer returns why NextPlayer would be ignored, or nil.
func (g *GameState) checkNextPlayer() error {
	switch g.Phase {
	case PhaseIdle:
		return ErrNotStarted
	case PhaseFinished:
		return ErrGameOver
	}
	if !g.HasRolled {
		return ErrNotRolled
	}
	return nil
}

// CanAdvance reports whether NextPlayer would be accepted now.
func (g *GameState) CanAdvance() bool { return g.checkNextPlayer() == nil }

// checkStep returns why a continuation for (epoch, stage) must be discarded.
func (g *GameState) checkStep(epoch uint64, stage Stage) error {
	if epoch != g.Epoch {
		return fmt.Errorf("%w: epoch %d, current %d", ErrStaleContinuation, epoch, g.Epoch)
	}
	if g.Phase != PhaseAnimating || g.Anim == nil {
		return ErrNoAnimation
	}
	if stage != g.Anim.Next {
		return fmt.Errorf("%w: got stage %s, pending %s", ErrStaleContinuation, stage, g.Anim.Next)
	}
	return nil
}

// CheckRoll returns why a roll of value would be ignored, or nil.
func (g *GameState) CheckRoll(value int) error { return g.checkRoll(value) }
