package game

import (
	"time"

	"github.com/Neha1998/colorful-dice-adventure/engine"
	"github.com/sirupsen/logrus"
)

// Timings are the delays of the animation pipeline.
type Timings struct {
	DiceRoll   time.Duration // die spin before the value is applied
	MoveStep   time.Duration // per tile
	Settle     time.Duration // after the last tile, before scoring
	ScoreFlash time.Duration // how long the score flash stays on
	TurnPause  time.Duration // before the turn is handed over
}

// DefaultTimings returns the standard pacing.
func DefaultTimings() Timings {
	return Timings{
		DiceRoll:   600 * time.Millisecond,
		MoveStep:   300 * time.Millisecond,
		Settle:     200 * time.Millisecond,
		ScoreFlash: 1500 * time.Millisecond,
		TurnPause:  time.Second,
	}
}

// delay returns how long to wait before running stage.
func (t Timings) delay(stage engine.Stage) time.Duration {
	switch stage {
	case engine.StageMove:
		return t.MoveStep
	case engine.StageSettle:
		return t.Settle
	case engine.StageFlash:
		return t.ScoreFlash
	case engine.StagePause:
		return t.TurnPause
	}
	return 0
}

// schedule arms the continuation for stage, replacing any pending one.
// Assumes lock is held by caller.
func (s *Session) schedule(stage engine.Stage) {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if stage == engine.StageNone {
		return
	}
	epoch := s.state.Epoch
	s.timer = s.clock.AfterFunc(s.timings.delay(stage), func() {
		s.fire(epoch, stage)
	})
}

// fire runs a continuation captured at (epoch, stage). Continuations that
// lost a race with Reset are dropped by the engine's guard.
func (s *Session) fire(epoch uint64, stage engine.Stage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	next, events, err := s.state.Step(epoch, stage)
	if err != nil {
		s.log.WithFields(logrus.Fields{"epoch": epoch, "stage": stage.String()}).
			WithError(err).Debug("Discarding continuation.")
		return
	}
	s.timer = nil
	s.schedule(next)

	if s.state.IsTerminal() {
		if w := s.state.Winner(); w != nil {
			s.log.WithFields(logrus.Fields{"player": w.ID, "score": w.Score}).Info("Game won.")
		}
	}
	s.emitEngineEvents(events)
}

// stopTimers cancels the pending continuation and any spinning die.
// Assumes lock is held by caller.
func (s *Session) stopTimers() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.diceTimer != nil {
		s.diceTimer.Stop()
		s.diceTimer = nil
	}
	s.rolling = false
}
