package engine

import (
	"errors"
	"testing"
)

// TestCanRollByPhase checks the roll gate in each phase.
func TestCanRollByPhase(t *testing.T) {
	g, _ := NewGame(DefaultRoster(), DefaultRules())
	if g.CanRoll() {
		t.Error("idle game must not accept rolls")
	}

	g.Start()
	if !g.CanRoll() {
		t.Error("started game should accept a roll")
	}

	g.Roll(2)
	if g.CanRoll() {
		t.Error("animating game must not accept rolls")
	}
	if !g.CanAdvance() {
		t.Error("NextPlayer should be accepted (deferred) while animating")
	}
}

func TestCanAdvanceRequiresRoll(t *testing.T) {
	g := newStartedGame(t, DefaultRoster(), Rules{AutoAdvance: false})
	if g.CanAdvance() {
		t.Error("cannot advance before rolling")
	}
	rollAndSettle(t, &g, 1)
	if !g.CanAdvance() {
		t.Error("should be able to advance after rolling")
	}
}

func TestCheckRollReportsReason(t *testing.T) {
	g, _ := NewGame(DefaultRoster(), DefaultRules())
	if err := g.CheckRoll(3); !errors.Is(err, ErrNotStarted) {
		t.Errorf("CheckRoll before start = %v, want ErrNotStarted", err)
	}
	g.Start()
	if err := g.CheckRoll(3); err != nil {
		t.Errorf("CheckRoll(3) = %v, want nil", err)
	}
	if err := g.CheckRoll(DieMax + 1); !errors.Is(err, ErrInvalidRoll) {
		t.Errorf("CheckRoll(%d) = %v, want ErrInvalidRoll", DieMax+1, err)
	}
}
