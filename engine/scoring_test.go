package engine

import (
	"errors"
	"reflect"
	"testing"
)

// TestColorMatchRegression replays the documented red-bird example: 0 → 3
// (purple) and 3 → 5 (blue) both score nothing.
func TestColorMatchRegression(t *testing.T) {
	g := newStartedGame(t, soloRed(), DefaultRules())

	events := rollAndSettle(t, &g, 3)
	if c, _ := g.Board.TileColor(3); c != ColorPurple {
		t.Fatalf("tile 3 = %s, want purple", c)
	}
	if findEvent(events, EventPointsAwarded) != nil || g.Players[0].Score != 0 {
		t.Errorf("scored on purple: score=%d", g.Players[0].Score)
	}

	events = rollAndSettle(t, &g, 2)
	if g.Players[0].Position != 5 {
		t.Fatalf("Position = %d, want 5", g.Players[0].Position)
	}
	if c, _ := g.Board.TileColor(5); c != ColorBlue {
		t.Fatalf("tile 5 = %s, want blue", c)
	}
	if findEvent(events, EventPointsAwarded) != nil || g.Players[0].Score != 0 {
		t.Errorf("red scored on blue: score=%d", g.Players[0].Score)
	}
}

// TestColorMatchAwardsPoints verifies +10 on a matching tile.
func TestColorMatchAwardsPoints(t *testing.T) {
	g := newStartedGame(t, soloRed(), DefaultRules())
	events := rollAndSettle(t, &g, 4) // tile 4 is red
	ev := findEvent(events, EventPointsAwarded)
	if ev == nil || ev.PlayerID != 1 || ev.Value != MatchPoints || ev.Score != 10 {
		t.Fatalf("points_awarded = %+v", ev)
	}
	if g.Players[0].Score != 10 {
		t.Errorf("Score = %d, want 10", g.Players[0].Score)
	}
}

// TestWinThreshold verifies the game finishes exactly when 30 is reached.
func TestWinThreshold(t *testing.T) {
	g := newStartedGame(t, soloRed(), DefaultRules())

	// 0→4 red, 4→8 red, 8→13 green, 13→15 red.
	rolls := []int{4, 4, 5, 2}
	wantScores := []int{10, 20, 20, 30}
	for i, v := range rolls {
		events := rollAndSettle(t, &g, v)
		if g.Players[0].Score != wantScores[i] {
			t.Fatalf("roll %d: score = %d, want %d", i, g.Players[0].Score, wantScores[i])
		}
		won := findEvent(events, EventGameWon) != nil
		if won != (i == len(rolls)-1) {
			t.Fatalf("roll %d: game_won = %v", i, won)
		}
	}

	if !g.IsTerminal() || g.Phase != PhaseFinished {
		t.Fatalf("Phase = %s, want finished", g.Phase)
	}
	if w := g.Winner(); w == nil || w.ID != 1 {
		t.Fatalf("Winner = %+v", w)
	}
	if g.Anim != nil {
		t.Error("animation should be cleared on win")
	}

	before := g.Clone()
	_, err := g.Roll(3)
	if !errors.Is(err, ErrGameOver) {
		t.Errorf("Roll after win: err = %v", err)
	}
	_, err = g.NextPlayer()
	if !errors.Is(err, ErrGameOver) {
		t.Errorf("NextPlayer after win: err = %v", err)
	}
	if !reflect.DeepEqual(before, g) {
		t.Error("finished game mutated by ignored requests")
	}
}

// TestFinalTileKeepsScoring verifies a green bird parked on the green final
// tile scores on every roll until it wins.
func TestFinalTileKeepsScoring(t *testing.T) {
	g := newStartedGame(t, []Player{{ID: 3, Name: "Green Bird", Color: ColorGreen}}, DefaultRules())
	g.Players[0].Position = TotalTiles - 1

	for i := 1; i <= 3; i++ {
		rollAndSettle(t, &g, 6)
		if g.Players[0].Score != i*MatchPoints {
			t.Fatalf("roll %d: score = %d", i, g.Players[0].Score)
		}
	}
	if !g.IsTerminal() {
		t.Error("expected green to win on the final tile")
	}
}

func TestStandings(t *testing.T) {
	g := newStartedGame(t, DefaultRoster(), DefaultRules())
	g.Players[0].Score = 10
	g.Players[1].Score = 20
	g.Players[2].Score = 10
	g.Players[3].Score = 0

	got := g.Standings()
	wantIDs := []int{2, 1, 3, 4}
	wantLabels := []string{"1st", "2nd", "3rd", "4th"}
	for i, s := range got {
		if s.Player.ID != wantIDs[i] || s.Label != wantLabels[i] || s.Rank != i+1 {
			t.Errorf("standing %d = %+v, want id %d label %s", i, s, wantIDs[i], wantLabels[i])
		}
	}

	got[0].Player.Score = 999
	if g.Players[1].Score != 20 {
		t.Error("Standings must return copies")
	}
}
