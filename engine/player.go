package engine

import "fmt"

// Player is one participant and their token.
type Player struct {
	ID       int
	Name     string
	Color    Color
	Score    int
	Position int
}

// DefaultRoster returns the four birds in turn order.
func DefaultRoster() []Player {
	return []Player{
		{ID: 1, Name: "Red Bird", Color: ColorRed},
		{ID: 2, Name: "Blue Bird", Color: ColorBlue},
		{ID: 3, Name: "Green Bird", Color: ColorGreen},
		{ID: 4, Name: "Yellow Bird", Color: ColorYellow},
	}
}

// validateRoster checks ids are positive and unique and colors are player colors.
func validateRoster(roster []Player) error {
	if len(roster) == 0 {
		return fmt.Errorf("roster is empty")
	}
	seen := make(map[int]bool, len(roster))
	for i, p := range roster {
		if p.ID <= 0 {
			return fmt.Errorf("player %d: id must be positive, got %d", i, p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("player %d: duplicate id %d", i, p.ID)
		}
		seen[p.ID] = true
		if !p.Color.IsPlayerColor() {
			return fmt.Errorf("player %d: %s is not a player color", i, p.Color)
		}
	}
	return nil
}
