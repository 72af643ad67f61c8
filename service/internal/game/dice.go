package game

import (
	"math/rand/v2"

	"github.com/Neha1998/colorful-dice-adventure/engine"
)

// DiceSource draws die values. IntN returns a value in [0, n).
type DiceSource interface {
	IntN(n int) int
}

type randomDice struct{}

func (randomDice) IntN(n int) int { return rand.IntN(n) }

// RandomDice returns a source backed by the runtime-seeded global generator.
func RandomDice() DiceSource { return randomDice{} }

// drawDie returns a uniform value in [DieMin, DieMax].
func drawDie(src DiceSource) int {
	return engine.DieMin + src.IntN(engine.DieMax-engine.DieMin+1)
}
