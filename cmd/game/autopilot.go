package main

import (
	"math/rand"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/rules"
)

// autopilot steers the human snake in the headless demo. It keeps going
// straight while it can, sometimes turns anyway, and otherwise picks a
// random legal heading.
type autopilot struct {
	rng        *rand.Rand
	turnChance float64
}

func newAutopilot(rng *rand.Rand) *autopilot {
	return &autopilot{rng: rng, turnChance: 0.15}
}

// Next returns the heading to use for the coming tick. ok is false when the
// snake is empty or boxed in.
func (a *autopilot) Next(board *core.Board, snake *core.Snake) (core.Direction, bool) {
	if board == nil || snake == nil {
		return core.North, false
	}
	legal := rules.LegalHeadings(board, snake)
	if len(legal) == 0 {
		return core.North, false
	}

	straight := false
	for _, d := range legal {
		if d == snake.Heading {
			straight = true
			break
		}
	}
	if straight && a.rng.Float64() >= a.turnChance {
		return snake.Heading, true
	}
	return legal[a.rng.Intn(len(legal))], true
}
