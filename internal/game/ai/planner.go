package ai

import (
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
	"github.com/rs/zerolog"
)

// evaluationOrder is the order candidate headings are scored in. Ties go to
// the earliest entry.
var evaluationOrder = [4]core.Direction{core.South, core.North, core.East, core.West}

// Decision is the outcome of one planning step
type Decision struct {
	Heading   core.Direction
	Distance  int  // food distance through the chosen neighbour, Unreachable when none
	Fallback  bool // no food reachable, wall avoidance picked the heading
	Changed   bool // heading differs from the one before planning
	Evaluated [4]int
}

// Planner steers the computer snake toward the nearest reachable food
type Planner struct {
	logger zerolog.Logger
}

// NewPlanner creates a planner
func NewPlanner(logger zerolog.Logger) *Planner {
	return &Planner{
		logger: logger.With().Str("component", "Planner").Logger(),
	}
}

// Move sets the snake's heading toward the closest food. For each neighbour
// of the head, in south, north, east, west order, the food distance is
// computed from that neighbour; the first minimum wins. When no neighbour
// leads to food the heading comes from AvoidWalls. Empty snakes are ignored.
func (p *Planner) Move(b *core.Board, s *core.Snake) Decision {
	previous := s.Heading
	head, ok := s.Head()
	if !ok {
		return Decision{Heading: previous, Distance: Unreachable}
	}

	var d [4]int
	for i, dir := range evaluationOrder {
		d[i] = FoodDistance(b, head.Move(dir))
	}

	best := 0
	for i := 1; i < len(d); i++ {
		if d[i] < d[best] {
			best = i
		}
	}

	decision := Decision{Evaluated: d, Distance: d[best]}
	if d[best] == Unreachable {
		AvoidWalls(b, s)
		decision.Fallback = true
	} else {
		s.Heading = evaluationOrder[best]
	}
	decision.Heading = s.Heading
	decision.Changed = s.Heading != previous

	p.logger.Debug().
		Str("snake", s.Kind.String()).
		Str("head", head.String()).
		Ints("distances", d[:]).
		Str("heading", s.Heading.String()).
		Bool("fallback", decision.Fallback).
		Msg("Planned move")

	return decision
}

// AvoidWalls points the snake at its first open neighbour in south, north,
// east, west order. With no open neighbour the heading is left alone and the
// snake will simply fail to advance.
func AvoidWalls(b *core.Board, s *core.Snake) {
	head, ok := s.Head()
	if !ok {
		return
	}
	for _, dir := range evaluationOrder {
		if cell, ok := b.Lookup(head.Move(dir)); ok && cell == core.CellOpen {
			s.Heading = dir
			return
		}
	}
}
