package ai

import (
	"math"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
)

// Unreachable is returned by FoodDistance when no food can be reached
const Unreachable = math.MaxInt

// DistanceMap records the best known path length to every cell for a single
// search. It is never shared between searches.
type DistanceMap struct {
	cols int
	d    []int
}

// NewDistanceMap returns a map for b with every entry set to Unreachable
func NewDistanceMap(b *core.Board) *DistanceMap {
	dm := &DistanceMap{cols: b.Cols, d: make([]int, b.Size())}
	dm.Reset()
	return dm
}

// Reset sets every entry back to Unreachable
func (dm *DistanceMap) Reset() {
	for i := range dm.d {
		dm.d[i] = Unreachable
	}
}

// At returns the recorded distance for c
func (dm *DistanceMap) At(c core.Coordinate) int {
	return dm.d[c.ToIndex(dm.cols)]
}

type searchNode struct {
	at       core.Coordinate
	distance int
}

// FindFood explores every open or food cell reachable from start, beginning
// at the given path length. A cell is expanded only when it is reached with a
// strictly shorter path than the one already recorded in dm, which keeps the
// search bounded on boards with loops. Snake cells and the board edge block.
// Whenever a food cell is reached more cheaply than *closest, *closest is
// lowered.
//
// The walk uses an explicit stack and visits neighbours in the order south,
// north, east, west.
func FindFood(b *core.Board, dm *DistanceMap, start core.Coordinate, distance int, closest *int) {
	stack := []searchNode{{at: start, distance: distance}}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell, ok := b.Lookup(n.at)
		if !ok || (cell != core.CellOpen && cell != core.CellFood) {
			continue
		}
		idx := n.at.ToIndex(dm.cols)
		if n.distance >= dm.d[idx] {
			continue
		}
		dm.d[idx] = n.distance

		if cell == core.CellFood && n.distance < *closest {
			*closest = n.distance
		}

		// Pushed in reverse so south is popped first
		neighbors := n.at.Neighbors()
		for i := len(neighbors) - 1; i >= 0; i-- {
			stack = append(stack, searchNode{at: neighbors[i], distance: n.distance + 1})
		}
	}
}

// FoodDistance returns the length of the shortest path from start to any
// food cell, or Unreachable. Each call uses a fresh distance map.
func FoodDistance(b *core.Board, start core.Coordinate) int {
	closest := Unreachable
	FindFood(b, NewDistanceMap(b), start, 0, &closest)
	return closest
}
