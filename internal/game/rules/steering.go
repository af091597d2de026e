package rules

import "github.com/mitchelldurbincs/SnakeDuel/internal/game/core"

// HeadingToward returns the heading that closes the larger of the row and
// column gaps between head and target. Ties favour the row axis. The second
// result is false when target is the head itself.
func HeadingToward(head, target core.Coordinate) (core.Direction, bool) {
	if head.Equal(target) {
		return core.North, false
	}

	rowGap := head.DistanceTo(core.NewCoordinate(target.Row, head.Col))
	colGap := head.DistanceTo(core.NewCoordinate(head.Row, target.Col))
	if rowGap >= colGap {
		if target.Row < head.Row {
			return core.North, true
		}
		return core.South, true
	}
	if target.Col < head.Col {
		return core.West, true
	}
	return core.East, true
}
