package rules

import "github.com/mitchelldurbincs/SnakeDuel/internal/game/core"

// headingOrder is the order headings are reported in
var headingOrder = [4]core.Direction{core.North, core.East, core.South, core.West}

// LegalHeadings returns the headings whose destination cell the snake's
// head could enter on the next tick, i.e. an in-bounds open or food cell.
// An empty snake has no legal headings.
func LegalHeadings(board *core.Board, snake *core.Snake) []core.Direction {
	head, ok := snake.Head()
	if !ok {
		return nil
	}

	legal := make([]core.Direction, 0, len(headingOrder))
	for _, dir := range headingOrder {
		if board.Passable(head.Move(dir)) {
			legal = append(legal, dir)
		}
	}
	return legal
}

// IsLegalHeading reports whether moving the snake's head toward dir would advance it
func IsLegalHeading(board *core.Board, snake *core.Snake, dir core.Direction) bool {
	head, ok := snake.Head()
	if !ok || !dir.IsValid() {
		return false
	}
	return board.Passable(head.Move(dir))
}
