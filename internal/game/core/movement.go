package core

// MoveResult describes what a head update did
type MoveResult int

const (
	MoveInactive MoveResult = iota // snake has no segments
	MoveAdvanced
	MoveAteFood
	MoveBlocked // destination was a snake or off the board; the snake stays put
)

func (r MoveResult) String() string {
	switch r {
	case MoveInactive:
		return "inactive"
	case MoveAdvanced:
		return "advanced"
	case MoveAteFood:
		return "ate_food"
	case MoveBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// TailResult describes what a tail update did
type TailResult int

const (
	TailInactive TailResult = iota
	TailAdvanced
	TailHeld    // growth credit consumed, tail stayed
	TailEmptied // last segment removed
)

func (r TailResult) String() string {
	switch r {
	case TailInactive:
		return "inactive"
	case TailAdvanced:
		return "advanced"
	case TailHeld:
		return "held"
	case TailEmptied:
		return "emptied"
	default:
		return "unknown"
	}
}

// UpdateSnakeHead tries to move the head one cell along the snake's heading.
// Open and food cells accept the move; food adds growthPerFood to the growth
// counter. A snake cell or the board edge rejects the move and the snake does
// not advance this tick.
func UpdateSnakeHead(s *Snake, b *Board, growthPerFood int) MoveResult {
	head, ok := s.Head()
	if !ok {
		return MoveInactive
	}

	dest := head.Move(s.Heading)
	cell, inBounds := b.Lookup(dest)
	if !inBounds || cell == CellSnake {
		return MoveBlocked
	}

	result := MoveAdvanced
	if cell == CellFood {
		s.Growth += growthPerFood
		result = MoveAteFood
	}
	s.appendHead(b, dest)
	return result
}

// UpdateSnakeTail removes the tail when there is no growth credit, otherwise
// spends one unit of credit and leaves the tail in place.
func UpdateSnakeTail(s *Snake, b *Board) TailResult {
	if s.IsEmpty() {
		return TailInactive
	}
	if s.Growth > 0 {
		s.Growth--
		return TailHeld
	}
	s.removeTail(b)
	if s.IsEmpty() {
		return TailEmptied
	}
	return TailAdvanced
}
