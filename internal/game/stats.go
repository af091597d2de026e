package game

import "github.com/mitchelldurbincs/SnakeDuel/internal/game/core"

// SnakeStats accumulates per-snake counters over a session
type SnakeStats struct {
	FoodEaten    int
	BlockedMoves int
	Length       int
	MaxLength    int
	Emptied      bool
}

// Stats accumulates session counters
type Stats struct {
	Human       SnakeStats
	Computer    SnakeStats
	FoodSpawned int
	Ticks       int
}

func (s *Stats) snake(kind core.SnakeKind) *SnakeStats {
	if kind == core.ComputerSnake {
		return &s.Computer
	}
	return &s.Human
}

// recordHead folds one head result into the stats
func (s *Stats) recordHead(snake *core.Snake, result core.MoveResult) {
	st := s.snake(snake.Kind)
	switch result {
	case core.MoveAteFood:
		st.FoodEaten++
	case core.MoveBlocked:
		st.BlockedMoves++
	}
	st.observeLength(snake.Len())
}

// recordTail folds one tail result into the stats
func (s *Stats) recordTail(snake *core.Snake, result core.TailResult) {
	st := s.snake(snake.Kind)
	if result == core.TailEmptied {
		st.Emptied = true
	}
	st.observeLength(snake.Len())
}

func (st *SnakeStats) observeLength(n int) {
	st.Length = n
	if n > st.MaxLength {
		st.MaxLength = n
	}
}
