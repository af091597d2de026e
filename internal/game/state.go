package game

import "github.com/mitchelldurbincs/SnakeDuel/internal/game/core"

// GameState is everything one tick reads and writes
type GameState struct {
	Tick     int
	Board    *core.Board
	Human    *core.Snake
	Computer *core.Snake
}

// Clone returns a deep copy that shares nothing with the live state
func (gs *GameState) Clone() *GameState {
	clone := &GameState{Tick: gs.Tick}
	if gs.Board != nil {
		clone.Board = gs.Board.Clone()
	}
	if gs.Human != nil {
		clone.Human = gs.Human.Clone()
	}
	if gs.Computer != nil {
		clone.Computer = gs.Computer.Clone()
	}
	return clone
}

// Snake returns the snake of the given kind
func (gs *GameState) Snake(kind core.SnakeKind) *core.Snake {
	if kind == core.ComputerSnake {
		return gs.Computer
	}
	return gs.Human
}

// snakes indexes both snakes by kind for the heading processor
func (gs *GameState) snakes() map[core.SnakeKind]*core.Snake {
	return map[core.SnakeKind]*core.Snake{
		core.HumanSnake:    gs.Human,
		core.ComputerSnake: gs.Computer,
	}
}
