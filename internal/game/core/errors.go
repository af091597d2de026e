package core

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrSnakeEmpty        = errors.New("snake has no segments")
	ErrCellOccupied      = errors.New("cell is not open")
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrGameNotRunning    = errors.New("game is not running")
)

// WrapSnakeError adds the snake identity to an error
func WrapSnakeError(kind SnakeKind, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s snake: %w", kind, err)
}
