package core

import (
	"fmt"
	"strings"
)

// Coordinate represents a (row, col) position on the game board
type Coordinate struct {
	Row, Col int
}

// NewCoordinate creates a new coordinate with the given row and column
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// FromIndex creates a coordinate from a board array index using row-major ordering
func FromIndex(idx, cols int) Coordinate {
	return Coordinate{
		Row: idx / cols,
		Col: idx % cols,
	}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// ToIndex converts the coordinate to a board array index using row-major ordering
func (c Coordinate) ToIndex(cols int) int {
	return c.Col + c.Row*cols
}

// DistanceTo calculates the Manhattan distance to another coordinate
func (c Coordinate) DistanceTo(other Coordinate) int {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Neighbors returns the four orthogonal neighbors in south, north, east, west order
func (c Coordinate) Neighbors() [4]Coordinate {
	return [4]Coordinate{
		c.Move(South),
		c.Move(North),
		c.Move(East),
		c.Move(West),
	}
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		Row: c.Row + other.Row,
		Col: c.Col + other.Col,
	}
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction represents a cardinal direction. North is up (decreasing row).
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// directionVectors provides coordinate offsets for each direction
var directionVectors = [...]Coordinate{
	North: {Row: -1, Col: 0},
	East:  {Row: 0, Col: 1},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
}

// IsValid reports whether d is one of the four cardinal directions
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Offset returns the unit offset of the direction
func (d Direction) Offset() Coordinate {
	if !d.IsValid() {
		return Coordinate{}
	}
	return directionVectors[d]
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a config or input string into a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "up":
		return North, nil
	case "east", "e", "right":
		return East, nil
	case "south", "s", "down":
		return South, nil
	case "west", "w", "left":
		return West, nil
	default:
		return North, fmt.Errorf("%q: %w", s, ErrInvalidDirection)
	}
}

// Move returns a new coordinate moved one step in the given direction
func (c Coordinate) Move(direction Direction) Coordinate {
	return c.Add(direction.Offset())
}
