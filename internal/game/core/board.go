package core

import "fmt"

// Cell is the state of a single board square.
type Cell uint8

const (
	CellOpen Cell = iota
	CellFood
	CellSnake
)

func (c Cell) String() string {
	switch c {
	case CellOpen:
		return "open"
	case CellFood:
		return "food"
	case CellSnake:
		return "snake"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Board is a fixed rows x cols grid stored row-major.
type Board struct {
	Rows, Cols int
	cells      []Cell // length = Rows*Cols
}

// NewBoard creates a board with every cell open
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	// CellOpen is the zero value
	return &Board{Rows: rows, Cols: cols, cells: make([]Cell, rows*cols)}, nil
}

// Destroy releases the cell storage. The board must not be used afterwards.
func (b *Board) Destroy() {
	b.cells = nil
}

func (b *Board) Idx(row, col int) int { return col + row*b.Cols }
func (b *Board) Coord(idx int) Coordinate {
	return FromIndex(idx, b.Cols)
}

// Size returns the number of cells
func (b *Board) Size() int { return len(b.cells) }

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(row, col int) bool {
	return b.cells != nil && NewCoordinate(row, col).IsValid(b.Rows, b.Cols)
}

// CellAt returns the state of the cell at (row, col).
// Asking for a cell outside the board is a caller bug and returns ErrOutOfBounds.
func (b *Board) CellAt(row, col int) (Cell, error) {
	if !b.InBounds(row, col) {
		return CellOpen, fmt.Errorf("cell %s on %dx%d board: %w", NewCoordinate(row, col), b.Rows, b.Cols, ErrOutOfBounds)
	}
	return b.cells[b.Idx(row, col)], nil
}

// Lookup returns the cell at c. ok is false when c lies outside the board,
// which movement and search treat as a wall.
func (b *Board) Lookup(c Coordinate) (cell Cell, ok bool) {
	if !b.InBounds(c.Row, c.Col) {
		return CellOpen, false
	}
	return b.cells[b.Idx(c.Row, c.Col)], true
}

// Passable reports whether a snake head or the food search may enter c
func (b *Board) Passable(c Coordinate) bool {
	cell, ok := b.Lookup(c)
	return ok && (cell == CellOpen || cell == CellFood)
}

// SetCell overwrites the state of the cell at c
func (b *Board) SetCell(c Coordinate, cell Cell) error {
	if !b.InBounds(c.Row, c.Col) {
		return fmt.Errorf("set %s: %w", c, ErrOutOfBounds)
	}
	b.cells[b.Idx(c.Row, c.Col)] = cell
	return nil
}

// setIdx is the unchecked write used by the engine after it has bounds-checked
func (b *Board) setIdx(idx int, cell Cell) {
	b.cells[idx] = cell
}

// Count returns how many cells are in the given state
func (b *Board) Count(cell Cell) int {
	n := 0
	for _, c := range b.cells {
		if c == cell {
			n++
		}
	}
	return n
}

// Cells returns a copy of the row-major cell slice
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	return &Board{Rows: b.Rows, Cols: b.Cols, cells: b.Cells()}
}
