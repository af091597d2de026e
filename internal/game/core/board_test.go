package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	tests := []struct {
		name string
		rows int
		cols int
	}{
		{"small board", 5, 5},
		{"rectangular board", 10, 20},
		{"large board", 100, 100},
		{"minimum board", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoard(tt.rows, tt.cols)
			require.NoError(t, err)

			assert.Equal(t, tt.rows, board.Rows)
			assert.Equal(t, tt.cols, board.Cols)
			assert.Equal(t, tt.rows*tt.cols, board.Size())

			// Every cell starts open
			for r := 0; r < tt.rows; r++ {
				for c := 0; c < tt.cols; c++ {
					cell, err := board.CellAt(r, c)
					require.NoError(t, err)
					assert.Equal(t, CellOpen, cell, "cell (%d,%d) should be open", r, c)
				}
			}
		})
	}
}

func TestNewBoard_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		_, err := NewBoard(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestBoard_Idx(t *testing.T) {
	board, err := NewBoard(4, 5)
	require.NoError(t, err)

	tests := []struct {
		row, col int
		expected int
	}{
		{0, 0, 0},
		{0, 4, 4},
		{1, 0, 5},
		{2, 2, 12},
		{3, 4, 19},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, board.Idx(tt.row, tt.col), "Idx(%d,%d)", tt.row, tt.col)
		assert.Equal(t, NewCoordinate(tt.row, tt.col), board.Coord(tt.expected))
	}
}

func TestBoard_CellAt_OutOfBounds(t *testing.T) {
	board, err := NewBoard(3, 3)
	require.NoError(t, err)

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row too large", 3, 0},
		{"col too large", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := board.CellAt(tt.row, tt.col)
			assert.ErrorIs(t, err, ErrOutOfBounds)

			_, ok := board.Lookup(NewCoordinate(tt.row, tt.col))
			assert.False(t, ok, "lookup off the board should report a wall")
			assert.False(t, board.Passable(NewCoordinate(tt.row, tt.col)))
		})
	}
}

func TestBoard_Passable(t *testing.T) {
	board, err := NewBoard(1, 3)
	require.NoError(t, err)
	require.NoError(t, board.SetCell(NewCoordinate(0, 1), CellFood))
	require.NoError(t, board.SetCell(NewCoordinate(0, 2), CellSnake))

	assert.True(t, board.Passable(NewCoordinate(0, 0)), "open cell")
	assert.True(t, board.Passable(NewCoordinate(0, 1)), "food cell")
	assert.False(t, board.Passable(NewCoordinate(0, 2)), "snake cell")
}

func TestBoard_SetCellAndCount(t *testing.T) {
	board, err := NewBoard(3, 3)
	require.NoError(t, err)

	require.NoError(t, board.SetCell(NewCoordinate(1, 1), CellFood))
	require.NoError(t, board.SetCell(NewCoordinate(2, 2), CellSnake))
	assert.ErrorIs(t, board.SetCell(NewCoordinate(3, 3), CellFood), ErrOutOfBounds)

	assert.Equal(t, 7, board.Count(CellOpen))
	assert.Equal(t, 1, board.Count(CellFood))
	assert.Equal(t, 1, board.Count(CellSnake))
}

func TestBoard_CloneIsIndependent(t *testing.T) {
	board, err := NewBoard(2, 2)
	require.NoError(t, err)

	clone := board.Clone()
	require.NoError(t, clone.SetCell(NewCoordinate(0, 0), CellFood))

	cell, err := board.CellAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, CellOpen, cell, "mutating the clone must not touch the original")
}

func TestBoard_InBounds(t *testing.T) {
	board, err := NewBoard(2, 3)
	require.NoError(t, err)

	assert.True(t, board.InBounds(0, 0))
	assert.True(t, board.InBounds(1, 2))
	assert.False(t, board.InBounds(2, 0))
	assert.False(t, board.InBounds(0, 3))
	assert.False(t, board.InBounds(-1, 1))

	board.Destroy()
	assert.False(t, board.InBounds(0, 0), "destroyed board has no cells")
}

func TestBoard_Destroy(t *testing.T) {
	board, err := NewBoard(2, 2)
	require.NoError(t, err)

	board.Destroy()
	assert.Equal(t, 0, board.Size())
	_, err = board.CellAt(0, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "open", CellOpen.String())
	assert.Equal(t, "food", CellFood.String())
	assert.Equal(t, "snake", CellSnake.String())
	assert.Equal(t, "cell(9)", Cell(9).String())
}
