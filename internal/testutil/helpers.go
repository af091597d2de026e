package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
)

// BoardFromRows builds a board from an ASCII picture, one string per row:
//
//	'.' open   '*' food   '#' snake (anonymous obstacle)
func BoardFromRows(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	require.NotEmpty(t, rows, "board needs at least one row")

	board, err := core.NewBoard(len(rows), len(rows[0]))
	require.NoError(t, err)

	for r, line := range rows {
		require.Len(t, line, board.Cols, "row %d has the wrong width", r)
		for c, ch := range line {
			var cell core.Cell
			switch ch {
			case '.':
				cell = core.CellOpen
			case '*':
				cell = core.CellFood
			case '#':
				cell = core.CellSnake
			default:
				t.Fatalf("unknown board character %q at (%d,%d)", ch, r, c)
			}
			require.NoError(t, board.SetCell(core.NewCoordinate(r, c), cell))
		}
	}
	return board
}

// SnakeAlong creates a snake whose segments follow path from tail to head.
// Every cell on the path must be open.
func SnakeAlong(t *testing.T, board *core.Board, kind core.SnakeKind, heading core.Direction, path ...core.Coordinate) *core.Snake {
	t.Helper()
	require.NotEmpty(t, path)

	s, err := core.NewSnake(board, kind, path[0], heading, 0)
	require.NoError(t, err)
	for _, c := range path[1:] {
		require.NoError(t, s.AppendHead(board, c))
	}
	return s
}

// CellAt reads a cell and fails the test when the coordinate is off the board
func CellAt(t *testing.T, board *core.Board, row, col int) core.Cell {
	t.Helper()
	cell, err := board.CellAt(row, col)
	require.NoError(t, err)
	return cell
}
