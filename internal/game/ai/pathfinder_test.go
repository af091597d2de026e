package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
	"github.com/mitchelldurbincs/SnakeDuel/internal/testutil"
)

func TestFoodDistance_Corridor(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		start    core.Coordinate
		expected int
	}{
		{
			name: "straight corridor",
			rows: []string{
				"#######",
				"......*",
				"#######",
			},
			start:    core.NewCoordinate(1, 0),
			expected: 6,
		},
		{
			name: "winding corridor",
			rows: []string{
				".#...",
				".#.#.",
				"...#*",
			},
			start:    core.NewCoordinate(0, 0),
			expected: 10,
		},
		{
			name: "start on food",
			rows: []string{
				"*..",
			},
			start:    core.NewCoordinate(0, 0),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardFromRows(t, tt.rows...)
			assert.Equal(t, tt.expected, FoodDistance(board, tt.start))
		})
	}
}

func TestFoodDistance_RingFindsShortestSide(t *testing.T) {
	// Searching east first reaches the food after 10 steps; the relaxation
	// rule must still settle on the 6-step western route.
	board := testutil.BoardFromRows(t,
		".....",
		".###.",
		".###.",
		".###.",
		".*...",
	)

	assert.Equal(t, 6, FoodDistance(board, core.NewCoordinate(0, 1)))
}

func TestFoodDistance_Unreachable(t *testing.T) {
	board := testutil.BoardFromRows(t,
		"..#*",
		"..##",
		"....",
	)

	tests := []struct {
		name  string
		start core.Coordinate
	}{
		{"walled off food", core.NewCoordinate(0, 0)},
		{"start on snake", core.NewCoordinate(0, 2)},
		{"start off board", core.NewCoordinate(-1, 0)},
		{"start past last column", core.NewCoordinate(0, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Unreachable, FoodDistance(board, tt.start))
		})
	}
}

func TestFoodDistance_NoFood(t *testing.T) {
	board := testutil.BoardFromRows(t,
		"....",
		"....",
	)
	assert.Equal(t, Unreachable, FoodDistance(board, core.NewCoordinate(0, 0)))
}

func TestFoodDistance_LargeOpenBoard(t *testing.T) {
	board, err := core.NewBoard(40, 40)
	require.NoError(t, err)
	require.NoError(t, board.SetCell(core.NewCoordinate(39, 39), core.CellFood))

	assert.Equal(t, 78, FoodDistance(board, core.NewCoordinate(0, 0)))
}

func TestFoodDistance_MatchesBreadthFirstSearch(t *testing.T) {
	rng := testutil.NewTestRNG(99)

	for trial := 0; trial < 50; trial++ {
		board, err := core.NewBoard(8, 9)
		require.NoError(t, err)
		for idx := 0; idx < board.Size(); idx++ {
			switch r := rng.Intn(10); {
			case r < 3:
				require.NoError(t, board.SetCell(board.Coord(idx), core.CellSnake))
			case r == 3:
				require.NoError(t, board.SetCell(board.Coord(idx), core.CellFood))
			}
		}
		start := board.Coord(rng.Intn(board.Size()))

		assert.Equal(t, bfsFoodDistance(board, start), FoodDistance(board, start),
			"trial %d from %s", trial, start)
	}
}

func TestFindFood_RecordsDistances(t *testing.T) {
	board := testutil.BoardFromRows(t,
		"...",
		".#*",
	)
	dm := NewDistanceMap(board)
	closest := Unreachable

	FindFood(board, dm, core.NewCoordinate(0, 0), 0, &closest)

	assert.Equal(t, 3, closest)
	assert.Equal(t, 0, dm.At(core.NewCoordinate(0, 0)))
	assert.Equal(t, 2, dm.At(core.NewCoordinate(0, 2)))
	assert.Equal(t, 1, dm.At(core.NewCoordinate(1, 0)))
	assert.Equal(t, Unreachable, dm.At(core.NewCoordinate(1, 1)), "snake cells are never entered")

	dm.Reset()
	assert.Equal(t, Unreachable, dm.At(core.NewCoordinate(0, 0)))
}

// bfsFoodDistance is a plain breadth-first reference
func bfsFoodDistance(b *core.Board, start core.Coordinate) int {
	if !b.Passable(start) {
		return Unreachable
	}
	dist := map[core.Coordinate]int{start: 0}
	queue := []core.Coordinate{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if cell, _ := b.Lookup(c); cell == core.CellFood {
			return dist[c]
		}
		for _, n := range c.Neighbors() {
			if _, seen := dist[n]; seen || !b.Passable(n) {
				continue
			}
			dist[n] = dist[c] + 1
			queue = append(queue, n)
		}
	}
	return Unreachable
}
