package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
	"github.com/mitchelldurbincs/SnakeDuel/internal/testutil"
)

func TestPlanner_MovesTowardFood(t *testing.T) {
	board := testutil.BoardFromRows(t,
		".....",
		".....",
		"....*",
		".....",
		".....",
	)
	snake := testutil.SnakeAlong(t, board, core.ComputerSnake, core.North, core.NewCoordinate(2, 2))
	planner := NewPlanner(testutil.NopLogger())

	decision := planner.Move(board, snake)

	assert.Equal(t, core.East, snake.Heading)
	assert.Equal(t, core.East, decision.Heading)
	assert.Equal(t, 1, decision.Distance)
	assert.False(t, decision.Fallback)
	assert.True(t, decision.Changed)
	assert.Equal(t, [4]int{3, 3, 1, 5}, decision.Evaluated, "south, north, east, west; west must route around the head")
}

func TestPlanner_TieBreakFollowsEvaluationOrder(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		expected core.Direction
	}{
		{
			name: "south beats east",
			rows: []string{
				".....",
				".....",
				".....",
				"...*.",
				".....",
			},
			expected: core.South,
		},
		{
			name: "north beats east",
			rows: []string{
				".....",
				"...*.",
				".....",
				".....",
				".....",
			},
			expected: core.North,
		},
		{
			name: "east beats west",
			rows: []string{
				".....",
				"..#..",
				"*...*",
				"..#..",
				".....",
			},
			expected: core.East,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardFromRows(t, tt.rows...)
			snake := testutil.SnakeAlong(t, board, core.ComputerSnake, core.West, core.NewCoordinate(2, 2))

			NewPlanner(testutil.NopLogger()).Move(board, snake)

			assert.Equal(t, tt.expected, snake.Heading)
		})
	}
}

func TestPlanner_FallsBackToWallAvoidance(t *testing.T) {
	board := testutil.BoardFromRows(t,
		".#*",
		".##",
		"...",
	)
	snake := testutil.SnakeAlong(t, board, core.ComputerSnake, core.North, core.NewCoordinate(0, 0))

	decision := NewPlanner(testutil.NopLogger()).Move(board, snake)

	assert.True(t, decision.Fallback)
	assert.Equal(t, Unreachable, decision.Distance)
	assert.Equal(t, core.South, snake.Heading)
}

func TestPlanner_EmptySnakeIsIgnored(t *testing.T) {
	board := testutil.BoardFromRows(t, "..*")
	snake := testutil.SnakeAlong(t, board, core.ComputerSnake, core.West, core.NewCoordinate(0, 0))
	core.UpdateSnakeTail(snake, board)

	decision := NewPlanner(testutil.NopLogger()).Move(board, snake)

	assert.Equal(t, core.West, snake.Heading)
	assert.False(t, decision.Changed)
}

func TestAvoidWalls(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		head     core.Coordinate
		initial  core.Direction
		expected core.Direction
	}{
		{
			name:     "south first",
			rows:     []string{"...", "...", "..."},
			head:     core.NewCoordinate(1, 1),
			initial:  core.West,
			expected: core.South,
		},
		{
			name:     "north when south blocked",
			rows:     []string{"...", "...", ".#."},
			head:     core.NewCoordinate(1, 1),
			initial:  core.West,
			expected: core.North,
		},
		{
			name:     "east when bottom edge and north blocked",
			rows:     []string{"...", "###", "..."},
			head:     core.NewCoordinate(2, 1),
			initial:  core.North,
			expected: core.East,
		},
		{
			name:     "west as last resort",
			rows:     []string{"...", "..#", "..."},
			head:     core.NewCoordinate(0, 2),
			initial:  core.North,
			expected: core.West,
		},
		{
			name:     "food does not count as open",
			rows:     []string{"...", "...", ".*."},
			head:     core.NewCoordinate(1, 1),
			initial:  core.West,
			expected: core.North,
		},
		{
			name:     "boxed in keeps heading",
			rows:     []string{".#.", "#.#", ".#."},
			head:     core.NewCoordinate(1, 1),
			initial:  core.East,
			expected: core.East,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardFromRows(t, tt.rows...)
			snake := testutil.SnakeAlong(t, board, core.ComputerSnake, tt.initial, tt.head)

			AvoidWalls(board, snake)

			assert.Equal(t, tt.expected, snake.Heading)
		})
	}
}
