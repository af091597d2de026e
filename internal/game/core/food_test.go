package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodSpawner_ProbabilityBounds(t *testing.T) {
	t.Run("zero probability never spawns", func(t *testing.T) {
		board := newTestBoard(t, 4, 4)
		fs := NewFoodSpawner(rand.New(rand.NewSource(1)))
		for i := 0; i < 200; i++ {
			_, placed := fs.RandomlyAddFood(board, 0)
			require.False(t, placed)
		}
		assert.Equal(t, 0, board.Count(CellFood))
	})

	t.Run("certain probability on open board always spawns", func(t *testing.T) {
		board := newTestBoard(t, 4, 4)
		fs := NewFoodSpawner(rand.New(rand.NewSource(1)))
		picked, placed := fs.RandomlyAddFood(board, 1)
		require.True(t, placed)
		assert.Equal(t, CellFood, cellAt(t, board, picked))
	})
}

func TestFoodSpawner_NoRetryOnOccupiedCell(t *testing.T) {
	board := newTestBoard(t, 2, 2)
	for idx := 0; idx < board.Size(); idx++ {
		require.NoError(t, board.SetCell(board.Coord(idx), CellSnake))
	}

	fs := NewFoodSpawner(rand.New(rand.NewSource(7)))
	_, placed := fs.RandomlyAddFood(board, 1)

	assert.False(t, placed)
	assert.Equal(t, 0, board.Count(CellFood))
	assert.Equal(t, 4, board.Count(CellSnake), "occupied cells are never overwritten")
}

func TestFoodSpawner_DeterministicForSeed(t *testing.T) {
	run := func(seed int64) []Cell {
		board := newTestBoard(t, 6, 6)
		fs := NewFoodSpawner(rand.New(rand.NewSource(seed)))
		for i := 0; i < 50; i++ {
			fs.RandomlyAddFood(board, 0.3)
		}
		return board.Cells()
	}

	assert.Equal(t, run(42), run(42), "same seed must replay the same food")
}
