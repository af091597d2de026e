package mapgen

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
)

// Layout holds where each snake starts and which way it faces
type Layout struct {
	HumanStart      core.Coordinate
	HumanHeading    core.Direction
	ComputerStart   core.Coordinate
	ComputerHeading core.Direction
}

// DefaultLayout puts both snakes on the middle row, the human a third of
// the way in from the left heading east and the computer mirrored on the
// right heading west.
func DefaultLayout(rows, cols int) Layout {
	row := rows / 2
	inset := (cols - 1) / 3
	return Layout{
		HumanStart:      core.NewCoordinate(row, inset),
		HumanHeading:    core.East,
		ComputerStart:   core.NewCoordinate(row, cols-1-inset),
		ComputerHeading: core.West,
	}
}

// MapConfig holds configuration for board generation
type MapConfig struct {
	Rows          int
	Cols          int
	InitialGrowth int
	InitialFood   int
	Layout        Layout
}

// DefaultMapConfig returns a configuration using DefaultLayout
func DefaultMapConfig(rows, cols int) MapConfig {
	return MapConfig{
		Rows:   rows,
		Cols:   cols,
		Layout: DefaultLayout(rows, cols),
	}
}

// Result is a freshly generated board with both snakes placed on it
type Result struct {
	Board    *core.Board
	Human    *core.Snake
	Computer *core.Snake
	Food     []core.Coordinate
}

// Generator builds boards with a deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewGenerator creates a new board generator
func NewGenerator(config MapConfig, rng *rand.Rand, logger zerolog.Logger) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
		logger: logger.With().Str("component", "MapGenerator").Logger(),
	}
}

// Generate allocates the board, places the human and then the computer
// snake, and seeds the initial food.
func (g *Generator) Generate() (*Result, error) {
	board, err := core.NewBoard(g.config.Rows, g.config.Cols)
	if err != nil {
		return nil, fmt.Errorf("allocate board: %w", err)
	}

	layout := g.config.Layout
	human, err := core.NewSnake(board, core.HumanSnake, layout.HumanStart, layout.HumanHeading, g.config.InitialGrowth)
	if err != nil {
		board.Destroy()
		return nil, fmt.Errorf("place snake: %w", err)
	}

	computer, err := core.NewSnake(board, core.ComputerSnake, layout.ComputerStart, layout.ComputerHeading, g.config.InitialGrowth)
	if err != nil {
		human.Destroy()
		board.Destroy()
		return nil, fmt.Errorf("place snake: %w", err)
	}

	food := g.placeFood(board)

	g.logger.Debug().
		Int("rows", board.Rows).
		Int("cols", board.Cols).
		Stringer("human_start", layout.HumanStart).
		Stringer("computer_start", layout.ComputerStart).
		Int("food", len(food)).
		Msg("Board generated")

	return &Result{Board: board, Human: human, Computer: computer, Food: food}, nil
}

func (g *Generator) placeFood(b *core.Board) []core.Coordinate {
	want := min(g.config.InitialFood, b.Count(core.CellOpen))
	if want <= 0 {
		return nil
	}

	placed := make([]core.Coordinate, 0, want)

	// Use a maximum attempt counter to avoid infinite loops
	maxAttempts := want * 10
	for attempts := 0; len(placed) < want && attempts < maxAttempts; attempts++ {
		c := b.Coord(g.rng.Intn(b.Size()))
		if cell, _ := b.Lookup(c); cell != core.CellOpen {
			continue
		}
		if err := b.SetCell(c, core.CellFood); err != nil {
			g.logger.Warn().Err(err).Stringer("cell", c).Msg("Failed to seed food")
			continue
		}
		placed = append(placed, c)
	}
	return placed
}
