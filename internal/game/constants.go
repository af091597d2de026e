package game

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SnakeDuel/internal/config"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
)

// Defaults used when no configuration file is loaded
const (
	DefaultRows            = 20
	DefaultCols            = 30
	DefaultGrowthPerFood   = 3
	DefaultFoodProbability = 0.1
	DefaultInitialGrowth   = 2
	DefaultInitialFood     = 3
)

// DefaultGameConfig returns a game config with the built-in defaults and the
// default start layout
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Rows:            DefaultRows,
		Cols:            DefaultCols,
		GrowthPerFood:   DefaultGrowthPerFood,
		FoodProbability: DefaultFoodProbability,
		InitialGrowth:   DefaultInitialGrowth,
		InitialFood:     DefaultInitialFood,
		Logger:          zerolog.Nop(),
	}
}

// NewGameConfigFromSettings maps loaded settings onto a GameConfig. A zero
// seed leaves Rng nil so the engine seeds from the clock.
func NewGameConfigFromSettings(c *config.Config, logger zerolog.Logger) (GameConfig, error) {
	g := c.Game
	cfg := GameConfig{
		Rows:            g.Board.Rows,
		Cols:            g.Board.Cols,
		GrowthPerFood:   g.GrowthPerFood,
		FoodProbability: g.FoodProbability,
		InitialGrowth:   g.InitialGrowth,
		InitialFood:     g.InitialFood,
		Logger:          logger,
	}
	if g.Seed != 0 {
		cfg.Rng = rand.New(rand.NewSource(g.Seed))
	}

	var err error
	if cfg.HumanStart, cfg.HumanHeading, err = resolveStart(g.Human); err != nil {
		return GameConfig{}, fmt.Errorf("human start: %w", err)
	}
	if cfg.ComputerStart, cfg.ComputerHeading, err = resolveStart(g.Computer); err != nil {
		return GameConfig{}, fmt.Errorf("computer start: %w", err)
	}
	return cfg, nil
}

func resolveStart(s config.StartConfig) (*core.Coordinate, core.Direction, error) {
	heading, err := core.ParseDirection(s.Heading)
	if err != nil {
		return nil, 0, err
	}
	if s.UsesDefaultLayout() {
		return nil, heading, nil
	}
	start := core.NewCoordinate(s.Row, s.Col)
	return &start, heading, nil
}
