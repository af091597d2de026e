package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/ai"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/events"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/mapgen"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/processor"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/rules"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/states"
)

// EngineInitializer handles the initialization of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	return &EngineInitializer{
		config: cfg,
		logger: cfg.Logger.With().Str("component", "GameEngine").Logger(),
	}
}

// Initialize creates and initializes a new game engine
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	if err := ctx.Err(); err != nil {
		ei.logger.Error().Err(err).Msg("Engine creation cancelled or timed out during initial phase")
		return nil, err
	}

	if err := ei.validate(); err != nil {
		return nil, err
	}
	ei.setupDefaults()

	engine := ei.createEngine()
	if err := ei.startSession(ctx, engine); err != nil {
		return nil, err
	}
	return engine, nil
}

// reinitialize starts a new session on an engine whose state machine is
// back in Initializing
func (ei *EngineInitializer) reinitialize(ctx context.Context, engine *Engine) error {
	if err := ctx.Err(); err != nil {
		// Error can be reset, Initializing cannot
		ei.fail(engine, err)
		return err
	}
	engine.stats = Stats{}
	return ei.startSession(ctx, engine)
}

// validate rejects tuning values the tick loop cannot honor
func (ei *EngineInitializer) validate() error {
	if ei.config.GrowthPerFood < 0 {
		return fmt.Errorf("growth per food %d: %w", ei.config.GrowthPerFood, core.ErrNegativeGrowth)
	}
	// Written so that NaN fails too
	if !(ei.config.FoodProbability >= 0 && ei.config.FoodProbability <= 1) {
		return fmt.Errorf("food probability %v must be between 0 and 1", ei.config.FoodProbability)
	}
	if ei.config.InitialFood < 0 {
		return fmt.Errorf("initial food %d must be non-negative", ei.config.InitialFood)
	}
	return nil
}

// setupDefaults sets up default values for missing configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.Rng == nil {
		ei.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		ei.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if ei.config.GameID == "" {
		ei.config.GameID = uuid.NewString()
	}
	ei.logger = ei.logger.With().Str("game_id", ei.config.GameID).Logger()
}

// layout resolves the configured start cells against the default layout
func (ei *EngineInitializer) layout() mapgen.Layout {
	layout := mapgen.DefaultLayout(ei.config.Rows, ei.config.Cols)
	if ei.config.HumanStart != nil {
		layout.HumanStart = *ei.config.HumanStart
		layout.HumanHeading = ei.config.HumanHeading
	}
	if ei.config.ComputerStart != nil {
		layout.ComputerStart = *ei.config.ComputerStart
		layout.ComputerHeading = ei.config.ComputerHeading
	}
	return layout
}

// generateMap builds the board and places both snakes
func (ei *EngineInitializer) generateMap() (*mapgen.Result, error) {
	mapCfg := mapgen.MapConfig{
		Rows:          ei.config.Rows,
		Cols:          ei.config.Cols,
		InitialGrowth: ei.config.InitialGrowth,
		InitialFood:   ei.config.InitialFood,
		Layout:        ei.layout(),
	}
	return mapgen.NewGenerator(mapCfg, ei.config.Rng, ei.logger).Generate()
}

// createEngine creates the engine with all its components
func (ei *EngineInitializer) createEngine() *Engine {
	eventBus := events.NewEventBus(ei.logger)
	for _, sub := range ei.config.Subscribers {
		eventBus.Subscribe(sub)
	}

	gameContext := states.NewGameContext(ei.config.GameID, ei.logger)

	engine := &Engine{
		gs:              &GameState{},
		rng:             ei.config.Rng,
		logger:          ei.logger,
		gameID:          ei.config.GameID,
		config:          ei.config,
		growthPerFood:   ei.config.GrowthPerFood,
		foodProbability: ei.config.FoodProbability,
		planner:         ai.NewPlanner(ei.logger),
		spawner:         core.NewFoodSpawner(ei.config.Rng),
		headings:        processor.NewHeadingProcessor(ei.config.GameID, eventBus, ei.logger),
		activity:        rules.NewActivityChecker(ei.logger),
		eventBus:        eventBus,
		stateMachine:    states.NewStateMachine(gameContext, eventBus),
	}
	engine.tickProcessor = NewTickProcessor(engine)
	return engine
}

// startSession generates the board and moves the engine to Running
func (ei *EngineInitializer) startSession(ctx context.Context, engine *Engine) error {
	result, err := ei.generateMap()
	if err != nil {
		ei.fail(engine, err)
		return fmt.Errorf("map generation failed: %w", err)
	}

	engine.gs = &GameState{
		Board:    result.Board,
		Human:    result.Human,
		Computer: result.Computer,
	}
	engine.stats.Human.observeLength(result.Human.Len())
	engine.stats.Computer.observeLength(result.Computer.Len())

	gameContext := engine.stateMachine.GetContext()
	gameContext.Rows = result.Board.Rows
	gameContext.Cols = result.Board.Cols

	if err := ctx.Err(); err != nil {
		ei.fail(engine, err)
		return err
	}

	if err := engine.stateMachine.TransitionTo(states.PhaseRunning, "Board ready"); err != nil {
		ei.logger.Error().Err(err).Msg("Failed to transition to Running state")
		return fmt.Errorf("state machine initialization failed: %w", err)
	}
	engine.startedAt = time.Now()

	engine.eventBus.Publish(events.NewGameStartedEvent(
		engine.gameID,
		result.Board.Rows,
		result.Board.Cols,
		engine.growthPerFood,
		engine.foodProbability,
	))
	for _, c := range result.Food {
		engine.eventBus.Publish(events.NewFoodSpawnedEvent(engine.gameID, 0, c))
	}

	ei.logger.Info().
		Int("rows", result.Board.Rows).
		Int("cols", result.Board.Cols).
		Int("growth_per_food", engine.growthPerFood).
		Float64("food_probability", engine.foodProbability).
		Msg("Engine created successfully")

	return nil
}

// fail records a setup error in the lifecycle
func (ei *EngineInitializer) fail(engine *Engine, err error) {
	engine.stateMachine.GetContext().Error = err
	if tErr := engine.stateMachine.TransitionTo(states.PhaseError, "setup failed"); tErr != nil {
		ei.logger.Error().Err(tErr).Msg("Failed to transition to Error state")
	}
}
