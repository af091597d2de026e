package game

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/events"
)

// TickProcessor handles the orchestration of a single tick
type TickProcessor struct {
	engine *Engine
	logger zerolog.Logger
}

// NewTickProcessor creates a new tick processor
func NewTickProcessor(engine *Engine) *TickProcessor {
	return &TickProcessor{
		engine: engine,
		logger: engine.logger,
	}
}

// ProcessTick advances the board by one tick. The order is fixed: computer
// head, human head, computer tail, human tail, then one food spawn attempt.
// Heads move before tails, so a cell vacated by a tail this tick is still
// blocked for both heads, and the computer wins a cell both heads want.
// ctx is checked by the caller; a started tick always runs to completion.
func (tp *TickProcessor) ProcessTick(ctx context.Context) error {
	e := tp.engine
	gs := e.gs

	gs.Tick++
	tickLogger := tp.logger.With().Int("tick", gs.Tick).Logger()
	tickLogger.Debug().Msg("Starting tick")

	tickStart := time.Now()
	e.eventBus.Publish(events.NewTickStartedEvent(e.gameID, gs.Tick))

	tp.advanceHead(gs.Computer, tickLogger)
	tp.advanceHead(gs.Human, tickLogger)
	tp.advanceTail(gs.Computer, tickLogger)
	tp.advanceTail(gs.Human, tickLogger)
	spawned := tp.spawnFood(tickLogger)

	e.stats.Ticks = gs.Tick
	e.eventBus.Publish(events.NewTickEndedEvent(e.gameID, gs.Tick, time.Since(tickStart), spawned))

	if e.activity.IsFinished(gs.Human, gs.Computer) {
		tickLogger.Info().Msg("Both snakes are empty, ending game")
		e.end("all snakes emptied")
	}

	tickLogger.Debug().Msg("Tick finished")
	return nil
}

func (tp *TickProcessor) advanceHead(snake *core.Snake, logger zerolog.Logger) {
	e := tp.engine
	from, active := snake.Head()

	result := core.UpdateSnakeHead(snake, e.gs.Board, e.growthPerFood)
	e.stats.recordHead(snake, result)

	if !active {
		return
	}
	to, _ := snake.Head()

	switch result {
	case core.MoveAdvanced:
		e.eventBus.Publish(events.NewSnakeMovedEvent(e.gameID, e.gs.Tick, snake.Kind, from, to, snake.Len()))
	case core.MoveAteFood:
		e.eventBus.Publish(events.NewSnakeMovedEvent(e.gameID, e.gs.Tick, snake.Kind, from, to, snake.Len()))
		e.eventBus.Publish(events.NewFoodEatenEvent(e.gameID, e.gs.Tick, snake.Kind, to, snake.Growth))
	case core.MoveBlocked:
		logger.Debug().
			Stringer("snake", snake.Kind).
			Stringer("head", from).
			Stringer("heading", snake.Heading).
			Msg("Move blocked")
		e.eventBus.Publish(events.NewMoveRejectedEvent(e.gameID, e.gs.Tick, snake.Kind, from, snake.Heading))
	}
}

func (tp *TickProcessor) advanceTail(snake *core.Snake, logger zerolog.Logger) {
	e := tp.engine
	result := core.UpdateSnakeTail(snake, e.gs.Board)
	e.stats.recordTail(snake, result)

	if result == core.TailEmptied {
		logger.Info().Stringer("snake", snake.Kind).Msg("Snake emptied")
		e.eventBus.Publish(events.NewSnakeEmptiedEvent(e.gameID, e.gs.Tick, snake.Kind))
	}
}

func (tp *TickProcessor) spawnFood(logger zerolog.Logger) bool {
	e := tp.engine
	picked, placed := e.spawner.RandomlyAddFood(e.gs.Board, e.foodProbability)
	if !placed {
		return false
	}

	e.stats.FoodSpawned++
	logger.Debug().Stringer("cell", picked).Msg("Food spawned")
	e.eventBus.Publish(events.NewFoodSpawnedEvent(e.gameID, e.gs.Tick, picked))
	return true
}
