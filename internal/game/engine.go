package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/ai"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/events"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/processor"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/rules"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/states"
)

// GameConfig holds configuration for creating a new game
type GameConfig struct {
	Rows            int
	Cols            int
	GrowthPerFood   int
	FoodProbability float64
	InitialGrowth   int
	InitialFood     int

	// HumanStart and ComputerStart pick the start cells. A nil start takes
	// both the cell and the heading from mapgen.DefaultLayout.
	HumanStart      *core.Coordinate
	HumanHeading    core.Direction
	ComputerStart   *core.Coordinate
	ComputerHeading core.Direction

	Rng    *rand.Rand
	Logger zerolog.Logger
	GameID string

	// Subscribers are attached before the game.started event is published
	Subscribers []events.Subscriber
}

// Engine owns one board, the human and computer snakes, and the tick loop
type Engine struct {
	gs              *GameState
	rng             *rand.Rand
	logger          zerolog.Logger
	gameID          string
	config          GameConfig
	growthPerFood   int
	foodProbability float64

	planner       *ai.Planner
	spawner       *core.FoodSpawner
	headings      *processor.HeadingProcessor
	activity      *rules.ActivityChecker
	eventBus      *events.EventBus
	stateMachine  *states.StateMachine
	tickProcessor *TickProcessor

	stats     Stats
	startedAt time.Time
}

// NewEngine creates a running game from cfg
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Step plays one full tick: the planner picks the computer heading, then
// NextFrame advances the board.
func (e *Engine) Step(ctx context.Context) error {
	if err := e.checkTickable(ctx); err != nil {
		return err
	}

	computer := e.gs.Computer
	from := computer.Heading
	decision := e.planner.Move(e.gs.Board, computer)
	if decision.Changed {
		e.eventBus.Publish(events.NewHeadingChangedEvent(
			e.gameID, e.gs.Tick+1, core.ComputerSnake, from, decision.Heading, decision.Fallback,
		))
	}

	return e.NextFrame(ctx)
}

// NextFrame advances the board by one tick without consulting the planner.
// Moves are never errors; only cancellation and a stopped game are.
func (e *Engine) NextFrame(ctx context.Context) error {
	if err := e.checkTickable(ctx); err != nil {
		return err
	}
	return e.tickProcessor.ProcessTick(ctx)
}

func (e *Engine) checkTickable(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		e.logger.Warn().Err(err).Int("tick", e.gs.Tick).Msg("Tick cancelled before it started")
		return err
	}
	if phase := e.stateMachine.CurrentPhase(); !phase.CanTick() {
		return fmt.Errorf("tick %d in phase %s: %w", e.gs.Tick+1, phase, core.ErrGameNotRunning)
	}
	return nil
}

// SetHumanHeading is the input path for the human snake. It takes effect on
// the next tick.
func (e *Engine) SetHumanHeading(dir core.Direction) error {
	if phase := e.stateMachine.CurrentPhase(); !phase.CanTick() {
		return fmt.Errorf("set heading in phase %s: %w", phase, core.ErrGameNotRunning)
	}
	return e.headings.Apply(context.Background(), e.gs.Tick+1, e.gs.snakes(), []processor.HeadingCommand{
		{Snake: core.HumanSnake, Heading: dir},
	})
}

// Pause suspends ticking
func (e *Engine) Pause() error {
	return e.stateMachine.TransitionTo(states.PhasePaused, "pause requested")
}

// Resume continues a paused game
func (e *Engine) Resume() error {
	return e.stateMachine.TransitionTo(states.PhaseRunning, "resume requested")
}

// TogglePause pauses a running game or resumes a paused one
func (e *Engine) TogglePause() error {
	if e.stateMachine.CurrentPhase() == states.PhasePaused {
		return e.Resume()
	}
	return e.Pause()
}

// Close ends the session and releases the board and both snakes. Closing
// twice is a no-op.
func (e *Engine) Close() error {
	if !e.stateMachine.CurrentPhase().IsTerminal() {
		e.end("closed")
	}
	if e.gs.Board == nil {
		return nil
	}

	e.gs.Human.Destroy()
	e.gs.Computer.Destroy()
	e.gs.Board.Destroy()
	e.gs.Human, e.gs.Computer, e.gs.Board = nil, nil, nil
	e.logger.Debug().Msg("Engine resources released")
	return nil
}

// Restart tears the current session down and starts a fresh one on a new
// board, keeping the configuration, game ID and RNG stream.
func (e *Engine) Restart(ctx context.Context) error {
	if err := e.Close(); err != nil {
		return err
	}
	if err := e.stateMachine.Reset(); err != nil {
		return fmt.Errorf("reset state machine: %w", err)
	}
	return NewEngineInitializer(e.config).reinitialize(ctx, e)
}

// end moves the lifecycle to Ended and announces it
func (e *Engine) end(reason string) {
	gameCtx := e.stateMachine.GetContext()
	gameCtx.EndReason = reason
	if err := e.stateMachine.TransitionTo(states.PhaseEnded, reason); err != nil {
		e.logger.Error().Err(err).Msg("Failed to end game")
		return
	}
	e.eventBus.Publish(events.NewGameEndedEvent(
		e.gameID, e.gs.Tick, reason, time.Since(e.startedAt), e.gs.Human.Len(), e.gs.Computer.Len(),
	))
}

// Public accessors

// CellAt reads one board cell
func (e *Engine) CellAt(row, col int) (core.Cell, error) {
	if e.gs.Board == nil {
		return core.CellOpen, fmt.Errorf("read (%d,%d): %w", row, col, core.ErrGameNotRunning)
	}
	return e.gs.Board.CellAt(row, col)
}

// Board returns a copy of the board
func (e *Engine) Board() *core.Board {
	if e.gs.Board == nil {
		return nil
	}
	return e.gs.Board.Clone()
}

// HumanSnake returns a copy of the human snake
func (e *Engine) HumanSnake() *core.Snake {
	if e.gs.Human == nil {
		return nil
	}
	return e.gs.Human.Clone()
}

// ComputerSnake returns a copy of the computer snake
func (e *Engine) ComputerSnake() *core.Snake {
	if e.gs.Computer == nil {
		return nil
	}
	return e.gs.Computer.Clone()
}

// GameState returns a deep copy of the current state
func (e *Engine) GameState() GameState { return *e.gs.Clone() }

// Tick returns the number of ticks played
func (e *Engine) Tick() int { return e.gs.Tick }

// Stats returns the session counters
func (e *Engine) Stats() Stats { return e.stats }

// Phase returns the lifecycle phase
func (e *Engine) Phase() states.GamePhase { return e.stateMachine.CurrentPhase() }

// IsFinished reports whether the session can no longer tick
func (e *Engine) IsFinished() bool { return e.stateMachine.CurrentPhase().IsTerminal() }

// GameID returns the game's unique identifier
func (e *Engine) GameID() string { return e.gameID }

// EventBus returns the bus the engine publishes on
func (e *Engine) EventBus() *events.EventBus { return e.eventBus }

// GrowthPerFood returns the growth credit per food eaten
func (e *Engine) GrowthPerFood() int { return e.growthPerFood }

// FoodProbability returns the per-tick food spawn probability
func (e *Engine) FoodProbability() float64 { return e.foodProbability }
