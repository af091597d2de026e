package events

import (
	"time"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypeTickStarted     = "tick.started"
	TypeTickEnded       = "tick.ended"
	TypeHeadingChanged  = "snake.heading_changed"
	TypeSnakeMoved      = "snake.moved"
	TypeMoveRejected    = "snake.move_rejected"
	TypeFoodEaten       = "food.eaten"
	TypeFoodSpawned     = "food.spawned"
	TypeSnakeEmptied    = "snake.emptied"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is emitted when a game starts
type GameStartedEvent struct {
	BaseEvent
	Rows            int     `json:"rows"`
	Cols            int     `json:"cols"`
	GrowthPerFood   int     `json:"growth_per_food"`
	FoodProbability float64 `json:"food_probability"`
}

// NewGameStartedEvent creates a new game started event
func NewGameStartedEvent(gameID string, rows, cols, growthPerFood int, foodProbability float64) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:       newBase(TypeGameStarted, gameID, 0),
		Rows:            rows,
		Cols:            cols,
		GrowthPerFood:   growthPerFood,
		FoodProbability: foodProbability,
	}
}

// GameEndedEvent is emitted when a game ends
type GameEndedEvent struct {
	BaseEvent
	Reason         string        `json:"reason"`
	Duration       time.Duration `json:"duration"`
	HumanLength    int           `json:"human_length"`
	ComputerLength int           `json:"computer_length"`
}

// NewGameEndedEvent creates a new game ended event
func NewGameEndedEvent(gameID string, tick int, reason string, duration time.Duration, humanLength, computerLength int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent:      newBase(TypeGameEnded, gameID, tick),
		Reason:         reason,
		Duration:       duration,
		HumanLength:    humanLength,
		ComputerLength: computerLength,
	}
}

// TickStartedEvent is emitted at the start of each tick
type TickStartedEvent struct {
	BaseEvent
}

// NewTickStartedEvent creates a new tick started event
func NewTickStartedEvent(gameID string, tick int) *TickStartedEvent {
	return &TickStartedEvent{BaseEvent: newBase(TypeTickStarted, gameID, tick)}
}

// TickEndedEvent is emitted at the end of each tick
type TickEndedEvent struct {
	BaseEvent
	ProcessedTime time.Duration `json:"processed_time"`
	FoodSpawned   bool          `json:"food_spawned"`
}

// NewTickEndedEvent creates a new tick ended event
func NewTickEndedEvent(gameID string, tick int, processedTime time.Duration, foodSpawned bool) *TickEndedEvent {
	return &TickEndedEvent{
		BaseEvent:     newBase(TypeTickEnded, gameID, tick),
		ProcessedTime: processedTime,
		FoodSpawned:   foodSpawned,
	}
}

// HeadingChangedEvent is emitted when a snake's heading is changed by
// input or by the planner
type HeadingChangedEvent struct {
	BaseEvent
	Snake    core.SnakeKind `json:"snake"`
	From     core.Direction `json:"from"`
	To       core.Direction `json:"to"`
	Fallback bool           `json:"fallback"`
}

// NewHeadingChangedEvent creates a new heading changed event
func NewHeadingChangedEvent(gameID string, tick int, snake core.SnakeKind, from, to core.Direction, fallback bool) *HeadingChangedEvent {
	return &HeadingChangedEvent{
		BaseEvent: newBase(TypeHeadingChanged, gameID, tick),
		Snake:     snake,
		From:      from,
		To:        to,
		Fallback:  fallback,
	}
}

// SnakeMovedEvent is emitted when a snake's head advances
type SnakeMovedEvent struct {
	BaseEvent
	Snake  core.SnakeKind  `json:"snake"`
	From   core.Coordinate `json:"from"`
	To     core.Coordinate `json:"to"`
	Length int             `json:"length"`
}

// NewSnakeMovedEvent creates a new snake moved event
func NewSnakeMovedEvent(gameID string, tick int, snake core.SnakeKind, from, to core.Coordinate, length int) *SnakeMovedEvent {
	return &SnakeMovedEvent{
		BaseEvent: newBase(TypeSnakeMoved, gameID, tick),
		Snake:     snake,
		From:      from,
		To:        to,
		Length:    length,
	}
}

// MoveRejectedEvent is emitted when a snake's head is blocked
type MoveRejectedEvent struct {
	BaseEvent
	Snake   core.SnakeKind  `json:"snake"`
	Head    core.Coordinate `json:"head"`
	Heading core.Direction  `json:"heading"`
}

// NewMoveRejectedEvent creates a new move rejected event
func NewMoveRejectedEvent(gameID string, tick int, snake core.SnakeKind, head core.Coordinate, heading core.Direction) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: newBase(TypeMoveRejected, gameID, tick),
		Snake:     snake,
		Head:      head,
		Heading:   heading,
	}
}

// FoodEatenEvent is emitted when a snake's head enters a food cell
type FoodEatenEvent struct {
	BaseEvent
	Snake    core.SnakeKind  `json:"snake"`
	Location core.Coordinate `json:"location"`
	Growth   int             `json:"growth"`
}

// NewFoodEatenEvent creates a new food eaten event
func NewFoodEatenEvent(gameID string, tick int, snake core.SnakeKind, location core.Coordinate, growth int) *FoodEatenEvent {
	return &FoodEatenEvent{
		BaseEvent: newBase(TypeFoodEaten, gameID, tick),
		Snake:     snake,
		Location:  location,
		Growth:    growth,
	}
}

// FoodSpawnedEvent is emitted when a food cell is placed
type FoodSpawnedEvent struct {
	BaseEvent
	Location core.Coordinate `json:"location"`
}

// NewFoodSpawnedEvent creates a new food spawned event
func NewFoodSpawnedEvent(gameID string, tick int, location core.Coordinate) *FoodSpawnedEvent {
	return &FoodSpawnedEvent{
		BaseEvent: newBase(TypeFoodSpawned, gameID, tick),
		Location:  location,
	}
}

// SnakeEmptiedEvent is emitted when a snake loses its last segment
type SnakeEmptiedEvent struct {
	BaseEvent
	Snake core.SnakeKind `json:"snake"`
}

// NewSnakeEmptiedEvent creates a new snake emptied event
func NewSnakeEmptiedEvent(gameID string, tick int, snake core.SnakeKind) *SnakeEmptiedEvent {
	return &SnakeEmptiedEvent{
		BaseEvent: newBase(TypeSnakeEmptied, gameID, tick),
		Snake:     snake,
	}
}

// StateTransitionEvent is emitted when the game lifecycle changes phase
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string `json:"from_phase"`
	ToPhase   string `json:"to_phase"`
	Reason    string `json:"reason,omitempty"`
}

// NewStateTransitionEvent creates a new state transition event
func NewStateTransitionEvent(gameID string, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID, 0),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
