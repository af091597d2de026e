package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Rows and Cols describe the board; both are zero until the board exists
	Rows int
	Cols int

	// StartTime is when the game started (PhaseRunning first entered)
	StartTime time.Time

	// PauseTime is when the game was paused (if paused)
	PauseTime time.Time

	// TotalPauseDuration tracks total time spent paused
	TotalPauseDuration time.Duration

	// EndReason explains why the session ended
	EndReason string

	// Error holds any error that caused transition to PhaseError
	Error error

	// Metadata for custom state data
	Metadata map[string]interface{}
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:   gameID,
		Logger:   logger.With().Str("game_id", gameID).Logger(),
		Metadata: make(map[string]interface{}),
	}
}

// BoardReady returns true once the board dimensions are known
func (gc *GameContext) BoardReady() bool {
	return gc.Rows > 0 && gc.Cols > 0
}

// GetElapsedTime returns the time elapsed since game start, excluding pauses
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}

	paused := gc.TotalPauseDuration
	if !gc.PauseTime.IsZero() {
		paused += time.Since(gc.PauseTime)
	}
	return time.Since(gc.StartTime) - paused
}

// SetMetadata stores custom data for states
func (gc *GameContext) SetMetadata(key string, value interface{}) {
	gc.Metadata[key] = value
}

// GetMetadata retrieves custom data stored by states
func (gc *GameContext) GetMetadata(key string) (interface{}, bool) {
	val, exists := gc.Metadata[key]
	return val, exists
}
