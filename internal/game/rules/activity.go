package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
)

// ActivityChecker decides when a session has nothing left to play.
// There is no winner and no death: a session is finished once every snake
// has lost its last segment, since after that only food can change.
type ActivityChecker struct {
	logger zerolog.Logger
}

// NewActivityChecker creates a new activity checker
func NewActivityChecker(logger zerolog.Logger) *ActivityChecker {
	return &ActivityChecker{
		logger: logger.With().Str("component", "ActivityChecker").Logger(),
	}
}

// IsFinished returns true when every snake is nil or empty
func (ac *ActivityChecker) IsFinished(snakes ...*core.Snake) bool {
	active := 0
	for _, s := range snakes {
		if s != nil && !s.IsEmpty() {
			active++
		}
	}

	ac.logger.Debug().Int("active_snakes", active).Msg("Activity check complete")
	return active == 0
}
