package processor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/events"
)

// HeadingCommand asks for a snake's heading to change before the next tick
type HeadingCommand struct {
	Snake   core.SnakeKind
	Heading core.Direction
}

// HeadingProcessor validates and applies heading commands
type HeadingProcessor struct {
	logger    zerolog.Logger
	publisher events.Publisher
	gameID    string
}

// NewHeadingProcessor creates a new heading processor. publisher may be nil.
func NewHeadingProcessor(gameID string, publisher events.Publisher, logger zerolog.Logger) *HeadingProcessor {
	return &HeadingProcessor{
		logger:    logger.With().Str("component", "HeadingProcessor").Logger(),
		publisher: publisher,
		gameID:    gameID,
	}
}

// Apply applies cmds in order. Commands for unknown or empty snakes are
// skipped; invalid headings are rejected with core.ErrInvalidDirection and
// the first such error is returned once every command has been seen.
// Turning back onto the body is allowed: the move is simply blocked.
func (hp *HeadingProcessor) Apply(ctx context.Context, tick int, snakes map[core.SnakeKind]*core.Snake, cmds []HeadingCommand) error {
	var encounteredError error

	for _, cmd := range cmds {
		select {
		case <-ctx.Done():
			hp.logger.Warn().Err(ctx.Err()).Msg("Heading processing interrupted by context cancellation")
			return ctx.Err()
		default:
		}

		if !cmd.Heading.IsValid() {
			err := core.WrapSnakeError(cmd.Snake, fmt.Errorf("heading %d: %w", int(cmd.Heading), core.ErrInvalidDirection))
			hp.logger.Warn().Err(err).Msg("Rejected heading command")
			if encounteredError == nil {
				encounteredError = err
			}
			continue
		}

		snake, ok := snakes[cmd.Snake]
		if !ok || snake == nil || snake.IsEmpty() {
			hp.logger.Debug().Stringer("snake", cmd.Snake).Msg("Ignoring heading for missing or empty snake")
			continue
		}

		if snake.Heading == cmd.Heading {
			continue
		}

		from := snake.Heading
		snake.Heading = cmd.Heading
		hp.logger.Debug().
			Stringer("snake", cmd.Snake).
			Stringer("from", from).
			Stringer("to", cmd.Heading).
			Bool("reversal", cmd.Heading == from.Opposite()).
			Msg("Heading changed")

		if hp.publisher != nil {
			hp.publisher.Publish(events.NewHeadingChangedEvent(hp.gameID, tick, cmd.Snake, from, cmd.Heading, false))
		}
	}

	return encounteredError
}
