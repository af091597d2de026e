package processor_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/events"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/processor"
	"github.com/mitchelldurbincs/SnakeDuel/internal/testutil"
)

func setupSnakes(t *testing.T) map[core.SnakeKind]*core.Snake {
	t.Helper()
	board := testutil.BoardFromRows(t, ".....", ".....", ".....")
	return map[core.SnakeKind]*core.Snake{
		core.HumanSnake:    testutil.SnakeAlong(t, board, core.HumanSnake, core.East, core.NewCoordinate(1, 0)),
		core.ComputerSnake: testutil.SnakeAlong(t, board, core.ComputerSnake, core.West, core.NewCoordinate(1, 4)),
	}
}

func TestHeadingProcessor_Apply(t *testing.T) {
	bus := events.NewEventBus(zerolog.Nop())
	var changes []*events.HeadingChangedEvent
	bus.SubscribeFunc(events.TypeHeadingChanged, func(e events.Event) {
		changes = append(changes, e.(*events.HeadingChangedEvent))
	})

	hp := processor.NewHeadingProcessor("game-1", bus, testutil.NopLogger())
	snakes := setupSnakes(t)

	err := hp.Apply(context.Background(), 3, snakes, []processor.HeadingCommand{
		{Snake: core.HumanSnake, Heading: core.North},
		{Snake: core.ComputerSnake, Heading: core.West}, // unchanged, no event
		{Snake: core.HumanSnake, Heading: core.West},    // reversal is allowed
	})
	require.NoError(t, err)

	assert.Equal(t, core.West, snakes[core.HumanSnake].Heading)
	assert.Equal(t, core.West, snakes[core.ComputerSnake].Heading)

	require.Len(t, changes, 2)
	assert.Equal(t, core.East, changes[0].From)
	assert.Equal(t, core.North, changes[0].To)
	assert.Equal(t, 3, changes[0].Tick())
	assert.Equal(t, "game-1", changes[0].GameID())
	assert.False(t, changes[0].Fallback)
	assert.Equal(t, core.North, changes[1].From)
	assert.Equal(t, core.West, changes[1].To)
}

func TestHeadingProcessor_LogsReversal(t *testing.T) {
	var buf bytes.Buffer
	hp := processor.NewHeadingProcessor("game-1", nil, zerolog.New(&buf).Level(zerolog.DebugLevel))
	snakes := setupSnakes(t)

	require.NoError(t, hp.Apply(context.Background(), 0, snakes, []processor.HeadingCommand{
		{Snake: core.HumanSnake, Heading: core.West},
	}))
	assert.Contains(t, buf.String(), `"reversal":true`)

	buf.Reset()
	require.NoError(t, hp.Apply(context.Background(), 1, snakes, []processor.HeadingCommand{
		{Snake: core.HumanSnake, Heading: core.North},
	}))
	assert.Contains(t, buf.String(), `"reversal":false`)
}

func TestHeadingProcessor_RejectsInvalidDirection(t *testing.T) {
	hp := processor.NewHeadingProcessor("game-1", nil, testutil.NopLogger())
	snakes := setupSnakes(t)

	err := hp.Apply(context.Background(), 0, snakes, []processor.HeadingCommand{
		{Snake: core.HumanSnake, Heading: core.Direction(7)},
		{Snake: core.ComputerSnake, Heading: core.South},
	})

	assert.ErrorIs(t, err, core.ErrInvalidDirection)
	assert.Contains(t, err.Error(), "human snake")
	assert.Equal(t, core.East, snakes[core.HumanSnake].Heading)
	assert.Equal(t, core.South, snakes[core.ComputerSnake].Heading, "later commands still apply")
}

func TestHeadingProcessor_SkipsEmptyAndMissingSnakes(t *testing.T) {
	hp := processor.NewHeadingProcessor("game-1", nil, testutil.NopLogger())

	board := testutil.BoardFromRows(t, "...")
	human := testutil.SnakeAlong(t, board, core.HumanSnake, core.East, core.NewCoordinate(0, 0))
	require.NoError(t, human.RemoveTail(board))
	snakes := map[core.SnakeKind]*core.Snake{core.HumanSnake: human}

	err := hp.Apply(context.Background(), 0, snakes, []processor.HeadingCommand{
		{Snake: core.HumanSnake, Heading: core.South},
		{Snake: core.ComputerSnake, Heading: core.South},
	})

	require.NoError(t, err)
	assert.Equal(t, core.East, human.Heading)
}

func TestHeadingProcessor_ContextCancelled(t *testing.T) {
	hp := processor.NewHeadingProcessor("game-1", nil, testutil.NopLogger())
	snakes := setupSnakes(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := hp.Apply(ctx, 0, snakes, []processor.HeadingCommand{{Snake: core.HumanSnake, Heading: core.South}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, core.East, snakes[core.HumanSnake].Heading)
}
