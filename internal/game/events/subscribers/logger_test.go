package subscribers_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/events"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/events/subscribers"
)

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())
	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeTickStarted))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel)

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "GameStartedEvent",
			event: events.NewGameStartedEvent("test-game-1", 20, 30, 3, 0.05),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(20), logLine["rows"])
				assert.Equal(t, float64(30), logLine["cols"])
				assert.Equal(t, float64(3), logLine["growth_per_food"])
				assert.Equal(t, 0.05, logLine["food_probability"])
			},
		},
		{
			name:  "SnakeMovedEvent",
			event: events.NewSnakeMovedEvent("test-game-1", 4, core.ComputerSnake, core.NewCoordinate(2, 2), core.NewCoordinate(2, 3), 5),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(4), logLine["tick"])
				assert.Equal(t, "computer", logLine["snake"])
				assert.Equal(t, float64(2), logLine["to_row"])
				assert.Equal(t, float64(3), logLine["to_col"])
				assert.Equal(t, float64(5), logLine["length"])
			},
		},
		{
			name:  "MoveRejectedEvent",
			event: events.NewMoveRejectedEvent("test-game-1", 6, core.HumanSnake, core.NewCoordinate(0, 1), core.North),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "human", logLine["snake"])
				assert.Equal(t, "north", logLine["heading"])
				assert.Equal(t, float64(0), logLine["head_row"])
			},
		},
		{
			name:  "HeadingChangedEvent",
			event: events.NewHeadingChangedEvent("test-game-1", 2, core.ComputerSnake, core.East, core.South, true),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "east", logLine["from"])
				assert.Equal(t, "south", logLine["to"])
				assert.Equal(t, true, logLine["fallback"])
			},
		},
		{
			name:  "FoodEatenEvent",
			event: events.NewFoodEatenEvent("test-game-1", 9, core.HumanSnake, core.NewCoordinate(3, 4), 3),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(3), logLine["row"])
				assert.Equal(t, float64(4), logLine["col"])
				assert.Equal(t, float64(3), logLine["growth"])
			},
		},
		{
			name:  "GameEndedEvent",
			event: events.NewGameEndedEvent("test-game-1", 120, "all snakes emptied", 5*time.Minute, 0, 0),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "all snakes emptied", logLine["reason"])
				assert.Equal(t, float64(300000), logLine["duration"]) // 5 minutes in ms
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			logSub.HandleEvent(tc.event)

			logOutput := buf.String()
			require.NotEmpty(t, logOutput, "Log output should not be empty")

			var logLine map[string]interface{}
			err := json.Unmarshal([]byte(logOutput), &logLine)
			require.NoError(t, err, "Should be able to parse log output as JSON")

			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, "Game event", logLine["message"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			assert.Equal(t, "test-game-1", logLine["game_id"])

			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriberWithFilter(t *testing.T) {
	logSub := subscribers.NewLoggerSubscriber("filtered-logger", zerolog.Nop(), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeGameStarted, events.TypeGameEnded})

	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeGameEnded))
	assert.False(t, logSub.InterestedIn(events.TypeTickStarted))
	assert.False(t, logSub.InterestedIn(events.TypeSnakeMoved))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeSnakeMoved))
}

func TestLoggerSubscriberWithBus(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("bus-logger", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeFoodSpawned})

	bus := events.NewEventBus(zerolog.Nop())
	bus.Subscribe(logSub)

	bus.Publish(events.NewTickStartedEvent("g", 1))
	assert.Empty(t, buf.String())

	bus.Publish(events.NewFoodSpawnedEvent("g", 1, core.NewCoordinate(4, 4)))
	assert.Contains(t, buf.String(), events.TypeFoodSpawned)
}

func TestLoggerSubscriberLogLevels(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel zerolog.Level
		expected string
	}{
		{"Debug", zerolog.DebugLevel, "debug"},
		{"Info", zerolog.InfoLevel, "info"},
		{"Warn", zerolog.WarnLevel, "warn"},
		{"Error", zerolog.ErrorLevel, "error"},
		{"TraceFallsBackToInfo", zerolog.TraceLevel, "info"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logSub := subscribers.NewLoggerSubscriber("level-logger", zerolog.New(&buf), tc.logLevel)

			logSub.HandleEvent(events.NewTickStartedEvent("game1", 1))

			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
			assert.Equal(t, tc.expected, logLine["level"])
		})
	}
}

func TestLoggerSubscriberDevelopmentMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev-logger", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewSnakeEmptiedEvent("dev-game", 30, core.HumanSnake))

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))

	eventData, ok := logLine["event_data"]
	require.True(t, ok, "event_data should be present")

	eventDataBytes, err := json.Marshal(eventData)
	require.NoError(t, err)
	assert.Contains(t, string(eventDataBytes), events.TypeSnakeEmptied)
	assert.Contains(t, string(eventDataBytes), `"tick":30`)
}
