package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.level()).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Int("tick", event.Tick()).
		Time("timestamp", event.Timestamp())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("rows", e.Rows).
			Int("cols", e.Cols).
			Int("growth_per_food", e.GrowthPerFood).
			Float64("food_probability", e.FoodProbability)

	case *events.GameEndedEvent:
		logEvent.
			Str("reason", e.Reason).
			Dur("duration", e.Duration).
			Int("human_length", e.HumanLength).
			Int("computer_length", e.ComputerLength)

	case *events.TickEndedEvent:
		logEvent.
			Dur("process_time", e.ProcessedTime).
			Bool("food_spawned", e.FoodSpawned)

	case *events.HeadingChangedEvent:
		logEvent.
			Stringer("snake", e.Snake).
			Stringer("from", e.From).
			Stringer("to", e.To).
			Bool("fallback", e.Fallback)

	case *events.SnakeMovedEvent:
		logEvent.
			Stringer("snake", e.Snake).
			Int("from_row", e.From.Row).
			Int("from_col", e.From.Col).
			Int("to_row", e.To.Row).
			Int("to_col", e.To.Col).
			Int("length", e.Length)

	case *events.MoveRejectedEvent:
		logEvent.
			Stringer("snake", e.Snake).
			Int("head_row", e.Head.Row).
			Int("head_col", e.Head.Col).
			Stringer("heading", e.Heading)

	case *events.FoodEatenEvent:
		logEvent.
			Stringer("snake", e.Snake).
			Int("row", e.Location.Row).
			Int("col", e.Location.Col).
			Int("growth", e.Growth)

	case *events.FoodSpawnedEvent:
		logEvent.
			Int("row", e.Location.Row).
			Int("col", e.Location.Col)

	case *events.SnakeEmptiedEvent:
		logEvent.Stringer("snake", e.Snake)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}

func (ls *LoggerSubscriber) level() zerolog.Level {
	switch ls.logLevel {
	case zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel:
		return ls.logLevel
	default:
		return zerolog.InfoLevel
	}
}
