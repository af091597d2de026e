package events

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
)

func newTestBus() *EventBus {
	return NewEventBus(zerolog.Nop())
}

func TestEventBus(t *testing.T) {
	bus := newTestBus()

	var receivedEvent Event
	bus.SubscribeFunc(TypeGameStarted, func(e Event) {
		receivedEvent = e
	})

	bus.Publish(NewGameStartedEvent("test-game", 20, 30, 3, 0.05))

	require.NotNil(t, receivedEvent, "Event should have been received")
	assert.Equal(t, TypeGameStarted, receivedEvent.Type())
	assert.Equal(t, "test-game", receivedEvent.GameID())
	assert.Equal(t, 0, receivedEvent.Tick())

	started, ok := receivedEvent.(*GameStartedEvent)
	require.True(t, ok)
	assert.Equal(t, 20, started.Rows)
	assert.Equal(t, 30, started.Cols)
}

func TestEventBusMultipleSubscribers(t *testing.T) {
	bus := newTestBus()

	var order []int
	bus.SubscribeFunc(TypeTickStarted, func(e Event) { order = append(order, 1) })
	id := bus.SubscribeFunc(TypeTickStarted, func(e Event) { order = append(order, 2) })

	assert.Equal(t, "tick.started_func_2", id)
	assert.Equal(t, 2, bus.GetFuncHandlerCount(TypeTickStarted))

	bus.Publish(NewTickStartedEvent("test-game", 1))

	assert.Equal(t, []int{1, 2}, order, "function handlers run in registration order")
}

// TestSubscriber is a test implementation of Subscriber
type TestSubscriber struct {
	id              string
	interestedTypes map[string]bool
	receivedEvents  []Event
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(e Event) {
	ts.receivedEvents = append(ts.receivedEvents, e)
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if ts.interestedTypes == nil {
		return true
	}
	return ts.interestedTypes[eventType]
}

func TestEventBusSubscriber(t *testing.T) {
	bus := newTestBus()

	subscriber := &TestSubscriber{
		id: "test-subscriber",
		interestedTypes: map[string]bool{
			TypeGameStarted: true,
			TypeGameEnded:   true,
		},
	}

	bus.Subscribe(subscriber)
	assert.Equal(t, 1, bus.GetSubscriberCount())

	bus.Publish(NewGameStartedEvent("test-game", 10, 10, 3, 0.05))
	bus.Publish(NewTickStartedEvent("test-game", 1))
	bus.Publish(NewGameEndedEvent("test-game", 40, "closed", time.Minute, 5, 7))

	require.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, TypeGameStarted, subscriber.receivedEvents[0].Type())
	assert.Equal(t, TypeGameEnded, subscriber.receivedEvents[1].Type())
	assert.Equal(t, 40, subscriber.receivedEvents[1].Tick())

	bus.Unsubscribe(subscriber.ID())
	bus.Publish(NewGameStartedEvent("test-game", 10, 10, 3, 0.05))

	assert.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, 0, bus.GetSubscriberCount())
}

func TestEventBusRecoversFromPanickingHandler(t *testing.T) {
	bus := newTestBus()

	called := false
	bus.SubscribeFunc(TypeFoodSpawned, func(e Event) { panic("boom") })
	bus.SubscribeFunc(TypeFoodSpawned, func(e Event) { called = true })

	assert.NotPanics(t, func() {
		bus.Publish(NewFoodSpawnedEvent("test-game", 3, core.NewCoordinate(1, 2)))
	})
	assert.True(t, called, "handlers after a panicking one still run")
}

func TestSnakeEventConstructors(t *testing.T) {
	from := core.NewCoordinate(2, 2)
	to := core.NewCoordinate(2, 3)

	moved := NewSnakeMovedEvent("g", 7, core.ComputerSnake, from, to, 4)
	assert.Equal(t, TypeSnakeMoved, moved.Type())
	assert.Equal(t, 7, moved.Tick())
	assert.Equal(t, to, moved.To)
	assert.Equal(t, 4, moved.Length)

	rejected := NewMoveRejectedEvent("g", 8, core.HumanSnake, from, core.North)
	assert.Equal(t, TypeMoveRejected, rejected.Type())
	assert.Equal(t, core.North, rejected.Heading)

	heading := NewHeadingChangedEvent("g", 9, core.ComputerSnake, core.East, core.South, true)
	assert.Equal(t, TypeHeadingChanged, heading.Type())
	assert.True(t, heading.Fallback)

	emptied := NewSnakeEmptiedEvent("g", 10, core.HumanSnake)
	assert.Equal(t, TypeSnakeEmptied, emptied.Type())
	assert.Equal(t, core.HumanSnake, emptied.Snake)

	transition := NewStateTransitionEvent("g", "running", "paused", "user request")
	assert.Equal(t, TypeStateTransition, transition.Type())
	assert.Equal(t, "paused", transition.ToPhase)
	assert.False(t, transition.Timestamp().IsZero())
}
