package monitoring

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/events"
)

// TickMonitor tracks how long ticks take and warns about slow ones. It is an
// event subscriber and never touches the engine directly.
type TickMonitor struct {
	mu            sync.RWMutex
	logger        zerolog.Logger
	ticks         int
	slowTicks     int
	foodSpawned   int
	total         time.Duration
	peak          time.Duration
	last          time.Duration
	slowThreshold time.Duration
	lastAlert     time.Time
	alertCooldown time.Duration
	now           func() time.Time
}

// NewTickMonitor creates a monitor that warns when a tick takes longer than
// slowThreshold. A zero threshold disables the warning.
func NewTickMonitor(logger zerolog.Logger, slowThreshold time.Duration) *TickMonitor {
	return &TickMonitor{
		logger:        logger.With().Str("component", "TickMonitor").Logger(),
		slowThreshold: slowThreshold,
		alertCooldown: 5 * time.Second,
		now:           time.Now,
	}
}

// SetAlertCooldown sets the minimum time between two slow-tick warnings
func (tm *TickMonitor) SetAlertCooldown(d time.Duration) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.alertCooldown = d
}

// ID implements events.Subscriber
func (tm *TickMonitor) ID() string { return "tick_monitor" }

// InterestedIn implements events.Subscriber
func (tm *TickMonitor) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypeTickEnded, events.TypeGameStarted, events.TypeGameEnded:
		return true
	}
	return false
}

// HandleEvent implements events.Subscriber
func (tm *TickMonitor) HandleEvent(event events.Event) {
	switch e := event.(type) {
	case *events.TickEndedEvent:
		tm.observeTick(e)
	case *events.GameStartedEvent:
		tm.Reset()
	case *events.GameEndedEvent:
		m := tm.GetMetrics()
		tm.logger.Info().
			Str("game_id", e.GameID()).
			Int("ticks", m.Ticks).
			Int("slow_ticks", m.SlowTicks).
			Dur("mean", m.Mean).
			Dur("peak", m.Peak).
			Int("food_spawned", m.FoodSpawned).
			Msg("Tick summary")
	}
}

func (tm *TickMonitor) observeTick(e *events.TickEndedEvent) {
	d := e.ProcessedTime

	tm.mu.Lock()
	tm.ticks++
	tm.total += d
	tm.last = d
	if d > tm.peak {
		tm.peak = d
	}
	if e.FoodSpawned {
		tm.foodSpawned++
	}

	slow := tm.slowThreshold > 0 && d > tm.slowThreshold
	shouldAlert := false
	if slow {
		tm.slowTicks++
		now := tm.now()
		shouldAlert = tm.lastAlert.IsZero() || now.Sub(tm.lastAlert) > tm.alertCooldown
		if shouldAlert {
			tm.lastAlert = now
		}
	}
	slowTicks := tm.slowTicks
	tm.mu.Unlock()

	tm.logger.Trace().
		Int("tick", e.Tick()).
		Dur("duration", d).
		Msg("Tick timing")

	if shouldAlert {
		tm.logger.Warn().
			Int("tick", e.Tick()).
			Dur("duration", d).
			Dur("threshold", tm.slowThreshold).
			Int("slow_ticks", slowTicks).
			Msg("Slow tick detected")
	}
}

// Reset clears the counters
func (tm *TickMonitor) Reset() {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.ticks, tm.slowTicks, tm.foodSpawned = 0, 0, 0
	tm.total, tm.peak, tm.last = 0, 0, 0
	tm.lastAlert = time.Time{}
}

// GetMetrics returns current tick metrics
func (tm *TickMonitor) GetMetrics() TickMetrics {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	var mean time.Duration
	if tm.ticks > 0 {
		mean = tm.total / time.Duration(tm.ticks)
	}
	return TickMetrics{
		Ticks:       tm.ticks,
		SlowTicks:   tm.slowTicks,
		FoodSpawned: tm.foodSpawned,
		Mean:        mean,
		Peak:        tm.peak,
		Last:        tm.last,
	}
}

// TickMetrics contains tick timing statistics
type TickMetrics struct {
	Ticks       int           `json:"ticks"`
	SlowTicks   int           `json:"slow_ticks"`
	FoodSpawned int           `json:"food_spawned"`
	Mean        time.Duration `json:"mean"`
	Peak        time.Duration `json:"peak"`
	Last        time.Duration `json:"last"`
}

var _ events.Subscriber = (*TickMonitor)(nil)
