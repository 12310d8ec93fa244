// Package status provides a thread-safe status tracker for the controller.
// It is written by the control loop and read by HTTP handlers and the
// heartbeat publisher.
package status

import (
	"sync"
	"time"

	"github.com/altiis/hacr/internal/logic"
)

// Config contains controller configuration for display.
type Config struct {
	PollMs       int64
	LongPressMs  int64
	SoftStartMs  int64
	AdjustRampMs int64
	ArmDelayMs   int64
	FrequencyHz  int
	MinUS        int
	MaxUS        int
	RampSteps    int
	Broker       string // empty = telemetry disabled
	HTTPAddr     string
}

// Snapshot is a point-in-time view of controller state.
// It is a value type, safe to use after the lock is released.
type Snapshot struct {
	State         logic.State
	Pulse         logic.PulseWidth
	Armed         bool
	Counts        logic.EventCounts
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Config        Config
}

// Uptime returns the duration since the controller started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable controller state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
// The state starts OFF at the configured minimum pulse width.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			State:     logic.StateOff,
			Pulse:     logic.PulseWidth(cfg.MinUS),
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the controller state, commanded pulse, arm status and counters.
// Called from runLoop on every tick.
func (t *Tracker) Update(state logic.State, pulse logic.PulseWidth, armed bool, counts logic.EventCounts) {
	t.mu.Lock()
	t.snap.State = state
	t.snap.Pulse = pulse
	t.snap.Armed = armed
	t.snap.Counts = counts
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the controller state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
