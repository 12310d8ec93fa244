// Package logic contains the pure control logic for the motor controller.
// This package has NO external dependencies (no GPIO, PWM, ADC, MQTT, OS, or time.Sleep).
// Time is always injectable via time.Time parameters.
package logic

import "time"

// PulseWidth is a commanded pulse width in microseconds.
type PulseWidth int

// State represents the on/off state of the controller.
type State string

const (
	StateOn  State = "ON"
	StateOff State = "OFF"
)

// EventType represents something the controller did.
type EventType string

const (
	EventArmed     EventType = "ARMED"
	EventSystemOn  EventType = "SYSTEM_ON"
	EventSystemOff EventType = "SYSTEM_OFF"
	EventAdjust    EventType = "ADJUST"
)

// Event represents a controller action to be logged or published.
type Event struct {
	Timestamp time.Time
	Type      EventType
	State     State
	// From and To are the commanded pulse widths before and after the
	// action.
	From PulseWidth
	To   PulseWidth
	// Held is the press duration that caused a toggle (zero otherwise).
	Held time.Duration
}

// Limits is the allowed pulse width range.
type Limits struct {
	Min PulseWidth
	Max PulseWidth
}

// Press is a completed press session.
type Press struct {
	Start time.Time
	Held  time.Duration
	// Long is true if Held reached the long-press threshold.
	Long bool
}

// EventCounts tracks the number of each event type since startup.
type EventCounts struct {
	On             int
	Off            int
	Adjust         int
	IgnoredPresses int
}

// HeartbeatData contains information for a heartbeat event.
type HeartbeatData struct {
	Timestamp time.Time
	Uptime    time.Duration
}
