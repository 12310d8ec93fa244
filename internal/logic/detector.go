package logic

import "time"

// PressDetector turns sampled button levels into completed presses.
// There is no filtering beyond edge detection; the poll interval is
// expected to be coarse enough to absorb contact bounce.
type PressDetector struct {
	longPress time.Duration
	pressing  bool
	start     time.Time
}

// NewPressDetector creates a detector that classifies presses held for at
// least longPress as long presses.
func NewPressDetector(longPress time.Duration) *PressDetector {
	return &PressDetector{longPress: longPress}
}

// Process takes a new button sample (true = pressed) and returns the
// completed press, if the sample ended one.
func (d *PressDetector) Process(pressed bool, now time.Time) (Press, bool) {
	if pressed {
		if !d.pressing {
			d.pressing = true
			d.start = now
		}
		return Press{}, false
	}

	if !d.pressing {
		return Press{}, false
	}

	d.pressing = false
	held := now.Sub(d.start)
	return Press{
		Start: d.start,
		Held:  held,
		Long:  held >= d.longPress,
	}, true
}

// Pressing reports whether a press session is in progress.
func (d *PressDetector) Pressing() bool {
	return d.pressing
}

// Heartbeat tracks when the last heartbeat was emitted.
type Heartbeat struct {
	startTime time.Time
	last      time.Time
}

// NewHeartbeat creates a heartbeat tracker starting at startTime.
func NewHeartbeat(startTime time.Time) *Heartbeat {
	return &Heartbeat{startTime: startTime, last: startTime}
}

// Check returns heartbeat data if the interval has elapsed since the last
// heartbeat (or startup). Returns nil if the interval has not elapsed, or
// if interval is <= 0 (disabled).
func (h *Heartbeat) Check(now time.Time, interval time.Duration) *HeartbeatData {
	if interval <= 0 {
		return nil
	}
	if now.Sub(h.last) < interval {
		return nil
	}
	h.last = now
	return &HeartbeatData{
		Timestamp: now,
		Uptime:    now.Sub(h.startTime),
	}
}
