//go:build linux && !tinygo

package pwm

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// Raspberry Pi pins with hardware PWM (BCM numbering).
var hardwarePWMPins = map[int]bool{
	12: true,
	13: true,
	18: true,
	19: true,
}

// PWM clock limits accepted by the BCM283x clock divider.
const (
	minClockHz = 4688
	maxClockHz = 19_200_000
)

// RealWriter drives a Raspberry Pi hardware PWM pin through go-rpio.
// board.Open must have been called first.
type RealWriter struct {
	pin   rpio.Pin
	cycle uint32
}

// NewRealWriter configures pin for hardware PWM at frequencyHz with cycle
// counts per period. The PWM clock runs at frequencyHz*cycle, so a cycle
// equal to the period in microseconds gives one count per microsecond.
// The output starts at duty 0.
func NewRealWriter(pin int, frequencyHz int, cycle uint32) (*RealWriter, error) {
	if !hardwarePWMPins[pin] {
		return nil, fmt.Errorf("pin %d has no hardware PWM", pin)
	}
	clock := frequencyHz * int(cycle)
	if clock < minClockHz || clock > maxClockHz {
		return nil, fmt.Errorf("pwm clock %dHz out of range [%d, %d]", clock, minClockHz, maxClockHz)
	}

	p := rpio.Pin(pin)
	p.Mode(rpio.Pwm)
	p.Freq(clock)
	p.DutyCycle(0, cycle)

	return &RealWriter{pin: p, cycle: cycle}, nil
}

// SetDuty writes the duty length for the current cycle.
func (w *RealWriter) SetDuty(duty uint32) {
	w.pin.DutyCycle(duty, w.cycle)
}

// FullScale returns the cycle length.
func (w *RealWriter) FullScale() uint32 {
	return w.cycle
}

// Close stops the output and returns the pin to input mode.
func (w *RealWriter) Close() error {
	w.pin.DutyCycle(0, w.cycle)
	w.pin.Mode(rpio.Input)
	return nil
}
