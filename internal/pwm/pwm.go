// Package pwm drives the servo/ESC output.
// Encoder converts pulse widths into duty register values; a Writer owns
// the register. The real Writer uses the Raspberry Pi hardware PWM.
package pwm

import (
	"errors"

	"github.com/altiis/hacr/internal/logic"
)

// Writer writes raw values to a PWM duty register.
type Writer interface {
	// SetDuty writes a duty value in [0, FullScale()]. Larger values
	// saturate in hardware.
	SetDuty(duty uint32)

	// FullScale returns the duty value that means 100% on.
	FullScale() uint32

	// Close releases the output.
	Close() error
}

// Defaults for the Raspberry Pi output (BCM numbering).
const (
	DefaultPin   = 18
	DefaultCycle = 20000 // one count per microsecond at 50Hz
)

// Encoder converts pulse widths into duty values at a fixed frequency.
type Encoder struct {
	w         Writer
	periodUS  uint32
	fullScale uint32
	pulse     logic.PulseWidth
}

// NewEncoder creates an encoder for the given PWM frequency.
func NewEncoder(w Writer, frequencyHz int) (*Encoder, error) {
	if frequencyHz <= 0 {
		return nil, errors.New("pwm: frequency must be positive")
	}
	if w.FullScale() == 0 {
		return nil, errors.New("pwm: writer full scale is zero")
	}
	return &Encoder{
		w:         w,
		periodUS:  PeriodUS(frequencyHz),
		fullScale: w.FullScale(),
	}, nil
}

// PeriodUS returns the PWM period in microseconds.
func PeriodUS(frequencyHz int) uint32 {
	return uint32(1_000_000 / frequencyHz)
}

// Duty returns us * fullScale / periodUS.
// No range checking: callers clamp us first.
func Duty(us logic.PulseWidth, periodUS, fullScale uint32) uint32 {
	return uint32(uint64(us) * uint64(fullScale) / uint64(periodUS))
}

// SetPulse writes the duty value for us.
func (e *Encoder) SetPulse(us logic.PulseWidth) {
	e.w.SetDuty(Duty(us, e.periodUS, e.fullScale))
	e.pulse = us
}

// Pulse returns the last pulse width written.
func (e *Encoder) Pulse() logic.PulseWidth {
	return e.pulse
}

// PeriodUS returns the encoder's PWM period in microseconds.
func (e *Encoder) PeriodUS() uint32 {
	return e.periodUS
}
