package control

import (
	"errors"
	"fmt"
	"time"

	"github.com/altiis/hacr/internal/logic"
)

// Config holds the controller's timing and range parameters.
type Config struct {
	Limits      logic.Limits
	FrequencyHz int
	RawMax      uint16
	LongPress   time.Duration
	SoftStart   time.Duration
	AdjustRamp  time.Duration
	ArmDelay    time.Duration
	Poll        time.Duration
	RampSteps   int
}

// DefaultConfig returns the stock settings for a 50Hz ESC with a 12-bit
// potentiometer input.
func DefaultConfig() Config {
	return Config{
		Limits:      logic.Limits{Min: 1000, Max: 2000},
		FrequencyHz: 50,
		RawMax:      4095,
		LongPress:   1000 * time.Millisecond,
		SoftStart:   810 * time.Millisecond,
		AdjustRamp:  300 * time.Millisecond,
		ArmDelay:    2000 * time.Millisecond,
		Poll:        10 * time.Millisecond,
		RampSteps:   50,
	}
}

// Validate checks that the config can drive the output safely.
func (c Config) Validate() error {
	if c.FrequencyHz <= 0 {
		return errors.New("frequency must be positive")
	}
	if c.Limits.Min <= 0 {
		return fmt.Errorf("min pulse width %dus must be positive", c.Limits.Min)
	}
	if c.Limits.Max <= c.Limits.Min {
		return fmt.Errorf("max pulse width %dus must exceed min %dus", c.Limits.Max, c.Limits.Min)
	}
	if period := logic.PulseWidth(1_000_000 / c.FrequencyHz); c.Limits.Max >= period {
		return fmt.Errorf("max pulse width %dus must be below the %dus period", c.Limits.Max, period)
	}
	if c.RawMax == 0 {
		return errors.New("raw max must be positive")
	}
	if c.RampSteps < 1 {
		return fmt.Errorf("ramp steps %d must be at least 1", c.RampSteps)
	}
	if c.LongPress <= 0 {
		return errors.New("long press threshold must be positive")
	}
	if c.Poll <= 0 {
		return errors.New("poll interval must be positive")
	}
	if c.SoftStart < 0 || c.AdjustRamp < 0 || c.ArmDelay < 0 {
		return errors.New("ramp and arm durations must not be negative")
	}
	return nil
}

// stepInterval returns the sleep between ramp values, truncated to whole
// milliseconds.
func (c Config) stepInterval(d time.Duration) time.Duration {
	return (d / time.Duration(c.RampSteps)).Truncate(time.Millisecond)
}
