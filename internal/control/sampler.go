package control

import (
	"fmt"

	"github.com/altiis/hacr/internal/adc"
	"github.com/altiis/hacr/internal/gpio"
	"github.com/altiis/hacr/internal/logic"
)

// Sampler reads the potentiometer and the button. It does no filtering.
type Sampler struct {
	pot    adc.Reader
	button gpio.Reader
	limits logic.Limits
	rawMax uint16
}

// NewSampler creates a Sampler mapping [0, rawMax] onto limits.
func NewSampler(pot adc.Reader, button gpio.Reader, limits logic.Limits, rawMax uint16) *Sampler {
	return &Sampler{
		pot:    pot,
		button: button,
		limits: limits,
		rawMax: rawMax,
	}
}

// ReadRaw returns the raw potentiometer sample.
func (s *Sampler) ReadRaw() (uint16, error) {
	raw, err := s.pot.ReadRaw()
	if err != nil {
		return 0, fmt.Errorf("read potentiometer: %w", err)
	}
	return raw, nil
}

// ReadPotentiometer returns the potentiometer position as a pulse width.
func (s *Sampler) ReadPotentiometer() (logic.PulseWidth, error) {
	raw, err := s.ReadRaw()
	if err != nil {
		return 0, err
	}
	return logic.MapRaw(raw, s.rawMax, s.limits), nil
}

// ReadButtonLevel returns true while the button is pressed.
func (s *Sampler) ReadButtonLevel() (bool, error) {
	pressed, err := s.button.Read()
	if err != nil {
		return false, fmt.Errorf("read button: %w", err)
	}
	return pressed, nil
}
