package control

import (
	"errors"
	"testing"

	"github.com/altiis/hacr/internal/adc"
	"github.com/altiis/hacr/internal/gpio"
	"github.com/altiis/hacr/internal/logic"
)

func TestSamplerReadPotentiometer(t *testing.T) {
	pot := adc.NewFakeReader([]uint16{0, 2048, 4095})
	s := NewSampler(pot, gpio.NewFakeReader([]bool{false}), logic.Limits{Min: 1000, Max: 2000}, 4095)

	for _, want := range []logic.PulseWidth{1000, 1500, 2000} {
		got, err := s.ReadPotentiometer()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("got %d, want %d", got, want)
		}
	}
}

func TestSamplerReadRaw(t *testing.T) {
	pot := adc.NewFakeReader([]uint16{1234})
	s := NewSampler(pot, gpio.NewFakeReader([]bool{false}), logic.Limits{Min: 1000, Max: 2000}, 4095)

	raw, err := s.ReadRaw()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != 1234 {
		t.Errorf("got %d, want 1234", raw)
	}
}

func TestSamplerReadButtonLevel(t *testing.T) {
	button := gpio.NewFakeReader([]bool{false, true})
	s := NewSampler(adc.NewFakeReader([]uint16{0}), button, logic.Limits{Min: 1000, Max: 2000}, 4095)

	for _, want := range []bool{false, true} {
		got, err := s.ReadButtonLevel()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestSamplerWrapsErrors(t *testing.T) {
	potErr := errors.New("spi fault")
	buttonErr := errors.New("line gone")

	pot := adc.NewFakeReader([]uint16{0})
	pot.ReadError = potErr
	button := gpio.NewFakeReader([]bool{false})
	button.ReadError = buttonErr
	s := NewSampler(pot, button, logic.Limits{Min: 1000, Max: 2000}, 4095)

	if _, err := s.ReadPotentiometer(); !errors.Is(err, potErr) {
		t.Errorf("expected wrapped pot error, got %v", err)
	}
	if _, err := s.ReadButtonLevel(); !errors.Is(err, buttonErr) {
		t.Errorf("expected wrapped button error, got %v", err)
	}
}
