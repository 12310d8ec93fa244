package control

import (
	"testing"
	"time"

	"github.com/altiis/hacr/internal/logic"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	if cfg.Limits != (logic.Limits{Min: 1000, Max: 2000}) {
		t.Errorf("Limits: got %+v", cfg.Limits)
	}
	if cfg.FrequencyHz != 50 {
		t.Errorf("FrequencyHz: got %d, want 50", cfg.FrequencyHz)
	}
	if cfg.LongPress != time.Second {
		t.Errorf("LongPress: got %v, want 1s", cfg.LongPress)
	}
	if cfg.SoftStart != 810*time.Millisecond {
		t.Errorf("SoftStart: got %v, want 810ms", cfg.SoftStart)
	}
	if cfg.AdjustRamp != 300*time.Millisecond {
		t.Errorf("AdjustRamp: got %v, want 300ms", cfg.AdjustRamp)
	}
	if cfg.ArmDelay != 2*time.Second {
		t.Errorf("ArmDelay: got %v, want 2s", cfg.ArmDelay)
	}
	if cfg.Poll != 10*time.Millisecond {
		t.Errorf("Poll: got %v, want 10ms", cfg.Poll)
	}
	if cfg.RampSteps != 50 {
		t.Errorf("RampSteps: got %d, want 50", cfg.RampSteps)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero frequency", func(c *Config) { c.FrequencyHz = 0 }},
		{"zero min", func(c *Config) { c.Limits.Min = 0 }},
		{"max below min", func(c *Config) { c.Limits.Max = 900 }},
		{"max equals min", func(c *Config) { c.Limits.Max = c.Limits.Min }},
		{"max beyond period", func(c *Config) { c.FrequencyHz = 500 }},
		{"zero raw max", func(c *Config) { c.RawMax = 0 }},
		{"zero steps", func(c *Config) { c.RampSteps = 0 }},
		{"zero long press", func(c *Config) { c.LongPress = 0 }},
		{"zero poll", func(c *Config) { c.Poll = 0 }},
		{"negative soft start", func(c *Config) { c.SoftStart = -time.Millisecond }},
		{"negative arm delay", func(c *Config) { c.ArmDelay = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateAcceptsZeroDurations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SoftStart = 0
	cfg.AdjustRamp = 0
	cfg.ArmDelay = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStepInterval(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		d    time.Duration
		want time.Duration
	}{
		{810 * time.Millisecond, 16 * time.Millisecond},
		{300 * time.Millisecond, 6 * time.Millisecond},
		{40 * time.Millisecond, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := cfg.stepInterval(tt.d); got != tt.want {
			t.Errorf("stepInterval(%v): got %v, want %v", tt.d, got, tt.want)
		}
	}
}
