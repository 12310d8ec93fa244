package logic

import "testing"

var testLimits = Limits{Min: 1000, Max: 2000}

func TestMapRawRangeAndMonotonic(t *testing.T) {
	prev := MapRaw(0, 4095, testLimits)
	for raw := uint16(0); raw <= 4095; raw++ {
		us := MapRaw(raw, 4095, testLimits)
		if !testLimits.Contains(us) {
			t.Fatalf("raw %d: %dus outside [%d, %d]", raw, us, testLimits.Min, testLimits.Max)
		}
		if us < prev {
			t.Fatalf("raw %d: %dus decreased from %dus", raw, us, prev)
		}
		prev = us
	}
}

func TestMapRawKnownValues(t *testing.T) {
	tests := []struct {
		raw  uint16
		want PulseWidth
	}{
		{0, 1000},
		{2048, 1500},
		{4095, 2000},
		{1, 1000},
		{4094, 1999},
	}

	for _, tt := range tests {
		if got := MapRaw(tt.raw, 4095, testLimits); got != tt.want {
			t.Errorf("MapRaw(%d): got %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestMapRawAboveRawMax(t *testing.T) {
	if got := MapRaw(65535, 4095, testLimits); got != 2000 {
		t.Errorf("expected out-of-range raw to map to max, got %d", got)
	}
}

func TestMapRawZeroRawMax(t *testing.T) {
	if got := MapRaw(100, 0, testLimits); got != 1000 {
		t.Errorf("expected min for zero rawMax, got %d", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want PulseWidth
	}{
		{500, 1000},
		{1000, 1000},
		{1500, 1500},
		{2000, 2000},
		{2500, 2000},
		{-1, 1000},
	}

	for _, tt := range tests {
		if got := testLimits.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}
