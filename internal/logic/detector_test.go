package logic

import (
	"testing"
	"time"
)

func TestNewPressDetector(t *testing.T) {
	d := NewPressDetector(time.Second)
	if d == nil {
		t.Fatal("NewPressDetector returned nil")
	}
	if d.longPress != time.Second {
		t.Errorf("expected long press threshold 1s, got %v", d.longPress)
	}
	if d.Pressing() {
		t.Error("new detector should be idle")
	}
}

func TestPressStartsSession(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	d := NewPressDetector(time.Second)

	if _, ok := d.Process(true, now); ok {
		t.Error("press edge should not complete a press")
	}
	if !d.Pressing() {
		t.Error("expected PRESSING after pressed sample")
	}
	if !d.start.Equal(now) {
		t.Errorf("expected start %v, got %v", now, d.start)
	}
}

func TestHoldDoesNotRestartSession(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	d := NewPressDetector(time.Second)

	for i := 0; i < 50; i++ {
		if _, ok := d.Process(true, now.Add(time.Duration(i)*10*time.Millisecond)); ok {
			t.Fatalf("iteration %d: held button should not complete a press", i)
		}
	}
	if !d.start.Equal(now) {
		t.Errorf("start moved while held: got %v, want %v", d.start, now)
	}
}

func TestReleaseWhileIdle(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	d := NewPressDetector(time.Second)

	for i := 0; i < 10; i++ {
		if _, ok := d.Process(false, now.Add(time.Duration(i)*10*time.Millisecond)); ok {
			t.Errorf("iteration %d: released button while idle produced a press", i)
		}
	}
}

func TestLongPressGating(t *testing.T) {
	tests := []struct {
		name     string
		held     time.Duration
		wantLong bool
	}{
		{"threshold minus 1ms", 999 * time.Millisecond, false},
		{"exact threshold", 1000 * time.Millisecond, true},
		{"well above threshold", 1200 * time.Millisecond, true},
		{"short tap", 20 * time.Millisecond, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
			d := NewPressDetector(time.Second)

			d.Process(true, now)
			press, ok := d.Process(false, now.Add(tt.held))
			if !ok {
				t.Fatal("expected release to complete a press")
			}
			if press.Long != tt.wantLong {
				t.Errorf("Long: got %v, want %v", press.Long, tt.wantLong)
			}
			if press.Held != tt.held {
				t.Errorf("Held: got %v, want %v", press.Held, tt.held)
			}
			if !press.Start.Equal(now) {
				t.Errorf("Start: got %v, want %v", press.Start, now)
			}
			if d.Pressing() {
				t.Error("expected IDLE after release")
			}
		})
	}
}

func TestSinglePressPerSession(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	d := NewPressDetector(time.Second)

	d.Process(true, now)
	completed := 0
	for i := 0; i < 5; i++ {
		if _, ok := d.Process(false, now.Add(2*time.Second+time.Duration(i)*10*time.Millisecond)); ok {
			completed++
		}
	}
	if completed != 1 {
		t.Errorf("expected exactly 1 completed press, got %d", completed)
	}
}

func TestConsecutivePresses(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	d := NewPressDetector(time.Second)

	d.Process(true, now)
	first, ok := d.Process(false, now.Add(1500*time.Millisecond))
	if !ok || !first.Long {
		t.Fatalf("first press: got %+v ok=%v, want long", first, ok)
	}

	second := now.Add(3 * time.Second)
	d.Process(true, second)
	press, ok := d.Process(false, second.Add(500*time.Millisecond))
	if !ok {
		t.Fatal("second press not completed")
	}
	if press.Long {
		t.Error("second press held 500ms should not be long")
	}
	if !press.Start.Equal(second) {
		t.Errorf("second press start: got %v, want %v", press.Start, second)
	}
}

func TestHeartbeatDisabled(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := NewHeartbeat(start)

	if hb := h.Check(start.Add(time.Hour), 0); hb != nil {
		t.Error("expected nil heartbeat when interval is 0")
	}
	if hb := h.Check(start.Add(time.Hour), -time.Minute); hb != nil {
		t.Error("expected nil heartbeat when interval is negative")
	}
}

func TestHeartbeatInterval(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := NewHeartbeat(start)
	interval := 15 * time.Minute

	if hb := h.Check(start.Add(14*time.Minute), interval); hb != nil {
		t.Error("expected no heartbeat before interval")
	}

	hb := h.Check(start.Add(15*time.Minute), interval)
	if hb == nil {
		t.Fatal("expected heartbeat at interval")
	}
	if hb.Uptime != 15*time.Minute {
		t.Errorf("expected uptime 15m, got %v", hb.Uptime)
	}

	if hb := h.Check(start.Add(20*time.Minute), interval); hb != nil {
		t.Error("expected no heartbeat 5m after the last one")
	}

	hb = h.Check(start.Add(30*time.Minute), interval)
	if hb == nil {
		t.Fatal("expected second heartbeat")
	}
	if hb.Uptime != 30*time.Minute {
		t.Errorf("expected uptime 30m, got %v", hb.Uptime)
	}
}
