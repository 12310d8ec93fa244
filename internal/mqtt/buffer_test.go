package mqtt

import (
	"testing"
)

func TestOutboxEmptyDrain(t *testing.T) {
	o := newOutbox(10)
	if got := o.drain(); got != nil {
		t.Errorf("expected nil from empty drain, got %d items", len(got))
	}
}

func TestOutboxPushAndDrain(t *testing.T) {
	o := newOutbox(10)
	for i := 0; i < 5; i++ {
		o.push(queuedMsg{topic: "t", payload: []byte{byte(i)}})
	}
	if o.len() != 5 {
		t.Errorf("expected len 5, got %d", o.len())
	}

	got := o.drain()
	if len(got) != 5 {
		t.Fatalf("expected 5 items, got %d", len(got))
	}
	for i := 0; i < 5; i++ {
		if got[i].payload[0] != byte(i) {
			t.Errorf("item %d: expected payload %d, got %d", i, i, got[i].payload[0])
		}
	}

	if again := o.drain(); again != nil {
		t.Errorf("expected nil from second drain, got %d items", len(again))
	}
}

func TestOutboxOverflowDropsOldest(t *testing.T) {
	o := newOutbox(4)
	for i := 0; i < 10; i++ {
		o.push(queuedMsg{topic: "t", payload: []byte{byte(i)}})
	}
	if o.len() != 4 {
		t.Fatalf("expected len capped at 4, got %d", o.len())
	}
	if o.dropped != 6 {
		t.Errorf("expected 6 dropped, got %d", o.dropped)
	}

	got := o.drain()
	for i, want := range []byte{6, 7, 8, 9} {
		if got[i].payload[0] != want {
			t.Errorf("item %d: expected payload %d, got %d", i, want, got[i].payload[0])
		}
	}
	if o.dropped != 0 {
		t.Errorf("expected dropped reset after drain, got %d", o.dropped)
	}
}

func TestOutboxReuseAfterDrain(t *testing.T) {
	o := newOutbox(3)
	o.push(queuedMsg{payload: []byte{1}})
	o.push(queuedMsg{payload: []byte{2}})
	o.drain()

	o.push(queuedMsg{payload: []byte{3}})
	got := o.drain()
	if len(got) != 1 || got[0].payload[0] != 3 {
		t.Errorf("unexpected drain after reuse: %+v", got)
	}
}

func TestOutboxKeepsMessageFields(t *testing.T) {
	o := newOutbox(2)
	o.push(queuedMsg{topic: TopicSystem, payload: []byte("x"), qos: 1, retained: true})

	got := o.drain()
	if got[0].topic != TopicSystem || got[0].qos != 1 || !got[0].retained {
		t.Errorf("fields not preserved: %+v", got[0])
	}
}

func TestNewOutboxMinimumCapacity(t *testing.T) {
	o := newOutbox(0)
	o.push(queuedMsg{payload: []byte{1}})
	o.push(queuedMsg{payload: []byte{2}})

	got := o.drain()
	if len(got) != 1 || got[0].payload[0] != 2 {
		t.Errorf("expected only newest message, got %+v", got)
	}
}
