package mqtt

import "log"

// queuedMsg is a serialized MQTT message held while the broker is unreachable.
type queuedMsg struct {
	topic    string
	payload  []byte
	qos      byte
	retained bool
}

// outbox is a fixed-capacity FIFO of queued messages. When full, the oldest
// message is overwritten. Not safe for concurrent use; RealPublisher holds
// its mutex around every call.
type outbox struct {
	slots   []queuedMsg
	next    int // slot the next push writes
	size    int
	dropped int // messages overwritten since the last drain
}

func newOutbox(capacity int) *outbox {
	if capacity < 1 {
		capacity = 1
	}
	return &outbox{slots: make([]queuedMsg, capacity)}
}

func (o *outbox) push(msg queuedMsg) {
	if o.size == len(o.slots) {
		if o.dropped == 0 {
			log.Printf("mqtt: outbox full (%d messages), dropping oldest", len(o.slots))
		}
		o.dropped++
	} else {
		o.size++
	}
	o.slots[o.next] = msg
	o.next = (o.next + 1) % len(o.slots)
}

// drain returns the queued messages oldest first and empties the outbox.
func (o *outbox) drain() []queuedMsg {
	if o.size == 0 {
		return nil
	}

	out := make([]queuedMsg, 0, o.size)
	first := (o.next - o.size + len(o.slots)) % len(o.slots)
	for i := 0; i < o.size; i++ {
		out = append(out, o.slots[(first+i)%len(o.slots)])
	}

	if o.dropped > 0 {
		log.Printf("mqtt: %d queued messages were dropped while offline", o.dropped)
	}
	o.next = 0
	o.size = 0
	o.dropped = 0
	return out
}

func (o *outbox) len() int {
	return o.size
}
