package logic

// Ramp is a linear interpolation from From to To in Steps equal increments.
// It yields Steps+1 values: the first is exactly From and the last exactly To.
type Ramp struct {
	From  PulseWidth
	To    PulseWidth
	Steps int
}

// NewRamp creates a ramp. Steps below 1 are treated as 1.
func NewRamp(from, to PulseWidth, steps int) Ramp {
	if steps < 1 {
		steps = 1
	}
	return Ramp{From: from, To: to, Steps: steps}
}

// At returns the value at step i, for i in [0, Steps].
// Integer division truncates toward zero, so the sequence is monotonic
// and At(Steps) == To.
func (r Ramp) At(i int) PulseWidth {
	delta := int(r.To - r.From)
	return r.From + PulseWidth(delta*i/r.Steps)
}

// Len returns the number of values the ramp yields.
func (r Ramp) Len() int {
	return r.Steps + 1
}

// Values returns every value of the ramp in order.
func (r Ramp) Values() []PulseWidth {
	out := make([]PulseWidth, r.Len())
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}

// Iter returns a generator over the ramp's values.
func (r Ramp) Iter() *RampSteps {
	return &RampSteps{ramp: r}
}

// RampSteps lazily yields a ramp's values. It is finite and cannot be
// restarted; call Ramp.Iter again for a fresh sequence.
type RampSteps struct {
	ramp Ramp
	next int
}

// Next returns the next value, or false once the ramp is exhausted.
func (s *RampSteps) Next() (PulseWidth, bool) {
	if s.next > s.ramp.Steps {
		return 0, false
	}
	v := s.ramp.At(s.next)
	s.next++
	return v, true
}

// Remaining returns how many values are left.
func (s *RampSteps) Remaining() int {
	if s.next > s.ramp.Steps {
		return 0
	}
	return s.ramp.Steps + 1 - s.next
}
