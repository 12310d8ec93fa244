package pwm

// FakeWriter records duty values for test assertions.
type FakeWriter struct {
	// Duties contains every duty value written, in order.
	Duties []uint32

	// Scale is returned by FullScale.
	Scale uint32

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeWriter creates a FakeWriter with the given full scale.
func NewFakeWriter(fullScale uint32) *FakeWriter {
	return &FakeWriter{Scale: fullScale}
}

// SetDuty records the duty value.
func (f *FakeWriter) SetDuty(duty uint32) {
	f.Duties = append(f.Duties, duty)
}

// FullScale returns Scale.
func (f *FakeWriter) FullScale() uint32 {
	return f.Scale
}

// Close marks the writer as closed.
func (f *FakeWriter) Close() error {
	f.Closed = true
	return nil
}

// Last returns the most recent duty value.
func (f *FakeWriter) Last() (uint32, bool) {
	if len(f.Duties) == 0 {
		return 0, false
	}
	return f.Duties[len(f.Duties)-1], true
}

// Reset clears recorded duties.
func (f *FakeWriter) Reset() {
	f.Duties = nil
	f.Closed = false
}
