package adc

import "errors"

// FakeReader is a test double that returns scripted raw samples.
type FakeReader struct {
	// Samples contains scripted raw values to return.
	// Each call to ReadRaw() consumes the next sample.
	Samples []uint16

	// index tracks current position in Samples
	index int

	// Reads counts calls to ReadRaw.
	Reads int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by ReadRaw()
	ReadError error
}

// NewFakeReader creates a FakeReader with the given samples.
func NewFakeReader(samples []uint16) *FakeReader {
	return &FakeReader{Samples: samples}
}

// ReadRaw returns the next scripted sample.
// If samples are exhausted, returns the last sample repeatedly.
func (f *FakeReader) ReadRaw() (uint16, error) {
	f.Reads++
	if f.ReadError != nil {
		return 0, f.ReadError
	}

	if len(f.Samples) == 0 {
		return 0, errors.New("no samples configured")
	}

	sample := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}

	return sample, nil
}

// Set replaces the script with a single constant sample.
func (f *FakeReader) Set(raw uint16) {
	f.Samples = []uint16{raw}
	f.index = 0
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}
