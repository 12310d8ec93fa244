//go:build !linux || tinygo

package pwm

import "errors"

// RealWriter is not available on non-Linux platforms.
type RealWriter struct{}

// NewRealWriter returns an error on non-Linux platforms.
func NewRealWriter(pin int, frequencyHz int, cycle uint32) (*RealWriter, error) {
	return nil, errors.New("pwm: not supported on this platform (requires Linux)")
}

// SetDuty is not implemented on non-Linux platforms.
func (w *RealWriter) SetDuty(duty uint32) {}

// FullScale is not implemented on non-Linux platforms.
func (w *RealWriter) FullScale() uint32 {
	return 0
}

// Close is not implemented on non-Linux platforms.
func (w *RealWriter) Close() error {
	return nil
}
