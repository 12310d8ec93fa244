//go:build !linux || tinygo

package adc

import "errors"

// RealReader is not available on non-Linux platforms.
type RealReader struct{}

// NewRealReader returns an error on non-Linux platforms.
func NewRealReader(channel uint8, speedHz int) (*RealReader, error) {
	return nil, errors.New("adc: not supported on this platform (requires Linux)")
}

// ReadRaw is not implemented on non-Linux platforms.
func (r *RealReader) ReadRaw() (uint16, error) {
	return 0, errors.New("adc: not supported")
}

// Close is not implemented on non-Linux platforms.
func (r *RealReader) Close() error {
	return nil
}
