//go:build linux && !tinygo

package adc

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// RealReader reads one single-ended MCP3208 channel on SPI0, chip select 0.
// board.Open must have been called first.
type RealReader struct {
	channel uint8
	buf     [3]byte
}

// NewRealReader starts SPI0 and returns a reader for the given channel (0-7).
func NewRealReader(channel uint8, speedHz int) (*RealReader, error) {
	if channel > 7 {
		return nil, fmt.Errorf("mcp3208 channel %d out of range [0, 7]", channel)
	}
	if err := rpio.SpiBegin(rpio.Spi0); err != nil {
		return nil, fmt.Errorf("begin spi0: %w", err)
	}
	rpio.SpiSpeed(speedHz)
	rpio.SpiChipSelect(0)

	return &RealReader{channel: channel}, nil
}

// ReadRaw performs one conversion.
func (r *RealReader) ReadRaw() (uint16, error) {
	r.buf = encodeRequest(r.channel)
	rpio.SpiExchange(r.buf[:])
	return decodeResponse(r.buf), nil
}

// Close releases SPI0 pins back to input.
func (r *RealReader) Close() error {
	rpio.SpiEnd(rpio.Spi0)
	return nil
}
