// Package adc reads the potentiometer with hardware abstraction.
// The real implementation talks to an MCP3208 12-bit ADC over SPI.
// The fake implementation allows testing without hardware.
package adc

// Reader reads raw analog samples.
type Reader interface {
	// ReadRaw returns a raw sample in [0, RawMax].
	ReadRaw() (uint16, error)

	// Close releases ADC resources.
	Close() error
}

// RawMax is the largest sample a 12-bit converter returns.
const RawMax = 4095

// Defaults for the MCP3208 on SPI0.
const (
	DefaultChannel  = 0
	DefaultSPISpeed = 1_000_000
)
