// Package gpio provides push-button input reading with hardware abstraction.
// The real implementation uses Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

// Reader reads the button input level.
type Reader interface {
	// Read returns the logical button level: true = pressed.
	// Active-low wiring is already inverted by the implementation.
	Read() (bool, error)

	// Close releases GPIO resources.
	Close() error
}

// Default pin (BCM numbering)
const DefaultPinButton = 15
