//go:build linux && !tinygo

package board

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// Open maps the GPIO, PWM, clock and SPI registers. Call once at startup,
// before creating pwm.RealWriter or adc.RealReader.
func Open() error {
	if err := rpio.Open(); err != nil {
		return fmt.Errorf("open rpio: %w", err)
	}
	return nil
}

// Close unmaps the registers.
func Close() error {
	return rpio.Close()
}
