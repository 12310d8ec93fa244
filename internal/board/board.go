// Package board owns the Raspberry Pi peripheral register mapping shared by
// the real pwm and adc implementations.
package board
