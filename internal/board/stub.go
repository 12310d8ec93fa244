//go:build !linux || tinygo

package board

import "errors"

// Open returns an error on non-Linux platforms.
func Open() error {
	return errors.New("board: not supported on this platform (requires Linux)")
}

// Close is a no-op on non-Linux platforms.
func Close() error {
	return nil
}
