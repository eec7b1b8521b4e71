// Package termios wraps the handful of terminal ioctls clikit needs:
// tty detection, window size and echo control.
package termios

import "errors"

// ErrUnsupported is returned on platforms without terminal support.
var ErrUnsupported = errors.New("termios: unsupported platform")
