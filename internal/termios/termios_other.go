//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos || windows)

package termios

// IsTerminal always reports false.
func IsTerminal(fd int) bool {
	return false
}

// GetSize always fails with ErrUnsupported.
func GetSize(fd int) (width, height int, err error) {
	return -1, -1, ErrUnsupported
}

// DisableEcho always fails with ErrUnsupported.
func DisableEcho(fd int) (restore func() error, err error) {
	return nil, ErrUnsupported
}
