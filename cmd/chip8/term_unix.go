//go:build linux || darwin || freebsd || netbsd || openbsd

package main

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// rawInput reads a raw mode terminal. A read that times out returns no
// bytes and no error.
type rawInput int

func (fd rawInput) Read(buff []byte) (n int, err error) {
	n, err = unix.Read(int(fd), buff)
	if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
		n, err = 0, nil
	}
	if n < 0 {
		n = 0
	}
	return
}

// enterRawTerm puts stdin in raw mode, with reads that return after
// a tenth of a second.
func enterRawTerm() (input io.Reader, restore func() error, err error) {
	fd := int(os.Stdin.Fd())

	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}

	saved := *termios
	state := *termios

	state.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR | unix.ICRNL | unix.IXON
	state.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN
	state.Cflag &^= unix.CSIZE | unix.PARENB
	state.Cflag |= unix.CS8

	state.Cc[unix.VMIN] = 0
	state.Cc[unix.VTIME] = 1

	err = unix.IoctlSetTermios(fd, ioctlSetTermios, &state)
	if err != nil {
		return
	}

	input = rawInput(fd)
	restore = func() error {
		return unix.IoctlSetTermios(fd, ioctlSetTermios, &saved)
	}

	return
}
