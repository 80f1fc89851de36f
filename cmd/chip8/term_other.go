//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package main

import (
	"io"
	"os"
)

// enterRawTerm leaves the terminal as is; keys arrive a line at a time.
func enterRawTerm() (input io.Reader, restore func() error, err error) {
	input = os.Stdin
	restore = func() error { return nil }
	return
}
