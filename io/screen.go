package io

import (
	"bufio"
	"io"
)

const (
	SCREEN_HOME = "\033[H"     // Cursor to the top left corner.
	SCREEN_EOL  = "\033[K\r\n" // Clear to end of line, then next line.
)

// Frame is a monochrome image.
type Frame interface {
	Width() int
	Height() int
	Pixel(x, y int) bool
}

// Screen draws frames onto an ANSI terminal.
type Screen struct {
	Output io.Writer // Terminal output.
	On     string    // Text for a lit pixel. Empty uses two full blocks.
	Off    string    // Text for a dark pixel. Empty uses two spaces.
}

// Render redraws the whole frame from the top left corner.
func (sc *Screen) Render(frame Frame) (err error) {
	if sc.Output == nil {
		err = ErrOutputMissing
		return
	}

	on, off := sc.On, sc.Off
	if len(on) == 0 {
		on = "██"
	}
	if len(off) == 0 {
		off = "  "
	}

	out := bufio.NewWriter(sc.Output)
	out.WriteString(SCREEN_HOME)
	for y := range frame.Height() {
		for x := range frame.Width() {
			if frame.Pixel(x, y) {
				out.WriteString(on)
			} else {
				out.WriteString(off)
			}
		}
		out.WriteString(SCREEN_EOL)
	}

	err = out.Flush()
	return
}
