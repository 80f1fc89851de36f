package cpu

import (
	"strings"
)

// Display is the monochrome framebuffer, indexed [row][column].
// Every cell holds 0 or 1.
type Display [DISPLAY_HEIGHT][DISPLAY_WIDTH]uint8

// Clear turns every pixel off.
func (d *Display) Clear() {
	*d = Display{}
}

// Draw XORs an 8-pixel-wide sprite onto the display at (x, y), one sprite
// byte per row, most significant bit leftmost. Coordinates wrap around
// both edges. Returns true if any lit pixel was turned off.
func (d *Display) Draw(x, y uint8, sprite []byte) (collision bool) {
	for r, row := range sprite {
		py := (int(y) + r) % DISPLAY_HEIGHT
		for c := range 8 {
			if row&(0x80>>c) == 0 {
				continue
			}
			px := (int(x) + c) % DISPLAY_WIDTH
			if d[py][px] == 1 {
				collision = true
			}
			d[py][px] ^= 1
		}
	}

	return
}

func (d Display) Width() int {
	return DISPLAY_WIDTH
}

func (d Display) Height() int {
	return DISPLAY_HEIGHT
}

// Pixel reports whether the pixel at column x, row y is lit.
func (d Display) Pixel(x, y int) bool {
	return d[y][x] != 0
}

// String renders the display as rows of '#' and '.'.
func (d Display) String() string {
	var sb strings.Builder
	for _, row := range d {
		for _, px := range row {
			if px != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
