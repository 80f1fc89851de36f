package io

import (
	"io"
)

const BELL = "\a"

// Bell sounds the terminal bell when the sound timer starts.
type Bell struct {
	Output io.Writer // Terminal output.

	active bool
}

// Update reports the sound state for this tick. The bell is written only
// on the transition from silent to active.
func (bell *Bell) Update(active bool) (err error) {
	rising := active && !bell.active
	bell.active = active

	if !rising {
		return
	}

	if bell.Output == nil {
		err = ErrOutputMissing
		return
	}

	_, err = io.WriteString(bell.Output, BELL)
	return
}

// Active reports the last sound state.
func (bell *Bell) Active() bool {
	return bell.active
}
