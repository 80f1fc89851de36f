package main

import (
	"context"
	"errors"

	"github.com/ezrec/chip8/emulator"
)

// runHeadless runs the emulator with no display or keyboard until ctx is
// done or the program fails. With -v the trace goes to the log.
func runHeadless(ctx context.Context, emu *emulator.Emulator) (err error) {
	err = emu.Run(ctx, nil, nil)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	return
}
