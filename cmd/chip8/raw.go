package main

import (
	"context"
	"errors"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/emulator"
	chipio "github.com/ezrec/chip8/io"
)

var stdout io.Writer = os.Stdout

const (
	KEY_CTRL_C = 0x03
	KEY_ESC    = 0x1b
)

// readKeys feeds host key presses to the keyboard until ctx is done, the
// input ends, or ESC or Ctrl-C is read.
// A read of zero bytes with no error is an idle poll.
func readKeys(ctx context.Context, input io.Reader, kb *chipio.Keyboard) (err error) {
	buff := make([]byte, 16)

	for ctx.Err() == nil {
		var n int
		n, err = input.Read(buff)
		for _, ch := range buff[:n] {
			if ch == KEY_ESC || ch == KEY_CTRL_C {
				err = nil
				return
			}
			kb.Press(rune(ch))
		}
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}

	return
}

// rawFrame draws the display when it changes, and rings the bell.
type rawFrame struct {
	Screen chipio.Screen
	Bell   chipio.Bell
	Sound  func() bool

	last  cpu.Display
	drawn bool
}

func (rf *rawFrame) Update(display cpu.Display) (err error) {
	if !rf.drawn || display != rf.last {
		err = rf.Screen.Render(display)
		if err != nil {
			return
		}
		rf.last = display
		rf.drawn = true
	}

	return rf.Bell.Update(rf.Sound())
}

// runRaw runs the emulator on a raw mode terminal.
func runRaw(ctx context.Context, emu *emulator.Emulator) (err error) {
	input, restore, err := enterRawTerm()
	if err != nil {
		return
	}
	defer func() {
		_err := restore()
		if err == nil {
			err = _err
		}
	}()

	frame := &rawFrame{
		Screen: chipio.Screen{Output: stdout},
		Bell:   chipio.Bell{Output: stdout},
		Sound:  emu.Cpu.SoundActive,
	}

	group, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group.Go(func() error {
		defer cancel()
		return readKeys(ctx, input, &emu.Keyboard)
	})

	group.Go(func() error {
		defer cancel()
		err := emu.Run(ctx, nil, frame.Update)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
		return err
	})

	err = group.Wait()
	return
}
