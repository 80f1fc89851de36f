package main

import (
	"fmt"

	tl "github.com/JoelOtter/termloop"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/emulator"
)

const FRAME_HZ = 60 // termloop redraws per second.

// emulatorEntity steps the emulator on every termloop frame, and draws
// the display below a status line.
type emulatorEntity struct {
	emu    *emulator.Emulator
	status *tl.Text
	err    error
	credit int // Cycles owed, in 1/FRAME_HZ units.
}

// cycles returns the machine cycles to run this frame. Fractions carry
// over, so FRAME_HZ frames run Config.Hz cycles.
func (ee *emulatorEntity) cycles() (count int) {
	ee.credit += ee.emu.Config.Hz
	count = ee.credit / FRAME_HZ
	ee.credit %= FRAME_HZ
	return
}

func (ee *emulatorEntity) Draw(s *tl.Screen) {
	if ee.err == nil {
		for range ee.cycles() {
			ee.err = ee.emu.Tick(ee.emu.Keyboard.Snapshot())
			if ee.err != nil {
				ee.status.SetText(fmt.Sprintf("%v (Ctrl-C to quit)", ee.err))
				break
			}
		}
		if ee.err == nil {
			sound := ""
			if ee.emu.Cpu.SoundActive() {
				sound = "*"
			}
			ee.status.SetText(fmt.Sprintf("pc %03x i %03x %v", ee.emu.Cpu.Pc, ee.emu.Cpu.I, sound))
		}
	}

	display := ee.emu.Cpu.Framebuffer()
	lit := &tl.Cell{Bg: tl.ColorWhite, Ch: ' '}
	for y := range cpu.DISPLAY_HEIGHT {
		for x := range cpu.DISPLAY_WIDTH {
			if display.Pixel(x, y) {
				s.RenderCell(x*2, y+1, lit)
				s.RenderCell(x*2+1, y+1, lit)
			}
		}
	}
}

// Tick handles input. termloop only reports key down events, which the
// keyboard holds for a few cycles.
func (ee *emulatorEntity) Tick(ev tl.Event) {
	if ev.Type == tl.EventKey && ev.Ch != 0 {
		ee.emu.Keyboard.Press(ev.Ch)
	}
}

// runTermloop runs the emulator in a termloop game until Ctrl-C.
func runTermloop(emu *emulator.Emulator) (err error) {
	game := tl.NewGame()
	scr := game.Screen()
	scr.SetFps(FRAME_HZ)

	entity := &emulatorEntity{
		emu:    emu,
		status: tl.NewText(0, 0, "", tl.ColorDefault, tl.ColorDefault),
	}

	scr.AddEntity(entity.status)
	scr.AddEntity(entity)

	game.Start()

	return entity.err
}
