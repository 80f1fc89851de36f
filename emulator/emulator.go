// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives a CHIP-8 machine from a host: it loads or
// assembles programs, applies the configured dialect, and steps the
// machine at a fixed rate.
package emulator

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"log"
	"maps"
	"math/rand/v2"
	"time"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/internal"
	chipio "github.com/ezrec/chip8/io"
)

var _emulator_defines = map[string]string{
	"KEY_COUNT":   fmt.Sprintf("%v", cpu.KEY_COUNT),
	"STACK_LIMIT": fmt.Sprintf("%v", cpu.STACK_LIMIT),
}

// Emulator state. CPU + program listing + host devices.
type Emulator struct {
	Verbose  bool         // If set, logs every instruction executed.
	*cpu.Cpu              // Reference to the machine.
	Program  *cpu.Program // Listing of the loaded program, if assembled.
	Config   Config       // Active configuration.

	Rom      chipio.Rom      // Last ROM image read from a file.
	Keyboard chipio.Keyboard // Host key state.
}

// NewEmulator creates an emulator with an empty program.
// A nil configuration uses DefaultConfig.
func NewEmulator(cfg *Config) (emu *Emulator, err error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	err = cfg.Validate()
	if err != nil {
		return
	}

	keymap, err := cfg.Keys()
	if err != nil {
		return
	}

	machine, err := cpu.NewCpu(nil)
	if err != nil {
		return
	}

	machine.Quirks = cfg.Quirks
	if cfg.Seed != 0 {
		machine.Rand = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	emu = &Emulator{
		Cpu:     machine,
		Program: &cpu.Program{},
		Config:  *cfg,
	}

	emu.Rom.Limit = cpu.PROGRAM_LIMIT
	emu.Keyboard.Keymap = keymap
	emu.Keyboard.Hold = cfg.Hold

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Rom.Defines(),
	)
}

// Load a raw ROM image, and reset the machine.
func (emu *Emulator) Load(rom []byte) (err error) {
	err = emu.Cpu.Load(rom)
	if err != nil {
		return
	}

	emu.Program = &cpu.Program{}

	return
}

// LoadFile loads the named ROM image from a file system.
func (emu *Emulator) LoadFile(fsys fs.FS, name string) (err error) {
	err = emu.Rom.Load(fsys, name)
	if err != nil {
		return
	}

	return emu.Load(emu.Rom.Data)
}

// Assemble a program from source, load it, and reset the machine.
func (emu *Emulator) Assemble(input io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	err = emu.Cpu.Load(prog.Binary())
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Reset the machine to the loaded program, and release all keys.
func (emu *Emulator) Reset() {
	emu.Cpu.Reset()
	emu.Keyboard.Release()
}

// LineNo returns the source line of the current instruction, or 0 when
// no listing covers it.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// trace logs each instruction as it completes.
func (emu *Emulator) trace(pc uint16, code cpu.Code, op cpu.Op) {
	log.Printf("%03x: %04x %v", pc, uint16(code), op)
}

// Tick runs a single machine cycle.
func (emu *Emulator) Tick(keys cpu.Keypad) (err error) {
	if emu.Verbose {
		emu.Cpu.Observer = emu.trace
	} else {
		emu.Cpu.Observer = nil
	}

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Step(keys)

	return
}

// Run ticks the machine at Config.Hz until ctx is done or a tick fails.
// keys supplies the keypad for each tick; nil uses the emulator's
// Keyboard. frame, if not nil, is called with the display after each tick.
func (emu *Emulator) Run(ctx context.Context, keys func() cpu.Keypad, frame func(cpu.Display) error) (err error) {
	if keys == nil {
		keys = func() cpu.Keypad {
			return emu.Keyboard.Snapshot()
		}
	}

	if !emu.Config.validHz() {
		err = ErrConfigHz
		return
	}

	ticker := time.NewTicker(time.Second / time.Duration(emu.Config.Hz))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}

		err = ctx.Err()
		if err != nil {
			return
		}

		err = emu.Tick(keys())
		if err != nil {
			return
		}

		if frame != nil {
			err = frame(emu.Cpu.Framebuffer())
			if err != nil {
				return
			}
		}
	}
}
