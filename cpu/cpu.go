package cpu

import (
	"fmt"
	"iter"
	"maps"
	"math/rand/v2"
	"slices"
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":     fmt.Sprintf("%#x", MEMORY_SIZE),
	"FONT_BASE":       fmt.Sprintf("%#x", FONT_BASE),
	"FONT_GLYPH_SIZE": fmt.Sprintf("%v", FONT_GLYPH_SIZE),
	"PROGRAM_START":   fmt.Sprintf("%#x", PROGRAM_START),
	"DISPLAY_WIDTH":   fmt.Sprintf("%v", DISPLAY_WIDTH),
	"DISPLAY_HEIGHT":  fmt.Sprintf("%v", DISPLAY_HEIGHT),
}

// Keypad is the pressed state of keys 0x0 through 0xF for one cycle.
type Keypad [KEY_COUNT]bool

// KeyWait is a pending Fx0A, naming the register that receives the key.
type KeyWait struct {
	Register uint8
}

// Observer is called after every instruction that completes.
type Observer func(pc uint16, code Code, op Op)

// Cpu is the complete machine state.
type Cpu struct {
	Quirks   Quirks     // Dialect selection.
	Rand     *rand.Rand // Source for Cxkk. nil uses the global source.
	Observer Observer   // Optional per-instruction hook.

	Memory  Memory                // Font, program and data.
	V       [REGISTER_COUNT]uint8 // Register bank. V[0xF] is the flag.
	I       uint16                // Index register.
	Pc      uint16                // Program counter.
	Stack   Stack                 // Return addresses.
	Dt      uint8                 // Delay timer.
	St      uint8                 // Sound timer.
	Display Display               // Framebuffer.
	Wait    *KeyWait              // Non-nil while Fx0A is pending.

	rom []byte // Retained program image, reapplied on Reset.
}

// NewCpu creates a machine with the ROM image loaded at PROGRAM_START.
// A nil image yields an empty program area.
func NewCpu(rom []byte) (cpu *Cpu, err error) {
	cpu = &Cpu{}

	err = cpu.Load(rom)
	if err != nil {
		cpu = nil
		return
	}

	return
}

// Load replaces the retained ROM image and resets the machine.
func (cpu *Cpu) Load(rom []byte) (err error) {
	if len(rom) > PROGRAM_LIMIT {
		err = ErrLoad{Size: len(rom), Limit: PROGRAM_LIMIT}
		return
	}

	cpu.rom = slices.Clone(rom)
	cpu.Reset()

	return
}

// Rom returns the retained ROM image.
func (cpu *Cpu) Rom() []byte {
	return cpu.rom
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the machine state.
// - Clears memory, then copies in the font and the retained ROM.
// - Clears the registers, stack, timers and display.
// - Abandons any pending key wait.
// - Sets the program counter to PROGRAM_START.
func (cpu *Cpu) Reset() {
	clear(cpu.Memory[:])
	copy(cpu.Memory[FONT_BASE:], Font[:])
	copy(cpu.Memory[PROGRAM_START:], cpu.rom)

	clear(cpu.V[:])
	cpu.I = 0
	cpu.Pc = PROGRAM_START
	cpu.Stack.Reset()
	cpu.Dt = 0
	cpu.St = 0
	cpu.Display.Clear()
	cpu.Wait = nil
}

// Framebuffer returns a copy of the display.
func (cpu *Cpu) Framebuffer() Display {
	return cpu.Display
}

// SoundActive is true while the sound timer is running.
func (cpu *Cpu) SoundActive() bool {
	return cpu.St > 0
}

// AwaitingKey returns the target register of a pending Fx0A.
func (cpu *Cpu) AwaitingKey() (register uint8, ok bool) {
	if cpu.Wait == nil {
		return
	}

	return cpu.Wait.Register, true
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("   pc: %03X\n", cpu.Pc)
	text += fmt.Sprintf("    i: %03X\n", cpu.I)
	for n, v := range cpu.V {
		text += fmt.Sprintf("   v%X: %02X\n", n, v)
	}
	text += fmt.Sprintf("   dt: %02X\n", cpu.Dt)
	text += fmt.Sprintf("   st: %02X\n", cpu.St)

	strval := "----"
	if val, err := cpu.Stack.Peek(); err == nil {
		strval = fmt.Sprintf("%03X", val)
	}
	text += fmt.Sprintf("stack: %v (%d)\n", strval, cpu.Stack.Sp)

	if cpu.Wait != nil {
		text += fmt.Sprintf(" wait: v%X\n", cpu.Wait.Register)
	}

	return
}

// Step runs one machine cycle.
//
// While a key wait is pending the cycle only polls keys, lowest key code
// first; the first pressed key is stored and the wait ends. Otherwise the
// timers count down and one instruction executes. A failed cycle leaves
// the machine as it found it.
func (cpu *Cpu) Step(keys Keypad) (err error) {
	if cpu.Wait != nil {
		for key, down := range keys {
			if down {
				cpu.V[cpu.Wait.Register] = uint8(key)
				cpu.Wait = nil
				break
			}
		}
		return
	}

	pc := cpu.Pc

	code, err := cpu.Memory.Fetch(pc)
	if err != nil {
		err = ErrFault{Pc: pc, Err: err}
		return
	}

	op, ok := Decode(code)
	if !ok {
		err = ErrDecode{Code: code, Pc: pc}
		return
	}

	dt, st := cpu.Dt, cpu.St
	if cpu.Dt > 0 {
		cpu.Dt--
	}
	if cpu.St > 0 {
		cpu.St--
	}

	err = cpu.Execute(op, code, keys)
	if err != nil {
		cpu.Dt, cpu.St = dt, st
		err = ErrFault{Code: code, Pc: pc, Err: err}
		return
	}

	if cpu.Observer != nil {
		cpu.Observer(pc, code, op)
	}

	return
}

// random returns the next byte for Cxkk.
func (cpu *Cpu) random() uint8 {
	if cpu.Rand != nil {
		return uint8(cpu.Rand.Uint32())
	}
	return uint8(rand.Uint32())
}
