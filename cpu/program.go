package cpu

import (
	"iter"
)

// Opcode is the assembled output of a single source line.
type Opcode struct {
	LineNo    int      // Source line number.
	Addr      int      // Load address of the first byte.
	Words     []string // Source words, after equate expansion.
	Data      []byte   // Assembled bytes.
	LinkLabel string   // Label whose address is merged into the last word.
	Raw       bool     // Set for .byte and .word data.
}

type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the source line that assembled the byte at pc.
func (prog *Program) Debug(pc uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(pc) >= op.Addr && int(pc) < op.Addr+len(op.Data) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(pc) - op.Addr,
			}
			break
		}
	}

	return
}

// Binary returns the ROM image, suitable for loading at PROGRAM_START.
func (prog *Program) Binary() (rom []byte) {
	for _, op := range prog.Opcodes {
		offset := op.Addr - PROGRAM_START
		if end := offset + len(op.Data); end > len(rom) {
			rom = append(rom, make([]byte, end-len(rom))...)
		}
		copy(rom[offset:], op.Data)
	}

	return
}

// Codes iterates over the instruction words, skipping raw data.
func (prog *Program) Codes() iter.Seq2[uint16, Code] {
	return func(yield func(pc uint16, code Code) bool) {
		for _, op := range prog.Opcodes {
			if op.Raw {
				continue
			}
			for n := 0; n+1 < len(op.Data); n += OPCODE_SIZE {
				code := Code(uint16(op.Data[n])<<8 | uint16(op.Data[n+1]))
				if !yield(uint16(op.Addr+n), code) {
					return
				}
			}
		}
	}
}
