package cpu

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCpu(f *testing.F) {
	for rv := range 0x10 {
		f.Add(uint16(rv<<12), uint16(0x300), uint8(rv), false)
		f.Add(uint16(rv<<12|0xfff), uint16(0xffe), uint8(0xff-rv), true)
	}

	f.Fuzz(func(t *testing.T, opcode uint16, index uint16, keys uint8, stack bool) {
		assert := assert.New(t)

		code := Code(opcode)

		cpu, err := NewCpu(romOf(code))
		assert.NoError(err)
		cpu.Rand = rand.New(rand.NewPCG(uint64(opcode), uint64(index)))
		cpu.I = index & ADDRESS_MASK
		cpu.Dt = 7
		cpu.St = 1
		for n := range cpu.V {
			cpu.V[n] = uint8(0x11 * n)
		}
		if stack {
			for range STACK_LIMIT {
				assert.NoError(cpu.Stack.Push(0x234))
			}
		}

		var keypad Keypad
		for n := range 8 {
			keypad[n*2] = (keys>>n)&1 == 1
		}

		before := *cpu

		err = cpu.Step(keypad)

		code_str := fmt.Sprintf("0x%04x i:0x%03x stack:%v\ncpu:%v", opcode, cpu.I, stack, cpu.String())

		op, ok := Decode(code)

		if err != nil {
			// Failed cycles never modify the machine.
			assert.Equal(before, *cpu, code_str)

			var ed ErrDecode
			var ef ErrFault
			switch {
			case errors.As(err, &ed):
				assert.False(ok, code_str)
				assert.Equal(ErrDecode{Code: code, Pc: PROGRAM_START}, ed, code_str)
			case errors.As(err, &ef):
				assert.True(ok, code_str)
				switch {
				case errors.Is(err, ErrStackFull):
					assert.True(stack, code_str)
					assert.Equal(OP_CALL, op, code_str)
				case errors.Is(err, ErrStackEmpty):
					assert.False(stack, code_str)
					assert.Equal(OP_RET, op, code_str)
				case errors.Is(err, ErrAddress):
					switch op {
					case OP_DRW, OP_LD_B_VX, OP_LD_I_VX, OP_LD_VX_I:
						// expected error
					default:
						assert.NoError(err, code_str)
					}
				default:
					assert.NoError(err, code_str)
				}
			default:
				assert.NoError(err, code_str)
			}
			return
		}

		assert.True(ok, code_str)
		switch op {
		case OP_LD_DT_VX:
			assert.Equal(cpu.V[code.X()], cpu.Dt, code_str)
		case OP_LD_ST_VX:
			assert.Equal(cpu.V[code.X()], cpu.St, code_str)
		default:
			assert.Equal(uint8(6), cpu.Dt, code_str)
			assert.Equal(uint8(0), cpu.St, code_str)
		}

		next_pc := uint16(PROGRAM_START + OPCODE_SIZE)
		switch op {
		case OP_JP:
			assert.Equal(code.Nnn(), cpu.Pc, code_str)
		case OP_CALL:
			assert.Equal(code.Nnn(), cpu.Pc, code_str)
			top, err := cpu.Stack.Peek()
			assert.NoError(err, code_str)
			assert.Equal(next_pc, top, code_str)
		case OP_RET:
			assert.Equal(uint16(0x234), cpu.Pc, code_str)
		case OP_JP_V0:
			assert.Equal(code.Nnn(), cpu.Pc, code_str)
		case OP_SE_IMM, OP_SNE_IMM, OP_SE_REG, OP_SNE_REG, OP_SKP, OP_SKNP:
			assert.Contains([]uint16{next_pc, next_pc + OPCODE_SIZE}, cpu.Pc, code_str)
		case OP_LD_VX_K:
			assert.Equal(next_pc, cpu.Pc, code_str)
			register, waiting := cpu.AwaitingKey()
			assert.True(waiting, code_str)
			assert.Equal(code.X(), register, code_str)
		default:
			assert.Equal(next_pc, cpu.Pc, code_str)
		}

		// Only the flag, the target register, or a block load touch registers.
		for n := range cpu.V {
			if n == int(code.X()) || n == REGISTER_FLAG || op == OP_LD_VX_I {
				continue
			}
			assert.Equal(before.V[n], cpu.V[n], code_str)
		}
	})
}
