package cpu

// Execute runs a single decoded instruction against the machine.
// Nothing is modified when an error is returned.
func (cpu *Cpu) Execute(op Op, code Code, keys Keypad) (err error) {
	x, y := code.X(), code.Y()
	vx, vy := cpu.V[x], cpu.V[y]

	next_pc := cpu.Pc + OPCODE_SIZE

	// Flag-then-result for the 8xyN group, so a flag targeting VF is
	// overwritten by the result.
	setFlagged := func(flag, result uint8) {
		cpu.V[REGISTER_FLAG] = flag
		cpu.V[x] = result
	}

	switch op {
	case OP_CLS:
		cpu.Display.Clear()
	case OP_RET:
		next_pc, err = cpu.Stack.Pop()
	case OP_JP:
		next_pc = code.Nnn()
	case OP_CALL:
		err = cpu.Stack.Push(next_pc)
		next_pc = code.Nnn()
	case OP_SE_IMM:
		if vx == code.Nn() {
			next_pc += OPCODE_SIZE
		}
	case OP_SNE_IMM:
		if vx != code.Nn() {
			next_pc += OPCODE_SIZE
		}
	case OP_SE_REG:
		if vx == vy {
			next_pc += OPCODE_SIZE
		}
	case OP_LD_IMM:
		cpu.V[x] = code.Nn()
	case OP_ADD_IMM:
		cpu.V[x] = vx + code.Nn()
	case OP_LD_REG:
		cpu.V[x] = vy
	case OP_OR:
		cpu.V[x] = vx | vy
	case OP_AND:
		cpu.V[x] = vx & vy
	case OP_XOR:
		cpu.V[x] = vx ^ vy
	case OP_ADD_REG:
		sum := uint16(vx) + uint16(vy)
		setFlagged(uint8(sum>>8), uint8(sum))
	case OP_SUB:
		setFlagged(bool8(vx >= vy), vx-vy)
	case OP_SHR:
		setFlagged(shiftRight(cpu.shiftOperands(vx, vy)))
	case OP_SUBN:
		setFlagged(bool8(vy >= vx), vy-vx)
	case OP_SHL:
		setFlagged(shiftLeft(cpu.shiftOperands(vx, vy)))
	case OP_SNE_REG:
		if vx != vy {
			next_pc += OPCODE_SIZE
		}
	case OP_LD_I:
		cpu.I = code.Nnn()
	case OP_JP_V0:
		next_pc = code.Nnn() + uint16(cpu.V[0])
	case OP_RND:
		cpu.V[x] = cpu.random() & code.Nn()
	case OP_DRW:
		var sprite []byte
		sprite, err = cpu.Memory.Slice(cpu.I, int(code.N()))
		if err != nil {
			break
		}
		cpu.V[REGISTER_FLAG] = 0
		collision := cpu.Display.Draw(vx, vy, sprite)
		cpu.V[REGISTER_FLAG] = bool8(collision)
	case OP_SKP:
		if keys[vx&0xf] {
			next_pc += OPCODE_SIZE
		}
	case OP_SKNP:
		if !keys[vx&0xf] {
			next_pc += OPCODE_SIZE
		}
	case OP_LD_VX_DT:
		cpu.V[x] = cpu.Dt
	case OP_LD_VX_K:
		cpu.Wait = &KeyWait{Register: x}
	case OP_LD_DT_VX:
		cpu.Dt = vx
	case OP_LD_ST_VX:
		cpu.St = vx
	case OP_ADD_I_VX:
		sum := uint32(cpu.I) + uint32(vx)
		if cpu.Quirks.IndexOverflow {
			cpu.V[REGISTER_FLAG] = bool8(sum > ADDRESS_MASK)
		}
		switch cpu.Quirks.Index {
		case INDEX_BYTE:
			cpu.I = uint16(sum & 0xff)
		default:
			cpu.I = uint16(sum)
		}
	case OP_LD_F_VX:
		cpu.I = FONT_BASE + uint16(vx&0xf)*FONT_GLYPH_SIZE
	case OP_LD_B_VX:
		err = cpu.Memory.Store(cpu.I, []byte{vx / 100, (vx / 10) % 10, vx % 10})
	case OP_LD_I_VX:
		err = cpu.Memory.Store(cpu.I, cpu.V[:x+1])
		if err == nil && cpu.Quirks.LoadStoreIncrement {
			cpu.I += uint16(x) + 1
		}
	case OP_LD_VX_I:
		var data []byte
		data, err = cpu.Memory.Slice(cpu.I, int(x)+1)
		if err != nil {
			break
		}
		copy(cpu.V[:], data)
		if cpu.Quirks.LoadStoreIncrement {
			cpu.I += uint16(x) + 1
		}
	default:
		err = ErrDecode{Code: code, Pc: cpu.Pc}
	}

	if err != nil {
		return
	}

	cpu.Pc = next_pc

	return
}

// shiftOperands picks the value and distance for 8xy6 and 8xyE.
func (cpu *Cpu) shiftOperands(vx, vy uint8) (value, amount uint8) {
	switch cpu.Quirks.Shift {
	case SHIFT_VY:
		return vy, 1
	case SHIFT_BY_VY:
		return vx, vy
	default:
		return vx, 1
	}
}

// shiftRight returns the last bit shifted out and the shifted value.
func shiftRight(value, amount uint8) (flag, result uint8) {
	if amount == 0 {
		return 0, value
	}
	return (value >> (amount - 1)) & 1, value >> amount
}

// shiftLeft returns the last bit shifted out and the shifted value.
func shiftLeft(value, amount uint8) (flag, result uint8) {
	if amount == 0 {
		return 0, value
	}
	return (value << (amount - 1)) >> 7, value << amount
}

func bool8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
