package cpu

// Op is a decoded instruction.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_CLS      = Op(0)  // cls
	OP_RET      = Op(1)  // ret
	OP_JP       = Op(2)  // jp
	OP_CALL     = Op(3)  // call
	OP_SE_IMM   = Op(4)  // se.imm
	OP_SNE_IMM  = Op(5)  // sne.imm
	OP_SE_REG   = Op(6)  // se.reg
	OP_LD_IMM   = Op(7)  // ld.imm
	OP_ADD_IMM  = Op(8)  // add.imm
	OP_LD_REG   = Op(9)  // ld.reg
	OP_OR       = Op(10) // or
	OP_AND      = Op(11) // and
	OP_XOR      = Op(12) // xor
	OP_ADD_REG  = Op(13) // add.reg
	OP_SUB      = Op(14) // sub
	OP_SHR      = Op(15) // shr
	OP_SUBN     = Op(16) // subn
	OP_SHL      = Op(17) // shl
	OP_SNE_REG  = Op(18) // sne.reg
	OP_LD_I     = Op(19) // ld.i
	OP_JP_V0    = Op(20) // jp.v0
	OP_RND      = Op(21) // rnd
	OP_DRW      = Op(22) // drw
	OP_SKP      = Op(23) // skp
	OP_SKNP     = Op(24) // sknp
	OP_LD_VX_DT = Op(25) // ld.vx.dt
	OP_LD_VX_K  = Op(26) // ld.vx.k
	OP_LD_DT_VX = Op(27) // ld.dt.vx
	OP_LD_ST_VX = Op(28) // ld.st.vx
	OP_ADD_I_VX = Op(29) // add.i.vx
	OP_LD_F_VX  = Op(30) // ld.f.vx
	OP_LD_B_VX  = Op(31) // ld.b.vx
	OP_LD_I_VX  = Op(32) // ld.i.vx
	OP_LD_VX_I  = Op(33) // ld.vx.i
)

// Code is a single big-endian instruction word.
type Code uint16

// Nibbles splits the word, most significant nibble first.
func (code Code) Nibbles() [4]uint8 {
	return [4]uint8{
		uint8(code>>12) & 0xf,
		uint8(code>>8) & 0xf,
		uint8(code>>4) & 0xf,
		uint8(code>>0) & 0xf,
	}
}

// Nnn is the 12-bit address field.
func (code Code) Nnn() uint16 {
	return uint16(code) & ADDRESS_MASK
}

// Nn is the 8-bit immediate field.
func (code Code) Nn() uint8 {
	return uint8(code)
}

// X is the first register selector.
func (code Code) X() uint8 {
	return uint8(code>>8) & 0xf
}

// Y is the second register selector.
func (code Code) Y() uint8 {
	return uint8(code>>4) & 0xf
}

// N is the 4-bit count field.
func (code Code) N() uint8 {
	return uint8(code) & 0xf
}

// Decode maps an instruction word to its operation.
func Decode(code Code) (op Op, ok bool) {
	nib := code.Nibbles()

	ok = true
	switch nib[0] {
	case 0x0:
		switch code {
		case 0x00e0:
			op = OP_CLS
		case 0x00ee:
			op = OP_RET
		default:
			ok = false
		}
	case 0x1:
		op = OP_JP
	case 0x2:
		op = OP_CALL
	case 0x3:
		op = OP_SE_IMM
	case 0x4:
		op = OP_SNE_IMM
	case 0x5:
		op = OP_SE_REG
		ok = nib[3] == 0x0
	case 0x6:
		op = OP_LD_IMM
	case 0x7:
		op = OP_ADD_IMM
	case 0x8:
		switch nib[3] {
		case 0x0:
			op = OP_LD_REG
		case 0x1:
			op = OP_OR
		case 0x2:
			op = OP_AND
		case 0x3:
			op = OP_XOR
		case 0x4:
			op = OP_ADD_REG
		case 0x5:
			op = OP_SUB
		case 0x6:
			op = OP_SHR
		case 0x7:
			op = OP_SUBN
		case 0xe:
			op = OP_SHL
		default:
			ok = false
		}
	case 0x9:
		op = OP_SNE_REG
		ok = nib[3] == 0x0
	case 0xa:
		op = OP_LD_I
	case 0xb:
		op = OP_JP_V0
	case 0xc:
		op = OP_RND
	case 0xd:
		op = OP_DRW
	case 0xe:
		switch code.Nn() {
		case 0x9e:
			op = OP_SKP
		case 0xa1:
			op = OP_SKNP
		default:
			ok = false
		}
	case 0xf:
		switch code.Nn() {
		case 0x07:
			op = OP_LD_VX_DT
		case 0x0a:
			op = OP_LD_VX_K
		case 0x15:
			op = OP_LD_DT_VX
		case 0x18:
			op = OP_LD_ST_VX
		case 0x1e:
			op = OP_ADD_I_VX
		case 0x29:
			op = OP_LD_F_VX
		case 0x33:
			op = OP_LD_B_VX
		case 0x55:
			op = OP_LD_I_VX
		case 0x65:
			op = OP_LD_VX_I
		default:
			ok = false
		}
	}

	if !ok {
		op = 0
	}

	return
}

// MakeCode assembles an instruction word from a leading nibble and the
// x, y and n nibbles.
func MakeCode(op uint8, x, y, n uint8) Code {
	return Code(uint16(op&0xf)<<12 | uint16(x&0xf)<<8 | uint16(y&0xf)<<4 | uint16(n&0xf))
}

// MakeCodeNnn assembles an instruction word with a 12-bit address field.
func MakeCodeNnn(op uint8, nnn uint16) Code {
	return Code(uint16(op&0xf)<<12 | (nnn & ADDRESS_MASK))
}

// MakeCodeXnn assembles an instruction word with a register and an 8-bit
// immediate.
func MakeCodeXnn(op uint8, x uint8, nn uint8) Code {
	return Code(uint16(op&0xf)<<12 | uint16(x&0xf)<<8 | uint16(nn))
}
