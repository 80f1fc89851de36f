package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_Fields(t *testing.T) {
	assert := assert.New(t)

	code := Code(0xd3a7)
	assert.Equal([4]uint8{0xd, 0x3, 0xa, 0x7}, code.Nibbles())
	assert.Equal(uint16(0x3a7), code.Nnn())
	assert.Equal(uint8(0xa7), code.Nn())
	assert.Equal(uint8(0x3), code.X())
	assert.Equal(uint8(0xa), code.Y())
	assert.Equal(uint8(0x7), code.N())

	assert.Equal(Code(0xd3a7), MakeCode(0xd, 0x3, 0xa, 0x7))
	assert.Equal(Code(0xa3a7), MakeCodeNnn(0xa, 0x3a7))
	assert.Equal(Code(0x63a7), MakeCodeXnn(0x6, 0x3, 0xa7))
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	// Every code decodes to at most one op, and the op names round trip.
	counts := map[Op]int{}
	for word := range 0x10000 {
		op, ok := Decode(Code(word))
		if !ok {
			assert.Equal(Op(0), op)
			continue
		}
		counts[op]++
	}

	expected := map[Op]int{
		OP_CLS:      1,
		OP_RET:      1,
		OP_JP:       0x1000,
		OP_CALL:     0x1000,
		OP_SE_IMM:   0x1000,
		OP_SNE_IMM:  0x1000,
		OP_SE_REG:   0x100,
		OP_LD_IMM:   0x1000,
		OP_ADD_IMM:  0x1000,
		OP_LD_REG:   0x100,
		OP_OR:       0x100,
		OP_AND:      0x100,
		OP_XOR:      0x100,
		OP_ADD_REG:  0x100,
		OP_SUB:      0x100,
		OP_SHR:      0x100,
		OP_SUBN:     0x100,
		OP_SHL:      0x100,
		OP_SNE_REG:  0x100,
		OP_LD_I:     0x1000,
		OP_JP_V0:    0x1000,
		OP_RND:      0x1000,
		OP_DRW:      0x1000,
		OP_SKP:      0x10,
		OP_SKNP:     0x10,
		OP_LD_VX_DT: 0x10,
		OP_LD_VX_K:  0x10,
		OP_LD_DT_VX: 0x10,
		OP_LD_ST_VX: 0x10,
		OP_ADD_I_VX: 0x10,
		OP_LD_F_VX:  0x10,
		OP_LD_B_VX:  0x10,
		OP_LD_I_VX:  0x10,
		OP_LD_VX_I:  0x10,
	}
	assert.Equal(expected, counts)

	assert.Equal("cls", OP_CLS.String())
	assert.Equal("ld.vx.i", OP_LD_VX_I.String())
}
