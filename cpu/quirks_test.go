package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuirks_Text(t *testing.T) {
	assert := assert.New(t)

	for _, mode := range []ShiftMode{SHIFT_VX, SHIFT_VY, SHIFT_BY_VY} {
		text, err := mode.MarshalText()
		assert.NoError(err)

		var back ShiftMode
		assert.NoError(back.UnmarshalText(text))
		assert.Equal(mode, back)
	}

	var shift ShiftMode
	assert.NoError(shift.UnmarshalText([]byte("by-vy")))
	assert.Equal(SHIFT_BY_VY, shift)
	assert.Error(shift.UnmarshalText([]byte("sideways")))
	assert.Equal(SHIFT_BY_VY, shift)

	var index IndexMode
	assert.NoError(index.UnmarshalText([]byte("byte")))
	assert.Equal(INDEX_BYTE, index)
	assert.Error(index.UnmarshalText([]byte("narrow")))

	text, err := INDEX_WIDE.MarshalText()
	assert.NoError(err)
	assert.Equal("wide", string(text))
}
