package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/chip8/emulator"
)

func TestEmulatorEntity_Cycles(t *testing.T) {
	assert := assert.New(t)

	for _, hz := range []int{1, 30, 59, 60, 61, 100, 500, 1000} {
		cfg := emulator.DefaultConfig()
		cfg.Hz = hz
		emu, err := emulator.NewEmulator(cfg)
		assert.NoError(err)

		ee := &emulatorEntity{emu: emu}

		total := 0
		for range FRAME_HZ {
			count := ee.cycles()
			assert.GreaterOrEqual(count, hz/FRAME_HZ, hz)
			assert.LessOrEqual(count, hz/FRAME_HZ+1, hz)
			total += count
		}
		assert.Equal(hz, total, hz)
	}
}
