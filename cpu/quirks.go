package cpu

import (
	"errors"
)

// ShiftMode selects the operand of 8xy6 and 8xyE.
type ShiftMode int

//go:generate go tool stringer -linecomment -type=ShiftMode
const (
	SHIFT_VX    = ShiftMode(0) // vx
	SHIFT_VY    = ShiftMode(1) // vy
	SHIFT_BY_VY = ShiftMode(2) // by-vy
)

// IndexMode selects the width of the Fx1E accumulation.
type IndexMode int

//go:generate go tool stringer -linecomment -type=IndexMode
const (
	INDEX_WIDE = IndexMode(0) // wide
	INDEX_BYTE = IndexMode(1) // byte
)

// Quirks selects between interpreter dialects.
// The zero value is the common modern behaviour.
type Quirks struct {
	// Shift: vx shifts Vx by one, vy stores Vy shifted by one in Vx
	// (COSMAC VIP), by-vy shifts Vx by the amount held in Vy.
	Shift ShiftMode `toml:"shift" yaml:"shift"`
	// Index: wide adds Vx to the full index register, byte keeps only
	// the low 8 bits of the sum. byte is not a canonical dialect.
	Index IndexMode `toml:"index" yaml:"index"`
	// IndexOverflow sets VF when Fx1E carries past 0xFFF.
	IndexOverflow bool `toml:"index_overflow" yaml:"index_overflow"`
	// LoadStoreIncrement leaves I past the last register moved by Fx55
	// and Fx65.
	LoadStoreIncrement bool `toml:"load_store_increment" yaml:"load_store_increment"`
}

func (mode *ShiftMode) UnmarshalText(text []byte) error {
	for m := SHIFT_VX; m <= SHIFT_BY_VY; m++ {
		if m.String() == string(text) {
			*mode = m
			return nil
		}
	}
	return errors.New(f("unknown shift mode %q", string(text)))
}

func (mode ShiftMode) MarshalText() ([]byte, error) {
	return []byte(mode.String()), nil
}

func (mode *IndexMode) UnmarshalText(text []byte) error {
	for m := INDEX_WIDE; m <= INDEX_BYTE; m++ {
		if m.String() == string(text) {
			*mode = m
			return nil
		}
	}
	return errors.New(f("unknown index mode %q", string(text)))
}

func (mode IndexMode) MarshalText() ([]byte, error) {
	return []byte(mode.String()), nil
}
