package io

import (
	"errors"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	ErrRomTooLarge   = errors.New(f("rom too large"))
	ErrOutputMissing = errors.New(f("output missing"))
)

// ErrKeyInvalid is returned for a keymap entry that does not name a key.
type ErrKeyInvalid string

func (err ErrKeyInvalid) Error() string {
	return f("keymap entry '%v' invalid", string(err))
}
