// Package io provides the host side devices of the CHIP-8 emulator: ROM
// images, the keyboard to keypad mapping, the terminal screen and the bell.
package io

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"maps"
)

const ROM_LIMIT = 0x1000 - 0x200 // Program space of the machine.

// Rom holds a ROM image read from a host file.
type Rom struct {
	Limit int    // Largest accepted image. Zero uses ROM_LIMIT.
	Data  []byte // Image contents.
}

var _ io.ReaderFrom = (*Rom)(nil)

func (rom *Rom) limit() int {
	if rom.Limit <= 0 {
		return ROM_LIMIT
	}
	return rom.Limit
}

// Defines returns an iter of defines for the ROM.
func (rom *Rom) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"ROM_LIMIT": fmt.Sprintf("%v", rom.limit()),
	})
}

// ReadFrom replaces the image with the contents of r.
// The image is left unchanged if r holds more than the limit.
func (rom *Rom) ReadFrom(r io.Reader) (n int64, err error) {
	limit := rom.limit()

	var buff bytes.Buffer
	n, err = buff.ReadFrom(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return
	}

	if buff.Len() > limit {
		err = ErrRomTooLarge
		return
	}

	rom.Data = buff.Bytes()
	return
}

// Load reads the named image from a file system.
func (rom *Rom) Load(fsys fs.FS, name string) (err error) {
	inf, err := fsys.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	_, err = rom.ReadFrom(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", name, err)
		return
	}

	return
}
