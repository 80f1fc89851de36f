package io

import (
	"maps"
	"strconv"
	"sync"
)

const KEY_COUNT = 16 // Keys on the hex keypad.

// DefaultKeymap maps the left hand block of a QWERTY keyboard onto the
// keypad layout:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  <-  q w e r
//	7 8 9 E      a s d f
//	A 0 B F      z x c v
var DefaultKeymap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xc,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xd,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xe,
	'z': 0xa, 'x': 0x0, 'c': 0xb, 'v': 0xf,
}

// ParseKeymap converts host key to hex digit pairs, as found in
// configuration files, into a keymap layered over DefaultKeymap.
func ParseKeymap(entries map[string]string) (keymap map[rune]uint8, err error) {
	keymap = maps.Clone(DefaultKeymap)

	for host, key := range entries {
		runes := []rune(host)
		if len(runes) != 1 {
			err = ErrKeyInvalid(host)
			return
		}
		var value uint64
		value, err = strconv.ParseUint(key, 16, 4)
		if err != nil {
			err = ErrKeyInvalid(key)
			return
		}
		keymap[runes[0]] = uint8(value)
	}

	return
}

// Keyboard turns host key presses into keypad snapshots.
//
// Terminals report key presses but not releases, so each press is held
// down for Hold snapshots. Press and Snapshot may be called from
// different goroutines.
type Keyboard struct {
	Keymap map[rune]uint8 // Host key to keypad key. nil uses DefaultKeymap.
	Hold   int            // Snapshots a press stays down for. Minimum 1.

	mutex sync.Mutex
	held  [KEY_COUNT]int
}

// Press records a host key press. Returns false for unmapped keys.
func (kb *Keyboard) Press(r rune) bool {
	keymap := kb.Keymap
	if keymap == nil {
		keymap = DefaultKeymap
	}

	key, ok := keymap[r]
	if !ok {
		return false
	}

	kb.mutex.Lock()
	defer kb.mutex.Unlock()

	kb.held[key&0xf] = max(kb.Hold, 1)

	return true
}

// Snapshot returns the keys currently down, and ages every held key.
func (kb *Keyboard) Snapshot() (keys [KEY_COUNT]bool) {
	kb.mutex.Lock()
	defer kb.mutex.Unlock()

	for n, count := range kb.held {
		if count > 0 {
			keys[n] = true
			kb.held[n]--
		}
	}

	return
}

// Release lifts every key.
func (kb *Keyboard) Release() {
	kb.mutex.Lock()
	defer kb.mutex.Unlock()

	clear(kb.held[:])
}
