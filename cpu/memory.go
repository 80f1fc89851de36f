package cpu

// Memory is the byte-addressable machine memory.
type Memory [MEMORY_SIZE]byte

// Fetch reads the big-endian instruction word at addr.
func (m *Memory) Fetch(addr uint16) (code Code, err error) {
	if int(addr)+OPCODE_SIZE > MEMORY_SIZE {
		err = ErrAddress
		return
	}

	code = Code(uint16(m[addr])<<8 | uint16(m[addr+1]))
	return
}

// Slice returns the n bytes at addr, without copying.
func (m *Memory) Slice(addr uint16, n int) (data []byte, err error) {
	if int(addr)+n > MEMORY_SIZE {
		err = ErrAddress
		return
	}

	data = m[addr : int(addr)+n]
	return
}

// Store copies data to addr. Nothing is written if it would not all fit.
func (m *Memory) Store(addr uint16, data []byte) (err error) {
	if int(addr)+len(data) > MEMORY_SIZE {
		err = ErrAddress
		return
	}

	copy(m[addr:], data)
	return
}
