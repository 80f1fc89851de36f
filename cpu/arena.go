package cpu

// Memory map of the machine.
const (
	MEMORY_SIZE     = 0x1000                      // Total addressable bytes.
	FONT_BASE       = 0x000                       // First byte of the hex font.
	FONT_GLYPH_SIZE = 5                           // Bytes per font glyph.
	PROGRAM_START   = 0x200                       // Load address of the ROM image.
	PROGRAM_LIMIT   = MEMORY_SIZE - PROGRAM_START // Largest loadable ROM image.
	ADDRESS_MASK    = 0xfff                       // Mask of a 12-bit address.
	OPCODE_SIZE     = 2                           // Bytes per instruction.
	REGISTER_COUNT  = 16                          // Number of V registers.
	REGISTER_FLAG   = 0xf                         // VF, the flag register.
	KEY_COUNT       = 16                          // Keys on the hex keypad.
	DISPLAY_WIDTH   = 64                          // Framebuffer columns.
	DISPLAY_HEIGHT  = 32                          // Framebuffer rows.
)

// Font is the built-in 4x5 hexadecimal glyph set, copied to FONT_BASE.
var Font = [16 * FONT_GLYPH_SIZE]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
