// Package cpu implements the CHIP-8 virtual machine and an assembler for it.
//
// The machine has 4096 bytes of memory with the hexadecimal font at 0x000
// and programs loaded at 0x200, sixteen 8-bit registers (V0-VF, with VF
// used as the flag), a 12-bit index register, a sixteen entry return stack,
// delay and sound timers, and a 64x32 monochrome display. Each call to Step
// runs one machine cycle; dialect differences are selected with Quirks.
//
// The assembler accepts the conventional CHIP-8 mnemonics, and supports
// macros, labels, equates, and compile-time expression evaluation.
package cpu
