package cpu

import (
	"errors"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrStackFull  = errors.New(f("stack full"))
	ErrStackEmpty = errors.New(f("stack empty"))
	ErrAddress    = errors.New(f("address out of range"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("operand missing"))
	ErrOpcodeRange        = errors.New(f("value out of range"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrLoad is returned when a ROM image does not fit in program memory.
type ErrLoad struct {
	Size  int // Size of the rejected image.
	Limit int // Bytes available from PROGRAM_START.
}

func (err ErrLoad) Error() string {
	return f("rom size %d exceeds %d bytes", err.Size, err.Limit)
}

// ErrDecode is returned when the fetched word matches no instruction.
type ErrDecode struct {
	Code Code
	Pc   uint16
}

func (err ErrDecode) Error() string {
	return f("bad opcode 0x%04x at 0x%03x", uint16(err.Code), err.Pc)
}

// ErrFault is returned when a decoded instruction cannot complete.
// The machine state is left as it was before the cycle.
type ErrFault struct {
	Code Code
	Pc   uint16
	Err  error
}

func (err ErrFault) Error() string {
	return f("fault 0x%04x at 0x%03x: %v", uint16(err.Code), err.Pc, err.Err)
}

func (err ErrFault) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
