// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass macro assembler for CHIP-8 programs.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of labels to addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	expansions int // Count of macro expansions, for unique local labels.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// splitWords splits a line on whitespace and commas.
func splitWords(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

var reCharacter = regexp.MustCompile(`'\\?[^']'`)

// expandCharacters turns 'c' literals into their byte values.
func expandCharacters(line string) string {
	return reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(addr)
	}
	for key, str := range asm.Equate {
		var v int64
		v, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

var reParen = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine parses a single line into words, handling equates, labels
// and macro expansion.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = splitWords(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if strings.ToLower(words[0]) == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = words[1+n]
		}
		defer func() { asm.Equate = old_equate }()

		asm.expansions++
		local := fmt.Sprintf("%v_%v_", name, asm.expansions)

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = ErrMacro{Macro: name, Line: lineno, Err: err}
				err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = ErrMacro{Macro: name, Line: lineno, Err: err}
				err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// currentAddr gets the load address of the next opcode.
func (asm *Assembler) currentAddr() int {
	if len(asm.Opcode) == 0 {
		return PROGRAM_START
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Addr + len(last.Data)
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.expansions = 0
	asm.Equate = maps.Clone(sysEquate)
	maps.Copy(asm.Equate, _cpu_defines)
	maps.Copy(asm.Equate, asm.predefine)

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(expandCharacters(text), ";")
		line = strings.TrimSpace(text_comment[0])
		words := splitWords(line)

		// .macro NAME arg...
		if len(words) > 0 && strings.ToLower(words[0]) == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && strings.ToLower(words[0]) == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		err = asm.link(op)
		if err != nil {
			lineno, line = op.LineNo, strings.Join(op.Words, " ")
			return
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// link merges the address of an opcode's label into its last word.
func (asm *Assembler) link(op *Opcode) (err error) {
	addr, ok := asm.Label[op.LinkLabel]
	if !ok {
		err = ErrLabelMissing(op.LinkLabel)
		return
	}

	mask := uint16(0xffff)
	if !op.Raw {
		mask = ADDRESS_MASK
	}
	if addr < 0 || addr > int(mask) {
		err = ErrOpcodeRange
		return
	}

	word := op.Data[len(op.Data)-2:]
	value := (uint16(word[0])<<8 | uint16(word[1])) | (uint16(addr) & mask)
	word[0] = uint8(value >> 8)
	word[1] = uint8(value)

	return
}

// operand is a classified instruction argument.
type operand struct {
	kind  string // "v", "i", "[i]", "dt", "st", "k", "f", "b" or "imm"
	reg   uint8  // Register number, for "v".
	word  string // Source text, for "imm".
	label string // Label reference, for "imm".
	value int64  // Numeric value, for "imm".
}

var namedOperand = []string{"i", "[i]", "dt", "st", "k", "f", "b"}

// isLabel determines if a word can only be a label reference.
func isLabel(word string) bool {
	r := rune(word[0])
	return r == '_' || r == '.' || unicode.IsLetter(r)
}

// classify determines the kind of an instruction argument.
func (asm *Assembler) classify(word string) (arg operand, err error) {
	lower := strings.ToLower(word)

	if len(lower) == 2 && lower[0] == 'v' {
		reg, perr := strconv.ParseUint(lower[1:], 16, 4)
		if perr == nil {
			arg = operand{kind: "v", reg: uint8(reg)}
			return
		}
	}

	if slices.Contains(namedOperand, lower) {
		arg = operand{kind: lower}
		return
	}

	arg = operand{kind: "imm", word: word}
	if isLabel(word) {
		arg.label = word
		return
	}

	arg.value, err = asm.valueOf(word)
	return
}

// encoder builds an instruction word from classified arguments,
// returning any label to be linked into the address field.
type encoder func(args []operand) (code Code, label string, err error)

func fixed(code Code) encoder {
	return func(args []operand) (Code, string, error) {
		return code, "", nil
	}
}

// nnn encodes `op nnn`, where nnn is the last argument.
func nnn(op uint8) encoder {
	return func(args []operand) (code Code, label string, err error) {
		arg := args[len(args)-1]
		if arg.label != "" {
			code = MakeCodeNnn(op, 0)
			label = arg.label
			return
		}
		if arg.value < 0 || arg.value > ADDRESS_MASK {
			err = ErrOpcodeRange
			return
		}
		code = MakeCodeNnn(op, uint16(arg.value))
		return
	}
}

// byteOf converts an argument to an 8-bit immediate.
func byteOf(arg operand) (value uint8, err error) {
	if arg.label != "" {
		err = ErrParseNumber(arg.word)
		return
	}
	if arg.value < -0x80 || arg.value > 0xff {
		err = ErrOpcodeRange
		return
	}
	value = uint8(arg.value)
	return
}

// xkk encodes `op x kk`.
func xkk(op uint8) encoder {
	return func(args []operand) (code Code, label string, err error) {
		var kk uint8
		kk, err = byteOf(args[1])
		if err != nil {
			return
		}
		code = MakeCodeXnn(op, args[0].reg, kk)
		return
	}
}

// xy encodes `op x y n` with a fixed n. A missing y encodes as 0.
func xy(op uint8, n uint8) encoder {
	return func(args []operand) (code Code, label string, err error) {
		var y uint8
		if len(args) > 1 {
			y = args[1].reg
		}
		code = MakeCode(op, args[0].reg, y, n)
		return
	}
}

// xnn encodes `op x nn` with a fixed nn, taking x from args[reg].
func xnn(op uint8, nn uint8, reg int) encoder {
	return func(args []operand) (code Code, label string, err error) {
		code = MakeCodeXnn(op, args[reg].reg, nn)
		return
	}
}

func jpV0(args []operand) (code Code, label string, err error) {
	if args[0].reg != 0 {
		err = ErrRegisterInvalid
		return
	}
	return nnn(0xb)(args)
}

func drw(args []operand) (code Code, label string, err error) {
	n := args[2]
	if n.label != "" {
		err = ErrParseNumber(n.word)
		return
	}
	if n.value < 0 || n.value > 0xf {
		err = ErrOpcodeRange
		return
	}
	code = MakeCode(0xd, args[0].reg, args[1].reg, uint8(n.value))
	return
}

// mnemonics maps each mnemonic to its encoders, keyed by argument kinds.
var mnemonics = map[string]map[string]encoder{
	"cls":  {"": fixed(0x00e0)},
	"ret":  {"": fixed(0x00ee)},
	"sys":  {"imm": nnn(0x0)},
	"jp":   {"imm": nnn(0x1), "v imm": jpV0},
	"call": {"imm": nnn(0x2)},
	"se":   {"v imm": xkk(0x3), "v v": xy(0x5, 0x0)},
	"sne":  {"v imm": xkk(0x4), "v v": xy(0x9, 0x0)},
	"ld": {
		"v imm": xkk(0x6),
		"v v":   xy(0x8, 0x0),
		"i imm": nnn(0xa),
		"v dt":  xnn(0xf, 0x07, 0),
		"v k":   xnn(0xf, 0x0a, 0),
		"dt v":  xnn(0xf, 0x15, 1),
		"st v":  xnn(0xf, 0x18, 1),
		"f v":   xnn(0xf, 0x29, 1),
		"b v":   xnn(0xf, 0x33, 1),
		"[i] v": xnn(0xf, 0x55, 1),
		"v [i]": xnn(0xf, 0x65, 0),
	},
	"add": {
		"v imm": xkk(0x7),
		"v v":   xy(0x8, 0x4),
		"i v":   xnn(0xf, 0x1e, 1),
	},
	"or":   {"v v": xy(0x8, 0x1)},
	"and":  {"v v": xy(0x8, 0x2)},
	"xor":  {"v v": xy(0x8, 0x3)},
	"sub":  {"v v": xy(0x8, 0x5)},
	"shr":  {"v": xy(0x8, 0x6), "v v": xy(0x8, 0x6)},
	"subn": {"v v": xy(0x8, 0x7)},
	"shl":  {"v": xy(0x8, 0xe), "v v": xy(0x8, 0xe)},
	"rnd":  {"v imm": xkk(0xc)},
	"drw":  {"v v imm": drw},
	"skp":  {"v": xnn(0xe, 0x9e, 0)},
	"sknp": {"v": xnn(0xe, 0xa1, 0)},
}

// encode assembles a single instruction.
func (asm *Assembler) encode(mnemonic string, words []string) (code Code, label string, err error) {
	forms, ok := mnemonics[mnemonic]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	args := make([]operand, len(words))
	kinds := make([]string, len(words))
	for n, word := range words {
		args[n], err = asm.classify(word)
		if err != nil {
			return
		}
		kinds[n] = args[n].kind
	}

	enc, ok := forms[strings.Join(kinds, " ")]
	if !ok {
		least, most := REGISTER_COUNT, 0
		for form := range forms {
			count := len(splitWords(form))
			least = min(least, count)
			most = max(most, count)
		}
		switch {
		case len(words) > most:
			err = ErrOpcodeExtraArgs
		case len(words) < least:
			err = ErrOpcodeMissing
		default:
			err = ErrRegisterInvalid
		}
		return
	}

	return enc(args)
}

// parseData assembles the arguments of a .byte or .word directive.
func (asm *Assembler) parseData(words []string, size int) (data []byte, label string, err error) {
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	limit := int64(1)<<(8*size) - 1
	for n, word := range words {
		var value int64
		if size == 2 && n == len(words)-1 && isLabel(word) {
			label = word
		} else {
			value, err = asm.valueOf(word)
			if err != nil {
				return
			}
			if value < -(limit+1)/2 || value > limit {
				err = ErrOpcodeRange
				return
			}
		}
		if size == 2 {
			data = append(data, uint8(value>>8))
		}
		data = append(data, uint8(value))
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var data []byte
	var label string
	var raw bool

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if err != nil || len(data) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Addr: asm.currentAddr(), Words: initial_words, Data: data, LinkLabel: label, Raw: raw}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	if asm.currentAddr() >= MEMORY_SIZE {
		err = ErrOpcodeRange
		return
	}

	switch mnemonic := strings.ToLower(words[0]); mnemonic {
	case ".byte":
		raw = true
		data, label, err = asm.parseData(words[1:], 1)
	case ".word":
		raw = true
		data, label, err = asm.parseData(words[1:], 2)
	default:
		var code Code
		code, label, err = asm.encode(mnemonic, words[1:])
		if err != nil {
			return
		}
		data = []byte{uint8(code >> 8), uint8(code)}
	}

	return
}
