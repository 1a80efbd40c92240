package cpu

import (
	"errors"

	"github.com/sixtyfive/m6502/translate"
)

var f = translate.From

var (
	// Loader errors
	ErrProgramTooLarge = errors.New(f("program image overruns the reset vector"))

	// Assembler errors
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate   = errors.New(f("label duplicated"))
	ErrDirectiveSyntax  = errors.New(f("directive syntax"))
	ErrOperandSyntax    = errors.New(f("operand syntax"))
	ErrOperandRange     = errors.New(f("operand out of range"))
	ErrMnemonicUnknown  = errors.New(f("mnemonic unknown"))
	ErrLabelNotAbsolute = errors.New(f("label only valid as an absolute operand"))
)

// ErrIllegalOpcode is the fatal decode error: the fetched byte has no
// instruction table entry. It reports the byte and where it was fetched.
type ErrIllegalOpcode struct {
	Code uint8
	PC   uint16
}

func (e ErrIllegalOpcode) Error() string {
	return f("illegal opcode 0x%02x at 0x%04x", e.Code, e.PC)
}

func (e ErrIllegalOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrIllegalOpcode)
	return
}

// ErrAddressingMode indicates an addressing mode that cannot be resolved
// to an address. Only ever caused by a malformed instruction table entry,
// never by program data.
type ErrAddressingMode AddressingMode

func (e ErrAddressingMode) Error() string {
	return f("unsupported addressing mode %v", AddressingMode(e))
}

func (e ErrAddressingMode) Is(err error) (ok bool) {
	_, ok = err.(ErrAddressingMode)
	return
}

// ErrExecution wraps a failure inside an operation with the instruction
// and the program counter it was fetched from.
type ErrExecution struct {
	Instruction *Instruction
	PC          uint16
	Err         error
}

func (e ErrExecution) Error() string {
	return f("%v at 0x%04x: %v", e.Instruction, e.PC, e.Err)
}

func (e ErrExecution) Unwrap() error {
	return e.Err
}

// ErrNoEncoding reports a mnemonic/addressing mode pair with no opcode.
type ErrNoEncoding struct {
	Name string
	Mode AddressingMode
}

func (e ErrNoEncoding) Error() string {
	return f("%v does not support %v addressing", e.Name, e.Mode)
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates an assembler error by source line.
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
