// Package cpu implements the instruction-execution core of a MOS
// 6502-family processor and an assembler for its instruction set.
//
// The core models the register file (accumulator, X and Y index
// registers, status flags, program counter, stack pointer), a flat 64KiB
// memory, the operand addressing modes, and the fetch-decode-execute
// loop driven by an immutable opcode table. Arithmetic reproduces the
// hardware flag semantics bit for bit, including the page-zero wraparound
// of indexed addressing and the carry/overflow rules of add-with-carry.
//
// The assembler is a two-pass translator for the implemented subset,
// supporting equates, labels, data directives, and compile-time $(...)
// expression evaluation.
package cpu
