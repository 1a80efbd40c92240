package cpu

import (
	"fmt"
)

// OP_BRK is the halt opcode: fetching it stops the execute loop without
// any further program counter advance.
const OP_BRK = uint8(0x00)

// Instruction is one immutable entry of the instruction table: an opcode
// byte, its mnemonic, the addressing mode that fixes how many trailing
// bytes it consumes, and the operation to run. Opcodes without a table
// entry are a fatal decode error.
type Instruction struct {
	Code    uint8
	Name    string
	Mode    AddressingMode
	Handler func(*Cpu, *Instruction) error
}

// Bytes returns the count of operand bytes trailing the opcode.
func (in *Instruction) Bytes() int {
	return in.Mode.OperandBytes()
}

func (in *Instruction) String() string {
	return fmt.Sprintf("%02x %s %v", in.Code, in.Name, in.Mode)
}

// instructionSet lists the implemented official opcodes. Flow control
// (branches, jumps, subroutines) and interrupt vectoring are outside this
// core; extending the set is a matter of adding rows.
var instructionSet = []Instruction{
	{0x00, "BRK", MODE_NONE, nil},
	{0xea, "NOP", MODE_NONE, (*Cpu).opNOP},

	// Loads
	{0xa9, "LDA", MODE_IMMEDIATE, (*Cpu).opLDA},
	{0xa5, "LDA", MODE_ZERO_PAGE, (*Cpu).opLDA},
	{0xb5, "LDA", MODE_ZERO_PAGE_X, (*Cpu).opLDA},
	{0xad, "LDA", MODE_ABSOLUTE, (*Cpu).opLDA},
	{0xbd, "LDA", MODE_ABSOLUTE_X, (*Cpu).opLDA},
	{0xb9, "LDA", MODE_ABSOLUTE_Y, (*Cpu).opLDA},
	{0xa1, "LDA", MODE_INDIRECT_X, (*Cpu).opLDA},
	{0xb1, "LDA", MODE_INDIRECT_Y, (*Cpu).opLDA},
	{0xa2, "LDX", MODE_IMMEDIATE, (*Cpu).opLDX},
	{0xa6, "LDX", MODE_ZERO_PAGE, (*Cpu).opLDX},
	{0xb6, "LDX", MODE_ZERO_PAGE_Y, (*Cpu).opLDX},
	{0xae, "LDX", MODE_ABSOLUTE, (*Cpu).opLDX},
	{0xbe, "LDX", MODE_ABSOLUTE_Y, (*Cpu).opLDX},
	{0xa0, "LDY", MODE_IMMEDIATE, (*Cpu).opLDY},
	{0xa4, "LDY", MODE_ZERO_PAGE, (*Cpu).opLDY},
	{0xb4, "LDY", MODE_ZERO_PAGE_X, (*Cpu).opLDY},
	{0xac, "LDY", MODE_ABSOLUTE, (*Cpu).opLDY},
	{0xbc, "LDY", MODE_ABSOLUTE_X, (*Cpu).opLDY},

	// Stores
	{0x85, "STA", MODE_ZERO_PAGE, (*Cpu).opSTA},
	{0x95, "STA", MODE_ZERO_PAGE_X, (*Cpu).opSTA},
	{0x8d, "STA", MODE_ABSOLUTE, (*Cpu).opSTA},
	{0x9d, "STA", MODE_ABSOLUTE_X, (*Cpu).opSTA},
	{0x99, "STA", MODE_ABSOLUTE_Y, (*Cpu).opSTA},
	{0x81, "STA", MODE_INDIRECT_X, (*Cpu).opSTA},
	{0x91, "STA", MODE_INDIRECT_Y, (*Cpu).opSTA},
	{0x86, "STX", MODE_ZERO_PAGE, (*Cpu).opSTX},
	{0x96, "STX", MODE_ZERO_PAGE_Y, (*Cpu).opSTX},
	{0x8e, "STX", MODE_ABSOLUTE, (*Cpu).opSTX},
	{0x84, "STY", MODE_ZERO_PAGE, (*Cpu).opSTY},
	{0x94, "STY", MODE_ZERO_PAGE_X, (*Cpu).opSTY},
	{0x8c, "STY", MODE_ABSOLUTE, (*Cpu).opSTY},

	// Arithmetic
	{0x69, "ADC", MODE_IMMEDIATE, (*Cpu).opADC},
	{0x65, "ADC", MODE_ZERO_PAGE, (*Cpu).opADC},
	{0x75, "ADC", MODE_ZERO_PAGE_X, (*Cpu).opADC},
	{0x6d, "ADC", MODE_ABSOLUTE, (*Cpu).opADC},
	{0x7d, "ADC", MODE_ABSOLUTE_X, (*Cpu).opADC},
	{0x79, "ADC", MODE_ABSOLUTE_Y, (*Cpu).opADC},
	{0x61, "ADC", MODE_INDIRECT_X, (*Cpu).opADC},
	{0x71, "ADC", MODE_INDIRECT_Y, (*Cpu).opADC},
	{0xe9, "SBC", MODE_IMMEDIATE, (*Cpu).opSBC},
	{0xe5, "SBC", MODE_ZERO_PAGE, (*Cpu).opSBC},
	{0xf5, "SBC", MODE_ZERO_PAGE_X, (*Cpu).opSBC},
	{0xed, "SBC", MODE_ABSOLUTE, (*Cpu).opSBC},
	{0xfd, "SBC", MODE_ABSOLUTE_X, (*Cpu).opSBC},
	{0xf9, "SBC", MODE_ABSOLUTE_Y, (*Cpu).opSBC},
	{0xe1, "SBC", MODE_INDIRECT_X, (*Cpu).opSBC},
	{0xf1, "SBC", MODE_INDIRECT_Y, (*Cpu).opSBC},

	// Logical
	{0x29, "AND", MODE_IMMEDIATE, (*Cpu).opAND},
	{0x25, "AND", MODE_ZERO_PAGE, (*Cpu).opAND},
	{0x35, "AND", MODE_ZERO_PAGE_X, (*Cpu).opAND},
	{0x2d, "AND", MODE_ABSOLUTE, (*Cpu).opAND},
	{0x3d, "AND", MODE_ABSOLUTE_X, (*Cpu).opAND},
	{0x39, "AND", MODE_ABSOLUTE_Y, (*Cpu).opAND},
	{0x21, "AND", MODE_INDIRECT_X, (*Cpu).opAND},
	{0x31, "AND", MODE_INDIRECT_Y, (*Cpu).opAND},
	{0x09, "ORA", MODE_IMMEDIATE, (*Cpu).opORA},
	{0x05, "ORA", MODE_ZERO_PAGE, (*Cpu).opORA},
	{0x15, "ORA", MODE_ZERO_PAGE_X, (*Cpu).opORA},
	{0x0d, "ORA", MODE_ABSOLUTE, (*Cpu).opORA},
	{0x1d, "ORA", MODE_ABSOLUTE_X, (*Cpu).opORA},
	{0x19, "ORA", MODE_ABSOLUTE_Y, (*Cpu).opORA},
	{0x01, "ORA", MODE_INDIRECT_X, (*Cpu).opORA},
	{0x11, "ORA", MODE_INDIRECT_Y, (*Cpu).opORA},
	{0x49, "EOR", MODE_IMMEDIATE, (*Cpu).opEOR},
	{0x45, "EOR", MODE_ZERO_PAGE, (*Cpu).opEOR},
	{0x55, "EOR", MODE_ZERO_PAGE_X, (*Cpu).opEOR},
	{0x4d, "EOR", MODE_ABSOLUTE, (*Cpu).opEOR},
	{0x5d, "EOR", MODE_ABSOLUTE_X, (*Cpu).opEOR},
	{0x59, "EOR", MODE_ABSOLUTE_Y, (*Cpu).opEOR},
	{0x41, "EOR", MODE_INDIRECT_X, (*Cpu).opEOR},
	{0x51, "EOR", MODE_INDIRECT_Y, (*Cpu).opEOR},
	{0x24, "BIT", MODE_ZERO_PAGE, (*Cpu).opBIT},
	{0x2c, "BIT", MODE_ABSOLUTE, (*Cpu).opBIT},

	// Compares
	{0xc9, "CMP", MODE_IMMEDIATE, (*Cpu).opCMP},
	{0xc5, "CMP", MODE_ZERO_PAGE, (*Cpu).opCMP},
	{0xd5, "CMP", MODE_ZERO_PAGE_X, (*Cpu).opCMP},
	{0xcd, "CMP", MODE_ABSOLUTE, (*Cpu).opCMP},
	{0xdd, "CMP", MODE_ABSOLUTE_X, (*Cpu).opCMP},
	{0xd9, "CMP", MODE_ABSOLUTE_Y, (*Cpu).opCMP},
	{0xc1, "CMP", MODE_INDIRECT_X, (*Cpu).opCMP},
	{0xd1, "CMP", MODE_INDIRECT_Y, (*Cpu).opCMP},
	{0xe0, "CPX", MODE_IMMEDIATE, (*Cpu).opCPX},
	{0xe4, "CPX", MODE_ZERO_PAGE, (*Cpu).opCPX},
	{0xec, "CPX", MODE_ABSOLUTE, (*Cpu).opCPX},
	{0xc0, "CPY", MODE_IMMEDIATE, (*Cpu).opCPY},
	{0xc4, "CPY", MODE_ZERO_PAGE, (*Cpu).opCPY},
	{0xcc, "CPY", MODE_ABSOLUTE, (*Cpu).opCPY},

	// Read-modify-write
	{0xe6, "INC", MODE_ZERO_PAGE, (*Cpu).opINC},
	{0xf6, "INC", MODE_ZERO_PAGE_X, (*Cpu).opINC},
	{0xee, "INC", MODE_ABSOLUTE, (*Cpu).opINC},
	{0xfe, "INC", MODE_ABSOLUTE_X, (*Cpu).opINC},
	{0xc6, "DEC", MODE_ZERO_PAGE, (*Cpu).opDEC},
	{0xd6, "DEC", MODE_ZERO_PAGE_X, (*Cpu).opDEC},
	{0xce, "DEC", MODE_ABSOLUTE, (*Cpu).opDEC},
	{0xde, "DEC", MODE_ABSOLUTE_X, (*Cpu).opDEC},

	// Register operations
	{0xaa, "TAX", MODE_NONE, (*Cpu).opTAX},
	{0xa8, "TAY", MODE_NONE, (*Cpu).opTAY},
	{0x8a, "TXA", MODE_NONE, (*Cpu).opTXA},
	{0x98, "TYA", MODE_NONE, (*Cpu).opTYA},
	{0xba, "TSX", MODE_NONE, (*Cpu).opTSX},
	{0x9a, "TXS", MODE_NONE, (*Cpu).opTXS},
	{0xe8, "INX", MODE_NONE, (*Cpu).opINX},
	{0xc8, "INY", MODE_NONE, (*Cpu).opINY},
	{0xca, "DEX", MODE_NONE, (*Cpu).opDEX},
	{0x88, "DEY", MODE_NONE, (*Cpu).opDEY},

	// Stack operations
	{0x48, "PHA", MODE_NONE, (*Cpu).opPHA},
	{0x68, "PLA", MODE_NONE, (*Cpu).opPLA},
	{0x08, "PHP", MODE_NONE, (*Cpu).opPHP},
	{0x28, "PLP", MODE_NONE, (*Cpu).opPLP},

	// Flag operations
	{0x18, "CLC", MODE_NONE, (*Cpu).opCLC},
	{0x38, "SEC", MODE_NONE, (*Cpu).opSEC},
	{0x58, "CLI", MODE_NONE, (*Cpu).opCLI},
	{0x78, "SEI", MODE_NONE, (*Cpu).opSEI},
	{0xd8, "CLD", MODE_NONE, (*Cpu).opCLD},
	{0xf8, "SED", MODE_NONE, (*Cpu).opSED},
	{0xb8, "CLV", MODE_NONE, (*Cpu).opCLV},
}

// instructionByCode is the decode table, exact-match on the opcode byte.
var instructionByCode [256]*Instruction

// encodings maps mnemonic and mode to the table entry, for the assembler.
var encodings = map[string]map[AddressingMode]*Instruction{}

func init() {
	for i := range instructionSet {
		in := &instructionSet[i]
		if instructionByCode[in.Code] != nil {
			panic(fmt.Sprintf("duplicate opcode %02x", in.Code))
		}
		instructionByCode[in.Code] = in

		modes, ok := encodings[in.Name]
		if !ok {
			modes = map[AddressingMode]*Instruction{}
			encodings[in.Name] = modes
		}
		modes[in.Mode] = in
	}
}

// Lookup returns the instruction table entry for an opcode byte, or nil.
func Lookup(code uint8) *Instruction {
	return instructionByCode[code]
}
