package cpu

// AddressingMode selects how an instruction derives its effective operand
// address from the bytes that trail the opcode. It is a static property of
// each instruction table entry.
type AddressingMode int

const (
	MODE_NONE AddressingMode = iota // No operand; resolving it is a table bug.
	MODE_IMMEDIATE
	MODE_ZERO_PAGE
	MODE_ZERO_PAGE_X
	MODE_ZERO_PAGE_Y
	MODE_ABSOLUTE
	MODE_ABSOLUTE_X
	MODE_ABSOLUTE_Y
	MODE_INDIRECT_X // (zp,X)
	MODE_INDIRECT_Y // (zp),Y
)

func (mode AddressingMode) String() string {
	switch mode {
	case MODE_NONE:
		return "implied"
	case MODE_IMMEDIATE:
		return "immediate"
	case MODE_ZERO_PAGE:
		return "zeropage"
	case MODE_ZERO_PAGE_X:
		return "zeropage,x"
	case MODE_ZERO_PAGE_Y:
		return "zeropage,y"
	case MODE_ABSOLUTE:
		return "absolute"
	case MODE_ABSOLUTE_X:
		return "absolute,x"
	case MODE_ABSOLUTE_Y:
		return "absolute,y"
	case MODE_INDIRECT_X:
		return "(indirect,x)"
	case MODE_INDIRECT_Y:
		return "(indirect),y"
	}
	return "unknown"
}

// OperandBytes returns how many instruction bytes the mode consumes after
// the opcode itself. The execute loop advances the program counter by this
// amount once the operation has run.
func (mode AddressingMode) OperandBytes() int {
	switch mode {
	case MODE_ABSOLUTE, MODE_ABSOLUTE_X, MODE_ABSOLUTE_Y:
		return 2
	case MODE_NONE:
		return 0
	}
	return 1
}
