package cpu

import (
	"fmt"
	"log"
)

// Step fetches, decodes, and executes a single instruction.
//
// The program counter advances in two separate moves: one byte for the
// opcode fetch, then the mode's declared operand byte count once the
// operation has run. The second advance is independent of whatever
// address the operation resolved. done reports the halt opcode, which
// stops without the second advance.
func (c *Cpu) Step() (done bool, err error) {
	pc := c.PC
	code := c.Memory.Read(pc)
	c.PC++

	in := instructionByCode[code]
	if in == nil {
		err = ErrIllegalOpcode{Code: code, PC: pc}
		return
	}

	if c.Verbose {
		log.Printf("%04x: %v", pc, c.Disassemble(pc))
	}

	if in.Code == OP_BRK {
		done = true
		return
	}

	err = in.Handler(c, in)
	if err != nil {
		err = ErrExecution{Instruction: in, PC: pc, Err: err}
		return
	}

	c.PC += uint16(in.Bytes())

	return
}

// Run executes instructions until the halt opcode or a fatal error. An
// instruction either completes its register and memory mutation in full
// or the run aborts before mutating; there is no retry and no partial
// state to recover.
func (c *Cpu) Run() (err error) {
	for {
		done, err := c.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Disassemble renders the instruction at address as assembler text.
// Undecodable bytes render as a .byte directive.
func (c *Cpu) Disassemble(address uint16) string {
	code := c.Memory.Read(address)

	in := instructionByCode[code]
	if in == nil {
		return fmt.Sprintf(".byte $%02x", code)
	}

	name := in.Name

	switch in.Mode {
	case MODE_NONE:
		return name
	case MODE_IMMEDIATE:
		return fmt.Sprintf("%s #$%02x", name, c.Memory.Read(address+1))
	case MODE_ZERO_PAGE:
		return fmt.Sprintf("%s $%02x", name, c.Memory.Read(address+1))
	case MODE_ZERO_PAGE_X:
		return fmt.Sprintf("%s $%02x,x", name, c.Memory.Read(address+1))
	case MODE_ZERO_PAGE_Y:
		return fmt.Sprintf("%s $%02x,y", name, c.Memory.Read(address+1))
	case MODE_ABSOLUTE:
		return fmt.Sprintf("%s $%04x", name, c.Memory.ReadWord(address+1))
	case MODE_ABSOLUTE_X:
		return fmt.Sprintf("%s $%04x,x", name, c.Memory.ReadWord(address+1))
	case MODE_ABSOLUTE_Y:
		return fmt.Sprintf("%s $%04x,y", name, c.Memory.ReadWord(address+1))
	case MODE_INDIRECT_X:
		return fmt.Sprintf("%s ($%02x,x)", name, c.Memory.Read(address+1))
	case MODE_INDIRECT_Y:
		return fmt.Sprintf("%s ($%02x),y", name, c.Memory.Read(address+1))
	}

	return name
}
