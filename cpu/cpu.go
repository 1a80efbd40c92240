package cpu

import (
	"fmt"
	"iter"
	"maps"

	"github.com/sixtyfive/m6502/internal"
)

// Cpu holds the complete register file and memory of one emulated
// processor. A Cpu and its Memory are owned by exactly one caller; the
// execute loop is the only mutator and there is no internal locking.
// Independent instances share no state and may run concurrently.
type Cpu struct {
	Verbose bool // Set to log each executed instruction.

	Accumulator uint8
	IndexX      uint8
	IndexY      uint8
	Status      Status
	PC          uint16 // Undefined until Reset loads the reset vector.
	SP          uint8  // Offset into the stack page, grows downward.

	Memory *Memory
}

// New creates a Cpu with zeroed memory and power-on register values.
func New() (c *Cpu) {
	c = &Cpu{
		Memory: &Memory{},
	}

	c.Status = STATUS_RESET
	c.SP = STACK_RESET

	return
}

// Defines exposes the architectural constants as assembler pre-defines.
func Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		maps.All(_memory_defines),
		maps.All(_status_defines),
	)
}

// String returns the current register state, one register per line.
func (c *Cpu) String() (text string) {
	regs := []string{"a", "x", "y", "sp", "pc", "status"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "a":
			strval = fmt.Sprintf("%02x", c.Accumulator)
		case "x":
			strval = fmt.Sprintf("%02x", c.IndexX)
		case "y":
			strval = fmt.Sprintf("%02x", c.IndexY)
		case "sp":
			strval = fmt.Sprintf("%02x", c.SP)
		case "pc":
			strval = fmt.Sprintf("%04x", c.PC)
		case "status":
			strval = c.Status.String()
		}
		text += fmt.Sprintf("% 7s: %v\n", reg, strval)
	}

	return
}

// Load copies a program image into the fixed program region and installs
// the region's start address in the reset vector. Memory outside the
// image is left untouched.
func (c *Cpu) Load(image []uint8) (err error) {
	if len(image) > int(RESET_VECTOR-PROGRAM_BASE) {
		return ErrProgramTooLarge
	}

	for n, value := range image {
		c.Memory.Write(PROGRAM_BASE+uint16(n), value)
	}
	c.Memory.WriteWord(RESET_VECTOR, PROGRAM_BASE)

	return
}

// Reset restores the register file to power-on values and loads the
// program counter from the reset vector. Memory is not cleared.
func (c *Cpu) Reset() {
	c.Accumulator = 0
	c.IndexX = 0
	c.IndexY = 0
	c.SP = STACK_RESET
	c.Status = STATUS_RESET
	c.PC = c.Memory.ReadWord(RESET_VECTOR)
}

// LoadAndRun loads an image, resets, and runs it to the halt opcode.
func (c *Cpu) LoadAndRun(image []uint8) (err error) {
	err = c.Load(image)
	if err != nil {
		return
	}

	c.Reset()

	return c.Run()
}
