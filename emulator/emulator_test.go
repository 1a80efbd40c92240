package emulator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixtyfive/m6502/cpu"
)

func assemble(t *testing.T, src string) *cpu.Program {
	t.Helper()

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("assemble:\n%s\nerror: %v", src, err)
	}

	return prog
}

func TestMachine_Run(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	err := m.LoadProgram(assemble(t, `
		lda #$c0
		tax
		inx
		brk
	`))
	assert.NoError(err)

	assert.NoError(m.Run())
	assert.Equal(uint8(0xc1), m.Cpu.IndexX)
	assert.Equal(4, m.Steps)
}

// Run resets the register file, so one Machine can run repeatedly.
func TestMachine_RunTwice(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	err := m.LoadProgram(assemble(t, "inx\nbrk\n"))
	assert.NoError(err)

	assert.NoError(m.Run())
	assert.Equal(uint8(1), m.Cpu.IndexX)

	assert.NoError(m.Run())
	assert.Equal(uint8(1), m.Cpu.IndexX)
}

func TestMachine_LoadImage(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	err := m.LoadImage([]uint8{0xa9, 0x05, 0x00})
	assert.NoError(err)

	assert.NoError(m.Run())
	assert.Equal(uint8(0x05), m.Cpu.Accumulator)
}

func TestMachine_Budget(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.Budget = 2
	err := m.LoadProgram(assemble(t, `
		inx
		inx
		inx
		brk
	`))
	assert.NoError(err)

	err = m.Run()
	assert.ErrorIs(err, ErrBudget)
	assert.Equal(2, m.Steps)

	var located *ErrRuntime
	assert.ErrorAs(err, &located)
	assert.Equal(4, located.LineNo)
}

// A fatal core error carries the source line of the faulting bytes.
func TestMachine_RuntimeErrorLine(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	err := m.LoadProgram(assemble(t, `
		lda #$05
		.byte $02
		brk
	`))
	assert.NoError(err)

	err = m.Run()
	assert.ErrorIs(err, cpu.ErrIllegalOpcode{})

	var located *ErrRuntime
	assert.ErrorAs(err, &located)
	assert.Equal(3, located.LineNo)
}

// An image loaded without a listing reports errors without a line.
func TestMachine_RuntimeErrorNoListing(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	err := m.LoadImage([]uint8{0x02})
	assert.NoError(err)

	err = m.Run()
	assert.ErrorIs(err, cpu.ErrIllegalOpcode{})

	var located *ErrRuntime
	assert.ErrorAs(err, &located)
	assert.Equal(0, located.LineNo)
}
