// Package emulator hosts a cpu.Cpu for a caller: program loading,
// run-to-halt with an optional instruction budget, and source-level error
// reporting when an assembled listing is available.
package emulator

import (
	"github.com/sixtyfive/m6502/cpu"
)

// Machine couples one Cpu with the program it is running. The Cpu and
// its memory are owned exclusively by the Machine; run one Machine per
// goroutine at most.
type Machine struct {
	Verbose  bool // If set, logs each executed instruction.
	*cpu.Cpu
	Program *cpu.Program // Listing of the loaded program, when assembled.

	// Budget caps the instructions a single Run may execute; 0 means
	// unlimited. The core itself has no cancellation, so the cap is
	// checked here, once per instruction.
	Budget int

	Steps int // Instructions executed by the last Run.
}

// NewMachine creates a Machine with a fresh Cpu.
func NewMachine() (m *Machine) {
	m = &Machine{
		Cpu: cpu.New(),
	}

	return
}

// LoadProgram loads an assembled listing.
func (m *Machine) LoadProgram(prog *cpu.Program) (err error) {
	m.Program = prog
	return m.Cpu.Load(prog.Binary())
}

// LoadImage loads a raw byte image without listing information.
func (m *Machine) LoadImage(image []uint8) (err error) {
	m.Program = nil
	return m.Cpu.Load(image)
}

// LineNo returns the source line of the instruction at the current
// program counter, or 0 when no listing covers it.
func (m *Machine) LineNo() int {
	if m.Program == nil {
		return 0
	}

	dbg := m.Program.Debug(m.Cpu.PC)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.Opcode.LineNo
}

// Run resets the Cpu and executes the loaded program to the halt opcode.
// Fatal core errors and budget exhaustion are reported with the source
// line when a listing is present.
func (m *Machine) Run() (err error) {
	m.Cpu.Verbose = m.Verbose
	m.Cpu.Reset()
	m.Steps = 0

	for {
		lineno := m.LineNo()

		if m.Budget > 0 && m.Steps >= m.Budget {
			return &ErrRuntime{LineNo: lineno, Err: ErrBudget}
		}

		done, err := m.Cpu.Step()
		m.Steps++
		if err != nil {
			return &ErrRuntime{LineNo: lineno, Err: err}
		}
		if done {
			return nil
		}
	}
}
