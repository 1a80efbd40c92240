package cpu

import (
	"fmt"
	"strings"
)

// Opcode is one assembled source line: the address it was placed at, the
// bytes it produced, and the source words it came from.
type Opcode struct {
	LineNo    int
	Address   uint16
	Words     []string
	Bytes     []uint8
	LinkLabel string // Label operand resolved after the first pass.
}

func (op *Opcode) String() string {
	text := make([]string, 0, len(op.Bytes))
	for _, b := range op.Bytes {
		text = append(text, fmt.Sprintf("%02x", b))
	}
	return fmt.Sprintf("%04x: %-9s %s", op.Address, strings.Join(text, " "), strings.Join(op.Words, " "))
}

// Program is an assembled listing. It keeps the per-line layout so a host
// can map an executing program counter back to source.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the listing entry covering an address.
type Debug struct {
	*Opcode
	Index int // Byte offset within the entry.
}

func (prog *Program) Debug(pc uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if pc >= op.Address && pc < op.Address+uint16(len(op.Bytes)) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(pc - op.Address),
			}
			break
		}
	}

	return
}

// Binary flattens the listing into the loadable image. Entries are
// contiguous from PROGRAM_BASE by construction.
func (prog *Program) Binary() (image []uint8) {
	for _, op := range prog.Opcodes {
		image = append(image, op.Bytes...)
	}

	return
}
