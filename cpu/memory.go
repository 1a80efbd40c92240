package cpu

import "fmt"

// Fixed architectural addresses and sizes.
const (
	MEMORY_SIZE  = 0x10000         // Full 16-bit address space.
	STACK_BASE   = uint16(0x0100)  // Stack lives in page one.
	STACK_RESET  = uint8(0xfd)     // Top three stack bytes are reserved for vectors.
	PROGRAM_BASE = uint16(0x8000)  // Program images load here.
	RESET_VECTOR = uint16(0xfffc)  // Little-endian address executed after reset.
)

var _memory_defines = map[string]string{
	"MEMORY_SIZE":  fmt.Sprintf("%#v", MEMORY_SIZE),
	"STACK_BASE":   fmt.Sprintf("%#v", STACK_BASE),
	"PROGRAM_BASE": fmt.Sprintf("%#v", PROGRAM_BASE),
	"RESET_VECTOR": fmt.Sprintf("%#v", RESET_VECTOR),
}

// Memory is the flat byte store addressed by the CPU. The address type
// covers exactly the store, so no out-of-range access is expressible;
// address arithmetic past 0xffff wraps to the bottom of the space.
type Memory struct {
	Data [MEMORY_SIZE]uint8
}

// Read returns the byte at address.
func (m *Memory) Read(address uint16) uint8 {
	return m.Data[address]
}

// Write stores value at address.
func (m *Memory) Write(address uint16, value uint8) {
	m.Data[address] = value
}

// ReadWord returns the little-endian 16-bit value at address. The high
// byte fetch at the top of the address space wraps to address 0.
func (m *Memory) ReadWord(address uint16) uint16 {
	lo := uint16(m.Read(address))
	hi := uint16(m.Read(address + 1))
	return (hi << 8) | lo
}

// WriteWord stores a 16-bit value at address, low byte first.
func (m *Memory) WriteWord(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}
