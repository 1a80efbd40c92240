package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	assert.Equal(uint8(0), mem.Read(0x1234))

	mem.Write(0x1234, 0x56)
	assert.Equal(uint8(0x56), mem.Read(0x1234))

	mem.Write(0x0000, 0x01)
	mem.Write(0xffff, 0xfe)
	assert.Equal(uint8(0x01), mem.Read(0x0000))
	assert.Equal(uint8(0xfe), mem.Read(0xffff))
}

func TestMemory_Word(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	mem.WriteWord(0x0200, 0x1234)
	assert.Equal(uint8(0x34), mem.Read(0x0200))
	assert.Equal(uint8(0x12), mem.Read(0x0201))
	assert.Equal(uint16(0x1234), mem.ReadWord(0x0200))
}

// A word read at the top of the address space takes its high byte from
// address zero.
func TestMemory_WordWrap(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	mem.Write(0xffff, 0xcd)
	mem.Write(0x0000, 0xab)
	assert.Equal(uint16(0xabcd), mem.ReadWord(0xffff))

	mem.WriteWord(0xffff, 0x1234)
	assert.Equal(uint8(0x34), mem.Read(0xffff))
	assert.Equal(uint8(0x12), mem.Read(0x0000))
}
