package cpu

// operandAddress resolves the effective address for an addressing mode.
// The program counter must point at the first operand byte; the resolver
// never advances it.
//
// Index additions use the register width native to the mode: zero-page
// indexing and the (zp,X) pointer wrap within page zero at 8 bits, while
// absolute indexing and the (zp),Y final addition wrap at 16 bits. The
// two widths reproduce the hardware page-wrap behaviour and must not be
// collapsed into one.
func (c *Cpu) operandAddress(mode AddressingMode) (address uint16, err error) {
	switch mode {
	case MODE_IMMEDIATE:
		// The operand is the instruction byte itself.
		address = c.PC

	case MODE_ZERO_PAGE:
		address = uint16(c.Memory.Read(c.PC))

	case MODE_ZERO_PAGE_X:
		address = uint16(c.Memory.Read(c.PC) + c.IndexX)

	case MODE_ZERO_PAGE_Y:
		address = uint16(c.Memory.Read(c.PC) + c.IndexY)

	case MODE_ABSOLUTE:
		address = c.Memory.ReadWord(c.PC)

	case MODE_ABSOLUTE_X:
		address = c.Memory.ReadWord(c.PC) + uint16(c.IndexX)

	case MODE_ABSOLUTE_Y:
		address = c.Memory.ReadWord(c.PC) + uint16(c.IndexY)

	case MODE_INDIRECT_X:
		pointer := c.Memory.Read(c.PC) + c.IndexX
		lo := uint16(c.Memory.Read(uint16(pointer)))
		hi := uint16(c.Memory.Read(uint16(pointer + 1)))
		address = (hi << 8) | lo

	case MODE_INDIRECT_Y:
		pointer := c.Memory.Read(c.PC)
		lo := uint16(c.Memory.Read(uint16(pointer)))
		hi := uint16(c.Memory.Read(uint16(pointer + 1)))
		address = ((hi << 8) | lo) + uint16(c.IndexY)

	default:
		err = ErrAddressingMode(mode)
	}

	return
}

// operand resolves the current instruction's address and reads the byte
// there.
func (c *Cpu) operand(mode AddressingMode) (value uint8, err error) {
	address, err := c.operandAddress(mode)
	if err != nil {
		return
	}

	value = c.Memory.Read(address)
	return
}
