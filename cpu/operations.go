package cpu

func (c *Cpu) opNOP(*Instruction) error {
	return nil
}

func (c *Cpu) opLDA(in *Instruction) (err error) {
	c.Accumulator, err = c.loadValue(in)
	return
}

func (c *Cpu) opLDX(in *Instruction) (err error) {
	c.IndexX, err = c.loadValue(in)
	return
}

func (c *Cpu) opLDY(in *Instruction) (err error) {
	c.IndexY, err = c.loadValue(in)
	return
}

// loadValue reads the operand and derives zero/negative from it. Loads
// never touch carry or overflow.
func (c *Cpu) loadValue(in *Instruction) (value uint8, err error) {
	value, err = c.operand(in.Mode)
	if err != nil {
		return
	}

	c.Status = c.Status.UpdateZeroNegative(value)
	return
}

func (c *Cpu) opSTA(in *Instruction) error {
	return c.storeValue(in, c.Accumulator)
}

func (c *Cpu) opSTX(in *Instruction) error {
	return c.storeValue(in, c.IndexX)
}

func (c *Cpu) opSTY(in *Instruction) error {
	return c.storeValue(in, c.IndexY)
}

// storeValue writes a register to the resolved address. Stores never
// touch the status register.
func (c *Cpu) storeValue(in *Instruction, value uint8) (err error) {
	address, err := c.operandAddress(in.Mode)
	if err != nil {
		return
	}

	c.Memory.Write(address, value)
	return
}

func (c *Cpu) opADC(in *Instruction) (err error) {
	value, err := c.operand(in.Mode)
	if err != nil {
		return
	}

	c.addWithCarry(value)
	return
}

// opSBC subtracts via the one's complement of the operand: A - M - (1-C)
// equals A + ^M + C, so the carry and overflow rules of addition apply
// unchanged.
func (c *Cpu) opSBC(in *Instruction) (err error) {
	value, err := c.operand(in.Mode)
	if err != nil {
		return
	}

	c.addWithCarry(^value)
	return
}

// addWithCarry adds value and the incoming carry flag to the accumulator.
// The sum is computed in 16 bits so the unsigned carry-out is observable
// after 8-bit truncation. Signed overflow is derived from the
// pre-addition operand signs: it is set when both inputs share a sign bit
// that differs from the result's.
func (c *Cpu) addWithCarry(value uint8) {
	sum := uint16(c.Accumulator) + uint16(value)
	if c.Status.Carry() {
		sum++
	}

	result := uint8(sum)
	overflow := (c.Accumulator^result)&(value^result)&0x80 != 0

	c.Accumulator = result
	c.Status = c.Status.
		WithCarry(sum > 0xff).
		WithOverflow(overflow).
		UpdateZeroNegative(result)
}

func (c *Cpu) opAND(in *Instruction) (err error) {
	value, err := c.operand(in.Mode)
	if err != nil {
		return
	}

	c.Accumulator &= value
	c.Status = c.Status.UpdateZeroNegative(c.Accumulator)
	return
}

func (c *Cpu) opORA(in *Instruction) (err error) {
	value, err := c.operand(in.Mode)
	if err != nil {
		return
	}

	c.Accumulator |= value
	c.Status = c.Status.UpdateZeroNegative(c.Accumulator)
	return
}

func (c *Cpu) opEOR(in *Instruction) (err error) {
	value, err := c.operand(in.Mode)
	if err != nil {
		return
	}

	c.Accumulator ^= value
	c.Status = c.Status.UpdateZeroNegative(c.Accumulator)
	return
}

// opBIT tests memory against the accumulator: zero from the AND of the
// two, negative and overflow copied from bits 7 and 6 of the operand.
func (c *Cpu) opBIT(in *Instruction) (err error) {
	value, err := c.operand(in.Mode)
	if err != nil {
		return
	}

	c.Status = c.Status.
		WithZero(c.Accumulator&value == 0).
		WithNegative(value&0x80 != 0).
		WithOverflow(value&0x40 != 0)
	return
}

func (c *Cpu) opCMP(in *Instruction) error {
	return c.compare(in, c.Accumulator)
}

func (c *Cpu) opCPX(in *Instruction) error {
	return c.compare(in, c.IndexX)
}

func (c *Cpu) opCPY(in *Instruction) error {
	return c.compare(in, c.IndexY)
}

// compare sets carry when the register is at least the operand, and
// zero/negative from the 8-bit difference. The register is not modified.
func (c *Cpu) compare(in *Instruction, register uint8) (err error) {
	value, err := c.operand(in.Mode)
	if err != nil {
		return
	}

	c.Status = c.Status.
		WithCarry(register >= value).
		UpdateZeroNegative(register - value)
	return
}

func (c *Cpu) opINC(in *Instruction) error {
	return c.modifyMemory(in, 1)
}

func (c *Cpu) opDEC(in *Instruction) error {
	return c.modifyMemory(in, 0xff)
}

func (c *Cpu) modifyMemory(in *Instruction, delta uint8) (err error) {
	address, err := c.operandAddress(in.Mode)
	if err != nil {
		return
	}

	value := c.Memory.Read(address) + delta
	c.Memory.Write(address, value)
	c.Status = c.Status.UpdateZeroNegative(value)
	return
}

func (c *Cpu) opTAX(*Instruction) error {
	c.IndexX = c.Accumulator
	c.Status = c.Status.UpdateZeroNegative(c.IndexX)
	return nil
}

func (c *Cpu) opTAY(*Instruction) error {
	c.IndexY = c.Accumulator
	c.Status = c.Status.UpdateZeroNegative(c.IndexY)
	return nil
}

func (c *Cpu) opTXA(*Instruction) error {
	c.Accumulator = c.IndexX
	c.Status = c.Status.UpdateZeroNegative(c.Accumulator)
	return nil
}

func (c *Cpu) opTYA(*Instruction) error {
	c.Accumulator = c.IndexY
	c.Status = c.Status.UpdateZeroNegative(c.Accumulator)
	return nil
}

func (c *Cpu) opTSX(*Instruction) error {
	c.IndexX = c.SP
	c.Status = c.Status.UpdateZeroNegative(c.IndexX)
	return nil
}

// opTXS is the one transfer that does not update flags.
func (c *Cpu) opTXS(*Instruction) error {
	c.SP = c.IndexX
	return nil
}

func (c *Cpu) opINX(*Instruction) error {
	c.IndexX++
	c.Status = c.Status.UpdateZeroNegative(c.IndexX)
	return nil
}

func (c *Cpu) opINY(*Instruction) error {
	c.IndexY++
	c.Status = c.Status.UpdateZeroNegative(c.IndexY)
	return nil
}

func (c *Cpu) opDEX(*Instruction) error {
	c.IndexX--
	c.Status = c.Status.UpdateZeroNegative(c.IndexX)
	return nil
}

func (c *Cpu) opDEY(*Instruction) error {
	c.IndexY--
	c.Status = c.Status.UpdateZeroNegative(c.IndexY)
	return nil
}

// push writes to the stack page at the current stack pointer and moves
// the pointer down. The pointer is an offset into page one, not an
// absolute address.
func (c *Cpu) push(value uint8) {
	c.Memory.Write(STACK_BASE+uint16(c.SP), value)
	c.SP--
}

func (c *Cpu) pull() uint8 {
	c.SP++
	return c.Memory.Read(STACK_BASE + uint16(c.SP))
}

func (c *Cpu) opPHA(*Instruction) error {
	c.push(c.Accumulator)
	return nil
}

func (c *Cpu) opPLA(*Instruction) error {
	c.Accumulator = c.pull()
	c.Status = c.Status.UpdateZeroNegative(c.Accumulator)
	return nil
}

// opPHP pushes the status with the break and reserved bits forced on, as
// the hardware does for a software push.
func (c *Cpu) opPHP(*Instruction) error {
	c.push(uint8(c.Status | FLAG_BREAK | FLAG_UNUSED))
	return nil
}

func (c *Cpu) opPLP(*Instruction) error {
	c.Status = Status(c.pull())&^FLAG_BREAK | FLAG_UNUSED
	return nil
}

func (c *Cpu) opCLC(*Instruction) error {
	c.Status = c.Status.WithCarry(false)
	return nil
}

func (c *Cpu) opSEC(*Instruction) error {
	c.Status = c.Status.WithCarry(true)
	return nil
}

func (c *Cpu) opCLI(*Instruction) error {
	c.Status = c.Status.WithInterruptDisable(false)
	return nil
}

func (c *Cpu) opSEI(*Instruction) error {
	c.Status = c.Status.WithInterruptDisable(true)
	return nil
}

func (c *Cpu) opCLD(*Instruction) error {
	c.Status = c.Status.WithDecimal(false)
	return nil
}

func (c *Cpu) opSED(*Instruction) error {
	c.Status = c.Status.WithDecimal(true)
	return nil
}

func (c *Cpu) opCLV(*Instruction) error {
	c.Status = c.Status.WithOverflow(false)
	return nil
}
