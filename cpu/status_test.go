package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Reset(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Status(0b00100100), STATUS_RESET)
	assert.True(STATUS_RESET.InterruptDisable())
	assert.False(STATUS_RESET.Carry())
	assert.False(STATUS_RESET.Zero())
	assert.False(STATUS_RESET.Overflow())
	assert.False(STATUS_RESET.Negative())
	assert.False(STATUS_RESET.Decimal())
}

func TestStatus_With(t *testing.T) {
	assert := assert.New(t)

	s := Status(0)
	s = s.WithCarry(true)
	assert.True(s.Carry())
	s = s.WithCarry(false)
	assert.Equal(Status(0), s)

	s = s.WithOverflow(true).WithNegative(true).WithZero(true)
	assert.True(s.Overflow())
	assert.True(s.Negative())
	assert.True(s.Zero())
	assert.False(s.Carry())
}

// UpdateZeroNegative must derive exactly two bits from the value and
// leave the rest of the register alone, for every value and any incoming
// state.
func TestStatus_UpdateZeroNegative(t *testing.T) {
	assert := assert.New(t)

	bases := []Status{0, STATUS_RESET, 0xff, FLAG_CARRY | FLAG_OVERFLOW}

	for _, base := range bases {
		for v := range 256 {
			value := uint8(v)
			s := base.UpdateZeroNegative(value)

			assert.Equal(value == 0, s.Zero(), "value %#02x base %v", value, base)
			assert.Equal(value&0x80 != 0, s.Negative(), "value %#02x base %v", value, base)

			mask := FLAG_ZERO | FLAG_NEGATIVE
			assert.Equal(base&^mask, s&^mask, "value %#02x base %v", value, base)
		}
	}
}

func TestStatus_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("nv-bdizc", Status(FLAG_UNUSED).String())
	assert.Equal("nv-bdIzc", STATUS_RESET.String())
	assert.Equal("NV-BDIZC", Status(0xff).String())
	assert.Equal("nv-bdizC", Status(FLAG_CARRY).String())
}
