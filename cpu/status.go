package cpu

import (
	"fmt"
	"strings"
)

// Status is the processor status register. The bit layout is part of the
// hardware contract and is only manipulated through the named accessors
// below, never through inline masks in operation code.
type Status uint8

// Status register bit masks.
const (
	FLAG_CARRY     = Status(1 << 0)
	FLAG_ZERO      = Status(1 << 1)
	FLAG_INTERRUPT = Status(1 << 2)
	FLAG_DECIMAL   = Status(1 << 3)
	FLAG_BREAK     = Status(1 << 4)
	FLAG_UNUSED    = Status(1 << 5) // Reserved, reads as set on real silicon.
	FLAG_OVERFLOW  = Status(1 << 6)
	FLAG_NEGATIVE  = Status(1 << 7)

	// STATUS_RESET is the documented power-on value (0b00100100).
	STATUS_RESET = FLAG_UNUSED | FLAG_INTERRUPT
)

var _status_defines = map[string]string{
	"FLAG_CARRY":    fmt.Sprintf("%#v", uint8(FLAG_CARRY)),
	"FLAG_ZERO":     fmt.Sprintf("%#v", uint8(FLAG_ZERO)),
	"FLAG_OVERFLOW": fmt.Sprintf("%#v", uint8(FLAG_OVERFLOW)),
	"FLAG_NEGATIVE": fmt.Sprintf("%#v", uint8(FLAG_NEGATIVE)),
}

func (s Status) has(flag Status) bool {
	return s&flag != 0
}

func (s Status) with(flag Status, set bool) Status {
	if set {
		return s | flag
	}
	return s &^ flag
}

// Carry reports the carry flag.
func (s Status) Carry() bool { return s.has(FLAG_CARRY) }

// Zero reports the zero flag.
func (s Status) Zero() bool { return s.has(FLAG_ZERO) }

// Overflow reports the signed overflow flag.
func (s Status) Overflow() bool { return s.has(FLAG_OVERFLOW) }

// Negative reports the negative flag.
func (s Status) Negative() bool { return s.has(FLAG_NEGATIVE) }

// InterruptDisable reports the interrupt disable flag.
func (s Status) InterruptDisable() bool { return s.has(FLAG_INTERRUPT) }

// Decimal reports the decimal mode flag.
func (s Status) Decimal() bool { return s.has(FLAG_DECIMAL) }

// WithCarry returns s with the carry flag set or cleared.
func (s Status) WithCarry(set bool) Status { return s.with(FLAG_CARRY, set) }

// WithZero returns s with the zero flag set or cleared.
func (s Status) WithZero(set bool) Status { return s.with(FLAG_ZERO, set) }

// WithOverflow returns s with the overflow flag set or cleared.
func (s Status) WithOverflow(set bool) Status { return s.with(FLAG_OVERFLOW, set) }

// WithNegative returns s with the negative flag set or cleared.
func (s Status) WithNegative(set bool) Status { return s.with(FLAG_NEGATIVE, set) }

// WithInterruptDisable returns s with the interrupt disable flag set or cleared.
func (s Status) WithInterruptDisable(set bool) Status { return s.with(FLAG_INTERRUPT, set) }

// WithDecimal returns s with the decimal mode flag set or cleared.
func (s Status) WithDecimal(set bool) Status { return s.with(FLAG_DECIMAL, set) }

// UpdateZeroNegative returns s with the zero flag derived from value == 0
// and the negative flag from bit 7 of value. Every other bit of s passes
// through unchanged. Shared by all operations that produce a byte result;
// carry and overflow are computed by the individual operation beforehand.
func (s Status) UpdateZeroNegative(value uint8) Status {
	s = s.with(FLAG_ZERO, value == 0)
	s = s.with(FLAG_NEGATIVE, value&0x80 != 0)
	return s
}

// String renders the flags as "nv-bdizc", upper case when set.
func (s Status) String() string {
	var b strings.Builder

	flags := []struct {
		flag Status
		name byte
	}{
		{FLAG_NEGATIVE, 'n'},
		{FLAG_OVERFLOW, 'v'},
		{FLAG_UNUSED, '-'},
		{FLAG_BREAK, 'b'},
		{FLAG_DECIMAL, 'd'},
		{FLAG_INTERRUPT, 'i'},
		{FLAG_ZERO, 'z'},
		{FLAG_CARRY, 'c'},
	}

	for _, entry := range flags {
		name := entry.name
		if entry.flag == FLAG_UNUSED {
			b.WriteByte(name)
			continue
		}
		if s.has(entry.flag) {
			name -= 'a' - 'A'
		}
		b.WriteByte(name)
	}

	return b.String()
}
