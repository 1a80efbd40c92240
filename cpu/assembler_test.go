package cpu

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assembles source and checks the image against an expected byte
// sequence (in hex).
func assembleAndMatchHex(t *testing.T, src, expectedHex string) {
	t.Helper()
	assert := assert.New(t)

	expectedHex = strings.ToLower(strings.Join(strings.Fields(expectedHex), ""))
	expected, err := hex.DecodeString(expectedHex)
	assert.NoError(err)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(src))
	if !assert.NoError(err, "source:\n%s", src) {
		return
	}

	assert.Equal([]uint8(expected), prog.Binary(), "source:\n%s", src)
}

func TestAssembler_Encodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"brk", "brk", "00"},
		{"nop", "nop", "ea"},
		{"lda immediate", "lda #$05", "a9 05"},
		{"lda immediate decimal", "lda #5", "a9 05"},
		{"lda immediate binary", "lda #%10000000", "a9 80"},
		{"lda zeropage", "lda $10", "a5 10"},
		{"lda zeropage,x", "lda $10,x", "b5 10"},
		{"lda absolute", "lda $0300", "ad 00 03"},
		{"lda absolute,x", "lda $0300,x", "bd 00 03"},
		{"lda absolute,y", "lda $0300,y", "b9 00 03"},
		{"lda (indirect,x)", "lda ($20,x)", "a1 20"},
		{"lda (indirect),y", "lda ($20),y", "b1 20"},
		{"ldx zeropage,y", "ldx $10,y", "b6 10"},
		{"sta zeropage", "sta $10", "85 10"},
		{"sta (indirect),y", "sta ($30),y", "91 30"},
		{"stx zeropage,y", "stx $10,y", "96 10"},
		{"adc immediate", "adc #$50", "69 50"},
		{"sbc (indirect,x)", "sbc ($40,x)", "e1 40"},
		{"bit absolute", "bit $0300", "2c 00 03"},
		{"cpx absolute", "cpx $1234", "ec 34 12"},
		{"lda promoted to absolute,y", "lda $10,y", "b9 10 00"},
		{"inc zeropage,x", "inc $10,x", "f6 10"},
		{"implied", "tax", "aa"},
		{"case insensitive", "LDA #$05", "a9 05"},
		{"char literal", "lda #'A'", "a9 41"},
		{"expression", "lda #$(2 + 3)", "a9 05"},
		{"byte directive", ".byte $01,$02,$03", "01 02 03"},
		{"word directive", ".word $1234", "34 12"},
		{
			"equate",
			".equ VALUE $42\nlda #VALUE",
			"a9 42",
		},
		{
			"equate in expression",
			".equ BASE $40\nlda #$(BASE + 2)",
			"a9 42",
		},
		{
			"predefined constant",
			"lda PROGRAM_BASE",
			"ad 00 80",
		},
		{
			"flag predefine",
			"lda #FLAG_CARRY",
			"a9 01",
		},
		{
			"label as absolute operand",
			"lda data\nbrk\ndata: .byte $7f",
			"ad 04 80 00 7f",
		},
		{
			"forward and multiple labels",
			"sta first\nsta second\nbrk\nfirst: .byte 0\nsecond: .byte 0",
			"8d 07 80 8d 08 80 00 00 00",
		},
		{
			"word directive with label",
			"brk\nvector: .word vector",
			"00 01 80",
		},
		{
			"comments and blank lines",
			"; a comment\n\nlda #$05 ; trailing\nbrk",
			"a9 05 00",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assembleAndMatchHex(t, tc.src, tc.hex)
		})
	}
}

func TestAssembler_Listing(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("lda #$05\nsta $10\nbrk\n"))
	assert.NoError(err)

	assert.Len(prog.Opcodes, 3)
	assert.Equal(PROGRAM_BASE, prog.Opcodes[0].Address)
	assert.Equal(1, prog.Opcodes[0].LineNo)
	assert.Equal(PROGRAM_BASE+2, prog.Opcodes[1].Address)
	assert.Equal(PROGRAM_BASE+4, prog.Opcodes[2].Address)

	dbg := prog.Debug(PROGRAM_BASE + 2)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(PROGRAM_BASE + 3)
	assert.Equal(2, dbg.Opcode.LineNo)
	assert.Equal(1, dbg.Index)
}

func TestAssembler_Predefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("SPEED", "$42")

	prog, err := asm.Parse(strings.NewReader("lda #SPEED\n"))
	assert.NoError(err)
	assert.Equal([]uint8{0xa9, 0x42}, prog.Binary())
}

func TestAssembler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		target error
		lineno int
	}{
		{"unknown mnemonic", "lda #$05\nfnord $10", ErrMnemonicUnknown, 2},
		{"no such encoding", "ldx $10,x", ErrNoEncoding{Name: "LDX", Mode: MODE_ABSOLUTE_X}, 1},
		{"immediate out of range", "lda #$100", ErrOperandRange, 1},
		{"immediate label", "lda #somewhere", ErrOperandRange, 1},
		{"indirect pointer out of page zero", "lda ($0200),y", ErrOperandRange, 1},
		{"byte directive out of range", ".byte $100", ErrOperandRange, 1},
		{"duplicate label", "here: brk\nhere: brk", ErrLabelDuplicate, 2},
		{"duplicate equate", ".equ A 1\n.equ A 2", ErrEquateDuplicate, 2},
		{"equate syntax", ".equ A", ErrEquateSyntax, 1},
		{"missing label", "lda nowhere", ErrLabelMissing("nowhere"), 1},
		{"bad number", "lda #$zz", ErrParseNumber("$zz"), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			asm := &Assembler{}
			_, err := asm.Parse(strings.NewReader(tc.src))
			assert.ErrorIs(err, tc.target)

			var located ErrSyntax
			if assert.ErrorAs(err, &located) {
				assert.Equal(tc.lineno, located.LineNo)
			}
		})
	}
}

// Parse resets per-call state so one Assembler can be reused.
func TestAssembler_Reuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader("here: lda here\n"))
	assert.NoError(err)
	assert.Equal([]uint8{0xad, 0x00, 0x80}, prog.Binary())

	prog, err = asm.Parse(strings.NewReader("here: brk\n"))
	assert.NoError(err)
	assert.Equal([]uint8{0x00}, prog.Binary())
}
