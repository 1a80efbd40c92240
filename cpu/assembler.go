package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler is a two-pass assembler for the implemented instruction set.
// The first pass places bytes and collects labels, the link pass patches
// label operands. Supports .equ equates, .byte/.word data directives,
// character literals, and compile-time $(...) expressions.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated listing entries.

	predefine map[string]string // Predefines
	Label     map[string]uint16 // Map of labels to absolute addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var identRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// valueOf returns the value of a simple word. Besides the strconv bases,
// '$' introduces hexadecimal and '%' binary, per assembler convention.
func (asm *Assembler) valueOf(word string) (value uint16, err error) {
	if word == "" {
		err = ErrParseNumber(word)
		return
	}

	var v64 int64
	switch word[0] {
	case '$':
		var u64 uint64
		u64, err = strconv.ParseUint(word[1:], 16, 16)
		v64 = int64(u64)
	case '%':
		var u64 uint64
		u64, err = strconv.ParseUint(word[1:], 2, 16)
		v64 = int64(u64)
	default:
		v64, err = strconv.ParseInt(word, 0, 32)
	}
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 > 0xffff || v64 < -0x8000 {
		err = ErrOperandRange
		return
	}

	value = uint16(v64)
	return
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value16 uint16
		value16, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(int(value16))
	}
	err = nil

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64)
	return
}

// parseLine substitutes character literals, $(...) expressions, and
// equates, records label definitions, and returns the remaining words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Do 'x' evaluations.
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations.
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Fields(line), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	// Substitute equates, including inside compound operands like "#NAME".
	for n, word := range words {
		words[n] = identRe.ReplaceAllStringFunc(word, func(ident string) string {
			equate, ok := asm.Equate[ident]
			if ok {
				return equate
			}
			return ident
		})
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = asm.currentAddress()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// currentAddress returns the address the next byte will be placed at.
func (asm *Assembler) currentAddress() uint16 {
	if len(asm.Opcode) == 0 {
		return PROGRAM_BASE
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Address + uint16(len(last.Bytes))
}

// cutSuffixFold removes an ASCII case-insensitive suffix.
func cutSuffixFold(s, suffix string) (string, bool) {
	if len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s[:len(s)-len(suffix)], true
	}
	return s, false
}

// valueOrLabel parses a word as a value, falling back to a label
// reference when it is a plain identifier.
func (asm *Assembler) valueOrLabel(word string) (value uint16, label string, err error) {
	value, err = asm.valueOf(word)
	if err == nil {
		return
	}

	if identRe.FindString(word) == word {
		label = word
		err = nil
		return
	}

	return
}

// parseOperand classifies an operand string into an addressing mode, its
// value, and an optional label reference. Label references are only
// legal where a 16-bit operand is encoded.
func (asm *Assembler) parseOperand(op string) (mode AddressingMode, value uint16, label string, err error) {
	if op == "" {
		mode = MODE_NONE
		return
	}

	if rest, ok := strings.CutPrefix(op, "#"); ok {
		mode = MODE_IMMEDIATE
		value, label, err = asm.valueOrLabel(rest)
		if err == nil && (label != "" || value > 0xff) {
			err = ErrOperandRange
		}
		return
	}

	if rest, ok := strings.CutPrefix(op, "("); ok {
		switch {
		case strings.HasSuffix(strings.ToLower(rest), ",x)"):
			mode = MODE_INDIRECT_X
			rest = rest[:len(rest)-3]
		case strings.HasSuffix(strings.ToLower(rest), "),y"):
			mode = MODE_INDIRECT_Y
			rest = rest[:len(rest)-3]
		default:
			err = ErrOperandSyntax
			return
		}

		value, label, err = asm.valueOrLabel(rest)
		if err != nil {
			return
		}
		if label != "" {
			err = ErrLabelNotAbsolute
			return
		}
		if value > 0xff {
			// Indirect pointers live in page zero.
			err = ErrOperandRange
		}
		return
	}

	if rest, ok := cutSuffixFold(op, ",x"); ok {
		value, label, err = asm.valueOrLabel(rest)
		if err != nil {
			return
		}
		if label == "" && value <= 0xff {
			mode = MODE_ZERO_PAGE_X
		} else {
			mode = MODE_ABSOLUTE_X
		}
		return
	}

	if rest, ok := cutSuffixFold(op, ",y"); ok {
		value, label, err = asm.valueOrLabel(rest)
		if err != nil {
			return
		}
		if label == "" && value <= 0xff {
			mode = MODE_ZERO_PAGE_Y
		} else {
			mode = MODE_ABSOLUTE_Y
		}
		return
	}

	value, label, err = asm.valueOrLabel(op)
	if err != nil {
		return
	}
	if label == "" && value <= 0xff {
		mode = MODE_ZERO_PAGE
	} else {
		mode = MODE_ABSOLUTE
	}
	return
}

// promote maps zero-page modes to their absolute equivalents, for
// mnemonics that lack the zero-page encoding.
var promote = map[AddressingMode]AddressingMode{
	MODE_ZERO_PAGE:   MODE_ABSOLUTE,
	MODE_ZERO_PAGE_X: MODE_ABSOLUTE_X,
	MODE_ZERO_PAGE_Y: MODE_ABSOLUTE_Y,
}

// parseWords assembles one directive or instruction into a listing entry.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	op := Opcode{
		LineNo:  lineno,
		Address: asm.currentAddress(),
		Words:   slices.Clone(words),
	}

	switch words[0] {
	case ".byte", ".word":
		if len(words) < 2 {
			return ErrDirectiveSyntax
		}

		wide := words[0] == ".word"
		args := strings.Split(strings.Join(words[1:], ""), ",")
		for _, arg := range args {
			var value uint16
			var label string
			value, label, err = asm.valueOrLabel(arg)
			if err != nil {
				return
			}
			if label != "" {
				// Labels only fit the final 16-bit slot; the link
				// pass patches the trailing two bytes.
				if !wide || len(args) != 1 {
					return ErrLabelNotAbsolute
				}
				op.LinkLabel = label
			}
			if !wide && value > 0xff {
				return ErrOperandRange
			}

			op.Bytes = append(op.Bytes, uint8(value))
			if wide {
				op.Bytes = append(op.Bytes, uint8(value>>8))
			}
		}

	default:
		name := strings.ToUpper(words[0])
		modes, ok := encodings[name]
		if !ok {
			return ErrMnemonicUnknown
		}

		var mode AddressingMode
		var value uint16
		var label string
		mode, value, label, err = asm.parseOperand(strings.Join(words[1:], ""))
		if err != nil {
			return
		}

		in, ok := modes[mode]
		if !ok {
			// Some mnemonics only carry the absolute encoding.
			wide, promotable := promote[mode]
			if promotable {
				in, ok = modes[wide]
				mode = wide
			}
			if !ok {
				return ErrNoEncoding{Name: name, Mode: mode}
			}
		}

		op.LinkLabel = label
		op.Bytes = append(op.Bytes, in.Code)
		switch in.Bytes() {
		case 1:
			op.Bytes = append(op.Bytes, uint8(value))
		case 2:
			op.Bytes = append(op.Bytes, uint8(value), uint8(value>>8))
		}
	}

	asm.Opcode = append(asm.Opcode, op)
	return
}

// link patches label operands once every label address is known.
func (asm *Assembler) link() (err error) {
	for n := range asm.Opcode {
		op := &asm.Opcode[n]
		if op.LinkLabel == "" {
			continue
		}

		address, ok := asm.Label[op.LinkLabel]
		if !ok {
			return ErrSyntax{LineNo: op.LineNo, Line: strings.Join(op.Words, " "),
				Err: ErrLabelMissing(op.LinkLabel)}
		}

		op.Bytes[len(op.Bytes)-2] = uint8(address)
		op.Bytes[len(op.Bytes)-1] = uint8(address >> 8)
	}

	return
}

// Parse assembles an input stream into a Program listing.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			var located ErrSyntax
			if !errors.As(err, &located) {
				err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			}
		}
	}()

	if asm.Label == nil {
		asm.Label = make(map[string]uint16, 16)
	}
	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]

	asm.Equate = make(map[string]string)
	for key, value := range Defines() {
		asm.Equate[key] = value
	}
	maps.Copy(asm.Equate, asm.predefine)

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v", lineno, text)
		}

		line = strings.TrimSpace(strings.Split(text, ";")[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
		if len(words) == 0 {
			continue
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	err = asm.link()
	if err != nil {
		return
	}

	prog = &Program{Opcodes: slices.Clone(asm.Opcode)}
	return
}
