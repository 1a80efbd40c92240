package emulator

import (
	"errors"

	"github.com/sixtyfive/m6502/translate"
)

var f = translate.From

// ErrBudget indicates the instruction budget ran out before halt.
var ErrBudget = errors.New(f("instruction budget exhausted"))

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("%v", err.Err)
	}

	return f("line %d: %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
