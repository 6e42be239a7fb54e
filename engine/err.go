package engine

import (
	"github.com/ezrec/ali/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a fatal runtime error.
type ErrRuntime struct {
	Address int    // Instruction address.
	Line    string // Instruction text.
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("address %d '%v' %v", err.Address, err.Line, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
