package machine

import (
	"errors"

	"github.com/ezrec/ali/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrAddressRange          = errors.New(f("address out of range"))
	ErrAddressOverflow       = errors.New(f("program exceeds instruction memory"))
	ErrAddressSpaceExhausted = errors.New(f("data memory exhausted"))

	// Instruction decode errors
	ErrInstructionMalformed = errors.New(f("instruction malformed"))
	ErrOperandMissing       = errors.New(f("operand missing"))
	ErrOperandExtra         = errors.New(f("excessive operands"))
	ErrOperandInvalid       = errors.New(f("operand invalid"))
)

// ErrOpcode is an unknown opcode mnemonic.
type ErrOpcode string

func (eo ErrOpcode) Error() string {
	if len(eo) == 0 {
		return f("opcode missing")
	}
	return f("unknown opcode '%v'", string(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSymbolNotFound is an undeclared symbol reference.
type ErrSymbolNotFound string

func (es ErrSymbolNotFound) Error() string {
	return f("symbol %v not found", string(es))
}

func (es ErrSymbolNotFound) Is(err error) (ok bool) {
	_, ok = err.(ErrSymbolNotFound)
	return
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates an error in the program source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
