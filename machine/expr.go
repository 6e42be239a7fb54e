package machine

import (
	"math/big"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// isExpr returns true for a $(...) compile-time expression.
func isExpr(word string) bool {
	return strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")")
}

// parseInt parses a decimal, or a 0x/0o/0b prefixed, integer of any size.
func parseInt(word string) (value *big.Int, ok bool) {
	value, ok = new(big.Int).SetString(word, 10)
	if !ok {
		value, ok = new(big.Int).SetString(word, 0)
	}
	return
}

// valueOf returns the integer value of an operand: an equate name,
// a $(...) expression, or a literal.
func (m *Machine) valueOf(word string) (value *big.Int, err error) {
	equate, ok := m.Equate[word]
	if ok {
		word = equate
	}

	if isExpr(word) {
		value, err = m.parenEval(word[2 : len(word)-1])
		return
	}

	value, ok = parseInt(word)
	if !ok {
		err = ErrParseNumber(word)
	}

	return
}

// parenEval does $(...) evaluations
func (m *Machine) parenEval(expr string) (value *big.Int, err error) {
	thread := starlark.Thread{Name: "ali"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range m.Equate {
		equ, ok := parseInt(str)
		if !ok {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeBigInt(equ)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
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
	value = st_int.BigInt()
	return
}
