package machine

import (
	"math"
	"math/big"
)

const (
	INT32_MAX = math.MaxInt32 // Upper bound before the overflow flag is set.
	INT32_MIN = math.MinInt32 // Lower bound before the overflow flag is set.
)

var (
	int32Max = big.NewInt(INT32_MAX)
	int32Min = big.NewInt(INT32_MIN)
)

// Registers is the register file.
//
// The accumulator is not bounded to any width; arithmetic keeps the exact
// result and only reports leaving the 32-bit range through Overflow.
// Register values are never modified in place, so they may be shared
// with data memory. A nil value reads as zero.
type Registers struct {
	A        *big.Int // Accumulator.
	B        *big.Int // Secondary (data) register.
	Pc       int      // Program counter.
	Zero     bool     // Zero-result flag.
	Overflow bool     // Overflow flag.
	Halt     bool     // Halt flag.
}

// Reset clears the register file.
func (reg *Registers) Reset() {
	*reg = Registers{}
}

// Word returns the value, or zero for nil.
func Word(value *big.Int) *big.Int {
	if value == nil {
		return new(big.Int)
	}
	return value
}

// Add returns acc + data, with the zero and overflow flags of the result.
func Add(acc, data *big.Int) (result *big.Int, zero, overflow bool) {
	result = new(big.Int).Add(Word(acc), Word(data))
	zero, overflow = flags(result)
	return
}

// Sub returns acc - data, with the zero and overflow flags of the result.
func Sub(acc, data *big.Int) (result *big.Int, zero, overflow bool) {
	result = new(big.Int).Sub(Word(acc), Word(data))
	zero, overflow = flags(result)
	return
}

func flags(result *big.Int) (zero, overflow bool) {
	zero = result.Sign() == 0
	overflow = result.Cmp(int32Max) > 0 || result.Cmp(int32Min) < 0
	return
}

// Add adds B to A and updates both flags.
func (reg *Registers) Add() {
	reg.A, reg.Zero, reg.Overflow = Add(reg.A, reg.B)
}

// Sub subtracts B from A and updates both flags.
func (reg *Registers) Sub() {
	reg.A, reg.Zero, reg.Overflow = Sub(reg.A, reg.B)
}

// Exchange swaps A and B. Flags are untouched.
func (reg *Registers) Exchange() {
	reg.A, reg.B = reg.B, reg.A
}

// bit renders a flag as 0 or 1.
func bit(flag bool) int {
	if flag {
		return 1
	}
	return 0
}
