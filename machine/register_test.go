package machine

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// bigOf parses a decimal test value.
func bigOf(text string) (value *big.Int) {
	value, _ = new(big.Int).SetString(text, 10)
	return
}

func TestRegisterArithmetic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		op       func(acc, data *big.Int) (*big.Int, bool, bool)
		a, b     string
		result   string
		zero     bool
		overflow bool
	}){
		{"add", Add, "3", "4", "7", false, false},
		{"add_zero", Add, "-4", "4", "0", true, false},
		{"add_max", Add, "2147483646", "1", "2147483647", false, false},
		{"add_over", Add, "2147483647", "1", "2147483648", false, true},
		{"add_int64", Add, "9223372036854775807", "9223372036854775807", "18446744073709551614", false, true},
		{"add_back", Add, "18446744073709551616", "-18446744073709551615", "1", false, false},
		{"sub", Sub, "3", "4", "-1", false, false},
		{"sub_zero", Sub, "9", "9", "0", true, false},
		{"sub_min", Sub, "-2147483647", "1", "-2147483648", false, false},
		{"sub_under", Sub, "-2147483648", "1", "-2147483649", false, true},
		{"sub_int64", Sub, "-9223372036854775808", "9223372036854775807", "-18446744073709551615", false, true},
	}

	for _, entry := range table {
		result, zero, overflow := entry.op(bigOf(entry.a), bigOf(entry.b))
		assert.Equal(entry.result, result.String(), entry.name)
		assert.Equal(entry.zero, zero, entry.name)
		assert.Equal(entry.overflow, overflow, entry.name)
	}

	// Unset registers read as zero.
	result, zero, overflow := Add(nil, nil)
	assert.Equal(0, result.Sign())
	assert.True(zero)
	assert.False(overflow)
}

func TestRegisterRoundTrip(t *testing.T) {
	assert := assert.New(t)

	rnd := rand.New(rand.NewSource(1))
	for range 1000 {
		a := new(big.Int).Rand(rnd, bigOf("340282366920938463463374607431768211456"))
		a.Sub(a, bigOf("170141183460469231731687303715884105728"))
		b := big.NewInt(rnd.Int63() - rnd.Int63())

		reg := &Registers{A: a, B: b}
		reg.Add()
		reg.Sub()

		assert.Equal(0, a.Cmp(reg.A))
		assert.Equal(0, b.Cmp(reg.B))
		assert.Equal(a.Sign() == 0, reg.Zero)
		assert.Equal(!a.IsInt64() || a.Int64() > INT32_MAX || a.Int64() < INT32_MIN, reg.Overflow)
	}
}

func TestRegisterExchange(t *testing.T) {
	assert := assert.New(t)

	reg := &Registers{A: big.NewInt(1), B: big.NewInt(2), Zero: true, Overflow: true}
	reg.Exchange()

	assert.Equal(int64(2), reg.A.Int64())
	assert.Equal(int64(1), reg.B.Int64())
	assert.True(reg.Zero)
	assert.True(reg.Overflow)

	reg.Reset()
	assert.Equal(Registers{}, *reg)
}
