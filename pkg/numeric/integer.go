package numeric

import "math/big"

// Integer is an arbitrary-precision signed integer.
type Integer struct {
	v *big.Int
}

// NewInteger builds an Integer from an int64.
func NewInteger(n int64) Integer {
	return Integer{v: big.NewInt(n)}
}

// IntegerFromString parses an optionally-signed base-10 digit string.
func IntegerFromString(s string) (Integer, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Integer{}, false
	}
	return Integer{v: v}, true
}

func (i Integer) big() *big.Int {
	if i.v == nil {
		return big.NewInt(0)
	}
	return i.v
}

// Equal reports whether i and j denote the same value.
func (i Integer) Equal(j Integer) bool { return i.big().Cmp(j.big()) == 0 }

// Cmp compares i and j, returning -1, 0, or 1.
func (i Integer) Cmp(j Integer) int { return i.big().Cmp(j.big()) }

// Negative reports whether i < 0.
func (i Integer) Negative() bool { return i.big().Sign() < 0 }

// Show renders i with an explicit sign, per spec: "+N" or "-N" (Integer/show).
func (i Integer) Show() string {
	if i.Negative() {
		return i.big().String() // big.Int already prints the leading '-'
	}
	return "+" + i.big().String()
}

// BigInt exposes the underlying big.Int for Double conversion.
func (i Integer) BigInt() *big.Int { return new(big.Int).Set(i.big()) }

// ToDouble converts i to a Double via a correctly-rounded decimal round trip
// (spec §9's resolved open question): the integer's exact base-10 decimal
// representation is parsed as an arbitrary-precision decimal and then
// reduced to the nearest float64, sidestepping any platform int64->float64
// rounding bugs.
func (i Integer) ToDouble() Double {
	if d, ok := DoubleFromDecimalString(i.big().String()); ok {
		return d
	}
	return bigIntToDouble(i.big())
}
