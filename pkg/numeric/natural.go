// Package numeric provides the arbitrary-precision number representations
// used by the value domain: Natural, Integer, and Double.
package numeric

import "math/big"

// Natural is an arbitrary-precision non-negative integer.
type Natural struct {
	v *big.Int
}

// NewNatural builds a Natural from a non-negative int64. Negative inputs are
// clamped to zero; well-typed callers never pass one.
func NewNatural(n int64) Natural {
	if n < 0 {
		n = 0
	}
	return Natural{v: big.NewInt(n)}
}

// NaturalFromString parses a base-10 digit string into a Natural.
func NaturalFromString(s string) (Natural, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return Natural{}, false
	}
	return Natural{v: v}, true
}

// NaturalZero is the additive identity.
func NaturalZero() Natural { return Natural{v: big.NewInt(0)} }

// NaturalOne is the multiplicative identity.
func NaturalOne() Natural { return Natural{v: big.NewInt(1)} }

func (n Natural) big() *big.Int {
	if n.v == nil {
		return big.NewInt(0)
	}
	return n.v
}

// IsZero reports whether n is 0.
func (n Natural) IsZero() bool { return n.big().Sign() == 0 }

// Even reports whether n is divisible by two.
func (n Natural) Even() bool { return n.big().Bit(0) == 0 }

// Add returns n + m.
func (n Natural) Add(m Natural) Natural {
	return Natural{v: new(big.Int).Add(n.big(), m.big())}
}

// Mul returns n * m.
func (n Natural) Mul(m Natural) Natural {
	return Natural{v: new(big.Int).Mul(n.big(), m.big())}
}

// Subtract returns max(0, n - m), per Natural/subtract's saturating semantics.
func (n Natural) Subtract(m Natural) Natural {
	r := new(big.Int).Sub(n.big(), m.big())
	if r.Sign() < 0 {
		return NaturalZero()
	}
	return Natural{v: r}
}

// Cmp compares n and m, returning -1, 0, or 1.
func (n Natural) Cmp(m Natural) int { return n.big().Cmp(m.big()) }

// Equal reports whether n and m denote the same value.
func (n Natural) Equal(m Natural) bool { return n.Cmp(m) == 0 }

// Pred returns n - 1, assumed only called when n > 0 (well-typed fold).
func (n Natural) Pred() Natural {
	return Natural{v: new(big.Int).Sub(n.big(), big.NewInt(1))}
}

// Succ returns n + 1.
func (n Natural) Succ() Natural {
	return Natural{v: new(big.Int).Add(n.big(), big.NewInt(1))}
}

// Uint64 reports n as a uint64 and whether it fits, used to bound fold/build
// iteration counts to something the host can actually loop over.
func (n Natural) Uint64() (uint64, bool) {
	if !n.big().IsUint64() {
		return 0, false
	}
	return n.big().Uint64(), true
}

// ToInteger reinterprets n as a signed Integer (Natural/toInteger).
func (n Natural) ToInteger() Integer {
	return Integer{v: new(big.Int).Set(n.big())}
}

// Show renders n as a plain decimal string (Natural/show).
func (n Natural) Show() string { return n.big().String() }

// BigInt exposes the underlying big.Int for numeric.Double conversion.
func (n Natural) BigInt() *big.Int { return new(big.Int).Set(n.big()) }
