package numeric

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd"
)

// Double is an IEEE 754 binary64 value. Definitional equality on Double is
// bitwise (spec §6), so NaN is equal to itself — this is why Double caches
// the raw float64 bits alongside the apd.Decimal used for correctly-rounded
// show/parse. The apd.Decimal is the source of truth for textual
// round-tripping; the float64 is the source of truth for equality.
type Double struct {
	bits uint64
	dec  apd.Decimal
}

// NewDouble wraps a float64.
func NewDouble(f float64) Double {
	d := Double{bits: math.Float64bits(f)}
	d.dec.SetFloat64(f)
	return d
}

// DoubleFromDecimalString parses a base-10 decimal literal (as produced by
// the parser for Double literals) into a Double: the literal is first read
// as an exact apd decimal (kept alongside the result), then converted to
// the nearest float64 by apd's Decimal.Float64. It reports false when s is
// not a decimal literal or the conversion fails.
func DoubleFromDecimalString(s string) (Double, bool) {
	var dec apd.Decimal
	if _, _, err := dec.SetString(s); err != nil {
		return Double{}, false
	}
	f, err := dec.Float64()
	if err != nil {
		return Double{}, false
	}
	return Double{bits: math.Float64bits(f), dec: dec}, true
}

// Float64 returns the underlying float64.
func (d Double) Float64() float64 { return math.Float64frombits(d.bits) }

// Equal decides bitwise equality, so NaN == NaN (spec §8 property 8).
func (d Double) Equal(e Double) bool { return d.bits == e.bits }

// Show renders d per Double/show: the platform-standard decimal string,
// with NaN/Infinity spelled out and a trailing ".0" added to otherwise
// integral values so Double/show never collides with Natural/show or
// Integer/show output.
func (d Double) Show() string {
	f := d.Float64()
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := d.dec.String()
	if !hasDecimalMarker(s) {
		s += ".0"
	}
	return s
}

func hasDecimalMarker(s string) bool {
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return true
		}
	}
	return false
}

// NaturalToDouble converts a Natural to a Double via the same correctly-
// rounded decimal path used by Integer.ToDouble.
func NaturalToDouble(n Natural) Double {
	return bigIntToDouble(n.BigInt())
}

// IntegerToDouble converts an Integer to a Double.
func IntegerToDouble(i Integer) Double {
	return bigIntToDouble(i.BigInt())
}

func bigIntToDouble(v *big.Int) Double {
	dec := apd.NewWithBigInt(v, 0)
	f, err := dec.Float64()
	if err != nil {
		// Magnitude overflows float64; saturate to +/-Inf like a
		// platform decimal-to-double conversion would.
		if v.Sign() < 0 {
			f = math.Inf(-1)
		} else {
			f = math.Inf(1)
		}
	}
	return Double{bits: math.Float64bits(f), dec: *dec}
}
