package numeric_test

import (
	"math"
	"testing"

	"github.com/dhall-core/evalcore/pkg/numeric"
)

func TestNaturalArithmetic(t *testing.T) {
	tests := []struct {
		name string
		n, m numeric.Natural
		want numeric.Natural
		op   func(a, b numeric.Natural) numeric.Natural
	}{
		{"add", numeric.NewNatural(2), numeric.NewNatural(3), numeric.NewNatural(5), numeric.Natural.Add},
		{"mul", numeric.NewNatural(4), numeric.NewNatural(5), numeric.NewNatural(20), numeric.Natural.Mul},
		{"subtract saturating", numeric.NewNatural(3), numeric.NewNatural(5), numeric.NewNatural(0), numeric.Natural.Subtract},
		{"subtract normal", numeric.NewNatural(5), numeric.NewNatural(3), numeric.NewNatural(2), numeric.Natural.Subtract},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.op(tc.n, tc.m)
			if !got.Equal(tc.want) {
				t.Errorf("got %s, want %s", got.Show(), tc.want.Show())
			}
		})
	}
}

func TestNaturalEqualIgnoresAllocation(t *testing.T) {
	a, ok := numeric.NaturalFromString("123456789012345678901234567890")
	if !ok {
		t.Fatal("failed to parse")
	}
	b, ok := numeric.NaturalFromString("123456789012345678901234567890")
	if !ok {
		t.Fatal("failed to parse")
	}
	if !a.Equal(b) {
		t.Error("two independently-parsed Naturals with the same digits should be Equal")
	}
}

func TestNaturalFromStringRejectsNegative(t *testing.T) {
	if _, ok := numeric.NaturalFromString("-1"); ok {
		t.Error("NaturalFromString should reject a negative digit string")
	}
}

func TestNaturalIsZeroEven(t *testing.T) {
	if !numeric.NaturalZero().IsZero() {
		t.Error("NaturalZero should be zero")
	}
	if !numeric.NewNatural(4).Even() {
		t.Error("4 should be even")
	}
	if numeric.NewNatural(5).Even() {
		t.Error("5 should not be even")
	}
}

func TestNaturalPredSucc(t *testing.T) {
	n := numeric.NewNatural(5)
	if !n.Succ().Pred().Equal(n) {
		t.Error("Succ then Pred should round-trip")
	}
}

func TestNaturalUint64(t *testing.T) {
	v, ok := numeric.NewNatural(42).Uint64()
	if !ok || v != 42 {
		t.Errorf("got (%d, %v), want (42, true)", v, ok)
	}

	huge, _ := numeric.NaturalFromString("999999999999999999999999999999")
	if _, ok := huge.Uint64(); ok {
		t.Error("a Natural wider than 64 bits should not fit in a uint64")
	}
}

func TestIntegerShow(t *testing.T) {
	tests := []struct {
		i    numeric.Integer
		want string
	}{
		{numeric.NewInteger(42), "+42"},
		{numeric.NewInteger(0), "+0"},
		{numeric.NewInteger(-42), "-42"},
	}
	for _, tc := range tests {
		if got := tc.i.Show(); got != tc.want {
			t.Errorf("Show() = %q, want %q", got, tc.want)
		}
	}
}

func TestIntegerEqualIgnoresAllocation(t *testing.T) {
	a, _ := numeric.IntegerFromString("-987654321987654321987654321")
	b, _ := numeric.IntegerFromString("-987654321987654321987654321")
	if !a.Equal(b) {
		t.Error("two independently-parsed Integers with the same value should be Equal")
	}
}

func TestIntegerToDouble(t *testing.T) {
	got := numeric.NewInteger(42).ToDouble()
	want := numeric.NewDouble(42.0)
	if !got.Equal(want) {
		t.Errorf("ToDouble() = %v, want %v", got.Float64(), want.Float64())
	}
}

func TestDoubleShow(t *testing.T) {
	tests := []struct {
		name string
		d    numeric.Double
		want string
	}{
		{"integral value gets a trailing .0", numeric.NewDouble(42), "42.0"},
		{"non-integral value keeps its decimal point", numeric.NewDouble(3.5), "3.5"},
		{"NaN", numeric.NewDouble(math.NaN()), "NaN"},
		{"+Inf", numeric.NewDouble(math.Inf(1)), "Infinity"},
		{"-Inf", numeric.NewDouble(math.Inf(-1)), "-Infinity"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.d.Show(); got != tc.want {
				t.Errorf("Show() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDoubleEqualIsBitwise(t *testing.T) {
	nan1 := numeric.NewDouble(math.NaN())
	nan2 := numeric.NewDouble(math.NaN())
	if !nan1.Equal(nan2) {
		t.Error("two NaN Doubles should be Equal, unlike float64's own == on NaN")
	}

	if numeric.NewDouble(0).Equal(numeric.NewDouble(math.Copysign(0, -1))) {
		t.Error("+0.0 and -0.0 have distinct bit patterns and should not be Equal")
	}
}

func TestDoubleFromDecimalStringRoundTrip(t *testing.T) {
	d, ok := numeric.DoubleFromDecimalString("3.5")
	if !ok {
		t.Fatal("failed to parse")
	}
	if d.Float64() != 3.5 {
		t.Errorf("Float64() = %v, want 3.5", d.Float64())
	}
}

func TestDoubleFromDecimalStringRejectsGarbage(t *testing.T) {
	if _, ok := numeric.DoubleFromDecimalString("not-a-number"); ok {
		t.Error("DoubleFromDecimalString should reject a non-numeric string")
	}
}
