package core

import (
	"testing"

	"github.com/dhall-core/evalcore/pkg/numeric"
	"github.com/dhall-core/evalcore/pkg/syntax"
	"github.com/dhall-core/evalcore/pkg/values"
)

// These are white-box tests against conv/quote/alphaNormalize directly,
// bypassing eval, mirroring the teacher's preference for an internal
// package _test.go when the functions under test are unexported
// (pkg/lexer/lexer_test.go is package lexer for the same reason).

func TestConvVVarLevel(t *testing.T) {
	a := values.VVar{Name: "x", Level: 3}
	b := values.VVar{Name: "x", Level: 3}
	c := values.VVar{Name: "x", Level: 4}

	if !conv(0, a, b) {
		t.Error("two VVars at the same level should be conv-equal")
	}
	if conv(0, a, c) {
		t.Error("VVars at different levels should not be conv-equal")
	}
}

func TestConvNaturalIgnoresAllocation(t *testing.T) {
	a, _ := numeric.NaturalFromString("999999999999999999999")
	b, _ := numeric.NaturalFromString("999999999999999999999")
	if !conv(0, values.VNatural{Value: a}, values.VNatural{Value: b}) {
		t.Error("two independently-parsed Naturals with the same value should be conv-equal")
	}
}

func TestConvMismatchedTypes(t *testing.T) {
	if conv(0, values.VBool{Value: true}, values.VNatural{Value: numeric.NewNatural(1)}) {
		t.Error("values of different Val kinds should never be conv-equal")
	}
}

// TestConvEta checks that conv recognizes eta pairs in both directions: a
// VLam wrapping f x compares equal to the bare neutral f, regardless of
// which side carries the literal VLam, as long as f doesn't mention x.
func TestConvEta(t *testing.T) {
	f := values.VVar{Name: "f", Level: 0}
	etaExpanded := values.VLam{
		Info: values.InfoTyped{Name: "x", Type: values.VBuiltin{Name: syntax.BNatural}},
		Fn:   func(x values.Val) values.Val { return values.VApp{Fn: f, Arg: x} },
	}

	if !conv(1, etaExpanded, f) {
		t.Error("λx. f x should be conv-equal to f (VLam on the left)")
	}
	if !conv(1, f, etaExpanded) {
		t.Error("f should be conv-equal to λx. f x (VLam on the right)")
	}

	g := values.VVar{Name: "g", Level: 1}
	if conv(2, etaExpanded, g) {
		t.Error("λx. f x should not be conv-equal to an unrelated neutral g")
	}
}

// TestConvEtaRejectsPi checks that the eta short-circuit never lets a VLam
// compare equal to a VPi, which the old VLam-only switch handled explicitly
// and the unconditional eta check must preserve.
func TestConvEtaRejectsPi(t *testing.T) {
	lam := values.VLam{
		Info: values.InfoTyped{Name: "x", Type: values.VBuiltin{Name: syntax.BNatural}},
		Fn:   func(v values.Val) values.Val { return v },
	}
	pi := values.VPi{
		Name:     "x",
		Domain:   values.VBuiltin{Name: syntax.BNatural},
		Codomain: func(v values.Val) values.Val { return values.VBuiltin{Name: syntax.BNatural} },
	}
	if conv(0, lam, pi) || conv(0, pi, lam) {
		t.Error("a VLam should never be conv-equal to a VPi")
	}
}

func TestQuoteNatural(t *testing.T) {
	tr := newTracker(Limits{})
	got := quote(tr, nil, values.VNatural{Value: numeric.NewNatural(5)})
	lit, ok := got.(syntax.NaturalLit)
	if !ok || !lit.Value.Equal(numeric.NewNatural(5)) {
		t.Errorf("got %#v, want NaturalLit(5)", got)
	}
}

func TestQuoteLamInfoTyped(t *testing.T) {
	// λx : Natural . x, represented as a host closure the way eval would
	// build it for a surface Lam.
	lam := values.VLam{
		Info: values.InfoTyped{Name: "x", Type: values.VBuiltin{Name: syntax.BNatural}},
		Fn:   func(v values.Val) values.Val { return v },
	}
	tr := newTracker(Limits{})
	got := quote(tr, nil, lam)
	want := syntax.Lam{
		Name: "x",
		Type: syntax.Builtin{Name: syntax.BNatural},
		Body: syntax.Var{Name: "x", Index: 0},
	}
	if got.(syntax.Lam).Name != want.Name ||
		got.(syntax.Lam).Body.(syntax.Var) != want.Body.(syntax.Var) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestQuoteVVarNameStratified(t *testing.T) {
	// Two binders named "x" nested with one "y" in between: quoting a
	// reference to the outer "x" from inside the inner "x"'s body must
	// count only the other "x" binder, not the "y" one.
	ctx := []string{"x", "y", "x"}
	outerX := values.VVar{Name: "x", Level: 0}
	got := quote(newTracker(Limits{}), ctx, outerX)
	want := syntax.Var{Name: "x", Index: 1}
	if got != want {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestAlphaNormalizeRenamesBinder(t *testing.T) {
	in := syntax.Lam{
		Name: "x",
		Type: syntax.Builtin{Name: syntax.BNatural},
		Body: syntax.Var{Name: "x", Index: 0},
	}
	got := alphaNormalize(in)
	want := syntax.Lam{
		Name: "_",
		Type: syntax.Builtin{Name: syntax.BNatural},
		Body: syntax.Var{Name: "_", Index: 0},
	}
	if got.(syntax.Lam).Name != want.Name || got.(syntax.Lam).Body.(syntax.Var) != want.Body.(syntax.Var) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestAlphaNormalizeShadowingIgnoresOtherNames(t *testing.T) {
	// λx : Natural . λy : Natural . λx : Natural . x@1 refers to the
	// outermost x, skipping over the inner x (index 1) and the
	// differently-named y in between (which must not consume an index
	// under the name-stratified source convention but must still count
	// as one more intervening binder once every name becomes "_").
	in := syntax.Lam{
		Name: "x", Type: syntax.Builtin{Name: syntax.BNatural},
		Body: syntax.Lam{
			Name: "y", Type: syntax.Builtin{Name: syntax.BNatural},
			Body: syntax.Lam{
				Name: "x", Type: syntax.Builtin{Name: syntax.BNatural},
				Body: syntax.Var{Name: "x", Index: 1},
			},
		},
	}
	got := alphaNormalize(in)
	innermost := got.(syntax.Lam).Body.(syntax.Lam).Body.(syntax.Lam)
	gotVar := innermost.Body.(syntax.Var)
	wantVar := syntax.Var{Name: "_", Index: 2}
	if gotVar != wantVar {
		t.Errorf("got %#v, want %#v", gotVar, wantVar)
	}
}
