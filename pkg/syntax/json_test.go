package syntax_test

import (
	"math"
	"testing"

	"github.com/dhall-core/evalcore/internal/testutil"
	"github.com/dhall-core/evalcore/pkg/numeric"
	"github.com/dhall-core/evalcore/pkg/syntax"
)

func roundTrip(t *testing.T, e syntax.Expr) syntax.Expr {
	t.Helper()
	data, err := syntax.ExprToJSON(e)
	if err != nil {
		t.Fatalf("ExprToJSON: %v", err)
	}
	got, err := syntax.ExprFromJSON(data)
	if err != nil {
		t.Fatalf("ExprFromJSON: %v", err)
	}
	return got
}

func TestExprJSONRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		expr syntax.Expr
	}{
		{"Const", syntax.Const{Universe: syntax.UType}},
		{"Var", syntax.Var{Name: "x", Index: 2}},
		{"Lam", syntax.Lam{Name: "x", Type: syntax.Builtin{Name: syntax.BNatural}, Body: syntax.Var{Name: "x"}}},
		{"Pi", syntax.Pi{Name: "_", Type: syntax.Builtin{Name: syntax.BBool}, Body: syntax.Builtin{Name: syntax.BBool}}},
		{"App", syntax.App{Fn: syntax.Var{Name: "f"}, Arg: syntax.Var{Name: "x"}}},
		{
			"Let",
			syntax.Let{
				Name: "x", Annotation: syntax.Builtin{Name: syntax.BNatural},
				Value: syntax.NaturalLit{Value: numeric.NewNatural(1)}, Body: syntax.Var{Name: "x"},
			},
		},
		{"Annot", syntax.Annot{Expr: syntax.BoolLit{Value: true}, Type: syntax.Builtin{Name: syntax.BBool}}},
		{"BoolLit", syntax.BoolLit{Value: true}},
		{"NaturalLit large", syntax.NaturalLit{Value: numeric.NewNatural(123456789)}},
		{"IntegerLit negative", syntax.IntegerLit{Value: numeric.NewInteger(-42)}},
		{"DoubleLit finite", syntax.DoubleLit{Value: numeric.NewDouble(3.5)}},
		{"DoubleLit NaN", syntax.DoubleLit{Value: numeric.NewDouble(math.NaN())}},
		{"DoubleLit +Inf", syntax.DoubleLit{Value: numeric.NewDouble(math.Inf(1))}},
		{"DoubleLit -Inf", syntax.DoubleLit{Value: numeric.NewDouble(math.Inf(-1))}},
		{
			"TextLit with chunk",
			syntax.TextLit{
				Chunks: []syntax.TextChunk{{Prefix: "hello ", Expr: syntax.Var{Name: "name"}}},
				Suffix: "!",
			},
		},
		{
			"Operator",
			syntax.Operator{Op: syntax.OpNaturalPlus, Left: syntax.NaturalLit{Value: numeric.NewNatural(1)}, Right: syntax.NaturalLit{Value: numeric.NewNatural(2)}},
		},
		{"If", syntax.If{Cond: syntax.BoolLit{Value: true}, Then: syntax.NaturalLit{Value: numeric.NewNatural(1)}, Else: syntax.NaturalLit{Value: numeric.NewNatural(2)}}},
		{"Some", syntax.SomeExpr{Value: syntax.BoolLit{Value: true}}},
		{
			"ListLit",
			syntax.ListLit{
				Type:     syntax.Builtin{Name: syntax.BNatural},
				Elements: []syntax.Expr{syntax.NaturalLit{Value: numeric.NewNatural(1)}, syntax.NaturalLit{Value: numeric.NewNatural(2)}},
			},
		},
		{
			"RecordType",
			syntax.RecordType{Fields: []syntax.RecordTypeField{{Label: "a", Type: syntax.Builtin{Name: syntax.BBool}}}},
		},
		{
			"RecordLit",
			syntax.RecordLit{Fields: []syntax.RecordLitField{{Label: "a", Value: syntax.BoolLit{Value: false}}}},
		},
		{
			"UnionType",
			syntax.UnionType{Alternatives: []syntax.UnionAlt{{Label: "A", Type: syntax.Builtin{Name: syntax.BBool}}, {Label: "B"}}},
		},
		{
			"Merge",
			syntax.Merge{Handlers: syntax.RecordLit{}, Union: syntax.Var{Name: "u"}, Annotation: syntax.Builtin{Name: syntax.BBool}},
		},
		{"ToMap", syntax.ToMap{Record: syntax.Var{Name: "r"}, Annotation: nil}},
		{"Field", syntax.Field{Record: syntax.Var{Name: "r"}, Label: "a"}},
		{
			"Project by labels",
			syntax.Project{Record: syntax.Var{Name: "r"}, Selector: syntax.ProjectSelector{Labels: []string{"a", "b"}}},
		},
		{
			"Project by type",
			syntax.Project{Record: syntax.Var{Name: "r"}, Selector: syntax.ProjectSelector{Type: syntax.RecordType{}}},
		},
		{"Combine", syntax.Combine{Left: syntax.Var{Name: "l"}, Right: syntax.Var{Name: "r"}}},
		{"CombineTypes", syntax.CombineTypes{Left: syntax.Var{Name: "l"}, Right: syntax.Var{Name: "r"}}},
		{"Prefer", syntax.Prefer{Left: syntax.Var{Name: "l"}, Right: syntax.Var{Name: "r"}}},
		{"RecordCompletion", syntax.RecordCompletion{Type: syntax.Var{Name: "T"}, Record: syntax.Var{Name: "r"}}},
		{"Assert", syntax.Assert{Annotation: syntax.Equivalent{Left: syntax.Var{Name: "a"}, Right: syntax.Var{Name: "b"}}}},
		{"Equivalent", syntax.Equivalent{Left: syntax.Var{Name: "a"}, Right: syntax.Var{Name: "b"}}},
		{"ImportAlt", syntax.ImportAlt{Primary: syntax.Var{Name: "a"}, Fallback: syntax.Var{Name: "b"}}},
		{
			"Note",
			syntax.Note{
				Span: syntax.Span{File: "f.dhall", StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 9},
				Expr: syntax.BoolLit{Value: true},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := roundTrip(t, tc.expr)
			if !testutil.ExprEqual(got, tc.expr) {
				t.Errorf("round trip mismatch:\n got  %#v\n want %#v", got, tc.expr)
			}
		})
	}
}

func TestExprJSONRoundTripDoubleBitwise(t *testing.T) {
	// A dedicated pin for the NaN case on top of the general ExprEqual
	// coverage above: math.NaN() compares unequal to itself with ==, so
	// this asserts specifically that the round trip recovers the same bit
	// pattern (Double.Equal), not just "some Double came back".
	original := syntax.DoubleLit{Value: numeric.NewDouble(math.NaN())}
	got := roundTrip(t, original)
	gotLit, ok := got.(syntax.DoubleLit)
	if !ok {
		t.Fatalf("got %T, want syntax.DoubleLit", got)
	}
	if !gotLit.Value.Equal(original.Value) {
		t.Errorf("NaN did not round-trip bitwise: got %v, want %v", gotLit.Value.Float64(), original.Value.Float64())
	}
}

func TestExprFromJSONUnknownKind(t *testing.T) {
	_, err := syntax.ExprFromJSON([]byte(`{"kind":"NotARealKind"}`))
	if err == nil {
		t.Fatal("expected an error for an unknown kind, got nil")
	}
}

func TestExprFromJSONMalformedNaturalLit(t *testing.T) {
	_, err := syntax.ExprFromJSON([]byte(`{"kind":"NaturalLit","value":"not-a-number"}`))
	if err == nil {
		t.Fatal("expected an error for a malformed NaturalLit, got nil")
	}
}

func TestExprJSONNil(t *testing.T) {
	data, err := syntax.ExprToJSON(nil)
	if err != nil {
		t.Fatalf("ExprToJSON(nil): %v", err)
	}
	got, err := syntax.ExprFromJSON(data)
	if err != nil {
		t.Fatalf("ExprFromJSON: %v", err)
	}
	if got != nil {
		t.Errorf("round-tripping nil should stay nil, got %#v", got)
	}
}
