package core_test

import (
	"testing"

	"github.com/dhall-core/evalcore/pkg/core"
	"github.com/dhall-core/evalcore/pkg/numeric"
	"github.com/dhall-core/evalcore/pkg/syntax"
)

// TestJudgmentallyEqual exercises the exported public surface alongside
// Normalize: reflexivity, a genuine mismatch, and the eta pair that
// motivated conv's fresh-variable-on-either-side rule.
func TestJudgmentallyEqual(t *testing.T) {
	natural := syntax.Builtin{Name: syntax.BNatural}
	arrow := syntax.Pi{Name: "_", Type: natural, Body: natural}

	// \f : Natural -> Natural. \x : Natural. f x
	etaExpanded := syntax.Lam{
		Name: "f", Type: arrow,
		Body: syntax.Lam{
			Name: "x", Type: natural,
			Body: syntax.App{
				Fn:  syntax.Var{Name: "f", Index: 0},
				Arg: syntax.Var{Name: "x", Index: 0},
			},
		},
	}
	// \f : Natural -> Natural. f
	bare := syntax.Lam{Name: "f", Type: arrow, Body: syntax.Var{Name: "f", Index: 0}}

	ok, err := core.JudgmentallyEqual(etaExpanded, bare, core.Limits{})
	if err != nil {
		t.Fatalf("JudgmentallyEqual: %v", err)
	}
	if !ok {
		t.Error("\\f. \\x. f x should be judgmentally equal to \\f. f")
	}

	ok, err = core.JudgmentallyEqual(
		syntax.NaturalLit{Value: numeric.NewNatural(1)},
		syntax.NaturalLit{Value: numeric.NewNatural(2)},
		core.Limits{},
	)
	if err != nil {
		t.Fatalf("JudgmentallyEqual: %v", err)
	}
	if ok {
		t.Error("1 and 2 should not be judgmentally equal")
	}

	ok, err = core.JudgmentallyEqual(
		syntax.NaturalLit{Value: numeric.NewNatural(3)},
		syntax.NaturalLit{Value: numeric.NewNatural(3)},
		core.Limits{},
	)
	if err != nil {
		t.Fatalf("JudgmentallyEqual: %v", err)
	}
	if !ok {
		t.Error("a term should be judgmentally equal to itself")
	}
}
