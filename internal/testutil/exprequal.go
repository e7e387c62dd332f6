package testutil

import "github.com/dhall-core/evalcore/pkg/syntax"

// ExprEqual is a structural equality check for syntax.Expr, used throughout
// this module's tests in place of Go's == operator. == is unsafe here: two
// NaturalLit/IntegerLit values wrap independently-allocated *big.Int
// pointers that compare unequal even when they denote the same number, and
// a DoubleLit's numeric.Double embeds an apd.Decimal, which holds a slice
// internally and so panics at runtime under == entirely. ExprEqual compares
// every numeric leaf through its own value-level Equal method instead.
func ExprEqual(a, b syntax.Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case syntax.Const:
		bv, ok := b.(syntax.Const)
		return ok && av.Universe == bv.Universe

	case syntax.Builtin:
		bv, ok := b.(syntax.Builtin)
		return ok && av.Name == bv.Name

	case syntax.Var:
		bv, ok := b.(syntax.Var)
		return ok && av.Name == bv.Name && av.Index == bv.Index

	case syntax.Lam:
		bv, ok := b.(syntax.Lam)
		return ok && av.Name == bv.Name && ExprEqual(av.Type, bv.Type) && ExprEqual(av.Body, bv.Body)

	case syntax.Pi:
		bv, ok := b.(syntax.Pi)
		return ok && av.Name == bv.Name && ExprEqual(av.Type, bv.Type) && ExprEqual(av.Body, bv.Body)

	case syntax.App:
		bv, ok := b.(syntax.App)
		return ok && ExprEqual(av.Fn, bv.Fn) && ExprEqual(av.Arg, bv.Arg)

	case syntax.Let:
		bv, ok := b.(syntax.Let)
		return ok && av.Name == bv.Name &&
			ExprEqual(av.Annotation, bv.Annotation) && ExprEqual(av.Value, bv.Value) && ExprEqual(av.Body, bv.Body)

	case syntax.Annot:
		bv, ok := b.(syntax.Annot)
		return ok && ExprEqual(av.Expr, bv.Expr) && ExprEqual(av.Type, bv.Type)

	case syntax.BoolLit:
		bv, ok := b.(syntax.BoolLit)
		return ok && av.Value == bv.Value

	case syntax.NaturalLit:
		bv, ok := b.(syntax.NaturalLit)
		return ok && av.Value.Equal(bv.Value)

	case syntax.IntegerLit:
		bv, ok := b.(syntax.IntegerLit)
		return ok && av.Value.Equal(bv.Value)

	case syntax.DoubleLit:
		bv, ok := b.(syntax.DoubleLit)
		return ok && av.Value.Equal(bv.Value)

	case syntax.TextLit:
		bv, ok := b.(syntax.TextLit)
		return ok && textLitEqual(av, bv)

	case syntax.Operator:
		bv, ok := b.(syntax.Operator)
		return ok && av.Op == bv.Op && ExprEqual(av.Left, bv.Left) && ExprEqual(av.Right, bv.Right)

	case syntax.If:
		bv, ok := b.(syntax.If)
		return ok && ExprEqual(av.Cond, bv.Cond) && ExprEqual(av.Then, bv.Then) && ExprEqual(av.Else, bv.Else)

	case syntax.SomeExpr:
		bv, ok := b.(syntax.SomeExpr)
		return ok && ExprEqual(av.Value, bv.Value)

	case syntax.ListLit:
		bv, ok := b.(syntax.ListLit)
		if !ok || !ExprEqual(av.Type, bv.Type) || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !ExprEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true

	case syntax.RecordType:
		bv, ok := b.(syntax.RecordType)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i := range av.Fields {
			if av.Fields[i].Label != bv.Fields[i].Label || !ExprEqual(av.Fields[i].Type, bv.Fields[i].Type) {
				return false
			}
		}
		return true

	case syntax.RecordLit:
		bv, ok := b.(syntax.RecordLit)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i := range av.Fields {
			if av.Fields[i].Label != bv.Fields[i].Label || !ExprEqual(av.Fields[i].Value, bv.Fields[i].Value) {
				return false
			}
		}
		return true

	case syntax.UnionType:
		bv, ok := b.(syntax.UnionType)
		if !ok || len(av.Alternatives) != len(bv.Alternatives) {
			return false
		}
		for i := range av.Alternatives {
			if av.Alternatives[i].Label != bv.Alternatives[i].Label ||
				!ExprEqual(av.Alternatives[i].Type, bv.Alternatives[i].Type) {
				return false
			}
		}
		return true

	case syntax.Merge:
		bv, ok := b.(syntax.Merge)
		return ok && ExprEqual(av.Handlers, bv.Handlers) && ExprEqual(av.Union, bv.Union) &&
			ExprEqual(av.Annotation, bv.Annotation)

	case syntax.ToMap:
		bv, ok := b.(syntax.ToMap)
		return ok && ExprEqual(av.Record, bv.Record) && ExprEqual(av.Annotation, bv.Annotation)

	case syntax.Field:
		bv, ok := b.(syntax.Field)
		return ok && av.Label == bv.Label && ExprEqual(av.Record, bv.Record)

	case syntax.Project:
		bv, ok := b.(syntax.Project)
		if !ok || !ExprEqual(av.Record, bv.Record) {
			return false
		}
		return projectSelectorEqual(av.Selector, bv.Selector)

	case syntax.Combine:
		bv, ok := b.(syntax.Combine)
		return ok && ExprEqual(av.Left, bv.Left) && ExprEqual(av.Right, bv.Right)

	case syntax.CombineTypes:
		bv, ok := b.(syntax.CombineTypes)
		return ok && ExprEqual(av.Left, bv.Left) && ExprEqual(av.Right, bv.Right)

	case syntax.Prefer:
		bv, ok := b.(syntax.Prefer)
		return ok && ExprEqual(av.Left, bv.Left) && ExprEqual(av.Right, bv.Right)

	case syntax.RecordCompletion:
		bv, ok := b.(syntax.RecordCompletion)
		return ok && ExprEqual(av.Type, bv.Type) && ExprEqual(av.Record, bv.Record)

	case syntax.Assert:
		bv, ok := b.(syntax.Assert)
		return ok && ExprEqual(av.Annotation, bv.Annotation)

	case syntax.Equivalent:
		bv, ok := b.(syntax.Equivalent)
		return ok && ExprEqual(av.Left, bv.Left) && ExprEqual(av.Right, bv.Right)

	case syntax.ImportAlt:
		bv, ok := b.(syntax.ImportAlt)
		return ok && ExprEqual(av.Primary, bv.Primary) && ExprEqual(av.Fallback, bv.Fallback)

	case syntax.Note:
		bv, ok := b.(syntax.Note)
		return ok && av.Span == bv.Span && ExprEqual(av.Expr, bv.Expr)

	default:
		return false
	}
}

func textLitEqual(a, b syntax.TextLit) bool {
	if len(a.Chunks) != len(b.Chunks) || a.Suffix != b.Suffix {
		return false
	}
	for i := range a.Chunks {
		if a.Chunks[i].Prefix != b.Chunks[i].Prefix || !ExprEqual(a.Chunks[i].Expr, b.Chunks[i].Expr) {
			return false
		}
	}
	return true
}

func projectSelectorEqual(a, b syntax.ProjectSelector) bool {
	if (a.Type == nil) != (b.Type == nil) {
		return false
	}
	if a.Type != nil {
		return ExprEqual(a.Type, b.Type)
	}
	if len(a.Labels) != len(b.Labels) {
		return false
	}
	for i := range a.Labels {
		if a.Labels[i] != b.Labels[i] {
			return false
		}
	}
	return true
}
