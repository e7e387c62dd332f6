package core

import "github.com/dhall-core/evalcore/pkg/syntax"

// alphaNormalize rewrites every bound-variable name in e to "_", the same
// canonical renaming real Dhall implementations use so that two terms
// differing only in binder spelling produce byte-identical normal forms.
// names tracks, from outermost to innermost, the *original* name each
// currently-open binder carried, used only to resolve a Var's
// name-stratified (name, index) pair to the position its new "_"-named
// index must count from — generalizing the fresh-name bookkeeping
// smasher164-tapl's ContextString uses for display into bookkeeping for
// a canonical rewrite.
func alphaNormalize(e syntax.Expr) syntax.Expr {
	return alphaWalk(nil, e)
}

// resolveAlphaIndex finds how many binders separate the use site from the
// (name, index) pair's target, counting every intervening binder
// regardless of name — exactly the index that target would have once
// every binder is renamed to the same "_".
func resolveAlphaIndex(names []string, name string, index int) int {
	matched := 0
	for i := len(names) - 1; i >= 0; i-- {
		if names[i] == name {
			if matched == index {
				return len(names) - 1 - i
			}
			matched++
		}
	}
	panicInternal("alphaNormalize: unresolved variable %s@%d", name, index)
	panic("unreachable")
}

func alphaWalk(names []string, e syntax.Expr) syntax.Expr {
	switch n := syntax.Denote(e).(type) {
	case syntax.Const:
		return n

	case syntax.Builtin:
		return n

	case syntax.Var:
		return syntax.Var{Name: "_", Index: resolveAlphaIndex(names, n.Name, n.Index)}

	case syntax.Lam:
		return syntax.Lam{
			Name: "_",
			Type: alphaWalk(names, n.Type),
			Body: alphaWalk(append(names, n.Name), n.Body),
		}

	case syntax.Pi:
		return syntax.Pi{
			Name: "_",
			Type: alphaWalk(names, n.Type),
			Body: alphaWalk(append(names, n.Name), n.Body),
		}

	case syntax.App:
		return syntax.App{Fn: alphaWalk(names, n.Fn), Arg: alphaWalk(names, n.Arg)}

	case syntax.Let:
		var ann syntax.Expr
		if n.Annotation != nil {
			ann = alphaWalk(names, n.Annotation)
		}
		return syntax.Let{
			Name:       "_",
			Annotation: ann,
			Value:      alphaWalk(names, n.Value),
			Body:       alphaWalk(append(names, n.Name), n.Body),
		}

	case syntax.Annot:
		return syntax.Annot{Expr: alphaWalk(names, n.Expr), Type: alphaWalk(names, n.Type)}

	case syntax.BoolLit, syntax.NaturalLit, syntax.IntegerLit, syntax.DoubleLit:
		return n

	case syntax.TextLit:
		chunks := make([]syntax.TextChunk, len(n.Chunks))
		for i, c := range n.Chunks {
			chunks[i] = syntax.TextChunk{Prefix: c.Prefix, Expr: alphaWalk(names, c.Expr)}
		}
		return syntax.TextLit{Chunks: chunks, Suffix: n.Suffix}

	case syntax.Operator:
		return syntax.Operator{Op: n.Op, Left: alphaWalk(names, n.Left), Right: alphaWalk(names, n.Right)}

	case syntax.If:
		return syntax.If{Cond: alphaWalk(names, n.Cond), Then: alphaWalk(names, n.Then), Else: alphaWalk(names, n.Else)}

	case syntax.SomeExpr:
		return syntax.SomeExpr{Value: alphaWalk(names, n.Value)}

	case syntax.ListLit:
		elems := make([]syntax.Expr, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = alphaWalk(names, el)
		}
		var typ syntax.Expr
		if n.Type != nil {
			typ = alphaWalk(names, n.Type)
		}
		return syntax.ListLit{Type: typ, Elements: elems}

	case syntax.RecordType:
		fields := make([]syntax.RecordTypeField, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = syntax.RecordTypeField{Label: f.Label, Type: alphaWalk(names, f.Type)}
		}
		return syntax.RecordType{Fields: fields}

	case syntax.RecordLit:
		fields := make([]syntax.RecordLitField, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = syntax.RecordLitField{Label: f.Label, Value: alphaWalk(names, f.Value)}
		}
		return syntax.RecordLit{Fields: fields}

	case syntax.UnionType:
		alts := make([]syntax.UnionAlt, len(n.Alternatives))
		for i, a := range n.Alternatives {
			var t syntax.Expr
			if a.Type != nil {
				t = alphaWalk(names, a.Type)
			}
			alts[i] = syntax.UnionAlt{Label: a.Label, Type: t}
		}
		return syntax.UnionType{Alternatives: alts}

	case syntax.Merge:
		var ann syntax.Expr
		if n.Annotation != nil {
			ann = alphaWalk(names, n.Annotation)
		}
		return syntax.Merge{Handlers: alphaWalk(names, n.Handlers), Union: alphaWalk(names, n.Union), Annotation: ann}

	case syntax.ToMap:
		var ann syntax.Expr
		if n.Annotation != nil {
			ann = alphaWalk(names, n.Annotation)
		}
		return syntax.ToMap{Record: alphaWalk(names, n.Record), Annotation: ann}

	case syntax.Field:
		return syntax.Field{Record: alphaWalk(names, n.Record), Label: n.Label}

	case syntax.Project:
		sel := n.Selector
		if sel.Type != nil {
			sel = syntax.ProjectSelector{Type: alphaWalk(names, sel.Type)}
		}
		return syntax.Project{Record: alphaWalk(names, n.Record), Selector: sel}

	case syntax.Combine:
		return syntax.Combine{Left: alphaWalk(names, n.Left), Right: alphaWalk(names, n.Right)}

	case syntax.CombineTypes:
		return syntax.CombineTypes{Left: alphaWalk(names, n.Left), Right: alphaWalk(names, n.Right)}

	case syntax.Prefer:
		return syntax.Prefer{Left: alphaWalk(names, n.Left), Right: alphaWalk(names, n.Right)}

	case syntax.RecordCompletion:
		return syntax.RecordCompletion{Type: alphaWalk(names, n.Type), Record: alphaWalk(names, n.Record)}

	case syntax.Assert:
		return syntax.Assert{Annotation: alphaWalk(names, n.Annotation)}

	case syntax.Equivalent:
		return syntax.Equivalent{Left: alphaWalk(names, n.Left), Right: alphaWalk(names, n.Right)}

	case syntax.ImportAlt:
		return syntax.ImportAlt{Primary: alphaWalk(names, n.Primary), Fallback: alphaWalk(names, n.Fallback)}

	case syntax.Embed:
		return n

	default:
		panicInternal("alphaNormalize: unhandled expression node %T", n)
		panic("unreachable")
	}
}
