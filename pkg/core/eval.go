// Package core implements the evaluation core: eval (Expr+Env -> Val),
// conv (judgmental equality of two Vals), quote (Val -> beta-normal Expr),
// and alphaNormalize, composed by Normalize into the single pure function
// Expr -> Expr this module exists to provide.
package core

import (
	"github.com/dhall-core/evalcore/pkg/syntax"
	"github.com/dhall-core/evalcore/pkg/values"
)

// Normalize reduces e to its beta-normal, alpha-normal form. It is total
// over well-typed input: an ill-typed term can make it return an
// InternalError, but it never hangs given a well-typed, well-founded
// (non-recursive, per the language's lack of general recursion) term.
func Normalize(e syntax.Expr, limits Limits) (result syntax.Expr, err error) {
	defer recoverInternal(&err)
	tr := newTracker(limits)
	v := eval(tr, values.Empty, e)
	nf := quote(tr, nil, v)
	return alphaNormalize(nf), nil
}

// NormalizeTraced is Normalize with an optional trace hook invoked at the
// start and end of each major phase.
func NormalizeTraced(e syntax.Expr, limits Limits, tr Tracer) (result syntax.Expr, err error) {
	defer recoverInternal(&err)
	st := newTracker(limits)
	emit(tr, TraceEvalStart, "")
	v := eval(st, values.Empty, e)
	emit(tr, TraceEvalEnd, "")
	emit(tr, TraceQuoteStart, "")
	nf := quote(st, nil, v)
	emit(tr, TraceQuoteEnd, "")
	emit(tr, TraceAlphaStart, "")
	result = alphaNormalize(nf)
	emit(tr, TraceAlphaEnd, "")
	return result, nil
}

// JudgmentallyEqual decides whether a and b are definitionally equal:
// both evaluated under the empty environment, then compared with conv at
// level 0. This is the other half of the module's public surface
// alongside Normalize, for callers that only need a yes/no answer (an
// assert's annotation, a caller probing two configs for equivalence)
// without paying for a full round-trip back through quote.
func JudgmentallyEqual(a, b syntax.Expr, limits Limits) (result bool, err error) {
	defer recoverInternal(&err)
	tr := newTracker(limits)
	av := eval(tr, values.Empty, a)
	bv := eval(tr, values.Empty, b)
	return conv(0, av, bv), nil
}

// JudgmentallyEqualTraced is JudgmentallyEqual with an optional trace hook
// invoked at the start and end of each major phase.
func JudgmentallyEqualTraced(a, b syntax.Expr, limits Limits, tr Tracer) (result bool, err error) {
	defer recoverInternal(&err)
	st := newTracker(limits)
	emit(tr, TraceEvalStart, "")
	av := eval(st, values.Empty, a)
	bv := eval(st, values.Empty, b)
	emit(tr, TraceEvalEnd, "")
	emit(tr, TraceConvStart, "")
	result = conv(0, av, bv)
	emit(tr, TraceConvEnd, "")
	return result, nil
}

// eval reduces e under env to a Val, recursing into subterms eagerly except
// under binders, where it builds a host closure instead of eval'ing the
// body immediately (normal-order evaluation restricted to what the binder
// actually demands, matching the teacher's "don't do work you might not
// need" evalExpr discipline but for substitution rather than I/O).
func eval(tr *tracker, env *values.Env, e syntax.Expr) values.Val {
	tr.step()
	switch n := syntax.Denote(e).(type) {
	case syntax.Const:
		return values.VConst{Universe: n.Universe}

	case syntax.Builtin:
		return evalBuiltinRef(tr, n.Name)

	case syntax.Var:
		return values.Lookup(env, n.Name, n.Index)

	case syntax.Lam:
		typ := eval(tr, env, n.Type)
		return values.VLam{
			Info: values.InfoTyped{Name: n.Name, Type: typ},
			Fn: func(arg values.Val) values.Val {
				return eval(tr, values.Extend(env, n.Name, arg), n.Body)
			},
		}

	case syntax.Pi:
		dom := eval(tr, env, n.Type)
		return values.VPi{
			Name:   n.Name,
			Domain: dom,
			Codomain: func(arg values.Val) values.Val {
				return eval(tr, values.Extend(env, n.Name, arg), n.Body)
			},
		}

	case syntax.App:
		return apply(tr, eval(tr, env, n.Fn), eval(tr, env, n.Arg))

	case syntax.Let:
		val := eval(tr, env, n.Value)
		return eval(tr, values.Extend(env, n.Name, val), n.Body)

	case syntax.Annot:
		return eval(tr, env, n.Expr)

	case syntax.BoolLit:
		return values.VBool{Value: n.Value}

	case syntax.NaturalLit:
		return values.VNatural{Value: n.Value}

	case syntax.IntegerLit:
		return values.VInteger{Value: n.Value}

	case syntax.DoubleLit:
		return values.VDouble{Value: n.Value}

	case syntax.TextLit:
		return evalTextLit(tr, env, n)

	case syntax.Operator:
		return evalOperator(tr, n.Op, eval(tr, env, n.Left), eval(tr, env, n.Right))

	case syntax.If:
		return evalIf(eval(tr, env, n.Cond), tr, env, n.Then, n.Else)

	case syntax.SomeExpr:
		return values.VSome{Value: eval(tr, env, n.Value)}

	case syntax.ListLit:
		elems := make([]values.Val, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = eval(tr, env, el)
		}
		var elemType values.Val
		if n.Type != nil {
			elemType = eval(tr, env, n.Type)
		}
		return values.VList{ElemType: elemType, Elements: elems}

	case syntax.RecordType:
		return evalRecordType(tr, env, n)

	case syntax.RecordLit:
		return evalRecordLit(tr, env, n)

	case syntax.UnionType:
		return evalUnionType(tr, env, n)

	case syntax.Merge:
		handlers := eval(tr, env, n.Handlers)
		union := eval(tr, env, n.Union)
		return evalMerge(tr, handlers, union)

	case syntax.ToMap:
		record := eval(tr, env, n.Record)
		var typ values.Val
		if n.Annotation != nil {
			typ = eval(tr, env, n.Annotation)
		}
		return evalToMap(record, typ)

	case syntax.Field:
		return reduceField(eval(tr, env, n.Record), n.Label)

	case syntax.Project:
		return evalProject(tr, env, n)

	case syntax.Combine:
		return reduceCombine(eval(tr, env, n.Left), eval(tr, env, n.Right))

	case syntax.CombineTypes:
		return reduceCombineTypes(eval(tr, env, n.Left), eval(tr, env, n.Right))

	case syntax.Prefer:
		return reducePrefer(eval(tr, env, n.Left), eval(tr, env, n.Right))

	case syntax.RecordCompletion:
		return evalRecordCompletion(tr, env, n)

	case syntax.Assert:
		return values.VAssert{Type: eval(tr, env, n.Annotation)}

	case syntax.Equivalent:
		return values.VEquivalent{Left: eval(tr, env, n.Left), Right: eval(tr, env, n.Right)}

	case syntax.ImportAlt:
		return eval(tr, env, n.Primary)

	case syntax.Embed:
		panicInternal("Embed reached the evaluation core unresolved; imports must be resolved before Normalize")
		panic("unreachable")

	default:
		panicInternal("eval: unhandled expression node %T", n)
		panic("unreachable")
	}
}

func evalIf(cond values.Val, tr *tracker, env *values.Env, thenE, elseE syntax.Expr) values.Val {
	then := eval(tr, env, thenE)
	els := eval(tr, env, elseE)
	return reduceIf(cond, then, els)
}

// apply applies fn to arg, reducing immediately when fn is a host lambda
// and leaving a stuck VApp otherwise (fn neutral, or a VBuiltin that has
// no case to reduce on because it takes no arguments at all).
func apply(tr *tracker, fn, arg values.Val) values.Val {
	tr.step()
	switch f := fn.(type) {
	case values.VLam:
		return f.Fn(arg)
	case values.VBuiltin:
		if f.Name == syntax.BNone {
			return values.VNone{Type: arg}
		}
		return values.VApp{Fn: fn, Arg: arg}
	default:
		return values.VApp{Fn: fn, Arg: arg}
	}
}
