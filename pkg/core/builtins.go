package core

import (
	"github.com/dhall-core/evalcore/pkg/syntax"
	"github.com/dhall-core/evalcore/pkg/values"
)

// evalBuiltinRef turns a bare builtin reference into its Val: a nullary
// type former (Bool, Natural, List, ...) becomes a VBuiltin directly, and
// anything with a nonzero arity (Natural/fold, List/build, ...) becomes a
// chain of host closures that accumulate arguments until the builtin's
// full arity is met, at which point reduceBuiltin fires.
func evalBuiltinRef(tr *tracker, name syntax.BuiltinName) values.Val {
	arity, ok := syntax.BuiltinArity[name]
	if !ok || arity == 0 {
		return values.VBuiltin{Name: name}
	}
	return curriedBuiltin(tr, name, arity, nil)
}

func curriedBuiltin(tr *tracker, name syntax.BuiltinName, arity int, collected []values.Val) values.Val {
	return values.VLam{
		Info: values.InfoBuiltinPartial{Name: name, Arity: arity, Collected: collected},
		Fn: func(arg values.Val) values.Val {
			args := append(append([]values.Val{}, collected...), arg)
			if len(args) == arity {
				return reduceBuiltin(tr, name, args)
			}
			return curriedBuiltin(tr, name, arity, args)
		},
	}
}

// reduceBuiltin dispatches a fully-applied builtin to its family's reducer.
// Each reducer is total over well-typed arguments: it either produces a
// canonical Val or, when an argument is neutral and no reduction rule
// applies yet, a VApp spine rebuilding the original application so the
// result stays a faithful stuck term.
func reduceBuiltin(tr *tracker, name syntax.BuiltinName, args []values.Val) values.Val {
	switch name {
	case syntax.BNaturalFold:
		return reduceNaturalFold(tr, args[0], args[1], args[2], args[3])
	case syntax.BNaturalBuild:
		return reduceNaturalBuild(tr, args[0])
	case syntax.BNaturalIsZero:
		return reduceNaturalIsZero(args[0])
	case syntax.BNaturalEven:
		return reduceNaturalEven(args[0])
	case syntax.BNaturalOdd:
		return reduceNaturalOdd(args[0])
	case syntax.BNaturalToInteger:
		return reduceNaturalToInteger(args[0])
	case syntax.BNaturalShow:
		return reduceNaturalShow(args[0])
	case syntax.BNaturalSubtract:
		return reduceNaturalSubtract(args[0], args[1])
	case syntax.BIntegerShow:
		return reduceIntegerShow(args[0])
	case syntax.BIntegerToDouble:
		return reduceIntegerToDouble(args[0])
	case syntax.BDoubleShow:
		return reduceDoubleShow(args[0])
	case syntax.BTextShow:
		return reduceTextShow(args[0])
	case syntax.BListBuild:
		return reduceListBuild(tr, args[0], args[1])
	case syntax.BListFold:
		return reduceListFold(tr, args[0], args[1], args[2], args[3], args[4])
	case syntax.BListLength:
		return reduceListLength(args[0], args[1])
	case syntax.BListHead:
		return reduceListHead(args[0], args[1])
	case syntax.BListLast:
		return reduceListLast(args[0], args[1])
	case syntax.BListIndexed:
		return reduceListIndexed(args[0], args[1])
	case syntax.BListReverse:
		return reduceListReverse(args[0], args[1])
	case syntax.BOptionalFold:
		return reduceOptionalFold(tr, args[0], args[1], args[2], args[3], args[4])
	case syntax.BOptionalBuild:
		return reduceOptionalBuild(tr, args[0], args[1])
	default:
		panicInternal("reduceBuiltin: unhandled builtin %s", name)
		panic("unreachable")
	}
}

// evalOperator dispatches a binary operator to its family's reducer.
func evalOperator(tr *tracker, op syntax.OpKind, l, r values.Val) values.Val {
	switch op {
	case syntax.OpBoolAnd:
		return reduceBoolAnd(l, r)
	case syntax.OpBoolOr:
		return reduceBoolOr(l, r)
	case syntax.OpBoolEQ:
		return reduceBoolEQ(l, r)
	case syntax.OpBoolNE:
		return reduceBoolNE(l, r)
	case syntax.OpNaturalPlus:
		return reduceNaturalPlus(l, r)
	case syntax.OpNaturalTimes:
		return reduceNaturalTimes(l, r)
	case syntax.OpTextAppend:
		return reduceTextAppend(tr, l, r)
	case syntax.OpListAppend:
		return reduceListAppend(l, r)
	default:
		panicInternal("evalOperator: unhandled operator %s", op)
		panic("unreachable")
	}
}

// rebuildApp re-forms the stuck application spine name(args...) when a
// reducer finds its leading argument(s) neutral and has no rule to fire.
func rebuildApp(name syntax.BuiltinName, args []values.Val) values.Val {
	var result values.Val = values.VBuiltin{Name: name}
	for _, a := range args {
		result = values.VApp{Fn: result, Arg: a}
	}
	return result
}
