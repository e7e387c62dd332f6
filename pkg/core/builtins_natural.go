package core

import (
	"github.com/dhall-core/evalcore/pkg/numeric"
	"github.com/dhall-core/evalcore/pkg/syntax"
	"github.com/dhall-core/evalcore/pkg/values"
)

func reduceNaturalPlus(l, r values.Val) values.Val {
	ln, lok := l.(values.VNatural)
	rn, rok := r.(values.VNatural)
	switch {
	case lok && rok:
		return values.VNatural{Value: ln.Value.Add(rn.Value)}
	case lok && ln.Value.IsZero():
		return r
	case rok && rn.Value.IsZero():
		return l
	default:
		return values.VOperator{Op: syntax.OpNaturalPlus, Left: l, Right: r}
	}
}

func reduceNaturalTimes(l, r values.Val) values.Val {
	ln, lok := l.(values.VNatural)
	rn, rok := r.(values.VNatural)
	switch {
	case lok && rok:
		return values.VNatural{Value: ln.Value.Mul(rn.Value)}
	case lok && ln.Value.IsZero():
		return values.VNatural{Value: numeric.NaturalZero()}
	case rok && rn.Value.IsZero():
		return values.VNatural{Value: numeric.NaturalZero()}
	case lok && ln.Value.Equal(numeric.NaturalOne()):
		return r
	case rok && rn.Value.Equal(numeric.NaturalOne()):
		return l
	default:
		return values.VOperator{Op: syntax.OpNaturalTimes, Left: l, Right: r}
	}
}

func reduceNaturalIsZero(n values.Val) values.Val {
	if nv, ok := n.(values.VNatural); ok {
		return values.VBool{Value: nv.Value.IsZero()}
	}
	return rebuildApp(syntax.BNaturalIsZero, []values.Val{n})
}

func reduceNaturalEven(n values.Val) values.Val {
	if nv, ok := n.(values.VNatural); ok {
		return values.VBool{Value: nv.Value.Even()}
	}
	return rebuildApp(syntax.BNaturalEven, []values.Val{n})
}

func reduceNaturalOdd(n values.Val) values.Val {
	if nv, ok := n.(values.VNatural); ok {
		return values.VBool{Value: !nv.Value.Even()}
	}
	return rebuildApp(syntax.BNaturalOdd, []values.Val{n})
}

func reduceNaturalToInteger(n values.Val) values.Val {
	if nv, ok := n.(values.VNatural); ok {
		return values.VInteger{Value: nv.Value.ToInteger()}
	}
	return rebuildApp(syntax.BNaturalToInteger, []values.Val{n})
}

func reduceNaturalShow(n values.Val) values.Val {
	if nv, ok := n.(values.VNatural); ok {
		return values.VTextLit{Suffix: nv.Value.Show()}
	}
	return rebuildApp(syntax.BNaturalShow, []values.Val{n})
}

// reduceNaturalSubtract implements Natural/subtract, including the two
// special identities that hold regardless of whether the other operand is
// concrete: subtracting 0 is the identity (Natural/subtract 0 n = n, even
// for a neutral n), and subtracting from itself is always 0.
func reduceNaturalSubtract(x, y values.Val) values.Val {
	xv, xok := x.(values.VNatural)
	if xok && xv.Value.IsZero() {
		return y
	}
	yv, yok := y.(values.VNatural)
	if xok && yok {
		return values.VNatural{Value: yv.Value.Subtract(xv.Value)}
	}
	if yok && yv.Value.IsZero() {
		return values.VNatural{Value: numeric.NaturalZero()}
	}
	if conv(0, x, y) {
		return values.VNatural{Value: numeric.NaturalZero()}
	}
	return rebuildApp(syntax.BNaturalSubtract, []values.Val{x, y})
}

// reduceNaturalFold implements the Scott-style recursion principle for
// Natural directly on a concrete VNatural; a neutral argument rebuilds the
// stuck application, since there is no finite unrolling to perform.
func reduceNaturalFold(tr *tracker, n, typ, succ, zero values.Val) values.Val {
	nv, ok := n.(values.VNatural)
	if !ok {
		return rebuildApp(syntax.BNaturalFold, []values.Val{n, typ, succ, zero})
	}
	acc := zero
	count, fits := nv.Value.Uint64()
	if !fits {
		panicInternal("Natural/fold: count %s too large to unroll", nv.Value.Show())
	}
	for i := uint64(0); i < count; i++ {
		tr.step()
		acc = apply(tr, succ, acc)
	}
	return acc
}

// reduceNaturalBuild applies g directly to the Scott-encoded Natural
// constructors (Natural, succ, zero), which is always a correct (if not
// maximally fused) reduction for a well-typed g: see DESIGN.md's note on
// choosing eager expansion over staged build/fold fusion.
func reduceNaturalBuild(tr *tracker, g values.Val) values.Val {
	succ := values.VLam{
		Info: values.InfoTyped{Name: "n", Type: values.VBuiltin{Name: syntax.BNatural}},
		Fn: func(n values.Val) values.Val {
			return reduceNaturalPlus(n, values.VNatural{Value: numeric.NewNatural(1)})
		},
	}
	zero := values.VNatural{Value: numeric.NaturalZero()}
	return apply(tr, apply(tr, apply(tr, g, values.VBuiltin{Name: syntax.BNatural}), succ), zero)
}
