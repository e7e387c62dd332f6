package core

import (
	"github.com/dhall-core/evalcore/pkg/syntax"
	"github.com/dhall-core/evalcore/pkg/values"
)

func reduceBoolAnd(l, r values.Val) values.Val {
	if lb, ok := l.(values.VBool); ok {
		if lb.Value {
			return r
		}
		return values.VBool{Value: false}
	}
	if rb, ok := r.(values.VBool); ok {
		if rb.Value {
			return l
		}
		return values.VBool{Value: false}
	}
	if conv(0, l, r) {
		return l
	}
	return values.VOperator{Op: syntax.OpBoolAnd, Left: l, Right: r}
}

func reduceBoolOr(l, r values.Val) values.Val {
	if lb, ok := l.(values.VBool); ok {
		if lb.Value {
			return values.VBool{Value: true}
		}
		return r
	}
	if rb, ok := r.(values.VBool); ok {
		if rb.Value {
			return values.VBool{Value: true}
		}
		return l
	}
	if conv(0, l, r) {
		return l
	}
	return values.VOperator{Op: syntax.OpBoolOr, Left: l, Right: r}
}

func reduceBoolEQ(l, r values.Val) values.Val {
	if lb, ok := l.(values.VBool); ok {
		if rb, ok := r.(values.VBool); ok {
			return values.VBool{Value: lb.Value == rb.Value}
		}
	}
	if conv(0, l, r) {
		return values.VBool{Value: true}
	}
	return values.VOperator{Op: syntax.OpBoolEQ, Left: l, Right: r}
}

func reduceBoolNE(l, r values.Val) values.Val {
	if lb, ok := l.(values.VBool); ok {
		if rb, ok := r.(values.VBool); ok {
			return values.VBool{Value: lb.Value != rb.Value}
		}
	}
	if conv(0, l, r) {
		return values.VBool{Value: false}
	}
	return values.VOperator{Op: syntax.OpBoolNE, Left: l, Right: r}
}

// reduceIf implements the If reduction rules: a literal condition picks a
// branch outright; a neutral condition with branches True and False (in
// that order) collapses to the condition itself; a neutral condition with
// both branches convertible to the same value collapses to that value (the
// "redundant if" rule). Otherwise it stays a stuck VIf.
func reduceIf(cond, then, els values.Val) values.Val {
	if b, ok := cond.(values.VBool); ok {
		if b.Value {
			return then
		}
		return els
	}
	if tb, ok := then.(values.VBool); ok {
		if eb, ok := els.(values.VBool); ok && tb.Value && !eb.Value {
			return cond
		}
	}
	if conv(0, then, els) {
		return then
	}
	return values.VIf{Cond: cond, Then: then, Else: els}
}
