package core

import (
	"github.com/dhall-core/evalcore/pkg/values"
)

// conv decides judgmental (definitional) equality of two Vals. level is the
// next fresh VVar level to hand out when conv must look under a binder
// (comparing two VPi domains/codomains, or two VLam bodies): both sides
// are applied to the same fresh variable, named "_" since the name itself
// is irrelevant to equality, and conv recurses at level+1. This is the
// same "probe with a variable, compare, recurse" idiom
// smasher164-tapl's pickFreshName-driven substitution comparison uses,
// generalized from renaming-for-display to renaming-for-decision.
//
// Whenever either side is a VLam, conv applies both sides to a fresh
// variable and recurses regardless of the other side's shape: this is
// what makes the check eta-aware. A free-standing neutral term (VVar,
// VApp, VField, ...) gets wrapped in a synthetic VApp against the fresh
// variable rather than needing to itself be a literal VLam, so
// λx. f x and f compare equal whenever f doesn't mention x.
func conv(level int, l, r values.Val) bool {
	if isVLam(l) || isVLam(r) {
		if _, lp := l.(values.VPi); lp {
			return false
		}
		if _, rp := r.(values.VPi); rp {
			return false
		}
		fresh := values.VVar{Name: "_", Level: level}
		return conv(level+1, applyFresh(l, fresh), applyFresh(r, fresh))
	}
	switch lv := l.(type) {
	case values.VConst:
		rv, ok := r.(values.VConst)
		return ok && lv.Universe == rv.Universe

	case values.VVar:
		rv, ok := r.(values.VVar)
		return ok && lv.Level == rv.Level && (lv.Level >= 0 || lv.Name == rv.Name)

	case values.VBuiltin:
		rv, ok := r.(values.VBuiltin)
		return ok && lv.Name == rv.Name

	case values.VApp:
		rv, ok := r.(values.VApp)
		return ok && conv(level, lv.Fn, rv.Fn) && conv(level, lv.Arg, rv.Arg)

	case values.VPi:
		rv, ok := r.(values.VPi)
		if !ok || !conv(level, lv.Domain, rv.Domain) {
			return false
		}
		fresh := values.VVar{Name: "_", Level: level}
		return conv(level+1, lv.Codomain(fresh), rv.Codomain(fresh))

	case values.VBool:
		rv, ok := r.(values.VBool)
		return ok && lv.Value == rv.Value

	case values.VNatural:
		rv, ok := r.(values.VNatural)
		return ok && lv.Value.Equal(rv.Value)

	case values.VInteger:
		rv, ok := r.(values.VInteger)
		return ok && lv.Value.Equal(rv.Value)

	case values.VDouble:
		rv, ok := r.(values.VDouble)
		return ok && lv.Value.Equal(rv.Value)

	case values.VTextLit:
		rv, ok := r.(values.VTextLit)
		return ok && convTextLit(level, lv, rv)

	case values.VSome:
		rv, ok := r.(values.VSome)
		return ok && conv(level, lv.Value, rv.Value)

	case values.VNone:
		rv, ok := r.(values.VNone)
		return ok && conv(level, lv.Type, rv.Type)

	case values.VList:
		rv, ok := r.(values.VList)
		if !ok || len(lv.Elements) != len(rv.Elements) {
			return false
		}
		for i := range lv.Elements {
			if !conv(level, lv.Elements[i], rv.Elements[i]) {
				return false
			}
		}
		return true

	case values.VRecordType:
		rv, ok := r.(values.VRecordType)
		if !ok || len(lv.Fields) != len(rv.Fields) {
			return false
		}
		for i := range lv.Fields {
			if lv.Fields[i].Label != rv.Fields[i].Label {
				return false
			}
			if !conv(level, lv.Fields[i].Type, rv.Fields[i].Type) {
				return false
			}
		}
		return true

	case values.VRecordLit:
		rv, ok := r.(values.VRecordLit)
		if !ok || len(lv.Fields) != len(rv.Fields) {
			return false
		}
		for i := range lv.Fields {
			if lv.Fields[i].Label != rv.Fields[i].Label {
				return false
			}
			if !conv(level, lv.Fields[i].Value, rv.Fields[i].Value) {
				return false
			}
		}
		return true

	case values.VUnionType:
		rv, ok := r.(values.VUnionType)
		return ok && convUnionAlts(level, lv.Alternatives, rv.Alternatives)

	case values.VInject:
		rv, ok := r.(values.VInject)
		if !ok || lv.Label != rv.Label {
			return false
		}
		if (lv.Value == nil) != (rv.Value == nil) {
			return false
		}
		if lv.Value != nil && !conv(level, lv.Value, rv.Value) {
			return false
		}
		return convUnionAlts(level, lv.Alternatives, rv.Alternatives)

	case values.VIf:
		rv, ok := r.(values.VIf)
		return ok && conv(level, lv.Cond, rv.Cond) && conv(level, lv.Then, rv.Then) && conv(level, lv.Else, rv.Else)

	case values.VOperator:
		rv, ok := r.(values.VOperator)
		return ok && lv.Op == rv.Op && conv(level, lv.Left, rv.Left) && conv(level, lv.Right, rv.Right)

	case values.VCombine:
		rv, ok := r.(values.VCombine)
		return ok && conv(level, lv.Left, rv.Left) && conv(level, lv.Right, rv.Right)

	case values.VCombineTypes:
		rv, ok := r.(values.VCombineTypes)
		return ok && conv(level, lv.Left, rv.Left) && conv(level, lv.Right, rv.Right)

	case values.VPrefer:
		rv, ok := r.(values.VPrefer)
		return ok && conv(level, lv.Left, rv.Left) && conv(level, lv.Right, rv.Right)

	case values.VMerge:
		rv, ok := r.(values.VMerge)
		return ok && conv(level, lv.Handlers, rv.Handlers) && conv(level, lv.Union, rv.Union)

	case values.VToMap:
		rv, ok := r.(values.VToMap)
		if !ok || !conv(level, lv.Record, rv.Record) {
			return false
		}
		if (lv.Type == nil) != (rv.Type == nil) {
			return false
		}
		return lv.Type == nil || conv(level, lv.Type, rv.Type)

	case values.VField:
		rv, ok := r.(values.VField)
		return ok && lv.Label == rv.Label && conv(level, lv.Record, rv.Record)

	case values.VProject:
		rv, ok := r.(values.VProject)
		if !ok || !conv(level, lv.Record, rv.Record) {
			return false
		}
		if (lv.TypeSelector == nil) != (rv.TypeSelector == nil) {
			return false
		}
		if lv.TypeSelector != nil {
			return conv(level, lv.TypeSelector, rv.TypeSelector)
		}
		if len(lv.Labels) != len(rv.Labels) {
			return false
		}
		for i := range lv.Labels {
			if lv.Labels[i] != rv.Labels[i] {
				return false
			}
		}
		return true

	case values.VAssert:
		rv, ok := r.(values.VAssert)
		return ok && conv(level, lv.Type, rv.Type)

	case values.VEquivalent:
		rv, ok := r.(values.VEquivalent)
		return ok && conv(level, lv.Left, rv.Left) && conv(level, lv.Right, rv.Right)

	default:
		panicInternal("conv: unhandled value %T", lv)
		panic("unreachable")
	}
}

func convTextLit(level int, l, r values.VTextLit) bool {
	if len(l.Chunks) != len(r.Chunks) {
		return false
	}
	for i := range l.Chunks {
		if l.Chunks[i].Prefix != r.Chunks[i].Prefix {
			return false
		}
		if !conv(level, l.Chunks[i].Expr, r.Chunks[i].Expr) {
			return false
		}
	}
	return l.Suffix == r.Suffix
}

func convUnionAlts(level int, l, r []values.VUnionAlt) bool {
	if len(l) != len(r) {
		return false
	}
	for i := range l {
		if l[i].Label != r[i].Label {
			return false
		}
		if (l[i].Type == nil) != (r[i].Type == nil) {
			return false
		}
		if l[i].Type != nil && !conv(level, l[i].Type, r[i].Type) {
			return false
		}
	}
	return true
}

func isVLam(v values.Val) bool {
	_, ok := v.(values.VLam)
	return ok
}

// applyFresh applies v to arg the way conv's eta check needs: a real VLam
// calls its closure, anything else becomes a one-step stuck application.
func applyFresh(v values.Val, arg values.Val) values.Val {
	if lam, ok := v.(values.VLam); ok {
		return lam.Fn(arg)
	}
	return values.VApp{Fn: v, Arg: arg}
}
