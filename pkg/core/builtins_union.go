package core

import (
	"sort"

	"github.com/dhall-core/evalcore/pkg/syntax"
	"github.com/dhall-core/evalcore/pkg/values"
)

func evalUnionType(tr *tracker, env *values.Env, n syntax.UnionType) values.Val {
	alts := make([]values.VUnionAlt, len(n.Alternatives))
	for i, a := range n.Alternatives {
		var t values.Val
		if a.Type != nil {
			t = eval(tr, env, a.Type)
		}
		alts[i] = values.VUnionAlt{Label: a.Label, Type: t}
	}
	sort.Slice(alts, func(i, j int) bool { return alts[i].Label < alts[j].Label })
	return values.VUnionType{Alternatives: alts}
}

// unionConstructor builds the value that projecting Label out of a union
// type denotes: a function wrapping its argument in a VInject for a typed
// alternative, or the nullary VInject itself otherwise.
func unionConstructor(ut values.VUnionType, label string) values.Val {
	for _, alt := range ut.Alternatives {
		if alt.Label != label {
			continue
		}
		if alt.Type == nil {
			return values.VInject{Label: label, Alternatives: ut.Alternatives}
		}
		alts := ut.Alternatives
		return values.VLam{
			Info: values.InfoUnionConstructor{Label: label, Alternatives: alts},
			Fn: func(v values.Val) values.Val {
				return values.VInject{Label: label, Value: v, Alternatives: alts}
			},
		}
	}
	panicInternal("Field: alternative %q not present in union type", label)
	panic("unreachable")
}

func findHandlerField(handlers values.VRecordLit, label string) values.Val {
	for _, f := range handlers.Fields {
		if f.Label == label {
			return f.Value
		}
	}
	panicInternal("merge: no handler for %q", label)
	panic("unreachable")
}

// evalMerge implements merge: a concrete union value (or Optional, which
// merge also dispatches over using the synthetic "Some"/"None" labels)
// picks its handler and applies it; anything else stays a stuck VMerge.
func evalMerge(tr *tracker, handlers, union values.Val) values.Val {
	hr, handlersConcrete := handlers.(values.VRecordLit)

	switch u := union.(type) {
	case values.VInject:
		if !handlersConcrete {
			return values.VMerge{Handlers: handlers, Union: union}
		}
		handler := findHandlerField(hr, u.Label)
		if u.Value == nil {
			return handler
		}
		return apply(tr, handler, u.Value)

	case values.VSome:
		if !handlersConcrete {
			return values.VMerge{Handlers: handlers, Union: union}
		}
		return apply(tr, findHandlerField(hr, "Some"), u.Value)

	case values.VNone:
		if !handlersConcrete {
			return values.VMerge{Handlers: handlers, Union: union}
		}
		return findHandlerField(hr, "None")

	default:
		return values.VMerge{Handlers: handlers, Union: union}
	}
}
