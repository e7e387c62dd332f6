package core

import (
	"github.com/dhall-core/evalcore/pkg/syntax"
	"github.com/dhall-core/evalcore/pkg/values"
)

// reduceOptionalFold implements the Scott-style recursion principle for
// Optional directly on a concrete VSome/VNone; a neutral argument rebuilds
// the stuck application.
func reduceOptionalFold(tr *tracker, elemType, optional, resultType, some, none values.Val) values.Val {
	switch ov := optional.(type) {
	case values.VSome:
		return apply(tr, some, ov.Value)
	case values.VNone:
		return none
	default:
		return rebuildApp(syntax.BOptionalFold, []values.Val{elemType, optional, resultType, some, none})
	}
}

// reduceOptionalBuild applies g directly to the Scott-encoded Optional
// constructors (optional type, some, none); see the note on eager
// expansion in builtins_natural.go's reduceNaturalBuild.
func reduceOptionalBuild(tr *tracker, typ, g values.Val) values.Val {
	some := values.VLam{
		Info: values.InfoTyped{Name: "x", Type: typ},
		Fn:   func(x values.Val) values.Val { return values.VSome{Value: x} },
	}
	none := values.VNone{Type: typ}
	optionalOfTyp := apply(tr, values.VBuiltin{Name: syntax.BOptional}, typ)
	return apply(tr, apply(tr, apply(tr, g, optionalOfTyp), some), none)
}
