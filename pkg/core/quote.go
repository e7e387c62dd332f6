package core

import (
	"github.com/dhall-core/evalcore/pkg/syntax"
	"github.com/dhall-core/evalcore/pkg/values"
)

// quote converts v back to a beta-normal Expr. ctx holds, for each level
// currently in scope (ctx[level] is the name bound at that level), the
// source name that level was introduced under; quoting a VVar counts how
// many in-scope binders share its name and were introduced more recently
// (i.e. at a higher level) to recover the name-stratified index a source
// Var would need to refer back to it (spec's count-based de Bruijn
// variables, distinct from a classical single-counter index).
func quote(tr *tracker, ctx []string, v values.Val) syntax.Expr {
	tr.step()
	tr.checkQuoteDepth(len(ctx))
	switch vv := v.(type) {
	case values.VConst:
		return syntax.Const{Universe: vv.Universe}

	case values.VVar:
		index, from := 0, vv.Level+1
		if vv.Level < 0 {
			// A free variable from values.Lookup: level -k-1 stands for
			// k unresolved binders beyond every binder in ctx.
			index, from = -vv.Level-1, 0
		}
		for i := from; i < len(ctx); i++ {
			if ctx[i] == vv.Name {
				index++
			}
		}
		return syntax.Var{Name: vv.Name, Index: index}

	case values.VBuiltin:
		return syntax.Builtin{Name: vv.Name}

	case values.VApp:
		return syntax.App{Fn: quote(tr, ctx, vv.Fn), Arg: quote(tr, ctx, vv.Arg)}

	case values.VLam:
		return quoteLam(tr, ctx, vv)

	case values.VPi:
		fresh := values.VVar{Name: vv.Name, Level: len(ctx)}
		dom := quote(tr, ctx, vv.Domain)
		body := quote(tr, append(ctx, vv.Name), vv.Codomain(fresh))
		return syntax.Pi{Name: vv.Name, Type: dom, Body: body}

	case values.VBool:
		return syntax.BoolLit{Value: vv.Value}

	case values.VNatural:
		return syntax.NaturalLit{Value: vv.Value}

	case values.VInteger:
		return syntax.IntegerLit{Value: vv.Value}

	case values.VDouble:
		return syntax.DoubleLit{Value: vv.Value}

	case values.VTextLit:
		return quoteTextLit(tr, ctx, vv)

	case values.VSome:
		return syntax.SomeExpr{Value: quote(tr, ctx, vv.Value)}

	case values.VNone:
		return syntax.App{Fn: syntax.Builtin{Name: syntax.BNone}, Arg: quote(tr, ctx, vv.Type)}

	case values.VList:
		elems := make([]syntax.Expr, len(vv.Elements))
		for i, e := range vv.Elements {
			elems[i] = quote(tr, ctx, e)
		}
		var typ syntax.Expr
		if len(vv.Elements) == 0 {
			if vv.ElemType == nil {
				panicInternal("quote: empty list value has no element type to annotate with")
			}
			typ = quote(tr, ctx, vv.ElemType)
		}
		return syntax.ListLit{Type: typ, Elements: elems}

	case values.VRecordType:
		fields := make([]syntax.RecordTypeField, len(vv.Fields))
		for i, f := range vv.Fields {
			fields[i] = syntax.RecordTypeField{Label: f.Label, Type: quote(tr, ctx, f.Type)}
		}
		return syntax.RecordType{Fields: fields}

	case values.VRecordLit:
		fields := make([]syntax.RecordLitField, len(vv.Fields))
		for i, f := range vv.Fields {
			fields[i] = syntax.RecordLitField{Label: f.Label, Value: quote(tr, ctx, f.Value)}
		}
		return syntax.RecordLit{Fields: fields}

	case values.VUnionType:
		return syntax.UnionType{Alternatives: quoteUnionAlts(tr, ctx, vv.Alternatives)}

	case values.VInject:
		ut := syntax.UnionType{Alternatives: quoteUnionAlts(tr, ctx, vv.Alternatives)}
		field := syntax.Field{Record: ut, Label: vv.Label}
		if vv.Value == nil {
			return field
		}
		return syntax.App{Fn: field, Arg: quote(tr, ctx, vv.Value)}

	case values.VIf:
		return syntax.If{Cond: quote(tr, ctx, vv.Cond), Then: quote(tr, ctx, vv.Then), Else: quote(tr, ctx, vv.Else)}

	case values.VOperator:
		return syntax.Operator{Op: vv.Op, Left: quote(tr, ctx, vv.Left), Right: quote(tr, ctx, vv.Right)}

	case values.VCombine:
		return syntax.Combine{Left: quote(tr, ctx, vv.Left), Right: quote(tr, ctx, vv.Right)}

	case values.VCombineTypes:
		return syntax.CombineTypes{Left: quote(tr, ctx, vv.Left), Right: quote(tr, ctx, vv.Right)}

	case values.VPrefer:
		return syntax.Prefer{Left: quote(tr, ctx, vv.Left), Right: quote(tr, ctx, vv.Right)}

	case values.VMerge:
		return syntax.Merge{Handlers: quote(tr, ctx, vv.Handlers), Union: quote(tr, ctx, vv.Union)}

	case values.VToMap:
		var ann syntax.Expr
		if vv.Type != nil {
			ann = quote(tr, ctx, vv.Type)
		}
		return syntax.ToMap{Record: quote(tr, ctx, vv.Record), Annotation: ann}

	case values.VField:
		return syntax.Field{Record: quote(tr, ctx, vv.Record), Label: vv.Label}

	case values.VProject:
		if vv.TypeSelector != nil {
			return syntax.Project{Record: quote(tr, ctx, vv.Record), Selector: syntax.ProjectSelector{Type: quote(tr, ctx, vv.TypeSelector)}}
		}
		return syntax.Project{Record: quote(tr, ctx, vv.Record), Selector: syntax.ProjectSelector{Labels: vv.Labels}}

	case values.VAssert:
		return syntax.Assert{Annotation: quote(tr, ctx, vv.Type)}

	case values.VEquivalent:
		return syntax.Equivalent{Left: quote(tr, ctx, vv.Left), Right: quote(tr, ctx, vv.Right)}

	default:
		panicInternal("quote: unhandled value %T", vv)
		panic("unreachable")
	}
}

// quoteLam quotes a host lambda according to what its HLamInfo tag says it
// actually denotes: a still-curried builtin application, an unapplied
// union constructor, or (the general case) an ordinary lambda, recovered
// by applying Fn to a fresh rigid variable and quoting the result.
func quoteLam(tr *tracker, ctx []string, vv values.VLam) syntax.Expr {
	switch info := vv.Info.(type) {
	case values.InfoBuiltinPartial:
		var result syntax.Expr = syntax.Builtin{Name: info.Name}
		for _, a := range info.Collected {
			result = syntax.App{Fn: result, Arg: quote(tr, ctx, a)}
		}
		return result

	case values.InfoUnionConstructor:
		return syntax.Field{
			Record: syntax.UnionType{Alternatives: quoteUnionAlts(tr, ctx, info.Alternatives)},
			Label:  info.Label,
		}

	case values.InfoTyped:
		fresh := values.VVar{Name: info.Name, Level: len(ctx)}
		typ := quote(tr, ctx, info.Type)
		body := quote(tr, append(ctx, info.Name), vv.Fn(fresh))
		return syntax.Lam{Name: info.Name, Type: typ, Body: body}

	default:
		panicInternal("quote: unhandled host lambda tag %T", info)
		panic("unreachable")
	}
}

func quoteUnionAlts(tr *tracker, ctx []string, alts []values.VUnionAlt) []syntax.UnionAlt {
	out := make([]syntax.UnionAlt, len(alts))
	for i, a := range alts {
		var t syntax.Expr
		if a.Type != nil {
			t = quote(tr, ctx, a.Type)
		}
		out[i] = syntax.UnionAlt{Label: a.Label, Type: t}
	}
	return out
}

func quoteTextLit(tr *tracker, ctx []string, vv values.VTextLit) syntax.Expr {
	chunks := make([]syntax.TextChunk, len(vv.Chunks))
	for i, c := range vv.Chunks {
		chunks[i] = syntax.TextChunk{Prefix: c.Prefix, Expr: quote(tr, ctx, c.Expr)}
	}
	return syntax.TextLit{Chunks: chunks, Suffix: vv.Suffix}
}
