package core

import (
	"github.com/dhall-core/evalcore/pkg/numeric"
	"github.com/dhall-core/evalcore/pkg/syntax"
	"github.com/dhall-core/evalcore/pkg/values"
)

func reduceListAppend(l, r values.Val) values.Val {
	lv, lok := l.(values.VList)
	rv, rok := r.(values.VList)
	if !lok || !rok {
		return values.VOperator{Op: syntax.OpListAppend, Left: l, Right: r}
	}
	elemType := lv.ElemType
	if elemType == nil {
		elemType = rv.ElemType
	}
	elems := make([]values.Val, 0, len(lv.Elements)+len(rv.Elements))
	elems = append(elems, lv.Elements...)
	elems = append(elems, rv.Elements...)
	return values.VList{ElemType: elemType, Elements: elems}
}

func reduceListLength(typ, list values.Val) values.Val {
	lv, ok := list.(values.VList)
	if !ok {
		return rebuildApp(syntax.BListLength, []values.Val{typ, list})
	}
	return values.VNatural{Value: numeric.NewNatural(int64(len(lv.Elements)))}
}

func reduceListHead(typ, list values.Val) values.Val {
	lv, ok := list.(values.VList)
	if !ok {
		return rebuildApp(syntax.BListHead, []values.Val{typ, list})
	}
	if len(lv.Elements) == 0 {
		return values.VNone{Type: elemTypeOr(lv, typ)}
	}
	return values.VSome{Value: lv.Elements[0]}
}

func reduceListLast(typ, list values.Val) values.Val {
	lv, ok := list.(values.VList)
	if !ok {
		return rebuildApp(syntax.BListLast, []values.Val{typ, list})
	}
	if len(lv.Elements) == 0 {
		return values.VNone{Type: elemTypeOr(lv, typ)}
	}
	return values.VSome{Value: lv.Elements[len(lv.Elements)-1]}
}

func elemTypeOr(lv values.VList, fallback values.Val) values.Val {
	if lv.ElemType != nil {
		return lv.ElemType
	}
	return fallback
}

func reduceListIndexed(typ, list values.Val) values.Val {
	lv, ok := list.(values.VList)
	if !ok {
		return rebuildApp(syntax.BListIndexed, []values.Val{typ, list})
	}
	elems := make([]values.Val, len(lv.Elements))
	for i, el := range lv.Elements {
		elems[i] = values.VRecordLit{Fields: []values.VRecordLitField{
			{Label: "index", Value: values.VNatural{Value: numeric.NewNatural(int64(i))}},
			{Label: "value", Value: el},
		}}
	}
	indexedType := values.VRecordType{Fields: []values.VRecordTypeField{
		{Label: "index", Type: values.VBuiltin{Name: syntax.BNatural}},
		{Label: "value", Type: lv.ElemType},
	}}
	return values.VList{ElemType: indexedType, Elements: elems}
}

func reduceListReverse(typ, list values.Val) values.Val {
	lv, ok := list.(values.VList)
	if !ok {
		return rebuildApp(syntax.BListReverse, []values.Val{typ, list})
	}
	elems := make([]values.Val, len(lv.Elements))
	for i, el := range lv.Elements {
		elems[len(elems)-1-i] = el
	}
	return values.VList{ElemType: lv.ElemType, Elements: elems}
}

// reduceListFold implements the Scott-style recursion principle for List,
// folding right-to-left via repeated cons application: per spec.md the
// fold order matches `List/fold` applying cons to each element against
// the accumulator built from the rest of the list.
func reduceListFold(tr *tracker, elemType, list, resultType, cons, nilVal values.Val) values.Val {
	lv, ok := list.(values.VList)
	if !ok {
		return rebuildApp(syntax.BListFold, []values.Val{elemType, list, resultType, cons, nilVal})
	}
	acc := nilVal
	for i := len(lv.Elements) - 1; i >= 0; i-- {
		tr.step()
		acc = apply(tr, apply(tr, cons, lv.Elements[i]), acc)
	}
	return acc
}

// reduceListBuild applies g directly to the Scott-encoded List
// constructors (list type, cons, nil); see the note on eager expansion in
// builtins_natural.go's reduceNaturalBuild.
func reduceListBuild(tr *tracker, typ, g values.Val) values.Val {
	listOfTypType := values.VApp{Fn: values.VBuiltin{Name: syntax.BList}, Arg: typ}
	cons := values.VLam{
		Info: values.InfoTyped{Name: "x", Type: typ},
		Fn: func(x values.Val) values.Val {
			return values.VLam{
				Info: values.InfoTyped{Name: "xs", Type: listOfTypType},
				Fn: func(xs values.Val) values.Val {
					return reduceListAppend(values.VList{ElemType: typ, Elements: []values.Val{x}}, xs)
				},
			}
		},
	}
	nilList := values.VList{ElemType: typ, Elements: nil}
	listOfTyp := apply(tr, values.VBuiltin{Name: syntax.BList}, typ)
	return apply(tr, apply(tr, apply(tr, g, listOfTyp), cons), nilList)
}
