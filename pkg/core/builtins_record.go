package core

import (
	"sort"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/dhall-core/evalcore/pkg/syntax"
	"github.com/dhall-core/evalcore/pkg/values"
)

func evalRecordType(tr *tracker, env *values.Env, n syntax.RecordType) values.Val {
	fields := lo.Map(n.Fields, func(f syntax.RecordTypeField, _ int) values.VRecordTypeField {
		return values.VRecordTypeField{Label: f.Label, Type: eval(tr, env, f.Type)}
	})
	sort.Slice(fields, func(i, j int) bool { return fields[i].Label < fields[j].Label })
	return values.VRecordType{Fields: fields}
}

func evalRecordLit(tr *tracker, env *values.Env, n syntax.RecordLit) values.Val {
	fields := lo.Map(n.Fields, func(f syntax.RecordLitField, _ int) values.VRecordLitField {
		return values.VRecordLitField{Label: f.Label, Value: eval(tr, env, f.Value)}
	})
	sort.Slice(fields, func(i, j int) bool { return fields[i].Label < fields[j].Label })
	return values.VRecordLit{Fields: fields}
}

// fieldFromLit finds label in rl, reporting whether it was present.
func fieldFromLit(rl values.VRecordLit, label string) (values.Val, bool) {
	for _, f := range rl.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return nil, false
}

// reduceField projects Label out of record: a concrete record literal
// yields its field's value directly; a union type's field access yields
// that alternative's constructor (a function for a typed alternative, the
// injected value itself for a nullary one). When record is itself a stuck
// Project, Prefer, or Combine, Field distributes through it rather than
// wrapping the whole thing in another layer of stuck VField, per the same
// "push projections toward the leaves" discipline reduceProject applies to
// nested projections. Anything else stays a stuck VField.
func reduceField(record values.Val, label string) values.Val {
	switch r := record.(type) {
	case values.VRecordLit:
		if v, ok := fieldFromLit(r, label); ok {
			return v
		}
		panicInternal("Field: label %q not present in record literal", label)
	case values.VUnionType:
		return unionConstructor(r, label)
	case values.VProject:
		if r.Labels != nil && lo.Contains(r.Labels, label) {
			return reduceField(r.Record, label)
		}
	case values.VPrefer:
		if rr, ok := r.Right.(values.VRecordLit); ok {
			if v, ok := fieldFromLit(rr, label); ok {
				return v
			}
			return reduceField(r.Left, label)
		}
		if rl, ok := r.Left.(values.VRecordLit); ok {
			if _, ok := fieldFromLit(rl, label); !ok {
				return reduceField(r.Right, label)
			}
		}
	case values.VCombine:
		if rr, ok := r.Right.(values.VRecordLit); ok {
			if _, ok := fieldFromLit(rr, label); !ok {
				return reduceField(r.Left, label)
			}
		}
		if rl, ok := r.Left.(values.VRecordLit); ok {
			if _, ok := fieldFromLit(rl, label); !ok {
				return reduceField(r.Right, label)
			}
		}
	}
	return values.VField{Record: record, Label: label}
}

func evalProject(tr *tracker, env *values.Env, n syntax.Project) values.Val {
	record := eval(tr, env, n.Record)
	if n.Selector.Labels != nil {
		labels := append([]string{}, n.Selector.Labels...)
		slices.Sort(labels)
		return reduceProject(record, labels)
	}
	typ := eval(tr, env, n.Selector.Type)
	if rt, ok := typ.(values.VRecordType); ok {
		labels := lo.Map(rt.Fields, func(f values.VRecordTypeField, _ int) string { return f.Label })
		return reduceProject(record, labels)
	}
	return values.VProject{Record: record, TypeSelector: typ}
}

// reduceProject implements r.{labels}: a concrete record literal filters
// down to the requested fields; a nested Project flattens away, since the
// outer projection's label set is always a subset of the inner one; and
// Project over a Prefer whose right operand is a concrete record literal
// splits the label set between the two sides and recombines, per the same
// "push toward the leaves where something concrete lives" rule reduceField
// follows. Anything else stays a stuck VProject.
func reduceProject(record values.Val, labels []string) values.Val {
	switch r := record.(type) {
	case values.VRecordLit:
		fields := lo.Filter(r.Fields, func(f values.VRecordLitField, _ int) bool {
			return lo.Contains(labels, f.Label)
		})
		return values.VRecordLit{Fields: fields}
	case values.VProject:
		if r.Labels != nil {
			return reduceProject(r.Record, labels)
		}
	case values.VPrefer:
		if rr, ok := r.Right.(values.VRecordLit); ok {
			var fromLeft, fromRight []string
			for _, k := range labels {
				if _, ok := fieldFromLit(rr, k); ok {
					fromRight = append(fromRight, k)
				} else {
					fromLeft = append(fromLeft, k)
				}
			}
			switch {
			case len(fromLeft) == 0:
				return reduceProject(r.Right, fromRight)
			case len(fromRight) == 0:
				return reduceProject(r.Left, fromLeft)
			default:
				return reduceCombine(reduceProject(r.Left, fromLeft), reduceProject(r.Right, fromRight))
			}
		}
	}
	return values.VProject{Record: record, Labels: labels}
}

func evalToMap(record, typ values.Val) values.Val {
	rl, ok := record.(values.VRecordLit)
	if !ok {
		return values.VToMap{Record: record, Type: typ}
	}
	elems := lo.Map(rl.Fields, func(f values.VRecordLitField, _ int) values.Val {
		return values.VRecordLit{Fields: []values.VRecordLitField{
			{Label: "mapKey", Value: values.VTextLit{Suffix: f.Label}},
			{Label: "mapValue", Value: f.Value},
		}}
	})
	var elemType values.Val
	if typ != nil {
		if app, ok := typ.(values.VApp); ok {
			elemType = app.Arg
		}
	}
	return values.VList{ElemType: elemType, Elements: elems}
}

// isEmptyRecordLit reports whether v is the empty record literal {=},
// identity for Combine and Prefer regardless of what the other operand is.
func isEmptyRecordLit(v values.Val) bool {
	rl, ok := v.(values.VRecordLit)
	return ok && len(rl.Fields) == 0
}

func isEmptyRecordType(v values.Val) bool {
	rt, ok := v.(values.VRecordType)
	return ok && len(rt.Fields) == 0
}

func reduceCombine(l, r values.Val) values.Val {
	if isEmptyRecordLit(l) {
		return r
	}
	if isEmptyRecordLit(r) {
		return l
	}
	lr, lok := l.(values.VRecordLit)
	rr, rok := r.(values.VRecordLit)
	if !lok || !rok {
		return values.VCombine{Left: l, Right: r}
	}
	return values.VRecordLit{Fields: mergeRecordLitFields(lr.Fields, rr.Fields)}
}

func mergeRecordLitFields(l, r []values.VRecordLitField) []values.VRecordLitField {
	out := make([]values.VRecordLitField, 0, len(l)+len(r))
	i, j := 0, 0
	for i < len(l) && j < len(r) {
		switch {
		case l[i].Label < r[j].Label:
			out = append(out, l[i])
			i++
		case l[i].Label > r[j].Label:
			out = append(out, r[j])
			j++
		default:
			out = append(out, values.VRecordLitField{Label: l[i].Label, Value: reduceCombine(l[i].Value, r[j].Value)})
			i++
			j++
		}
	}
	out = append(out, l[i:]...)
	out = append(out, r[j:]...)
	return out
}

func reduceCombineTypes(l, r values.Val) values.Val {
	if isEmptyRecordType(l) {
		return r
	}
	if isEmptyRecordType(r) {
		return l
	}
	lr, lok := l.(values.VRecordType)
	rr, rok := r.(values.VRecordType)
	if !lok || !rok {
		return values.VCombineTypes{Left: l, Right: r}
	}
	return values.VRecordType{Fields: mergeRecordTypeFields(lr.Fields, rr.Fields)}
}

func mergeRecordTypeFields(l, r []values.VRecordTypeField) []values.VRecordTypeField {
	out := make([]values.VRecordTypeField, 0, len(l)+len(r))
	i, j := 0, 0
	for i < len(l) && j < len(r) {
		switch {
		case l[i].Label < r[j].Label:
			out = append(out, l[i])
			i++
		case l[i].Label > r[j].Label:
			out = append(out, r[j])
			j++
		default:
			out = append(out, values.VRecordTypeField{Label: l[i].Label, Type: reduceCombineTypes(l[i].Type, r[j].Type)})
			i++
			j++
		}
	}
	out = append(out, l[i:]...)
	out = append(out, r[j:]...)
	return out
}

// reducePrefer implements ⫽: unlike ∧, a label present on both sides is
// not merged recursively, it is simply taken from the right operand. An
// empty record on either side is identity, and two convertible operands
// collapse to either (taken as the left, arbitrarily, since they denote
// the same value).
func reducePrefer(l, r values.Val) values.Val {
	if isEmptyRecordLit(l) {
		return r
	}
	if isEmptyRecordLit(r) {
		return l
	}
	if conv(0, l, r) {
		return l
	}
	lr, lok := l.(values.VRecordLit)
	rr, rok := r.(values.VRecordLit)
	if !lok || !rok {
		return values.VPrefer{Left: l, Right: r}
	}
	out := make([]values.VRecordLitField, 0, len(lr.Fields)+len(rr.Fields))
	i, j := 0, 0
	for i < len(lr.Fields) && j < len(rr.Fields) {
		switch {
		case lr.Fields[i].Label < rr.Fields[j].Label:
			out = append(out, lr.Fields[i])
			i++
		case lr.Fields[i].Label > rr.Fields[j].Label:
			out = append(out, rr.Fields[j])
			j++
		default:
			out = append(out, rr.Fields[j])
			i++
			j++
		}
	}
	out = append(out, lr.Fields[i:]...)
	out = append(out, rr.Fields[j:]...)
	return values.VRecordLit{Fields: out}
}

// evalRecordCompletion desugars T::r to (T.default ⫽ r), dropping the
// : T.Type annotation the surface form carries (annotations play no role
// once evaluation starts).
func evalRecordCompletion(tr *tracker, env *values.Env, n syntax.RecordCompletion) values.Val {
	typ := eval(tr, env, n.Type)
	rec := eval(tr, env, n.Record)
	def := reduceField(typ, "default")
	return reducePrefer(def, rec)
}
