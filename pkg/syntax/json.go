package syntax

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/dhall-core/evalcore/pkg/numeric"
)

// ExprToJSON marshals e to JSON, using the same "build an untyped raw tree,
// then json.Marshal it" idiom the teacher's ValueToJSON uses for A0Value,
// generalized from a handful of dynamic-language shapes to this language's
// full Expr sum type via a "kind" discriminator on every node.
func ExprToJSON(e Expr) ([]byte, error) {
	return json.Marshal(exprToRaw(e))
}

// ExprFromJSON is ExprToJSON's inverse.
func ExprFromJSON(data []byte) (Expr, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return rawToExpr(raw)
}

func exprToRaw(e Expr) any {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case Const:
		return map[string]any{"kind": "Const", "universe": int(n.Universe)}

	case Builtin:
		return map[string]any{"kind": "Builtin", "name": string(n.Name)}

	case Var:
		return map[string]any{"kind": "Var", "name": n.Name, "index": n.Index}

	case Lam:
		return map[string]any{"kind": "Lam", "name": n.Name, "type": exprToRaw(n.Type), "body": exprToRaw(n.Body)}

	case Pi:
		return map[string]any{"kind": "Pi", "name": n.Name, "type": exprToRaw(n.Type), "body": exprToRaw(n.Body)}

	case App:
		return map[string]any{"kind": "App", "fn": exprToRaw(n.Fn), "arg": exprToRaw(n.Arg)}

	case Let:
		return map[string]any{
			"kind": "Let", "name": n.Name,
			"annotation": exprToRaw(n.Annotation), "value": exprToRaw(n.Value), "body": exprToRaw(n.Body),
		}

	case Annot:
		return map[string]any{"kind": "Annot", "expr": exprToRaw(n.Expr), "type": exprToRaw(n.Type)}

	case BoolLit:
		return map[string]any{"kind": "BoolLit", "value": n.Value}

	case NaturalLit:
		return map[string]any{"kind": "NaturalLit", "value": n.Value.Show()}

	case IntegerLit:
		return map[string]any{"kind": "IntegerLit", "value": n.Value.Show()}

	case DoubleLit:
		return map[string]any{"kind": "DoubleLit", "value": doubleToRaw(n.Value)}

	case TextLit:
		chunks := make([]any, len(n.Chunks))
		for i, c := range n.Chunks {
			chunks[i] = map[string]any{"prefix": c.Prefix, "expr": exprToRaw(c.Expr)}
		}
		return map[string]any{"kind": "TextLit", "chunks": chunks, "suffix": n.Suffix}

	case Operator:
		return map[string]any{"kind": "Operator", "op": string(n.Op), "left": exprToRaw(n.Left), "right": exprToRaw(n.Right)}

	case If:
		return map[string]any{"kind": "If", "cond": exprToRaw(n.Cond), "then": exprToRaw(n.Then), "else": exprToRaw(n.Else)}

	case SomeExpr:
		return map[string]any{"kind": "Some", "value": exprToRaw(n.Value)}

	case ListLit:
		elems := make([]any, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = exprToRaw(el)
		}
		return map[string]any{"kind": "ListLit", "type": exprToRaw(n.Type), "elements": elems}

	case RecordType:
		fields := make([]any, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = map[string]any{"label": f.Label, "type": exprToRaw(f.Type)}
		}
		return map[string]any{"kind": "RecordType", "fields": fields}

	case RecordLit:
		fields := make([]any, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = map[string]any{"label": f.Label, "value": exprToRaw(f.Value)}
		}
		return map[string]any{"kind": "RecordLit", "fields": fields}

	case UnionType:
		alts := make([]any, len(n.Alternatives))
		for i, a := range n.Alternatives {
			alts[i] = map[string]any{"label": a.Label, "type": exprToRaw(a.Type)}
		}
		return map[string]any{"kind": "UnionType", "alternatives": alts}

	case Merge:
		return map[string]any{
			"kind": "Merge", "handlers": exprToRaw(n.Handlers), "union": exprToRaw(n.Union),
			"annotation": exprToRaw(n.Annotation),
		}

	case ToMap:
		return map[string]any{"kind": "ToMap", "record": exprToRaw(n.Record), "annotation": exprToRaw(n.Annotation)}

	case Field:
		return map[string]any{"kind": "Field", "record": exprToRaw(n.Record), "label": n.Label}

	case Project:
		sel := map[string]any{}
		if n.Selector.Labels != nil {
			labels := make([]any, len(n.Selector.Labels))
			for i, l := range n.Selector.Labels {
				labels[i] = l
			}
			sel["labels"] = labels
		} else {
			sel["type"] = exprToRaw(n.Selector.Type)
		}
		return map[string]any{"kind": "Project", "record": exprToRaw(n.Record), "selector": sel}

	case Combine:
		return map[string]any{"kind": "Combine", "left": exprToRaw(n.Left), "right": exprToRaw(n.Right)}

	case CombineTypes:
		return map[string]any{"kind": "CombineTypes", "left": exprToRaw(n.Left), "right": exprToRaw(n.Right)}

	case Prefer:
		return map[string]any{"kind": "Prefer", "left": exprToRaw(n.Left), "right": exprToRaw(n.Right)}

	case RecordCompletion:
		return map[string]any{"kind": "RecordCompletion", "type": exprToRaw(n.Type), "record": exprToRaw(n.Record)}

	case Assert:
		return map[string]any{"kind": "Assert", "annotation": exprToRaw(n.Annotation)}

	case Equivalent:
		return map[string]any{"kind": "Equivalent", "left": exprToRaw(n.Left), "right": exprToRaw(n.Right)}

	case ImportAlt:
		return map[string]any{"kind": "ImportAlt", "primary": exprToRaw(n.Primary), "fallback": exprToRaw(n.Fallback)}

	case Note:
		return map[string]any{"kind": "Note", "span": spanToRaw(n.Span), "expr": exprToRaw(n.Expr)}

	default:
		return map[string]any{"kind": "Unknown"}
	}
}

func spanToRaw(s Span) any {
	return map[string]any{
		"file": s.File, "startLine": s.StartLine, "startCol": s.StartCol,
		"endLine": s.EndLine, "endCol": s.EndCol,
	}
}

func doubleToRaw(d numeric.Double) any {
	f := d.Float64()
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

func rawToExpr(raw any) (Expr, error) {
	if raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("syntax: expected an Expr object, got %T", raw)
	}
	kind, _ := m["kind"].(string)
	switch kind {
	case "Const":
		return Const{Universe: Universe(asInt(m["universe"]))}, nil

	case "Builtin":
		return Builtin{Name: BuiltinName(asString(m["name"]))}, nil

	case "Var":
		return Var{Name: asString(m["name"]), Index: asInt(m["index"])}, nil

	case "Lam":
		typ, err := rawToExpr(m["type"])
		if err != nil {
			return nil, err
		}
		body, err := rawToExpr(m["body"])
		if err != nil {
			return nil, err
		}
		return Lam{Name: asString(m["name"]), Type: typ, Body: body}, nil

	case "Pi":
		typ, err := rawToExpr(m["type"])
		if err != nil {
			return nil, err
		}
		body, err := rawToExpr(m["body"])
		if err != nil {
			return nil, err
		}
		return Pi{Name: asString(m["name"]), Type: typ, Body: body}, nil

	case "App":
		fn, err := rawToExpr(m["fn"])
		if err != nil {
			return nil, err
		}
		arg, err := rawToExpr(m["arg"])
		if err != nil {
			return nil, err
		}
		return App{Fn: fn, Arg: arg}, nil

	case "Let":
		ann, err := rawToExpr(m["annotation"])
		if err != nil {
			return nil, err
		}
		val, err := rawToExpr(m["value"])
		if err != nil {
			return nil, err
		}
		body, err := rawToExpr(m["body"])
		if err != nil {
			return nil, err
		}
		return Let{Name: asString(m["name"]), Annotation: ann, Value: val, Body: body}, nil

	case "Annot":
		expr, err := rawToExpr(m["expr"])
		if err != nil {
			return nil, err
		}
		typ, err := rawToExpr(m["type"])
		if err != nil {
			return nil, err
		}
		return Annot{Expr: expr, Type: typ}, nil

	case "BoolLit":
		b, _ := m["value"].(bool)
		return BoolLit{Value: b}, nil

	case "NaturalLit":
		n, ok := numeric.NaturalFromString(asString(m["value"]))
		if !ok {
			return nil, fmt.Errorf("syntax: invalid NaturalLit %q", m["value"])
		}
		return NaturalLit{Value: n}, nil

	case "IntegerLit":
		i, ok := numeric.IntegerFromString(asString(m["value"]))
		if !ok {
			return nil, fmt.Errorf("syntax: invalid IntegerLit %q", m["value"])
		}
		return IntegerLit{Value: i}, nil

	case "DoubleLit":
		d, err := rawToDouble(m["value"])
		if err != nil {
			return nil, err
		}
		return DoubleLit{Value: d}, nil

	case "TextLit":
		rawChunks, _ := m["chunks"].([]any)
		chunks := make([]TextChunk, len(rawChunks))
		for i, rc := range rawChunks {
			cm, _ := rc.(map[string]any)
			e, err := rawToExpr(cm["expr"])
			if err != nil {
				return nil, err
			}
			chunks[i] = TextChunk{Prefix: asString(cm["prefix"]), Expr: e}
		}
		return TextLit{Chunks: chunks, Suffix: asString(m["suffix"])}, nil

	case "Operator":
		left, err := rawToExpr(m["left"])
		if err != nil {
			return nil, err
		}
		right, err := rawToExpr(m["right"])
		if err != nil {
			return nil, err
		}
		return Operator{Op: OpKind(asString(m["op"])), Left: left, Right: right}, nil

	case "If":
		cond, err := rawToExpr(m["cond"])
		if err != nil {
			return nil, err
		}
		then, err := rawToExpr(m["then"])
		if err != nil {
			return nil, err
		}
		els, err := rawToExpr(m["else"])
		if err != nil {
			return nil, err
		}
		return If{Cond: cond, Then: then, Else: els}, nil

	case "Some":
		v, err := rawToExpr(m["value"])
		if err != nil {
			return nil, err
		}
		return SomeExpr{Value: v}, nil

	case "ListLit":
		typ, err := rawToExpr(m["type"])
		if err != nil {
			return nil, err
		}
		rawElems, _ := m["elements"].([]any)
		elems := make([]Expr, len(rawElems))
		for i, re := range rawElems {
			e, err := rawToExpr(re)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return ListLit{Type: typ, Elements: elems}, nil

	case "RecordType":
		rawFields, _ := m["fields"].([]any)
		fields := make([]RecordTypeField, len(rawFields))
		for i, rf := range rawFields {
			fm, _ := rf.(map[string]any)
			t, err := rawToExpr(fm["type"])
			if err != nil {
				return nil, err
			}
			fields[i] = RecordTypeField{Label: asString(fm["label"]), Type: t}
		}
		return RecordType{Fields: fields}, nil

	case "RecordLit":
		rawFields, _ := m["fields"].([]any)
		fields := make([]RecordLitField, len(rawFields))
		for i, rf := range rawFields {
			fm, _ := rf.(map[string]any)
			v, err := rawToExpr(fm["value"])
			if err != nil {
				return nil, err
			}
			fields[i] = RecordLitField{Label: asString(fm["label"]), Value: v}
		}
		return RecordLit{Fields: fields}, nil

	case "UnionType":
		rawAlts, _ := m["alternatives"].([]any)
		alts := make([]UnionAlt, len(rawAlts))
		for i, ra := range rawAlts {
			am, _ := ra.(map[string]any)
			t, err := rawToExpr(am["type"])
			if err != nil {
				return nil, err
			}
			alts[i] = UnionAlt{Label: asString(am["label"]), Type: t}
		}
		return UnionType{Alternatives: alts}, nil

	case "Merge":
		handlers, err := rawToExpr(m["handlers"])
		if err != nil {
			return nil, err
		}
		union, err := rawToExpr(m["union"])
		if err != nil {
			return nil, err
		}
		ann, err := rawToExpr(m["annotation"])
		if err != nil {
			return nil, err
		}
		return Merge{Handlers: handlers, Union: union, Annotation: ann}, nil

	case "ToMap":
		record, err := rawToExpr(m["record"])
		if err != nil {
			return nil, err
		}
		ann, err := rawToExpr(m["annotation"])
		if err != nil {
			return nil, err
		}
		return ToMap{Record: record, Annotation: ann}, nil

	case "Field":
		record, err := rawToExpr(m["record"])
		if err != nil {
			return nil, err
		}
		return Field{Record: record, Label: asString(m["label"])}, nil

	case "Project":
		record, err := rawToExpr(m["record"])
		if err != nil {
			return nil, err
		}
		selm, _ := m["selector"].(map[string]any)
		var sel ProjectSelector
		if rawLabels, ok := selm["labels"].([]any); ok {
			labels := make([]string, len(rawLabels))
			for i, l := range rawLabels {
				labels[i] = asString(l)
			}
			sel.Labels = labels
		} else {
			t, err := rawToExpr(selm["type"])
			if err != nil {
				return nil, err
			}
			sel.Type = t
		}
		return Project{Record: record, Selector: sel}, nil

	case "Combine":
		left, err := rawToExpr(m["left"])
		if err != nil {
			return nil, err
		}
		right, err := rawToExpr(m["right"])
		if err != nil {
			return nil, err
		}
		return Combine{Left: left, Right: right}, nil

	case "CombineTypes":
		left, err := rawToExpr(m["left"])
		if err != nil {
			return nil, err
		}
		right, err := rawToExpr(m["right"])
		if err != nil {
			return nil, err
		}
		return CombineTypes{Left: left, Right: right}, nil

	case "Prefer":
		left, err := rawToExpr(m["left"])
		if err != nil {
			return nil, err
		}
		right, err := rawToExpr(m["right"])
		if err != nil {
			return nil, err
		}
		return Prefer{Left: left, Right: right}, nil

	case "RecordCompletion":
		typ, err := rawToExpr(m["type"])
		if err != nil {
			return nil, err
		}
		record, err := rawToExpr(m["record"])
		if err != nil {
			return nil, err
		}
		return RecordCompletion{Type: typ, Record: record}, nil

	case "Assert":
		ann, err := rawToExpr(m["annotation"])
		if err != nil {
			return nil, err
		}
		return Assert{Annotation: ann}, nil

	case "Equivalent":
		left, err := rawToExpr(m["left"])
		if err != nil {
			return nil, err
		}
		right, err := rawToExpr(m["right"])
		if err != nil {
			return nil, err
		}
		return Equivalent{Left: left, Right: right}, nil

	case "ImportAlt":
		primary, err := rawToExpr(m["primary"])
		if err != nil {
			return nil, err
		}
		fallback, err := rawToExpr(m["fallback"])
		if err != nil {
			return nil, err
		}
		return ImportAlt{Primary: primary, Fallback: fallback}, nil

	case "Note":
		sm, _ := m["span"].(map[string]any)
		e, err := rawToExpr(m["expr"])
		if err != nil {
			return nil, err
		}
		return Note{
			Span: Span{
				File: asString(sm["file"]), StartLine: asInt(sm["startLine"]), StartCol: asInt(sm["startCol"]),
				EndLine: asInt(sm["endLine"]), EndCol: asInt(sm["endCol"]),
			},
			Expr: e,
		}, nil

	default:
		return nil, fmt.Errorf("syntax: unknown Expr kind %q", kind)
	}
}

func rawToDouble(v any) (numeric.Double, error) {
	s := asString(v)
	switch s {
	case "NaN":
		return numeric.NewDouble(math.NaN()), nil
	case "Infinity":
		return numeric.NewDouble(math.Inf(1)), nil
	case "-Infinity":
		return numeric.NewDouble(math.Inf(-1)), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return numeric.Double{}, fmt.Errorf("syntax: invalid DoubleLit %q: %w", s, err)
	}
	return numeric.NewDouble(f), nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
