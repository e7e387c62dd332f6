package syntax_test

import (
	"testing"

	"github.com/dhall-core/evalcore/pkg/numeric"
	"github.com/dhall-core/evalcore/pkg/syntax"
)

func TestNodeKinds(t *testing.T) {
	nodes := []syntax.Expr{
		syntax.Const{Universe: syntax.UType},
		syntax.Builtin{Name: syntax.BBool},
		syntax.Var{Name: "x"},
		syntax.Lam{Name: "x"},
		syntax.Pi{Name: "x"},
		syntax.App{},
		syntax.Let{Name: "x"},
		syntax.Annot{},
		syntax.BoolLit{Value: true},
		syntax.NaturalLit{Value: numeric.NewNatural(1)},
		syntax.IntegerLit{},
		syntax.DoubleLit{},
		syntax.TextLit{},
		syntax.Operator{Op: syntax.OpBoolAnd},
		syntax.If{},
		syntax.SomeExpr{},
		syntax.ListLit{},
		syntax.RecordType{},
		syntax.RecordLit{},
		syntax.UnionType{},
		syntax.Merge{},
		syntax.ToMap{},
		syntax.Field{},
		syntax.Project{},
		syntax.Combine{},
		syntax.CombineTypes{},
		syntax.Prefer{},
		syntax.RecordCompletion{},
		syntax.Assert{},
		syntax.Equivalent{},
		syntax.Note{},
		syntax.ImportAlt{},
		syntax.Embed{},
	}

	expected := []string{
		"Const", "Builtin", "Var", "Lam", "Pi", "App", "Let", "Annot",
		"BoolLit", "NaturalLit", "IntegerLit", "DoubleLit", "TextLit",
		"Operator", "If", "Some", "ListLit", "RecordType", "RecordLit",
		"UnionType", "Merge", "ToMap", "Field", "Project", "Combine",
		"CombineTypes", "Prefer", "RecordCompletion", "Assert", "Equivalent",
		"Note", "ImportAlt", "Embed",
	}

	for i, node := range nodes {
		if got := node.Kind(); got != expected[i] {
			t.Errorf("node %d: got Kind() = %q, want %q", i, got, expected[i])
		}
	}
}

func TestDenote(t *testing.T) {
	inner := syntax.BoolLit{Value: true}
	noted := syntax.Note{Span: syntax.Span{File: "f"}, Expr: syntax.Note{Expr: inner}}

	if got := syntax.Denote(noted); got != inner {
		t.Errorf("Denote: got %#v, want %#v", got, inner)
	}
	if got := syntax.ShallowDenote(noted); got == inner {
		t.Errorf("ShallowDenote should only strip one layer, got the fully denoted expr")
	}
}

func TestRenote(t *testing.T) {
	original := syntax.Note{Span: syntax.Span{File: "f", StartLine: 3}, Expr: syntax.BoolLit{Value: true}}
	result := syntax.BoolLit{Value: false}

	renoted, ok := syntax.Renote(original, result).(syntax.Note)
	if !ok {
		t.Fatalf("Renote of a Note should stay a Note, got %T", syntax.Renote(original, result))
	}
	if renoted.Span != original.Span {
		t.Errorf("Renote should preserve the original span")
	}
	if renoted.Expr != result {
		t.Errorf("Renote should wrap the new result, not the original expr")
	}

	if got := syntax.Renote(syntax.BoolLit{Value: true}, result); got != result {
		t.Errorf("Renote of a non-Note should return result unchanged")
	}
}

func TestAppendTextLit(t *testing.T) {
	left := syntax.TextLit{Suffix: "ab"}
	right := syntax.TextLit{
		Chunks: []syntax.TextChunk{{Prefix: "cd", Expr: syntax.Var{Name: "x"}}},
		Suffix: "ef",
	}

	got := syntax.AppendTextLit(left, right)
	if len(got.Chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(got.Chunks))
	}
	if got.Chunks[0].Prefix != "abcd" {
		t.Errorf("got prefix %q, want %q", got.Chunks[0].Prefix, "abcd")
	}
	if got.Suffix != "ef" {
		t.Errorf("got suffix %q, want %q", got.Suffix, "ef")
	}

	plainOnly := syntax.AppendTextLit(left, syntax.NewTextLit("gh"))
	if !plainOnly.IsPlain() || plainOnly.PlainString() != "abgh" {
		t.Errorf("appending two plain literals should stay plain: got %#v", plainOnly)
	}
}
