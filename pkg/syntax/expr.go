// Package syntax defines the untyped, unchecked abstract-syntax tree that
// the evaluation core consumes. Concrete-syntax parsing, type checking, and
// import resolution are external collaborators; this package only names the
// tree shape they produce and the core reduces.
package syntax

import "github.com/dhall-core/evalcore/pkg/numeric"

// Span is a source location range, semantically transparent to evaluation.
// It exists so Note can carry it; nothing in this package inspects it.
type Span struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// Node is the interface implemented by every syntax tree node.
type Node interface {
	Kind() string
}

// Expr is the interface for all expression nodes in the language.
type Expr interface {
	Node
	exprNode() // sealed marker
}

// Universe enumerates the three sorts of the universe hierarchy.
type Universe int

const (
	UType Universe = iota
	UKind
	USort
)

func (u Universe) String() string {
	switch u {
	case UType:
		return "Type"
	case UKind:
		return "Kind"
	case USort:
		return "Sort"
	}
	return "<bad universe>"
}

// Const is a constant of the universe hierarchy: Type, Kind, or Sort.
type Const struct {
	Universe Universe
}

func (Const) Kind() string { return "Const" }
func (Const) exprNode()    {}

// BuiltinName names one of the builtin functions/types of spec.md §6.
type BuiltinName string

const (
	BBool     BuiltinName = "Bool"
	BNatural  BuiltinName = "Natural"
	BInteger  BuiltinName = "Integer"
	BDouble   BuiltinName = "Double"
	BText     BuiltinName = "Text"
	BList     BuiltinName = "List"
	BOptional BuiltinName = "Optional"

	BNone BuiltinName = "None"

	BNaturalFold       BuiltinName = "Natural/fold"
	BNaturalBuild      BuiltinName = "Natural/build"
	BNaturalIsZero     BuiltinName = "Natural/isZero"
	BNaturalEven       BuiltinName = "Natural/even"
	BNaturalOdd        BuiltinName = "Natural/odd"
	BNaturalToInteger  BuiltinName = "Natural/toInteger"
	BNaturalShow       BuiltinName = "Natural/show"
	BNaturalSubtract   BuiltinName = "Natural/subtract"
	BIntegerShow       BuiltinName = "Integer/show"
	BIntegerToDouble   BuiltinName = "Integer/toDouble"
	BDoubleShow        BuiltinName = "Double/show"
	BTextShow          BuiltinName = "Text/show"
	BListBuild         BuiltinName = "List/build"
	BListFold          BuiltinName = "List/fold"
	BListLength        BuiltinName = "List/length"
	BListHead          BuiltinName = "List/head"
	BListLast          BuiltinName = "List/last"
	BListIndexed       BuiltinName = "List/indexed"
	BListReverse       BuiltinName = "List/reverse"
	BOptionalFold      BuiltinName = "Optional/fold"
	BOptionalBuild     BuiltinName = "Optional/build"
)

// BuiltinArity is the exact arity table from spec.md §6. Builtins absent
// from this map (Bool, Natural, ..., None) are types/nullary constructors
// applied through ordinary App nodes, not saturated by arity here.
var BuiltinArity = map[BuiltinName]int{
	BNaturalFold:      4,
	BNaturalBuild:     1,
	BNaturalIsZero:    1,
	BNaturalEven:      1,
	BNaturalOdd:       1,
	BNaturalToInteger: 1,
	BNaturalShow:      1,
	BNaturalSubtract:  2,
	BIntegerShow:      1,
	BIntegerToDouble:  1,
	BDoubleShow:       1,
	BTextShow:         1,
	BListBuild:        2,
	BListFold:         5,
	BListLength:       2,
	BListHead:         2,
	BListLast:         2,
	BListIndexed:      2,
	BListReverse:      2,
	BOptionalFold:     5,
	BOptionalBuild:    2,
}

// Builtin is a reference to one of the named primitives of spec.md §6.
type Builtin struct {
	Name BuiltinName
}

func (Builtin) Kind() string { return "Builtin" }
func (Builtin) exprNode()    {}

// Var is a variable reference: a source name paired with a count-based
// de Bruijn index counting only binders of the same name (spec.md §3).
type Var struct {
	Name  string
	Index int
}

func (Var) Kind() string { return "Var" }
func (Var) exprNode()    {}

// Lam is a lambda abstraction: λ(Name : Type). Body.
type Lam struct {
	Name string
	Type Expr
	Body Expr
}

func (Lam) Kind() string { return "Lam" }
func (Lam) exprNode()    {}

// Pi is a dependent function type: ∀(Name : Type). Body.
type Pi struct {
	Name string
	Type Expr
	Body Expr
}

func (Pi) Kind() string { return "Pi" }
func (Pi) exprNode()    {}

// App is function application.
type App struct {
	Fn  Expr
	Arg Expr
}

func (App) Kind() string { return "App" }
func (App) exprNode()    {}

// Let is a let-binding, possibly with a type annotation on the bound value.
type Let struct {
	Name       string
	Annotation Expr // nil if unannotated
	Value      Expr
	Body       Expr
}

func (Let) Kind() string { return "Let" }
func (Let) exprNode()    {}

// Annot is an explicit type annotation: Expr : Type.
type Annot struct {
	Expr Expr
	Type Expr
}

func (Annot) Kind() string { return "Annot" }
func (Annot) exprNode()    {}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
}

func (BoolLit) Kind() string { return "BoolLit" }
func (BoolLit) exprNode()    {}

// NaturalLit is an arbitrary-precision unsigned integer literal.
type NaturalLit struct {
	Value numeric.Natural
}

func (NaturalLit) Kind() string { return "NaturalLit" }
func (NaturalLit) exprNode()    {}

// IntegerLit is an arbitrary-precision signed integer literal.
type IntegerLit struct {
	Value numeric.Integer
}

func (IntegerLit) Kind() string { return "IntegerLit" }
func (IntegerLit) exprNode()    {}

// DoubleLit is an IEEE 754 binary64 literal.
type DoubleLit struct {
	Value numeric.Double
}

func (DoubleLit) Kind() string { return "DoubleLit" }
func (DoubleLit) exprNode()    {}

// OpKind enumerates the binary operators with dedicated reduction rules.
type OpKind string

const (
	OpBoolAnd     OpKind = "&&"
	OpBoolOr      OpKind = "||"
	OpBoolEQ      OpKind = "=="
	OpBoolNE      OpKind = "!="
	OpNaturalPlus OpKind = "+"
	OpNaturalTimes OpKind = "*"
	OpTextAppend  OpKind = "++"
	OpListAppend  OpKind = "#"
)

// Operator is a binary operator application.
type Operator struct {
	Op    OpKind
	Left  Expr
	Right Expr
}

func (Operator) Kind() string { return "Operator" }
func (Operator) exprNode()    {}

// If is a conditional expression.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (If) Kind() string { return "If" }
func (If) exprNode()    {}

// SomeExpr wraps a value as Some value (the Optional constructor). None is
// the builtin BNone applied to a type via App, not a dedicated node.
type SomeExpr struct {
	Value Expr
}

func (SomeExpr) Kind() string { return "Some" }
func (SomeExpr) exprNode()    {}

// ListLit is a list literal. Type is non-nil exactly when the list is empty
// (spec.md requires an explicit element type for [] : List T).
type ListLit struct {
	Type     Expr
	Elements []Expr
}

func (ListLit) Kind() string { return "ListLit" }
func (ListLit) exprNode()    {}

// RecordTypeField is one label:Type entry of a RecordType.
type RecordTypeField struct {
	Label string
	Type  Expr
}

// RecordType is a record type: { label : Type, ... }. Fields need not be
// sorted in source order; the evaluator canonicalizes on eval (spec.md §3
// invariant 3).
type RecordType struct {
	Fields []RecordTypeField
}

func (RecordType) Kind() string { return "RecordType" }
func (RecordType) exprNode()    {}

// RecordLitField is one label=Value entry of a RecordLit.
type RecordLitField struct {
	Label string
	Value Expr
}

// RecordLit is a record literal: { label = Value, ... }.
type RecordLit struct {
	Fields []RecordLitField
}

func (RecordLit) Kind() string { return "RecordLit" }
func (RecordLit) exprNode()    {}

// UnionAlt is one label:Type (or bare label) alternative of a UnionType.
type UnionAlt struct {
	Label string
	Type  Expr // nil for a nullary alternative
}

// UnionType is a union type: < Label : Type | Label2 | ... >.
type UnionType struct {
	Alternatives []UnionAlt
}

func (UnionType) Kind() string { return "UnionType" }
func (UnionType) exprNode()    {}

// Merge dispatches a union value to per-alternative handlers.
type Merge struct {
	Handlers   Expr // record of label -> handler function
	Union      Expr
	Annotation Expr // nil if unannotated
}

func (Merge) Kind() string { return "Merge" }
func (Merge) exprNode()    {}

// ToMap converts a record into a List of {mapKey, mapValue} records.
type ToMap struct {
	Record     Expr
	Annotation Expr // nil if unannotated
}

func (ToMap) Kind() string { return "ToMap" }
func (ToMap) exprNode()    {}

// Field projects a single label out of a record or union.
type Field struct {
	Record Expr
	Label  string
}

func (Field) Kind() string { return "Field" }
func (Field) exprNode()    {}

// ProjectSelector is either a literal set of labels or a record-type
// expression whose labels select the projection (spec.md §4.3, Project).
type ProjectSelector struct {
	Labels []string // non-nil for Project-by-labels
	Type   Expr      // non-nil for Project-by-type
}

// Project restricts a record to a subset of labels, named either directly
// or via the labels of a record type.
type Project struct {
	Record   Expr
	Selector ProjectSelector
}

func (Project) Kind() string { return "Project" }
func (Project) exprNode()    {}

// Combine is record combine (∧): recursive merge; a label present on both
// sides has its two values combined in turn.
type Combine struct {
	Left  Expr
	Right Expr
}

func (Combine) Kind() string { return "Combine" }
func (Combine) exprNode()    {}

// CombineTypes is the deep combine of record types (⩓).
type CombineTypes struct {
	Left  Expr
	Right Expr
}

func (CombineTypes) Kind() string { return "CombineTypes" }
func (CombineTypes) exprNode()    {}

// Prefer is the right-biased record union (⫽).
type Prefer struct {
	Left  Expr
	Right Expr
}

func (Prefer) Kind() string { return "Prefer" }
func (Prefer) exprNode()    {}

// RecordCompletion is record-completion sugar (T::r), desugared on eval to
// (T.default ⫽ r) : T.Type.
type RecordCompletion struct {
	Type   Expr
	Record Expr
}

func (RecordCompletion) Kind() string { return "RecordCompletion" }
func (RecordCompletion) exprNode()    {}

// Assert evaluates and wraps an equivalence proof; the type checker is
// responsible for having verified the proposition holds.
type Assert struct {
	Annotation Expr
}

func (Assert) Kind() string { return "Assert" }
func (Assert) exprNode()    {}

// Equivalent is the a ≡ b equivalence proposition, used as Assert's
// Annotation.
type Equivalent struct {
	Left  Expr
	Right Expr
}

func (Equivalent) Kind() string { return "Equivalent" }
func (Equivalent) exprNode()    {}

// TextChunk is one literal-prefix/embedded-expression splice pair of a
// TextLit (spec.md §6).
type TextChunk struct {
	Prefix string
	Expr   Expr
}

// TextLit is a text literal: an interleaving of literal string chunks and
// embedded expressions, terminated by a literal suffix.
type TextLit struct {
	Chunks []TextChunk
	Suffix string
}

func (TextLit) Kind() string { return "TextLit" }
func (TextLit) exprNode()    {}

// Note attaches source-span metadata to an expression. Evaluation ignores
// Span entirely (spec.md §4.1).
type Note struct {
	Span Span
	Expr Expr
}

func (Note) Kind() string { return "Note" }
func (Note) exprNode()    {}

// ImportAlt evaluates to Primary; Fallback is the import layer's concern.
type ImportAlt struct {
	Primary  Expr
	Fallback Expr
}

func (ImportAlt) Kind() string { return "ImportAlt" }
func (ImportAlt) exprNode()    {}

// Embed is a leaf parameterized by an abstract payload, used by the import
// subsystem to splice in not-yet-resolved or externally-resolved content.
// The core never inspects Value; it is opaque cargo.
type Embed struct {
	Value any
}

func (Embed) Kind() string { return "Embed" }
func (Embed) exprNode()    {}
