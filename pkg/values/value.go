// Package values defines Val, the semantic domain that evaluation produces
// and quoting consumes: a mix of canonical constructors (numbers, records,
// lambdas-as-host-closures) and neutral/stuck forms headed by a rigid
// variable, used to represent both concrete results and open terms under
// binders.
package values

import (
	"github.com/dhall-core/evalcore/pkg/numeric"
	"github.com/dhall-core/evalcore/pkg/syntax"
)

// Val is the interface implemented by every value in the semantic domain.
type Val interface {
	valNode() // sealed marker
}

// VConst is a universe constant.
type VConst struct {
	Universe syntax.Universe
}

func (VConst) valNode() {}

// VVar is a rigid variable, introduced by evaluating under a Skip frame.
// Level is a globally fresh counter within a conversion/quoting context,
// distinct from the name-stratified counts Expr.Var uses in source syntax.
type VVar struct {
	Name  string
	Level int
}

func (VVar) valNode() {}

// VBuiltin is a reference to one of the named primitives with no reduction
// arity (a type former such as Bool, Natural or List); applying one gives a
// VApp spine headed by the VBuiltin. A builtin with arity > 0 evaluates to
// a curried VLam tagged InfoBuiltinPartial instead, and appears as a
// VBuiltin only at the head of a stuck spine that a reducer rebuilt
// because an argument was neutral.
type VBuiltin struct {
	Name syntax.BuiltinName
}

func (VBuiltin) valNode() {}

// HLamInfo tags why a host lambda exists, so quote can rebuild the surface
// form it came from (a lambda, a partially applied builtin, or a union
// constructor). There are exactly three tags: InfoTyped,
// InfoBuiltinPartial and InfoUnionConstructor.
type HLamInfo interface {
	hLamInfo()
}

// InfoTyped marks a host lambda standing in for a surface Lam (whether
// sourced directly from a syntax.Lam or synthesized internally, e.g. the
// successor function Natural/build applies its argument to), carrying the
// binder's name and domain type so quote can rebuild syntax.Lam exactly:
// apply Fn to a fresh rigid variable of that type and quote the result.
type InfoTyped struct {
	Name string
	Type Val
}

func (InfoTyped) hLamInfo() {}

// InfoBuiltinPartial marks a host lambda standing in for a partially
// applied builtin of known arity, carrying the builtin's name and the
// arguments collected so far so quote can rebuild the exact application
// spine (syntax.Builtin applied via syntax.App) instead of a beta-expanded
// closure body.
type InfoBuiltinPartial struct {
	Name      syntax.BuiltinName
	Arity     int
	Collected []Val
}

func (InfoBuiltinPartial) hLamInfo() {}

// InfoUnionConstructor marks the function a union type's typed alternative
// denotes when projected by label but not yet applied to a value; quote
// rebuilds it as the field projection it actually is (UnionType.Label)
// rather than a beta-expanded closure body.
type InfoUnionConstructor struct {
	Label        string
	Alternatives []VUnionAlt
}

func (InfoUnionConstructor) hLamInfo() {}

// VLam is a function value represented as a host closure: Fn computes the
// result for any argument without re-walking source syntax for the cases
// that matter (builtin reducers); Info records enough to quote it back to
// the right surface form, and for ordinary lambdas Fn closes over a
// syntax.Expr body via the evaluator's own Env-extension logic.
type VLam struct {
	Info HLamInfo
	Fn   func(Val) Val
}

func (VLam) valNode() {}

// VPi is a dependent function type. Codomain is evaluated lazily per
// argument, mirroring VLam's host-closure representation.
type VPi struct {
	Name     string
	Domain   Val
	Codomain func(Val) Val
}

func (VPi) valNode() {}

// VApp is a stuck application, meaning Fn could not be reduced further
// (it is a VVar, a VBuiltin, or another VApp/neutral form). A saturated
// builtin application either reduces or, when a needed argument is
// neutral, is rebuilt as a VApp spine headed by its VBuiltin.
type VApp struct {
	Fn  Val
	Arg Val
}

func (VApp) valNode() {}

// VBool, VNatural, VInteger, VDouble are the numeric/boolean literal values.
type VBool struct{ Value bool }

func (VBool) valNode() {}

type VNatural struct{ Value numeric.Natural }

func (VNatural) valNode() {}

type VInteger struct{ Value numeric.Integer }

func (VInteger) valNode() {}

type VDouble struct{ Value numeric.Double }

func (VDouble) valNode() {}

// VTextChunk is one prefix/embedded-value splice pair of a VTextLit.
type VTextChunk struct {
	Prefix string
	Expr   Val
}

// VTextLit is a (possibly still-open) text literal value.
type VTextLit struct {
	Chunks []VTextChunk
	Suffix string
}

func (VTextLit) valNode() {}

// VSome is a present Optional value.
type VSome struct {
	Value Val
}

func (VSome) valNode() {}

// VNone is an absent Optional value of a known element type.
type VNone struct {
	Type Val
}

func (VNone) valNode() {}

// VList is a list value with a known element type (needed to show/typecheck
// the empty list) and its elements.
type VList struct {
	ElemType Val
	Elements []Val
}

func (VList) valNode() {}

// VRecordTypeField is one label:Type entry of a VRecordType, always stored
// in sorted-by-label order (spec invariant: canonical label order).
type VRecordTypeField struct {
	Label string
	Type  Val
}

type VRecordType struct {
	Fields []VRecordTypeField
}

func (VRecordType) valNode() {}

// VRecordLitField is one label=Value entry of a VRecordLit, sorted by label.
type VRecordLitField struct {
	Label string
	Value Val
}

type VRecordLit struct {
	Fields []VRecordLitField
}

func (VRecordLit) valNode() {}

// VUnionAlt is one alternative of a VUnionType, sorted by label.
type VUnionAlt struct {
	Label string
	Type  Val // nil for a nullary alternative
}

type VUnionType struct {
	Alternatives []VUnionAlt
}

func (VUnionType) valNode() {}

// VInject is a union value tagged with Label, carrying the full alternative
// set so it can be quoted back through its originating UnionType's field
// selection. Value is nil for a nullary alternative.
type VInject struct {
	Label        string
	Value        Val
	Alternatives []VUnionAlt
}

func (VInject) valNode() {}

// VIf is a stuck conditional, persisting only when Cond is neutral.
type VIf struct {
	Cond, Then, Else Val
}

func (VIf) valNode() {}

// VOperator is a stuck binary operator application, persisting only when
// at least one operand is neutral (or, for the boolean operators, neither
// operand collapses via the short-circuit/idempotence rules).
type VOperator struct {
	Op          syntax.OpKind
	Left, Right Val
}

func (VOperator) valNode() {}

// VCombine, VCombineTypes, VPrefer are stuck record operators, persisting
// only when at least one operand is neutral. Record completion has no
// value form of its own: it reduces through Field and Prefer.
type VCombine struct{ Left, Right Val }

func (VCombine) valNode() {}

type VCombineTypes struct{ Left, Right Val }

func (VCombineTypes) valNode() {}

type VPrefer struct{ Left, Right Val }

func (VPrefer) valNode() {}

// VMerge is a stuck merge, persisting only when Union is neutral.
type VMerge struct {
	Handlers, Union Val
}

func (VMerge) valNode() {}

// VToMap is a stuck toMap, persisting only when Record is neutral (an empty
// record literal is never neutral, so toMap on one reduces immediately given
// its required type annotation).
type VToMap struct {
	Record Val
	Type   Val // the toMap annotation (the whole List type), nil if absent
}

func (VToMap) valNode() {}

// VField is a stuck field projection, persisting only when Record is
// neutral.
type VField struct {
	Record Val
	Label  string
}

func (VField) valNode() {}

// VProject is a stuck projection, persisting only when Record is neutral,
// or (for a by-type selector) when the selector's type expression never
// resolved to a concrete VRecordType to read labels off of. Exactly one of
// Labels and TypeSelector is populated: a by-label projection (r.{a, b})
// sets Labels, a by-type projection (r.(T)) that stayed stuck sets
// TypeSelector instead, so the otherwise-unrecoverable selector expression
// isn't lost the way a nil label set would lose it.
type VProject struct {
	Record       Val
	Labels       []string
	TypeSelector Val
}

func (VProject) valNode() {}

// VAssert is a stuck assert, quoted back as-is; the type checker is
// responsible for having verified the annotation before evaluation sees it.
type VAssert struct {
	Type Val
}

func (VAssert) valNode() {}

// VEquivalent is a stuck a ≡ b proposition.
type VEquivalent struct {
	Left, Right Val
}

func (VEquivalent) valNode() {}
