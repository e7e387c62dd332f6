// Package diagnostics defines the single diagnostic shape the evaluation
// core ever raises: an internal inconsistency, never a user-facing parse or
// type error (those belong to the type checker and parser, external
// collaborators this module does not implement).
package diagnostics

import (
	"encoding/json"
	"fmt"

	"github.com/dhall-core/evalcore/pkg/syntax"
)

// EInternal is the only diagnostic code this core ever produces: a
// well-typed term reached a state the evaluator has no reduction rule for,
// meaning either the type checker let through an ill-typed term or the
// evaluator itself has a bug. Neither is recoverable.
const EInternal = "E_INTERNAL"

// Diagnostic is a single internal-inconsistency report.
type Diagnostic struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Span    *syntax.Span `json:"span,omitempty"`
	Hint    string      `json:"hint,omitempty"`
}

// MakeDiag builds an EInternal diagnostic.
func MakeDiag(message string, span *syntax.Span, hint string) Diagnostic {
	return Diagnostic{Code: EInternal, Message: message, Span: span, Hint: hint}
}

// FormatDiagnostic formats a single diagnostic for display, either as JSON
// (pretty=false) or as a one-paragraph human-readable report.
func FormatDiagnostic(d Diagnostic, pretty bool) string {
	if !pretty {
		b, _ := json.Marshal(d)
		return string(b)
	}
	loc := "<unknown>"
	if d.Span != nil {
		loc = fmt.Sprintf("%s:%d:%d", d.Span.File, d.Span.StartLine, d.Span.StartCol)
	}
	out := fmt.Sprintf("error[%s]: %s\n  --> %s", d.Code, d.Message, loc)
	if d.Hint != "" {
		out += fmt.Sprintf("\n  hint: %s", d.Hint)
	}
	return out
}
