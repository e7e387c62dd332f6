package core

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/dhall-core/evalcore/pkg/diagnostics"
)

// InternalError is the one error kind this package ever returns: a stuck
// or unreachable state that a well-typed term should never reach. It is
// never handled and recovered from internally; callers are expected to
// surface it as a fixed "compiler bug" report rather than interpret it.
type InternalError struct {
	Diagnostic diagnostics.Diagnostic
	cause      error
}

func (e *InternalError) Error() string {
	return diagnostics.FormatDiagnostic(e.Diagnostic, true)
}

func (e *InternalError) Unwrap() error { return e.cause }

// newInternalError builds an InternalError, wrapping it with a stack trace
// via pkg/errors so a caller that logs %+v sees where in the core the
// inconsistency was detected, not just the message.
func newInternalError(format string, args ...any) *InternalError {
	msg := fmt.Sprintf(format, args...)
	return &InternalError{
		Diagnostic: diagnostics.MakeDiag(msg, nil, "this indicates a type checker or evaluator bug"),
		cause:      errors.New(msg),
	}
}

// panicInternal is used in switch defaults across this package: every
// reduction function is total over well-typed input, so reaching a default
// case means the term in hand was never well-typed to begin with.
func panicInternal(format string, args ...any) {
	panic(newInternalError(format, args...))
}

// recoverInternal turns a panic raised by panicInternal (or by a slice
// index/type assertion bug inside this package) into an *InternalError
// return value, used at the top-level Normalize entry point so the public
// API never panics across its boundary.
func recoverInternal(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if ie, ok := r.(*InternalError); ok {
		*errp = ie
		return
	}
	*errp = newInternalError("%v", r)
}
