package syntax

// denote strips every outer Note wrapper, however many are stacked; Notes
// nested inside child positions are left in place. Evaluation and
// quoting both operate on denoted expressions; Note is purely a carrier for
// diagnostics produced upstream of this package.
func denote(e Expr) Expr {
	if n, ok := e.(Note); ok {
		return denote(n.Expr)
	}
	return e
}

// Denote is the exported form of denote, used by callers outside this
// package (core.eval in particular) that need to see through Note before
// matching on an expression's head.
func Denote(e Expr) Expr { return denote(e) }

// ShallowDenote strips only one layer of Note, leaving any Note nested
// inside a child position untouched. Used where a caller wants to inspect
// the immediate head without recursing into children it hasn't visited yet.
func ShallowDenote(e Expr) Expr {
	if n, ok := e.(Note); ok {
		return n.Expr
	}
	return e
}

// Renote re-wraps result in the same Note the original expression carried,
// if any; used so that quote/normalize can optionally preserve source spans
// on the outermost node of a reduction result. The evaluation core itself
// never calls this — it always produces denoted output — but it is kept
// here for callers (e.g. a future formatter) that want span-preserving
// normalization.
func Renote(original, result Expr) Expr {
	if n, ok := original.(Note); ok {
		return Note{Span: n.Span, Expr: result}
	}
	return result
}
