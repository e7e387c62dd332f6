package syntax

// NewTextLit builds a TextLit from a single literal string, with no
// embedded expressions.
func NewTextLit(s string) TextLit {
	return TextLit{Suffix: s}
}

// IsPlain reports whether t has no embedded expressions, i.e. it denotes a
// constant Text value end to end.
func (t TextLit) IsPlain() bool { return len(t.Chunks) == 0 }

// PlainString returns t's constant string, valid only when IsPlain is true.
func (t TextLit) PlainString() string { return t.Suffix }

// AppendTextLit concatenates two text literals the way TextAppend (++) does
// on two TextLit operands: the left literal's suffix fuses with the right
// literal's first prefix (or its whole suffix, if the right literal has no
// chunks), and the chunk sequences otherwise concatenate in order.
func AppendTextLit(left, right TextLit) TextLit {
	if len(right.Chunks) == 0 {
		return TextLit{Chunks: left.Chunks, Suffix: left.Suffix + right.Suffix}
	}
	merged := make([]TextChunk, 0, len(left.Chunks)+len(right.Chunks))
	merged = append(merged, left.Chunks...)
	merged = append(merged, TextChunk{
		Prefix: left.Suffix + right.Chunks[0].Prefix,
		Expr:   right.Chunks[0].Expr,
	})
	merged = append(merged, right.Chunks[1:]...)
	return TextLit{Chunks: merged, Suffix: right.Suffix}
}
