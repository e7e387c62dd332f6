package core

import (
	"fmt"
	"strings"

	"github.com/dhall-core/evalcore/pkg/syntax"
	"github.com/dhall-core/evalcore/pkg/values"
)

// evalTextLit evaluates a text literal's chunks left to right, fusing
// adjacent literal text and splicing embedded Text values directly into
// the chunk sequence (a neutral embedded value keeps its own chunk
// boundary) so the result is the unique normal form for that literal.
func evalTextLit(tr *tracker, env *values.Env, n syntax.TextLit) values.Val {
	acc := values.VTextLit{}
	for _, chunk := range n.Chunks {
		acc.Suffix += chunk.Prefix
		acc = appendTextValue(acc, eval(tr, env, chunk.Expr))
	}
	acc.Suffix += n.Suffix
	return acc
}

func appendTextValue(acc values.VTextLit, v values.Val) values.VTextLit {
	if vv, ok := v.(values.VTextLit); ok {
		if len(vv.Chunks) == 0 {
			acc.Suffix += vv.Suffix
			return acc
		}
		acc.Chunks = append(acc.Chunks, values.VTextChunk{
			Prefix: acc.Suffix + vv.Chunks[0].Prefix,
			Expr:   vv.Chunks[0].Expr,
		})
		acc.Chunks = append(acc.Chunks, vv.Chunks[1:]...)
		acc.Suffix = vv.Suffix
		return acc
	}
	acc.Chunks = append(acc.Chunks, values.VTextChunk{Prefix: acc.Suffix, Expr: v})
	acc.Suffix = ""
	return acc
}

func combineTextLit(l, r values.VTextLit) values.VTextLit {
	if len(r.Chunks) == 0 {
		return values.VTextLit{Chunks: l.Chunks, Suffix: l.Suffix + r.Suffix}
	}
	merged := make([]values.VTextChunk, 0, len(l.Chunks)+len(r.Chunks))
	merged = append(merged, l.Chunks...)
	merged = append(merged, values.VTextChunk{
		Prefix: l.Suffix + r.Chunks[0].Prefix,
		Expr:   r.Chunks[0].Expr,
	})
	merged = append(merged, r.Chunks[1:]...)
	return values.VTextLit{Chunks: merged, Suffix: r.Suffix}
}

func reduceTextAppend(tr *tracker, l, r values.Val) values.Val {
	lt, lok := l.(values.VTextLit)
	rt, rok := r.(values.VTextLit)
	if lok && rok {
		return combineTextLit(lt, rt)
	}
	return values.VOperator{Op: syntax.OpTextAppend, Left: l, Right: r}
}

func reduceTextShow(t values.Val) values.Val {
	tv, ok := t.(values.VTextLit)
	if !ok || len(tv.Chunks) != 0 {
		return rebuildApp(syntax.BTextShow, []values.Val{t})
	}
	return values.VTextLit{Suffix: quoteTextLiteral(tv.Suffix)}
}

// quoteTextLiteral renders s as a double-quoted Text literal, escaping the
// characters that would otherwise be ambiguous in source: the quote and
// backslash themselves, every "$" (unconditionally, since an unescaped one
// followed later by "{" would read back as interpolation), and control
// characters below U+0020, several of which have their own backslash form
// rather than falling back to \u00XX.
func quoteTextLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		case c == '$':
			fmt.Fprintf(&b, `\u%04x`, c)
		case c == '\b':
			b.WriteString(`\b`)
		case c == '\f':
			b.WriteString(`\f`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\r':
			b.WriteString(`\r`)
		case c < 0x20:
			fmt.Fprintf(&b, `\u%04x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
