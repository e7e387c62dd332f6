package core

import (
	"github.com/dhall-core/evalcore/pkg/syntax"
	"github.com/dhall-core/evalcore/pkg/values"
)

func reduceIntegerShow(i values.Val) values.Val {
	if iv, ok := i.(values.VInteger); ok {
		return values.VTextLit{Suffix: iv.Value.Show()}
	}
	return rebuildApp(syntax.BIntegerShow, []values.Val{i})
}

func reduceIntegerToDouble(i values.Val) values.Val {
	if iv, ok := i.(values.VInteger); ok {
		return values.VDouble{Value: iv.Value.ToDouble()}
	}
	return rebuildApp(syntax.BIntegerToDouble, []values.Val{i})
}

func reduceDoubleShow(d values.Val) values.Val {
	if dv, ok := d.(values.VDouble); ok {
		return values.VTextLit{Suffix: dv.Value.Show()}
	}
	return rebuildApp(syntax.BDoubleShow, []values.Val{d})
}
