package diagnostics_test

import (
	"strings"
	"testing"

	"github.com/dhall-core/evalcore/pkg/diagnostics"
	"github.com/dhall-core/evalcore/pkg/syntax"
)

func TestMakeDiag(t *testing.T) {
	span := &syntax.Span{File: "config.dh", StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 5}
	d := diagnostics.MakeDiag("stuck term escaped conversion checking", span, "this is a bug, please report it")

	if d.Code != diagnostics.EInternal {
		t.Errorf("got Code = %q, want %q", d.Code, diagnostics.EInternal)
	}
	if d.Message != "stuck term escaped conversion checking" {
		t.Errorf("got Message = %q, want the message passed to MakeDiag", d.Message)
	}
}

func TestFormatDiagnosticPretty(t *testing.T) {
	span := &syntax.Span{File: "config.dh", StartLine: 3, StartCol: 5, EndLine: 3, EndCol: 10}
	d := diagnostics.MakeDiag("quote produced an unrenderable neutral", span, "please report this")

	out := diagnostics.FormatDiagnostic(d, true)
	if !strings.Contains(out, "error[E_INTERNAL]") {
		t.Errorf("expected error code in output, got: %s", out)
	}
	if !strings.Contains(out, "config.dh:3:5") {
		t.Errorf("expected location in output, got: %s", out)
	}
	if !strings.Contains(out, "hint:") {
		t.Errorf("expected hint in output, got: %s", out)
	}
}

func TestFormatDiagnosticJSON(t *testing.T) {
	d := diagnostics.MakeDiag("evaluator reached an unreachable case", nil, "")
	out := diagnostics.FormatDiagnostic(d, false)
	if !strings.Contains(out, `"code":"E_INTERNAL"`) {
		t.Errorf("expected JSON code in output, got: %s", out)
	}
}
