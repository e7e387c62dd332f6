package values_test

import (
	"testing"

	"github.com/dhall-core/evalcore/pkg/values"
)

func TestLookupExtend(t *testing.T) {
	env := values.Extend(values.Empty, "x", values.VBool{Value: true})
	got := values.Lookup(env, "x", 0)
	b, ok := got.(values.VBool)
	if !ok || !b.Value {
		t.Errorf("Lookup(x, 0) = %#v, want VBool{true}", got)
	}
}

func TestLookupNameStratified(t *testing.T) {
	// x@1 skips the innermost x and resolves to the outer one, while a
	// binder for a different name in between does not count against the
	// index at all.
	env := values.Extend(values.Empty, "x", values.VBool{Value: false})
	env = values.Extend(env, "y", values.VBool{Value: true})
	env = values.Extend(env, "x", values.VBool{Value: true})

	inner := values.Lookup(env, "x", 0)
	outer := values.Lookup(env, "x", 1)
	throughY := values.Lookup(env, "y", 0)

	if b, ok := inner.(values.VBool); !ok || !b.Value {
		t.Errorf("x@0 = %#v, want VBool{true}", inner)
	}
	if b, ok := outer.(values.VBool); !ok || b.Value {
		t.Errorf("x@1 = %#v, want VBool{false}", outer)
	}
	if b, ok := throughY.(values.VBool); !ok || !b.Value {
		t.Errorf("y@0 = %#v, want VBool{true}", throughY)
	}
}

func TestLookupSkipYieldsFreshVar(t *testing.T) {
	env := values.Skip(values.Empty, "x")
	got := values.Lookup(env, "x", 0)
	v, ok := got.(values.VVar)
	if !ok {
		t.Fatalf("Lookup on a Skip frame = %#v, want values.VVar", got)
	}
	if v.Name != "x" {
		t.Errorf("VVar.Name = %q, want %q", v.Name, "x")
	}
	if v.Level != 0 {
		t.Errorf("VVar.Level = %d, want 0 (no prior binders)", v.Level)
	}
}

func TestFreshVarMatchesSkip(t *testing.T) {
	env := values.Extend(values.Empty, "n", values.VBool{Value: true})
	fresh := values.FreshVar(env, "x")
	skipped := values.Skip(env, "x")
	got := values.Lookup(skipped, "x", 0)

	if fresh != got {
		t.Errorf("FreshVar(env, x) = %#v, want the VVar Skip(env, x) resolves to (%#v)", fresh, got)
	}
}

func TestFreshVarLevelIncreasesWithDepth(t *testing.T) {
	env := values.Empty
	for i, name := range []string{"a", "b", "c"} {
		v := values.FreshVar(env, name).(values.VVar)
		if v.Level != i {
			t.Errorf("FreshVar level at depth %d = %d, want %d", i, v.Level, i)
		}
		env = values.Skip(env, name)
	}
}

// TestLookupUnboundYieldsNegativeLevelVar checks that falling off Empty for
// a name with no enclosing binder at all is tolerated, not a panic: it
// produces a rigid VVar at a negative level, distinct from every level a
// real binder can ever produce.
func TestLookupUnboundYieldsNegativeLevelVar(t *testing.T) {
	got := values.Lookup(values.Empty, "z", 0)
	v, ok := got.(values.VVar)
	if !ok {
		t.Fatalf("Lookup on an unbound variable = %#v, want values.VVar", got)
	}
	if v.Name != "z" || v.Level != -1 {
		t.Errorf("Lookup(Empty, z, 0) = %#v, want VVar{Name: \"z\", Level: -1}", v)
	}
}

// TestLookupUnboundHigherIndexYieldsMoreNegativeLevel checks that a higher
// requested index for a free variable produces a correspondingly more
// negative level, so z@0 and z@1 (two distinct unresolvable references)
// never collide under conv.
func TestLookupUnboundHigherIndexYieldsMoreNegativeLevel(t *testing.T) {
	got := values.Lookup(values.Empty, "z", 1)
	v, ok := got.(values.VVar)
	if !ok {
		t.Fatalf("Lookup(Empty, z, 1) = %#v, want values.VVar", got)
	}
	if v.Level != -2 {
		t.Errorf("VVar.Level = %d, want -2 (index 1 still unresolved after the last binder)", v.Level)
	}
}
