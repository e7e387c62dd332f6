package values

// Env is an immutable snoc-list of binder frames, growing monotonically as
// evaluation descends under binders. It never mutates once built: every
// extension returns a new *Env sharing its parent's tail, the same
// structural-sharing discipline the teacher's evaluator used a mutable
// parent-chained map for, generalized here to an immutable chain so that
// a Val closing over an *Env is safe to keep around after its frame's
// caller has returned.
//
// A nil *Env denotes Empty.
type Env struct {
	parent *Env
	name   string
	bound  bool // true for Extend, false for Skip
	value  Val  // meaningful only when bound
}

// Empty is the empty environment.
var Empty *Env

// Skip extends env with an abstract binder for name, used when evaluating
// under a binder with no concrete argument yet (conversion checking,
// quoting). The corresponding value is a fresh VVar at level countEnv(env).
func Skip(env *Env, name string) *Env {
	return &Env{parent: env, name: name, bound: false}
}

// Extend extends env with a concrete binder for name bound to value.
func Extend(env *Env, name string, value Val) *Env {
	return &Env{parent: env, name: name, bound: true, value: value}
}

// FreshVar returns the VVar that Skip(env, name) binds name to: a rigid
// variable at a level fresh with respect to every binder in env, named
// name for quoting back to a readable (if possibly shadowed) identifier.
func FreshVar(env *Env, name string) Val {
	return VVar{Name: name, Level: countEnv(env)}
}

// countEnv counts the total number of binder frames (Skip or Extend) in
// env, whatever their names; it gives the level of a fresh VVar bound by
// a frame pushed onto env.
func countEnv(env *Env) int {
	n := 0
	for e := env; e != nil; e = e.parent {
		n++
	}
	return n
}

// Lookup resolves a source variable (name, index) to its value: index
// counts outward from the innermost binder sharing name, 0 being the
// nearest. A Skip frame for that name yields its fresh VVar; an Extend
// frame yields its bound value.
//
// Falling off Empty without having satisfied index means name refers to a
// binder outside anything this Env was ever extended with: a free variable
// the core tolerates rather than rejects. Rather than panicking, Lookup
// hands back a rigid variable at a negative level, distinct from every
// level a real binder can produce, so it stays uniquely itself under conv
// and quote instead of colliding with an in-scope VVar.
func Lookup(env *Env, name string, index int) Val {
	remaining := index
	for e := env; e != nil; e = e.parent {
		if e.name != name {
			continue
		}
		if remaining == 0 {
			if e.bound {
				return e.value
			}
			return VVar{Name: name, Level: countEnv(e.parent)}
		}
		remaining--
	}
	return VVar{Name: name, Level: -remaining - 1}
}
