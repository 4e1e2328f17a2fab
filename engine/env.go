package engine

// Env is a substitution: an immutable chain of variable bindings. The zero
// value (a nil *Env) is the empty substitution. Bind never mutates; it
// returns a child environment, so each search branch extends its own lineage
// and abandoning a branch is dropping a pointer.
type Env struct {
	up      *Env
	binding binding
}

type binding struct {
	variable Variable
	value    Term
}

// Bind returns a new environment with v bound to t on top of e.
func (e *Env) Bind(v Variable, t Term) *Env {
	return &Env{
		up:      e,
		binding: binding{variable: v, value: t},
	}
}

// Lookup returns the binding of v, if any.
func (e *Env) Lookup(v Variable) (Term, bool) {
	for env := e; env != nil; env = env.up {
		if env.binding.variable == v {
			return env.binding.value, true
		}
	}
	return nil, false
}

// Resolve follows the binding chain of t and returns the first non-variable
// term or the last unbound variable. Chains are acyclic because bindings are
// occurs-checked, so this terminates.
func (e *Env) Resolve(t Term) Term {
	for {
		v, ok := t.(Variable)
		if !ok {
			return t
		}
		ref, ok := e.Lookup(v)
		if !ok {
			return v
		}
		t = ref
	}
}

// Simplify replaces every variable occurrence in t with its current binding,
// recursively. Unbound variables are left in place.
func (e *Env) Simplify(t Term) Term {
	switch t := e.Resolve(t).(type) {
	case *Compound:
		c := Compound{
			Functor: t.Functor,
			Args:    make([]Term, len(t.Args)),
		}
		for i, a := range t.Args {
			c.Args[i] = e.Simplify(a)
		}
		return &c
	default:
		return t
	}
}

// FreeVariables extracts the unbound variables in the given terms, in
// first-occurrence order.
func (e *Env) FreeVariables(ts ...Term) []Variable {
	var fvs []Variable
	for _, t := range ts {
		fvs = e.appendFreeVariables(fvs, t)
	}
	return fvs
}

func (e *Env) appendFreeVariables(fvs []Variable, t Term) []Variable {
	switch t := e.Resolve(t).(type) {
	case Variable:
		for _, v := range fvs {
			if v == t {
				return fvs
			}
		}
		return append(fvs, t)
	case *Compound:
		for _, a := range t.Args {
			fvs = e.appendFreeVariables(fvs, a)
		}
	}
	return fvs
}
