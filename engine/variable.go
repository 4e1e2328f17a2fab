package engine

import (
	"fmt"
	"sync/atomic"
)

var varCounter int64

// Variable is a logical variable identified by a process-unique identity,
// not by its display name: renaming a clause mints fresh identities that may
// share a name with the originals.
type Variable int64

// NewVariable creates a fresh variable.
func NewVariable() Variable {
	n := atomic.AddInt64(&varCounter, 1)
	return Variable(n)
}

func (v Variable) String() string {
	return fmt.Sprintf("_%d", v)
}

// Unify unifies the variable with t, running the occurs check before any
// binding is made.
func (v Variable) Unify(t Term, env *Env) (*Env, bool) {
	r := env.Resolve(v)
	t = env.Resolve(t)
	w, ok := r.(Variable)
	if !ok {
		// v is already bound; unify its value instead.
		return r.Unify(t, env)
	}
	if u, ok := t.(Variable); ok && w == u {
		return env, true
	}
	if Contains(t, w, env) {
		return env, false
	}
	return env.Bind(w, t), true
}
