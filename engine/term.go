package engine

import "fmt"

// Term is a microlog term.
type Term interface {
	fmt.Stringer
	// Unify unifies the term with t under env and returns the extended
	// environment. A false result means no binding exists; the returned
	// environment is then unchanged.
	Unify(t Term, env *Env) (*Env, bool)
}

// Contains checks if the variable v occurs anywhere inside t after
// dereferencing through env. It is the occurs check that keeps binding
// chains acyclic.
func Contains(t Term, v Variable, env *Env) bool {
	switch t := env.Resolve(t).(type) {
	case Variable:
		return t == v
	case *Compound:
		for _, a := range t.Args {
			if Contains(a, v, env) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
