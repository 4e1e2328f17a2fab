package engine

import "strconv"

// Integer is an integer constant.
type Integer int64

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// Unify unifies the integer with t. Numeric kinds are strict: an Integer
// unifies only with the identical Integer, never with a Float of the same
// value.
func (i Integer) Unify(t Term, env *Env) (*Env, bool) {
	switch t := env.Resolve(t).(type) {
	case Integer:
		return env, i == t
	case Variable:
		return t.Unify(i, env)
	default:
		return env, false
	}
}
