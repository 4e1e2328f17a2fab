package engine

import (
	"strconv"
	"strings"
)

// Float is a floating-point constant.
type Float float64

func (f Float) String() string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	// Keep a decimal point so the text reads back as a Float.
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Unify unifies the float with t. As with Integer, kinds are strict.
func (f Float) Unify(t Term, env *Env) (*Env, bool) {
	switch t := env.Resolve(t).(type) {
	case Float:
		return env, f == t
	case Variable:
		return t.Unify(f, env)
	default:
		return env, false
	}
}
