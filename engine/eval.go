package engine

// eval evaluates an arithmetic expression term to an Integer or a Float.
// Leaves are numeric constants; interior nodes are the binary operators
// + - * and /. Anything else, including an unbound variable, is an
// evaluation error.
func eval(expr Term, env *Env) (Term, error) {
	switch t := env.Resolve(expr).(type) {
	case Integer:
		return t, nil
	case Float:
		return t, nil
	case Variable:
		return nil, &InstantiationError{Culprit: t}
	case *Compound:
		if len(t.Args) != 2 {
			return nil, &TypeError{Type: "an arithmetic operator", Culprit: t}
		}
		l, err := eval(t.Args[0], env)
		if err != nil {
			return nil, err
		}
		r, err := eval(t.Args[1], env)
		if err != nil {
			return nil, err
		}
		switch t.Functor {
		case "+":
			return arith(l, r,
				func(i, j Integer) Term { return i + j },
				func(f, g Float) Term { return f + g }), nil
		case "-":
			return arith(l, r,
				func(i, j Integer) Term { return i - j },
				func(f, g Float) Term { return f - g }), nil
		case "*":
			return arith(l, r,
				func(i, j Integer) Term { return i * j },
				func(f, g Float) Term { return f * g }), nil
		case "/":
			// Division is true division: the result is always a Float.
			if asFloat(r) == 0 {
				return nil, ErrDivisionByZero
			}
			return asFloat(l) / asFloat(r), nil
		default:
			return nil, &TypeError{Type: "an arithmetic operator", Culprit: t}
		}
	default:
		return nil, &TypeError{Type: "a number", Culprit: t}
	}
}

// arith applies the Integer operator when both operands are Integers and the
// Float operator otherwise, promoting a mixed Integer operand.
func arith(l, r Term, fi func(Integer, Integer) Term, ff func(Float, Float) Term) Term {
	if li, ok := l.(Integer); ok {
		if ri, ok := r.(Integer); ok {
			return fi(li, ri)
		}
	}
	return ff(asFloat(l), asFloat(r))
}

func asFloat(t Term) Float {
	switch t := t.(type) {
	case Integer:
		return Float(t)
	case Float:
		return t
	default:
		return 0
	}
}
