package engine

// Unify unifies t1 and t2 under the current environment. (=)/2
func Unify(t1, t2 Term, k Cont, env *Env) *Promise {
	env, ok := t1.Unify(t2, env)
	if !ok {
		return Bool(false)
	}
	return k(env)
}

// NotUnifiable succeeds iff t1 and t2 cannot be unified. The trial bindings
// are discarded. (/=)/2
func NotUnifiable(t1, t2 Term, k Cont, env *Env) *Promise {
	if _, ok := t1.Unify(t2, env); ok {
		return Bool(false)
	}
	return k(env)
}

// TypeAtom succeeds iff t resolves to a symbolic (non-numeric) atom. (atom)/1
func TypeAtom(t Term, k Cont, env *Env) *Promise {
	if _, ok := env.Resolve(t).(Atom); !ok {
		return Bool(false)
	}
	return k(env)
}

// TypeNumber succeeds iff t resolves to an Integer or a Float. (number)/1
func TypeNumber(t Term, k Cont, env *Env) *Promise {
	switch env.Resolve(t).(type) {
	case Integer, Float:
		return k(env)
	default:
		return Bool(false)
	}
}

// TypeVar succeeds iff t resolves to an unbound variable. (var)/1
func TypeVar(t Term, k Cont, env *Env) *Promise {
	if _, ok := env.Resolve(t).(Variable); !ok {
		return Bool(false)
	}
	return k(env)
}

// TypeNonVar succeeds iff t does not resolve to an unbound variable.
// (nonvar)/1
func TypeNonVar(t Term, k Cont, env *Env) *Promise {
	if _, ok := env.Resolve(t).(Variable); ok {
		return Bool(false)
	}
	return k(env)
}

// Is evaluates expr and unifies the result with result. An evaluation
// failure is reported through the VM's eval-error hook and fails the branch
// without aborting the rest of the search. (is)/2
func (vm *VM) Is(result, expr Term, k Cont, env *Env) *Promise {
	v, err := eval(expr, env)
	if err != nil {
		vm.reportEvalError(expr, err)
		return Bool(false)
	}
	return Delay(func() *Promise {
		return Unify(result, v, k, env)
	})
}

// LessThan succeeds iff lhs evaluates to less than rhs. (<)/2
func (vm *VM) LessThan(lhs, rhs Term, k Cont, env *Env) *Promise {
	return vm.compare(lhs, rhs, k,
		func(i, j Integer) bool { return i < j },
		func(f, g Float) bool { return f < g },
		env)
}

// GreaterThan succeeds iff lhs evaluates to greater than rhs. (>)/2
func (vm *VM) GreaterThan(lhs, rhs Term, k Cont, env *Env) *Promise {
	return vm.compare(lhs, rhs, k,
		func(i, j Integer) bool { return i > j },
		func(f, g Float) bool { return f > g },
		env)
}

// LessThanOrEqual succeeds iff lhs evaluates to at most rhs. (=<)/2
func (vm *VM) LessThanOrEqual(lhs, rhs Term, k Cont, env *Env) *Promise {
	return vm.compare(lhs, rhs, k,
		func(i, j Integer) bool { return i <= j },
		func(f, g Float) bool { return f <= g },
		env)
}

// GreaterThanOrEqual succeeds iff lhs evaluates to at least rhs. (>=)/2
func (vm *VM) GreaterThanOrEqual(lhs, rhs Term, k Cont, env *Env) *Promise {
	return vm.compare(lhs, rhs, k,
		func(i, j Integer) bool { return i >= j },
		func(f, g Float) bool { return f >= g },
		env)
}

// NotEqual succeeds iff lhs and rhs evaluate to different numbers. (<>)/2
func (vm *VM) NotEqual(lhs, rhs Term, k Cont, env *Env) *Promise {
	return vm.compare(lhs, rhs, k,
		func(i, j Integer) bool { return i != j },
		func(f, g Float) bool { return f != g },
		env)
}

// compare evaluates both sides and applies the Integer predicate when both
// results are Integers, promoting to the Float predicate otherwise.
func (vm *VM) compare(lhs, rhs Term, k Cont, pi func(Integer, Integer) bool, pf func(Float, Float) bool, env *Env) *Promise {
	l, err := eval(lhs, env)
	if err != nil {
		vm.reportEvalError(lhs, err)
		return Bool(false)
	}
	r, err := eval(rhs, env)
	if err != nil {
		vm.reportEvalError(rhs, err)
		return Bool(false)
	}
	if li, ok := l.(Integer); ok {
		if ri, ok := r.(Integer); ok {
			if !pi(li, ri) {
				return Bool(false)
			}
			return k(env)
		}
	}
	if !pf(asFloat(l), asFloat(r)) {
		return Bool(false)
	}
	return k(env)
}
