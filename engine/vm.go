package engine

import (
	"github.com/sirupsen/logrus"
)

// DefaultDepthLimit bounds nested resolution steps when the VM doesn't set
// its own. It guards against clauses that recurse without progress.
const DefaultDepthLimit = 1000

// Cont is a continuation: what to prove once the current goal holds under
// the given environment. Returning Bool(false) from the final continuation
// asks the engine to backtrack for another solution.
type Cont func(*Env) *Promise

// UnknownAction is the VM's reaction to a goal with no clauses and no
// built-in.
type UnknownAction int

const (
	// UnknownFail treats the goal as ordinary backtracking failure.
	UnknownFail UnknownAction = iota
	// UnknownWarning fails the goal after logging a warning.
	UnknownWarning
	// UnknownError aborts the query with an ExistenceError.
	UnknownError
)

// VM is the inference engine: SLD resolution over a clause database with
// built-in predicates dispatched ahead of it. Multiple independent VMs can
// coexist; all configuration is per instance.
type VM struct {
	db         *Database
	procedures map[procedureIndicator]procedure

	// Unknown selects the reaction to goals with no procedure at all.
	Unknown UnknownAction

	// DepthLimit overrides DefaultDepthLimit when positive.
	DepthLimit int

	// OnEvalError is called when an arithmetic built-in fails to evaluate
	// its expression. The branch fails either way; the hook only carries
	// the reason to the surface. Nil means log at warning level.
	OnEvalError func(expr Term, err error)
}

// NewVM creates a VM over the given database.
func NewVM(db *Database) *VM {
	return &VM{db: db}
}

// Database returns the clause database the VM resolves against.
func (vm *VM) Database() *Database {
	return vm.db
}

type procedure interface {
	call(vm *VM, args []Term, k Cont, env *Env) *Promise
}

type predicate1 func(Term, Cont, *Env) *Promise

func (p predicate1) call(_ *VM, args []Term, k Cont, env *Env) *Promise {
	if len(args) != 1 {
		return Bool(false)
	}
	return p(args[0], k, env)
}

type predicate2 func(Term, Term, Cont, *Env) *Promise

func (p predicate2) call(_ *VM, args []Term, k Cont, env *Env) *Promise {
	if len(args) != 2 {
		return Bool(false)
	}
	return p(args[0], args[1], k, env)
}

// Register1 registers a built-in predicate of arity 1.
func (vm *VM) Register1(name string, p func(Term, Cont, *Env) *Promise) {
	if vm.procedures == nil {
		vm.procedures = map[procedureIndicator]procedure{}
	}
	vm.procedures[procedureIndicator{name: Atom(name), arity: 1}] = predicate1(p)
}

// Register2 registers a built-in predicate of arity 2.
func (vm *VM) Register2(name string, p func(Term, Term, Cont, *Env) *Promise) {
	if vm.procedures == nil {
		vm.procedures = map[procedureIndicator]procedure{}
	}
	vm.procedures[procedureIndicator{name: Atom(name), arity: 2}] = predicate2(p)
}

// Solve proves the goals left to right under env and calls k with each
// solution's environment, in strict depth-first clause order. The returned
// promise does no work until forced and computes at most one solution ahead
// of what its continuation asks for.
func (vm *VM) Solve(goals []Term, k Cont, env *Env) *Promise {
	return vm.solve(goals, k, env, 0, nil)
}

func (vm *VM) solve(goals []Term, k Cont, env *Env, depth int, cutParent *Promise) *Promise {
	if depth > vm.depthLimit() {
		// Out of depth: the branch fails silently.
		logrus.WithField("limit", vm.depthLimit()).Debug("depth limit exceeded")
		return Bool(false)
	}
	if len(goals) == 0 {
		return k(env)
	}
	g := env.Resolve(goals[0])
	rest := goals[1:]
	switch g := g.(type) {
	case Variable:
		return Error(&InstantiationError{Culprit: g})
	case Atom:
		if g == atomCut {
			// Discard every choice point created since entering the
			// current clause body, the clause choice included.
			return cut(cutParent, func() *Promise {
				return vm.solve(rest, k, env, depth+1, cutParent)
			})
		}
		return vm.arrive(procedureIndicator{name: g}, nil, rest, k, env, depth, cutParent)
	case *Compound:
		return vm.arrive(procedureIndicator{name: g.Functor, arity: g.Arity()}, g.Args, rest, k, env, depth, cutParent)
	default:
		return Error(&TypeError{Type: "callable", Culprit: g})
	}
}

// arrive dispatches one goal: built-ins first, then the database. A user
// clause stored under a built-in's name and arity is never reached.
func (vm *VM) arrive(pi procedureIndicator, args, rest []Term, k Cont, env *Env, depth int, cutParent *Promise) *Promise {
	kRest := func(env *Env) *Promise {
		return vm.solve(rest, k, env, depth+1, cutParent)
	}

	if p, ok := vm.procedures[pi]; ok {
		return Delay(func() *Promise {
			return p.call(vm, args, kRest, env)
		})
	}

	cs := vm.db.Candidates(pi.name, pi.arity)
	if len(cs) == 0 {
		switch vm.Unknown {
		case UnknownError:
			return Error(&ExistenceError{Procedure: pi.String()})
		case UnknownWarning:
			logrus.WithField("procedure", pi.String()).Warn("unknown procedure")
			fallthrough
		default:
			return Bool(false)
		}
	}

	goal := pi.name.Apply(args...)
	var p *Promise
	ks := make([]func() *Promise, len(cs))
	for i := range cs {
		c := cs[i]
		ks[i] = func() *Promise {
			r := c.rename()
			env, ok := r.Head.Unify(goal, env)
			if !ok {
				return Bool(false)
			}
			// The body's cut barrier is this call's choice point.
			return vm.solve(r.Body, kRest, env, depth+1, p)
		}
	}
	p = Delay(ks...)
	return p
}

func (vm *VM) depthLimit() int {
	if vm.DepthLimit > 0 {
		return vm.DepthLimit
	}
	return DefaultDepthLimit
}

func (vm *VM) reportEvalError(expr Term, err error) {
	if vm.OnEvalError != nil {
		vm.OnEvalError(expr, err)
		return
	}
	logrus.WithError(err).WithField("expression", expr.String()).Warn("arithmetic evaluation failed")
}
