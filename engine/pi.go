package engine

import "fmt"

// procedureIndicator identifies a predicate by name and arity.
type procedureIndicator struct {
	name  Atom
	arity int
}

func (pi procedureIndicator) String() string {
	return fmt.Sprintf("%s/%d", pi.name, pi.arity)
}

// goalIndicator returns the predicate identity of a callable goal.
func goalIndicator(g Term) (procedureIndicator, []Term, bool) {
	switch g := g.(type) {
	case Atom:
		return procedureIndicator{name: g}, nil, true
	case *Compound:
		return procedureIndicator{name: g.Functor, arity: g.Arity()}, g.Args, true
	default:
		return procedureIndicator{}, nil, false
	}
}
