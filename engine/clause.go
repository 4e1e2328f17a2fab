package engine

import "fmt"

// Clause is a stored fact or rule. A fact has an empty body.
type Clause struct {
	Head Term
	Body []Term
}

// IsFact reports whether the clause has no body.
func (c *Clause) IsFact() bool {
	return len(c.Body) == 0
}

func (c *Clause) String() string {
	if c.IsFact() {
		return c.Head.String()
	}
	s := "(" + c.Head.String()
	for _, g := range c.Body {
		s += " " + g.String()
	}
	return s + ")"
}

// indicator returns the predicate identity of the clause head, or an error
// for head kinds nothing could ever call.
func (c *Clause) indicator() (procedureIndicator, error) {
	switch h := c.Head.(type) {
	case Atom:
		return procedureIndicator{name: h}, nil
	case *Compound:
		return procedureIndicator{name: h.Functor, arity: h.Arity()}, nil
	default:
		return procedureIndicator{}, fmt.Errorf("engine: clause head %s is not callable", c.Head)
	}
}

// rename returns a copy of the clause with every variable replaced by a
// freshly minted one, consistently within the copy. Stored clauses must be
// renamed before each use so that bindings from one activation can't leak
// into a sibling activation.
func (c *Clause) rename() *Clause {
	fresh := map[Variable]Variable{}
	r := Clause{
		Head: renameTerm(c.Head, fresh),
		Body: make([]Term, len(c.Body)),
	}
	for i, g := range c.Body {
		r.Body[i] = renameTerm(g, fresh)
	}
	return &r
}

func renameTerm(t Term, fresh map[Variable]Variable) Term {
	switch t := t.(type) {
	case Variable:
		w, ok := fresh[t]
		if !ok {
			w = NewVariable()
			fresh[t] = w
		}
		return w
	case *Compound:
		c := Compound{
			Functor: t.Functor,
			Args:    make([]Term, len(t.Args)),
		}
		for i, a := range t.Args {
			c.Args[i] = renameTerm(a, fresh)
		}
		return &c
	default:
		return t
	}
}
