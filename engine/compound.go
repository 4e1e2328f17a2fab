package engine

import "strings"

// Compound is a compound term: a functor with one or more arguments.
// Non-empty lists are compounds with functor "." and two arguments, head and
// tail; the empty list is the atom `[]`. The tail of a list cell may resolve
// to any term, including an unbound variable (a partial list).
type Compound struct {
	Functor Atom
	Args    []Term
}

// Arity returns the number of arguments.
func (c *Compound) Arity() int {
	return len(c.Args)
}

func (c *Compound) String() string {
	var sb strings.Builder
	c.write(&sb)
	return sb.String()
}

func (c *Compound) write(sb *strings.Builder) {
	if c.Functor == atomDot && len(c.Args) == 2 {
		c.writeList(sb)
		return
	}
	sb.WriteByte('(')
	sb.WriteString(string(c.Functor))
	for _, a := range c.Args {
		sb.WriteByte(' ')
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
}

func (c *Compound) writeList(sb *strings.Builder) {
	sb.WriteByte('[')
	sb.WriteString(c.Args[0].String())
	t := c.Args[1]
	for {
		cell, ok := t.(*Compound)
		if !ok || cell.Functor != atomDot || len(cell.Args) != 2 {
			break
		}
		sb.WriteByte(' ')
		sb.WriteString(cell.Args[0].String())
		t = cell.Args[1]
	}
	if t != Term(atomEmptyList) {
		sb.WriteString(" | ")
		sb.WriteString(t.String())
	}
	sb.WriteByte(']')
}

// Unify unifies the compound with t: same functor, same arity, then the
// argument pairs left to right, threading the environment through each pair.
func (c *Compound) Unify(t Term, env *Env) (*Env, bool) {
	switch t := env.Resolve(t).(type) {
	case *Compound:
		if c.Functor != t.Functor || len(c.Args) != len(t.Args) {
			return env, false
		}
		orig := env
		var ok bool
		for i := range c.Args {
			if env, ok = c.Args[i].Unify(t.Args[i], env); !ok {
				return orig, false
			}
		}
		return env, true
	case Variable:
		return t.Unify(c, env)
	default:
		return env, false
	}
}

// List returns a list of ts.
func List(ts ...Term) Term {
	return ListRest(atomEmptyList, ts...)
}

// ListRest returns a list of ts with rest as its tail.
func ListRest(rest Term, ts ...Term) Term {
	l := rest
	for i := len(ts) - 1; i >= 0; i-- {
		l = Cons(ts[i], l)
	}
	return l
}

// Cons returns a list cell with the given head and tail.
func Cons(head, tail Term) Term {
	return &Compound{Functor: atomDot, Args: []Term{head, tail}}
}
