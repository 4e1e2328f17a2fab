package microlog

import (
	"fmt"
	"strconv"

	"github.com/microlog-lang/microlog/engine"
)

// ruleFunctor marks the parenthesized-sequence form `((head) (goal) ...)`
// that writes a rule. It can't clash with a user functor: the lexer never
// produces an empty atom.
const ruleFunctor engine.Atom = ""

// Parser turns prefix-notation text into engine terms, clauses and queries.
// Each identifier that starts with an upper-case letter or an underscore
// denotes a variable; occurrences of the same name within one Parser share
// one freshly minted variable.
type Parser struct {
	lexer   *Lexer
	current Token

	vars map[string]engine.Variable
	// order of first occurrence, for presenting query bindings
	names []string
}

// NewParser creates a parser over input.
func NewParser(input string) *Parser {
	return &Parser{
		lexer: NewLexer(input),
		vars:  map[string]engine.Variable{},
	}
}

func (p *Parser) next() error {
	t, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.current = t
	return nil
}

func (p *Parser) expect(k TokenKind) error {
	if p.current.Kind != k {
		return fmt.Errorf("expected %s, got %s", k, p.current)
	}
	return p.next()
}

// Term parses a single term and requires the input to end there.
func (p *Parser) Term() (engine.Term, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if p.current.Kind != TokenEOF {
		return nil, fmt.Errorf("unexpected %s after term", p.current)
	}
	return t, nil
}

// Clause parses a fact `(functor args...)` or a rule
// `((head) (goal) ...)` into a clause.
func (p *Parser) Clause() (*engine.Clause, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if p.current.Kind != TokenEOF {
		return nil, fmt.Errorf("unexpected %s after clause", p.current)
	}
	return clauseOf(t)
}

func clauseOf(t engine.Term) (*engine.Clause, error) {
	if c, ok := t.(*engine.Compound); ok && c.Functor == ruleFunctor {
		head := c.Args[0]
		switch head.(type) {
		case engine.Atom, *engine.Compound:
			return &engine.Clause{Head: head, Body: c.Args[1:]}, nil
		default:
			return nil, fmt.Errorf("rule head %s is not callable", head)
		}
	}
	switch t.(type) {
	case engine.Atom, *engine.Compound:
		return &engine.Clause{Head: t}, nil
	default:
		return nil, fmt.Errorf("clause %s is not callable", t)
	}
}

// Query parses a query: one or more goal terms proven as a conjunction. A
// single parenthesized sequence `((g1) (g2) ...)` is flattened into its
// goals.
func (p *Parser) Query() ([]engine.Term, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	var goals []engine.Term
	for p.current.Kind != TokenEOF {
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		goals = append(goals, t)
	}
	if len(goals) == 0 {
		return nil, fmt.Errorf("empty query")
	}
	if len(goals) == 1 {
		if c, ok := goals[0].(*engine.Compound); ok && c.Functor == ruleFunctor {
			goals = c.Args
		}
	}
	return goals, nil
}

// Variables returns the named variables of the parsed text in order of
// first occurrence.
func (p *Parser) Variables() []QueryVariable {
	qvs := make([]QueryVariable, len(p.names))
	for i, n := range p.names {
		qvs[i] = QueryVariable{Name: n, Variable: p.vars[n]}
	}
	return qvs
}

// QueryVariable pairs a variable's source name with its minted identity.
type QueryVariable struct {
	Name     string
	Variable engine.Variable
}

func (p *Parser) term() (engine.Term, error) {
	switch p.current.Kind {
	case TokenAtom:
		a := engine.Atom(p.current.Val)
		return a, p.next()
	case TokenVariable:
		v := p.variable(p.current.Val)
		return v, p.next()
	case TokenInteger:
		n, err := strconv.ParseInt(p.current.Val, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q: %w", p.current.Val, err)
		}
		return engine.Integer(n), p.next()
	case TokenFloat:
		f, err := strconv.ParseFloat(p.current.Val, 64)
		if err != nil {
			return nil, fmt.Errorf("bad float %q: %w", p.current.Val, err)
		}
		return engine.Float(f), p.next()
	case TokenLParen:
		return p.compound()
	case TokenLBracket:
		return p.list()
	default:
		return nil, fmt.Errorf("unexpected %s", p.current)
	}
}

func (p *Parser) variable(name string) engine.Variable {
	if v, ok := p.vars[name]; ok {
		return v
	}
	v := engine.NewVariable()
	p.vars[name] = v
	p.names = append(p.names, name)
	return v
}

func (p *Parser) compound() (engine.Term, error) {
	if err := p.next(); err != nil { // consume '('
		return nil, err
	}
	switch p.current.Kind {
	case TokenRParen:
		return nil, fmt.Errorf("empty compound term")
	case TokenLParen:
		// Parenthesized sequence: the rule form.
		var args []engine.Term
		for p.current.Kind != TokenRParen {
			if p.current.Kind == TokenEOF {
				return nil, fmt.Errorf("unexpected eof in compound term")
			}
			a, err := p.term()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
		}
		if err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return &engine.Compound{Functor: ruleFunctor, Args: args}, nil
	case TokenAtom:
		functor := engine.Atom(p.current.Val)
		if err := p.next(); err != nil {
			return nil, err
		}
		var args []engine.Term
		for p.current.Kind != TokenRParen {
			if p.current.Kind == TokenEOF {
				return nil, fmt.Errorf("unexpected eof in compound term")
			}
			a, err := p.term()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
		}
		if err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		// Arity 0 is an atom.
		return functor.Apply(args...), nil
	default:
		return nil, fmt.Errorf("compound functor must be an atom, got %s", p.current)
	}
}

func (p *Parser) list() (engine.Term, error) {
	if err := p.next(); err != nil { // consume '['
		return nil, err
	}
	var elems []engine.Term
	for {
		switch p.current.Kind {
		case TokenRBracket:
			if err := p.next(); err != nil {
				return nil, err
			}
			return engine.List(elems...), nil
		case TokenBar:
			if len(elems) == 0 {
				return nil, fmt.Errorf("list tail without elements")
			}
			if err := p.next(); err != nil {
				return nil, err
			}
			tail, err := p.term()
			if err != nil {
				return nil, err
			}
			if err := p.expect(TokenRBracket); err != nil {
				return nil, err
			}
			return engine.ListRest(tail, elems...), nil
		case TokenEOF:
			return nil, fmt.Errorf("unexpected eof in list")
		default:
			e, err := p.term()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
	}
}
