// Package microlog is a micro-Prolog interpreter: a prefix-notation front
// end over an SLD-resolution engine with backtracking, cut and a small set
// of built-in predicates.
package microlog

import (
	"fmt"
	"strings"

	"github.com/microlog-lang/microlog/engine"
)

// Interpreter ties a clause database, an inference engine and the parser
// together. Independent interpreters share nothing.
type Interpreter struct {
	db *engine.Database
	vm *engine.VM
}

// New creates an interpreter with the built-in predicates registered.
func New() *Interpreter {
	db := engine.NewDatabase()
	vm := engine.NewVM(db)

	// Term unification
	vm.Register2("=", engine.Unify)
	vm.Register2("/=", engine.NotUnifiable)

	// Type testing
	vm.Register1("atom", engine.TypeAtom)
	vm.Register1("number", engine.TypeNumber)
	vm.Register1("var", engine.TypeVar)
	vm.Register1("nonvar", engine.TypeNonVar)

	// Arithmetic evaluation and comparison
	vm.Register2("is", vm.Is)
	vm.Register2("<", vm.LessThan)
	vm.Register2(">", vm.GreaterThan)
	vm.Register2("=<", vm.LessThanOrEqual)
	vm.Register2(">=", vm.GreaterThanOrEqual)
	vm.Register2("<>", vm.NotEqual)

	return &Interpreter{db: db, vm: vm}
}

// Database returns the interpreter's clause database.
func (i *Interpreter) Database() *engine.Database {
	return i.db
}

// VM returns the interpreter's inference engine.
func (i *Interpreter) VM() *engine.VM {
	return i.vm
}

// Assert parses a single clause and adds it to the database. A trailing
// period is accepted and ignored.
func (i *Interpreter) Assert(text string) error {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, ".")
	c, err := NewParser(text).Clause()
	if err != nil {
		return err
	}
	return i.db.Assert(c)
}

// Exec consults source text: one clause per line, blank lines and % comment
// lines skipped. It stops at the first malformed line.
func (i *Interpreter) Exec(src string) error {
	for n, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if err := i.Assert(line); err != nil {
			return fmt.Errorf("line %d: %w", n+1, err)
		}
	}
	return nil
}

// Query parses the goals and starts a lazy search for solutions. No work is
// done until the first Next call on the result.
func (i *Interpreter) Query(src string) (*Solutions, error) {
	p := NewParser(src)
	goals, err := p.Query()
	if err != nil {
		return nil, err
	}
	return i.Solve(goals, p.Variables()), nil
}

// Solve starts a lazy search proving goals as a conjunction. vars names the
// variables whose bindings each solution reports.
func (i *Interpreter) Solve(goals []engine.Term, vars []QueryVariable) *Solutions {
	more := make(chan bool)
	next := make(chan *engine.Env)
	s := &Solutions{vars: vars, more: more, next: next}
	go func() {
		defer close(next)
		if !<-more {
			return
		}
		_, err := i.vm.Solve(goals, func(env *engine.Env) *engine.Promise {
			next <- env
			if !<-more {
				// The consumer stopped pulling; end the search.
				return engine.Bool(true)
			}
			return engine.Bool(false)
		}, nil).Force()
		s.err = err
	}()
	return s
}
