package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func succeed(env *Env) *Promise { return Bool(true) }

func TestUnify(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		x := NewVariable()
		var bound Term
		ok, err := Unify(x, Atom("a"), func(env *Env) *Promise {
			bound = env.Resolve(x)
			return Bool(true)
		}, nil).Force()
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, Atom("a"), bound)
	})

	t.Run("failure", func(t *testing.T) {
		ok, err := Unify(Atom("a"), Atom("b"), succeed, nil).Force()
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestNotUnifiable(t *testing.T) {
	t.Run("unifiable fails", func(t *testing.T) {
		x := NewVariable()
		ok, err := NotUnifiable(x, Atom("a"), succeed, nil).Force()
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("not unifiable succeeds without bindings", func(t *testing.T) {
		ok, err := NotUnifiable(Atom("a"), Atom("b"), succeed, nil).Force()
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestTypeTesting(t *testing.T) {
	x := NewVariable()
	env := (*Env)(nil).Bind(x, Atom("a"))

	tests := []struct {
		title string
		p     func(Term, Cont, *Env) *Promise
		t     Term
		env   *Env
		ok    bool
	}{
		{title: "atom on atom", p: TypeAtom, t: Atom("a"), ok: true},
		{title: "atom on integer", p: TypeAtom, t: Integer(1), ok: false},
		{title: "atom on variable", p: TypeAtom, t: NewVariable(), ok: false},
		{title: "atom on bound variable", p: TypeAtom, t: x, env: env, ok: true},
		{title: "atom on compound", p: TypeAtom, t: Atom("f").Apply(Atom("a")), ok: false},
		{title: "number on integer", p: TypeNumber, t: Integer(1), ok: true},
		{title: "number on float", p: TypeNumber, t: Float(1.5), ok: true},
		{title: "number on atom", p: TypeNumber, t: Atom("a"), ok: false},
		{title: "var on unbound", p: TypeVar, t: NewVariable(), ok: true},
		{title: "var on bound", p: TypeVar, t: x, env: env, ok: false},
		{title: "var on atom", p: TypeVar, t: Atom("a"), ok: false},
		{title: "nonvar on unbound", p: TypeNonVar, t: NewVariable(), ok: false},
		{title: "nonvar on bound", p: TypeNonVar, t: x, env: env, ok: true},
		{title: "nonvar on compound", p: TypeNonVar, t: Atom("f").Apply(Atom("a")), ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			ok, err := tt.p(tt.t, succeed, tt.env).Force()
			assert.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestVM_Is(t *testing.T) {
	vm := NewVM(NewDatabase())

	t.Run("evaluates and unifies", func(t *testing.T) {
		x := NewVariable()
		expr := Atom("+").Apply(
			Atom("*").Apply(Integer(3), Integer(4)),
			Atom("-").Apply(Integer(10), Integer(5)),
		)
		var result Term
		ok, err := vm.Is(x, expr, func(env *Env) *Promise {
			result = env.Resolve(x)
			return Bool(true)
		}, nil).Force()
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, Integer(17), result)
	})

	t.Run("mixed kinds promote to float", func(t *testing.T) {
		x := NewVariable()
		var result Term
		ok, _ := vm.Is(x, Atom("+").Apply(Integer(1), Float(0.5)), func(env *Env) *Promise {
			result = env.Resolve(x)
			return Bool(true)
		}, nil).Force()
		assert.True(t, ok)
		assert.Equal(t, Float(1.5), result)
	})

	t.Run("division is true division", func(t *testing.T) {
		x := NewVariable()
		var result Term
		ok, _ := vm.Is(x, Atom("/").Apply(Integer(7), Integer(2)), func(env *Env) *Promise {
			result = env.Resolve(x)
			return Bool(true)
		}, nil).Force()
		assert.True(t, ok)
		assert.Equal(t, Float(3.5), result)
	})

	t.Run("result unification respects numeric kinds", func(t *testing.T) {
		ok, err := vm.Is(Float(2), Atom("+").Apply(Integer(1), Integer(1)), succeed, nil).Force()
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("division by zero fails with a reported reason", func(t *testing.T) {
		var reported error
		vm := NewVM(NewDatabase())
		vm.OnEvalError = func(expr Term, err error) { reported = err }

		ok, err := vm.Is(NewVariable(), Atom("/").Apply(Integer(1), Integer(0)), succeed, nil).Force()
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.ErrorIs(t, reported, ErrDivisionByZero)
	})

	t.Run("unbound variable in expression fails", func(t *testing.T) {
		var reported error
		vm := NewVM(NewDatabase())
		vm.OnEvalError = func(expr Term, err error) { reported = err }

		ok, _ := vm.Is(NewVariable(), Atom("+").Apply(Integer(1), NewVariable()), succeed, nil).Force()
		assert.False(t, ok)
		var ierr *InstantiationError
		assert.ErrorAs(t, reported, &ierr)
	})

	t.Run("unknown operator fails", func(t *testing.T) {
		var reported error
		vm := NewVM(NewDatabase())
		vm.OnEvalError = func(expr Term, err error) { reported = err }

		ok, _ := vm.Is(NewVariable(), Atom("mod").Apply(Integer(5), Integer(2)), succeed, nil).Force()
		assert.False(t, ok)
		var terr *TypeError
		assert.ErrorAs(t, reported, &terr)
	})
}

func TestVM_Comparison(t *testing.T) {
	vm := NewVM(NewDatabase())

	tests := []struct {
		title string
		p     func(Term, Term, Cont, *Env) *Promise
		l, r  Term
		ok    bool
	}{
		{title: "1 < 2", p: vm.LessThan, l: Integer(1), r: Integer(2), ok: true},
		{title: "2 < 1", p: vm.LessThan, l: Integer(2), r: Integer(1), ok: false},
		{title: "1 < 1.5", p: vm.LessThan, l: Integer(1), r: Float(1.5), ok: true},
		{title: "2 > 1", p: vm.GreaterThan, l: Integer(2), r: Integer(1), ok: true},
		{title: "1 =< 1", p: vm.LessThanOrEqual, l: Integer(1), r: Integer(1), ok: true},
		{title: "1 >= 2", p: vm.GreaterThanOrEqual, l: Integer(1), r: Integer(2), ok: false},
		{title: "1 <> 2", p: vm.NotEqual, l: Integer(1), r: Integer(2), ok: true},
		{title: "1 <> 1.0", p: vm.NotEqual, l: Integer(1), r: Float(1), ok: false},
		{title: "expressions evaluate", p: vm.GreaterThan, l: Atom("*").Apply(Integer(2), Integer(3)), r: Integer(5), ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			ok, err := tt.p(tt.l, tt.r, succeed, nil).Force()
			assert.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
		})
	}

	t.Run("evaluation failure fails the branch", func(t *testing.T) {
		var reported error
		vm := NewVM(NewDatabase())
		vm.OnEvalError = func(expr Term, err error) { reported = err }

		ok, err := vm.LessThan(Atom("a"), Integer(1), succeed, nil).Force()
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Error(t, reported)
	})
}
