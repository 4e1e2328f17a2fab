package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromise_Force(t *testing.T) {
	t.Run("true", func(t *testing.T) {
		ok, err := Bool(true).Force()
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("false", func(t *testing.T) {
		ok, err := Bool(false).Force()
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("error", func(t *testing.T) {
		boom := errors.New("boom")
		ok, err := Error(boom).Force()
		assert.Equal(t, boom, err)
		assert.False(t, ok)
	})

	t.Run("zero value", func(t *testing.T) {
		var p Promise
		ok, err := p.Force()
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPromise_DelayOrder(t *testing.T) {
	var visited []int
	k := func(n int) func() *Promise {
		return func() *Promise {
			visited = append(visited, n)
			return Bool(false)
		}
	}
	ok, err := Delay(k(1), k(2), k(3)).Force()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []int{1, 2, 3}, visited)
}

func TestPromise_LazyStop(t *testing.T) {
	var visited []int
	k := func(n int, ok bool) func() *Promise {
		return func() *Promise {
			visited = append(visited, n)
			return Bool(ok)
		}
	}
	// The first success stops Force; later choices stay unexplored.
	ok, err := Delay(k(1, false), k(2, true), k(3, false)).Force()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, visited)
}

func TestPromise_Cut(t *testing.T) {
	var visited []int
	k := func(n int) func() *Promise {
		return func() *Promise {
			visited = append(visited, n)
			return Bool(false)
		}
	}

	var parent *Promise
	parent = Delay(func() *Promise {
		visited = append(visited, 1)
		// Reaching the cut discards the remaining alternatives of parent.
		return cut(parent, func() *Promise {
			visited = append(visited, 2)
			return Bool(false)
		})
	}, k(3))

	ok, err := parent.Force()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []int{1, 2}, visited)
}
