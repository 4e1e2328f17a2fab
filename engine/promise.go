package engine

var (
	truePromise  = &Promise{ok: true}
	falsePromise = &Promise{ok: false}
)

// Promise is a delayed computation that results in (bool, error). Delayed
// alternatives are explored left to right, depth first, and only as far as
// Force is asked to go. The zero value for Promise is equivalent to
// Bool(false).
type Promise struct {
	// delayed execution with multiple choices
	delayed []func() *Promise

	// final result
	ok  bool
	err error

	// cutParent marks the choice point a cut prunes back to.
	cutParent *Promise
}

// Delay delays an execution of k. Each k is a choice point.
func Delay(k ...func() *Promise) *Promise {
	return &Promise{delayed: k}
}

// Bool returns a promise that simply returns (ok, nil).
func Bool(ok bool) *Promise {
	if ok {
		return truePromise
	}
	return falsePromise
}

// Error returns a promise that simply returns (false, err).
func Error(err error) *Promise {
	return &Promise{err: err}
}

var dummyCutParent Promise

// cut returns a promise that, once execution reaches it, eliminates all
// choice points created after parent.
func cut(parent *Promise, k func() *Promise) *Promise {
	if parent == nil {
		parent = &dummyCutParent
	}
	return &Promise{
		delayed:   []func() *Promise{k},
		cutParent: parent,
	}
}

// Force enforces the delayed execution and returns the result. It runs as a
// trampoline over an explicit stack of choice points, so deep backtracking
// doesn't grow the Go stack. A continuation that returns Bool(false) sends
// the search back to the most recent unexplored choice point; returning
// Bool(true) ends it.
func (p *Promise) Force() (bool, error) {
	stack := promiseStack{p}
	for len(stack) > 0 {
		p := stack.pop()

		if len(p.delayed) == 0 {
			switch {
			case p.err != nil:
				return false, p.err
			case p.ok:
				return true, nil
			default:
				continue
			}
		}

		// If cut, eliminate other possibilities.
		if p.cutParent != nil {
			stack.popUntil(p.cutParent)
			p.cutParent = nil // no need to do this again if revisited
		}

		// Try the child promises from left to right.
		q := p.child()
		stack = append(stack, p, q)
	}
	return false, nil
}

func (p *Promise) child() *Promise {
	q := p.delayed[0]()
	p.delayed, p.delayed[0] = p.delayed[1:], nil
	return q
}

type promiseStack []*Promise

func (s *promiseStack) pop() *Promise {
	var p *Promise
	p, *s, (*s)[len(*s)-1] = (*s)[len(*s)-1], (*s)[:len(*s)-1], nil
	return p
}

func (s *promiseStack) popUntil(p *Promise) {
	for len(*s) > 0 {
		if pop := s.pop(); pop == p {
			break
		}
	}
}
