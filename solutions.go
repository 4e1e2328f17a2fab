package microlog

import (
	"errors"
	"sync"

	"github.com/microlog-lang/microlog/engine"
)

// Solutions is the result of a query. Every Next call resumes the search
// exactly where it paused and yields at most one more solution; the engine
// never runs ahead of the consumer.
type Solutions struct {
	vars []QueryVariable
	more chan<- bool
	next <-chan *engine.Env

	env       *engine.Env
	ok        bool
	err       error
	closed    bool
	exhausted bool
	once      sync.Once
}

// Next searches for the next solution. It returns false once there are no
// further solutions, the Solutions is closed, or the search failed with an
// error.
func (s *Solutions) Next() bool {
	if s.closed || s.exhausted {
		return false
	}
	s.more <- true
	env, ok := <-s.next
	if !ok {
		s.exhausted = true
		s.ok = false
		return false
	}
	s.env = env
	s.ok = true
	return true
}

// Scan copies the current solution's bindings of the query's named
// variables into out, fully dereferenced.
func (s *Solutions) Scan(out map[string]engine.Term) error {
	if !s.ok {
		return errors.New("no current solution")
	}
	for _, v := range s.vars {
		out[v.Name] = s.env.Simplify(v.Variable)
	}
	return nil
}

// Vars returns the query's variable names in order of first occurrence.
func (s *Solutions) Vars() []string {
	ns := make([]string, len(s.vars))
	for i, v := range s.vars {
		ns[i] = v.Name
	}
	return ns
}

// Err returns the error that ended the search, if any. It is meaningful
// once Next has returned false.
func (s *Solutions) Err() error {
	return s.err
}

// Close ends the search for further solutions. It is safe to call more than
// once and after exhaustion.
func (s *Solutions) Close() error {
	s.once.Do(func() {
		s.closed = true
		close(s.more)
		// Unblock a pending delivery so the search goroutine can exit.
		go func() {
			for range s.next {
			}
		}()
	})
	return nil
}
