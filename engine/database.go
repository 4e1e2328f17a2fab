package engine

// Database is an ordered store of clauses with an index by predicate name
// and arity. Insertion order is the resolution order and is preserved by
// every operation. The inference engine only ever reads it.
type Database struct {
	clauses []*Clause
	index   map[procedureIndicator][]*Clause
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{
		index: map[procedureIndicator][]*Clause{},
	}
}

// Assert appends the clause and updates the index. A clause whose head is
// neither an atom nor a compound is rejected.
func (db *Database) Assert(c *Clause) error {
	pi, err := c.indicator()
	if err != nil {
		return err
	}
	db.clauses = append(db.clauses, c)
	db.index[pi] = append(db.index[pi], c)
	return nil
}

// Retract removes the first stored clause whose head unifies with pattern
// and reports whether one was removed. Clause variables are renamed before
// matching so that variables in the pattern can't collide with stored ones;
// the trial bindings are discarded either way.
func (db *Database) Retract(pattern Term) bool {
	for i, c := range db.clauses {
		if _, ok := c.rename().Head.Unify(pattern, nil); ok {
			db.remove(i)
			return true
		}
	}
	return false
}

func (db *Database) remove(i int) {
	c := db.clauses[i]
	db.clauses = append(db.clauses[:i], db.clauses[i+1:]...)
	pi, _ := c.indicator()
	cs := db.index[pi]
	for j, e := range cs {
		if e == c {
			db.index[pi] = append(cs[:j], cs[j+1:]...)
			break
		}
	}
	if len(db.index[pi]) == 0 {
		delete(db.index, pi)
	}
}

// Clear removes all clauses.
func (db *Database) Clear() {
	db.clauses = nil
	db.index = map[procedureIndicator][]*Clause{}
}

// Enumerate returns all stored clauses in insertion order.
func (db *Database) Enumerate() []*Clause {
	cs := make([]*Clause, len(db.clauses))
	copy(cs, db.clauses)
	return cs
}

// Len returns the number of stored clauses.
func (db *Database) Len() int {
	return len(db.clauses)
}

// Candidates returns the clauses stored under the given name and arity, in
// insertion order.
func (db *Database) Candidates(name Atom, arity int) []*Clause {
	return db.index[procedureIndicator{name: name, arity: arity}]
}
