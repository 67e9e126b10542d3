package atomspace

import "sync"

// Store is a concurrent set of atoms with a secondary head index for query
// acceleration. Membership is keyed on structural identity (the canonical
// rendering), so duplicates are impossible and independently constructed
// but identical atoms coincide. All methods are safe for concurrent use
// without external locking.
//
// The head index maps an expression's leading symbol to the expressions
// sharing that head. Removal deletes from the primary set only and leaves
// the index untouched; queries filter candidates through the primary set,
// so stale index entries are never observable through the public API. This
// trades index growth on removal-heavy workloads for cheap concurrent
// removal, the same trade the fact database this store descends from makes
// with its tombstoned column indexes.
type Store struct {
	mu    sync.RWMutex
	atoms map[string]Atom
	// head buckets are keyed by canonical form so that re-adding an atom
	// whose stale entry is still indexed stays idempotent.
	head map[string]map[string]Atom
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		atoms: make(map[string]Atom),
		head:  make(map[string]map[string]Atom),
	}
}

// Add inserts an atom, returning true iff it was newly inserted. Re-adding
// a structurally identical atom is a no-op returning false. Expressions
// whose first child is a symbol are recorded in the head index.
func (st *Store) Add(atom Atom) bool {
	if atom == nil {
		return false
	}
	key := atom.String()

	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.atoms[key]; exists {
		return false
	}
	st.atoms[key] = atom

	if expr, ok := atom.(*Expression); ok {
		if head, ok := expr.Head(); ok {
			bucket := st.head[head.Name()]
			if bucket == nil {
				bucket = make(map[string]Atom)
				st.head[head.Name()] = bucket
			}
			bucket[key] = expr
		}
	}
	return true
}

// Remove deletes an atom from the store, returning true iff it was
// present. The head index is not repaired; see the Store documentation.
func (st *Store) Remove(atom Atom) bool {
	if atom == nil {
		return false
	}
	key := atom.String()

	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.atoms[key]; !exists {
		return false
	}
	delete(st.atoms, key)
	return true
}

// Contains reports whether a structurally identical atom is stored.
func (st *Store) Contains(atom Atom) bool {
	if atom == nil {
		return false
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	_, exists := st.atoms[atom.String()]
	return exists
}

// Count returns the number of stored atoms.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.atoms)
}

// All returns a snapshot of every stored atom. Iteration order is
// unspecified.
func (st *Store) All() []Atom {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make([]Atom, 0, len(st.atoms))
	for _, a := range st.atoms {
		out = append(out, a)
	}
	return out
}

// Reset removes every atom and clears the head index.
func (st *Store) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.atoms = make(map[string]Atom)
	st.head = make(map[string]map[string]Atom)
}

// Query lazily matches pattern against the stored atoms and streams a
// result for every match, pairing the matched atom with its unifying
// substitution.
//
// A fully ground pattern is an existence check: the stream yields the
// pattern with the empty substitution iff it is stored, and nothing
// otherwise. A pattern that is an expression with a symbol head restricts
// candidates to that head's index bucket, falling back to a full scan when
// the head is unindexed; any other pattern scans all atoms.
//
// Candidate selection snapshots under the read lock; unification runs
// outside it, so long matches never block writers.
func (st *Store) Query(pattern Atom) *Stream {
	stream := NewStream()
	if pattern == nil {
		stream.Close()
		return stream
	}

	if !pattern.HasVariables() {
		go func() {
			defer stream.Close()
			if st.Contains(pattern) {
				stream.Put(Result{Atom: pattern, Bindings: NewSubstitution()})
			}
		}()
		return stream
	}

	candidates := st.candidates(pattern)
	go func() {
		defer stream.Close()
		for _, candidate := range candidates {
			sub := Unify(pattern, candidate)
			if sub == nil {
				continue
			}
			if !stream.Put(Result{Atom: candidate, Bindings: sub}) {
				return
			}
		}
	}()
	return stream
}

// candidates snapshots the atoms a pattern query should attempt to unify
// against, filtering stale head-index entries through the primary set.
func (st *Store) candidates(pattern Atom) []Atom {
	if expr, ok := pattern.(*Expression); ok {
		if head, ok := expr.Head(); ok {
			if bucket, indexed := st.withHead(head.Name()); indexed {
				return bucket
			}
		}
	}
	return st.All()
}

// withHead returns the live atoms indexed under the given head symbol. The
// boolean reports whether the head has an index bucket at all; a missing
// bucket means the caller should fall back to a full scan.
func (st *Store) withHead(name string) ([]Atom, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	bucket, indexed := st.head[name]
	if !indexed {
		return nil, false
	}
	out := make([]Atom, 0, len(bucket))
	for key, a := range bucket {
		if _, live := st.atoms[key]; live {
			out = append(out, a)
		}
	}
	return out, true
}
