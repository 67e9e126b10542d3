package atomspace

// True is the truth symbol yielded by predicate-style grounded operations
// (equal, not, and, or, retract) when they hold.
var True = NewSymbol("True")

// Standard grounded operation names.
const (
	OpImplies = "implies"
	OpEqual   = "equal"
	OpNot     = "not"
	OpAnd     = "and"
	OpOr      = "or"
	OpAssert  = "assert"
	OpRetract = "retract"
	OpMatch   = "match"
	OpQuote   = "quote"
)

// NewStandardRegistry creates a registry with the standard operation set:
//
//	(implies cond concl)  forward-chain: concl instantiated per match of cond
//	(equal a b)           True iff a and b are structurally equal
//	(not expr)            True iff expr has no match in the store
//	(and c1 ... cn)       True iff all conjuncts match under one substitution
//	(or d1 ... dn)        True iff any disjunct matches
//	(assert atom)         add atom to the store, yielding the atom
//	(retract atom)        remove atom from the store, yielding True
//	(match pattern)       every atom matching pattern
//	(quote atom)          atom, unevaluated
//
// Every operation validates its argument count defensively and yields an
// empty stream on a malformed call.
func NewStandardRegistry() *Registry {
	r := NewRegistry()
	r.Register(OpImplies, opImplies)
	r.Register(OpEqual, opEqual)
	r.Register(OpNot, opNot)
	r.Register(OpAnd, opAnd)
	r.Register(OpOr, opOr)
	r.Register(OpAssert, opAssert)
	r.Register(OpRetract, opRetract)
	r.Register(OpMatch, opMatch)
	r.Register(OpQuote, opQuote)
	return r
}

// callArgs returns the call expression's arguments (everything after the
// head symbol).
func callArgs(call *Expression) []Atom {
	if call.Len() == 0 {
		return nil
	}
	return call.Children()[1:]
}

// emptyStream returns an already-closed stream, the grounded-operation
// rendering of "no results".
func emptyStream() *Stream {
	s := NewStream()
	s.Close()
	return s
}

// opImplies forward-chains a single rule: for every match of the condition
// in the store, it yields the conclusion with that match's substitution
// applied.
func opImplies(store *Store, call *Expression) *Stream {
	args := callArgs(call)
	if len(args) != 2 {
		return emptyStream()
	}
	cond, concl := args[0], args[1]

	out := NewStream()
	go func() {
		defer out.Close()
		forEach(store.Query(cond), func(r Result) bool {
			return out.Put(Result{Atom: r.Bindings.Apply(concl), Bindings: r.Bindings})
		})
	}()
	return out
}

// opEqual yields True iff its two arguments are structurally equal.
func opEqual(_ *Store, call *Expression) *Stream {
	args := callArgs(call)
	if len(args) != 2 {
		return emptyStream()
	}

	out := NewStream()
	go func() {
		defer out.Close()
		if args[0].Equal(args[1]) {
			out.Put(Result{Atom: True, Bindings: NewSubstitution()})
		}
	}()
	return out
}

// opNot implements negation as failure: it yields True iff querying its
// argument against the store produces no matches.
func opNot(store *Store, call *Expression) *Stream {
	args := callArgs(call)
	if len(args) != 1 {
		return emptyStream()
	}

	out := NewStream()
	go func() {
		defer out.Close()
		if _, found := store.Query(args[0]).First(); !found {
			out.Put(Result{Atom: True, Bindings: NewSubstitution()})
		}
	}()
	return out
}

// opAnd yields True iff there is at least one substitution under which
// every conjunct matches in sequence. Each conjunct is queried with the
// bindings accumulated from the previous conjuncts applied first, so a
// shared variable must take the same value across conjuncts. The empty
// conjunction trivially succeeds.
func opAnd(store *Store, call *Expression) *Stream {
	conjuncts := callArgs(call)

	out := NewStream()
	go func() {
		defer out.Close()
		if conjoinMatches(store, conjuncts, NewSubstitution()) {
			out.Put(Result{Atom: True, Bindings: NewSubstitution()})
		}
	}()
	return out
}

// conjoinMatches reports whether some substitution extending sub satisfies
// every conjunct in order. It backtracks across the matches of each
// conjunct and short-circuits on the first full success.
func conjoinMatches(store *Store, conjuncts []Atom, sub *Substitution) bool {
	if len(conjuncts) == 0 {
		return true
	}

	matches := store.Query(sub.Apply(conjuncts[0]))
	defer matches.Close()

	for {
		batch, more := matches.Take(8)
		for _, r := range batch {
			merged := sub.Compose(r.Bindings)
			if merged == nil {
				continue
			}
			if conjoinMatches(store, conjuncts[1:], merged) {
				return true
			}
		}
		if !more {
			return false
		}
	}
}

// opOr yields True iff any single disjunct matches in the store.
func opOr(store *Store, call *Expression) *Stream {
	disjuncts := callArgs(call)

	out := NewStream()
	go func() {
		defer out.Close()
		for _, d := range disjuncts {
			if _, found := store.Query(d).First(); found {
				out.Put(Result{Atom: True, Bindings: NewSubstitution()})
				return
			}
		}
	}()
	return out
}

// opAssert adds its argument to the store and yields the asserted atom.
// Asserting an atom that is already stored still yields the atom.
func opAssert(store *Store, call *Expression) *Stream {
	args := callArgs(call)
	if len(args) != 1 {
		return emptyStream()
	}

	out := NewStream()
	go func() {
		defer out.Close()
		store.Add(args[0])
		out.Put(Result{Atom: args[0], Bindings: NewSubstitution()})
	}()
	return out
}

// opRetract removes its argument from the store and yields True iff an
// atom was actually removed. Retracting an absent atom yields nothing.
func opRetract(store *Store, call *Expression) *Stream {
	args := callArgs(call)
	if len(args) != 1 {
		return emptyStream()
	}

	out := NewStream()
	go func() {
		defer out.Close()
		if store.Remove(args[0]) {
			out.Put(Result{Atom: True, Bindings: NewSubstitution()})
		}
	}()
	return out
}

// opMatch yields every stored atom matching the pattern. The per-match
// substitutions are discarded; callers that need bindings should use
// Store.Query directly.
func opMatch(store *Store, call *Expression) *Stream {
	args := callArgs(call)
	if len(args) != 1 {
		return emptyStream()
	}

	out := NewStream()
	go func() {
		defer out.Close()
		forEach(store.Query(args[0]), func(r Result) bool {
			return out.Put(Result{Atom: r.Atom, Bindings: NewSubstitution()})
		})
	}()
	return out
}

// opQuote yields its argument unevaluated.
func opQuote(_ *Store, call *Expression) *Stream {
	args := callArgs(call)
	if len(args) != 1 {
		return emptyStream()
	}

	out := NewStream()
	go func() {
		defer out.Close()
		out.Put(Result{Atom: args[0], Bindings: NewSubstitution()})
	}()
	return out
}
