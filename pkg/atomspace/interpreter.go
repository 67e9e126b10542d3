package atomspace

import "fmt"

// DefaultMaxDepth is the interpreter's recursion-depth ceiling. Rule sets
// may be legitimately cyclic at the data level, so exceeding the ceiling
// silently truncates results rather than raising an error.
const DefaultMaxDepth = 100

// Interpreter evaluates query atoms against a store and a grounded
// operation registry. An interpreter holds no mutable state beyond the
// per-call recursion guard, so a single instance may be shared freely
// across goroutines.
//
// Evaluation of a query proceeds in order:
//  1. Cycle guard: a query whose canonical form was already visited in
//     this evaluation call yields nothing.
//  2. Grounded dispatch: an expression whose head symbol is registered
//     dispatches exclusively to that operation.
//  3. Direct matches: each store match yields the query with the match's
//     substitution applied.
//  4. Rule chaining: for every stored (implies cond concl) fact whose
//     conclusion unifies with the query, the bound condition is validated
//     (store first, then recursively through further rules) and each
//     validation yields the query under the composed substitution.
//     Composition conflicts skip the branch.
//
// An unresolvable query yields an empty stream; queries never fail for
// data-driven reasons.
type Interpreter struct {
	store    *Store
	registry *Registry
	maxDepth int
}

// NewInterpreter creates an interpreter over the given store and registry.
// A nil store is a programmer error and returns an error immediately. A
// nil registry installs the standard registry.
func NewInterpreter(store *Store, registry *Registry) (*Interpreter, error) {
	if store == nil {
		return nil, fmt.Errorf("atomspace: interpreter requires a non-nil store")
	}
	if registry == nil {
		registry = NewStandardRegistry()
	}
	return &Interpreter{
		store:    store,
		registry: registry,
		maxDepth: DefaultMaxDepth,
	}, nil
}

// Store returns the interpreter's store.
func (in *Interpreter) Store() *Store {
	return in.store
}

// Registry returns the interpreter's grounded operation registry.
func (in *Interpreter) Registry() *Registry {
	return in.registry
}

// Evaluate lazily evaluates query and streams the resulting atoms.
func (in *Interpreter) Evaluate(query Atom) *Stream {
	return in.EvaluateWithBindings(query)
}

// EvaluateWithBindings is Evaluate with each result carrying the
// substitution under which it was derived.
func (in *Interpreter) EvaluateWithBindings(query Atom) *Stream {
	stream := NewStream()
	go func() {
		defer stream.Close()
		in.eval(query, make(map[string]bool), 0, stream.Put)
	}()
	return stream
}

// Succeeds reports whether query has at least one result. Evaluation
// short-circuits after the first result.
func (in *Interpreter) Succeeds(query Atom) bool {
	_, ok := in.EvaluateWithBindings(query).First()
	return ok
}

// EvaluateFirst returns the first result of evaluating query, if any.
// Evaluation short-circuits after the first result.
func (in *Interpreter) EvaluateFirst(query Atom) (Atom, bool) {
	r, ok := in.EvaluateWithBindings(query).First()
	return r.Atom, ok
}

// eval pushes every result for query through yield, recursing through rule
// conditions. The visited set and depth counter bound evaluation on cyclic
// or self-referential rule sets. eval returns false as soon as yield does,
// propagating consumer short-circuits up the recursion.
func (in *Interpreter) eval(query Atom, visited map[string]bool, depth int, yield func(Result) bool) bool {
	if query == nil || depth > in.maxDepth {
		return true
	}

	key := query.String()
	if visited[key] {
		return true
	}
	visited[key] = true

	// Grounded operations take precedence over everything else.
	if expr, ok := query.(*Expression); ok {
		if head, ok := expr.Head(); ok {
			if op, found := in.registry.Get(head.Name()); found {
				alive := true
				forEach(op(in.store, expr), func(r Result) bool {
					alive = yield(r)
					return alive
				})
				return alive
			}
		}
	}

	// Direct matches in the store.
	alive := true
	forEach(in.store.Query(query), func(r Result) bool {
		alive = yield(Result{Atom: r.Bindings.Apply(query), Bindings: r.Bindings})
		return alive
	})
	if !alive {
		return false
	}

	// Rule chaining: match stored implications by conclusion shape, then
	// validate their conditions.
	rules, indexed := in.store.withHead(OpImplies)
	if !indexed {
		return true
	}
	for _, rule := range rules {
		expr, ok := rule.(*Expression)
		if !ok || expr.Len() != 3 {
			continue
		}
		cond, concl := expr.Child(1), expr.Child(2)

		ruleSub := Unify(query, concl)
		if ruleSub == nil {
			continue
		}

		ok = in.eval(ruleSub.Apply(cond), visited, depth+1, func(r Result) bool {
			merged := ruleSub.Compose(r.Bindings)
			if merged == nil {
				// Conflicting bindings: skip this branch, keep going.
				return true
			}
			return yield(Result{Atom: merged.Apply(query), Bindings: merged})
		})
		if !ok {
			return false
		}
	}
	return true
}
