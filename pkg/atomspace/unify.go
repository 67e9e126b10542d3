package atomspace

// Unify attempts to make pattern and target structurally identical by
// binding variables, starting from an empty substitution. It returns the
// unifying substitution, or nil if the two atoms cannot be unified.
// Unification failure is a normal negative result, not an error.
//
// Example:
//
//	sub := Unify(
//	    NewExpression(NewSymbol("Human"), NewVariable("x")),
//	    NewExpression(NewSymbol("Human"), NewSymbol("Socrates")),
//	)
//	// sub binds $x to Socrates
func Unify(pattern, target Atom) *Substitution {
	return UnifyWith(pattern, target, NewSubstitution())
}

// UnifyWith unifies pattern and target under an accumulated substitution,
// resolving variables already bound earlier in the same unification. A nil
// initial substitution is treated as empty.
//
// The algorithm is structural and recursive:
//  1. Apply the accumulated substitution to both sides.
//  2. Structurally equal atoms unify with the substitution unchanged.
//  3. A variable on either side is bound to the other side, subject to the
//     occurs-check; a variable that is already bound is re-unified with
//     the new value instead of being overwritten.
//  4. Expressions unify child-wise, left to right, threading the
//     substitution; an arity mismatch or any child failure fails the
//     whole unification.
//  5. Any other pairing fails.
func UnifyWith(pattern, target Atom, initial *Substitution) *Substitution {
	if pattern == nil || target == nil {
		return nil
	}
	if initial == nil {
		initial = NewSubstitution()
	}

	p := initial.Apply(pattern)
	t := initial.Apply(target)

	if p.Equal(t) {
		return initial
	}

	if v, ok := p.(*Variable); ok {
		return bindVariable(v, t, initial)
	}
	if v, ok := t.(*Variable); ok {
		return bindVariable(v, p, initial)
	}

	pe, pok := p.(*Expression)
	te, tok := t.(*Expression)
	if pok && tok {
		if pe.Len() != te.Len() {
			return nil
		}
		sub := initial
		for i := 0; i < pe.Len(); i++ {
			sub = UnifyWith(pe.Child(i), te.Child(i), sub)
			if sub == nil {
				return nil
			}
		}
		return sub
	}

	return nil
}

// bindVariable binds v to value under sub. The occurs-check rejects a
// binding whose value contains v, which would build a cyclic term. If v is
// already bound, the existing binding is unified with the new value rather
// than overwritten.
func bindVariable(v *Variable, value Atom, sub *Substitution) *Substitution {
	if occurs(v.Name(), value) {
		return nil
	}
	if existing, ok := sub.Lookup(v.Name()); ok {
		return UnifyWith(existing, value, sub)
	}
	return sub.Bind(v.Name(), value)
}

// occurs reports whether a variable with the given name appears anywhere
// inside atom.
func occurs(name string, atom Atom) bool {
	switch a := atom.(type) {
	case *Variable:
		return a.Name() == name
	case *Expression:
		if !a.HasVariables() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if occurs(name, a.Child(i)) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// CanUnify reports whether two atoms unify.
func CanUnify(a, b Atom) bool {
	return Unify(a, b) != nil
}

// UnifyAll lazily unifies pattern against each candidate atom and streams
// a result for every candidate that unifies. Each result carries the
// candidate atom and the unifying substitution. Consumers may stop pulling
// early; closing the stream stops the enumeration.
func UnifyAll(pattern Atom, candidates []Atom) *Stream {
	stream := NewStream()
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
