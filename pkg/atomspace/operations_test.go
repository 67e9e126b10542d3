package atomspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// call builds a grounded call expression (op arg arg ...).
func call(op string, args ...Atom) *Expression {
	children := append([]Atom{sym(op)}, args...)
	return NewExpression(children...)
}

func TestRegistry(t *testing.T) {
	t.Run("register and lookup", func(t *testing.T) {
		r := NewRegistry()
		assert.False(t, r.Contains("noop"))

		r.Register("noop", func(*Store, *Expression) *Stream { return emptyStream() })
		assert.True(t, r.Contains("noop"))

		op, ok := r.Get("noop")
		require.True(t, ok)
		assert.NotNil(t, op)
	})

	t.Run("nil operation unregisters", func(t *testing.T) {
		r := NewRegistry()
		r.Register("noop", func(*Store, *Expression) *Stream { return emptyStream() })
		r.Register("noop", nil)
		assert.False(t, r.Contains("noop"))
	})

	t.Run("standard registry carries the builtin set", func(t *testing.T) {
		r := NewStandardRegistry()
		want := []string{OpAnd, OpAssert, OpEqual, OpImplies, OpMatch, OpNot, OpOr, OpQuote, OpRetract}
		assert.Equal(t, want, r.Names())
	})
}

func TestOpEqual(t *testing.T) {
	st := NewStore()

	t.Run("structurally equal atoms", func(t *testing.T) {
		results := opEqual(st, call(OpEqual, expr(sym("a"), sym("b")), expr(sym("a"), sym("b")))).Collect()
		require.Len(t, results, 1)
		assert.True(t, results[0].Atom.Equal(True))
	})

	t.Run("unequal atoms yield nothing", func(t *testing.T) {
		assert.Empty(t, opEqual(st, call(OpEqual, sym("a"), sym("b"))).Collect())
	})

	t.Run("malformed arity yields nothing", func(t *testing.T) {
		assert.Empty(t, opEqual(st, call(OpEqual, sym("a"))).Collect())
	})
}

func TestOpNot(t *testing.T) {
	st := NewStore()
	zeus := expr(sym("Human"), sym("Zeus"))

	results := opNot(st, call(OpNot, zeus)).Collect()
	require.Len(t, results, 1, "negation holds against an empty store")
	assert.True(t, results[0].Atom.Equal(True))

	st.Add(zeus)
	assert.Empty(t, opNot(st, call(OpNot, zeus)).Collect(),
		"negation fails once the atom is asserted")
}

func TestOpAnd(t *testing.T) {
	st := NewStore()
	st.Add(expr(sym("Human"), sym("Socrates")))
	st.Add(expr(sym("Mortal"), sym("Socrates")))
	st.Add(expr(sym("Human"), sym("Plato")))

	t.Run("empty conjunction trivially succeeds", func(t *testing.T) {
		results := opAnd(st, call(OpAnd)).Collect()
		require.Len(t, results, 1)
		assert.True(t, results[0].Atom.Equal(True))
	})

	t.Run("shared variable threads through conjuncts", func(t *testing.T) {
		// Satisfied only by $x = Socrates; Plato is human but not mortal.
		results := opAnd(st, call(OpAnd,
			expr(sym("Human"), v("x")),
			expr(sym("Mortal"), v("x")),
		)).Collect()
		require.Len(t, results, 1)
		assert.True(t, results[0].Atom.Equal(True))
	})

	t.Run("unsatisfiable conjunction yields nothing", func(t *testing.T) {
		assert.Empty(t, opAnd(st, call(OpAnd,
			expr(sym("Human"), v("x")),
			expr(sym("Stone"), v("x")),
		)).Collect())
	})

	t.Run("ground conjuncts", func(t *testing.T) {
		results := opAnd(st, call(OpAnd,
			expr(sym("Human"), sym("Socrates")),
			expr(sym("Mortal"), sym("Socrates")),
		)).Collect()
		assert.Len(t, results, 1)
	})
}

func TestOpOr(t *testing.T) {
	st := NewStore()
	st.Add(expr(sym("Human"), sym("Socrates")))

	t.Run("any matching disjunct succeeds", func(t *testing.T) {
		results := opOr(st, call(OpOr,
			expr(sym("Stone"), v("x")),
			expr(sym("Human"), v("x")),
		)).Collect()
		require.Len(t, results, 1)
		assert.True(t, results[0].Atom.Equal(True))
	})

	t.Run("no matching disjunct yields nothing", func(t *testing.T) {
		assert.Empty(t, opOr(st, call(OpOr, expr(sym("Stone"), v("x")))).Collect())
	})

	t.Run("empty disjunction yields nothing", func(t *testing.T) {
		assert.Empty(t, opOr(st, call(OpOr)).Collect())
	})
}

func TestOpAssertRetract(t *testing.T) {
	st := NewStore()
	fact := expr(sym("Human"), sym("Zeus"))

	results := opAssert(st, call(OpAssert, fact)).Collect()
	require.Len(t, results, 1)
	assert.True(t, results[0].Atom.Equal(fact), "assert yields the asserted atom")
	assert.True(t, st.Contains(fact))

	results = opRetract(st, call(OpRetract, fact)).Collect()
	require.Len(t, results, 1)
	assert.True(t, results[0].Atom.Equal(True), "retract yields the truth symbol")
	assert.False(t, st.Contains(fact))

	assert.Empty(t, opRetract(st, call(OpRetract, fact)).Collect(),
		"retracting an absent atom yields nothing")
}

func TestOpMatch(t *testing.T) {
	st := NewStore()
	socrates := expr(sym("Human"), sym("Socrates"))
	plato := expr(sym("Human"), sym("Plato"))
	st.Add(socrates)
	st.Add(plato)

	results := opMatch(st, call(OpMatch, expr(sym("Human"), v("x")))).Collect()
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, 0, r.Bindings.Len(), "match discards substitutions")
	}
}

func TestOpQuote(t *testing.T) {
	st := NewStore()
	// quote must not evaluate: the argument is a grounded call that would
	// otherwise mutate the store.
	inner := call(OpAssert, expr(sym("Human"), sym("Zeus")))

	results := opQuote(st, call(OpQuote, inner)).Collect()
	require.Len(t, results, 1)
	assert.True(t, results[0].Atom.Equal(inner))
	assert.Equal(t, 0, st.Count(), "quoted call must not run")
}

func TestOpImplies(t *testing.T) {
	st := NewStore()
	st.Add(expr(sym("Human"), sym("Socrates")))
	st.Add(expr(sym("Human"), sym("Plato")))

	results := opImplies(st, call(OpImplies,
		expr(sym("Human"), v("x")),
		expr(sym("Mortal"), v("x")),
	)).Collect()

	require.Len(t, results, 2)
	var derived []string
	for _, r := range results {
		derived = append(derived, r.Atom.String())
	}
	assert.ElementsMatch(t, []string{"(Mortal Socrates)", "(Mortal Plato)"}, derived)
}
