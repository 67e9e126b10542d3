package atomspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryAll(t *testing.T) {
	st := NewStore()
	st.Add(expr(sym("Human"), sym("Socrates")))
	st.Add(expr(sym("Human"), sym("Plato")))
	st.Add(expr(sym("Stone"), sym("Rock")))

	t.Run("merges results across patterns", func(t *testing.T) {
		results := QueryAll(st, 2,
			expr(sym("Human"), v("x")),
			expr(sym("Stone"), v("x")),
		).Collect()

		var rendered []string
		for _, r := range results {
			rendered = append(rendered, r.Atom.String())
		}
		assert.ElementsMatch(t,
			[]string{"(Human Socrates)", "(Human Plato)", "(Stone Rock)"},
			rendered)
	})

	t.Run("early close stops the fan-out", func(t *testing.T) {
		_, ok := QueryAll(st, 2,
			expr(sym("Human"), v("x")),
			expr(sym("Stone"), v("x")),
		).First()
		require.True(t, ok)
	})

	t.Run("no patterns yields nothing", func(t *testing.T) {
		assert.Empty(t, QueryAll(st, 2).Collect())
	})

	t.Run("nil store yields nothing", func(t *testing.T) {
		assert.Empty(t, QueryAll(nil, 2, sym("a")).Collect())
	})

	t.Run("default worker count", func(t *testing.T) {
		results := QueryAll(st, 0, expr(sym("Human"), v("x"))).Collect()
		assert.Len(t, results, 2)
	})
}
