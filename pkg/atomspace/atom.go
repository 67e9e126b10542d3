// Package atomspace provides a thread-safe symbolic knowledge store and
// inference engine in Go. It implements the core of a Hyperon-style
// atomspace: structured symbolic terms ("atoms"), a unification algorithm
// that matches patterns containing logic variables against stored terms,
// and an interpreter that evaluates queries by combining direct pattern
// matches, implication-rule chaining, and pluggable grounded operations.
//
// The package is built from a small set of components:
//   - Atoms: immutable terms (Symbol, Variable, Expression)
//   - Substitution: immutable variable-to-atom bindings
//   - Unify: structural unification with occurs-check
//   - Store: a concurrent, head-indexed set of atoms with pattern queries
//   - Registry: a table of grounded operations (equal, not, and, assert, ...)
//   - Interpreter: lazy query evaluation over a store and registry
//
// All results are delivered as lazy streams, so callers may stop pulling
// solutions early without computing the full answer set.
package atomspace

import "strings"

// Atom is the unit of symbolic representation. It is a closed set of three
// variants: Symbol, Variable, and Expression. Atoms are immutable and
// compared structurally; two atoms built independently with identical
// structure are equal and render identically.
//
// Consumers that need per-variant behavior switch exhaustively on the
// concrete type rather than extending the interface.
type Atom interface {
	// String returns the canonical s-expression rendering of the atom:
	// "name" for symbols, "$name" for variables, "(child child ...)" for
	// expressions. The rendering is deterministic and order-preserving,
	// and doubles as the atom's structural identity key.
	String() string

	// Equal reports whether this atom is structurally identical to other.
	Equal(other Atom) bool

	// HasVariables reports whether the atom is a variable or contains one
	// anywhere in its structure. Symbols never do.
	HasVariables() bool

	// sealed keeps the set of atom variants closed to this package.
	sealed()
}

// Symbol is a ground constant identified by its name.
type Symbol struct {
	name string
}

// NewSymbol creates a symbol with the given name.
func NewSymbol(name string) *Symbol {
	return &Symbol{name: name}
}

// Name returns the symbol's identifier.
func (s *Symbol) Name() string {
	return s.name
}

// String returns the symbol's name.
func (s *Symbol) String() string {
	return s.name
}

// Equal reports whether other is a symbol with the same name.
func (s *Symbol) Equal(other Atom) bool {
	o, ok := other.(*Symbol)
	return ok && s.name == o.name
}

// HasVariables always returns false for symbols.
func (s *Symbol) HasVariables() bool {
	return false
}

func (s *Symbol) sealed() {}

// Variable is an unbound placeholder used in patterns. Variables are
// identified by name; two variables with the same name denote the same
// binding site within a pattern.
type Variable struct {
	name string
}

// NewVariable creates a variable with the given name. The name should not
// include the "$" sigil; it is added by String.
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

// Name returns the variable's identifier without the "$" sigil.
func (v *Variable) Name() string {
	return v.name
}

// String returns the variable rendered as "$name".
func (v *Variable) String() string {
	return "$" + v.name
}

// Equal reports whether other is a variable with the same name.
func (v *Variable) Equal(other Atom) bool {
	o, ok := other.(*Variable)
	return ok && v.name == o.name
}

// HasVariables always returns true for variables.
func (v *Variable) HasVariables() bool {
	return true
}

func (v *Variable) sealed() {}

// Expression is an ordered s-expression of sub-atoms. Equality is
// structural: element-wise, order-sensitive, and arity-sensitive.
type Expression struct {
	children []Atom
	hasVars  bool
}

// NewExpression creates an expression from the given children. The child
// slice is copied, so the expression is immutable even if the caller
// mutates its argument afterwards.
func NewExpression(children ...Atom) *Expression {
	kids := make([]Atom, len(children))
	copy(kids, children)

	hasVars := false
	for _, c := range kids {
		if c.HasVariables() {
			hasVars = true
			break
		}
	}

	return &Expression{children: kids, hasVars: hasVars}
}

// Len returns the number of direct children.
func (e *Expression) Len() int {
	return len(e.children)
}

// Child returns the i-th direct child.
func (e *Expression) Child(i int) Atom {
	return e.children[i]
}

// Children returns a copy of the direct children.
func (e *Expression) Children() []Atom {
	out := make([]Atom, len(e.children))
	copy(out, e.children)
	return out
}

// Head returns the expression's first child if it is a symbol. The head
// symbol is what the store's index and the grounded-operation registry
// dispatch on.
func (e *Expression) Head() (*Symbol, bool) {
	if len(e.children) == 0 {
		return nil, false
	}
	head, ok := e.children[0].(*Symbol)
	return head, ok
}

// String returns the expression rendered as "(child child ...)".
func (e *Expression) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range e.children {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports whether other is an expression with structurally equal
// children in the same order.
func (e *Expression) Equal(other Atom) bool {
	o, ok := other.(*Expression)
	if !ok || len(e.children) != len(o.children) {
		return false
	}
	for i := range e.children {
		if !e.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// HasVariables reports whether any child contains a variable. The answer
// is computed once at construction.
func (e *Expression) HasVariables() bool {
	return e.hasVars
}

func (e *Expression) sealed() {}
