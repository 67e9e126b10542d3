package atomspace

import (
	"sort"
	"strings"
)

// Substitution is an immutable mapping from variable names to atoms.
// Mutating operations return a new substitution; existing values are never
// changed, so substitutions may be shared freely across goroutines.
type Substitution struct {
	bindings map[string]Atom
}

// NewSubstitution creates an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{bindings: make(map[string]Atom)}
}

// Len returns the number of bindings.
func (s *Substitution) Len() int {
	return len(s.bindings)
}

// Lookup returns the atom bound to the given variable name, if any.
func (s *Substitution) Lookup(name string) (Atom, bool) {
	value, ok := s.bindings[name]
	return value, ok
}

// Bind returns a new substitution with name bound to value. An existing
// binding for the same name is overwritten; use Compose to detect
// conflicting bindings instead.
func (s *Substitution) Bind(name string, value Atom) *Substitution {
	next := make(map[string]Atom, len(s.bindings)+1)
	for k, v := range s.bindings {
		next[k] = v
	}
	next[name] = value
	return &Substitution{bindings: next}
}

// Apply returns atom with every bound variable replaced by its binding,
// recursively through expressions and binding chains. Unbound variables
// and symbols pass through unchanged, as does any variable whose binding
// chain loops back on itself.
func (s *Substitution) Apply(atom Atom) Atom {
	return s.apply(atom, nil)
}

// apply resolves bindings while tracking the variable names on the active
// chain. Unifier-built substitutions are acyclic by construction, but Bind
// and Compose are public construction paths and can close a cycle such as
// {$x=$y, $y=$x}; a revisited name stops resolution and the variable
// passes through unchanged.
func (s *Substitution) apply(atom Atom, resolving map[string]bool) Atom {
	switch a := atom.(type) {
	case *Symbol:
		return a
	case *Variable:
		value, ok := s.bindings[a.Name()]
		if !ok || resolving[a.Name()] {
			return a
		}
		if resolving == nil {
			resolving = make(map[string]bool)
		}
		resolving[a.Name()] = true
		result := s.apply(value, resolving)
		delete(resolving, a.Name())
		return result
	case *Expression:
		if !a.HasVariables() {
			return a
		}
		children := make([]Atom, a.Len())
		for i := 0; i < a.Len(); i++ {
			children[i] = s.apply(a.Child(i), resolving)
		}
		return NewExpression(children...)
	default:
		return atom
	}
}

// Compose returns a substitution containing the union of the bindings of s
// and other. If both bind the same variable to non-equal atoms the
// composition conflicts and Compose returns nil. Composing identical
// bindings is a no-op.
func (s *Substitution) Compose(other *Substitution) *Substitution {
	if other == nil {
		return nil
	}
	if other.Len() == 0 {
		return s
	}

	merged := make(map[string]Atom, len(s.bindings)+len(other.bindings))
	for k, v := range s.bindings {
		merged[k] = v
	}
	for k, v := range other.bindings {
		if existing, ok := merged[k]; ok {
			if !existing.Equal(v) {
				return nil
			}
			continue
		}
		merged[k] = v
	}
	return &Substitution{bindings: merged}
}

// String returns a deterministic rendering of the bindings, sorted by
// variable name, e.g. {$x=Socrates, $y=(Human Socrates)}.
func (s *Substitution) String() string {
	if len(s.bindings) == 0 {
		return "{}"
	}

	names := make([]string, 0, len(s.bindings))
	for name := range s.bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('$')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(s.bindings[name].String())
	}
	b.WriteByte('}')
	return b.String()
}
