package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/goatomspace/pkg/atomspace"
)

// knowledgeBase is the YAML shape accepted by the query command.
//
//	facts:
//	  - [Human, Socrates]
//	rules:
//	  - condition: [Human, $x]
//	    conclusion: [Mortal, $x]
//	queries:
//	  - [Mortal, Socrates]
//
// Scalars decode to symbols, "$"-prefixed scalars to variables, and
// sequences to expressions. This is structured data decoding, not an
// s-expression parser.
type knowledgeBase struct {
	Facts   []any  `yaml:"facts"`
	Rules   []rule `yaml:"rules"`
	Queries []any  `yaml:"queries"`
}

type rule struct {
	Condition  any `yaml:"condition"`
	Conclusion any `yaml:"conclusion"`
}

// loadKnowledgeBase reads and decodes a YAML knowledge base file.
func loadKnowledgeBase(path string) (*knowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}

	var kb knowledgeBase
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("decode knowledge base: %w", err)
	}
	return &kb, nil
}

// atomFromYAML converts a decoded YAML value into an atom.
func atomFromYAML(value any) (atomspace.Atom, error) {
	switch v := value.(type) {
	case string:
		if strings.HasPrefix(v, "$") {
			name := strings.TrimPrefix(v, "$")
			if name == "" {
				return nil, fmt.Errorf("variable name must not be empty")
			}
			return atomspace.NewVariable(name), nil
		}
		return atomspace.NewSymbol(v), nil
	case bool, int, int64, uint64, float64:
		return atomspace.NewSymbol(fmt.Sprintf("%v", v)), nil
	case []any:
		children := make([]atomspace.Atom, 0, len(v))
		for _, child := range v {
			atom, err := atomFromYAML(child)
			if err != nil {
				return nil, err
			}
			children = append(children, atom)
		}
		return atomspace.NewExpression(children...), nil
	default:
		return nil, fmt.Errorf("unsupported knowledge base value %T", value)
	}
}

// populate asserts the knowledge base's facts and rules into the store.
// Rules become stored (implies condition conclusion) expressions.
func (kb *knowledgeBase) populate(store *atomspace.Store) error {
	for i, f := range kb.Facts {
		atom, err := atomFromYAML(f)
		if err != nil {
			return fmt.Errorf("fact %d: %w", i, err)
		}
		store.Add(atom)
	}

	for i, r := range kb.Rules {
		cond, err := atomFromYAML(r.Condition)
		if err != nil {
			return fmt.Errorf("rule %d condition: %w", i, err)
		}
		concl, err := atomFromYAML(r.Conclusion)
		if err != nil {
			return fmt.Errorf("rule %d conclusion: %w", i, err)
		}
		store.Add(atomspace.NewExpression(
			atomspace.NewSymbol(atomspace.OpImplies), cond, concl,
		))
	}
	return nil
}

// queryAtoms converts the knowledge base's queries into atoms.
func (kb *knowledgeBase) queryAtoms() ([]atomspace.Atom, error) {
	out := make([]atomspace.Atom, 0, len(kb.Queries))
	for i, q := range kb.Queries {
		atom, err := atomFromYAML(q)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		out = append(out, atom)
	}
	return out, nil
}
