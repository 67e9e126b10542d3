package atomspace

import (
	"sort"
	"sync"
)

// GroundedOperation is an externally defined function callable from within
// evaluated expressions. It receives the store and the full call
// expression (head symbol included) and returns a lazy stream of result
// atoms. Malformed calls yield an empty stream, never an error.
type GroundedOperation func(store *Store, call *Expression) *Stream

// Registry maps operation names to grounded operations. The interpreter
// dispatches to a registered operation whenever a query expression's head
// symbol matches a registered name. A Registry is an explicit value passed
// to the interpreter; there is no process-wide registry.
//
// Registration and lookup are safe for concurrent use, so external
// collaborators may extend the vocabulary at runtime.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]GroundedOperation
}

// NewRegistry creates an empty registry. Most callers want
// NewStandardRegistry, which pre-registers the standard operation set.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]GroundedOperation)}
}

// Register binds name to op, replacing any previous binding. A nil op
// removes the name from the registry.
func (r *Registry) Register(name string, op GroundedOperation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if op == nil {
		delete(r.ops, name)
		return
	}
	r.ops[name] = op
}

// Get returns the operation registered under name, if any.
func (r *Registry) Get(name string) (GroundedOperation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	return op, ok
}

// Contains reports whether name has a registered operation.
func (r *Registry) Contains(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns the registered operation names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
