package atomspace

import (
	"fmt"
	"sync"
)

// StoreEvent identifies a mutation applied to a store.
type StoreEvent int

const (
	// AtomAdded fires when an atom is newly inserted.
	AtomAdded StoreEvent = iota
	// AtomRemoved fires when a stored atom is removed.
	AtomRemoved
	// StoreCleared fires when the store is reset. The event atom is nil.
	StoreCleared
)

// String returns a human-readable event name.
func (e StoreEvent) String() string {
	switch e {
	case AtomAdded:
		return "added"
	case AtomRemoved:
		return "removed"
	case StoreCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// StoreObserver receives notifications about applied store mutations.
// External bridges (event buses, three-valued logic layers, UIs) implement
// this interface; the core Store itself never invokes observers.
type StoreObserver interface {
	// StoreChanged is called after a mutation has been applied. For
	// StoreCleared the atom is nil. Implementations must not block; they
	// are invoked synchronously on the mutating goroutine.
	StoreChanged(event StoreEvent, atom Atom)
}

// ObservedStore decorates a Store with mutation notifications. Bridges
// that need change events wrap the store and route all writes through the
// wrapper; reads and queries go straight to the underlying store, which
// stays completely unaware of its observers.
type ObservedStore struct {
	store *Store

	mu        sync.RWMutex
	observers []StoreObserver
}

// NewObservedStore wraps store. A nil store is a programmer error and
// returns an error immediately.
func NewObservedStore(store *Store) (*ObservedStore, error) {
	if store == nil {
		return nil, fmt.Errorf("atomspace: observed store requires a non-nil store")
	}
	return &ObservedStore{store: store}, nil
}

// Store returns the underlying store, for reads and queries.
func (w *ObservedStore) Store() *Store {
	return w.store
}

// Observe registers an observer for subsequent mutations.
func (w *ObservedStore) Observe(o StoreObserver) {
	if o == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.observers = append(w.observers, o)
}

// Add inserts an atom, notifying observers only when the atom was newly
// inserted.
func (w *ObservedStore) Add(atom Atom) bool {
	if !w.store.Add(atom) {
		return false
	}
	w.notify(AtomAdded, atom)
	return true
}

// Remove deletes an atom, notifying observers only when an atom was
// actually removed.
func (w *ObservedStore) Remove(atom Atom) bool {
	if !w.store.Remove(atom) {
		return false
	}
	w.notify(AtomRemoved, atom)
	return true
}

// Reset clears the store and notifies observers once.
func (w *ObservedStore) Reset() {
	w.store.Reset()
	w.notify(StoreCleared, nil)
}

func (w *ObservedStore) notify(event StoreEvent, atom Atom) {
	w.mu.RLock()
	observers := w.observers
	w.mu.RUnlock()

	for _, o := range observers {
		o.StoreChanged(event, atom)
	}
}
