package atomspace

import (
	"testing"
	"time"
)

// TestStreamPutTake tests the basic produce/consume cycle.
func TestStreamPutTake(t *testing.T) {
	t.Run("take receives produced results", func(t *testing.T) {
		s := NewStream()
		go func() {
			defer s.Close()
			s.Put(Result{Atom: NewSymbol("a"), Bindings: NewSubstitution()})
			s.Put(Result{Atom: NewSymbol("b"), Bindings: NewSubstitution()})
		}()

		results := s.Collect()
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		if results[0].Atom.String() != "a" || results[1].Atom.String() != "b" {
			t.Errorf("unexpected results: %v", results)
		}
	})

	t.Run("take on a closed stream returns no more", func(t *testing.T) {
		s := NewStream()
		s.Close()

		results, more := s.Take(5)
		if len(results) != 0 || more {
			t.Errorf("closed stream should yield nothing, got %v (more=%v)", results, more)
		}
	})
}

// TestStreamEarlyClose verifies that closing a stream unblocks its
// producer, the property Succeeds and EvaluateFirst rely on.
func TestStreamEarlyClose(t *testing.T) {
	s := NewStream()
	exited := make(chan struct{})

	go func() {
		defer close(exited)
		for {
			if !s.Put(Result{Atom: NewSymbol("x"), Bindings: NewSubstitution()}) {
				return // consumer closed, stop producing
			}
		}
	}()

	results, _ := s.Take(1)
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	s.Close()

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("producer did not exit after stream close")
	}
}

// TestStreamFirst tests the single-result short-circuit helper.
func TestStreamFirst(t *testing.T) {
	t.Run("returns the first result and closes", func(t *testing.T) {
		s := NewStream()
		go func() {
			defer s.Close()
			s.Put(Result{Atom: NewSymbol("a"), Bindings: NewSubstitution()})
			s.Put(Result{Atom: NewSymbol("b"), Bindings: NewSubstitution()})
		}()

		r, ok := s.First()
		if !ok || r.Atom.String() != "a" {
			t.Errorf("expected first result a, got %v (%v)", r, ok)
		}
	})

	t.Run("empty stream reports no result", func(t *testing.T) {
		s := NewStream()
		s.Close()

		if _, ok := s.First(); ok {
			t.Error("empty stream should have no first result")
		}
	})
}

// TestStreamAtoms tests the atom-only drain helper.
func TestStreamAtoms(t *testing.T) {
	s := NewStream()
	go func() {
		defer s.Close()
		s.Put(Result{Atom: NewSymbol("a"), Bindings: NewSubstitution()})
	}()

	atoms := s.Atoms()
	if len(atoms) != 1 || atoms[0].String() != "a" {
		t.Errorf("unexpected atoms: %v", atoms)
	}
}

// TestStreamCloseIdempotent ensures Close can be called from both sides.
func TestStreamCloseIdempotent(t *testing.T) {
	s := NewStream()
	s.Close()
	s.Close()
}
