package atomspace

import "sync"

// Result pairs a produced atom with the substitution under which it was
// produced. Operations that have no meaningful bindings carry an empty
// substitution.
type Result struct {
	Atom     Atom
	Bindings *Substitution
}

// Stream is a lazy, possibly unbounded sequence of results. Producers push
// with Put from their own goroutine; consumers pull with Take. Closing the
// stream unblocks producers, so consumers may stop early (as Succeeds and
// EvaluateFirst do) without computing or leaking the rest of the sequence.
type Stream struct {
	ch   chan Result
	done chan struct{}
	once sync.Once
}

// NewStream creates a new empty stream.
func NewStream() *Stream {
	return &Stream{
		ch:   make(chan Result),
		done: make(chan struct{}),
	}
}

// Put delivers a result to the stream, blocking until a consumer accepts
// it or the stream is closed. It returns false once the stream is closed,
// signalling the producer to stop.
func (s *Stream) Put(r Result) bool {
	select {
	case s.ch <- r:
		return true
	case <-s.done:
		return false
	}
}

// Take retrieves up to n results from the stream. The boolean reports
// whether more results might still be available.
func (s *Stream) Take(n int) ([]Result, bool) {
	var results []Result
	for i := 0; i < n; i++ {
		select {
		case r := <-s.ch:
			results = append(results, r)
		case <-s.done:
			return results, false
		}
	}

	select {
	case <-s.done:
		return results, false
	default:
		return results, true
	}
}

// Close closes the stream. Pending and future Put calls return false, and
// pending and future Take calls drain to completion. Close is idempotent
// and safe to call from either side.
func (s *Stream) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}

// First pulls a single result and closes the stream, discarding whatever
// else the producer might have computed.
func (s *Stream) First() (Result, bool) {
	defer s.Close()
	results, _ := s.Take(1)
	if len(results) == 0 {
		return Result{}, false
	}
	return results[0], true
}

// Collect drains the stream to completion and returns every result.
// Collect blocks until the producer closes the stream.
func (s *Stream) Collect() []Result {
	var out []Result
	for {
		batch, more := s.Take(16)
		out = append(out, batch...)
		if !more {
			return out
		}
	}
}

// Atoms drains the stream and returns only the produced atoms.
func (s *Stream) Atoms() []Atom {
	results := s.Collect()
	out := make([]Atom, 0, len(results))
	for _, r := range results {
		out = append(out, r.Atom)
	}
	return out
}

// forEach drains src, invoking fn for every result until fn returns false
// or the source is exhausted, then closes src so its producer stops.
func forEach(src *Stream, fn func(Result) bool) {
	defer src.Close()
	for {
		batch, more := src.Take(8)
		for _, r := range batch {
			if !fn(r) {
				return
			}
		}
		if !more {
			return
		}
	}
}
