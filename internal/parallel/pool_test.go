package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWorkerPoolRunsTasks(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Shutdown()

	var ran int64
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			atomic.AddInt64(&ran, 1)
		})
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}
	wg.Wait()

	if got := atomic.LoadInt64(&ran); got != 32 {
		t.Errorf("expected 32 tasks to run, got %d", got)
	}
}

func TestWorkerPoolShutdown(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Shutdown()
	pool.Shutdown() // idempotent

	if err := pool.Submit(func() {}); err != ErrPoolShutdown {
		t.Errorf("expected ErrPoolShutdown, got %v", err)
	}
}

func TestWorkerPoolDefaultSize(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Shutdown()

	done := make(chan struct{})
	if err := pool.Submit(func() { close(done) }); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	<-done
}
