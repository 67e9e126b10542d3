// Package parallel provides a bounded worker pool for fanning out atom
// store queries across goroutines without unbounded goroutine growth.
package parallel

import (
	"fmt"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned when submitting to a pool that has been shut
// down.
var ErrPoolShutdown = fmt.Errorf("parallel: worker pool has been shut down")

// WorkerPool runs submitted tasks on a fixed number of goroutines. The
// task queue is buffered; once it fills, Submit blocks until a worker
// frees up, providing natural backpressure during large query fan-outs.
type WorkerPool struct {
	tasks    chan func()
	shutdown chan struct{}
	workers  sync.WaitGroup
	once     sync.Once
}

// NewWorkerPool creates a pool with the given number of workers. A
// non-positive count defaults to the number of CPU cores.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		tasks:    make(chan func(), maxWorkers*2),
		shutdown: make(chan struct{}),
	}

	for i := 0; i < maxWorkers; i++ {
		pool.workers.Add(1)
		go pool.worker()
	}
	return pool
}

func (wp *WorkerPool) worker() {
	defer wp.workers.Done()
	for {
		select {
		case task := <-wp.tasks:
			if task != nil {
				task()
			}
		case <-wp.shutdown:
			return
		}
	}
}

// Submit queues a task for execution, blocking while the queue is full.
// It returns ErrPoolShutdown if the pool has been shut down.
func (wp *WorkerPool) Submit(task func()) error {
	select {
	case <-wp.shutdown:
		return ErrPoolShutdown
	default:
	}

	select {
	case wp.tasks <- task:
		return nil
	case <-wp.shutdown:
		return ErrPoolShutdown
	}
}

// Shutdown stops the workers after their current tasks complete and waits
// for them to exit. Shutdown is idempotent. Tasks still queued but not yet
// started are dropped.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdown)
		wp.workers.Wait()
	})
}
