// Package workpool provides a small fixed-size worker pool used to
// parallelize independent per-item work: per-chord candidate enumeration
// and per-row transition-matrix construction.
package workpool

import (
	"context"
	"runtime"
	"sync"
)

// Pool runs submitted tasks across a fixed number of worker goroutines
// sized to the available CPUs.
type Pool struct {
	tasks   chan func()
	workers sync.WaitGroup
}

// New starts a Pool with runtime.NumCPU() workers.
func New() *Pool {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	p := &Pool{tasks: make(chan func(), n*2)}
	p.workers.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.workers.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// Close shuts down the pool, waiting for in-flight tasks to finish.
// No further tasks may be submitted after Close.
func (p *Pool) Close() {
	close(p.tasks)
	p.workers.Wait()
}

// Run executes fn(i) for i in [0, n) across the pool and blocks until
// every call has returned or ctx is cancelled. If ctx is cancelled before
// all calls complete, Run returns ctx.Err() once the in-flight calls
// finish; fn is responsible for checking ctx itself to return early.
func Run(ctx context.Context, p *Pool, n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}

	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		i := i
		p.tasks <- func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			errs[i] = fn(i)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
