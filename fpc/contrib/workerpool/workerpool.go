// Copyright 2025 go-fpcore Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for sweeping large
// input spaces, such as every float32 bit pattern, in parallel.
//
// A Pool is created once and reused for every sweep, so a property check
// that runs many sweeps does not pay goroutine spawn cost each time.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ParallelForContext(ctx, 1<<32, 1<<16, func(start, end int) {
//	    for b := start; b < end; b++ {
//	        check(math.Float32frombits(uint32(b)))
//	    }
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused by every parallel call until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers, or GOMAXPROCS workers if
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. It is safe to call
// more than once; parallel calls on a closed pool run sequentially.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// run hands body to workers goroutines and waits for all of them.
func (p *Pool) run(workers int, body func()) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{fn: body, barrier: &wg}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into one contiguous chunk per worker and calls
// fn(start, end) for each chunk. It blocks until all chunks are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var next atomic.Int64
	p.run(workers, func() {
		start := int(next.Add(1)-1) * chunk
		if start >= n {
			return
		}
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing out indices
// one at a time so uneven work stays balanced.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched hands out [0, n) in batches of batchSize indices.
// Workers grab the next batch as soon as they finish one.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	// A background context never cancels, so the error is always nil.
	_ = p.ParallelForContext(context.Background(), n, batchSize, fn)
}

// ParallelForContext is ParallelForAtomicBatched that stops handing out
// batches once ctx is done. Batches already running finish. It returns
// ctx.Err() if any batch was skipped.
func (p *Pool) ParallelForContext(ctx context.Context, n int, batchSize int, fn func(start, end int)) error {
	if n <= 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)

	var next atomic.Int64
	var skipped atomic.Bool
	body := func() {
		for {
			start := int(next.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			if ctx.Err() != nil {
				skipped.Store(true)
				return
			}
			fn(start, min(start+batchSize, n))
		}
	}

	if p.closed.Load() || workers == 1 {
		body()
	} else {
		p.run(workers, body)
	}
	if skipped.Load() {
		return ctx.Err()
	}
	return nil
}
