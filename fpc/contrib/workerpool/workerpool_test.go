// Copyright 2025 go-fpcore Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"math"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

// coverage runs a parallel call and checks that every index was visited
// exactly once.
func coverage(t *testing.T, n int, run func(visit func(i int))) {
	t.Helper()
	hits := make([]atomic.Int32, n)
	run(func(i int) { hits[i].Add(1) })
	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 100, 1001} {
		coverage(t, n, func(visit func(int)) {
			pool.ParallelFor(n, func(start, end int) {
				for i := start; i < end; i++ {
					visit(i)
				}
			})
		})
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	coverage(t, 100, func(visit func(int)) {
		pool.ParallelForAtomic(100, visit)
	})
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, batch := range []int{0, 1, 7, 10, 1000} {
		coverage(t, 100, func(visit func(int)) {
			pool.ParallelForAtomicBatched(100, batch, func(start, end int) {
				for i := start; i < end; i++ {
					visit(i)
				}
			})
		})
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called atomic.Bool
	pool.ParallelFor(0, func(start, end int) { called.Store(true) })
	pool.ParallelForAtomic(-1, func(i int) { called.Store(true) })
	if err := pool.ParallelForContext(context.Background(), 0, 4, func(start, end int) { called.Store(true) }); err != nil {
		t.Errorf("ParallelForContext(n=0): %v", err)
	}
	if called.Load() {
		t.Error("parallel calls with n <= 0 should not call fn")
	}
}

func TestParallelForContextSweep(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	// Every bit pattern below 1<<24 is a non-negative float32 below 1.
	var count atomic.Int64
	n := 1 << 24
	err := pool.ParallelForContext(context.Background(), n, 1<<14, func(start, end int) {
		var local int64
		for b := start; b < end; b++ {
			if f := math.Float32frombits(uint32(b)); f < 1 {
				local++
			}
		}
		count.Add(local)
	})
	if err != nil {
		t.Fatalf("ParallelForContext: %v", err)
	}
	if got := count.Load(); got != int64(n) {
		t.Errorf("count = %d, want %d", got, n)
	}
}

func TestParallelForContextCancel(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var batches atomic.Int32
	err := pool.ParallelForContext(ctx, 1000, 1, func(start, end int) {
		if batches.Add(1) == 10 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if got := batches.Load(); got >= 1000 {
		t.Errorf("ran %d batches after cancel, want fewer than 1000", got)
	}

	// An already cancelled context runs nothing.
	batches.Store(0)
	err = pool.ParallelForContext(ctx, 1000, 10, func(start, end int) { batches.Add(1) })
	if !errors.Is(err, context.Canceled) || batches.Load() != 0 {
		t.Errorf("cancelled context: err = %v, batches = %d", err, batches.Load())
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	coverage(t, 100, func(visit func(int)) {
		pool.ParallelFor(100, func(start, end int) {
			for i := start; i < end; i++ {
				visit(i)
			}
		})
	})
	coverage(t, 100, func(visit func(int)) {
		pool.ParallelForAtomicBatched(100, 8, func(start, end int) {
			for i := start; i < end; i++ {
				visit(i)
			}
		})
	})
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for b.Loop() {
		pool.ParallelFor(1000, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForContext(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	ctx := context.Background()
	for b.Loop() {
		_ = pool.ParallelForContext(ctx, 1<<16, 1<<10, func(start, end int) {
			for j := start; j < end; j++ {
				_ = math.Float32frombits(uint32(j))
			}
		})
	}
}
