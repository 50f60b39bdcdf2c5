package verify

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-fpcore/fpc/contrib/workerpool"
)

const (
	sweepBatch  = 1 << 12
	sampleBatch = 1 << 10
)

// recorder collects the results of one check across all workers.
type recorder struct {
	tested   atomic.Int64
	failures atomic.Int64

	mu    sync.Mutex
	first string
}

func (r *recorder) noteFirst(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.first == "" {
		r.first = fmt.Sprintf(format, args...)
	}
}

func (r *recorder) report(name, path string) Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Report{
		Check:        name,
		Path:         path,
		Tested:       r.tested.Load(),
		Failures:     r.failures.Load(),
		FirstFailure: r.first,
	}
}

// batch counts results locally and flushes them to the recorder once, so
// workers do not contend on the shared counters.
type batch struct {
	rec              *recorder
	tested, failures int64
}

// check records one property evaluation. The message is only formatted for
// the first failure of the whole check.
func (b *batch) check(ok bool, format string, args ...any) {
	b.tested++
	if !ok {
		b.failures++
		b.rec.noteFirst(format, args...)
	}
}

func (b *batch) flush() {
	b.rec.tested.Add(b.tested)
	b.rec.failures.Add(b.failures)
}

// sweepFloat32 calls fn for every Stride-th float32 bit pattern.
func sweepFloat32(ctx context.Context, pool *workerpool.Pool, cfg Config, rec *recorder, fn func(b *batch, x float32)) error {
	stride := uint64(cfg.Stride)
	n := int((1<<32 + stride - 1) / stride)
	return pool.ParallelForContext(ctx, n, sweepBatch, func(start, end int) {
		b := &batch{rec: rec}
		for i := start; i < end; i++ {
			fn(b, math.Float32frombits(uint32(uint64(i)*stride)))
		}
		b.flush()
	})
}

// sample calls fn cfg.Samples times. Each batch draws from its own generator
// seeded from cfg.Seed and the batch position, so results do not depend on
// scheduling.
func sample(ctx context.Context, pool *workerpool.Pool, cfg Config, rec *recorder, fn func(b *batch, rng *rand.Rand)) error {
	return pool.ParallelForContext(ctx, cfg.Samples, sampleBatch, func(start, end int) {
		rng := rand.New(rand.NewSource(cfg.Seed + int64(start)))
		b := &batch{rec: rec}
		for range end - start {
			fn(b, rng)
		}
		b.flush()
	})
}

// special64 lists values every float64 sweep includes.
var special64 = []float64{
	0, math.Copysign(0, -1), 0.5, -0.5, 1.5, 2.5, -2.5,
	math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64, 0x1p-1022,
	math.MaxFloat64, -math.MaxFloat64, math.Inf(1), math.Inf(-1), math.NaN(),
	0x1p52 + 1, 0x1p52 - 0.5,
}

// sweepValues runs fn over float32 bit patterns or random float64 bit
// patterns, depending on cfg.Width. fn32 and fn64 must check the same
// properties.
func sweepValues(ctx context.Context, pool *workerpool.Pool, cfg Config, rec *recorder, fn32 func(*batch, float32), fn64 func(*batch, float64)) error {
	if cfg.Width == 32 {
		return sweepFloat32(ctx, pool, cfg, rec, fn32)
	}
	b := &batch{rec: rec}
	for _, x := range special64 {
		fn64(b, x)
	}
	b.flush()
	return sample(ctx, pool, cfg, rec, func(b *batch, rng *rand.Rand) {
		fn64(b, math.Float64frombits(rng.Uint64()))
	})
}
