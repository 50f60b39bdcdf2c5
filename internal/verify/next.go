package verify

import (
	"context"

	"github.com/ajroetker/go-fpcore/fpc"
	fpmath "github.com/ajroetker/go-fpcore/fpc/contrib/math"
	"github.com/ajroetker/go-fpcore/fpc/contrib/workerpool"
)

// checkNext checks NextDown(x) < x < NextUp(x) and that NextUp and NextDown
// undo each other on finite values, along with signed zero classification.
func checkNext(ctx context.Context, pool *workerpool.Pool, cfg Config, rec *recorder) error {
	b := &batch{rec: rec}
	zerosValue[float32](b)
	zerosValue[float64](b)
	b.flush()
	return sweepValues(ctx, pool, cfg, rec, nextValue[float32], nextValue[float64])
}

func zerosValue[T fpc.Floats](b *batch) {
	pos := fpc.NewFloatingPoint(T(0))
	neg := pos.Negate()
	b.check(pos.IsZero() && neg.IsZero(), "IsZero(±0) = %v, %v", pos.IsZero(), neg.IsZero())
	b.check(!pos.IsSameValue(neg), "IsSameValue(+0, -0) = true")
	b.check(pos.Equal(neg), "Equal(+0, -0) = false")
	minSub := fpc.MinSubnormal[T]()
	b.check(fpmath.NextUp(T(0)) == minSub, "NextUp(0) = %v, want %v", fpmath.NextUp(T(0)), minSub)
	b.check(fpmath.NextDown(T(0)) == -minSub, "NextDown(0) = %v, want %v", fpmath.NextDown(T(0)), -minSub)
}

func nextValue[T fpc.Floats](b *batch, x T) {
	if !fpmath.IsFinite(x) {
		return
	}
	up, down := fpmath.NextUp(x), fpmath.NextDown(x)
	b.check(down < x && x < up, "ordering at %v: NextDown %v, NextUp %v", x, down, up)
	b.check(fpmath.NextUp(down) == x, "NextUp(NextDown(%v)) = %v", x, fpmath.NextUp(down))
	b.check(fpmath.NextDown(up) == x, "NextDown(NextUp(%v)) = %v", x, fpmath.NextDown(up))
}
