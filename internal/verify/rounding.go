package verify

import (
	"context"
	"math"

	"github.com/ajroetker/go-fpcore/fpc"
	fpmath "github.com/ajroetker/go-fpcore/fpc/contrib/math"
	"github.com/ajroetker/go-fpcore/fpc/contrib/workerpool"
)

func sameBits[T fpc.Floats](a, b T) bool {
	return fpc.ToBits(a) == fpc.ToBits(b)
}

// roundHalfAway is the hardware definition of Round: ties to even, except
// that ±0.5 goes to ±1.
func roundHalfAway(x float64) float64 {
	if math.Abs(x) == 0.5 {
		return math.Copysign(1, x)
	}
	return math.RoundToEven(x)
}

// checkRounding compares the bit-level Trunc, Floor, Ceil and Round with the
// standard library and checks that Trunc and Round are idempotent.
func checkRounding(ctx context.Context, pool *workerpool.Pool, cfg Config, rec *recorder) error {
	b := &batch{rec: rec}
	b.check(fpc.NewFloatingPoint(float32(1.5)).Round().Value() == 2, "Round(float32(1.5)) != 2")
	b.flush()
	return sweepValues(ctx, pool, cfg, rec, roundingValue[float32], roundingValue[float64])
}

func roundingValue[T fpc.Floats](b *batch, x T) {
	if fpmath.IsNaN(x) {
		return
	}
	f := fpc.NewFloatingPoint(x)
	x64 := float64(x)
	ops := [...]struct {
		name       string
		soft, hard T
	}{
		{"Trunc", f.Trunc().Value(), T(math.Trunc(x64))},
		{"Floor", f.Floor().Value(), T(math.Floor(x64))},
		{"Ceil", f.Ceil().Value(), T(math.Ceil(x64))},
		{"Round", f.Round().Value(), T(roundHalfAway(x64))},
	}
	for _, op := range ops {
		b.check(sameBits(op.soft, op.hard), "%s(%v): bit-level %v, math %v", op.name, x, op.soft, op.hard)
	}

	tr := ops[0].soft
	b.check(sameBits(fpc.NewFloatingPoint(tr).Trunc().Value(), tr), "Trunc not idempotent at %v", x)
	r := ops[3].soft
	b.check(sameBits(fpc.NewFloatingPoint(r).Round().Value(), r), "Round not idempotent at %v", x)
	b.check(sameBits(fpmath.Round(x), r), "math.Round(%v) = %v on path %v, want %v", x, fpmath.Round(x), fpc.CurrentPath(), r)
}
