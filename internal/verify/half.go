package verify

import (
	"context"
	"math"
	"math/big"

	"github.com/ajroetker/go-fpcore/fpc"
	"github.com/ajroetker/go-fpcore/fpc/contrib/workerpool"
)

const (
	halfMaxValue  = 65504
	halfMinNormal = 0x1p-14
)

// referenceHalf rounds x to the nearest binary16 value, ties to even, using
// math/big for normal results and a fixed 2^-24 quantum below them.
func referenceHalf(x float64) float64 {
	a := math.Abs(x)
	if a < halfMinNormal {
		return math.Copysign(math.RoundToEven(a*0x1p24)*0x1p-24, x)
	}
	r, _ := new(big.Float).SetPrec(11).SetMode(big.ToNearestEven).SetFloat64(x).Float64()
	if math.Abs(r) > halfMaxValue {
		return math.Copysign(math.Inf(1), x)
	}
	return r
}

// checkHalf checks that every Half survives a trip through float32 and that
// conversions to Half are correctly rounded.
func checkHalf(ctx context.Context, pool *workerpool.Pool, cfg Config, rec *recorder) error {
	b := &batch{rec: rec}
	for i := range 1 << 16 {
		h := fpc.HalfFromBits(uint16(i))
		back := fpc.NewHalf(h.Float32())
		b.check(back == h || (h.IsNaN() && back.IsNaN()), "Half 0x%04X round trip gave 0x%04X", i, back)
	}
	b.flush()

	return sweepValues(ctx, pool, cfg, rec,
		func(b *batch, x float32) { halfValue(b, float64(x), fpc.NewHalf(x)) },
		func(b *batch, x float64) { halfValue(b, x, fpc.HalfFromFloat64(x)) })
}

func halfValue(b *batch, x float64, h fpc.Half) {
	if math.IsNaN(x) {
		b.check(h.IsNaN(), "Half(NaN) = 0x%04X", h.Bits())
		return
	}
	want := referenceHalf(x)
	got := h.Float64()
	b.check(math.Float64bits(got) == math.Float64bits(want), "Half(%v) = %v, want %v", x, got, want)
}
