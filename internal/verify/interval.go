package verify

import (
	"context"
	"math"
	"math/big"
	"math/rand"

	"github.com/ajroetker/go-fpcore/fpc"
	"github.com/ajroetker/go-fpcore/fpc/contrib/interval"
	"github.com/ajroetker/go-fpcore/fpc/contrib/workerpool"
)

// exactPrec holds any sum or product of two binary64 values exactly.
const exactPrec = 4200

func exactOf[T fpc.Floats](x T) *big.Float {
	return new(big.Float).SetPrec(exactPrec).SetFloat64(float64(x))
}

func encloses[T fpc.Floats](i interval.Interval[T], v *big.Float) bool {
	lo, hi := float64(i.LowerBound()), float64(i.UpperBound())
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return false
	}
	return (math.IsInf(lo, -1) || exactOf(lo).Cmp(v) <= 0) &&
		(math.IsInf(hi, 1) || v.Cmp(exactOf(hi)) <= 0)
}

// checkInterval evaluates interval arithmetic on random operands and checks
// that every result encloses the exact result for members of the operands.
func checkInterval(ctx context.Context, pool *workerpool.Pool, cfg Config, rec *recorder) error {
	b := &batch{rec: rec}
	exactExamples[float32](b)
	exactExamples[float64](b)
	b.flush()

	if cfg.Width == 32 {
		return sample(ctx, pool, cfg, rec, intervalSample[float32])
	}
	return sample(ctx, pool, cfg, rec, intervalSample[float64])
}

// exactExamples checks that exactly representable results stay exact.
func exactExamples[T fpc.Floats](b *batch) {
	x, y := interval.New[T](1, 2), interval.New[T](3, 4)
	b.check(x.Add(y).Equal(interval.New[T](4, 6)), "[1,2]+[3,4] = %v", x.Add(y))
	b.check(x.Mul(y).Equal(interval.New[T](3, 8)), "[1,2]*[3,4] = %v", x.Mul(y))
}

func randomOperand[T fpc.Floats](rng *rand.Rand) interval.Interval[T] {
	scale := math.Ldexp(1, rng.Intn(60)-30)
	a := T(rng.NormFloat64() * scale)
	if rng.Intn(5) == 0 {
		return interval.Point(a)
	}
	return interval.New(a, a+T(math.Abs(rng.NormFloat64())*scale*math.Ldexp(1, -rng.Intn(30))))
}

func membersOf[T fpc.Floats](rng *rand.Rand, i interval.Interval[T]) [3]T {
	mid := i.LowerBound() + T(rng.Float64())*i.Width()
	return [3]T{i.LowerBound(), i.UpperBound(), min(max(mid, i.LowerBound()), i.UpperBound())}
}

func intervalSample[T fpc.Floats](b *batch, rng *rand.Rand) {
	x, y := randomOperand[T](rng), randomOperand[T](rng)
	sum, diff, prod, quot := x.Add(y), x.Sub(y), x.Mul(y), x.Div(y)
	sqr, root := interval.Sqr(x), interval.Sqrt(interval.Abs(x))

	for _, r := range [...]interval.Interval[T]{sum, diff, prod, quot, sqr, root} {
		b.check(r.Width() >= 0, "negative width %v", r)
	}

	for _, u := range membersOf(rng, x) {
		eu := exactOf(u)
		b.check(encloses(sqr, new(big.Float).SetPrec(exactPrec).Mul(eu, eu)), "Sqr(%v) = %v misses %v^2", x, sqr, u)
		au := exactOf(T(math.Abs(float64(u))))
		b.check(encloses(root, new(big.Float).SetPrec(exactPrec).Sqrt(au)), "Sqrt(|%v|) = %v misses sqrt(|%v|)", x, root, u)

		for _, v := range membersOf(rng, y) {
			ev := exactOf(v)
			b.check(encloses(sum, new(big.Float).SetPrec(exactPrec).Add(eu, ev)), "%v + %v = %v misses %v + %v", x, y, sum, u, v)
			b.check(encloses(diff, new(big.Float).SetPrec(exactPrec).Sub(eu, ev)), "%v - %v = %v misses %v - %v", x, y, diff, u, v)
			b.check(encloses(prod, new(big.Float).SetPrec(exactPrec).Mul(eu, ev)), "%v * %v = %v misses %v * %v", x, y, prod, u, v)
			if v != 0 {
				b.check(encloses(quot, new(big.Float).SetPrec(exactPrec).Quo(eu, ev)), "%v / %v = %v misses %v / %v", x, y, quot, u, v)
			}
		}
	}
}
