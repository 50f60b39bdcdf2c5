package interval

import (
	"github.com/ajroetker/go-fpcore/fpc"
	fpmath "github.com/ajroetker/go-fpcore/fpc/contrib/math"
)

// Endpoint products treat 0 * ±Inf as 0: the infinite endpoint stands for
// arbitrarily large finite members, all of which give 0.
func mulDown[T fpc.Floats](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return fpmath.MulAdjustDown(a, b)
}

func mulUp[T fpc.Floats](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return fpmath.MulAdjustUp(a, b)
}

// Neg returns -i.
func (i Interval[T]) Neg() Interval[T] {
	return Interval[T]{low: -i.high, high: -i.low}
}

// Add returns i + o.
func (i Interval[T]) Add(o Interval[T]) Interval[T] {
	return Interval[T]{
		low:  fpmath.AddAdjustDown(i.low, o.low),
		high: fpmath.AddAdjustUp(i.high, o.high),
	}
}

// Sub returns i - o.
func (i Interval[T]) Sub(o Interval[T]) Interval[T] {
	return Interval[T]{
		low:  fpmath.SubAdjustDown(i.low, o.high),
		high: fpmath.SubAdjustUp(i.high, o.low),
	}
}

// Mul returns i * o, the hull of the four endpoint products.
func (i Interval[T]) Mul(o Interval[T]) Interval[T] {
	return Interval[T]{
		low: minOf(
			mulDown(i.low, o.low), mulDown(i.high, o.low),
			mulDown(i.low, o.high), mulDown(i.high, o.high)),
		high: maxOf(
			mulUp(i.low, o.low), mulUp(i.high, o.low),
			mulUp(i.low, o.high), mulUp(i.high, o.high)),
	}
}

// Div returns i / o. If o contains zero the result is [-Inf, +Inf].
func (i Interval[T]) Div(o Interval[T]) Interval[T] {
	if o.Contains(0) {
		return Unbounded[T]()
	}
	return Interval[T]{
		low: minOf(
			fpmath.DivAdjustDown(i.low, o.low), fpmath.DivAdjustDown(i.high, o.low),
			fpmath.DivAdjustDown(i.low, o.high), fpmath.DivAdjustDown(i.high, o.high)),
		high: maxOf(
			fpmath.DivAdjustUp(i.low, o.low), fpmath.DivAdjustUp(i.high, o.low),
			fpmath.DivAdjustUp(i.low, o.high), fpmath.DivAdjustUp(i.high, o.high)),
	}
}

// AddScalar returns i + f.
func (i Interval[T]) AddScalar(f T) Interval[T] {
	return i.Add(Point(f))
}

// SubScalar returns i - f.
func (i Interval[T]) SubScalar(f T) Interval[T] {
	return i.Sub(Point(f))
}

// MulScalar returns i * f.
func (i Interval[T]) MulScalar(f T) Interval[T] {
	if f > 0 {
		return Interval[T]{low: mulDown(f, i.low), high: mulUp(f, i.high)}
	}
	return Interval[T]{low: mulDown(f, i.high), high: mulUp(f, i.low)}
}

// DivScalar returns i / f. Division by zero gives [-Inf, +Inf].
func (i Interval[T]) DivScalar(f T) Interval[T] {
	switch {
	case f == 0:
		return Unbounded[T]()
	case f > 0:
		return Interval[T]{low: fpmath.DivAdjustDown(i.low, f), high: fpmath.DivAdjustUp(i.high, f)}
	}
	return Interval[T]{low: fpmath.DivAdjustDown(i.high, f), high: fpmath.DivAdjustUp(i.low, f)}
}

// MulPow2 scales i by s, which should be a power of two (possibly negative).
// The scaling is exact while the endpoints stay in the normal range; other
// factors, and endpoints that would overflow or lose bits, are rounded
// outward like MulScalar.
func (i Interval[T]) MulPow2(s T) Interval[T] {
	if !fpmath.IsPowerOf2(fpmath.Abs(s)) {
		return i.MulScalar(s)
	}
	a, b := i.low*s, i.high*s
	if !exactScale(i.low, a) || !exactScale(i.high, b) {
		return i.MulScalar(s)
	}
	return Interval[T]{low: min(a, b), high: max(a, b)}
}

// exactScale reports whether v = x * 2^k is exact.
func exactScale[T fpc.Floats](x, v T) bool {
	if x == 0 || fpmath.IsInf(x) {
		return true
	}
	return fpmath.IsFinite(v) && fpmath.Abs(v) >= fpc.MinNormal[T]()
}
