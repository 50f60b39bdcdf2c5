package interval

import (
	"github.com/ajroetker/go-fpcore/fpc"
	fpmath "github.com/ajroetker/go-fpcore/fpc/contrib/math"
)

// Sqr returns i*i. Unlike i.Mul(i) it never goes below zero.
func Sqr[T fpc.Floats](i Interval[T]) Interval[T] {
	alow, ahigh := fpmath.Abs(i.low), fpmath.Abs(i.high)
	if alow > ahigh {
		alow, ahigh = ahigh, alow
	}
	if i.Contains(0) {
		return Interval[T]{low: 0, high: mulUp(ahigh, ahigh)}
	}
	return Interval[T]{low: mulDown(alow, alow), high: mulUp(ahigh, ahigh)}
}

// Sqrt returns the square root of i. The negative part of i is clamped to
// zero as SafeSqrt does, so an interval entirely below zero gives [0, 0].
func Sqrt[T fpc.Floats](i Interval[T]) Interval[T] {
	return Interval[T]{
		low:  fpmath.SqrtAdjustDown(max(0, i.low)),
		high: fpmath.SqrtAdjustUp(max(0, i.high)),
	}
}

// Abs returns |i|.
func Abs[T fpc.Floats](i Interval[T]) Interval[T] {
	switch {
	case i.low >= 0:
		return i
	case i.high <= 0:
		return i.Neg()
	}
	return Interval[T]{low: 0, high: max(-i.low, i.high)}
}

// Floor applies Floor to both endpoints.
func Floor[T fpc.Floats](i Interval[T]) Interval[T] {
	return Interval[T]{low: fpmath.Floor(i.low), high: fpmath.Floor(i.high)}
}

// Ceil applies Ceil to both endpoints.
func Ceil[T fpc.Floats](i Interval[T]) Interval[T] {
	return Interval[T]{low: fpmath.Ceil(i.low), high: fpmath.Ceil(i.high)}
}

// Min returns the interval of min(x, y) for x in a and y in b.
func Min[T fpc.Floats](a, b Interval[T]) Interval[T] {
	return Interval[T]{low: min(a.low, b.low), high: min(a.high, b.high)}
}

// Max returns the interval of max(x, y) for x in a and y in b.
func Max[T fpc.Floats](a, b Interval[T]) Interval[T] {
	return Interval[T]{low: max(a.low, b.low), high: max(a.high, b.high)}
}

// FMA returns a*b + c.
func FMA[T fpc.Floats](a, b, c Interval[T]) Interval[T] {
	return Interval[T]{
		low: minOf(
			fpmath.FMAAdjustDown(a.low, b.low, c.low),
			fpmath.FMAAdjustDown(a.high, b.low, c.low),
			fpmath.FMAAdjustDown(a.low, b.high, c.low),
			fpmath.FMAAdjustDown(a.high, b.high, c.low)),
		high: maxOf(
			fpmath.FMAAdjustUp(a.low, b.low, c.high),
			fpmath.FMAAdjustUp(a.high, b.low, c.high),
			fpmath.FMAAdjustUp(a.low, b.high, c.high),
			fpmath.FMAAdjustUp(a.high, b.high, c.high)),
	}
}

// extremeCorners returns the corner indices of the smallest and largest
// endpoint products of a and b. Corner k uses a.Bound(k&1) and b.Bound(k>>1).
func extremeCorners[T fpc.Floats](a, b Interval[T]) (lowIdx, highIdx int) {
	var p [4]T
	for k := range p {
		p[k] = a.Bound(k&1) * b.Bound(k>>1)
	}
	for k := 1; k < 4; k++ {
		if p[k] < p[lowIdx] || fpmath.IsNaN(p[lowIdx]) {
			lowIdx = k
		}
		if p[k] > p[highIdx] || fpmath.IsNaN(p[highIdx]) {
			highIdx = k
		}
	}
	return lowIdx, highIdx
}

// DifferenceOfProducts returns a*b - c*d. Each bound is evaluated at the
// extremal corners with the compensated scalar algorithm and then widened by
// two ulps, which keeps far tighter bounds than a.Mul(b).Sub(c.Mul(d)) when
// the products nearly cancel.
func DifferenceOfProducts[T fpc.Floats](a, b, c, d Interval[T]) Interval[T] {
	abLow, abHigh := extremeCorners(a, b)
	cdLow, cdHigh := extremeCorners(c, d)

	// The smallest difference pairs the smallest ab with the largest cd.
	low := fpmath.DifferenceOfProducts(
		a.Bound(abLow&1), b.Bound(abLow>>1), c.Bound(cdHigh&1), d.Bound(cdHigh>>1))
	high := fpmath.DifferenceOfProducts(
		a.Bound(abHigh&1), b.Bound(abHigh>>1), c.Bound(cdLow&1), d.Bound(cdLow>>1))
	return New(
		fpmath.NextDown(fpmath.NextDown(low)),
		fpmath.NextUp(fpmath.NextUp(high)))
}

// SumOfProducts returns a*b + c*d.
func SumOfProducts[T fpc.Floats](a, b, c, d Interval[T]) Interval[T] {
	return DifferenceOfProducts(a, b, c.Neg(), d)
}
