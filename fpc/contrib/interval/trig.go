package interval

import (
	"github.com/ajroetker/go-fpcore/fpc"
	fpmath "github.com/ajroetker/go-fpcore/fpc/contrib/math"
)

// ACos returns the arccosine of i, with i clamped to [-1, 1].
func ACos[T fpc.Floats](i Interval[T]) Interval[T] {
	low := fpmath.ACos(min(1, i.high))
	high := fpmath.ACos(max(-1, i.low))
	return Interval[T]{low: max(0, fpmath.NextDown(low)), high: fpmath.NextUp(high)}
}

// inTrigDomain reports whether i lies within [0, 2π].
func inTrigDomain[T fpc.Floats](i Interval[T]) bool {
	return i.low >= 0 && i.high <= T(2*fpmath.Pi)
}

// outward sorts the endpoint values and widens them by one ulp, clamped to
// [-1, 1].
func outward[T fpc.Floats](a, b T) (low, high T) {
	if a > b {
		a, b = b, a
	}
	return max(-1, fpmath.NextDown(a)), min(1, fpmath.NextUp(b))
}

// Sin returns the sine of i. Intervals outside [0, 2π] give [-1, 1].
func Sin[T fpc.Floats](i Interval[T]) Interval[T] {
	if !inTrigDomain(i) {
		return Interval[T]{low: -1, high: 1}
	}
	low, high := outward(fpmath.Sin(i.low), fpmath.Sin(i.high))
	if i.Contains(fpmath.PiOver2) {
		high = 1
	}
	if i.Contains(3 * fpmath.PiOver2) {
		low = -1
	}
	return Interval[T]{low: low, high: high}
}

// Cos returns the cosine of i. Intervals outside [0, 2π] give [-1, 1].
func Cos[T fpc.Floats](i Interval[T]) Interval[T] {
	if !inTrigDomain(i) {
		return Interval[T]{low: -1, high: 1}
	}
	low, high := outward(fpmath.Cos(i.low), fpmath.Cos(i.high))
	if i.Contains(fpmath.Pi) {
		low = -1
	}
	return Interval[T]{low: low, high: high}
}

// SinCos returns Sin(i) and Cos(i).
func SinCos[T fpc.Floats](i Interval[T]) (sin, cos Interval[T]) {
	return Sin(i), Cos(i)
}
