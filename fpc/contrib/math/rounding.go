package math

import (
	stdmath "math"

	"github.com/chewxy/math32"

	"github.com/ajroetker/go-fpcore/fpc"
)

// Trunc rounds x toward zero.
func Trunc[T fpc.Floats](x T) T {
	if fpc.UseSoftware() {
		return fpc.NewFloatingPoint(x).Trunc().Value()
	}
	if fpc.Is32[T]() {
		return T(math32.Trunc(float32(x)))
	}
	return T(stdmath.Trunc(float64(x)))
}

// Floor rounds x toward negative infinity.
func Floor[T fpc.Floats](x T) T {
	if fpc.UseSoftware() {
		return fpc.NewFloatingPoint(x).Floor().Value()
	}
	if fpc.Is32[T]() {
		return T(math32.Floor(float32(x)))
	}
	return T(stdmath.Floor(float64(x)))
}

// Ceil rounds x toward positive infinity.
func Ceil[T fpc.Floats](x T) T {
	if fpc.UseSoftware() {
		return fpc.NewFloatingPoint(x).Ceil().Value()
	}
	if fpc.Is32[T]() {
		return T(math32.Ceil(float32(x)))
	}
	return T(stdmath.Ceil(float64(x)))
}

// Round rounds x to the nearest integer, ties to even, except that ±0.5
// rounds to ±1 like every other magnitude in [0.5, 1). See
// fpc.FloatingPoint.Round.
func Round[T fpc.Floats](x T) T {
	if fpc.UseSoftware() {
		return fpc.NewFloatingPoint(x).Round().Value()
	}
	// Every float32 converts to float64 and back exactly, and RoundToEven
	// of a float32 value is again a float32 value.
	r := stdmath.RoundToEven(float64(x))
	if stdmath.Abs(float64(x)) == 0.5 {
		r = stdmath.Copysign(1, float64(x))
	}
	return T(r)
}

// ModF returns the integral and fractional parts of x, both with the sign
// of x.
func ModF[T fpc.Floats](x T) (integral, fractional T) {
	if fpc.UseSoftware() {
		return fpc.NewFloatingPoint(x).ModF()
	}
	if IsInf(x) {
		return x, CopySign(0, x)
	}
	i, f := stdmath.Modf(float64(x))
	return T(i), T(f)
}
