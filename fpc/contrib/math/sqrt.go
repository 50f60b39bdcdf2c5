package math

import (
	stdmath "math"

	"github.com/chewxy/math32"

	"github.com/ajroetker/go-fpcore/fpc"
)

// Sqrt returns the correctly rounded square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt[T fpc.Floats](x T) T {
	if fpc.UseSoftware() {
		if fpc.Is32[T]() {
			// binary64 carries more than 2*24+2 bits, so rounding the
			// binary64 root to binary32 is still correctly rounded.
			return T(float32(sqrtSoft(float64(x))))
		}
		return T(sqrtSoft(float64(x)))
	}
	if fpc.Is32[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(stdmath.Sqrt(float64(x)))
}

// sqrtSoft computes the square root one bit at a time using only integer
// arithmetic. The method is the classic restoring square root: with the
// significand scaled to [1, 4), each step tries to append a one bit to the
// partial root q and keeps it when (q+bit)^2 does not exceed the remainder.
func sqrtSoft(x float64) float64 {
	f := fpc.NewFloatingPoint(x)
	switch {
	case f.IsZero() || f.IsNaN() || (f.IsInf() && !f.Sign()):
		return x
	case f.Sign():
		return stdmath.NaN()
	}

	n, _ := fpc.Normalize(x)
	ix := n.Fraction()
	exp := n.Exponent()
	if exp&1 == 1 { // odd exponent, double the significand to make it even
		ix <<= 1
	}
	exp >>= 1 // exponent of the root

	ix <<= 1
	var q, s uint64                                  // q = sqrt(x)
	r := uint64(1) << (fpc.Float64FractionWidth + 1) // moving bit from MSB to LSB
	for r != 0 {
		t := s + r
		if t <= ix {
			s = t + r
			ix -= t
			q += r
		}
		ix <<= 1
		r >>= 1
	}
	// The loop produced one guard bit. A non-zero remainder means the
	// result is inexact and can never be a tie, so the guard bit decides.
	if ix != 0 {
		q += q & 1
	}
	return fpc.NewNormalizedFloat[float64](false, exp, q>>1).Float()
}

// Ldexp returns frac * 2^exp, rounding once when the result is subnormal.
func Ldexp[T fpc.Floats](frac T, exp int) T {
	if fpc.UseSoftware() {
		n, ok := fpc.Normalize(frac)
		if !ok {
			return frac
		}
		return n.MulPow2(exp).Float()
	}
	// A float32 scaled in binary64 stays exact until the final conversion.
	return T(stdmath.Ldexp(float64(frac), exp))
}

// Frexp breaks x into a fraction in [0.5, 1) and a power of two.
// Zeros, infinities and NaN return (x, 0).
func Frexp[T fpc.Floats](x T) (frac T, exp int) {
	if fpc.UseSoftware() {
		n, ok := fpc.Normalize(x)
		if !ok {
			return x, 0
		}
		return fpc.NewNormalizedFloat[T](n.Sign(), -1, n.Fraction()).Float(), n.Exponent() + 1
	}
	f, e := stdmath.Frexp(float64(x))
	return T(f), e
}
