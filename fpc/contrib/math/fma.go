package math

import (
	stdmath "math"

	"github.com/ajroetker/go-fpcore/fpc"
)

// FMA returns a*b + c.
//
// On the hardware path the result is rounded once. On the software path the
// product is rounded before the addition, so the result may differ from the
// fused value by up to one ulp.
func FMA[T fpc.Floats](a, b, c T) T {
	if fpc.UseSoftware() {
		// The conversion forces the product to be rounded; Go may otherwise
		// fuse the expression on some architectures.
		return T(a*b) + c
	}
	return fused(a, b, c)
}

// fused returns a*b + c rounded once, independent of the evaluation path.
func fused[T fpc.Floats](a, b, c T) T {
	if fpc.Is32[T]() {
		return T(fused32(float32(a), float32(b), float32(c)))
	}
	return T(stdmath.FMA(float64(a), float64(b), float64(c)))
}

// fused32 computes the float32 FMA in binary64. The product of two float32
// values is exact in binary64; the sum is rounded to odd so the final
// conversion to float32 rounds correctly.
func fused32(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	s := p + float64(c)
	if stdmath.IsInf(s, 0) || stdmath.IsNaN(s) {
		return float32(s)
	}
	// TwoSum residual of p + c.
	bb := s - p
	err := (p - (s - bb)) + (float64(c) - bb)
	if err != 0 && stdmath.Float64bits(s)&1 == 0 {
		if err > 0 {
			s = stdmath.Nextafter(s, stdmath.Inf(1))
		} else {
			s = stdmath.Nextafter(s, stdmath.Inf(-1))
		}
	}
	return float32(s)
}
