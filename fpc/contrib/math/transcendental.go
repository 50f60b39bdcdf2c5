package math

import (
	stdmath "math"

	"github.com/ajroetker/go-fpcore/fpc"
)

// Transcendental functions do not depend on the evaluation path. Both widths
// go through the standard library; float32 arguments are widened to binary64
// and the result is rounded once.

// Exp returns e^x.
func Exp[T fpc.Floats](x T) T {
	return T(stdmath.Exp(float64(x)))
}

// Exp2 returns 2^x.
func Exp2[T fpc.Floats](x T) T {
	return T(stdmath.Exp2(float64(x)))
}

// Log returns the natural logarithm of x.
func Log[T fpc.Floats](x T) T {
	return T(stdmath.Log(float64(x)))
}

// Log2 returns the binary logarithm of x.
func Log2[T fpc.Floats](x T) T {
	return T(stdmath.Log2(float64(x)))
}

// Pow returns x^y.
func Pow[T fpc.Floats](x, y T) T {
	return T(stdmath.Pow(float64(x), float64(y)))
}

// Cbrt returns the cube root of x.
func Cbrt[T fpc.Floats](x T) T {
	return T(stdmath.Cbrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T fpc.Floats](x T) T {
	return T(stdmath.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T fpc.Floats](x T) T {
	return T(stdmath.Cos(float64(x)))
}

// SinCos returns Sin(x), Cos(x).
func SinCos[T fpc.Floats](x T) (sin, cos T) {
	s, c := stdmath.Sincos(float64(x))
	return T(s), T(c)
}

// Tan returns the tangent of the radian argument x.
func Tan[T fpc.Floats](x T) T {
	return T(stdmath.Tan(float64(x)))
}

// ASin returns the arcsine of x in radians. It is NaN outside [-1, 1].
func ASin[T fpc.Floats](x T) T {
	return T(stdmath.Asin(float64(x)))
}

// ACos returns the arccosine of x in radians. It is NaN outside [-1, 1].
func ACos[T fpc.Floats](x T) T {
	return T(stdmath.Acos(float64(x)))
}

// ATan returns the arctangent of x in radians.
func ATan[T fpc.Floats](x T) T {
	return T(stdmath.Atan(float64(x)))
}

// ATan2 returns the arctangent of y/x, using the signs of both to pick the
// quadrant.
func ATan2[T fpc.Floats](y, x T) T {
	return T(stdmath.Atan2(float64(y), float64(x)))
}

// SafeSqrt returns Sqrt(max(0, x)). Small negative values produced by
// rounding error yield 0 instead of NaN.
func SafeSqrt[T fpc.Floats](x T) T {
	return Sqrt(Max(0, x))
}

// SafeASin clamps x to [-1, 1] before taking the arcsine.
func SafeASin[T fpc.Floats](x T) T {
	return ASin(Clamp(x, -1, 1))
}

// SafeACos clamps x to [-1, 1] before taking the arccosine.
func SafeACos[T fpc.Floats](x T) T {
	return ACos(Clamp(x, -1, 1))
}
