package math

import (
	"math/bits"

	"github.com/ajroetker/go-fpcore/fpc"
)

// IsNaN reports whether x is a NaN.
func IsNaN[T fpc.Floats](x T) bool {
	return fpc.NewFloatingPoint(x).IsNaN()
}

// IsInf reports whether x is an infinity of either sign.
func IsInf[T fpc.Floats](x T) bool {
	return fpc.NewFloatingPoint(x).IsInf()
}

// IsFinite reports whether x is neither infinite nor NaN.
func IsFinite[T fpc.Floats](x T) bool {
	return !fpc.NewFloatingPoint(x).IsInfOrNaN()
}

// SignBit reports whether the sign bit of x is set.
func SignBit[T fpc.Floats](x T) bool {
	return fpc.NewFloatingPoint(x).Sign()
}

// Abs returns |x|. The sign bit is cleared even for NaN.
func Abs[T fpc.Floats](x T) T {
	return fpc.NewFloatingPoint(x).Abs().Value()
}

// CopySign returns a value with the magnitude of mag and the sign bit of
// sign. Neither argument is inspected for NaN.
func CopySign[T fpc.Floats](mag, sign T) T {
	if SignBit(mag) != SignBit(sign) {
		return fpc.NewFloatingPoint(mag).Negate().Value()
	}
	return mag
}

// Min returns the smaller of a and b, or b if either is NaN.
func Min[T fpc.Floats](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b, or b if either is NaN.
func Max[T fpc.Floats](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to [low, high].
func Clamp[T fpc.Floats](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// Lerp interpolates linearly: (1-t)*a + t*b.
func Lerp[T fpc.Floats](t, a, b T) T {
	return (1-t)*a + t*b
}

// Sqr returns v*v.
func Sqr[T fpc.Floats](v T) T {
	return v * v
}

// Radians converts degrees to radians.
func Radians[T fpc.Floats](deg T) T {
	return (Pi / 180) * deg
}

// Degrees converts radians to degrees.
func Degrees[T fpc.Floats](rad T) T {
	return (180 / Pi) * rad
}

// SmoothStep is the cubic Hermite step from a to b, 0 below a and 1 above b.
func SmoothStep[T fpc.Floats](x, a, b T) T {
	if a == b {
		if x < a {
			return 0
		}
		return 1
	}
	t := Clamp((x-a)/(b-a), 0, 1)
	return t * t * (3 - 2*t)
}

// Exponent returns the unbiased exponent field of v.
func Exponent[T fpc.Floats](v T) int {
	return fpc.NewFloatingPoint(v).Exponent()
}

// Significand returns the fraction field of v without the implicit one.
func Significand[T fpc.Floats](v T) uint64 {
	return fpc.NewFloatingPoint(v).Fraction()
}

// IsPowerOf2 reports whether v is a positive power of two, subnormals
// included.
func IsPowerOf2[T fpc.Floats](v T) bool {
	f := fpc.NewFloatingPoint(v)
	if f.Sign() || f.IsZero() || f.IsInfOrNaN() {
		return false
	}
	if f.IsSubnormal() {
		return bits.OnesCount64(f.Fraction()) == 1
	}
	return f.Fraction() == 0
}

// Log2Int returns floor(log2(v)) for positive finite v and 0 otherwise.
func Log2Int[T fpc.Floats](v T) int {
	n, ok := fpc.Normalize(v)
	if !ok || n.Sign() {
		return 0
	}
	return n.Exponent()
}

// RoundUpPow2 returns the smallest power of two >= v for positive finite v.
func RoundUpPow2[T fpc.Floats](v T) T {
	if v <= 0 || !IsFinite(v) {
		return v
	}
	if IsPowerOf2(v) {
		return v
	}
	n, _ := fpc.Normalize(v)
	return Ldexp(T(1), n.Exponent()+1)
}
