package math

import "github.com/ajroetker/go-fpcore/fpc"

// roundingError records where a rounded result lies relative to the exact
// result of the operation that produced it.
type roundingError int

const (
	errExact   roundingError = iota // rounded == exact
	errBelow                        // rounded < exact
	errAbove                        // rounded > exact
	errUnknown                      // residual could not be computed exactly
)

func errFromResidual[T fpc.Floats](r T) roundingError {
	switch {
	case r > 0:
		return errBelow
	case r < 0:
		return errAbove
	case r == 0:
		return errExact
	}
	return errUnknown
}

func adjustUp[T fpc.Floats](v T, e roundingError) T {
	if e == errBelow || e == errUnknown {
		return NextUp(v)
	}
	return v
}

func adjustDown[T fpc.Floats](v T, e roundingError) T {
	if e == errAbove || e == errUnknown {
		return NextDown(v)
	}
	return v
}

// residualFloor is the smallest magnitude for which the error terms of a
// product (or of a quotient and root via their products) are representable:
// 2^(MinExponent + FractionWidth + 1), with a further factor of two of margin
// for quotients and roots where the product only approximates the operand.
func residualFloor[T fpc.Floats]() T {
	if fpc.Is32[T]() {
		return 0x1p-102
	}
	return 0x1p-969
}

func addError[T fpc.Floats](a, b T) (T, roundingError) {
	s := a + b
	if !IsFinite(s) {
		if IsFinite(a) && IsFinite(b) {
			return s, errUnknown // overflow
		}
		return s, errExact
	}
	return s, errFromResidual(TwoSum(a, b).Err)
}

func mulError[T fpc.Floats](a, b T) (T, roundingError) {
	p := T(a * b)
	switch {
	case !IsFinite(a) || !IsFinite(b):
		return p, errExact
	case a == 0 || b == 0:
		return p, errExact
	case !IsFinite(p) || Abs(p) < residualFloor[T]():
		return p, errUnknown
	}
	return p, errFromResidual(fused(a, b, -p))
}

func divError[T fpc.Floats](a, b T) (T, roundingError) {
	q := a / b
	switch {
	case !IsFinite(a) || !IsFinite(b) || a == 0 || b == 0:
		return q, errExact
	case !IsFinite(q) || q == 0 || Abs(a) < 2*residualFloor[T]():
		return q, errUnknown
	}
	// a - q*b carries the sign of b times (a/b - q).
	r := fused(-q, b, a)
	if b < 0 {
		r = -r
	}
	return q, errFromResidual(r)
}

func sqrtError[T fpc.Floats](a T) (T, roundingError) {
	s := Sqrt(a)
	switch {
	case a <= 0 || !IsFinite(a):
		return s, errExact
	case a < 2*residualFloor[T]():
		return s, errUnknown
	}
	return s, errFromResidual(fused(-s, s, a))
}

// AddAdjustUp returns a value >= a + b, equal to it when the sum is exact.
func AddAdjustUp[T fpc.Floats](a, b T) T {
	v, e := addError(a, b)
	return adjustUp(v, e)
}

// AddAdjustDown returns a value <= a + b, equal to it when the sum is exact.
func AddAdjustDown[T fpc.Floats](a, b T) T {
	v, e := addError(a, b)
	return adjustDown(v, e)
}

// SubAdjustUp returns a value >= a - b.
func SubAdjustUp[T fpc.Floats](a, b T) T {
	v, e := addError(a, -b)
	return adjustUp(v, e)
}

// SubAdjustDown returns a value <= a - b.
func SubAdjustDown[T fpc.Floats](a, b T) T {
	v, e := addError(a, -b)
	return adjustDown(v, e)
}

// MulAdjustUp returns a value >= a * b.
func MulAdjustUp[T fpc.Floats](a, b T) T {
	v, e := mulError(a, b)
	return adjustUp(v, e)
}

// MulAdjustDown returns a value <= a * b.
func MulAdjustDown[T fpc.Floats](a, b T) T {
	v, e := mulError(a, b)
	return adjustDown(v, e)
}

// DivAdjustUp returns a value >= a / b.
func DivAdjustUp[T fpc.Floats](a, b T) T {
	v, e := divError(a, b)
	return adjustUp(v, e)
}

// DivAdjustDown returns a value <= a / b.
func DivAdjustDown[T fpc.Floats](a, b T) T {
	v, e := divError(a, b)
	return adjustDown(v, e)
}

// SqrtAdjustUp returns a value >= sqrt(a).
func SqrtAdjustUp[T fpc.Floats](a T) T {
	v, e := sqrtError(a)
	return adjustUp(v, e)
}

// SqrtAdjustDown returns a value <= sqrt(a), never below zero. Negative and
// NaN inputs give 0.
func SqrtAdjustDown[T fpc.Floats](a T) T {
	v, e := sqrtError(a)
	if IsNaN(v) {
		return 0
	}
	return Max(0, adjustDown(v, e))
}

// FMAAdjustUp returns a value >= a*b + c. It always steps one ulp above the
// fused result.
func FMAAdjustUp[T fpc.Floats](a, b, c T) T {
	return NextUp(fused(a, b, c))
}

// FMAAdjustDown returns a value <= a*b + c.
func FMAAdjustDown[T fpc.Floats](a, b, c T) T {
	return NextDown(fused(a, b, c))
}
