// Copyright 2025 go-fpcore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fpc

import "fmt"

// FloatingPoint is a float32 or float64 viewed through its IEEE 754 fields.
//
// Format (binary32 shown, binary64 uses 11/52):
//
//	S | EEEEEEEE | FFFFFFFFFFFFFFFFFFFFFFF
//
// All methods work on the bit pattern only and never rely on the FPU for
// classification or rounding. FloatingPoint has the same size as T.
type FloatingPoint[T Floats] struct {
	value T
}

// NewFloatingPoint wraps v.
func NewFloatingPoint[T Floats](v T) FloatingPoint[T] {
	return FloatingPoint[T]{value: v}
}

// FloatingPointFromParts assembles a value from its fields. exponent is the
// unbiased exponent; exponent == -ExponentBias selects the subnormal/zero
// encoding. Bits of exponent and fraction outside their fields are dropped.
func FloatingPointFromParts[T Floats](negative bool, exponent int, fraction uint64) FloatingPoint[T] {
	l := layoutOf[T]()
	b := (uint64(exponent+l.bias)&l.expMask)<<l.fracWidth | fraction&l.fracMask
	if negative {
		b |= l.signMask
	}
	return fromBitsFP[T](b)
}

func fromBitsFP[T Floats](b uint64) FloatingPoint[T] {
	return FloatingPoint[T]{value: FromBits[T](b)}
}

// Value returns the wrapped value.
func (f FloatingPoint[T]) Value() T {
	return f.value
}

// Bits returns the raw bit pattern.
func (f FloatingPoint[T]) Bits() uint64 {
	return ToBits(f.value)
}

// Sign reports whether the sign bit is set.
func (f FloatingPoint[T]) Sign() bool {
	return f.Bits()&layoutOf[T]().signMask != 0
}

// IsNegative is an alias for Sign. It is true for -0 and negative NaNs.
func (f FloatingPoint[T]) IsNegative() bool {
	return f.Sign()
}

// BiasedExponent returns the raw exponent field.
func (f FloatingPoint[T]) BiasedExponent() uint64 {
	l := layoutOf[T]()
	return (f.Bits() >> l.fracWidth) & l.expMask
}

// Exponent returns the unbiased exponent, i.e. the exponent field minus the
// bias. Zero and subnormals report -ExponentBias.
func (f FloatingPoint[T]) Exponent() int {
	return int(f.BiasedExponent()) - layoutOf[T]().bias
}

// Fraction returns the fraction field without the implicit leading one.
func (f FloatingPoint[T]) Fraction() uint64 {
	return f.Bits() & layoutOf[T]().fracMask
}

// IsZero reports whether f is +0 or -0.
func (f FloatingPoint[T]) IsZero() bool {
	return f.Bits()&layoutOf[T]().absMask == 0
}

// IsInf reports whether f is an infinity of either sign.
func (f FloatingPoint[T]) IsInf() bool {
	return f.BiasedExponent() == layoutOf[T]().expMask && f.Fraction() == 0
}

// IsNaN reports whether f is a NaN.
func (f FloatingPoint[T]) IsNaN() bool {
	return f.BiasedExponent() == layoutOf[T]().expMask && f.Fraction() != 0
}

// IsInfOrNaN reports whether the exponent field is all ones.
func (f FloatingPoint[T]) IsInfOrNaN() bool {
	return f.BiasedExponent() == layoutOf[T]().expMask
}

// IsSubnormal reports whether f is a non-zero subnormal.
func (f FloatingPoint[T]) IsSubnormal() bool {
	return f.BiasedExponent() == 0 && f.Fraction() != 0
}

// IsSameValue reports whether f and o have identical bit patterns. +0 and -0
// differ; a NaN is the same value as a NaN with the same payload.
func (f FloatingPoint[T]) IsSameValue(o FloatingPoint[T]) bool {
	return f.Bits() == o.Bits()
}

// Equal follows the == operator: +0 equals -0 and NaN equals nothing.
func (f FloatingPoint[T]) Equal(o FloatingPoint[T]) bool {
	if f.IsNaN() || o.IsNaN() {
		return false
	}
	if f.IsZero() && o.IsZero() {
		return true
	}
	return f.Bits() == o.Bits()
}

// Negate flips the sign bit.
func (f FloatingPoint[T]) Negate() FloatingPoint[T] {
	return fromBitsFP[T](f.Bits() ^ layoutOf[T]().signMask)
}

// Abs clears the sign bit.
func (f FloatingPoint[T]) Abs() FloatingPoint[T] {
	return fromBitsFP[T](f.Bits() &^ layoutOf[T]().signMask)
}

// fractionalMask returns the mask of the fraction bits below the binary point
// for an exponent in [0, FractionWidth).
func (l *layout) fractionalMask(e int) uint64 {
	return uint64(1)<<(l.fracWidth-uint(e)) - 1
}

// one returns the bit pattern of 1.0.
func (l *layout) one() uint64 {
	return uint64(l.bias) << l.fracWidth
}

// Trunc rounds toward zero.
func (f FloatingPoint[T]) Trunc() FloatingPoint[T] {
	l := layoutOf[T]()
	if f.IsInfOrNaN() {
		return f
	}
	e := f.Exponent()
	if e >= int(l.fracWidth) {
		return f
	}
	b := f.Bits()
	if e < 0 {
		return fromBitsFP[T](b & l.signMask)
	}
	return fromBitsFP[T](b &^ l.fractionalMask(e))
}

// Ceil rounds toward positive infinity.
func (f FloatingPoint[T]) Ceil() FloatingPoint[T] {
	l := layoutOf[T]()
	if f.IsInfOrNaN() || f.IsZero() {
		return f
	}
	e := f.Exponent()
	if e >= int(l.fracWidth) {
		return f
	}
	b := f.Bits()
	if e < 0 {
		if f.Sign() {
			return fromBitsFP[T](l.signMask)
		}
		return fromBitsFP[T](l.one())
	}
	mask := l.fractionalMask(e)
	if b&mask == 0 {
		return f
	}
	t := b &^ mask
	if !f.Sign() {
		// One unit in the last integral place; a carry out of the fraction
		// field bumps the exponent, which is exactly the doubling we want.
		t += mask + 1
	}
	return fromBitsFP[T](t)
}

// Floor rounds toward negative infinity. Floor(x) = -Ceil(-x).
func (f FloatingPoint[T]) Floor() FloatingPoint[T] {
	return f.Negate().Ceil().Negate()
}

// Round rounds to the nearest integer. Exact halves go to the even neighbour
// for magnitudes >= 1. Every magnitude in [0.5, 1) rounds to ±1, including 0.5
// itself, and smaller magnitudes round to a signed zero.
func (f FloatingPoint[T]) Round() FloatingPoint[T] {
	l := layoutOf[T]()
	if f.IsInfOrNaN() {
		return f
	}
	e := f.Exponent()
	if e >= int(l.fracWidth) {
		return f
	}
	b := f.Bits()
	switch {
	case e < -1:
		return fromBitsFP[T](b & l.signMask)
	case e == -1:
		return fromBitsFP[T](b&l.signMask | l.one())
	}
	mask := l.fractionalMask(e)
	half := (mask + 1) >> 1
	rem := b & mask
	t := b &^ mask
	// The units digit is the implicit one when e == 0.
	odd := e == 0 || t&(mask+1) != 0
	if rem > half || (rem == half && odd) {
		t += mask + 1
	}
	return fromBitsFP[T](t)
}

// ModF splits f into an integral part and a fractional part, both carrying
// the sign of f. Infinities yield (±Inf, ±0) and NaN yields (NaN, NaN).
func (f FloatingPoint[T]) ModF() (integral, fractional T) {
	l := layoutOf[T]()
	switch {
	case f.IsNaN():
		return f.value, f.value
	case f.IsInf():
		return f.value, FromBits[T](f.Bits() & l.signMask)
	}
	t := f.Trunc().Value()
	r := ToBits(f.value - t)
	return t, FromBits[T](r&^l.signMask | f.Bits()&l.signMask)
}

// String formats f as its value followed by its fields.
func (f FloatingPoint[T]) String() string {
	sign := 0
	if f.Sign() {
		sign = 1
	}
	return fmt.Sprintf("%v [sign=%d exponent=%d fraction=%#x]", f.value, sign, f.Exponent(), f.Fraction())
}
