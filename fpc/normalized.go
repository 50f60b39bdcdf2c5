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

import "math/bits"

// NormalizedFloat is a non-zero finite value held as an explicit triple.
//
// The represented value is (-1)^negative * fraction * 2^(exponent-FractionWidth).
// After construction fraction >= 1<<FractionWidth, i.e. the implicit leading
// one is stored explicitly. Subnormal inputs are renormalised on the way in,
// so exponent may be below the smallest normal exponent of T.
//
// The fraction may carry more than FractionWidth+1 significant bits (for
// example the result of multiplying two fractions); Float rounds them off.
type NormalizedFloat[T Floats] struct {
	negative bool
	exponent int
	fraction uint64
}

// NewNormalizedFloat builds a NormalizedFloat. It panics if fraction is zero.
func NewNormalizedFloat[T Floats](negative bool, exponent int, fraction uint64) NormalizedFloat[T] {
	if fraction == 0 {
		panic("fpc: NewNormalizedFloat with zero fraction")
	}
	want := int(layoutOf[T]().fracWidth) + 1
	if n := bits.Len64(fraction); n < want {
		fraction <<= uint(want - n)
		exponent -= want - n
	}
	return NormalizedFloat[T]{negative: negative, exponent: exponent, fraction: fraction}
}

// Normalize decomposes x. It returns false for zeros, infinities and NaNs.
func Normalize[T Floats](x T) (NormalizedFloat[T], bool) {
	f := NewFloatingPoint(x)
	if f.IsZero() || f.IsInfOrNaN() {
		return NormalizedFloat[T]{}, false
	}
	l := layoutOf[T]()
	frac := f.Fraction()
	exp := f.Exponent()
	if f.BiasedExponent() == 0 {
		exp = 1 - l.bias
	} else {
		frac |= 1 << l.fracWidth
	}
	return NewNormalizedFloat[T](f.Sign(), exp, frac), true
}

// Sign reports whether the value is negative.
func (n NormalizedFloat[T]) Sign() bool {
	return n.negative
}

// Exponent returns the unbiased exponent of the leading fraction bit when the
// fraction is exactly FractionWidth+1 bits wide.
func (n NormalizedFloat[T]) Exponent() int {
	return n.exponent
}

// Fraction returns the fraction including the implicit one.
func (n NormalizedFloat[T]) Fraction() uint64 {
	return n.fraction
}

// MulPow2 scales the value by 2^k without rounding.
func (n NormalizedFloat[T]) MulPow2(k int) NormalizedFloat[T] {
	n.exponent += k
	return n
}

// Float converts back to T with round-to-nearest-even, producing subnormals
// on gradual underflow and ±Inf on overflow.
func (n NormalizedFloat[T]) Float() T {
	l := layoutOf[T]()
	var sign uint64
	if n.negative {
		sign = l.signMask
	}
	if n.fraction == 0 {
		return FromBits[T](sign)
	}

	width := bits.Len64(n.fraction)
	shift := width - int(l.fracWidth) - 1
	e := n.exponent + shift
	if minExp := 1 - l.bias; e < minExp {
		shift += minExp - e
		e = minExp
	}
	// Largest exponent field that can still hold a finite value after adding
	// the implicit one carried by m.
	if e+l.bias-1 >= int(l.expMask) {
		return FromBits[T](sign | l.expMask<<l.fracWidth)
	}

	var m uint64
	if shift >= 0 {
		m = ShiftRightRoundEven(n.fraction, uint(shift))
	} else {
		m = n.fraction << uint(-shift)
	}
	// The implicit one in m adds one to the exponent field, and a rounding
	// carry adds another, so plain addition assembles the encoding.
	b := uint64(e+l.bias-1)<<l.fracWidth + m
	if b >= l.expMask<<l.fracWidth {
		b = l.expMask << l.fracWidth
	}
	return FromBits[T](sign | b)
}

// ShiftRightRoundEven returns x / 2^s rounded to the nearest integer, ties to
// even.
func ShiftRightRoundEven(x uint64, s uint) uint64 {
	switch {
	case s == 0:
		return x
	case s > 64:
		return 0
	case s == 64:
		if x > 1<<63 {
			return 1
		}
		return 0
	}
	q := x >> s
	rem := x & (uint64(1)<<s - 1)
	half := uint64(1) << (s - 1)
	if rem > half || (rem == half && q&1 == 1) {
		q++
	}
	return q
}
