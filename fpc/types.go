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

// Package fpc provides bit-level access to IEEE 754 floating-point values.
//
// It is the bottom layer of go-fpcore: FloatingPoint exposes the sign,
// exponent and fraction fields of a float32 or float64 and implements
// rounding directly on the bit pattern, NormalizedFloat carries an explicit
// (sign, exponent, fraction) triple for exact exponent work, and Half is an
// IEEE binary16 value. The package also decides at init time whether the
// math façade in contrib/math runs its pure-Go software routines or the
// hardware-backed standard library ones.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-fpcore/fpc"
//
//	f := fpc.NewFloatingPoint(float32(2.5))
//	f.Exponent() // 1
//	f.Round()    // 2 (ties to even)
package fpc

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Floats is a constraint for the two IEEE 754 widths handled by this module.
//
// Width-specific code switches on the size of T: 4 bytes is binary32 and
// 8 bytes is binary64. There are no other cases.
type Floats interface {
	constraints.Float
}

// Layout of binary32.
const (
	Float32FractionWidth = 23
	Float32ExponentWidth = 8
	Float32ExponentBias  = 127
)

// Layout of binary64.
const (
	Float64FractionWidth = 52
	Float64ExponentWidth = 11
	Float64ExponentBias  = 1023
)

// Is32 reports whether T is a binary32 type.
func Is32[T Floats]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// FractionWidth returns the number of explicit fraction bits of T.
func FractionWidth[T Floats]() int {
	if Is32[T]() {
		return Float32FractionWidth
	}
	return Float64FractionWidth
}

// ExponentWidth returns the number of exponent bits of T.
func ExponentWidth[T Floats]() int {
	if Is32[T]() {
		return Float32ExponentWidth
	}
	return Float64ExponentWidth
}

// ExponentBias returns the exponent bias of T.
func ExponentBias[T Floats]() int {
	if Is32[T]() {
		return Float32ExponentBias
	}
	return Float64ExponentBias
}

// TotalWidth returns the width of T in bits.
func TotalWidth[T Floats]() int {
	return 1 + ExponentWidth[T]() + FractionWidth[T]()
}

// ToBits returns the IEEE 754 bit pattern of x, zero-extended to 64 bits.
func ToBits[T Floats](x T) uint64 {
	if Is32[T]() {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// FromBits returns the T whose bit pattern is the low TotalWidth bits of b.
func FromBits[T Floats](b uint64) T {
	if Is32[T]() {
		return T(math.Float32frombits(uint32(b)))
	}
	return T(math.Float64frombits(b))
}

// layout holds the masks derived from the widths of one format.
type layout struct {
	fracWidth uint
	expWidth  uint
	bias      int
	signMask  uint64
	expMask   uint64 // field mask, unshifted
	fracMask  uint64
	absMask   uint64
}

var (
	layout32 = newLayout(Float32FractionWidth, Float32ExponentWidth, Float32ExponentBias)
	layout64 = newLayout(Float64FractionWidth, Float64ExponentWidth, Float64ExponentBias)
)

func newLayout(fracWidth, expWidth uint, bias int) layout {
	return layout{
		fracWidth: fracWidth,
		expWidth:  expWidth,
		bias:      bias,
		signMask:  1 << (fracWidth + expWidth),
		expMask:   1<<expWidth - 1,
		fracMask:  1<<fracWidth - 1,
		absMask:   1<<(fracWidth+expWidth) - 1,
	}
}

func layoutOf[T Floats]() *layout {
	if Is32[T]() {
		return &layout32
	}
	return &layout64
}

// MinSubnormal returns the smallest positive subnormal value of T.
func MinSubnormal[T Floats]() T {
	return FromBits[T](1)
}

// MinNormal returns the smallest positive normal value of T.
func MinNormal[T Floats]() T {
	return FromBits[T](1 << layoutOf[T]().fracWidth)
}

// MaxFinite returns the largest finite value of T.
func MaxFinite[T Floats]() T {
	l := layoutOf[T]()
	return FromBits[T]((l.expMask-1)<<l.fracWidth | l.fracMask)
}

// Epsilon returns the distance from 1 to the next larger value of T.
func Epsilon[T Floats]() T {
	l := layoutOf[T]()
	return FromBits[T](uint64(l.bias-int(l.fracWidth)) << l.fracWidth)
}

// Infinity returns positive infinity if sign >= 0, negative infinity otherwise.
func Infinity[T Floats](sign int) T {
	l := layoutOf[T]()
	b := l.expMask << l.fracWidth
	if sign < 0 {
		b |= l.signMask
	}
	return FromBits[T](b)
}

// NaN returns the canonical quiet NaN of T.
func NaN[T Floats]() T {
	l := layoutOf[T]()
	return FromBits[T](l.expMask<<l.fracWidth | 1<<(l.fracWidth-1))
}
