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

import (
	"math"
	"strconv"
)

// Half represents an IEEE 754 half-precision (binary16) floating-point number.
// It wraps uint16 for storage but provides float semantics.
//
// Format: Sign (1 bit) | Exponent (5 bits) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
//
// Properties:
//   - Exponent bias: 15
//   - Max value: 65504
//   - Min positive normal: ~6.10e-5
//   - Min positive subnormal: ~5.96e-8
type Half uint16

// Half constants for special values.
const (
	HalfZero      Half = 0x0000 // Positive zero
	HalfNegZero   Half = 0x8000 // Negative zero
	HalfOne       Half = 0x3C00 // 1.0
	HalfNegOne    Half = 0xBC00 // -1.0
	HalfMaxValue  Half = 0x7BFF // 65504 (max finite value)
	HalfMinNormal Half = 0x0400 // 2^-14 (~6.10e-5, smallest normal)
	HalfMinValue  Half = 0x0001 // 2^-24 (~5.96e-8, smallest subnormal)
	HalfInf       Half = 0x7C00 // Positive infinity
	HalfNegInf    Half = 0xFC00 // Negative infinity
	HalfNaN       Half = 0x7E00 // Quiet NaN (canonical)

	halfExpBias      = 15
	halfMantissaBits = 10
	halfMantissaMask = 0x3FF
	halfExpField     = 0x7C00
	halfSignMask     = 0x8000
)

// Conversion tables for binary16 -> binary32. A half h converts to
//
//	halfMantissa[halfOffset[h>>10] + h&0x3FF] + halfExponent[h>>10]
//
// which handles zeros, subnormals, infinities and NaNs without branches.
var (
	halfMantissa [2048]uint32
	halfExponent [64]uint32
	halfOffset   [64]uint16
)

func init() {
	halfMantissa[0] = 0
	for i := uint32(1); i < 1024; i++ {
		halfMantissa[i] = convertSubnormalMantissa(i)
	}
	for i := uint32(1024); i < 2048; i++ {
		halfMantissa[i] = 0x38000000 + (i-1024)<<13
	}

	halfExponent[0] = 0
	for i := uint32(1); i < 31; i++ {
		halfExponent[i] = i << 23
	}
	halfExponent[31] = 0x47800000
	halfExponent[32] = 0x80000000
	for i := uint32(33); i < 63; i++ {
		halfExponent[i] = 0x80000000 + (i-32)<<23
	}
	halfExponent[63] = 0xC7800000

	for i := range halfOffset {
		halfOffset[i] = 1024
	}
	halfOffset[0] = 0
	halfOffset[32] = 0
}

// convertSubnormalMantissa renormalises a subnormal half mantissa into
// binary32 exponent and fraction bits.
func convertSubnormalMantissa(i uint32) uint32 {
	m := i << 13
	var e uint32
	for m&0x00800000 == 0 {
		e -= 0x00800000
		m <<= 1
	}
	m &^= 0x00800000
	e += 0x38800000
	return m | e
}

// HalfToFloat32 converts h to float32. The conversion is exact.
func HalfToFloat32(h Half) float32 {
	idx := h >> halfMantissaBits
	return math.Float32frombits(halfMantissa[uint32(halfOffset[idx])+uint32(h&halfMantissaMask)] + halfExponent[idx])
}

// Float32ToHalf converts f to a Half with round-to-nearest-even.
// Overflow produces an infinity; NaN stays NaN with its quiet bit set.
func Float32ToHalf(f float32) Half {
	return halfFromFloat64Bits(math.Float64bits(float64(f)))
}

// Float64ToHalf converts f to a Half with a single rounding step.
func Float64ToHalf(f float64) Half {
	return halfFromFloat64Bits(math.Float64bits(f))
}

func halfFromFloat64Bits(b uint64) Half {
	sign := Half(b>>48) & halfSignMask
	exp := int(b>>Float64FractionWidth) & 0x7FF
	mant := b & (1<<Float64FractionWidth - 1)

	switch exp {
	case 0x7FF:
		if mant != 0 {
			return sign | HalfNaN | Half(mant>>42)
		}
		return sign | HalfInf
	case 0:
		// binary64 subnormals are far below half's range.
		return sign
	}

	e := exp - Float64ExponentBias
	if e > halfExpBias {
		return sign | HalfInf
	}
	m := mant | 1<<Float64FractionWidth

	// Normal halves keep 10 fraction bits; below 2^-14 the unit in the last
	// place is fixed at 2^-24 so the shift grows as e shrinks.
	field := 0
	shift := Float64FractionWidth - halfMantissaBits
	if e >= 1-halfExpBias {
		field = e + halfExpBias - 1
	} else {
		shift += 1 - halfExpBias - e
	}
	r := ShiftRightRoundEven(m, uint(shift))
	h := uint64(field)<<halfMantissaBits + r
	if h >= halfExpField {
		return sign | HalfInf
	}
	return sign | Half(h)
}

// NewHalf creates a Half from a float32 value.
func NewHalf(f float32) Half {
	return Float32ToHalf(f)
}

// HalfFromFloat64 creates a Half from a float64 value.
func HalfFromFloat64(f float64) Half {
	return Float64ToHalf(f)
}

// HalfFromBits creates a Half from raw bits.
func HalfFromBits(bits uint16) Half {
	return Half(bits)
}

// Bits returns the raw uint16 representation.
func (h Half) Bits() uint16 {
	return uint16(h)
}

// Float32 converts h to float32.
func (h Half) Float32() float32 {
	return HalfToFloat32(h)
}

// Float64 converts h to float64.
func (h Half) Float64() float64 {
	return float64(HalfToFloat32(h))
}

// IsNaN returns true if h is a NaN value.
func (h Half) IsNaN() bool {
	return h&halfExpField == halfExpField && h&halfMantissaMask != 0
}

// IsInf returns true if h is positive or negative infinity.
func (h Half) IsInf() bool {
	return h&^halfSignMask == HalfInf
}

// IsZero returns true if h is positive or negative zero.
func (h Half) IsZero() bool {
	return h&^halfSignMask == 0
}

// IsNegative returns true if the sign bit is set.
func (h Half) IsNegative() bool {
	return h&halfSignMask != 0
}

// IsSubnormal returns true if h is a non-zero subnormal.
func (h Half) IsSubnormal() bool {
	return h&halfExpField == 0 && h&halfMantissaMask != 0
}

// Neg flips the sign bit.
func (h Half) Neg() Half {
	return h ^ halfSignMask
}

// Abs clears the sign bit.
func (h Half) Abs() Half {
	return h &^ halfSignMask
}

// Equal compares as the == operator would: +0 equals -0 and NaN equals
// nothing.
func (h Half) Equal(o Half) bool {
	if h.IsNaN() || o.IsNaN() {
		return false
	}
	if h.IsZero() && o.IsZero() {
		return true
	}
	return h == o
}

// NextUp returns the next representable Half toward +Inf.
func (h Half) NextUp() Half {
	switch {
	case h.IsNaN() || h == HalfInf:
		return h
	case h.IsZero():
		return HalfMinValue
	case h.IsNegative():
		return h - 1
	}
	return h + 1
}

// NextDown returns the next representable Half toward -Inf.
func (h Half) NextDown() Half {
	if h.IsNaN() {
		return h
	}
	return h.Neg().NextUp().Neg()
}

// String formats h with the shortest decimal that round-trips through float32.
func (h Half) String() string {
	return strconv.FormatFloat(h.Float64(), 'g', -1, 32)
}

// HalvesToFloat32 converts min(len(dst), len(src)) halves.
func HalvesToFloat32(dst []float32, src []Half) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = HalfToFloat32(src[i])
	}
}

// Float32ToHalves converts min(len(dst), len(src)) floats.
func Float32ToHalves(dst []Half, src []float32) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToHalf(src[i])
	}
}
