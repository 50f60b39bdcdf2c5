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

// Package interval implements closed intervals of float32 or float64 values
// whose arithmetic is rounded outward, so the exact result of an operation
// on any members of the operands is a member of the result.
//
// Endpoints are computed with the directed rounding helpers of
// fpc/contrib/math. Operations whose exact result is representable keep
// exact endpoints, for example [1, 2] + [3, 4] = [4, 6].
//
// Nothing in this package panics or returns an error. Operations outside
// their domain (division by an interval containing zero, Sin of an interval
// outside [0, 2π]) return the widest enclosure that is still meaningful.
//
// Example:
//
//	a := interval.New(1.0, 2.0)
//	b := interval.FromValueAndError(0.1, 1e-9)
//	c := a.Mul(b).Add(interval.Point(3.0))
//	fmt.Println(c.Contains(3.15))
package interval

import (
	"fmt"

	"github.com/ajroetker/go-fpcore/fpc"
	fpmath "github.com/ajroetker/go-fpcore/fpc/contrib/math"
)

// Interval is the closed range [low, high] with low <= high.
type Interval[T fpc.Floats] struct {
	low, high T
}

// New returns the interval spanning low and high, in either order.
func New[T fpc.Floats](low, high T) Interval[T] {
	return Interval[T]{low: min(low, high), high: max(low, high)}
}

// Point returns the degenerate interval [v, v].
func Point[T fpc.Floats](v T) Interval[T] {
	return Interval[T]{low: v, high: v}
}

// FromValueAndError returns an interval containing every value within err of
// v. A zero err gives the point interval.
func FromValueAndError[T fpc.Floats](v, err T) Interval[T] {
	if err == 0 {
		return Point(v)
	}
	err = fpmath.Abs(err)
	return Interval[T]{
		low:  fpmath.SubAdjustDown(v, err),
		high: fpmath.AddAdjustUp(v, err),
	}
}

// Unbounded returns [-Inf, +Inf].
func Unbounded[T fpc.Floats]() Interval[T] {
	return Interval[T]{low: fpc.Infinity[T](-1), high: fpc.Infinity[T](1)}
}

// LowerBound returns the low endpoint.
func (i Interval[T]) LowerBound() T { return i.low }

// UpperBound returns the high endpoint.
func (i Interval[T]) UpperBound() T { return i.high }

// Bound returns the low endpoint for 0 and the high endpoint otherwise.
func (i Interval[T]) Bound(n int) T {
	if n == 0 {
		return i.low
	}
	return i.high
}

// Midpoint returns (low + high) / 2.
func (i Interval[T]) Midpoint() T {
	return (i.low + i.high) / 2
}

// Width returns high - low.
func (i Interval[T]) Width() T {
	return i.high - i.low
}

// IsExactly reports whether the interval is the single point v.
func (i Interval[T]) IsExactly(v T) bool {
	return i.low == v && i.high == v
}

// Contains reports whether v lies in the interval.
func (i Interval[T]) Contains(v T) bool {
	return v >= i.low && v <= i.high
}

// Overlaps reports whether the two intervals share at least one value.
func (i Interval[T]) Overlaps(o Interval[T]) bool {
	return i.low <= o.high && i.high >= o.low
}

// Equal reports whether both endpoints are equal.
func (i Interval[T]) Equal(o Interval[T]) bool {
	return i.low == o.low && i.high == o.high
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", i.low, i.high)
}

// InRange reports whether v lies in i.
func InRange[T fpc.Floats](v T, i Interval[T]) bool {
	return i.Contains(v)
}

// minOf and maxOf skip NaN operands, which arise from 0 * Inf corners.
func minOf[T fpc.Floats](v ...T) T {
	m := v[0]
	for _, x := range v[1:] {
		if x < m || fpmath.IsNaN(m) {
			m = x
		}
	}
	return m
}

func maxOf[T fpc.Floats](v ...T) T {
	m := v[0]
	for _, x := range v[1:] {
		if x > m || fpmath.IsNaN(m) {
			m = x
		}
	}
	return m
}
