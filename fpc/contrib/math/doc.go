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

// Package math provides a uniform scalar math façade over float32 and float64.
//
// Every function is generic over fpc.Floats and behaves like the
// correctly rounded (or standard library) result for the same operation.
//
// # Evaluation Paths
//
// Operations that have a pure-Go bit-level implementation in this module
// dispatch on fpc.CurrentPath():
//   - Trunc, Floor, Ceil, Round, ModF - fpc.FloatingPoint bit masks
//   - Sqrt - bit-by-bit integer square root
//   - Ldexp, Frexp - fpc.NormalizedFloat
//   - FMA - a*b + c (see below)
//
// The hardware path uses the standard library for float64 and
// github.com/chewxy/math32 for float32, which the compiler lowers to single
// instructions where the CPU has them. Both paths return identical results
// with one exception: FMA on the software path rounds twice, the
// same as writing a*b + c with an explicit conversion of the product. Code
// that needs the fused result (TwoProd, the directed
// rounding helpers, DifferenceOfProducts) uses the exact fused operation
// regardless of path.
//
// Transcendental functions (Exp, Log, Sin, ATan2, ...) are the same on both
// paths.
//
// # Directed Rounding
//
// The *AdjustUp / *AdjustDown family returns a value that is guaranteed to be
// >= (respectively <=) the exact result. Add, Sub, Mul, Div and Sqrt compute
// an exact residual and only step to the neighbouring float when the rounded
// result lies on the wrong side, so exact operations stay exact. FMA always
// steps. These are the building blocks of contrib/interval.
//
// # Compensated Arithmetic
//
// TwoSum and TwoProd are error-free transformations returning a
// CompensatedFloat (value plus residual). InnerProduct, DifferenceOfProducts
// and SumOfProducts build on them following Graillat and Kahan.
package math
