package math

import "github.com/ajroetker/go-fpcore/fpc"

// Gamma returns the classic bound n*ε/(1-n*ε) on the relative error
// accumulated by n rounded operations, where ε is MachineEpsilon.
func Gamma[T fpc.Floats](n int) T {
	e := T(n) * MachineEpsilon[T]()
	return e / (1 - e)
}

// CompensatedFloat is a value together with the rounding error that was
// dropped when it was computed: the exact result is V + Err.
type CompensatedFloat[T fpc.Floats] struct {
	V, Err T
}

// Float folds the error term back into the value.
func (c CompensatedFloat[T]) Float() T {
	return c.V + c.Err
}

// TwoSum returns the rounded sum of a and b along with its exact error.
func TwoSum[T fpc.Floats](a, b T) CompensatedFloat[T] {
	s := a + b
	delta := s - a
	return CompensatedFloat[T]{V: s, Err: (a - (s - delta)) + (b - delta)}
}

// TwoProd returns the rounded product of a and b along with its exact
// error, provided the product does not underflow.
func TwoProd[T fpc.Floats](a, b T) CompensatedFloat[T] {
	ab := T(a * b)
	return CompensatedFloat[T]{V: ab, Err: fused(a, b, -ab)}
}

// InnerProduct returns sum(a[i]*b[i]) evaluated with error-free transforms so
// that the result is as accurate as if computed in twice the working
// precision. It panics if the slices differ in length.
func InnerProduct[T fpc.Floats](a, b []T) CompensatedFloat[T] {
	if len(a) != len(b) {
		panic("math: InnerProduct of slices with different lengths")
	}
	if len(a) == 0 {
		return CompensatedFloat[T]{}
	}
	n := len(a) - 1
	acc := TwoProd(a[n], b[n])
	for i := n - 1; i >= 0; i-- {
		ab := TwoProd(a[i], b[i])
		sum := TwoSum(ab.V, acc.V)
		acc = CompensatedFloat[T]{V: sum.V, Err: ab.Err + (acc.Err + sum.Err)}
	}
	return acc
}

// CompensatedSum accumulates values with Kahan summation. The zero value is
// an empty sum.
type CompensatedSum[T fpc.Floats] struct {
	sum, c T
}

// NewCompensatedSum returns a sum of values.
func NewCompensatedSum[T fpc.Floats](values ...T) *CompensatedSum[T] {
	s := &CompensatedSum[T]{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add adds v to the running sum.
func (s *CompensatedSum[T]) Add(v T) {
	delta := v - s.c
	sum := s.sum + delta
	s.c = (sum - s.sum) - delta
	s.sum = sum
}

// Sum returns the current total.
func (s *CompensatedSum[T]) Sum() T {
	return s.sum
}

// DifferenceOfProducts returns a*b - c*d using Kahan's algorithm, which avoids
// the catastrophic cancellation of the naive expression.
func DifferenceOfProducts[T fpc.Floats](a, b, c, d T) T {
	cd := T(c * d)
	dop := fused(a, b, -cd)
	err := fused(-c, d, cd)
	return dop + err
}

// SumOfProducts returns a*b + c*d with the same error compensation as
// DifferenceOfProducts.
func SumOfProducts[T fpc.Floats](a, b, c, d T) T {
	cd := T(c * d)
	sop := fused(a, b, cd)
	err := fused(c, d, -cd)
	return sop + err
}

// EvaluatePolynomial evaluates c[0] + c[1]*t + c[2]*t^2 + ... with Horner's
// rule, one fused multiply-add per coefficient.
func EvaluatePolynomial[T fpc.Floats](t T, c ...T) T {
	if len(c) == 0 {
		return 0
	}
	r := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		r = fused(t, r, c[i])
	}
	return r
}

// Quadratic solves a*t^2 + b*t + c = 0. It reports false when there is no
// real solution. Otherwise t0 <= t1; a single root is returned twice.
func Quadratic[T fpc.Floats](a, b, c T) (t0, t1 T, ok bool) {
	if a == 0 {
		if b == 0 {
			return 0, 0, false
		}
		t := -c / b
		return t, t, true
	}
	discrim := DifferenceOfProducts(b, b, 4*a, c)
	if discrim < 0 || IsNaN(discrim) {
		return 0, 0, false
	}
	rootDiscrim := Sqrt(discrim)
	q := -0.5 * (b + CopySign(rootDiscrim, b))
	if q == 0 {
		// b == 0 and c == 0: a double root at zero.
		return 0, 0, true
	}
	t0, t1 = q/a, c/q
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}
