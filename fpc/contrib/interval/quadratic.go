package interval

import "github.com/ajroetker/go-fpcore/fpc"

// Quadratic solves a*t^2 + b*t + c = 0 for interval coefficients. It reports
// false when no real root is guaranteed, that is when the discriminant's
// lower bound is negative. Otherwise t0 has the smaller lower bound.
func Quadratic[T fpc.Floats](a, b, c Interval[T]) (t0, t1 Interval[T], ok bool) {
	if a.IsExactly(0) {
		if b.IsExactly(0) {
			return t0, t1, false
		}
		t := c.Neg().Div(b)
		return t, t, true
	}

	discrim := DifferenceOfProducts(b, b, a.MulPow2(4), c)
	if discrim.low < 0 {
		return t0, t1, false
	}
	rootDiscrim := Sqrt(discrim)

	var q Interval[T]
	if b.Midpoint() < 0 {
		q = b.Sub(rootDiscrim).MulPow2(-0.5)
	} else {
		q = b.Add(rootDiscrim).MulPow2(-0.5)
	}
	t0, t1 = q.Div(a), c.Div(q)
	if t0.low > t1.low {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}
