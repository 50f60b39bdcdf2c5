package math

import "github.com/ajroetker/go-fpcore/fpc"

// NextUp returns the smallest representable value greater than x.
//
// Special cases are:
//
//	NextUp(±0) = MinSubnormal
//	NextUp(-MinSubnormal) = -0
//	NextUp(+Inf) = +Inf
//	NextUp(-Inf) = -MaxFinite
//	NextUp(NaN) = NaN
//
// Both evaluation paths use this bit-level implementation.
func NextUp[T fpc.Floats](x T) T {
	f := fpc.NewFloatingPoint(x)
	switch {
	case f.IsNaN():
		return x
	case f.IsInf() && !f.Sign():
		return x
	case f.IsZero():
		return fpc.MinSubnormal[T]()
	}
	b := f.Bits()
	if f.Sign() {
		b--
	} else {
		b++
	}
	return fpc.FromBits[T](b)
}

// NextDown returns the largest representable value less than x. It mirrors
// NextUp: NextDown(±0) = -MinSubnormal, NextDown(MinSubnormal) = +0 and
// NextDown(-Inf) = -Inf.
func NextDown[T fpc.Floats](x T) T {
	f := fpc.NewFloatingPoint(x)
	switch {
	case f.IsNaN():
		return x
	case f.IsInf() && f.Sign():
		return x
	case f.IsZero():
		return -fpc.MinSubnormal[T]()
	}
	b := f.Bits()
	if f.Sign() {
		b++
	} else {
		b--
	}
	return fpc.FromBits[T](b)
}
