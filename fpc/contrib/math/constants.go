package math

import "github.com/ajroetker/go-fpcore/fpc"

// Common constants, untyped so they take the precision of their use.
const (
	Pi      = 3.14159265358979323846264338327950288
	InvPi   = 0.31830988618379067154
	Inv2Pi  = 0.15915494309189533577
	Inv4Pi  = 0.07957747154594766788
	PiOver2 = 1.57079632679489661923
	PiOver4 = 0.78539816339744830961
	Sqrt2   = 1.41421356237309504880
)

// MachineEpsilon returns half the distance from 1 to the next larger value,
// the unit roundoff of round-to-nearest arithmetic in T.
func MachineEpsilon[T fpc.Floats]() T {
	return fpc.Epsilon[T]() * 0.5
}

// OneMinusEpsilon returns the largest value of T below 1.
func OneMinusEpsilon[T fpc.Floats]() T {
	return NextDown(T(1))
}

// Infinity returns positive infinity.
func Infinity[T fpc.Floats]() T {
	return fpc.Infinity[T](1)
}
