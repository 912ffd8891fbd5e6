// Package vmath provides the scalar and vector algebra the animation core
// interpolates over: float helpers, fixed-size vectors, complex numbers for
// 2D rotations and quaternions for 3D rotations.
//
// All types come in float32 and float64 instantiations via the [Float]
// constraint. Rotation interpolants (lerp/slerp on [Complex] and
// [Quaternion]) expect normalized inputs and panic when that precondition is
// violated; a silently denormalized rotation would produce plausible-looking
// but wrong results downstream.
package vmath

import "math"

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Fuzzy-comparison epsilons, matching the precision of the respective type.
const (
	epsilonF32 = 1.0e-5
	epsilonF64 = 1.0e-14
)

// Epsilon returns the fuzzy-comparison threshold for type T.
func Epsilon[T Float]() T {
	if _, ok := any(T(0)).(float32); ok {
		return T(epsilonF32)
	}
	return T(epsilonF64)
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt returns the square root of x, computed in the precision of T.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Equal compares two scalars using a combined absolute/relative epsilon.
// Values close to zero are compared absolutely, everything else relative to
// the magnitude of the operands.
func Equal[T Float](a, b T) bool {
	if a == b {
		return true
	}

	eps := Epsilon[T]()
	absA, absB := Abs(a), Abs(b)
	diff := Abs(a - b)

	// Relative error is meaningless around zero
	if a == 0 || b == 0 || diff < eps {
		return diff < eps
	}

	return diff/(absA+absB) < eps
}

// Lerp linearly interpolates between a and b: (1-t)*a + t*b.
func Lerp[T Float](a, b, t T) T {
	return (1-t)*a + t*b
}

// LerpInverted returns the interpolation factor t such that
// Lerp(a, b, t) == lerp. Inverse of [Lerp].
func LerpInverted[T Float](a, b, lerp T) T {
	return (lerp - a) / (b - a)
}

// Select returns a for t < 1 and b otherwise. Constant ("nearest previous
// keyframe") interpolation for arbitrary value types.
func Select[V any, T Float](a, b V, t T) V {
	if t < 1 {
		return a
	}
	return b
}

// Clamp restricts x to the range [low, high].
func Clamp[T Float](x, low, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}
