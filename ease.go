package anim

import "github.com/tphakala/go-anim/vmath"

// Interpolator combinators. These compose an interpolator with an easing
// function reshaping the phase and/or an unpacking function converting from
// a packed storage representation, producing a new interpolator usable
// anywhere a plain one is.

// Ease returns an interpolator that reshapes the phase with the given easing
// function before blending. The phase is passed through unclamped, so easing
// functions that are only well-behaved on [0, 1] (back, elastic) combined
// with extrapolation may produce wild results; use [EaseClamped] for those.
func Ease[V, R any, T vmath.Float](interpolator Interpolator[V, R, T], easer func(T) T) Interpolator[V, R, T] {
	return func(a, b V, t T) R {
		return interpolator(a, b, easer(t))
	}
}

// EaseClamped is like [Ease] but clamps the phase to [0, 1] before applying
// the easing function.
func EaseClamped[V, R any, T vmath.Float](interpolator Interpolator[V, R, T], easer func(T) T) Interpolator[V, R, T] {
	return func(a, b V, t T) R {
		return interpolator(a, b, easer(vmath.Clamp(t, 0, 1)))
	}
}

// Unpack returns an interpolator operating on a packed representation U,
// converting both operands with the given unpacking function before
// blending. Useful for keyframes stored quantized, e.g. normalized integers.
func Unpack[U, V, R any, T vmath.Float](interpolator Interpolator[V, R, T], unpacker func(U) V) Interpolator[U, R, T] {
	return func(a, b U, t T) R {
		return interpolator(unpacker(a), unpacker(b), t)
	}
}

// UnpackEase combines [Unpack] and [Ease].
func UnpackEase[U, V, R any, T vmath.Float](interpolator Interpolator[V, R, T], unpacker func(U) V, easer func(T) T) Interpolator[U, R, T] {
	return func(a, b U, t T) R {
		return interpolator(unpacker(a), unpacker(b), easer(t))
	}
}

// UnpackEaseClamped combines [Unpack] and [EaseClamped].
func UnpackEaseClamped[U, V, R any, T vmath.Float](interpolator Interpolator[V, R, T], unpacker func(U) V, easer func(T) T) Interpolator[U, R, T] {
	return func(a, b U, t T) R {
		return interpolator(unpacker(a), unpacker(b), easer(vmath.Clamp(t, 0, 1)))
	}
}
