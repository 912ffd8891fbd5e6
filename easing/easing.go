// Package easing provides a catalog of scalar easing functions for animation
// interpolation.
//
// All functions map a factor in [0, 1] to an eased factor, with f(0) = 0 and
// f(1) = 1. Most functions stay inside [0, 1] on the unit
// interval; the elastic and back variants deliberately overshoot and the step
// function is discontinuous. The functions are meant to be composed with
// interpolators via the combinators in the root package, for example wrapping
// a linear interpolator so a keyframe segment accelerates into its target.
//
// Functions come in In/Out/InOut triples related by the usual reflection laws:
//
//	out(t) = 1 - in(1 - t)
//	inOut(t) = 0.5*in(2t)          for t < 0.5
//	inOut(t) = 0.5*out(2t - 1) + 0.5  otherwise
//
// The polynomial and smoothstep variants have exact or approximate cubic
// Bézier representations, see the *Bezier functions in this package.
package easing

import (
	"math"

	"github.com/tphakala/go-anim/vmath"
)

func sin[T vmath.Float](x T) T  { return T(math.Sin(float64(x))) }
func cos[T vmath.Float](x T) T  { return T(math.Cos(float64(x))) }
func exp2[T vmath.Float](x T) T { return T(math.Exp2(float64(x))) }

// Linear returns t unchanged.
func Linear[T vmath.Float](t T) T { return t }

// Step jumps from 0 to 1 at t = 0.5.
func Step[T vmath.Float](t T) T {
	if t < 0.5 {
		return 0
	}
	return 1
}

// Smoothstep is the classic cubic (3 - 2t)t², clamped outside [0, 1].
// Its first derivative is zero at both endpoints.
func Smoothstep[T vmath.Float](t T) T {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return (3 - 2*t) * t * t
}

// Smootherstep is the quintic t³(t(6t - 15) + 10), clamped outside [0, 1].
// Both the first and second derivative are zero at the endpoints.
func Smootherstep[T vmath.Float](t T) T {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * t * (t*(t*6-15) + 10)
}

// QuadraticIn is t².
func QuadraticIn[T vmath.Float](t T) T { return t * t }

// QuadraticOut is -t(t - 2).
func QuadraticOut[T vmath.Float](t T) T { return -t * (t - 2) }

// QuadraticInOut combines QuadraticIn and QuadraticOut at t = 0.5.
func QuadraticInOut[T vmath.Float](t T) T {
	if t < 0.5 {
		return 2 * t * t
	}
	inv := 1 - t
	return 1 - 2*inv*inv
}

// CubicIn is t³.
func CubicIn[T vmath.Float](t T) T { return t * t * t }

// CubicOut is (t - 1)³ + 1.
func CubicOut[T vmath.Float](t T) T {
	inv := t - 1
	return inv*inv*inv + 1
}

// CubicInOut combines CubicIn and CubicOut at t = 0.5.
func CubicInOut[T vmath.Float](t T) T {
	if t < 0.5 {
		return 4 * t * t * t
	}
	inv := 1 - t
	return 1 - 4*inv*inv*inv
}

// QuarticIn is t⁴.
func QuarticIn[T vmath.Float](t T) T {
	tt := t * t
	return tt * tt
}

// QuarticOut is 1 - (1 - t)⁴.
func QuarticOut[T vmath.Float](t T) T {
	inv := 1 - t
	quad := inv * inv
	return 1 - quad*quad
}

// QuarticInOut combines QuarticIn and QuarticOut at t = 0.5.
func QuarticInOut[T vmath.Float](t T) T {
	if t < 0.5 {
		tt := t * t
		return 8 * tt * tt
	}
	inv := 1 - t
	quad := inv * inv
	return 1 - 8*quad*quad
}

// QuinticIn is t⁵.
func QuinticIn[T vmath.Float](t T) T {
	tt := t * t
	return tt * t * tt
}

// QuinticOut is 1 + (t - 1)⁵.
func QuinticOut[T vmath.Float](t T) T {
	inv := t - 1
	quad := inv * inv
	return 1 + quad*inv*quad
}

// QuinticInOut combines QuinticIn and QuinticOut at t = 0.5.
func QuinticInOut[T vmath.Float](t T) T {
	if t < 0.5 {
		tt := t * t
		return 16 * tt * t * tt
	}
	inv := 1 - t
	quad := inv * inv
	return 1 - 16*quad*inv*quad
}

// SineIn is 1 + sin(π/2·(t - 1)).
func SineIn[T vmath.Float](t T) T {
	return 1 + sin(T(math.Pi/2)*(t-1))
}

// SineOut is sin(π/2·t).
func SineOut[T vmath.Float](t T) T {
	return sin(T(math.Pi/2) * t)
}

// SineInOut is (1 - cos(πt))/2.
func SineInOut[T vmath.Float](t T) T {
	return 0.5 * (1 - cos(t*T(math.Pi)))
}

// CircularIn is 1 - √(1 - t²).
func CircularIn[T vmath.Float](t T) T {
	return 1 - vmath.Sqrt(1-t*t)
}

// CircularOut is √((2 - t)t).
func CircularOut[T vmath.Float](t T) T {
	return vmath.Sqrt((2 - t) * t)
}

// CircularInOut combines CircularIn and CircularOut at t = 0.5.
func CircularInOut[T vmath.Float](t T) T {
	if t < 0.5 {
		return 0.5 * (1 - vmath.Sqrt(1-4*t*t))
	}
	return 0.5 * (1 + vmath.Sqrt(-4*t*t+8*t-3))
}

// ExponentialIn is 2^(10(t - 1)), with the t ≤ 0 case returning exactly 0.
// The function has a tiny discontinuity at t = 0 where it jumps from 0 to
// 2⁻¹⁰.
func ExponentialIn[T vmath.Float](t T) T {
	if t <= 0 {
		return 0
	}
	return exp2(10 * (t - 1))
}

// ExponentialOut is 1 - 2^(-10t), with the t ≥ 1 case returning exactly 1.
func ExponentialOut[T vmath.Float](t T) T {
	if t >= 1 {
		return 1
	}
	return 1 - exp2(-10*t)
}

// ExponentialInOut combines ExponentialIn and ExponentialOut at t = 0.5,
// with both endpoints exact.
func ExponentialInOut[T vmath.Float](t T) T {
	if t <= 0 {
		return 0
	}
	if t < 0.5 {
		return 0.5 * exp2(20*t-10)
	}
	if t < 1 {
		return 1 - 0.5*exp2(10-20*t)
	}
	return 1
}

// ElasticIn is 2^(10(t - 1))·sin(13π/2·t). Oscillates and undershoots below
// zero on the way in.
func ElasticIn[T vmath.Float](t T) T {
	return exp2(10*(t-1)) * sin(13*T(math.Pi/2)*t)
}

// ElasticOut is 1 - 2^(-10t)·sin(13π/2·(t + 1)). Oscillates and overshoots
// above one on the way out.
func ElasticOut[T vmath.Float](t T) T {
	return 1 - exp2(-10*t)*sin(13*T(math.Pi/2)*(t+1))
}

// ElasticInOut combines ElasticIn and ElasticOut at t = 0.5.
func ElasticInOut[T vmath.Float](t T) T {
	if t < 0.5 {
		return 0.5 * exp2(10*(2*t-1)) * sin(13*T(math.Pi)*t)
	}
	return 1 - 0.5*exp2(10*(1-2*t))*sin(13*T(math.Pi)*t)
}

// BackIn is t(t² - sin(πt)). Undershoots below zero before settling in. The
// t = 1 case returns exactly 1, which the formula misses by sin(π) rounding.
func BackIn[T vmath.Float](t T) T {
	if t == 1 {
		return 1
	}
	return t * (t*t - sin(T(math.Pi)*t))
}

// BackOut is the reflection of BackIn. Overshoots above one before settling.
// The t = 0 case returns exactly 0.
func BackOut[T vmath.Float](t T) T {
	if t == 0 {
		return 0
	}
	inv := 1 - t
	return 1 - inv*(inv*inv-sin(T(math.Pi)*inv))
}

// BackInOut combines BackIn and BackOut at t = 0.5.
func BackInOut[T vmath.Float](t T) T {
	if t < 0.5 {
		t2 := 2 * t
		return 0.5 * t2 * (t2*t2 - sin(T(math.Pi)*t2))
	}
	inv := 2 - 2*t
	return 1 - 0.5*inv*(inv*inv-sin(T(math.Pi)*inv))
}

// BounceIn is the reflection of BounceOut.
func BounceIn[T vmath.Float](t T) T {
	return 1 - BounceOut(1-t)
}

// BounceOut is a piecewise quadratic with four progressively smaller
// bounces. The t = 1 case returns exactly 1, which the last parabola misses
// by a few ulps; BounceIn and BounceInOut inherit exact endpoints from it.
func BounceOut[T vmath.Float](t T) T {
	if t == 1 {
		return 1
	}
	if t < 4.0/11.0 {
		return (121 * t * t) / 16
	}
	if t < 8.0/11.0 {
		return 363.0/40.0*t*t - 99.0/10.0*t + 17.0/5.0
	}
	if t < 9.0/10.0 {
		return 4356.0/361.0*t*t - 35442.0/1805.0*t + 16061.0/1805.0
	}
	return 54.0/5.0*t*t - 513.0/25.0*t + 268.0/25.0
}

// BounceInOut combines BounceIn and BounceOut at t = 0.5.
func BounceInOut[T vmath.Float](t T) T {
	if t < 0.5 {
		return 0.5 * BounceIn(2*t)
	}
	return 0.5*BounceOut(2*t-1) + 0.5
}
