package easing

import (
	"github.com/tphakala/go-anim/curve"
	"github.com/tphakala/go-anim/vmath"
)

// Cubic Bézier equivalents of the polynomial easing functions, with control
// points going from (0, 0) to (1, 1). Evaluating the curve at parameter u
// gives a point whose y coordinate is the eased value; note that for the
// non-symmetric curves the x coordinate does not equal u, so the curves match
// the easing functions as paths, exactly for the quadratic and cubic
// variants and approximately for the InOut ones.

func bezier2D[T vmath.Float](x1, y1, x2, y2 T) curve.CubicBezier2D[T] {
	return curve.NewBezier[vmath.Vec2[T], T](
		vmath.Vec2[T]{},
		vmath.Vec2[T]{X: x1, Y: y1},
		vmath.Vec2[T]{X: x2, Y: y2},
		vmath.Vec2[T]{X: 1, Y: 1},
	)
}

// LinearBezier is the exact Bézier representation of Linear.
func LinearBezier[T vmath.Float]() curve.CubicBezier2D[T] {
	third := T(1) / 3
	return bezier2D(third, third, 2*third, 2*third)
}

// SmoothstepBezier is the exact Bézier representation of Smoothstep on
// [0, 1].
func SmoothstepBezier[T vmath.Float]() curve.CubicBezier2D[T] {
	third := T(1) / 3
	return bezier2D(third, 0, 2*third, 1)
}

// QuadraticInBezier is the exact Bézier representation of QuadraticIn.
func QuadraticInBezier[T vmath.Float]() curve.CubicBezier2D[T] {
	third := T(1) / 3
	return bezier2D(third, 0, 2*third, third)
}

// QuadraticOutBezier is the exact Bézier representation of QuadraticOut.
func QuadraticOutBezier[T vmath.Float]() curve.CubicBezier2D[T] {
	third := T(1) / 3
	return bezier2D(third, 2*third, 2*third, 1)
}

// QuadraticInOutBezier approximates QuadraticInOut. A cubic curve cannot
// represent the piecewise quadratic exactly.
func QuadraticInOutBezier[T vmath.Float]() curve.CubicBezier2D[T] {
	return bezier2D[T](0.455, 0, 0.545, 1)
}

// CubicInBezier is the exact Bézier representation of CubicIn.
func CubicInBezier[T vmath.Float]() curve.CubicBezier2D[T] {
	third := T(1) / 3
	return bezier2D(third, 0, 2*third, 0)
}

// CubicOutBezier is the exact Bézier representation of CubicOut.
func CubicOutBezier[T vmath.Float]() curve.CubicBezier2D[T] {
	third := T(1) / 3
	return bezier2D(third, 1, 2*third, 1)
}

// CubicInOutBezier approximates CubicInOut.
func CubicInOutBezier[T vmath.Float]() curve.CubicBezier2D[T] {
	return bezier2D[T](0.645, 0, 0.355, 1)
}
