package curve

import "github.com/tphakala/go-anim/vmath"

// CubicHermite is a single point of a cubic Hermite spline: the value
// together with the tangent of the incoming and the outgoing spline segment.
// Two adjacent points fully describe one spline segment, evaluated with
// Splerp.
type CubicHermite[V vmath.Vector[V, T], T vmath.Float] struct {
	InTangent  V
	Point      V
	OutTangent V
}

// CubicHermite1D is a scalar spline point.
type CubicHermite1D[T vmath.Float] = CubicHermite[vmath.Scalar[T], T]

// CubicHermite2D is a two-dimensional spline point.
type CubicHermite2D[T vmath.Float] = CubicHermite[vmath.Vec2[T], T]

// CubicHermite3D is a three-dimensional spline point.
type CubicHermite3D[T vmath.Float] = CubicHermite[vmath.Vec3[T], T]

// CubicHermiteComplex is a spline point of two-dimensional rotations.
type CubicHermiteComplex[T vmath.Float] = CubicHermite[vmath.Complex[T], T]

// CubicHermiteQuaternion is a spline point of three-dimensional rotations.
type CubicHermiteQuaternion[T vmath.Float] = CubicHermite[vmath.Quaternion[T], T]

// IdentityComplex returns a complex spline point with an identity rotation
// and zero tangents, satisfying the normalization precondition of LerpComplex
// and SplerpComplex.
func IdentityComplex[T vmath.Float]() CubicHermiteComplex[T] {
	return CubicHermiteComplex[T]{Point: vmath.ComplexIdentity[T]()}
}

// IdentityQuaternion returns a quaternion spline point with an identity
// rotation and zero tangents.
func IdentityQuaternion[T vmath.Float]() CubicHermiteQuaternion[T] {
	return CubicHermiteQuaternion[T]{Point: vmath.QuaternionIdentity[T]()}
}

// FromBezier creates a spline point at the junction of two adjacent cubic
// Bézier segments. Panics if the curves are not cubic or if the last control
// point of a does not match the first control point of b.
func FromBezier[V vmath.Vector[V, T], T vmath.Float](a, b Bezier[V, T]) CubicHermite[V, T] {
	if a.Order() != 3 || b.Order() != 3 {
		panic("curve: spline points can only be constructed from cubic Bézier curves")
	}
	if !a.Point(3).Equal(b.Point(0)) {
		panic("curve: the two Bézier segments are not adjacent")
	}
	return CubicHermite[V, T]{
		InTangent:  a.Point(3).Sub(a.Point(2)).Mul(3),
		Point:      b.Point(0),
		OutTangent: b.Point(1).Sub(b.Point(0)).Mul(3),
	}
}

// BezierFromCubicHermite creates the cubic Bézier segment connecting two
// spline points, the inverse of FromBezier. Evaluating the result matches
// Splerp of the two points.
func BezierFromCubicHermite[V vmath.Vector[V, T], T vmath.Float](a, b CubicHermite[V, T]) Bezier[V, T] {
	third := T(1) / 3
	return NewBezier[V, T](
		a.Point,
		a.Point.Add(a.OutTangent.Mul(third)),
		b.Point.Sub(b.InTangent.Mul(third)),
		b.Point,
	)
}

// Select returns the value of a for t < 1 and the value of b otherwise,
// constant interpolation between two spline points.
func Select[V vmath.Vector[V, T], T vmath.Float](a, b CubicHermite[V, T], t T) V {
	if t < 1 {
		return a.Point
	}
	return b.Point
}

// Lerp linearly interpolates the values of two spline points, ignoring the
// tangents.
func Lerp[V vmath.Vector[V, T], T vmath.Float](a, b CubicHermite[V, T], t T) V {
	return vmath.LerpV(a.Point, b.Point, t)
}

// Splerp evaluates the spline segment between two points at t using the
// cubic Hermite basis. The segment leaves a along its out tangent and enters
// b along its in tangent.
func Splerp[V vmath.Vector[V, T], T vmath.Float](a, b CubicHermite[V, T], t T) V {
	tt := t * t
	ttt := tt * t
	return a.Point.Mul(2*ttt - 3*tt + 1).
		Add(a.OutTangent.Mul(ttt - 2*tt + t)).
		Add(b.Point.Mul(-2*ttt + 3*tt)).
		Add(b.InTangent.Mul(ttt - tt))
}
