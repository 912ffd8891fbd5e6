package curve

import "github.com/tphakala/go-anim/vmath"

// Rotation interpolation on spline points. These differ from the generic
// Select, Lerp and Splerp in that they renormalize the result, keeping
// interpolated rotations on the unit circle or hypersphere. All of them
// expect the point values to be normalized and panic otherwise; tangents are
// unrestricted.

// LerpComplex linearly interpolates the rotations of two complex spline
// points and normalizes the result.
func LerpComplex[T vmath.Float](a, b CubicHermiteComplex[T], t T) vmath.Complex[T] {
	return vmath.LerpComplex(a.Point, b.Point, t)
}

// SlerpComplex spherically interpolates the rotations of two complex spline
// points.
func SlerpComplex[T vmath.Float](a, b CubicHermiteComplex[T], t T) vmath.Complex[T] {
	return vmath.SlerpComplex(a.Point, b.Point, t)
}

// SplerpComplex evaluates the spline segment between two complex spline
// points and normalizes the result.
func SplerpComplex[T vmath.Float](a, b CubicHermiteComplex[T], t T) vmath.Complex[T] {
	if !a.Point.IsNormalized() || !b.Point.IsNormalized() {
		panic("curve: complex spline points must be normalized")
	}
	return Splerp(a, b, t).Normalized()
}

// LerpQuaternion linearly interpolates the rotations of two quaternion
// spline points and normalizes the result.
func LerpQuaternion[T vmath.Float](a, b CubicHermiteQuaternion[T], t T) vmath.Quaternion[T] {
	return vmath.LerpQuaternion(a.Point, b.Point, t)
}

// LerpQuaternionShortestPath is like LerpQuaternion but interpolates along
// the shorter of the two possible paths between the rotations.
func LerpQuaternionShortestPath[T vmath.Float](a, b CubicHermiteQuaternion[T], t T) vmath.Quaternion[T] {
	return vmath.LerpQuaternionShortestPath(a.Point, b.Point, t)
}

// SlerpQuaternion spherically interpolates the rotations of two quaternion
// spline points.
func SlerpQuaternion[T vmath.Float](a, b CubicHermiteQuaternion[T], t T) vmath.Quaternion[T] {
	return vmath.SlerpQuaternion(a.Point, b.Point, t)
}

// SlerpQuaternionShortestPath is like SlerpQuaternion but interpolates along
// the shorter of the two possible paths between the rotations.
func SlerpQuaternionShortestPath[T vmath.Float](a, b CubicHermiteQuaternion[T], t T) vmath.Quaternion[T] {
	return vmath.SlerpQuaternionShortestPath(a.Point, b.Point, t)
}

// SplerpQuaternion evaluates the spline segment between two quaternion
// spline points and normalizes the result.
func SplerpQuaternion[T vmath.Float](a, b CubicHermiteQuaternion[T], t T) vmath.Quaternion[T] {
	if !a.Point.IsNormalized() || !b.Point.IsNormalized() {
		panic("curve: quaternion spline points must be normalized")
	}
	return Splerp(a, b, t).Normalized()
}
