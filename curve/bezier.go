// Package curve implements Bézier curves and cubic Hermite splines together
// with the interpolation functions operating on their control points.
//
// A Bézier curve stores its control points explicitly and is evaluated with
// the De Casteljau algorithm, which also yields numerically stable curve
// subdivision. Cubic Hermite points store an in tangent, a point and an out
// tangent and are the preferred keyframe representation for spline
// interpolation. The two representations convert losslessly into each other
// via FromBezier and BezierFromCubicHermite.
//
// The Select, Lerp and Splerp functions interpolate between two spline
// points. Rotation-specific variants for complex numbers and quaternions
// renormalize their result so that repeated interpolation does not drift away
// from the unit circle or hypersphere.
package curve

import "github.com/tphakala/go-anim/vmath"

// Bezier is a Bézier curve of arbitrary order with control points of vector
// type V. A curve of order n has n+1 control points; order 1 is a line
// segment, order 3 the classic cubic curve.
type Bezier[V vmath.Vector[V, T], T vmath.Float] struct {
	points []V
}

// NewBezier creates a Bézier curve from the given control points. Panics if
// fewer than two points are given.
func NewBezier[V vmath.Vector[V, T], T vmath.Float](points ...V) Bezier[V, T] {
	if len(points) < 2 {
		panic("curve: a Bézier curve needs at least two control points")
	}
	p := make([]V, len(points))
	copy(p, points)
	return Bezier[V, T]{points: p}
}

// Order returns the curve order, one less than the control point count.
func (b Bezier[V, T]) Order() int { return len(b.points) - 1 }

// Point returns the i-th control point.
func (b Bezier[V, T]) Point(i int) V { return b.points[i] }

// Value evaluates the curve at t using the De Casteljau algorithm. The
// parameter is typically in [0, 1]; values outside extrapolate.
func (b Bezier[V, T]) Value(t T) V {
	iter := make([]V, len(b.points))
	copy(iter, b.points)
	for r := len(iter) - 1; r > 0; r-- {
		for i := 0; i < r; i++ {
			iter[i] = iter[i].Mul(1 - t).Add(iter[i+1].Mul(t))
		}
	}
	return iter[0]
}

// Subdivide splits the curve at t into two curves of the same order. The
// first covers the original [0, t] range, the second [t, 1], and they share
// the split point.
func (b Bezier[V, T]) Subdivide(t T) (Bezier[V, T], Bezier[V, T]) {
	n := len(b.points)
	iter := make([]V, n)
	copy(iter, b.points)
	left := make([]V, n)
	right := make([]V, n)
	left[0] = iter[0]
	right[n-1] = iter[n-1]

	// The rows of the De Casteljau triangle provide the control points of
	// both halves: the first entry of each row belongs to the left curve,
	// the last entry to the right one.
	for r := n - 1; r > 0; r-- {
		for i := 0; i < r; i++ {
			iter[i] = iter[i].Mul(1 - t).Add(iter[i+1].Mul(t))
		}
		left[n-r] = iter[0]
		right[r-1] = iter[r-1]
	}
	return Bezier[V, T]{points: left}, Bezier[V, T]{points: right}
}

// Equal compares two curves for fuzzy equality. Curves of different order
// are never equal.
func (b Bezier[V, T]) Equal(other Bezier[V, T]) bool {
	if len(b.points) != len(other.points) {
		return false
	}
	for i, p := range b.points {
		if !p.Equal(other.points[i]) {
			return false
		}
	}
	return true
}

// QuadraticBezier2D is a Bézier curve of order 2 in two dimensions.
type QuadraticBezier2D[T vmath.Float] = Bezier[vmath.Vec2[T], T]

// CubicBezier1D is a Bézier curve of order 3 in one dimension.
type CubicBezier1D[T vmath.Float] = Bezier[vmath.Scalar[T], T]

// CubicBezier2D is a Bézier curve of order 3 in two dimensions.
type CubicBezier2D[T vmath.Float] = Bezier[vmath.Vec2[T], T]

// CubicBezier3D is a Bézier curve of order 3 in three dimensions.
type CubicBezier3D[T vmath.Float] = Bezier[vmath.Vec3[T], T]
