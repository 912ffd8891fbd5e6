package vmath

// Vector is the capability set the curve machinery needs from an
// interpolated value type: additive group operations, scaling by the factor
// type and fuzzy equality. Implemented by [Scalar], [Vec2], [Vec3], [Vec4],
// [Complex] and [Quaternion].
type Vector[V any, T Float] interface {
	Add(V) V
	Sub(V) V
	Mul(T) V
	Equal(V) bool
}

// LerpV linearly interpolates between two vector-like values.
func LerpV[V Vector[V, T], T Float](a, b V, t T) V {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Scalar wraps a bare float so that scalar values satisfy [Vector] and can
// be used with the curve types (e.g. a one-dimensional Bézier segment or a
// scalar cubic Hermite spline point).
type Scalar[T Float] struct {
	V T
}

// Add returns s + o.
func (s Scalar[T]) Add(o Scalar[T]) Scalar[T] { return Scalar[T]{s.V + o.V} }

// Sub returns s - o.
func (s Scalar[T]) Sub(o Scalar[T]) Scalar[T] { return Scalar[T]{s.V - o.V} }

// Mul returns s scaled by f.
func (s Scalar[T]) Mul(f T) Scalar[T] { return Scalar[T]{s.V * f} }

// Equal fuzzy-compares two scalars.
func (s Scalar[T]) Equal(o Scalar[T]) bool { return Equal(s.V, o.V) }

// Vec2 is a two-dimensional vector.
type Vec2[T Float] struct {
	X, Y T
}

// Add returns the component-wise sum v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by f.
func (v Vec2[T]) Mul(f T) Vec2[T] { return Vec2[T]{v.X * f, v.Y * f} }

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T { return v.X*o.X + v.Y*o.Y }

// Equal fuzzy-compares two vectors component-wise.
func (v Vec2[T]) Equal(o Vec2[T]) bool {
	return Equal(v.X, o.X) && Equal(v.Y, o.Y)
}

// Vec3 is a three-dimensional vector.
type Vec3[T Float] struct {
	X, Y, Z T
}

// Add returns the component-wise sum v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns v scaled by f.
func (v Vec3[T]) Mul(f T) Vec3[T] { return Vec3[T]{v.X * f, v.Y * f, v.Z * f} }

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Equal fuzzy-compares two vectors component-wise.
func (v Vec3[T]) Equal(o Vec3[T]) bool {
	return Equal(v.X, o.X) && Equal(v.Y, o.Y) && Equal(v.Z, o.Z)
}

// Vec4 is a four-dimensional vector.
type Vec4[T Float] struct {
	X, Y, Z, W T
}

// Add returns the component-wise sum v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns the component-wise difference v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Mul returns v scaled by f.
func (v Vec4[T]) Mul(f T) Vec4[T] {
	return Vec4[T]{v.X * f, v.Y * f, v.Z * f, v.W * f}
}

// Dot returns the dot product of v and o.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Equal fuzzy-compares two vectors component-wise.
func (v Vec4[T]) Equal(o Vec4[T]) bool {
	return Equal(v.X, o.X) && Equal(v.Y, o.Y) && Equal(v.Z, o.Z) && Equal(v.W, o.W)
}
