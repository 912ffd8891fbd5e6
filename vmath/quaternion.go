package vmath

import "math"

// Quaternion represents a 3D rotation as a vector part V and a scalar part
// S. A rotation by angle φ around a unit axis n is (n·sin(φ/2), cos(φ/2)).
type Quaternion[T Float] struct {
	V Vec3[T]
	S T
}

// QuaternionIdentity returns the identity rotation ((0, 0, 0), 1).
func QuaternionIdentity[T Float]() Quaternion[T] {
	return Quaternion[T]{S: 1}
}

// Add returns the component-wise sum q + o.
func (q Quaternion[T]) Add(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.V.Add(o.V), q.S + o.S}
}

// Sub returns the component-wise difference q - o.
func (q Quaternion[T]) Sub(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.V.Sub(o.V), q.S - o.S}
}

// Mul returns q scaled by f.
func (q Quaternion[T]) Mul(f T) Quaternion[T] {
	return Quaternion[T]{q.V.Mul(f), q.S * f}
}

// Dot returns the four-component dot product of q and o.
func (q Quaternion[T]) Dot(o Quaternion[T]) T {
	return q.V.Dot(o.V) + q.S*o.S
}

// Length returns the magnitude |q|.
func (q Quaternion[T]) Length() T {
	return Sqrt(q.Dot(q))
}

// IsNormalized reports whether q has unit length, within twice the fuzzy
// comparison epsilon.
func (q Quaternion[T]) IsNormalized() bool {
	return Abs(q.Dot(q)-1) < 2*Epsilon[T]()
}

// Normalized returns the unit quaternion in the direction of q.
func (q Quaternion[T]) Normalized() Quaternion[T] {
	return q.Mul(1 / q.Length())
}

// Equal fuzzy-compares two quaternions component-wise.
func (q Quaternion[T]) Equal(o Quaternion[T]) bool {
	return q.V.Equal(o.V) && Equal(q.S, o.S)
}

// LerpQuaternion linearly interpolates the two rotations and renormalizes
// the result. Unlike [SlerpQuaternion] the angular velocity is not constant
// over t. Panics if a or b is not normalized.
func LerpQuaternion[T Float](a, b Quaternion[T], t T) Quaternion[T] {
	if !a.IsNormalized() || !b.IsNormalized() {
		panic("vmath: quaternions must be normalized")
	}
	return a.Mul(1 - t).Add(b.Mul(t)).Normalized()
}

// LerpQuaternionShortestPath is like [LerpQuaternion] but always takes the
// shorter of the two possible angular paths (q and -q describe the same
// rotation). Panics if a or b is not normalized.
func LerpQuaternionShortestPath[T Float](a, b Quaternion[T], t T) Quaternion[T] {
	if a.Dot(b) < 0 {
		b = b.Mul(-1)
	}
	return LerpQuaternion(a, b, t)
}

// SlerpQuaternion spherically interpolates the two rotations, moving at
// constant angular velocity along the great-circle arc between them. Panics
// if a or b is not normalized.
func SlerpQuaternion[T Float](a, b Quaternion[T], t T) Quaternion[T] {
	if !a.IsNormalized() || !b.IsNormalized() {
		panic("vmath: quaternions must be normalized")
	}

	cosHalfAngle := a.Dot(b)

	// Identical (or opposite) rotations, avoid division by sin(0)
	if Abs(cosHalfAngle) >= 1 {
		return a
	}

	angle := T(math.Acos(float64(cosHalfAngle)))
	sin := func(x T) T { return T(math.Sin(float64(x))) }
	return a.Mul(sin((1 - t) * angle)).Add(b.Mul(sin(t * angle))).Mul(1 / sin(angle))
}

// SlerpQuaternionShortestPath is like [SlerpQuaternion] but always takes
// the shorter of the two possible angular paths. Panics if a or b is not
// normalized.
func SlerpQuaternionShortestPath[T Float](a, b Quaternion[T], t T) Quaternion[T] {
	if a.Dot(b) < 0 {
		b = b.Mul(-1)
	}
	return SlerpQuaternion(a, b, t)
}
