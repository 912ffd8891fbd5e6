package vmath

import "math"

// Complex is a complex number used to represent 2D rotations. A rotation by
// angle φ is the unit complex number (cos φ, sin φ).
type Complex[T Float] struct {
	Re, Im T
}

// ComplexIdentity returns the multiplicative identity (1, 0), i.e. a zero
// rotation.
func ComplexIdentity[T Float]() Complex[T] {
	return Complex[T]{Re: 1}
}

// Add returns the component-wise sum c + o.
func (c Complex[T]) Add(o Complex[T]) Complex[T] {
	return Complex[T]{c.Re + o.Re, c.Im + o.Im}
}

// Sub returns the component-wise difference c - o.
func (c Complex[T]) Sub(o Complex[T]) Complex[T] {
	return Complex[T]{c.Re - o.Re, c.Im - o.Im}
}

// Mul returns c scaled by f.
func (c Complex[T]) Mul(f T) Complex[T] {
	return Complex[T]{c.Re * f, c.Im * f}
}

// Dot returns the dot product of c and o treated as 2D vectors. For two unit
// complex numbers this is the cosine of the angle between them.
func (c Complex[T]) Dot(o Complex[T]) T {
	return c.Re*o.Re + c.Im*o.Im
}

// Length returns the magnitude |c|.
func (c Complex[T]) Length() T {
	return Sqrt(c.Dot(c))
}

// IsNormalized reports whether c has unit length, within twice the fuzzy
// comparison epsilon.
func (c Complex[T]) IsNormalized() bool {
	return Abs(c.Dot(c)-1) < 2*Epsilon[T]()
}

// Normalized returns the unit complex number in the direction of c.
func (c Complex[T]) Normalized() Complex[T] {
	return c.Mul(1 / c.Length())
}

// Equal fuzzy-compares two complex numbers component-wise.
func (c Complex[T]) Equal(o Complex[T]) bool {
	return Equal(c.Re, o.Re) && Equal(c.Im, o.Im)
}

// LerpComplex linearly interpolates the two rotations and renormalizes the
// result. Unlike [SlerpComplex] the angular velocity is not constant over t.
// Panics if a or b is not normalized.
func LerpComplex[T Float](a, b Complex[T], t T) Complex[T] {
	if !a.IsNormalized() || !b.IsNormalized() {
		panic("vmath: complex numbers must be normalized")
	}
	return a.Mul(1 - t).Add(b.Mul(t)).Normalized()
}

// SlerpComplex spherically interpolates the two rotations, moving at
// constant angular velocity along the shorter unit-circle arc. Panics if a
// or b is not normalized.
func SlerpComplex[T Float](a, b Complex[T], t T) Complex[T] {
	if !a.IsNormalized() || !b.IsNormalized() {
		panic("vmath: complex numbers must be normalized")
	}

	cosAngle := a.Dot(b)

	// Identical (or opposite) rotations, avoid division by sin(0)
	if Abs(cosAngle) >= 1 {
		return a
	}

	angle := T(math.Acos(float64(cosAngle)))
	sin := func(x T) T { return T(math.Sin(float64(x))) }
	return a.Mul(sin((1 - t) * angle)).Add(b.Mul(sin(t * angle))).Mul(1 / sin(angle))
}
