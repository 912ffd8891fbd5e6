package anim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-anim/curve"
	"github.com/tphakala/go-anim/vmath"
)

func TestInterpolationString(t *testing.T) {
	assert.Equal(t, "Constant", InterpolationConstant.String())
	assert.Equal(t, "Linear", InterpolationLinear.String())
	assert.Equal(t, "Spline", InterpolationSpline.String())
	assert.Equal(t, "Custom", InterpolationCustom.String())
	assert.Equal(t, "Interpolation(0xde)", Interpolation(0xde).String())
}

func TestExtrapolationString(t *testing.T) {
	assert.Equal(t, "DefaultConstructed", ExtrapolationDefaultConstructed.String())
	assert.Equal(t, "Constant", ExtrapolationConstant.String())
	assert.Equal(t, "Extrapolated", ExtrapolationExtrapolated.String())
	assert.Equal(t, "Extrapolation(0xde)", Extrapolation(0xde).String())
}

func TestInterpolatorFor_Scalar(t *testing.T) {
	assert.Equal(t, 0.3,
		InterpolatorFor[float64, float64, float64](InterpolationConstant)(0.3, -0.3, 0.5))
	assert.InDelta(t, 0.0,
		InterpolatorFor[float64, float64, float64](InterpolationLinear)(0.3, -0.3, 0.5), 1e-15)

	assert.Panics(t, func() { InterpolatorFor[float64, float64, float64](InterpolationSpline) })
	assert.Panics(t, func() { InterpolatorFor[float64, float64, float64](InterpolationCustom) })
	assert.Panics(t, func() { InterpolatorFor[float64, float64, float64](Interpolation(0xde)) })
}

func TestInterpolatorFor_Vector(t *testing.T) {
	a := vmath.Vec2[float64]{X: 0.3, Y: 0.5}
	b := vmath.Vec2[float64]{X: -0.3, Y: -1.5}

	assert.Equal(t, a,
		InterpolatorFor[vmath.Vec2[float64], vmath.Vec2[float64], float64](InterpolationConstant)(a, b, 0.5))
	got := InterpolatorFor[vmath.Vec2[float64], vmath.Vec2[float64], float64](InterpolationLinear)(a, b, 0.5)
	assert.InDelta(t, 0.0, got.X, 1e-15)
	assert.InDelta(t, -0.5, got.Y, 1e-15)

	assert.Panics(t, func() {
		InterpolatorFor[vmath.Vec2[float64], vmath.Vec2[float64], float64](InterpolationSpline)
	})
}

func TestInterpolatorFor_Bool(t *testing.T) {
	assert.Equal(t, true,
		InterpolatorFor[bool, bool, float64](InterpolationConstant)(true, false, 0.5))
	// No linear interpolation for booleans, Linear degrades to select.
	assert.Equal(t, true,
		InterpolatorFor[bool, bool, float64](InterpolationLinear)(true, false, 0.5))
	assert.Equal(t, false,
		InterpolatorFor[bool, bool, float64](InterpolationLinear)(true, false, 1.0))

	assert.Panics(t, func() { InterpolatorFor[bool, bool, float64](InterpolationCustom) })
}

func TestInterpolatorFor_BitVector(t *testing.T) {
	a := vmath.NewBitVector(false, true, false, true)
	b := vmath.NewBitVector(true, false, true, false)

	assert.Equal(t, a,
		InterpolatorFor[vmath.BitVector, vmath.BitVector, float64](InterpolationConstant)(a, b, 0.5))
	assert.Equal(t, a,
		InterpolatorFor[vmath.BitVector, vmath.BitVector, float64](InterpolationLinear)(a, b, 0.5))

	assert.Panics(t, func() {
		InterpolatorFor[vmath.BitVector, vmath.BitVector, float64](InterpolationSpline)
	})
}

func complexRotation(deg float64) vmath.Complex[float64] {
	rad := deg * math.Pi / 180
	return vmath.Complex[float64]{Re: math.Cos(rad), Im: math.Sin(rad)}
}

func quaternionRotationX(deg float64) vmath.Quaternion[float64] {
	rad := deg * math.Pi / 180
	return vmath.Quaternion[float64]{
		V: vmath.Vec3[float64]{X: math.Sin(rad / 2)},
		S: math.Cos(rad / 2),
	}
}

func TestInterpolatorFor_Complex(t *testing.T) {
	a := complexRotation(25.0)
	b := complexRotation(75.0)

	got := InterpolatorFor[vmath.Complex[float64], vmath.Complex[float64], float64](InterpolationConstant)(a, b, 0.5)
	assert.True(t, got.Equal(a))

	// Linear maps to slerp for rotations: halfway between 25° and 75° is
	// exactly 50°.
	got = InterpolatorFor[vmath.Complex[float64], vmath.Complex[float64], float64](InterpolationLinear)(a, b, 0.5)
	assert.True(t, got.Equal(complexRotation(50.0)))

	assert.Panics(t, func() {
		InterpolatorFor[vmath.Complex[float64], vmath.Complex[float64], float64](InterpolationCustom)
	})
}

func TestInterpolatorFor_Quaternion(t *testing.T) {
	a := quaternionRotationX(25.0)
	b := quaternionRotationX(75.0)

	got := InterpolatorFor[vmath.Quaternion[float64], vmath.Quaternion[float64], float64](InterpolationConstant)(a, b, 0.5)
	assert.True(t, got.Equal(a))

	got = InterpolatorFor[vmath.Quaternion[float64], vmath.Quaternion[float64], float64](InterpolationLinear)(a, b, 0.5)
	assert.True(t, got.Equal(quaternionRotationX(50.0)))

	assert.Panics(t, func() {
		InterpolatorFor[vmath.Quaternion[float64], vmath.Quaternion[float64], float64](InterpolationSpline)
	})
}

// TestInterpolatorFor_QuaternionShortestPath tests that Linear deduces the
// shortest-path variant: interpolating towards the negated equivalent
// rotation must not swing around the sphere.
func TestInterpolatorFor_QuaternionShortestPath(t *testing.T) {
	a := vmath.QuaternionIdentity[float64]()
	b := vmath.Quaternion[float64]{S: -1.0}

	got := InterpolatorFor[vmath.Quaternion[float64], vmath.Quaternion[float64], float64](InterpolationLinear)(a, b, 0.5)
	assert.True(t, got.Equal(a))
}

func TestInterpolatorFor_CubicHermiteScalar(t *testing.T) {
	a := curve.CubicHermite1D[float64]{
		InTangent:  vmath.Scalar[float64]{V: 2.0},
		Point:      vmath.Scalar[float64]{V: 3.0},
		OutTangent: vmath.Scalar[float64]{V: -1.0},
	}
	b := curve.CubicHermite1D[float64]{
		InTangent:  vmath.Scalar[float64]{V: 5.0},
		Point:      vmath.Scalar[float64]{V: -2.0},
		OutTangent: vmath.Scalar[float64]{V: 1.5},
	}

	type hermite = curve.CubicHermite1D[float64]
	type result = vmath.Scalar[float64]

	assert.InDelta(t, 3.0, InterpolatorFor[hermite, result, float64](InterpolationConstant)(a, b, 0.8).V, 1e-15)
	assert.InDelta(t, -1.0, InterpolatorFor[hermite, result, float64](InterpolationLinear)(a, b, 0.8).V, 1e-12)
	assert.InDelta(t, -2.152, InterpolatorFor[hermite, result, float64](InterpolationSpline)(a, b, 0.8).V, 1e-12)

	assert.Panics(t, func() { InterpolatorFor[hermite, result, float64](InterpolationCustom) })
}

func TestInterpolatorFor_CubicHermiteVector(t *testing.T) {
	a := curve.CubicHermite2D[float64]{
		InTangent:  vmath.Vec2[float64]{X: 2.0, Y: 1.5},
		Point:      vmath.Vec2[float64]{X: 3.0, Y: 0.1},
		OutTangent: vmath.Vec2[float64]{X: -1.0, Y: 0.0},
	}
	b := curve.CubicHermite2D[float64]{
		InTangent:  vmath.Vec2[float64]{X: 5.0, Y: 0.3},
		Point:      vmath.Vec2[float64]{X: -2.0, Y: 1.1},
		OutTangent: vmath.Vec2[float64]{X: 1.5, Y: 0.3},
	}

	type hermite = curve.CubicHermite2D[float64]
	type result = vmath.Vec2[float64]

	constant := InterpolatorFor[hermite, result, float64](InterpolationConstant)(a, b, 0.8)
	assert.True(t, constant.Equal(vmath.Vec2[float64]{X: 3.0, Y: 0.1}))

	linear := InterpolatorFor[hermite, result, float64](InterpolationLinear)(a, b, 0.8)
	assert.InDelta(t, -1.0, linear.X, 1e-12)
	assert.InDelta(t, 0.9, linear.Y, 1e-12)

	spline := InterpolatorFor[hermite, result, float64](InterpolationSpline)(a, b, 0.8)
	assert.InDelta(t, -2.152, spline.X, 1e-12)
	assert.InDelta(t, 0.9576, spline.Y, 1e-12)
}

func TestInterpolatorFor_CubicHermiteComplex(t *testing.T) {
	a := curve.CubicHermiteComplex[float32]{
		InTangent:  vmath.Complex[float32]{Re: 2.0, Im: 1.5},
		Point:      vmath.Complex[float32]{Re: 0.999445, Im: 0.0333148},
		OutTangent: vmath.Complex[float32]{Re: -1.0, Im: 0.0},
	}
	b := curve.CubicHermiteComplex[float32]{
		InTangent:  vmath.Complex[float32]{Re: 5.0, Im: 0.3},
		Point:      vmath.Complex[float32]{Re: -0.876216, Im: 0.481919},
		OutTangent: vmath.Complex[float32]{Re: 1.5, Im: 0.3},
	}

	type hermite = curve.CubicHermiteComplex[float32]
	type result = vmath.Complex[float32]

	constant := InterpolatorFor[hermite, result, float32](InterpolationConstant)(a, b, 0.8)
	assert.True(t, constant.Equal(a.Point))

	linear := InterpolatorFor[hermite, result, float32](InterpolationLinear)(a, b, 0.8)
	assert.InDelta(t, -0.78747, linear.Re, 1e-4)
	assert.InDelta(t, 0.616353, linear.Im, 1e-4)

	spline := InterpolatorFor[hermite, result, float32](InterpolationSpline)(a, b, 0.8)
	assert.InDelta(t, -0.95958, spline.Re, 1e-4)
	assert.InDelta(t, 0.281435, spline.Im, 1e-4)
}

func TestInterpolatorFor_CubicHermiteQuaternion(t *testing.T) {
	a := curve.CubicHermiteQuaternion[float32]{
		InTangent:  vmath.Quaternion[float32]{V: vmath.Vec3[float32]{X: 2.0, Y: 1.5, Z: 0.3}, S: 1.1},
		Point:      vmath.Quaternion[float32]{V: vmath.Vec3[float32]{X: 0.780076, Y: 0.0260025, Z: 0.598059}, S: 0.182018},
		OutTangent: vmath.Quaternion[float32]{V: vmath.Vec3[float32]{X: -1.0, Y: 0.0, Z: 0.3}, S: 0.4},
	}
	b := curve.CubicHermiteQuaternion[float32]{
		InTangent:  vmath.Quaternion[float32]{V: vmath.Vec3[float32]{X: 5.0, Y: 0.3, Z: 1.1}, S: 0.5},
		Point:      vmath.Quaternion[float32]{V: vmath.Vec3[float32]{X: -0.711568, Y: 0.391362, Z: 0.355784}, S: 0.462519},
		OutTangent: vmath.Quaternion[float32]{V: vmath.Vec3[float32]{X: 1.5, Y: 0.3, Z: 17.0}, S: -7.0},
	}

	type hermite = curve.CubicHermiteQuaternion[float32]
	type result = vmath.Quaternion[float32]

	constant := InterpolatorFor[hermite, result, float32](InterpolationConstant)(a, b, 0.8)
	assert.True(t, constant.Equal(a.Point))

	linear := InterpolatorFor[hermite, result, float32](InterpolationLinear)(a, b, 0.8)
	assert.InDelta(t, -0.533196, linear.V.X, 1e-4)
	assert.InDelta(t, 0.410685, linear.V.Y, 1e-4)
	assert.InDelta(t, 0.521583, linear.V.Z, 1e-4)
	assert.InDelta(t, 0.524396, linear.S, 1e-4)

	spline := InterpolatorFor[hermite, result, float32](InterpolationSpline)(a, b, 0.8)
	assert.InDelta(t, -0.911408, spline.V.X, 1e-4)
	assert.InDelta(t, 0.23368, spline.V.Y, 1e-4)
	assert.InDelta(t, 0.185318, spline.V.Z, 1e-4)
	assert.InDelta(t, 0.283524, spline.S, 1e-4)
}

// TestInterpolatorFor_MismatchedResult tests that asking for a result type
// the value type can't produce panics instead of returning a broken
// function.
func TestInterpolatorFor_MismatchedResult(t *testing.T) {
	assert.Panics(t, func() { InterpolatorFor[float64, bool, float64](InterpolationLinear) })
	assert.Panics(t, func() {
		InterpolatorFor[curve.CubicHermite1D[float64], float64, float64](InterpolationSpline)
	})
}
