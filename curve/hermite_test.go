package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-anim/vmath"
)

func scalarPoints() (CubicHermite1D[float64], CubicHermite1D[float64]) {
	a := CubicHermite1D[float64]{
		InTangent:  vmath.Scalar[float64]{V: 2.0},
		Point:      vmath.Scalar[float64]{V: 3.0},
		OutTangent: vmath.Scalar[float64]{V: -1.0},
	}
	b := CubicHermite1D[float64]{
		InTangent:  vmath.Scalar[float64]{V: 5.0},
		Point:      vmath.Scalar[float64]{V: -2.0},
		OutTangent: vmath.Scalar[float64]{V: 1.5},
	}
	return a, b
}

func vectorPoints() (CubicHermite2D[float64], CubicHermite2D[float64]) {
	a := CubicHermite2D[float64]{
		InTangent:  vmath.Vec2[float64]{X: 2.0, Y: 1.5},
		Point:      vmath.Vec2[float64]{X: 3.0, Y: 0.1},
		OutTangent: vmath.Vec2[float64]{X: -1.0, Y: 0.0},
	}
	b := CubicHermite2D[float64]{
		InTangent:  vmath.Vec2[float64]{X: 5.0, Y: 0.3},
		Point:      vmath.Vec2[float64]{X: -2.0, Y: 1.1},
		OutTangent: vmath.Vec2[float64]{X: 1.5, Y: 0.3},
	}
	return a, b
}

func TestFromBezier(t *testing.T) {
	bezier := cubicFixture()
	zero := vmath.Vec2[float64]{}

	before := NewBezier[vmath.Vec2[float64], float64](zero, zero, zero, bezier.Point(0))
	after := NewBezier[vmath.Vec2[float64], float64](bezier.Point(3), zero, zero, zero)

	a := FromBezier(before, bezier)
	b := FromBezier(bezier, after)

	assertVec2Near(t, bezier.Point(0), a.Point, 1e-12)
	assertVec2Near(t, vmath.Vec2[float64]{X: 30.0, Y: 45.0}, a.OutTangent, 1e-12)
	assertVec2Near(t, vmath.Vec2[float64]{X: -45.0, Y: -72.0}, b.InTangent, 1e-12)
	assertVec2Near(t, bezier.Point(3), b.Point, 1e-12)
}

func TestFromBezier_NotAdjacent(t *testing.T) {
	bezier := cubicFixture()
	zero := vmath.Vec2[float64]{}
	detached := NewBezier[vmath.Vec2[float64], float64](
		vmath.Vec2[float64]{X: 1.0, Y: 1.0}, zero, zero, zero)

	assert.Panics(t, func() { FromBezier(bezier, detached) })
}

func TestFromBezier_NotCubic(t *testing.T) {
	zero := vmath.Vec2[float64]{}
	line := NewBezier[vmath.Vec2[float64], float64](zero, zero)

	assert.Panics(t, func() { FromBezier(line, cubicFixture()) })
}

// TestBezierFromCubicHermite tests the round trip Bézier → spline points →
// Bézier.
func TestBezierFromCubicHermite(t *testing.T) {
	bezier := cubicFixture()
	zero := vmath.Vec2[float64]{}
	a := FromBezier(NewBezier[vmath.Vec2[float64], float64](zero, zero, zero, bezier.Point(0)), bezier)
	b := FromBezier(bezier, NewBezier[vmath.Vec2[float64], float64](bezier.Point(3), zero, zero, zero))

	back := BezierFromCubicHermite(a, b)
	for i := 0; i < 4; i++ {
		assertVec2Near(t, bezier.Point(i), back.Point(i), 1e-12)
	}
}

func TestSelect_Scalar(t *testing.T) {
	a, b := scalarPoints()

	assert.Equal(t, 3.0, Select(a, b, 0.0).V)
	assert.Equal(t, 3.0, Select(a, b, 0.8).V)
	assert.Equal(t, -2.0, Select(a, b, 1.0).V)
}

func TestSelect_Vector(t *testing.T) {
	a, b := vectorPoints()

	assert.Equal(t, vmath.Vec2[float64]{X: 3.0, Y: 0.1}, Select(a, b, 0.0))
	assert.Equal(t, vmath.Vec2[float64]{X: 3.0, Y: 0.1}, Select(a, b, 0.8))
	assert.Equal(t, vmath.Vec2[float64]{X: -2.0, Y: 1.1}, Select(a, b, 1.0))
}

func TestLerp_Scalar(t *testing.T) {
	a, b := scalarPoints()

	assert.InDelta(t, 3.0, Lerp(a, b, 0.0).V, 1e-15)
	assert.InDelta(t, -2.0, Lerp(a, b, 1.0).V, 1e-15)
	assert.InDelta(t, 1.25, Lerp(a, b, 0.35).V, 1e-15)
	assert.InDelta(t, -1.0, Lerp(a, b, 0.8).V, 1e-15)
}

func TestLerp_Vector(t *testing.T) {
	a, b := vectorPoints()

	assertVec2Near(t, vmath.Vec2[float64]{X: 3.0, Y: 0.1}, Lerp(a, b, 0.0), 1e-15)
	assertVec2Near(t, vmath.Vec2[float64]{X: -2.0, Y: 1.1}, Lerp(a, b, 1.0), 1e-15)
	assertVec2Near(t, vmath.Vec2[float64]{X: 1.25, Y: 0.45}, Lerp(a, b, 0.35), 1e-15)
	assertVec2Near(t, vmath.Vec2[float64]{X: -1.0, Y: 0.9}, Lerp(a, b, 0.8), 1e-15)
}

func TestSplerp_Scalar(t *testing.T) {
	a, b := scalarPoints()

	assert.InDelta(t, 3.0, Splerp(a, b, 0.0).V, 1e-15)
	assert.InDelta(t, -2.0, Splerp(a, b, 1.0).V, 1e-15)
	assert.InDelta(t, 1.04525, Splerp(a, b, 0.35).V, 1e-12)
	assert.InDelta(t, -2.152, Splerp(a, b, 0.8).V, 1e-12)
}

func TestSplerp_Vector(t *testing.T) {
	a, b := vectorPoints()

	assertVec2Near(t, vmath.Vec2[float64]{X: 3.0, Y: 0.1}, Splerp(a, b, 0.0), 1e-15)
	assertVec2Near(t, vmath.Vec2[float64]{X: -2.0, Y: 1.1}, Splerp(a, b, 1.0), 1e-15)
	assertVec2Near(t, vmath.Vec2[float64]{X: 1.04525, Y: 0.357862}, Splerp(a, b, 0.35), 1e-6)
	assertVec2Near(t, vmath.Vec2[float64]{X: -2.152, Y: 0.9576}, Splerp(a, b, 0.8), 1e-6)
}

// TestSplerp_ReproducesBezier tests that spline points constructed from a
// cubic Bézier segment evaluate to the same curve.
func TestSplerp_ReproducesBezier(t *testing.T) {
	bezier := cubicFixture()
	zero := vmath.Vec2[float64]{}
	a := FromBezier(NewBezier[vmath.Vec2[float64], float64](zero, zero, zero, bezier.Point(0)), bezier)
	b := FromBezier(bezier, NewBezier[vmath.Vec2[float64], float64](bezier.Point(3), zero, zero, zero))

	for _, u := range []float64{0.0, 0.2, 0.5, 1.0} {
		assertVec2Near(t, bezier.Value(u), Splerp(a, b, u), 1e-12)
	}
}
