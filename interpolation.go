package anim

import (
	"fmt"

	"github.com/tphakala/go-anim/curve"
	"github.com/tphakala/go-anim/vmath"
)

// Interpolation describes the general desired way to interpolate keyframes.
// The concrete interpolator function is resolved per value type with
// [InterpolatorFor] or supplied by the caller.
type Interpolation uint8

const (
	// InterpolationConstant picks the nearer keyframe value, producing
	// stepped animation.
	InterpolationConstant Interpolation = iota

	// InterpolationLinear blends between keyframe values. For rotation
	// types this is spherical linear interpolation.
	InterpolationLinear

	// InterpolationSpline evaluates the cubic Hermite segment between two
	// spline points.
	InterpolationSpline

	// InterpolationCustom marks a track with a user-supplied interpolator
	// function. No interpolator can be deduced for it.
	InterpolationCustom
)

// String implements fmt.Stringer.
func (i Interpolation) String() string {
	switch i {
	case InterpolationConstant:
		return "Constant"
	case InterpolationLinear:
		return "Linear"
	case InterpolationSpline:
		return "Spline"
	case InterpolationCustom:
		return "Custom"
	}
	return fmt.Sprintf("Interpolation(0x%x)", uint8(i))
}

// Extrapolation describes the value returned for frames outside the keyframe
// range, i.e. frames lower than the first key or larger or equal to the last
// key.
type Extrapolation uint8

const (
	// ExtrapolationDefaultConstructed returns the result type's default
	// value, which is the zero value except for rotation types, where it is
	// the identity rotation.
	ExtrapolationDefaultConstructed Extrapolation = iota

	// ExtrapolationConstant clamps the frame to the nearest boundary key
	// before interpolating, holding the first or last value.
	ExtrapolationConstant

	// ExtrapolationExtrapolated interpolates using the boundary keyframe
	// pair with an unclamped factor.
	ExtrapolationExtrapolated
)

// String implements fmt.Stringer.
func (e Extrapolation) String() string {
	switch e {
	case ExtrapolationDefaultConstructed:
		return "DefaultConstructed"
	case ExtrapolationConstant:
		return "Constant"
	case ExtrapolationExtrapolated:
		return "Extrapolated"
	}
	return fmt.Sprintf("Extrapolation(0x%x)", uint8(e))
}

// Interpolator blends between two keyframe values of type V at factor t,
// producing a result of type R. For raw values V and R coincide; for cubic
// Hermite spline points V carries the tangents and R is the bare value type.
type Interpolator[V, R any, T vmath.Float] = func(a, b V, t T) R

// defaultValue is what a query returns when ExtrapolationDefaultConstructed
// applies or when there are no keyframes at all. Rotation results default to
// the identity rotation rather than the unusable zero value.
func defaultValue[R any, T vmath.Float]() R {
	var zero R
	switch p := any(&zero).(type) {
	case *vmath.Complex[T]:
		*p = vmath.ComplexIdentity[T]()
	case *vmath.Quaternion[T]:
		*p = vmath.QuaternionIdentity[T]()
	}
	return zero
}

// InterpolatorFor returns the interpolator function for the given value and
// result type. It favors output correctness over performance: rotation types
// get the spherical (and for quaternions shortest-path) variants; supply a
// custom interpolator for faster but potentially less correct results.
//
// The mapping is a closed table. Booleans and bit vectors only support
// constant interpolation (Linear degrades to it), plain scalars and vectors
// support Constant and Linear, cubic Hermite spline points additionally
// Spline. Panics for InterpolationCustom and for any type/mode combination
// outside the table.
func InterpolatorFor[V, R any, T vmath.Float](interpolation Interpolation) Interpolator[V, R, T] {
	var fn any

	switch any((*V)(nil)).(type) {
	case *bool:
		switch interpolation {
		case InterpolationConstant, InterpolationLinear:
			fn = vmath.Select[bool, T]
		}
	case *vmath.BitVector:
		switch interpolation {
		case InterpolationConstant, InterpolationLinear:
			fn = vmath.Select[vmath.BitVector, T]
		}
	case *T:
		switch interpolation {
		case InterpolationConstant:
			fn = vmath.Select[T, T]
		case InterpolationLinear:
			fn = vmath.Lerp[T]
		}
	case *vmath.Scalar[T]:
		switch interpolation {
		case InterpolationConstant:
			fn = vmath.Select[vmath.Scalar[T], T]
		case InterpolationLinear:
			fn = vmath.LerpV[vmath.Scalar[T], T]
		}
	case *vmath.Vec2[T]:
		switch interpolation {
		case InterpolationConstant:
			fn = vmath.Select[vmath.Vec2[T], T]
		case InterpolationLinear:
			fn = vmath.LerpV[vmath.Vec2[T], T]
		}
	case *vmath.Vec3[T]:
		switch interpolation {
		case InterpolationConstant:
			fn = vmath.Select[vmath.Vec3[T], T]
		case InterpolationLinear:
			fn = vmath.LerpV[vmath.Vec3[T], T]
		}
	case *vmath.Vec4[T]:
		switch interpolation {
		case InterpolationConstant:
			fn = vmath.Select[vmath.Vec4[T], T]
		case InterpolationLinear:
			fn = vmath.LerpV[vmath.Vec4[T], T]
		}
	case *vmath.Complex[T]:
		switch interpolation {
		case InterpolationConstant:
			fn = vmath.Select[vmath.Complex[T], T]
		case InterpolationLinear:
			fn = vmath.SlerpComplex[T]
		}
	case *vmath.Quaternion[T]:
		switch interpolation {
		case InterpolationConstant:
			fn = vmath.Select[vmath.Quaternion[T], T]
		case InterpolationLinear:
			fn = vmath.SlerpQuaternionShortestPath[T]
		}
	case *curve.CubicHermite[vmath.Scalar[T], T]:
		switch interpolation {
		case InterpolationConstant:
			fn = curve.Select[vmath.Scalar[T], T]
		case InterpolationLinear:
			fn = curve.Lerp[vmath.Scalar[T], T]
		case InterpolationSpline:
			fn = curve.Splerp[vmath.Scalar[T], T]
		}
	case *curve.CubicHermite[vmath.Vec2[T], T]:
		switch interpolation {
		case InterpolationConstant:
			fn = curve.Select[vmath.Vec2[T], T]
		case InterpolationLinear:
			fn = curve.Lerp[vmath.Vec2[T], T]
		case InterpolationSpline:
			fn = curve.Splerp[vmath.Vec2[T], T]
		}
	case *curve.CubicHermite[vmath.Vec3[T], T]:
		switch interpolation {
		case InterpolationConstant:
			fn = curve.Select[vmath.Vec3[T], T]
		case InterpolationLinear:
			fn = curve.Lerp[vmath.Vec3[T], T]
		case InterpolationSpline:
			fn = curve.Splerp[vmath.Vec3[T], T]
		}
	case *curve.CubicHermite[vmath.Vec4[T], T]:
		switch interpolation {
		case InterpolationConstant:
			fn = curve.Select[vmath.Vec4[T], T]
		case InterpolationLinear:
			fn = curve.Lerp[vmath.Vec4[T], T]
		case InterpolationSpline:
			fn = curve.Splerp[vmath.Vec4[T], T]
		}
	case *curve.CubicHermite[vmath.Complex[T], T]:
		switch interpolation {
		case InterpolationConstant:
			fn = curve.Select[vmath.Complex[T], T]
		case InterpolationLinear:
			fn = curve.LerpComplex[T]
		case InterpolationSpline:
			fn = curve.SplerpComplex[T]
		}
	case *curve.CubicHermite[vmath.Quaternion[T], T]:
		switch interpolation {
		case InterpolationConstant:
			fn = curve.Select[vmath.Quaternion[T], T]
		case InterpolationLinear:
			fn = curve.LerpQuaternion[T]
		case InterpolationSpline:
			fn = curve.SplerpQuaternion[T]
		}
	}

	if f, ok := fn.(Interpolator[V, R, T]); ok {
		return f
	}
	panic(fmt.Sprintf("anim: can't deduce interpolator function for %T values, %T results and %v interpolation",
		*new(V), *new(R), interpolation))
}
