// Package anim provides keyframe animation math in pure Go.
//
// The package implements the interpolation core of a keyframe animation
// system: easing functions, Bézier curves and cubic Hermite splines, typed
// interpolator dispatch and a hint-accelerated keyframe lookup engine. It is
// deliberately free of any notion of scenes, nodes or rendering; it turns a
// frame time and keyframe data into an interpolated value and nothing else.
//
// # Features
//
//   - Hint-accelerated keyframe interpolation with configurable
//     extrapolation on both ends
//   - Owned tracks and non-owning, strided track views for keyframes packed
//     in interleaved buffers
//   - Interpolator deduction per value type: constant, linear, spherical
//     linear and cubic spline variants, shortest-path handling for
//     quaternions
//   - A catalog of over thirty easing functions with exact and approximate
//     cubic Bézier equivalents
//   - Bézier curve evaluation and subdivision via the De Casteljau
//     algorithm, lossless conversion to and from cubic Hermite spline points
//   - Playback scheduling with pause, seek and repeat via the player
//     subpackage, keyframe resampling via the bake subpackage
//   - Both float32 and float64 instantiations of everything
//
// # Quick Start
//
// A track interpolates values between keyframes:
//
//	track := anim.NewTrack[float64, float64, float64, float64](
//	    []float64{0, 2, 4, 5},
//	    []float64{3, 1, 2.5, 0.5},
//	    anim.InterpolationLinear,
//	    anim.ExtrapolationConstant, anim.ExtrapolationConstant)
//
//	value := track.At(4.75) // 1.0
//
// Repeated queries with non-decreasing frames are O(1) amortized thanks to
// the search hint the track keeps between calls. Concurrent readers share
// the immutable keyframe data but must bring their own hint:
//
//	var hint int
//	for frame := 0.0; frame < 5.0; frame += 1.0 / 60.0 {
//	    apply(track.AtHint(frame, &hint))
//	}
//
// The interpolator is deduced from the value type. Plain scalars and vectors
// get constant or linear interpolation, rotations get spherical variants and
// cubic Hermite spline points get true spline interpolation:
//
//	rot := anim.NewTrack[float64, vmath.Quaternion[float64], vmath.Quaternion[float64], float64](
//	    keys, orientations, anim.InterpolationLinear,
//	    anim.ExtrapolationConstant, anim.ExtrapolationConstant)
//
// Easing functions from the easing subpackage reshape the interpolation
// phase via the combinators:
//
//	bouncy := anim.Ease(anim.InterpolatorFor[float64, float64, float64](
//	    anim.InterpolationLinear), easing.BounceOut[float64])
//	track := anim.NewTrackWithInterpolator(keys, values, bouncy,
//	    anim.ExtrapolationConstant, anim.ExtrapolationConstant)
//
// # Subpackages
//
//   - easing: the easing function catalog
//   - curve: Bézier curves and cubic Hermite spline points
//   - vmath: scalar, vector, complex and quaternion value types
//   - player: wall-clock playback scheduling of tracks
//   - bake: resampling of tracks onto uniform keyframe grids
package anim
