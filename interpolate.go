package anim

import "github.com/tphakala/go-anim/vmath"

// Key is the set of keyframe key types. Integer keys are promoted to the
// interpolator's floating-point type before the factor computation, so they
// never truncate.
type Key interface {
	~int | ~int32 | ~int64 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Interpolate looks up the keyframe pair around frame and blends between the
// corresponding values. Keys must be sorted non-decreasing and have the same
// count as values, otherwise the call panics.
//
// The before and after policies control behavior outside the keyframe range,
// i.e. frames lower than the first key or larger or equal to the last key.
// With no keyframes at all the default value is returned; a single keyframe
// is returned verbatim (or the default value, if the policy says so).
//
// The hint accelerates repeated queries with non-decreasing frames: the
// search resumes at the hinted keyframe instead of scanning from the front,
// and the found index is stored back. A stale or out-of-range hint only costs
// a rescan, never correctness. Pass nil when querying just once.
func Interpolate[K Key, V, R any, T vmath.Float](keys View[K], values View[V], before, after Extrapolation, interpolator Interpolator[V, R, T], frame K, hint *int) R {
	if keys.Len() != values.Len() {
		panic("anim: keys and values don't have the same size")
	}

	n := keys.Len()
	if n == 0 {
		return defaultValue[R, T]()
	}

	// Only one keyframe, return it verbatim (or the default value, if
	// desired).
	if n == 1 {
		k := keys.At(0)
		if (frame < k && before == ExtrapolationDefaultConstructed) ||
			(frame > k && after == ExtrapolationDefaultConstructed) {
			return defaultValue[R, T]()
		}
		return interpolator(values.At(0), values.At(0), 0)
	}

	var local int
	if hint == nil {
		hint = &local
	}

	// Rewind from the beginning if no keyframe pair exists at the hint or
	// the hint is too late.
	h := *hint
	if h+1 >= n || frame < keys.At(h) {
		h = 0
	}

	// Advance until the pair around the given frame.
	for h+2 < n && frame >= keys.At(h+1) {
		h++
	}
	*hint = h

	// Special extrapolation outside of the range. Plain extrapolation is
	// handled by the unclamped factor below.
	if frame < keys.At(h) {
		if before == ExtrapolationDefaultConstructed {
			return defaultValue[R, T]()
		}
		if before == ExtrapolationConstant {
			frame = keys.At(h)
		}
	} else if frame >= keys.At(h+1) {
		if after == ExtrapolationDefaultConstructed {
			return defaultValue[R, T]()
		}
		if after == ExtrapolationConstant {
			frame = keys.At(h + 1)
		}
	}

	return interpolator(values.At(h), values.At(h+1),
		vmath.LerpInverted(T(keys.At(h)), T(keys.At(h+1)), T(frame)))
}

// InterpolateStrict is a stricter but leaner version of [Interpolate] with
// implicit ExtrapolationExtrapolated behavior on both sides. It requires at
// least two keyframes and panics otherwise.
func InterpolateStrict[K Key, V, R any, T vmath.Float](keys View[K], values View[V], interpolator Interpolator[V, R, T], frame K, hint *int) R {
	if keys.Len() < 2 {
		panic("anim: at least two keyframes required")
	}
	if keys.Len() != values.Len() {
		panic("anim: keys and values don't have the same size")
	}

	var local int
	if hint == nil {
		hint = &local
	}

	n := keys.Len()
	h := *hint
	if h+1 >= n || frame < keys.At(h) {
		h = 0
	}
	for h+2 < n && frame >= keys.At(h+1) {
		h++
	}
	*hint = h

	return interpolator(values.At(h), values.At(h+1),
		vmath.LerpInverted(T(keys.At(h)), T(keys.At(h+1)), T(frame)))
}
