package anim

import "github.com/tphakala/go-anim/vmath"

// Track is an immutable sequence of (key, value) keyframes paired with an
// interpolator and extrapolation policies. It owns its keyframe data;
// [TrackView] is the non-owning equivalent for data stored elsewhere.
//
// A track carries one internal search hint used by [Track.At] and
// [Track.AtStrict], so a track queried without an explicit hint belongs to a
// single playback cursor. Concurrent readers must each bring their own hint
// via [Track.AtHint] or [Track.AtStrictHint]; the keyframe data itself is
// read-only and safely shared.
type Track[K Key, V, R any, T vmath.Float] struct {
	keys          []K
	values        []V
	interpolation Interpolation
	interpolator  Interpolator[V, R, T]
	before, after Extrapolation
	hint          int
}

func validateKeyframes[K Key, V any](keys []K, values []V) {
	if len(keys) != len(values) {
		panic("anim: keys and values don't have the same size")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			panic("anim: track keys must be sorted")
		}
	}
}

// NewTrack creates a track with an interpolator deduced from the value type
// via [InterpolatorFor]. Keys must be sorted non-decreasing (duplicates
// allowed, producing instantaneous jumps) and match the value count; the
// constructor panics otherwise, as it does for type/mode combinations with
// no deducible interpolator.
func NewTrack[K Key, V, R any, T vmath.Float](keys []K, values []V, interpolation Interpolation, before, after Extrapolation) *Track[K, V, R, T] {
	validateKeyframes(keys, values)
	return &Track[K, V, R, T]{
		keys:          keys,
		values:        values,
		interpolation: interpolation,
		interpolator:  InterpolatorFor[V, R, T](interpolation),
		before:        before,
		after:         after,
	}
}

// NewTrackWithInterpolator creates a track with a user-supplied interpolator
// function. The interpolation mode is reported as InterpolationCustom.
func NewTrackWithInterpolator[K Key, V, R any, T vmath.Float](keys []K, values []V, interpolator Interpolator[V, R, T], before, after Extrapolation) *Track[K, V, R, T] {
	validateKeyframes(keys, values)
	if interpolator == nil {
		panic("anim: interpolator must not be nil")
	}
	return &Track[K, V, R, T]{
		keys:          keys,
		values:        values,
		interpolation: InterpolationCustom,
		interpolator:  interpolator,
		before:        before,
		after:         after,
	}
}

// Len returns the keyframe count.
func (t *Track[K, V, R, T]) Len() int { return len(t.keys) }

// Key returns the i-th keyframe key.
func (t *Track[K, V, R, T]) Key(i int) K { return t.keys[i] }

// Value returns the i-th keyframe value.
func (t *Track[K, V, R, T]) Value(i int) V { return t.values[i] }

// Interpolation returns the interpolation mode the track was created with.
func (t *Track[K, V, R, T]) Interpolation() Interpolation { return t.interpolation }

// Interpolator returns the interpolator function queries use.
func (t *Track[K, V, R, T]) Interpolator() Interpolator[V, R, T] { return t.interpolator }

// Before returns the extrapolation policy for frames before the first
// keyframe.
func (t *Track[K, V, R, T]) Before() Extrapolation { return t.before }

// After returns the extrapolation policy for frames at or after the last
// keyframe.
func (t *Track[K, V, R, T]) After() Extrapolation { return t.after }

// Duration returns the first and last keyframe key. With no keyframes both
// are zero.
func (t *Track[K, V, R, T]) Duration() (from, to K) {
	if len(t.keys) == 0 {
		return from, to
	}
	return t.keys[0], t.keys[len(t.keys)-1]
}

// At interpolates the track at the given frame using the track's internal
// search hint.
func (t *Track[K, V, R, T]) At(frame K) R {
	return t.AtHint(frame, &t.hint)
}

// AtHint interpolates the track at the given frame, resuming the keyframe
// search at the caller-owned hint.
func (t *Track[K, V, R, T]) AtHint(frame K, hint *int) R {
	return Interpolate(ViewOf(t.keys), ViewOf(t.values), t.before, t.after, t.interpolator, frame, hint)
}

// AtStrict is like [Track.At] but with implicit extrapolation on both sides,
// requiring at least two keyframes. Faster when the track is known to cover
// the queried range.
func (t *Track[K, V, R, T]) AtStrict(frame K) R {
	return t.AtStrictHint(frame, &t.hint)
}

// AtStrictHint is like [Track.AtHint] but with implicit extrapolation,
// requiring at least two keyframes.
func (t *Track[K, V, R, T]) AtStrictHint(frame K, hint *int) R {
	return InterpolateStrict(ViewOf(t.keys), ViewOf(t.values), t.interpolator, frame, hint)
}

// View returns a non-owning view of the track.
func (t *Track[K, V, R, T]) View() TrackView[K, V, R, T] {
	return TrackView[K, V, R, T]{
		keys:         ViewOf(t.keys),
		values:       ViewOf(t.values),
		interpolator: t.interpolator,
		before:       t.before,
		after:        t.after,
	}
}

// TrackView is a non-owning [Track]: keyframe keys and values live in
// caller-provided storage, possibly strided and interleaved with unrelated
// data. Unlike Track it carries no internal hint, so it is freely copyable
// and shareable; pass an explicit hint to accelerate repeated queries.
type TrackView[K Key, V, R any, T vmath.Float] struct {
	keys          View[K]
	values        View[V]
	interpolator  Interpolator[V, R, T]
	before, after Extrapolation
}

// NewTrackView creates a track view over the given key and value views.
// Unlike [NewTrack] it does not validate key ordering, as walking possibly
// large external storage is the caller's decision.
func NewTrackView[K Key, V, R any, T vmath.Float](keys View[K], values View[V], interpolator Interpolator[V, R, T], before, after Extrapolation) TrackView[K, V, R, T] {
	if keys.Len() != values.Len() {
		panic("anim: keys and values don't have the same size")
	}
	if interpolator == nil {
		panic("anim: interpolator must not be nil")
	}
	return TrackView[K, V, R, T]{
		keys:         keys,
		values:       values,
		interpolator: interpolator,
		before:       before,
		after:        after,
	}
}

// Len returns the keyframe count.
func (t TrackView[K, V, R, T]) Len() int { return t.keys.Len() }

// Key returns the i-th keyframe key.
func (t TrackView[K, V, R, T]) Key(i int) K { return t.keys.At(i) }

// Value returns the i-th keyframe value.
func (t TrackView[K, V, R, T]) Value(i int) V { return t.values.At(i) }

// Before returns the extrapolation policy for frames before the first
// keyframe.
func (t TrackView[K, V, R, T]) Before() Extrapolation { return t.before }

// After returns the extrapolation policy for frames at or after the last
// keyframe.
func (t TrackView[K, V, R, T]) After() Extrapolation { return t.after }

// Duration returns the first and last keyframe key. With no keyframes both
// are zero.
func (t TrackView[K, V, R, T]) Duration() (from, to K) {
	if t.keys.Len() == 0 {
		return from, to
	}
	return t.keys.At(0), t.keys.At(t.keys.Len() - 1)
}

// At interpolates the view at the given frame. Use [TrackView.AtHint] for
// repeated queries.
func (t TrackView[K, V, R, T]) At(frame K) R {
	var hint int
	return t.AtHint(frame, &hint)
}

// AtHint interpolates the view at the given frame, resuming the keyframe
// search at the caller-owned hint.
func (t TrackView[K, V, R, T]) AtHint(frame K, hint *int) R {
	return Interpolate(t.keys, t.values, t.before, t.after, t.interpolator, frame, hint)
}

// AtStrict is like [TrackView.At] but with implicit extrapolation on both
// sides, requiring at least two keyframes.
func (t TrackView[K, V, R, T]) AtStrict(frame K) R {
	var hint int
	return t.AtStrictHint(frame, &hint)
}

// AtStrictHint is like [TrackView.AtHint] but with implicit extrapolation,
// requiring at least two keyframes.
func (t TrackView[K, V, R, T]) AtStrictHint(frame K, hint *int) R {
	return InterpolateStrict(t.keys, t.values, t.interpolator, frame, hint)
}
