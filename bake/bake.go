// Package bake evaluates animation tracks into dense uniform sample buffers.
// Consumers that can't afford keyframe lookups per element, like audio
// envelopes or GPU upload paths, bake a track once and index the result
// directly.
package bake

import (
	"math"

	"gonum.org/v1/gonum/floats"

	anim "github.com/tphakala/go-anim"
	"github.com/tphakala/go-anim/internal/simdops"
)

// Keys returns count uniformly spaced keys spanning [from,
// to] inclusive on both ends.
func Keys(from, to float64, count int) []float64 {
	if count < 2 {
		panic("bake: at least two keys required")
	}
	return floats.Span(make([]float64, count), from, to)
}

// Track bakes a track into count samples at uniformly spaced keys across
// [from, to]. Keys outside the track's keyframe range follow its
// extrapolation policies.
func Track[V, R any](track anim.TrackView[float64, V, R, float64], from, to float64, count int) []R {
	return At(track, Keys(from, to, count))
}

// At bakes a track at the given keys. The keyframe search hint is shared
// across the whole pass, so sorted keys bake in linear time.
func At[V, R any](track anim.TrackView[float64, V, R, float64], keys []float64) []R {
	out := make([]R, len(keys))
	hint := 0
	for i, k := range keys {
		out[i] = track.AtHint(k, &hint)
	}
	return out
}

// Normalize scales samples in place so the largest absolute value equals
// peak, returning the applied gain. All-zero or empty input is left alone
// and reports zero gain.
func Normalize(samples []float64, peak float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	maxAbs := math.Max(math.Abs(floats.Max(samples)), math.Abs(floats.Min(samples)))
	if maxAbs == 0 {
		return 0
	}
	gain := peak / maxAbs
	simdops.Float64Ops().Scale(samples, samples, gain)
	return gain
}

// Interleave interleaves two equally long baked channels into dst, which
// must hold exactly both. Sample layout is a[0], b[0], a[1], b[1], ...
func Interleave(dst, a, b []float64) {
	if len(a) != len(b) {
		panic("bake: channels don't have the same size")
	}
	if len(dst) != 2*len(a) {
		panic("bake: destination doesn't fit both channels")
	}
	simdops.Float64Ops().Interleave2(dst, a, b)
}
