package bake

import (
	"testing"

	"github.com/stretchr/testify/assert"

	anim "github.com/tphakala/go-anim"
	"github.com/tphakala/go-anim/easing"
	"github.com/tphakala/go-anim/internal/testutil"
	"github.com/tphakala/go-anim/vmath"
)

func envelopeTrack() *anim.Track[float64, float64, float64, float64] {
	return anim.NewTrack[float64, float64, float64, float64](
		[]float64{0.0, 2.0, 4.0, 5.0},
		[]float64{3.0, 1.0, 2.5, 0.5},
		anim.InterpolationLinear,
		anim.ExtrapolationConstant, anim.ExtrapolationConstant)
}

func TestKeys(t *testing.T) {
	keys := Keys(0.0, 5.0, 11)

	assert.Len(t, keys, 11)
	assert.Equal(t, 0.0, keys[0])
	assert.Equal(t, 5.0, keys[10])
	assert.InDelta(t, 0.5, keys[1], 1e-12)
	testutil.AssertMonotonic(t, keys)
}

func TestKeys_TooFew(t *testing.T) {
	assert.PanicsWithValue(t, "bake: at least two keys required", func() {
		Keys(0.0, 5.0, 1)
	})
}

func TestTrack(t *testing.T) {
	track := envelopeTrack()
	samples := Track(track.View(), 0.0, 5.0, 11)

	assert.Len(t, samples, 11)
	testutil.AssertNoNaNOrInf(t, samples)
	testutil.AssertAllInRange(t, samples, 0.5, 3.0)

	// Every baked sample matches a direct track query.
	keys := Keys(0.0, 5.0, 11)
	for i, k := range keys {
		assert.InDelta(t, track.At(k), samples[i], 1e-12, "key %f", k)
	}
	assert.InDelta(t, 3.0, samples[0], 1e-12)
	assert.InDelta(t, 1.5, samples[3], 1e-12) // key 1.5
	assert.InDelta(t, 0.5, samples[10], 1e-12)
}

func TestTrack_Extrapolated(t *testing.T) {
	track := envelopeTrack()
	samples := Track(track.View(), -1.0, 6.0, 8)

	// Constant extrapolation holds the boundary values.
	assert.InDelta(t, 3.0, samples[0], 1e-12)
	assert.InDelta(t, 0.5, samples[7], 1e-12)
}

func TestTrack_Eased(t *testing.T) {
	// Baking an eased interpolator gives the reshaped curve, not the
	// straight line.
	track := anim.NewTrackWithInterpolator[float64, float64, float64, float64](
		[]float64{0.0, 1.0},
		[]float64{0.0, 1.0},
		anim.Ease[float64, float64, float64](vmath.Lerp[float64], easing.Smoothstep[float64]),
		anim.ExtrapolationConstant, anim.ExtrapolationConstant)

	samples := Track(track.View(), 0.0, 1.0, 5)
	assert.InDelta(t, 0.0, samples[0], 1e-12)
	assert.InDelta(t, easing.Smoothstep(0.25), samples[1], 1e-12)
	assert.InDelta(t, 0.5, samples[2], 1e-12)
	assert.InDelta(t, 1.0, samples[4], 1e-12)
	testutil.AssertMonotonic(t, samples)
}

func TestAt_Vector(t *testing.T) {
	track := anim.NewTrack[float64, vmath.Vec2[float64], vmath.Vec2[float64], float64](
		[]float64{0.0, 1.0},
		[]vmath.Vec2[float64]{{X: 0.0, Y: 2.0}, {X: 1.0, Y: 4.0}},
		anim.InterpolationLinear,
		anim.ExtrapolationConstant, anim.ExtrapolationConstant)

	samples := At(track.View(), []float64{0.0, 0.5, 1.0})
	assert.Len(t, samples, 3)
	assert.True(t, samples[1].Equal(vmath.Vec2[float64]{X: 0.5, Y: 3.0}))
}

func TestNormalize(t *testing.T) {
	samples := []float64{0.5, -2.0, 1.0}
	gain := Normalize(samples, 1.0)

	testutil.AssertRelativeError(t, 0.5, gain, testutil.DefaultTolerance)
	assert.InDelta(t, 0.25, samples[0], 1e-12)
	assert.InDelta(t, -1.0, samples[1], 1e-12)
	assert.InDelta(t, 0.5, samples[2], 1e-12)
	testutil.AssertAllInRange(t, samples, -1.0, 1.0)
}

func TestNormalize_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, Normalize(nil, 1.0))

	zeros := []float64{0.0, 0.0}
	assert.Equal(t, 0.0, Normalize(zeros, 1.0))
	assert.Equal(t, []float64{0.0, 0.0}, zeros)
}

func TestInterleave(t *testing.T) {
	left := []float64{1.0, 2.0, 3.0}
	right := []float64{-1.0, -2.0, -3.0}
	dst := make([]float64, 6)

	Interleave(dst, left, right)
	assert.Equal(t, []float64{1.0, -1.0, 2.0, -2.0, 3.0, -3.0}, dst)
}

func TestInterleave_Errors(t *testing.T) {
	assert.PanicsWithValue(t, "bake: channels don't have the same size", func() {
		Interleave(make([]float64, 4), make([]float64, 2), make([]float64, 1))
	})
	assert.PanicsWithValue(t, "bake: destination doesn't fit both channels", func() {
		Interleave(make([]float64, 3), make([]float64, 2), make([]float64, 2))
	})
}

func BenchmarkTrack(b *testing.B) {
	track := envelopeTrack().View()

	var samples []float64
	for b.Loop() {
		samples = Track(track, 0.0, 5.0, 1024)
	}
	_ = samples
}
