package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewOf(t *testing.T) {
	v := ViewOf([]float64{1.0, 2.0, 3.0})

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 1.0, v.At(0))
	assert.Equal(t, 3.0, v.At(2))

	empty := ViewOf([]float64(nil))
	assert.Equal(t, 0, empty.Len())
}

func TestStridedView(t *testing.T) {
	data := []float64{0.0, 10.0, 1.0, 11.0, 2.0, 12.0}

	keys := StridedView(data, 0, 2, 3)
	values := StridedView(data, 1, 2, 3)

	assert.Equal(t, 3, keys.Len())
	assert.Equal(t, 0.0, keys.At(0))
	assert.Equal(t, 2.0, keys.At(2))
	assert.Equal(t, 10.0, values.At(0))
	assert.Equal(t, 12.0, values.At(2))
}

func TestStridedView_Empty(t *testing.T) {
	v := StridedView([]float64(nil), 0, 1, 0)
	assert.Equal(t, 0, v.Len())
}

func TestStridedView_Errors(t *testing.T) {
	data := []float64{1.0, 2.0, 3.0}

	assert.PanicsWithValue(t, "anim: invalid view geometry", func() {
		StridedView(data, -1, 1, 2)
	})
	assert.PanicsWithValue(t, "anim: invalid view geometry", func() {
		StridedView(data, 0, 0, 2)
	})
	assert.PanicsWithValue(t, "anim: view exceeds the underlying buffer", func() {
		StridedView(data, 0, 2, 3)
	})
	assert.PanicsWithValue(t, "anim: view index out of range", func() {
		ViewOf(data).At(3)
	})
	assert.PanicsWithValue(t, "anim: view index out of range", func() {
		ViewOf(data).At(-1)
	})
}
