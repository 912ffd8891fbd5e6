package anim

// View is a strided, read-only window into a slice. It lets the engine
// interpolate one of several interleaved fields packed in a single buffer
// without copying, e.g. every third element of a flattened position/rotation/
// scale array.
type View[E any] struct {
	data   []E
	offset int
	stride int
	count  int
}

// ViewOf wraps a whole slice as a contiguous view.
func ViewOf[E any](data []E) View[E] {
	return View[E]{data: data, stride: 1, count: len(data)}
}

// StridedView creates a view of count elements starting at offset, taking
// every stride-th element. Panics when the described elements don't fit into
// the underlying slice.
func StridedView[E any](data []E, offset, stride, count int) View[E] {
	if offset < 0 || stride < 1 || count < 0 {
		panic("anim: invalid view geometry")
	}
	if count > 0 && offset+(count-1)*stride >= len(data) {
		panic("anim: view exceeds the underlying buffer")
	}
	return View[E]{data: data, offset: offset, stride: stride, count: count}
}

// Len returns the number of elements in the view.
func (v View[E]) Len() int { return v.count }

// At returns the i-th element of the view.
func (v View[E]) At(i int) E {
	if i < 0 || i >= v.count {
		panic("anim: view index out of range")
	}
	return v.data[v.offset+i*v.stride]
}
