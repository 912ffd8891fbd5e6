package vmath

// BitVector is a fixed-capacity vector of booleans, useful for animating
// per-channel enable flags. Like booleans, bit vectors only support constant
// (select) interpolation.
type BitVector struct {
	bits uint64
	size int
}

// NewBitVector creates a bit vector from the given values. At most 64 bits
// are supported.
func NewBitVector(values ...bool) BitVector {
	if len(values) > 64 {
		panic("vmath: bit vector size must be at most 64")
	}
	v := BitVector{size: len(values)}
	for i, b := range values {
		if b {
			v.bits |= 1 << uint(i)
		}
	}
	return v
}

// Size returns the number of bits.
func (v BitVector) Size() int { return v.size }

// Bit returns the i-th bit.
func (v BitVector) Bit(i int) bool {
	if i < 0 || i >= v.size {
		panic("vmath: bit index out of range")
	}
	return v.bits&(1<<uint(i)) != 0
}

// WithBit returns a copy of v with the i-th bit set to value.
func (v BitVector) WithBit(i int, value bool) BitVector {
	if i < 0 || i >= v.size {
		panic("vmath: bit index out of range")
	}
	if value {
		v.bits |= 1 << uint(i)
	} else {
		v.bits &^= 1 << uint(i)
	}
	return v
}
