package vec

import "iter"

// Slice returns the live elements as a contiguous view sharing the vector's
// storage: mutating an element of the view mutates the vector. The view is
// invalidated by any operation that grows or shifts elements. It must not
// be appended to; spare capacity beyond Len belongs to the vector.
func (v *Vector[T]) Slice() []T {
	return v.buf.slots[:v.size]
}

// All returns a forward iterator over index/element pairs of the live
// elements, for use with range. The iterator reads through the vector's
// storage and is invalidated the same way Slice is.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.slots[i]) {
				return
			}
		}
	}
}

// Values returns a forward iterator over the live elements, for use with
// range.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.slots[i]) {
				return
			}
		}
	}
}
