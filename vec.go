package vec

import "github.com/pavanmanishd/vec/internal/assert"

// Vector is a growable contiguous sequence of T. It keeps its elements in a
// single owned block and distinguishes the block's capacity from the number
// of live elements occupying its first slots.
//
// The zero value is an empty vector ready for use. Not goroutine-safe.
//
// A Vector must not be duplicated by plain assignment; the copy would share
// storage with the original. Use Clone for an independent copy.
type Vector[T any] struct {
	buf   rawBuffer[T]
	size  int // live elements occupy slots [0, size)
	grows int // storage reallocations performed by this vector

	clearMode uint8 // lazily resolved element trait, see mustClear
}

const (
	clearUnresolved uint8 = iota
	clearNeeded
	clearSkipped
)

// Make returns a vector of n zero-valued elements with capacity exactly n.
func Make[T any](n int) *Vector[T] {
	assert.Assert(n >= 0, "vec: negative length %d", n)
	return &Vector[T]{buf: newRawBuffer[T](n), size: n}
}

// Of returns a vector holding the given items in order, with capacity
// exactly the item count.
func Of[T any](items ...T) *Vector[T] {
	v := &Vector[T]{buf: newRawBuffer[T](len(items)), size: len(items)}
	copy(v.buf.slots, items)
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of elements the owned storage can hold without
// reallocating.
func (v *Vector[T]) Cap() int {
	return v.buf.cap()
}

// Get returns the element at index i. The index must be in [0, Len); the
// contract is checked only in debug builds.
func (v *Vector[T]) Get(i int) T {
	assert.Assert(i >= 0 && i < v.size, "vec: index %d out of range [0:%d)", i, v.size)
	return *v.buf.at(i)
}

// Set replaces the element at index i. The index must be in [0, Len); the
// contract is checked only in debug builds.
func (v *Vector[T]) Set(i int, value T) {
	assert.Assert(i >= 0 && i < v.size, "vec: index %d out of range [0:%d)", i, v.size)
	*v.buf.at(i) = value
}

// Reserve grows the capacity to at least n elements, relocating the live
// prefix into a block of exactly n. It never shrinks storage and never
// changes Len or element order. O(1) when n does not exceed Cap.
func (v *Vector[T]) Reserve(n int) {
	assert.Assert(n >= 0, "vec: negative capacity %d", n)
	if n <= v.buf.cap() {
		return
	}
	v.reallocate(n)
}

// Resize sets Len to n. Shrinking destroys the vacated tail; growing
// exposes zero-valued elements, reallocating first if the capacity cannot
// hold n.
func (v *Vector[T]) Resize(n int) {
	assert.Assert(n >= 0, "vec: negative length %d", n)
	switch {
	case n < v.size:
		v.destroy(n, v.size)
	case n > v.size:
		if n > v.buf.cap() {
			v.reallocate(n)
		}
		// The exposed span may hold stale bits from elements whose removal
		// skipped clearing; value construction means zeroing it either way.
		clear(v.buf.slots[v.size:n])
	}
	v.size = n
}

// Clear destroys all live elements and keeps the capacity.
func (v *Vector[T]) Clear() {
	v.destroy(0, v.size)
	v.size = 0
}

// Clone returns a copy of v backed by fresh storage sized exactly to Len.
// Elements are copied with plain assignment, so values that contain
// references share their referents with the original; the storage itself is
// independent.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{buf: newRawBuffer[T](v.size), size: v.size}
	copy(c.buf.slots, v.buf.slots[:v.size])
	return c
}

// CopyFrom makes v an element-wise copy of src. Copying a vector into
// itself is a no-op. When the current capacity cannot hold src's elements,
// a fully built copy replaces the old storage in one swap and the capacity
// becomes exactly src.Len; otherwise the copy happens in place, the excess
// tail is destroyed, and both the capacity and the storage block are kept.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	n := src.size
	if v.buf.cap() < n {
		v.Swap(src.Clone())
		v.grows++
		return
	}
	copy(v.buf.slots[:n], src.buf.slots[:n])
	if n < v.size {
		v.destroy(n, v.size)
	}
	v.size = n
}

// TakeFrom moves src's elements into v. The source is left empty with no
// capacity, v's previous storage is released, and no elements are copied.
// Taking from itself is a no-op.
func (v *Vector[T]) TakeFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.buf.steal(&src.buf)
	v.size = src.size
	src.size = 0
}

// Swap exchanges storage and length with other in O(1) without allocating.
// Addresses of live elements stay valid; they now belong to the other
// vector's sequence.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.swap(&other.buf)
	v.size, other.size = other.size, v.size
}

// reallocate replaces the storage with a block of exactly newCap elements
// and relocates the live prefix into it. The old block stays intact until
// the new one is fully populated, then the two are swapped and the old one
// released. newCap must hold the live prefix.
func (v *Vector[T]) reallocate(newCap int) {
	next := newRawBuffer[T](newCap)
	copy(next.slots, v.buf.slots[:v.size])
	v.buf.swap(&next)
	next.release()
	v.grows++
}

// destroy vacates slots [from, to), zeroing them when the element type
// requires it. The slots stay inside the owned block, so stale copies of
// reference-carrying elements would otherwise keep their referents alive.
func (v *Vector[T]) destroy(from, to int) {
	if v.mustClear() {
		clear(v.buf.slots[from:to])
	}
}

// mustClear resolves the element type's clearing trait on first use and
// caches it. The trait depends only on T, so every vector of the same
// element type resolves to the same answer.
func (v *Vector[T]) mustClear() bool {
	if v.clearMode == clearUnresolved {
		if elemNeedsClear[T]() {
			v.clearMode = clearNeeded
		} else {
			v.clearMode = clearSkipped
		}
	}
	return v.clearMode == clearNeeded
}
