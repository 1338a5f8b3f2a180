package vec

import "github.com/pavanmanishd/vec/internal/assert"

// Push appends value to the end of the vector. Amortized O(1): when the
// storage is full it is replaced by a doubled block before the append.
func (v *Vector[T]) Push(value T) {
	if v.size == v.buf.cap() {
		v.reallocate(v.grownCap())
	}
	*v.buf.at(v.size) = value
	v.size++
}

// Pop removes and returns the last element. On an empty vector it reports
// false instead of treating the call as an error. The vacated slot is
// destroyed.
func (v *Vector[T]) Pop() (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	last := v.size - 1
	value := *v.buf.at(last)
	v.destroy(last, v.size)
	v.size = last
	return value, true
}

// Insert places value at index i, shifting elements [i, Len) up by one slot.
// i == Len appends. The index must be in [0, Len]; the contract is checked
// only in debug builds. O(Len − i), amortized O(1) at the end.
func (v *Vector[T]) Insert(i int, value T) {
	assert.Assert(i >= 0 && i <= v.size, "vec: insert index %d out of range [0:%d]", i, v.size)
	if v.size == v.buf.cap() {
		v.insertGrown(i, value)
		return
	}
	s := v.buf.slots
	copy(s[i+1:v.size+1], s[i:v.size])
	s[i] = value
	v.size++
}

// insertGrown inserts into a fresh doubled block: value lands in its slot
// first, then the old prefix and suffix are relocated around it. The old
// block is untouched until the new one is complete, then released.
func (v *Vector[T]) insertGrown(i int, value T) {
	next := newRawBuffer[T](v.grownCap())
	next.slots[i] = value
	copy(next.slots[:i], v.buf.slots[:i])
	copy(next.slots[i+1:], v.buf.slots[i:v.size])
	v.buf.swap(&next)
	next.release()
	v.grows++
	v.size++
}

// Remove deletes and returns the element at index i, shifting elements
// (i, Len) down by one slot. The vector must be non-empty and i must be in
// [0, Len); both contracts are checked only in debug builds. O(Len − i).
func (v *Vector[T]) Remove(i int) T {
	assert.Assert(v.size > 0, "vec: remove from empty vector")
	assert.Assert(i >= 0 && i < v.size, "vec: remove index %d out of range [0:%d)", i, v.size)
	s := v.buf.slots
	value := s[i]
	copy(s[i:v.size-1], s[i+1:v.size])
	v.destroy(v.size-1, v.size)
	v.size--
	return value
}

// grownCap is the capacity used when the storage must grow to fit one more
// element: double the live count, with 1 as the floor. Doubling keeps
// appends amortized O(1); reallocations for n appends are O(log n).
func (v *Vector[T]) grownCap() int {
	if v.size == 0 {
		return 1
	}
	return 2 * v.size
}
