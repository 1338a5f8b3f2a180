package vec

import (
	"reflect"

	"github.com/pavanmanishd/vec/internal/assert"
)

// rawBuffer owns a typed block of storage for exactly cap() elements.
// It never tracks which slots hold live values; that bookkeeping belongs
// entirely to the Vector above it. The zero value owns no block.
//
// A rawBuffer is never duplicated. Ownership of a block moves between
// buffers only through swap and steal.
type rawBuffer[T any] struct {
	slots []T // len == cap == capacity; nil when capacity is 0
}

// newRawBuffer allocates storage for capacity elements. A capacity of 0
// allocates nothing and leaves the buffer empty. An impossible request
// faults in the runtime the same way make does; the container never
// recovers from out-of-memory.
func newRawBuffer[T any](capacity int) rawBuffer[T] {
	if capacity == 0 {
		return rawBuffer[T]{}
	}
	return rawBuffer[T]{slots: make([]T, capacity)}
}

// cap returns the number of elements the block can hold.
func (b *rawBuffer[T]) cap() int {
	return len(b.slots)
}

// at returns the address of slot i.
func (b *rawBuffer[T]) at(i int) *T {
	assert.Assert(i >= 0 && i < len(b.slots), "vec: slot %d outside capacity %d", i, len(b.slots))
	return &b.slots[i]
}

// swap exchanges the owned blocks of two buffers in O(1). Slot contents are
// untouched.
func (b *rawBuffer[T]) swap(other *rawBuffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// steal takes other's block, leaving other empty. The block b owned before
// is released. Stealing from itself is a no-op.
func (b *rawBuffer[T]) steal(other *rawBuffer[T]) {
	if b == other {
		return
	}
	b.slots = other.slots
	other.slots = nil
}

// release drops the block. Slots are not zeroed first: once the block is
// unreachable the collector reclaims everything it referenced, so per-slot
// work only matters for blocks that stay owned.
func (b *rawBuffer[T]) release() {
	b.slots = nil
}

// elemNeedsClear reports whether vacated slots of type T must be zeroed so
// the collector can reclaim whatever they referenced. Pointer-free element
// types cannot pin heap objects and skip the work. The answer is a property
// of the type alone; Vector resolves it once and caches it.
func elemNeedsClear[T any]() bool {
	return typeHasPointers(reflect.TypeFor[T]())
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, maps, channels, funcs, interfaces, strings and
		// unsafe pointers all reference memory the collector must see.
		return true
	}
}
