package vec

import (
	"fmt"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// BytesInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) BytesInUse() int {
	var zero T
	return v.size * int(unsafe.Sizeof(zero))
}

// BytesCap returns the number of bytes of the owned storage block.
func (v *Vector[T]) BytesCap() int {
	var zero T
	return v.buf.cap() * int(unsafe.Sizeof(zero))
}

// Utilization returns the ratio of live to allocated slots (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.buf.cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Grows returns the number of storage reallocations this vector has
// performed: demand growth, Reserve and Resize beyond the capacity, and
// copy assignments that could not reuse the storage. Appending n elements
// to an empty vector performs O(log n) of them.
func (v *Vector[T]) Grows() int {
	return v.grows
}

// Stats returns a snapshot of vector storage statistics.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:         v.size,
		Cap:         v.buf.cap(),
		BytesInUse:  v.BytesInUse(),
		BytesCap:    v.BytesCap(),
		Grows:       v.grows,
		Utilization: v.Utilization(),
	}
}

// Stats contains statistical information about a vector's storage.
type Stats struct {
	Len         int     // Live elements
	Cap         int     // Allocated element capacity
	BytesInUse  int     // Bytes occupied by live elements
	BytesCap    int     // Bytes of the storage block
	Grows       int     // Storage reallocations performed
	Utilization float64 // Ratio of live to allocated slots (0.0-1.0)
}

// String renders the snapshot on a single line with human-readable byte
// figures.
func (s Stats) String() string {
	return fmt.Sprintf("len=%d cap=%d (%s of %s, %.1f%% utilized, %d grows)",
		s.Len, s.Cap,
		humanize.IBytes(uint64(s.BytesInUse)), humanize.IBytes(uint64(s.BytesCap)),
		s.Utilization*100, s.Grows)
}
