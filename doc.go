// Package vec implements a growable contiguous container for Go with
// explicit control over storage capacity versus live element count.
//
// # Overview
//
// A Vector keeps its elements in one owned block of storage and separates
// two quantities that Go slices fuse together: the capacity of the block
// and the number of live elements occupying its first slots. That
// separation is what the package is built around. It is useful for:
//
//   - Pre-sizing storage once and filling it without reallocation
//   - Insertion and removal at arbitrary positions with explicit cost
//   - Releasing references held by removed elements deterministically
//   - Observing exactly when and how often storage is reallocated
//
// # Basic Usage
//
//	var v vec.Vector[int]  // the zero value is ready to use
//
//	v.Push(1)
//	v.Push(2)
//	v.Insert(1, 9)       // [1 9 2]
//	_ = v.Remove(0)      // [9 2]
//	last, ok := v.Pop()  // 2, true
//
//	w := vec.Of("a", "b", "c")
//	w.Reserve(100)  // capacity grows, elements and length stay
//	w.Resize(5)     // ["a" "b" "c" "" ""]
//
// # Memory Layout
//
// Storage is a single typed block holding exactly Cap elements. Slots
// [0, Len) hold the live sequence; slots [Len, Cap) are vacant and hold
// zero values, or stale bits when the element type lets removal skip
// clearing. Growing operations replace the whole block: a new block is
// allocated, the live prefix is relocated, and only then is the old block
// released, so the sequence is never in a torn state.
//
// When storage must grow to fit one more element, the capacity doubles
// (from 1), which keeps Push amortized O(1). Reserve and Resize allocate
// the exact capacity they are asked for.
//
// Removal vacates slots inside a block that stays owned. For element types
// that carry references the vacated slots are zeroed so the garbage
// collector can reclaim their referents; pointer-free element types skip
// that work. The distinction is resolved once per element type.
//
// # Contract Checks
//
// Index validity is a caller obligation, not a recoverable error. Contract
// violations (an index outside the live range, removing from an empty
// vector, negative sizes) panic in normal builds and are compiled out with
// the release build tag:
//
//	go build -tags release
//
// Pop on an empty vector is the one deliberate exception: it reports false
// rather than failing, so drain loops need no length checks.
//
// # Iteration
//
// All and Values return range-over-func iterators over the live elements;
// Slice returns the live window of the storage itself as a []T. All three
// share the vector's storage and are invalidated by any operation that
// grows or shifts elements. The Slice view must not be appended to.
//
// # Thread Safety
//
// A Vector is not goroutine-safe. Instances confined to one goroutine need
// no locking; sharing an instance requires synchronization outside the
// package.
//
// # Metrics and Monitoring
//
// The vector reports detailed storage statistics:
//
//	stats := v.Stats()
//	fmt.Printf("Utilization: %.2f%%\n", stats.Utilization * 100)
//	fmt.Printf("Memory in use: %d bytes\n", stats.BytesInUse)
//	fmt.Printf("Reallocations: %d\n", stats.Grows)
package vec
