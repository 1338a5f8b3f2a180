package vec

import (
	"testing"
)

// BenchmarkRealisticUsage tests access patterns the vector is built for
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: append-heavy build-up with periodic reuse
	b.Run("AppendAndReuse/Vector", func(b *testing.B) {
		var v Vector[int]
		v.Reserve(1024)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 1024; j++ {
				v.Push(j)
			}
			// Clear keeps the storage, so the next round reallocates nothing
			v.Clear()
		}
	})

	b.Run("AppendAndReuse/Builtin", func(b *testing.B) {
		s := make([]int, 0, 1024)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 1024; j++ {
				s = append(s, j)
			}
			s = s[:0]
		}
	})

	// Test 2: growth from empty without a size hint
	b.Run("GrowFromEmpty/Vector", func(b *testing.B) {
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			var v Vector[int]
			for j := 0; j < 512; j++ {
				v.Push(j)
			}
		}
	})

	b.Run("GrowFromEmpty/Builtin", func(b *testing.B) {
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 512; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 3: random access through Get vs the raw view
	b.Run("IndexedSum/Get", func(b *testing.B) {
		v := Make[int](4096)
		for i := 0; i < v.Len(); i++ {
			v.Set(i, i)
		}
		b.ResetTimer()

		sum := 0
		for i := 0; i < b.N; i++ {
			for j := 0; j < v.Len(); j++ {
				sum += v.Get(j)
			}
		}
		_ = sum
	})

	b.Run("IndexedSum/Slice", func(b *testing.B) {
		v := Make[int](4096)
		for i := 0; i < v.Len(); i++ {
			v.Set(i, i)
		}
		b.ResetTimer()

		sum := 0
		for i := 0; i < b.N; i++ {
			for _, x := range v.Slice() {
				sum += x
			}
		}
		_ = sum
	})
}

// BenchmarkPushGrowth measures amortized append cost across element types
func BenchmarkPushGrowth(b *testing.B) {
	b.Run("Int", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v Vector[int]
			for j := 0; j < 256; j++ {
				v.Push(j)
			}
		}
	})

	b.Run("String", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v Vector[string]
			for j := 0; j < 256; j++ {
				v.Push("x")
			}
		}
	})

	type record struct {
		ID   int64
		Data [56]byte
	}

	b.Run("Struct64B", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v Vector[record]
			for j := 0; j < 256; j++ {
				v.Push(record{ID: int64(j)})
			}
		}
	})
}

// BenchmarkPopClearTrait measures the cost of the per-type clearing rule
func BenchmarkPopClearTrait(b *testing.B) {
	type flat struct {
		a, b, c, d int64
	}

	b.Run("PointerFree", func(b *testing.B) {
		var v Vector[flat]
		v.Resize(1024)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			v.Resize(1024)
			for v.Len() > 0 {
				v.Pop()
			}
		}
	})

	b.Run("PointerCarrying", func(b *testing.B) {
		var v Vector[*flat]
		v.Resize(1024)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			v.Resize(1024)
			for v.Len() > 0 {
				v.Pop()
			}
		}
	})
}
