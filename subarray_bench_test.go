package subarray

import (
	"testing"
)

var sink *[8]byte

func TestViewsDoNotAllocate(t *testing.T) {
	var buf [64]byte
	allocs := testing.AllocsPerRun(100, func() {
		sink = Ref[[8]byte](buf[:], 8)
		sink = Mut[[8]byte](buf[:], 56)
		sink, _ = TryRef[[8]byte](buf[:], 0)
	})
	if allocs != 0 {
		t.Fatalf("expected zero allocations, got %v", allocs)
	}
}

func BenchmarkRef(b *testing.B) {
	var buf [64]byte
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = Ref[[8]byte](buf[:], i&56)
	}
}

func BenchmarkMut(b *testing.B) {
	var buf [64]byte
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := Mut[[8]byte](buf[:], i&56)
		v[0]++
	}
}

func BenchmarkTryRefOutOfRange(b *testing.B) {
	var buf [64]byte
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = TryRef[[8]byte](buf[:], 60)
	}
}

// baseline: the native conversion with a static length
func BenchmarkNativeConversion(b *testing.B) {
	var buf [64]byte
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		off := i & 56
		sink = (*[8]byte)(buf[off : off+8])
	}
}
