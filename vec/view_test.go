package vec

import (
	"testing"

	"github.com/cwbudde/algo-interleave/simd"
)

func TestViewLoadStoreRoundTrip(t *testing.T) {
	b := New[float64](simd.Width4, 2)
	v := b.Bucket(0)

	r := Broadcast[float64](simd.Width4, 1).
		WithLane(1, 2).WithLane(2, 3).WithLane(3, 4)
	v.Store(r)

	got := v.Load()
	for i := 0; i < 4; i++ {
		if got.Lane(i) != r.Lane(i) {
			t.Fatalf("Load lane %d = %v, want %v", i, got.Lane(i), r.Lane(i))
		}
	}
}

func TestViewStoreWidthMismatchPanics(t *testing.T) {
	b := New[float64](simd.Width4, 1)
	v := b.Bucket(0)
	defer func() {
		if recover() == nil {
			t.Fatal("Store of mismatched-width register should panic")
		}
	}()
	v.Store(Broadcast[float64](simd.Width2, 1))
}

func TestViewBroadcast(t *testing.T) {
	b := New[float32](simd.Width8, 1)
	v := b.Bucket(0)
	v.Broadcast(9)
	for i := 0; i < 8; i++ {
		if v.Lane(i) != 9 {
			t.Fatalf("Lane(%d) = %v, want 9", i, v.Lane(i))
		}
	}
}

func TestViewCopyFrom(t *testing.T) {
	b := New[float64](simd.Width2, 2)
	src := b.Bucket(0)
	dst := b.Bucket(1)
	src.SetLane(0, 1)
	src.SetLane(1, 2)
	dst.CopyFrom(src)
	if dst.Lane(0) != 1 || dst.Lane(1) != 2 {
		t.Fatalf("CopyFrom = (%v, %v), want (1, 2)", dst.Lane(0), dst.Lane(1))
	}
}

func TestViewCopyFromWidthMismatchPanics(t *testing.T) {
	b4 := New[float64](simd.Width4, 1)
	b2 := New[float64](simd.Width2, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("CopyFrom of mismatched-width view should panic")
		}
	}()
	b4.Bucket(0).CopyFrom(b2.Bucket(0))
}

func TestViewOfChecksLengthAndAlignment(t *testing.T) {
	b := New[float64](simd.Width4, 2)

	// Correctly aligned register-sized slice: accepted.
	v := ViewOf(b.Data()[4:8], simd.Width4)
	if v.Width() != simd.Width4 {
		t.Fatalf("Width() = %d, want 4", v.Width())
	}

	// Wrong length: rejected.
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("ViewOf with wrong slice length should panic")
			}
		}()
		ViewOf(b.Data()[:3], simd.Width4)
	}()

	// Misaligned start: rejected.
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("ViewOf with misaligned slice should panic")
			}
		}()
		ViewOf(b.Data()[1:5], simd.Width4)
	}()
}

func TestViewOperationsDoNotAllocate(t *testing.T) {
	b := New[float64](simd.Width4, 16)
	r := Broadcast[float64](simd.Width4, 1)

	allocs := testing.AllocsPerRun(100, func() {
		v := b.Bucket(3)
		v.Store(r)
		got := v.Load()
		v.Store(got.Add(r))
	})
	if allocs != 0 {
		t.Fatalf("view load/store allocated %v times per run, want 0", allocs)
	}
}
