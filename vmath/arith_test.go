package vmath

import "testing"

func TestAddBlockFloat64(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{10, 20, 30, 40, 50}
	dst := make([]float64, 5)
	AddBlock(dst, a, b)
	for i := range dst {
		if dst[i] != a[i]+b[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], a[i]+b[i])
		}
	}
}

func TestAddBlockFloat32(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}
	dst := make([]float32, 3)
	AddBlock(dst, a, b)
	for i := range dst {
		if dst[i] != a[i]+b[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], a[i]+b[i])
		}
	}
}

func TestAddBlockInPlace(t *testing.T) {
	dst := []float64{1, 2, 3}
	AddBlockInPlace(dst, []float64{10, 10, 10})
	for i, want := range []float64{11, 12, 13} {
		if dst[i] != want {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestMulBlock(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{2, 3, 4}
	dst := make([]float64, 3)
	MulBlock(dst, a, b)
	for i, want := range []float64{2, 6, 12} {
		if dst[i] != want {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestMulBlockInPlace(t *testing.T) {
	dst := []float32{1, 2, 3}
	MulBlockInPlace(dst, []float32{2, 2, 2})
	for i, want := range []float32{2, 4, 6} {
		if dst[i] != want {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestScaleBlock(t *testing.T) {
	src := []float64{1, -2, 3}
	dst := make([]float64, 3)
	ScaleBlock(dst, src, 0.5)
	for i, want := range []float64{0.5, -1, 1.5} {
		if dst[i] != want {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestScaleBlockInPlace(t *testing.T) {
	dst := []float32{2, 4}
	ScaleBlockInPlace(dst, 0.25)
	if dst[0] != 0.5 || dst[1] != 1 {
		t.Fatalf("dst = %v, want [0.5 1]", dst)
	}
}

func TestArithLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("AddBlock with mismatched lengths should panic")
		}
	}()
	AddBlock(make([]float64, 2), make([]float64, 3), make([]float64, 3))
}
