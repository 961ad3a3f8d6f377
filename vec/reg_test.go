package vec

import (
	"testing"

	"github.com/cwbudde/algo-interleave/simd"
)

func regOf(t *testing.T, vals ...float64) Reg[float64] {
	t.Helper()
	w := simd.Width(len(vals))
	r := Zero[float64](w)
	for i, v := range vals {
		r = r.WithLane(i, v)
	}
	return r
}

func TestBroadcast(t *testing.T) {
	r := Broadcast[float32](simd.Width8, 2.5)
	if r.Width() != simd.Width8 {
		t.Fatalf("Width() = %d, want 8", r.Width())
	}
	for i := 0; i < 8; i++ {
		if r.Lane(i) != 2.5 {
			t.Fatalf("Lane(%d) = %v, want 2.5", i, r.Lane(i))
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := regOf(t, 1, 2, 3, 4)
	b := regOf(t, 10, 20, 30, 40)

	sum := a.Add(b)
	prod := a.Mul(b)
	diff := b.Sub(a)
	quot := b.Div(a)
	for i := 0; i < 4; i++ {
		if sum.Lane(i) != a.Lane(i)+b.Lane(i) {
			t.Fatalf("Add lane %d = %v", i, sum.Lane(i))
		}
		if prod.Lane(i) != a.Lane(i)*b.Lane(i) {
			t.Fatalf("Mul lane %d = %v", i, prod.Lane(i))
		}
		if diff.Lane(i) != b.Lane(i)-a.Lane(i) {
			t.Fatalf("Sub lane %d = %v", i, diff.Lane(i))
		}
		if quot.Lane(i) != b.Lane(i)/a.Lane(i) {
			t.Fatalf("Div lane %d = %v", i, quot.Lane(i))
		}
	}
}

func TestMulAddScale(t *testing.T) {
	a := regOf(t, 1, 2)
	b := regOf(t, 3, 4)
	c := regOf(t, 5, 6)

	fma := a.MulAdd(b, c)
	if fma.Lane(0) != 8 || fma.Lane(1) != 14 {
		t.Fatalf("MulAdd = (%v, %v), want (8, 14)", fma.Lane(0), fma.Lane(1))
	}
	s := a.Scale(10)
	if s.Lane(0) != 10 || s.Lane(1) != 20 {
		t.Fatalf("Scale = (%v, %v), want (10, 20)", s.Lane(0), s.Lane(1))
	}
}

func TestAbsNegMinMax(t *testing.T) {
	a := regOf(t, -1, 2, -3, 4)
	b := regOf(t, 0, 0, 0, 0)

	abs := a.Abs()
	for i, want := range []float64{1, 2, 3, 4} {
		if abs.Lane(i) != want {
			t.Fatalf("Abs lane %d = %v, want %v", i, abs.Lane(i), want)
		}
	}
	neg := a.Neg()
	for i := 0; i < 4; i++ {
		if neg.Lane(i) != -a.Lane(i) {
			t.Fatalf("Neg lane %d = %v", i, neg.Lane(i))
		}
	}
	mn := a.Min(b)
	mx := a.Max(b)
	for i := 0; i < 4; i++ {
		if a.Lane(i) < 0 && (mn.Lane(i) != a.Lane(i) || mx.Lane(i) != 0) {
			t.Fatalf("Min/Max lane %d wrong", i)
		}
	}
}

func TestCompareAndSelect(t *testing.T) {
	a := regOf(t, 1, 5, 3, 7)
	b := regOf(t, 4, 4, 4, 4)

	m := a.Lt(b)
	wantMask := []bool{true, false, true, false}
	for i, want := range wantMask {
		if m.Lane(i) != want {
			t.Fatalf("Lt lane %d = %v, want %v", i, m.Lane(i), want)
		}
	}
	sel := Select(m, a, b)
	want := []float64{1, 4, 3, 4}
	for i := range want {
		if sel.Lane(i) != want[i] {
			t.Fatalf("Select lane %d = %v, want %v", i, sel.Lane(i), want[i])
		}
	}
	if !m.Or(m.Not()).All() {
		t.Fatal("m | !m should be all-true")
	}
	if m.And(m.Not()).Any() {
		t.Fatal("m & !m should be all-false")
	}
}

func TestWidthMismatchPanics(t *testing.T) {
	a := Broadcast[float64](simd.Width2, 1)
	b := Broadcast[float64](simd.Width4, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("mixed-width Add should panic")
		}
	}()
	a.Add(b)
}

func TestUnusedLanesStayZero(t *testing.T) {
	a := Broadcast[float64](simd.Width2, 5)
	b := Broadcast[float64](simd.Width2, 5)
	sum := a.Add(b)
	if sum.lanes[2] != 0 || sum.lanes[7] != 0 {
		t.Fatal("lanes beyond the width must stay zero")
	}
}
