package vec

import (
	"github.com/cwbudde/algo-interleave/internal/align"
	"github.com/cwbudde/algo-interleave/simd"
)

// View is a zero-copy alias over one register-sized, register-aligned slice
// of a Buffer. It does not own the memory it points at: its lifetime must not
// exceed the viewed buffer's, and it is invalidated when the buffer
// reallocates (growth beyond capacity).
//
// Cross-precision copies are a compile-time type error: a View[float32]
// cannot be assigned from a View[float64], so the precision-mismatch hazard
// of the register view cannot be expressed in the first place.
type View[T simd.Float] struct {
	data  []T
	width simd.Width
}

// ViewOf wraps an aligned slice as a register view of width w. The slice must
// hold exactly w elements and its first element must be aligned to the
// register byte size; both conditions panic when violated.
func ViewOf[T simd.Float](s []T, w simd.Width) View[T] {
	if !w.Valid() {
		panic("vec: invalid width")
	}
	if len(s) != w.Lanes() {
		panic("vec: view slice length does not match width")
	}
	if !align.IsAligned(s, simd.RegisterBytes[T](w)) {
		panic("vec: view memory is not register-aligned")
	}
	return View[T]{data: s, width: w}
}

// Width returns the register width of the view.
func (v View[T]) Width() simd.Width {
	return v.width
}

// Slice returns the viewed memory. The first element is guaranteed aligned to
// width*sizeof(element) bytes; callers passing it onward must preserve that
// alignment.
func (v View[T]) Slice() []T {
	return v.data
}

// Load reads the viewed memory into a register value.
func (v View[T]) Load() Reg[T] {
	r := Reg[T]{width: v.width}
	copy(r.lanes[:v.width.Lanes()], v.data)
	return r
}

// Store writes a register value to the viewed memory.
// Panics if the register width differs from the view width.
func (v View[T]) Store(r Reg[T]) {
	if r.width != v.width {
		panic("vec: register width mismatch")
	}
	copy(v.data, r.lanes[:v.width.Lanes()])
}

// Broadcast writes x to every lane of the viewed memory.
func (v View[T]) Broadcast(x T) {
	for i := range v.data {
		v.data[i] = x
	}
}

// CopyFrom copies the raw elements of another view of the same width.
// Panics if the widths differ.
func (v View[T]) CopyFrom(o View[T]) {
	if o.width != v.width {
		panic("vec: view width mismatch")
	}
	copy(v.data, o.data)
}

// Lane returns the value of lane i. Panics if i is outside [0, width).
func (v View[T]) Lane(i int) T {
	if i < 0 || i >= v.width.Lanes() {
		panic("vec: lane index out of range")
	}
	return v.data[i]
}

// SetLane writes v to lane i of the viewed memory.
// Panics if i is outside [0, width).
func (v View[T]) SetLane(i int, x T) {
	if i < 0 || i >= v.width.Lanes() {
		panic("vec: lane index out of range")
	}
	v.data[i] = x
}
