package vec

import (
	"github.com/cwbudde/algo-interleave/simd"
)

// Reg is one vector register value of a fixed logical width. Lanes beyond the
// width are unused and always zero. Reg is a plain value type: copying it
// copies the lanes, and no operation on it allocates.
//
// On hardware with narrower native registers than the chosen width the
// arithmetic is emulated lane-wise; the register abstraction and the memory
// layout it implies stay identical either way.
type Reg[T simd.Float] struct {
	lanes [simd.MaxWidth]T
	width simd.Width
}

// Mask is the comparison result type associated with Reg: one boolean per
// lane, tagged with the same width.
type Mask[T simd.Float] struct {
	lanes [simd.MaxWidth]bool
	width simd.Width
}

// Broadcast returns a register of width w with every lane set to v.
func Broadcast[T simd.Float](w simd.Width, v T) Reg[T] {
	if !w.Valid() {
		panic("vec: invalid width")
	}
	var r Reg[T]
	r.width = w
	for i := 0; i < w.Lanes(); i++ {
		r.lanes[i] = v
	}
	return r
}

// Zero returns an all-zero register of width w.
func Zero[T simd.Float](w simd.Width) Reg[T] {
	if !w.Valid() {
		panic("vec: invalid width")
	}
	return Reg[T]{width: w}
}

// Width returns the logical lane count of the register.
func (r Reg[T]) Width() simd.Width {
	return r.width
}

// Lane returns the value of lane i. Panics if i is outside [0, width).
func (r Reg[T]) Lane(i int) T {
	if i < 0 || i >= r.width.Lanes() {
		panic("vec: lane index out of range")
	}
	return r.lanes[i]
}

// WithLane returns a copy of r with lane i set to v.
// Panics if i is outside [0, width).
func (r Reg[T]) WithLane(i int, v T) Reg[T] {
	if i < 0 || i >= r.width.Lanes() {
		panic("vec: lane index out of range")
	}
	r.lanes[i] = v
	return r
}

func sameWidth[T simd.Float](a, b Reg[T]) int {
	if a.width != b.width {
		panic("vec: register width mismatch")
	}
	return a.width.Lanes()
}

// Add returns the lane-wise sum a + b. Panics if the widths differ.
func (r Reg[T]) Add(o Reg[T]) Reg[T] {
	n := sameWidth(r, o)
	out := Reg[T]{width: r.width}
	for i := 0; i < n; i++ {
		out.lanes[i] = r.lanes[i] + o.lanes[i]
	}
	return out
}

// Sub returns the lane-wise difference r - o. Panics if the widths differ.
func (r Reg[T]) Sub(o Reg[T]) Reg[T] {
	n := sameWidth(r, o)
	out := Reg[T]{width: r.width}
	for i := 0; i < n; i++ {
		out.lanes[i] = r.lanes[i] - o.lanes[i]
	}
	return out
}

// Mul returns the lane-wise product r * o. Panics if the widths differ.
func (r Reg[T]) Mul(o Reg[T]) Reg[T] {
	n := sameWidth(r, o)
	out := Reg[T]{width: r.width}
	for i := 0; i < n; i++ {
		out.lanes[i] = r.lanes[i] * o.lanes[i]
	}
	return out
}

// Div returns the lane-wise quotient r / o. Panics if the widths differ.
func (r Reg[T]) Div(o Reg[T]) Reg[T] {
	n := sameWidth(r, o)
	out := Reg[T]{width: r.width}
	for i := 0; i < n; i++ {
		out.lanes[i] = r.lanes[i] / o.lanes[i]
	}
	return out
}

// MulAdd returns r*o + c lane-wise. Panics if the widths differ.
func (r Reg[T]) MulAdd(o, c Reg[T]) Reg[T] {
	n := sameWidth(r, o)
	sameWidth(r, c)
	out := Reg[T]{width: r.width}
	for i := 0; i < n; i++ {
		out.lanes[i] = r.lanes[i]*o.lanes[i] + c.lanes[i]
	}
	return out
}

// Scale returns the register with every lane multiplied by s.
func (r Reg[T]) Scale(s T) Reg[T] {
	out := Reg[T]{width: r.width}
	for i := 0; i < r.width.Lanes(); i++ {
		out.lanes[i] = r.lanes[i] * s
	}
	return out
}

// Neg returns the lane-wise negation of r.
func (r Reg[T]) Neg() Reg[T] {
	out := Reg[T]{width: r.width}
	for i := 0; i < r.width.Lanes(); i++ {
		out.lanes[i] = -r.lanes[i]
	}
	return out
}

// Abs returns the lane-wise absolute value of r.
func (r Reg[T]) Abs() Reg[T] {
	out := Reg[T]{width: r.width}
	for i := 0; i < r.width.Lanes(); i++ {
		v := r.lanes[i]
		if v < 0 {
			v = -v
		}
		out.lanes[i] = v
	}
	return out
}

// Min returns the lane-wise minimum of r and o. Panics if the widths differ.
func (r Reg[T]) Min(o Reg[T]) Reg[T] {
	n := sameWidth(r, o)
	out := Reg[T]{width: r.width}
	for i := 0; i < n; i++ {
		if o.lanes[i] < r.lanes[i] {
			out.lanes[i] = o.lanes[i]
		} else {
			out.lanes[i] = r.lanes[i]
		}
	}
	return out
}

// Max returns the lane-wise maximum of r and o. Panics if the widths differ.
func (r Reg[T]) Max(o Reg[T]) Reg[T] {
	n := sameWidth(r, o)
	out := Reg[T]{width: r.width}
	for i := 0; i < n; i++ {
		if o.lanes[i] > r.lanes[i] {
			out.lanes[i] = o.lanes[i]
		} else {
			out.lanes[i] = r.lanes[i]
		}
	}
	return out
}

// Lt returns the lane-wise comparison r < o. Panics if the widths differ.
func (r Reg[T]) Lt(o Reg[T]) Mask[T] {
	n := sameWidth(r, o)
	m := Mask[T]{width: r.width}
	for i := 0; i < n; i++ {
		m.lanes[i] = r.lanes[i] < o.lanes[i]
	}
	return m
}

// Le returns the lane-wise comparison r <= o. Panics if the widths differ.
func (r Reg[T]) Le(o Reg[T]) Mask[T] {
	n := sameWidth(r, o)
	m := Mask[T]{width: r.width}
	for i := 0; i < n; i++ {
		m.lanes[i] = r.lanes[i] <= o.lanes[i]
	}
	return m
}

// Gt returns the lane-wise comparison r > o. Panics if the widths differ.
func (r Reg[T]) Gt(o Reg[T]) Mask[T] {
	n := sameWidth(r, o)
	m := Mask[T]{width: r.width}
	for i := 0; i < n; i++ {
		m.lanes[i] = r.lanes[i] > o.lanes[i]
	}
	return m
}

// Ge returns the lane-wise comparison r >= o. Panics if the widths differ.
func (r Reg[T]) Ge(o Reg[T]) Mask[T] {
	n := sameWidth(r, o)
	m := Mask[T]{width: r.width}
	for i := 0; i < n; i++ {
		m.lanes[i] = r.lanes[i] >= o.lanes[i]
	}
	return m
}

// Eq returns the lane-wise comparison r == o. Panics if the widths differ.
func (r Reg[T]) Eq(o Reg[T]) Mask[T] {
	n := sameWidth(r, o)
	m := Mask[T]{width: r.width}
	for i := 0; i < n; i++ {
		m.lanes[i] = r.lanes[i] == o.lanes[i]
	}
	return m
}

// Select returns a register whose lanes come from a where the mask is true
// and from b where it is false. Panics if any width differs.
func Select[T simd.Float](m Mask[T], a, b Reg[T]) Reg[T] {
	if m.width != a.width || a.width != b.width {
		panic("vec: register width mismatch")
	}
	out := Reg[T]{width: a.width}
	for i := 0; i < a.width.Lanes(); i++ {
		if m.lanes[i] {
			out.lanes[i] = a.lanes[i]
		} else {
			out.lanes[i] = b.lanes[i]
		}
	}
	return out
}

// Width returns the logical lane count of the mask.
func (m Mask[T]) Width() simd.Width {
	return m.width
}

// Lane returns the boolean value of lane i. Panics if i is out of range.
func (m Mask[T]) Lane(i int) bool {
	if i < 0 || i >= m.width.Lanes() {
		panic("vec: lane index out of range")
	}
	return m.lanes[i]
}

// And returns the lane-wise conjunction of m and o. Panics if the widths differ.
func (m Mask[T]) And(o Mask[T]) Mask[T] {
	if m.width != o.width {
		panic("vec: mask width mismatch")
	}
	out := Mask[T]{width: m.width}
	for i := 0; i < m.width.Lanes(); i++ {
		out.lanes[i] = m.lanes[i] && o.lanes[i]
	}
	return out
}

// Or returns the lane-wise disjunction of m and o. Panics if the widths differ.
func (m Mask[T]) Or(o Mask[T]) Mask[T] {
	if m.width != o.width {
		panic("vec: mask width mismatch")
	}
	out := Mask[T]{width: m.width}
	for i := 0; i < m.width.Lanes(); i++ {
		out.lanes[i] = m.lanes[i] || o.lanes[i]
	}
	return out
}

// Not returns the lane-wise negation of m.
func (m Mask[T]) Not() Mask[T] {
	out := Mask[T]{width: m.width}
	for i := 0; i < m.width.Lanes(); i++ {
		out.lanes[i] = !m.lanes[i]
	}
	return out
}

// Any reports whether any lane of the mask is true.
func (m Mask[T]) Any() bool {
	for i := 0; i < m.width.Lanes(); i++ {
		if m.lanes[i] {
			return true
		}
	}
	return false
}

// All reports whether every lane of the mask is true.
func (m Mask[T]) All() bool {
	for i := 0; i < m.width.Lanes(); i++ {
		if !m.lanes[i] {
			return false
		}
	}
	return true
}
