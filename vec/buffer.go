package vec

import (
	"github.com/cwbudde/algo-interleave/internal/align"
	"github.com/cwbudde/algo-interleave/simd"
)

// Buffer owns one cache-line-aligned block of elements sized as an exact
// multiple of its register width. It exposes both scalar (flat index) and
// register-width (bucketed) access.
//
// Capacity never shrinks implicitly: SetNumSamples below the current capacity
// reuses the existing block, so register views into the buffer stay valid
// across any resize that does not grow past capacity.
type Buffer[T simd.Float] struct {
	block      align.Block[T]
	width      simd.Width
	numSamples int
}

// New allocates a Buffer of the given register width holding numSamples
// registers (numSamples*width elements), zero-filled.
func New[T simd.Float](w simd.Width, numSamples int) *Buffer[T] {
	if !w.Valid() {
		panic("vec: invalid width")
	}
	if numSamples < 0 {
		numSamples = 0
	}
	b := &Buffer[T]{width: w}
	b.Reserve(numSamples)
	b.numSamples = numSamples
	return b
}

// Width returns the register width of the buffer.
func (b *Buffer[T]) Width() simd.Width {
	return b.width
}

// NumSamples returns the logical length of the buffer measured in registers.
func (b *Buffer[T]) NumSamples() int {
	return b.numSamples
}

// ScalarLen returns the logical length of the buffer measured in elements.
// It is always an exact multiple of the width.
func (b *Buffer[T]) ScalarLen() int {
	return b.numSamples * b.width.Lanes()
}

// Capacity returns the allocated capacity measured in registers.
func (b *Buffer[T]) Capacity() int {
	return b.block.Len() / b.width.Lanes()
}

// Reserve grows the allocated capacity to hold at least numSamples registers
// without changing the logical size. It never reduces capacity. Existing data
// is preserved; any outstanding View into the buffer is invalidated when a
// reallocation occurs.
func (b *Buffer[T]) Reserve(numSamples int) {
	if numSamples <= b.Capacity() {
		return
	}
	grown := align.New[T](numSamples * b.width.Lanes())
	copy(grown.Data(), b.block.Data()[:b.ScalarLen()])
	b.block = grown
}

// SetNumSamples sets the logical length to numSamples registers, growing the
// allocation if numSamples exceeds the current capacity. Elements newly
// exposed by growth beyond the previous length are zeroed; shrinking leaves
// the trailing elements untouched and keeps the capacity.
func (b *Buffer[T]) SetNumSamples(numSamples int) {
	if numSamples < 0 {
		numSamples = 0
	}
	old := b.ScalarLen()
	b.Reserve(numSamples)
	b.numSamples = numSamples
	// A freshly reserved block is zero-filled, but a shrink followed by a
	// regrow within capacity re-exposes stale elements.
	data := b.block.Data()
	for i := old; i < b.ScalarLen(); i++ {
		data[i] = 0
	}
}

// Compact trims the allocated capacity down to the current logical size.
// Outstanding views are invalidated.
func (b *Buffer[T]) Compact() {
	if b.Capacity() == b.numSamples {
		return
	}
	trimmed := align.New[T](b.ScalarLen())
	copy(trimmed.Data(), b.block.Data()[:b.ScalarLen()])
	b.block = trimmed
}

// Fill sets every element of the logical buffer to value.
func (b *Buffer[T]) Fill(value T) {
	data := b.block.Data()[:b.ScalarLen()]
	for i := range data {
		data[i] = value
	}
}

// Data returns the logical element slice (length ScalarLen). The first
// element is aligned to the register byte size.
func (b *Buffer[T]) Data() []T {
	return b.block.Data()[:b.ScalarLen()]
}

// At returns a pointer to the element at the given flat index.
// Panics if flatIndex is outside [0, ScalarLen()).
func (b *Buffer[T]) At(flatIndex int) *T {
	if flatIndex < 0 || flatIndex >= b.ScalarLen() {
		panic("vec: flat index out of range")
	}
	return &b.block.Data()[flatIndex]
}

// Bucket returns a register view over the width elements at
// sampleIndex*width. Panics if sampleIndex is outside [0, NumSamples()).
// The view aliases the buffer's memory and is invalidated by reallocation.
func (b *Buffer[T]) Bucket(sampleIndex int) View[T] {
	if sampleIndex < 0 || sampleIndex >= b.numSamples {
		panic("vec: sample index out of range")
	}
	lanes := b.width.Lanes()
	start := sampleIndex * lanes
	return View[T]{data: b.block.Data()[start : start+lanes], width: b.width}
}
