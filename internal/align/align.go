// Package align provides cache-line-aligned slice allocation for SIMD
// load/store operations.
//
// Go's allocator only guarantees the natural alignment of the element type,
// which is not enough for vector loads that require the address to be a
// multiple of the register byte size. Slices returned by this package have
// their first element on a 64-byte boundary, which satisfies every register
// width in use here (2, 4 and 8 lanes of float32 or float64 are at most
// 64 bytes wide).
package align

import (
	"unsafe"
)

// Boundary is the alignment of every allocation, in bytes. It equals the
// cache line size of all supported targets and the byte width of the widest
// supported vector register (8 lanes of float64).
const Boundary = 64

// Block owns one aligned allocation. The slab field pins the over-allocated
// backing array so that the garbage collector keeps it alive for as long as
// the aligned window into it is reachable.
type Block[T Float] struct {
	data []T
	slab []byte
}

// Float is the set of element precisions supported by the buffer substrate.
type Float interface {
	float32 | float64
}

// ElemSize returns the size of T in bytes.
func ElemSize[T Float]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// New allocates an aligned Block holding n elements, all zero.
func New[T Float](n int) Block[T] {
	if n <= 0 {
		return Block[T]{}
	}
	size := n * ElemSize[T]()
	slab := make([]byte, size+Boundary-1)
	addr := uintptr(unsafe.Pointer(&slab[0]))
	offset := int((Boundary - addr%Boundary) % Boundary)
	data := unsafe.Slice((*T)(unsafe.Pointer(&slab[offset])), n)
	return Block[T]{data: data, slab: slab}
}

// Data returns the aligned element slice. Its first element is guaranteed to
// sit on a Boundary-byte address.
func (b *Block[T]) Data() []T {
	return b.data
}

// Len returns the number of elements in the block.
func (b *Block[T]) Len() int {
	return len(b.data)
}

// IsAligned reports whether the first element of s sits on an n-byte boundary.
// Empty slices are trivially aligned.
func IsAligned[T Float](s []T, n int) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%uintptr(n) == 0
}
