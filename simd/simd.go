// Package simd resolves the vector register widths available on the running
// CPU for a given element precision.
//
// A width is "available" when the hardware provides a native register of that
// lane count for the precision: 8 float32 lanes need AVX, 8 float64 lanes need
// AVX-512, 4 float64 lanes need AVX, and so on. The baseline widths (4 lanes
// of float32, 2 lanes of float64) are always reported available; on targets
// without any SIMD support they are emulated with scalar loops, which keeps
// the bucket layout of interleaved buffers identical across architectures of
// the same capability class.
//
// All queries are answered from a one-time CPU feature detection pass; see
// the internal cpu package. Tests can force a feature set to exercise the
// layout logic of other architectures.
package simd

import (
	"unsafe"

	"github.com/cwbudde/algo-interleave/internal/cpu"
)

// Float is the set of element precisions supported by the buffer substrate.
type Float interface {
	float32 | float64
}

// Width is the number of lanes in a vector register. Valid values are 2, 4
// and 8.
type Width int

const (
	// Width2 is a 2-lane register (128-bit for float64).
	Width2 Width = 2

	// Width4 is a 4-lane register (128-bit for float32, 256-bit for float64).
	Width4 Width = 4

	// Width8 is an 8-lane register (256-bit for float32, 512-bit for float64).
	Width8 Width = 8

	// MaxWidth is the largest supported lane count.
	MaxWidth = 8
)

// Valid reports whether w is one of the supported lane counts.
func (w Width) Valid() bool {
	return w == Width2 || w == Width4 || w == Width8
}

// Lanes returns the lane count as a plain int.
func (w Width) Lanes() int {
	return int(w)
}

// ElemSize returns the size of the element type T in bytes.
func ElemSize[T Float]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// RegisterBytes returns the byte size of a register of width w holding
// elements of type T. Memory passed to aligned loads and stores of such a
// register must be aligned to this value.
func RegisterBytes[T Float](w Width) int {
	return w.Lanes() * ElemSize[T]()
}

// Available reports whether a native register of width w exists for the
// precision T on the running CPU. The baseline width of each precision
// (4 for float32, 2 for float64) is always available; wider registers depend
// on the detected instruction set.
func Available[T Float](w Width) bool {
	if !w.Valid() {
		panic("simd: invalid width")
	}
	f := cpu.DetectFeatures()
	single := ElemSize[T]() == 4
	if f.ForceGeneric {
		if single {
			return w == Width4
		}
		return w == Width2
	}
	if single {
		switch w {
		case Width8:
			return f.HasAVX
		case Width4:
			return true
		default:
			// No target provides a native 2-lane float32 register; a 4-lane
			// register covers that case.
			return false
		}
	}
	switch w {
	case Width8:
		return f.HasAVX512
	case Width4:
		return f.HasAVX
	default:
		return true
	}
}

// AvailableWidths returns the widths available for precision T, ordered
// largest-first. The result is never empty: the baseline width of the
// precision is always present.
func AvailableWidths[T Float]() []Width {
	widths := make([]Width, 0, 3)
	for _, w := range []Width{Width8, Width4, Width2} {
		if Available[T](w) {
			widths = append(widths, w)
		}
	}
	return widths
}

// WidestWidth returns the largest width available for precision T.
func WidestWidth[T Float]() Width {
	for _, w := range []Width{Width8, Width4, Width2} {
		if Available[T](w) {
			return w
		}
	}
	// Unreachable: the baseline width is always available.
	panic("simd: no width available")
}

// Has128BitSIMDRegisters reports whether the CPU has native 128-bit vector
// registers (SSE2 on x86-64, NEON on ARM).
func Has128BitSIMDRegisters() bool {
	f := cpu.DetectFeatures()
	return f.HasSSE2 || f.HasNEON
}

// Has256BitSIMDRegisters reports whether the CPU has native 256-bit vector
// registers (AVX).
func Has256BitSIMDRegisters() bool {
	return cpu.DetectFeatures().HasAVX
}

// Has512BitSIMDRegisters reports whether the CPU has native 512-bit vector
// registers (AVX-512).
func Has512BitSIMDRegisters() bool {
	return cpu.DetectFeatures().HasAVX512
}

// SupportsDoublePrecision reports whether the CPU has native vector registers
// for float64 lanes (SSE2 on x86-64, AArch64 NEON on ARM). When false, the
// float64 baseline width is emulated with scalar arithmetic.
func SupportsDoublePrecision() bool {
	f := cpu.DetectFeatures()
	return f.HasSSE2 || f.HasNEON
}
