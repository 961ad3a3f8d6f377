package vmath

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-interleave/simd"
)

// Block arithmetic over the aligned element slices exposed by buffers and
// buckets. The float64 paths delegate to algo-vecmath, which dispatches to
// the best SIMD kernel for the running CPU; float32 paths use plain loops.

func checkLens3[T any](dst, a, b []T) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vmath: slice length mismatch")
	}
}

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlock[T simd.Float](dst, a, b []T) {
	checkLens3(dst, a, b)
	if d, ok := any(dst).([]float64); ok {
		copy(d, any(a).([]float64))
		vecmath.AddBlockInPlace(d, any(b).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// AddBlockInPlace performs in-place element-wise addition: dst[i] += src[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlockInPlace[T simd.Float](dst, src []T) {
	if len(dst) != len(src) {
		panic("vmath: slice length mismatch")
	}
	if d, ok := any(dst).([]float64); ok {
		vecmath.AddBlockInPlace(d, any(src).([]float64))
		return
	}
	for i := range dst {
		dst[i] += src[i]
	}
}

// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
func MulBlock[T simd.Float](dst, a, b []T) {
	checkLens3(dst, a, b)
	if d, ok := any(dst).([]float64); ok {
		vecmath.MulBlock(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// MulBlockInPlace performs in-place element-wise multiplication: dst[i] *= src[i].
// Slices must have equal length. Panics if lengths differ.
func MulBlockInPlace[T simd.Float](dst, src []T) {
	if len(dst) != len(src) {
		panic("vmath: slice length mismatch")
	}
	if d, ok := any(dst).([]float64); ok {
		vecmath.MulBlockInPlace(d, any(src).([]float64))
		return
	}
	for i := range dst {
		dst[i] *= src[i]
	}
}

// ScaleBlock performs element-wise scaling: dst[i] = src[i] * scalar.
// Slices must have equal length. Panics if lengths differ.
func ScaleBlock[T simd.Float](dst, src []T, scalar T) {
	if len(dst) != len(src) {
		panic("vmath: slice length mismatch")
	}
	if d, ok := any(dst).([]float64); ok {
		vecmath.ScaleBlock(d, any(src).([]float64), float64(scalar))
		return
	}
	for i := range dst {
		dst[i] = src[i] * scalar
	}
}

// ScaleBlockInPlace performs in-place element-wise scaling: dst[i] *= scalar.
func ScaleBlockInPlace[T simd.Float](dst []T, scalar T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.ScaleBlock(d, d, float64(scalar))
		return
	}
	for i := range dst {
		dst[i] *= scalar
	}
}
