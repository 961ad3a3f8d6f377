package vmath

import (
	"github.com/cwbudde/algo-interleave/simd"
	"github.com/cwbudde/algo-interleave/vec"
)

func expClamp[T simd.Float]() (hi, lo float64) {
	if simd.ElemSize[T]() == 4 {
		return expHi32, expLo32
	}
	return expHi64, expLo64
}

// Sin returns the lane-wise sine of x (radians).
// Tolerance: 1e-6 relative (plus 1e-6 absolute near zeros) versus math.Sin.
func Sin[T simd.Float](x vec.Reg[T]) vec.Reg[T] {
	out := x
	for i := 0; i < x.Width().Lanes(); i++ {
		s, _ := cephesSinCos(float64(x.Lane(i)))
		out = out.WithLane(i, T(s))
	}
	return out
}

// Cos returns the lane-wise cosine of x (radians).
// Tolerance: 1e-6 relative (plus 1e-6 absolute near zeros) versus math.Cos.
func Cos[T simd.Float](x vec.Reg[T]) vec.Reg[T] {
	out := x
	for i := 0; i < x.Width().Lanes(); i++ {
		_, c := cephesSinCos(float64(x.Lane(i)))
		out = out.WithLane(i, T(c))
	}
	return out
}

// SinCos returns the lane-wise sine and cosine of x with one shared range
// reduction per lane. Cheaper than calling Sin and Cos separately.
func SinCos[T simd.Float](x vec.Reg[T]) (sin, cos vec.Reg[T]) {
	sin, cos = x, x
	for i := 0; i < x.Width().Lanes(); i++ {
		s, c := cephesSinCos(float64(x.Lane(i)))
		sin = sin.WithLane(i, T(s))
		cos = cos.WithLane(i, T(c))
	}
	return sin, cos
}

// Tan returns the lane-wise tangent of x, computed as sin/cos from the shared
// range reduction. Tolerance: 1e-6 relative away from the poles.
func Tan[T simd.Float](x vec.Reg[T]) vec.Reg[T] {
	out := x
	for i := 0; i < x.Width().Lanes(); i++ {
		s, c := cephesSinCos(float64(x.Lane(i)))
		out = out.WithLane(i, T(s/c))
	}
	return out
}

// Exp returns the lane-wise natural exponential of x.
// Tolerance: 1e-6 relative versus math.Exp. Inputs are clamped to the
// overflow range of the output precision.
func Exp[T simd.Float](x vec.Reg[T]) vec.Reg[T] {
	hi, lo := expClamp[T]()
	out := x
	for i := 0; i < x.Width().Lanes(); i++ {
		out = out.WithLane(i, T(cephesExp(float64(x.Lane(i)), hi, lo)))
	}
	return out
}

// Log returns the lane-wise natural logarithm of x.
// Tolerance: 1e-6 relative versus math.Log for positive arguments;
// Log(0) = -Inf, Log(x<0) = NaN.
func Log[T simd.Float](x vec.Reg[T]) vec.Reg[T] {
	out := x
	for i := 0; i < x.Width().Lanes(); i++ {
		out = out.WithLane(i, T(cephesLog(float64(x.Lane(i)))))
	}
	return out
}

func checkLens[T simd.Float](dst, x []T) {
	if len(dst) != len(x) {
		panic("vmath: slice length mismatch")
	}
}

// SinBlock computes dst[i] = sin(x[i]) element-wise.
// Slices must have equal length. Panics if lengths differ.
func SinBlock[T simd.Float](dst, x []T) {
	checkLens(dst, x)
	for i := range x {
		s, _ := cephesSinCos(float64(x[i]))
		dst[i] = T(s)
	}
}

// CosBlock computes dst[i] = cos(x[i]) element-wise.
// Slices must have equal length. Panics if lengths differ.
func CosBlock[T simd.Float](dst, x []T) {
	checkLens(dst, x)
	for i := range x {
		_, c := cephesSinCos(float64(x[i]))
		dst[i] = T(c)
	}
}

// SinCosBlock computes sinDst[i] = sin(x[i]) and cosDst[i] = cos(x[i]) with
// one range reduction per element. Panics if lengths differ.
func SinCosBlock[T simd.Float](sinDst, cosDst, x []T) {
	checkLens(sinDst, x)
	checkLens(cosDst, x)
	for i := range x {
		s, c := cephesSinCos(float64(x[i]))
		sinDst[i] = T(s)
		cosDst[i] = T(c)
	}
}

// TanBlock computes dst[i] = tan(x[i]) element-wise.
// Slices must have equal length. Panics if lengths differ.
func TanBlock[T simd.Float](dst, x []T) {
	checkLens(dst, x)
	for i := range x {
		s, c := cephesSinCos(float64(x[i]))
		dst[i] = T(s / c)
	}
}

// ExpBlock computes dst[i] = exp(x[i]) element-wise.
// Slices must have equal length. Panics if lengths differ.
func ExpBlock[T simd.Float](dst, x []T) {
	hi, lo := expClamp[T]()
	checkLens(dst, x)
	for i := range x {
		dst[i] = T(cephesExp(float64(x[i]), hi, lo))
	}
}

// LogBlock computes dst[i] = log(x[i]) element-wise.
// Slices must have equal length. Panics if lengths differ.
func LogBlock[T simd.Float](dst, x []T) {
	checkLens(dst, x)
	for i := range x {
		dst[i] = T(cephesLog(float64(x[i])))
	}
}
