// Package testutil provides deterministic signal generators and numeric
// comparison helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Float matches the element types the buffer packages operate on.
type Float interface {
	float32 | float64
}

// Ramp returns n ascending values starting at 0.
func Ramp[T Float](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i)
	}
	return out
}

// PhaseRamp returns n phase values covering cycles full turns, suitable as
// input to the trigonometric kernels so the result lands on an exact FFT bin.
func PhaseRamp(cycles, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 2 * math.Pi * float64(cycles) * float64(i) / float64(n)
	}
	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude] from a
// fixed seed, so failures reproduce.
func DeterministicNoise[T Float](seed int64, amplitude T, n int) []T {
	out := make([]T, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T(rng.Float64()*2-1) * amplitude
	}
	return out
}

// Impulse returns a unit impulse at the given position.
func Impulse[T Float](n, pos int) []T {
	out := make([]T, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}
