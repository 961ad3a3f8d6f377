// Package vmath provides the element kernels of the buffer substrate:
// lane-wise transcendental functions (sin, cos, tan, exp, log) usable
// uniformly across every register width, plus block arithmetic over the
// aligned element slices exposed by buffers.
//
// The transcendental kernels are ported minimax polynomial approximations
// derived from the Cephes math library (via Julien Pommier's SIMD ports),
// for use on targets without a native vectorized math library. Results match
// the standard library to within 1e-6 relative tolerance for arguments in
// the audio-typical range; exact tolerances are documented per function.
//
// Block arithmetic on float64 slices delegates to algo-vecmath, which picks
// the best SIMD kernel for the running CPU; float32 slices use plain loops.
package vmath
