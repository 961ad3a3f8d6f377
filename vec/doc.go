// Package vec provides the register-sized building blocks of the interleaved
// buffer substrate: a fixed-width vector register value type (Reg), a
// comparison mask type (Mask), a zero-copy register view over aligned memory
// (View), and a width-tagged aligned buffer (Buffer) whose scalar length is
// always an exact multiple of its register width.
//
// Reg and Mask are plain values; operations on them never allocate, so they
// are safe to use on the audio thread. Buffer allocates only on construction
// and explicit growth (SetNumSamples beyond capacity, Reserve).
package vec
