// Package interleaved provides the multi-channel buffer that packs an
// arbitrary channel count into a minimal set of fixed-width vector buckets.
//
// Each bucket is a width-tagged vec.Buffer whose registers hold one sample
// frame across the bucket's channels, so a DSP kernel written against a
// register width processes that many channels per operation regardless of
// the logical channel count. The bucket composition is derived from the
// channel count and the register widths available for the element precision,
// choosing the mix that wastes the fewest lanes; the rules are documented on
// (*Buffer).SetNumChannels.
//
// A buffer instance is owned by exactly one caller at a time. Interleave,
// Deinterleave, At, Fill and bucket access are allocation-free and safe for
// the audio thread; SetNumChannels, SetNumSamples and Reserve may allocate
// and belong in setup or staged reconfiguration.
package interleaved
