package vmath

import (
	"github.com/meko-christian/algo-approx"
)

// ln10over20 converts decibels to natural log units: lin = e^(db * ln(10)/20).
const ln10over20 = 0.115129254649702284200899573

// Fast scalar helpers for control-rate work around the buffer (gain staging,
// envelope thresholds). These trade accuracy (~1e-4 relative) for speed and
// are not part of the 1e-6 conformance-bound kernel set.

// FastDecibelsToLinear converts a decibel value to a linear gain factor.
func FastDecibelsToLinear(db float64) float64 {
	return approx.FastExp(db * ln10over20)
}

// FastLinearToDecibels converts a linear gain factor to decibels.
// Returns a large negative value for non-positive input.
func FastLinearToDecibels(lin float64) float64 {
	if lin <= 0 {
		return -300
	}
	return approx.FastLog(lin) / ln10over20
}

// FastMagnitude computes sqrt(re*re + im*im) with a fast square root.
func FastMagnitude(re, im float64) float64 {
	return approx.FastSqrt(re*re + im*im)
}
