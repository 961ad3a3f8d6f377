package vmath

import "math"

// Cephes-derived minimax coefficients, as used by the SSE/NEON ports of the
// single-precision Cephes kernels. All lane kernels run the polynomial in
// float64 arithmetic regardless of the output precision; the exponent
// handling goes through math.Frexp/math.Ldexp so the same code is exact for
// both float32-grade and float64-grade range limits.
const (
	fourOverPi = 1.27323954473516 // 4/pi

	minusDP1 = -0.78515625
	minusDP2 = -2.4187564849853515625e-4
	minusDP3 = -3.77489497744594108e-8

	sincofP0 = -1.9515295891e-4
	sincofP1 = 8.3321608736e-3
	sincofP2 = -1.6666654611e-1

	coscofP0 = 2.443315711809948e-5
	coscofP1 = -1.388731625493765e-3
	coscofP2 = 4.166664568298827e-2

	log2e   = 1.44269504088896341
	expC1   = 0.693359375
	expC2   = -2.12194440e-4
	expP0   = 1.9875691500e-4
	expP1   = 1.3981999507e-3
	expP2   = 8.3334519073e-3
	expP3   = 4.1665795894e-2
	expP4   = 1.6666665459e-1
	expP5   = 5.0000001201e-1
	expHi64 = 709.78271289338397 // overflow clamp for float64 outputs
	expLo64 = -709.78271289338397
	expHi32 = 88.3762626647949 // overflow clamp for float32 outputs
	expLo32 = -88.3762626647949

	sqrtHalf = 0.707106781186547524
	logP0    = 7.0376836292e-2
	logP1    = -1.1514610310e-1
	logP2    = 1.1676998740e-1
	logP3    = -1.2420140846e-1
	logP4    = 1.4249322787e-1
	logP5    = -1.6668057665e-1
	logP6    = 2.0000714765e-1
	logP7    = -2.4999993993e-1
	logP8    = 3.3333331174e-1
	logQ1    = -2.12194440e-4
	logQ2    = 0.693359375
)

// cephesSinCos computes sine and cosine of x with one shared range reduction,
// the extended-precision modular arithmetic pass of the Cephes sinf/cosf
// kernels.
func cephesSinCos(x float64) (sin, cos float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		nan := math.NaN()
		return nan, nan
	}

	signSin := false
	if x < 0 {
		signSin = true
		x = -x
	}

	// j = (int(x * 4/pi) + 1) & ~1, so the reduced argument lands in an
	// octant boundary aligned to pi/4.
	j := int64(x * fourOverPi)
	j = (j + 1) &^ 1
	y := float64(j)

	polySwap := j&2 != 0
	signSin = signSin != (j&4 != 0)
	signCos := (j-2)&4 != 0

	x = x + y*minusDP1 + y*minusDP2 + y*minusDP3

	z := x * x

	// y1: cosine polynomial over [0, pi/4]; y2: sine polynomial.
	y1 := coscofP0*z + coscofP1
	y1 = y1*z + coscofP2
	y1 = y1*z*z - 0.5*z + 1

	y2 := sincofP0*z + sincofP1
	y2 = y2*z + sincofP2
	y2 = y2*z*x + x

	if polySwap {
		sin, cos = y1, y2
	} else {
		sin, cos = y2, y1
	}
	if signSin {
		sin = -sin
	}
	if !signCos {
		cos = -cos
	}
	return sin, cos
}

// cephesExp computes e**x as exp(g + n*log2) with the reduced argument g run
// through the Cephes expf polynomial. hi/lo clamp the input to the overflow
// range of the output precision.
func cephesExp(x, hi, lo float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}

	fx := x*log2e + 0.5
	n := math.Floor(fx)

	g := x - n*expC1 - n*expC2

	y := expP0*g + expP1
	y = y*g + expP2
	y = y*g + expP3
	y = y*g + expP4
	y = y*g + expP5
	y = y*g*g + g + 1

	return math.Ldexp(y, int(n))
}

// cephesLog computes the natural logarithm via mantissa/exponent split and
// the Cephes logf polynomial over [sqrt(1/2), sqrt(2)).
func cephesLog(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	}

	frac, exp := math.Frexp(x)
	e := float64(exp)
	if frac < sqrtHalf {
		e--
		frac = frac + frac - 1
	} else {
		frac = frac - 1
	}

	z := frac * frac

	y := logP0*frac + logP1
	y = y*frac + logP2
	y = y*frac + logP3
	y = y*frac + logP4
	y = y*frac + logP5
	y = y*frac + logP6
	y = y*frac + logP7
	y = y*frac + logP8
	y = y * frac * z

	y += e * logQ1
	y -= 0.5 * z

	return frac + y + e*logQ2
}
