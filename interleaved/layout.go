package interleaved

import (
	"github.com/cwbudde/algo-interleave/simd"
)

// slot addresses one channel inside the bucket set: which bucket holds it and
// which lane within that bucket's registers.
type slot struct {
	bucket int
	lane   int
}

// layout is the bucket composition derived for one channel count: the width
// of every bucket in order, the (bucket, lane) slot of every channel, and the
// number of lanes actually carrying channels per bucket.
type layout struct {
	widths []simd.Width
	slots  []slot
	used   []int
}

// deriveLayout computes the bucket layout for numChannels over the given
// width list (largest first, never empty). The policy, with W the largest
// width and w the next smaller available one:
//
//   - numChannels <= w: no W-wide bucket at all; the same rule is applied one
//     level down on the remaining widths, bottoming out in a single bucket of
//     the smallest width that still covers the channels.
//   - otherwise, with q = numChannels / W and r = numChannels % W:
//     0 < r <= w allocates one w-wide bucket holding channels [0, w) followed
//     by q W-wide buckets holding channels [w, numChannels); any other r
//     allocates only W-wide buckets, rounding up.
//
// This bounds the wasted lanes to less than w whenever the remainder bucket
// is used, instead of up to W-1 when rounding up to a full wide bucket.
// Deriving the layout twice for the same channel count yields identical
// bucket widths, so re-derivation is idempotent.
func deriveLayout(numChannels int, widths []simd.Width) layout {
	var l layout
	if numChannels <= 0 || len(widths) == 0 {
		return l
	}

	for len(widths) > 1 && numChannels <= widths[1].Lanes() {
		widths = widths[1:]
	}

	wide := widths[0].Lanes()
	q, r := numChannels/wide, numChannels%wide

	if len(widths) > 1 && r > 0 && r <= widths[1].Lanes() {
		// Remainder bucket first, then the full-width buckets.
		narrow := widths[1].Lanes()
		l.widths = append(l.widths, widths[1])
		l.used = append(l.used, narrow)
		for i := 0; i < q; i++ {
			l.widths = append(l.widths, widths[0])
			l.used = append(l.used, wide)
		}
		l.used[len(l.used)-1] = numChannels - narrow - (q-1)*wide

		l.slots = make([]slot, numChannels)
		for c := 0; c < narrow; c++ {
			l.slots[c] = slot{bucket: 0, lane: c}
		}
		for c := narrow; c < numChannels; c++ {
			l.slots[c] = slot{
				bucket: 1 + (c-narrow)/wide,
				lane:   (c - narrow) % wide,
			}
		}
		return l
	}

	numBuckets := q
	if r > 0 {
		numBuckets++
	}
	l.widths = make([]simd.Width, numBuckets)
	l.used = make([]int, numBuckets)
	for i := range l.widths {
		l.widths[i] = widths[0]
		l.used[i] = wide
	}
	if r > 0 {
		l.used[numBuckets-1] = r
	}
	l.slots = make([]slot, numChannels)
	for c := 0; c < numChannels; c++ {
		l.slots[c] = slot{bucket: c / wide, lane: c % wide}
	}
	return l
}

// totalLanes returns the sum of all bucket widths.
func (l layout) totalLanes() int {
	n := 0
	for _, w := range l.widths {
		n += w.Lanes()
	}
	return n
}

// sameWidths reports whether two layouts allocate the same bucket widths in
// the same order.
func sameWidths(a, b []simd.Width) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
