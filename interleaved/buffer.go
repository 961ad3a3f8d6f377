package interleaved

import (
	"github.com/cwbudde/algo-interleave/simd"
	"github.com/cwbudde/algo-interleave/vec"
)

// Buffer stores multi-channel sample data interleaved register-wise: channels
// are packed into lanes of one or more vector-width buckets, and consecutive
// samples of a bucket's channel group sit in consecutive registers. The
// bucket composition follows the layout policy documented on deriveLayout.
type Buffer[T simd.Float] struct {
	buckets []*vec.Buffer[T]
	layout  layout

	numChannels int
	numSamples  int
	capacity    int
}

// New allocates a buffer for numChannels channels of numSamples samples
// each. It panics if either argument is negative.
func New[T simd.Float](numChannels, numSamples int) *Buffer[T] {
	if numChannels < 0 {
		panic("interleaved: negative channel count")
	}
	if numSamples < 0 {
		panic("interleaved: negative sample count")
	}
	b := &Buffer[T]{numSamples: numSamples, capacity: numSamples}
	b.SetNumChannels(numChannels)
	return b
}

// NumChannels returns the current channel count.
func (b *Buffer[T]) NumChannels() int { return b.numChannels }

// NumSamples returns the current per-channel sample count.
func (b *Buffer[T]) NumSamples() int { return b.numSamples }

// Capacity returns the per-channel sample capacity the buckets are backed
// for. Growing the sample count beyond this reallocates.
func (b *Buffer[T]) Capacity() int { return b.capacity }

// NumBuckets returns the number of buckets in the current layout.
func (b *Buffer[T]) NumBuckets() int { return len(b.buckets) }

// Bucket returns the i-th bucket. The bucket order matches the layout
// policy, so lower-indexed channels live in lower-indexed buckets. It panics
// if i is out of range.
func (b *Buffer[T]) Bucket(i int) *vec.Buffer[T] {
	if i < 0 || i >= len(b.buckets) {
		panic("interleaved: bucket index out of range")
	}
	return b.buckets[i]
}

// BucketCount returns how many buckets of width w the current layout holds.
func (b *Buffer[T]) BucketCount(w simd.Width) int {
	n := 0
	for _, bw := range b.layout.widths {
		if bw == w {
			n++
		}
	}
	return n
}

// BucketOfWidth returns the i-th bucket of width w, counting in layout
// order. It panics if fewer than i+1 buckets of that width exist.
func (b *Buffer[T]) BucketOfWidth(w simd.Width, i int) *vec.Buffer[T] {
	if i >= 0 {
		for j, bw := range b.layout.widths {
			if bw != w {
				continue
			}
			if i == 0 {
				return b.buckets[j]
			}
			i--
		}
	}
	panic("interleaved: bucket index out of range")
}

// BucketWidth returns the vector width of the i-th bucket. It panics if i is
// out of range.
func (b *Buffer[T]) BucketWidth(i int) simd.Width {
	if i < 0 || i >= len(b.layout.widths) {
		panic("interleaved: bucket index out of range")
	}
	return b.layout.widths[i]
}

// UsedLanes returns how many lanes of the i-th bucket carry channel data;
// the remaining lanes are padding. It panics if i is out of range.
func (b *Buffer[T]) UsedLanes(i int) int {
	if i < 0 || i >= len(b.layout.used) {
		panic("interleaved: bucket index out of range")
	}
	return b.layout.used[i]
}

// ChannelSlot returns the bucket index and lane the given channel is packed
// into. It panics if channel is out of range.
func (b *Buffer[T]) ChannelSlot(channel int) (bucket, lane int) {
	if channel < 0 || channel >= b.numChannels {
		panic("interleaved: channel index out of range")
	}
	s := b.layout.slots[channel]
	return s.bucket, s.lane
}

// SetNumChannels re-derives the bucket layout for the new channel count.
//
// With W the widest available register and w the next narrower one, a count
// that fits w entirely gets a single bucket of the smallest width that still
// covers it. Larger counts get numChannels/W buckets of width W, plus either
// one leading w-wide bucket when the remainder fits it, or one more W-wide
// bucket otherwise. Channels fill buckets in order, lane by lane, so the
// wasted lanes always sit at the end of the last bucket and never exceed
// w-1 when the leading narrow bucket is used.
//
// When the derived bucket widths match the current ones the existing buckets
// and their storage are kept, so calling this with an unchanged channel count
// never reallocates. Bucket contents are unspecified after a layout change.
func (b *Buffer[T]) SetNumChannels(numChannels int) {
	if numChannels < 0 {
		panic("interleaved: negative channel count")
	}
	l := deriveLayout(numChannels, simd.AvailableWidths[T]())
	if sameWidths(l.widths, b.layout.widths) {
		b.layout = l
		b.numChannels = numChannels
		return
	}
	buckets := make([]*vec.Buffer[T], len(l.widths))
	for i, w := range l.widths {
		bk := vec.New[T](w, b.capacity)
		bk.SetNumSamples(b.numSamples)
		buckets[i] = bk
	}
	b.buckets = buckets
	b.layout = l
	b.numChannels = numChannels
}

// SetNumSamples resizes every bucket to n samples per channel, growing the
// backing storage if n exceeds the capacity. Samples beyond the previous
// count read as zero. It panics if n is negative.
func (b *Buffer[T]) SetNumSamples(n int) {
	if n < 0 {
		panic("interleaved: negative sample count")
	}
	if n > b.capacity {
		b.capacity = n
	}
	for _, bk := range b.buckets {
		bk.Reserve(b.capacity)
		bk.SetNumSamples(n)
	}
	b.numSamples = n
}

// Reserve grows the per-channel sample capacity to at least n without
// changing the sample count. It never shrinks.
func (b *Buffer[T]) Reserve(n int) {
	if n <= b.capacity {
		return
	}
	b.capacity = n
	for _, bk := range b.buckets {
		bk.Reserve(n)
	}
}

// Compact releases excess capacity so that capacity equals the current
// sample count. This reallocates every bucket whose capacity exceeds the
// sample count.
func (b *Buffer[T]) Compact() {
	for _, bk := range b.buckets {
		bk.Compact()
	}
	b.capacity = b.numSamples
}

// Fill sets every lane of every bucket to v, padding lanes included.
func (b *Buffer[T]) Fill(v T) {
	for _, bk := range b.buckets {
		bk.Fill(v)
	}
}

// Zero clears every lane of every bucket.
func (b *Buffer[T]) Zero() { b.Fill(0) }

// At returns a pointer to the sample at (channel, sample). It panics if
// either index is out of range.
func (b *Buffer[T]) At(channel, sample int) *T {
	if channel < 0 || channel >= b.numChannels {
		panic("interleaved: channel index out of range")
	}
	if sample < 0 || sample >= b.numSamples {
		panic("interleaved: sample index out of range")
	}
	s := b.layout.slots[channel]
	lanes := b.layout.widths[s.bucket].Lanes()
	return b.buckets[s.bucket].At(sample*lanes + s.lane)
}

// Interleave packs planar channel data into the buckets. src holds one slice
// per channel, all of equal length; it may cover fewer channels than the
// buffer has, in which case the remaining lanes are zeroed. The logical
// sample count is set to the source length. Lanes not written by src,
// padding lanes included, are zeroed first so reductions over whole
// registers see no stale data.
//
// Interleave never allocates: it returns false, leaving the buffer
// untouched, when src covers more channels than the buffer has, when the
// channel slices differ in length, or when the source length exceeds the
// reserved capacity. Callers resolve the last case with Reserve or
// SetNumSamples during setup.
func (b *Buffer[T]) Interleave(src [][]T) bool {
	if len(src) > b.numChannels {
		return false
	}
	n := 0
	if len(src) > 0 {
		n = len(src[0])
		for _, ch := range src[1:] {
			if len(ch) != n {
				return false
			}
		}
	}
	if n > b.capacity {
		return false
	}
	b.SetNumSamples(n)

	// Zero every bucket that src does not overwrite completely. Channels
	// occupy buckets in order, so the covered lane count per bucket follows
	// from the running channel base.
	base := 0
	for i, bk := range b.buckets {
		covered := len(src) - base
		if covered < b.layout.widths[i].Lanes() {
			bk.Fill(0)
		}
		base += b.layout.used[i]
	}

	for c, ch := range src {
		s := b.layout.slots[c]
		bk := b.buckets[s.bucket]
		lanes := b.layout.widths[s.bucket].Lanes()
		data := bk.Data()
		for i, v := range ch {
			data[i*lanes+s.lane] = v
		}
	}
	return true
}

// Deinterleave unpacks the buckets back into planar channel slices. dst
// holds one slice per requested channel, each no longer than NumSamples;
// shorter slices receive a prefix. It may request fewer channels than the
// buffer holds. It returns false if it asks for more channels or samples
// than the buffer currently has.
func (b *Buffer[T]) Deinterleave(dst [][]T) bool {
	if len(dst) > b.numChannels {
		return false
	}
	for _, ch := range dst {
		if len(ch) > b.numSamples {
			return false
		}
	}
	for c, ch := range dst {
		s := b.layout.slots[c]
		bk := b.buckets[s.bucket]
		lanes := b.layout.widths[s.bucket].Lanes()
		data := bk.Data()
		for i := range ch {
			ch[i] = data[i*lanes+s.lane]
		}
	}
	return true
}

// DeinterleaveTracks treats the buffer as numTracks parallel track groups of
// len(dst) channels each and sums them into the planar output: buffer
// channel n*len(dst)+c accumulates into dst[c]. The output slices must all
// have the same length, no longer than NumSamples. It returns false if
// len(dst)*numTracks exceeds the channel count or the output is longer than
// the buffer.
func (b *Buffer[T]) DeinterleaveTracks(dst [][]T, numTracks int) bool {
	if numTracks <= 0 || len(dst)*numTracks > b.numChannels {
		return false
	}
	n := 0
	if len(dst) > 0 {
		n = len(dst[0])
	}
	for _, ch := range dst {
		if len(ch) != n {
			return false
		}
	}
	if n > b.numSamples {
		return false
	}
	for _, ch := range dst {
		for i := range ch {
			ch[i] = 0
		}
	}
	for t := 0; t < numTracks; t++ {
		for c, ch := range dst {
			s := b.layout.slots[t*len(dst)+c]
			bk := b.buckets[s.bucket]
			lanes := b.layout.widths[s.bucket].Lanes()
			data := bk.Data()
			for i := range ch {
				ch[i] += data[i*lanes+s.lane]
			}
		}
	}
	return true
}
