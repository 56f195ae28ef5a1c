package fold

import (
	"fmt"
	"iter"

	"github.com/arloliu/nfold/errs"
	"github.com/arloliu/nfold/internal/options"
	"github.com/arloliu/nfold/ndarray"
)

// Segments returns a lazy, restartable sequence of the individual fold
// segments, in strictly increasing segment order, together with the segment
// count. Each yielded segment has the input's shape with the fold axis
// length replaced by size, and borrows (does not copy) the padded backing
// array.
//
// The sequence is functionally equivalent to reading Fold's output one
// segment at a time; it exists for callers that prefer slices over an
// irregular-stride view. Re-ranging over the returned sequence restarts it
// from the first segment.
//
// Like Fold, an oversized window yields a single degenerate whole-axis
// segment together with errs.ErrWindowTooLarge.
func Segments[T any](a *ndarray.Array[T], size any, opts ...Option) (iter.Seq[*ndarray.Masked[T]], int, error) {
	return SegmentsMasked(ndarray.Unmasked(a), size, opts...)
}

// SegmentsMasked is Segments for an array with an attached validity mask.
func SegmentsMasked[T any](m *ndarray.Masked[T], size any, opts ...Option) (iter.Seq[*ndarray.Masked[T]], int, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, 0, err
	}

	sp, err := resolveSpec(m.Data, size, cfg)
	if err != nil {
		return nil, 0, err
	}

	n := m.Data.AxisLen(sp.axis)
	if n == sp.size && sp.overlap == 0 {
		return singleSegmentSeq(m), 1, nil
	}
	if n < sp.size {
		return singleSegmentSeq(m), 1, fmt.Errorf("%w: size %d, axis %d length %d",
			errs.ErrWindowTooLarge, sp.size, sp.axis, n)
	}

	padded, nSeg, err := padResolved(m, sp)
	if err != nil {
		return nil, 0, err
	}

	seq := func(yield func(*ndarray.Masked[T]) bool) {
		for i := 0; i < nSeg; i++ {
			start := i * sp.step

			data, serr := padded.Data.SliceAxis(sp.axis, start, start+sp.size)
			if serr != nil {
				return
			}

			seg := &ndarray.Masked[T]{Data: data}
			if padded.HasMask() {
				if seg.Mask, serr = padded.Mask.SliceAxis(sp.axis, start, start+sp.size); serr != nil {
					return
				}
			}

			if !yield(seg) {
				return
			}
		}
	}

	return seq, nSeg, nil
}

func singleSegmentSeq[T any](m *ndarray.Masked[T]) iter.Seq[*ndarray.Masked[T]] {
	return func(yield func(*ndarray.Masked[T]) bool) {
		yield(m)
	}
}
