package fold

import (
	"fmt"

	"github.com/arloliu/nfold/errs"
	"github.com/arloliu/nfold/internal/options"
	"github.com/arloliu/nfold/ndarray"
)

// Fold windows an array along an axis into segments of the given size, with
// consecutive segments overlapping by the configured number of elements.
//
// The result has rank N+1: a new segment axis of length nSegments is
// inserted immediately before the fold axis, and the fold axis itself is
// left with length size. The returned arrays are strided views over the
// (possibly padded) input: when overlap is nonzero, overlapping elements of
// adjacent segments alias the same backing memory, so in-place writes
// through one segment are visible through its neighbors.
//
// By default the axis tail is padded with masked zero elements so the step
// evenly divides it; see the pad policy options for the alternatives.
//
// When size exceeds the axis length, Fold returns a degenerate
// single-segment view of the whole axis together with errs.ErrWindowTooLarge;
// callers may treat that error as a warning.
func Fold[T any](a *ndarray.Array[T], size any, opts ...Option) (*ndarray.Masked[T], error) {
	return FoldMasked(ndarray.Unmasked(a), size, opts...)
}

// FoldMasked is Fold for an array with an attached validity mask. The mask
// is folded with the identical shape and stride transformation as the data.
func FoldMasked[T any](m *ndarray.Masked[T], size any, opts ...Option) (*ndarray.Masked[T], error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	sp, err := resolveSpec(m.Data, size, cfg)
	if err != nil {
		return nil, err
	}

	n := m.Data.AxisLen(sp.axis)

	// Short circuits: exactly one segment, no padding required.
	if n == sp.size && sp.overlap == 0 {
		return singleSegment(m, sp.axis)
	}
	if n < sp.size {
		degenerate, serr := singleSegment(m, sp.axis)
		if serr != nil {
			return nil, serr
		}

		return degenerate, fmt.Errorf("%w: size %d, axis %d length %d",
			errs.ErrWindowTooLarge, sp.size, sp.axis, n)
	}

	padded, _, err := padResolved(m, sp)
	if err != nil {
		return nil, err
	}

	data, err := foldView(padded.Data, sp)
	if err != nil {
		return nil, err
	}

	var mask *ndarray.Array[bool]
	if padded.HasMask() {
		if mask, err = foldView(padded.Mask, sp); err != nil {
			return nil, err
		}
	}

	return &ndarray.Masked[T]{Data: data, Mask: mask}, nil
}

// foldView builds the strided segment view of an already padded array.
//
// Shape: the axis entry becomes nSegments = (length - overlap) / step and a
// new axis of length size is inserted immediately after it. Strides: a new
// stride of step*strides[axis] is inserted at the segment axis while the
// shifted fold axis keeps its original stride, which is what makes adjacent
// segments overlap in memory.
func foldView[T any](a *ndarray.Array[T], sp windowSpec) (*ndarray.Array[T], error) {
	shape := a.Shape()
	strides := a.Strides()
	nSeg := (shape[sp.axis] - sp.overlap) / sp.step

	newShape := make([]int, 0, len(shape)+1)
	newShape = append(newShape, shape[:sp.axis]...)
	newShape = append(newShape, nSeg, sp.size)
	newShape = append(newShape, shape[sp.axis+1:]...)

	newStrides := make([]int, 0, len(strides)+1)
	newStrides = append(newStrides, strides[:sp.axis]...)
	newStrides = append(newStrides, sp.step*strides[sp.axis], strides[sp.axis])
	newStrides = append(newStrides, strides[sp.axis+1:]...)

	return ndarray.AsStrided(a, newShape, newStrides)
}

// singleSegment wraps the whole axis as one segment by inserting a length-1
// segment axis before it. No data is copied or padded.
func singleSegment[T any](m *ndarray.Masked[T], axis int) (*ndarray.Masked[T], error) {
	data, err := m.Data.InsertAxis(axis)
	if err != nil {
		return nil, err
	}

	var mask *ndarray.Array[bool]
	if m.HasMask() {
		if mask, err = m.Mask.InsertAxis(axis); err != nil {
			return nil, err
		}
	}

	return &ndarray.Masked[T]{Data: data, Mask: mask}, nil
}
