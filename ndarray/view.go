package ndarray

import (
	"fmt"

	"github.com/arloliu/nfold/errs"
)

// AsStrided constructs a view of a with the given shape and strides over the
// same backing slice. No data is copied: overlapping logical positions alias
// the same memory, and writes through the view are visible through a.
//
// Every reachable flat offset is validated against the backing slice before
// the view is returned, so a successful AsStrided can never index out of
// bounds afterwards.
func AsStrided[T any](a *Array[T], shape, strides []int) (*Array[T], error) {
	if len(shape) != len(strides) {
		return nil, fmt.Errorf("%w: shape rank %d, strides rank %d",
			errs.ErrInvalidShape, len(shape), len(strides))
	}
	if _, err := checkShape(shape); err != nil {
		return nil, err
	}

	lo, hi := a.offset, a.offset
	empty := false
	for d, s := range shape {
		if s == 0 {
			empty = true
			continue
		}
		span := (s - 1) * strides[d]
		if span >= 0 {
			hi += span
		} else {
			lo += span
		}
	}
	if !empty && (lo < 0 || hi >= len(a.data)) {
		return nil, fmt.Errorf("%w: offsets [%d, %d] outside buffer of %d elements",
			errs.ErrStrideOutOfBounds, lo, hi, len(a.data))
	}

	return &Array[T]{
		data:    a.data,
		shape:   append([]int(nil), shape...),
		strides: append([]int(nil), strides...),
		offset:  a.offset,
	}, nil
}

// SliceAxis returns the aliasing sub-view a[..., start:stop, ...] along the
// given axis. The view borrows a's backing slice.
func (a *Array[T]) SliceAxis(axis, start, stop int) (*Array[T], error) {
	if err := a.CheckAxis(axis); err != nil {
		return nil, err
	}
	if start < 0 || stop < start || stop > a.shape[axis] {
		return nil, fmt.Errorf("%w: slice [%d:%d] of axis %d (length %d)",
			errs.ErrInvalidShape, start, stop, axis, a.shape[axis])
	}

	shape := a.Shape()
	shape[axis] = stop - start

	return &Array[T]{
		data:    a.data,
		shape:   shape,
		strides: a.Strides(),
		offset:  a.offset + start*a.strides[axis],
	}, nil
}

// InsertAxis returns a view of a with a new length-1 axis inserted at the
// given position (0 <= axis <= rank).
func (a *Array[T]) InsertAxis(axis int) (*Array[T], error) {
	if axis < 0 || axis > len(a.shape) {
		return nil, fmt.Errorf("%w: insert position %d, rank %d", errs.ErrInvalidAxis, axis, len(a.shape))
	}

	shape := make([]int, 0, len(a.shape)+1)
	shape = append(shape, a.shape[:axis]...)
	shape = append(shape, 1)
	shape = append(shape, a.shape[axis:]...)

	strides := make([]int, 0, len(a.strides)+1)
	strides = append(strides, a.strides[:axis]...)
	strides = append(strides, 0) // length-1 axis, never advanced
	strides = append(strides, a.strides[axis:]...)

	return &Array[T]{
		data:    a.data,
		shape:   shape,
		strides: strides,
		offset:  a.offset,
	}, nil
}
