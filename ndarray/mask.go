package ndarray

import (
	"fmt"

	"github.com/arloliu/nfold/errs"
)

// Masked pairs a data array with an optional boolean mask of identical
// shape. A true mask entry marks the corresponding data element invalid.
// Mask is nil when every element is valid.
type Masked[T any] struct {
	Data *Array[T]
	Mask *Array[bool]
}

// NewMasked pairs data with mask. A non-nil mask must have the same shape
// as data.
func NewMasked[T any](data *Array[T], mask *Array[bool]) (*Masked[T], error) {
	if mask != nil && !ShapeEqual(data.shape, mask.shape) {
		return nil, fmt.Errorf("%w: data %v, mask %v", errs.ErrShapeMismatch, data.shape, mask.shape)
	}

	return &Masked[T]{Data: data, Mask: mask}, nil
}

// Unmasked wraps data with no mask.
func Unmasked[T any](data *Array[T]) *Masked[T] {
	return &Masked[T]{Data: data}
}

// HasMask reports whether any mask is attached.
func (m *Masked[T]) HasMask() bool {
	return m.Mask != nil
}

// IsMasked reports whether the element at the given multi-index is invalid.
func (m *Masked[T]) IsMasked(ix ...int) bool {
	return m.Mask != nil && m.Mask.At(ix...)
}

// Shape returns the shape of the data array.
func (m *Masked[T]) Shape() []int {
	return m.Data.Shape()
}

// EnsureMask returns the mask, allocating an all-false mask of the data's
// shape if none is attached yet.
func (m *Masked[T]) EnsureMask() *Array[bool] {
	if m.Mask == nil {
		m.Mask = New[bool](m.Data.shape...)
	}

	return m.Mask
}

// CountMasked returns the number of invalid elements.
func (m *Masked[T]) CountMasked() int {
	if m.Mask == nil {
		return 0
	}

	count := 0
	for ix := range Indices(m.Mask.shape) {
		if m.Mask.At(ix...) {
			count++
		}
	}

	return count
}
