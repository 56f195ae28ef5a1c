package ndarray

import (
	"fmt"
	"iter"

	"github.com/arloliu/nfold/errs"
)

// Number is the constraint for numeric element types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Array is a dense N-dimensional array over a shared backing slice.
//
// Multiple Arrays may reference the same backing slice with different
// shapes, strides and offsets; such views alias memory rather than copy it.
type Array[T any] struct {
	data    []T
	shape   []int
	strides []int // per-axis advance in elements, not bytes
	offset  int
}

// New creates a zero-filled, contiguous row-major array of the given shape.
func New[T any](shape ...int) *Array[T] {
	n, err := checkShape(shape)
	if err != nil {
		panic(err)
	}

	return &Array[T]{
		data:    make([]T, n),
		shape:   append([]int(nil), shape...),
		strides: contiguousStrides(shape),
	}
}

// FromSlice wraps data in an array of the given shape. The array borrows
// data; it does not copy. A shape whose element count differs from
// len(data) is rejected.
func FromSlice[T any](data []T, shape ...int) (*Array[T], error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, slice has %d",
			errs.ErrInvalidShape, shape, n, len(data))
	}

	return &Array[T]{
		data:    data,
		shape:   append([]int(nil), shape...),
		strides: contiguousStrides(shape),
	}, nil
}

// Arange creates a 1-D array with values 0, 1, ..., n-1.
func Arange[T Number](n int) *Array[T] {
	a := New[T](n)
	for i := range a.data {
		a.data[i] = T(i)
	}

	return a
}

// Full creates a contiguous array of the given shape with every element v.
func Full[T any](v T, shape ...int) *Array[T] {
	a := New[T](shape...)
	for i := range a.data {
		a.data[i] = v
	}

	return a
}

// Shape returns a copy of the array's shape.
func (a *Array[T]) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Strides returns a copy of the array's per-axis strides, in elements.
func (a *Array[T]) Strides() []int {
	return append([]int(nil), a.strides...)
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// Len returns the number of logical elements (the product of the shape).
func (a *Array[T]) Len() int {
	n := 1
	for _, s := range a.shape {
		n *= s
	}

	return n
}

// AxisLen returns the length of the given axis.
func (a *Array[T]) AxisLen(axis int) int {
	return a.shape[axis]
}

// CheckAxis validates axis against the array's rank.
func (a *Array[T]) CheckAxis(axis int) error {
	if axis < 0 || axis >= len(a.shape) {
		return fmt.Errorf("%w: axis %d, rank %d", errs.ErrInvalidAxis, axis, len(a.shape))
	}

	return nil
}

// At returns the element at the given multi-index.
func (a *Array[T]) At(ix ...int) T {
	return a.data[a.flatOffset(ix)]
}

// Set stores v at the given multi-index.
func (a *Array[T]) Set(v T, ix ...int) {
	a.data[a.flatOffset(ix)] = v
}

func (a *Array[T]) flatOffset(ix []int) int {
	if len(ix) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: index rank %d does not match array rank %d", len(ix), len(a.shape)))
	}

	flat := a.offset
	for d, i := range ix {
		if i < 0 || i >= a.shape[d] {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis %d (length %d)", i, d, a.shape[d]))
		}
		flat += i * a.strides[d]
	}

	return flat
}

// IsContiguous reports whether the array is a dense row-major layout over
// its backing slice with no base offset.
func (a *Array[T]) IsContiguous() bool {
	if a.offset != 0 {
		return false
	}

	want := contiguousStrides(a.shape)
	for d, s := range a.strides {
		// A length-1 axis is traversed zero times, its stride is irrelevant.
		if a.shape[d] != 1 && s != want[d] {
			return false
		}
	}

	return true
}

// Contiguous returns a itself when it is already contiguous, otherwise a
// newly allocated row-major copy.
func (a *Array[T]) Contiguous() *Array[T] {
	if a.IsContiguous() {
		return a
	}

	out := New[T](a.shape...)
	i := 0
	for ix := range Indices(a.shape) {
		out.data[i] = a.data[a.flatOffset(ix)]
		i++
	}

	return out
}

// Ravel returns the elements in logical row-major order as a fresh slice.
func (a *Array[T]) Ravel() []T {
	out := make([]T, 0, a.Len())
	for ix := range Indices(a.shape) {
		out = append(out, a.data[a.flatOffset(ix)])
	}

	return out
}

// Indices yields every multi-index of the given shape in row-major order.
// The yielded slice is reused between iterations; callers that retain it
// must copy it first.
func Indices(shape []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, s := range shape {
			if s == 0 {
				return
			}
		}

		ix := make([]int, len(shape))
		for {
			if !yield(ix) {
				return
			}

			// Odometer increment, last axis fastest.
			d := len(shape) - 1
			for ; d >= 0; d-- {
				ix[d]++
				if ix[d] < shape[d] {
					break
				}
				ix[d] = 0
			}
			if d < 0 {
				return
			}
		}
	}
}

// ShapeEqual reports whether two shapes are identical.
func ShapeEqual(a, b []int) bool {
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

func checkShape(shape []int) (int, error) {
	n := 1
	for _, s := range shape {
		if s < 0 {
			return 0, fmt.Errorf("%w: negative dimension in %v", errs.ErrInvalidShape, shape)
		}
		n *= s
	}

	return n, nil
}

func contiguousStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= shape[d]
	}

	return strides
}
