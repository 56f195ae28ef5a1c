// Package ndarray provides a dense, rectangular N-dimensional array type
// over a shared backing slice, with shape/stride views that alias the same
// memory instead of copying it.
//
// An Array is described by a backing slice, a shape, per-axis strides in
// elements, and a base offset. The flat position of a multi-index is the
// base offset plus the dot product of the index with the strides. View
// operations (AsStrided, SliceAxis, InsertAxis) construct new Arrays that
// borrow the backing slice, so writes through one view are visible through
// every aliasing view. The backing array must outlive every view derived
// from it.
//
// A Masked value pairs an Array with an optional same-shaped boolean mask;
// true marks an invalid element. Transformations that reshape the data are
// applied to the mask in lockstep so the pair stays shape-synchronized.
package ndarray
