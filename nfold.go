// Package nfold provides memory-efficient folding (windowing) of
// N-dimensional arrays along any axis, with optional overlap between
// adjacent segments. Overlapping segments are not duplicated in memory.
//
// # Core Features
//
//   - Zero-copy strided segment views; overlapping elements alias memory
//   - Lazy per-segment iteration for callers that prefer plain slices
//   - Validity-mask co-propagation through padding and folding
//   - Padding policies: masked, edge, reflect, symmetric, wrap, constant
//   - Size and overlap given as counts, fractions or percentage strings
//   - Time-series rebinning (mean/median/RMS) and per-index multiplicity
//   - Compact binary array persistence with optional compression
//
// # Basic Usage
//
// Folding a series into overlapping windows:
//
//	import "github.com/arloliu/nfold"
//
//	a := ndarray.Arange[float64](10)
//	folded, _ := nfold.Fold(a, 3, fold.WithOverlap(1))
//	// folded.Data has shape (5, 3): [0 1 2], [2 3 4], ... [8 9 fill]
//	// folded.Mask marks the trailing fill element invalid
//
// Iterating segments lazily:
//
//	segs, n, _ := nfold.Segments(a, 3, fold.WithOverlap(1))
//	for seg := range segs {
//	    process(seg)
//	}
//
// Rebinning a time series:
//
//	res, _ := nfold.Rebin(values, 4, fold.WithPositions(times))
//	// res.Values are bin means, res.Positions bin medians
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the fold and
// blob packages, simplifying the most common use cases. For fine-grained
// control (masked inputs, custom fill values), use those packages directly.
package nfold

import (
	"iter"

	"github.com/arloliu/nfold/blob"
	"github.com/arloliu/nfold/fold"
	"github.com/arloliu/nfold/ndarray"
)

// Fold windows an array along an axis into fixed-size, possibly overlapping
// segments, returning a zero-copy strided view with a mask marking any
// padded fill elements. See fold.Fold.
func Fold[T any](a *ndarray.Array[T], size any, opts ...fold.Option) (*ndarray.Masked[T], error) {
	return fold.Fold(a, size, opts...)
}

// Pad appends trailing elements along the fold axis so segmentation divides
// it evenly, and returns the padded pair with the segment count. See
// fold.Pad.
func Pad[T any](a *ndarray.Array[T], size any, opts ...fold.Option) (*ndarray.Masked[T], int, error) {
	return fold.Pad(a, size, opts...)
}

// Segments returns a lazy, restartable sequence of the individual fold
// segments and the segment count. See fold.Segments.
func Segments[T any](a *ndarray.Array[T], size any, opts ...fold.Option) (iter.Seq[*ndarray.Masked[T]], int, error) {
	return fold.Segments(a, size, opts...)
}

// ResolveSize normalizes a size specification (count, fraction or
// percentage string) against a reference length. See fold.ResolveSize.
func ResolveSize(spec any, ref int) (int, error) {
	return fold.ResolveSize(spec, ref)
}

// Rebin reduces an evenly sampled series into bins of binSize samples. See
// fold.Rebin.
func Rebin(values []float64, binSize int, opts ...fold.RebinOption) (fold.RebinResult, error) {
	return fold.Rebin(values, binSize, opts...)
}

// CountRepeats returns how many fold segments contain each original index.
// See fold.CountRepeats.
func CountRepeats(n int, size, overlap any) ([]int, error) {
	return fold.CountRepeats(n, size, overlap)
}

// Save serializes a (possibly masked) array into a self-contained binary
// blob. See blob.Encode.
func Save[T blob.Element](m *ndarray.Masked[T], opts ...blob.Option) ([]byte, error) {
	return blob.Encode(m, opts...)
}

// Load deserializes a blob produced by Save. See blob.Decode.
func Load[T blob.Element](data []byte) (*ndarray.Masked[T], error) {
	return blob.Decode[T](data)
}
