// Package errs defines the sentinel errors returned by nfold packages.
//
// All errors are plain sentinels intended to be wrapped with additional
// context via fmt.Errorf("%w: ...") and matched with errors.Is.
package errs

import "errors"

// Window specification errors.
var (
	// ErrInvalidWindowSpec indicates size <= 0, overlap < 0, or overlap >= size.
	ErrInvalidWindowSpec = errors.New("invalid window spec")

	// ErrInvalidSizeSpec indicates a size specification that could not be
	// resolved: a fraction or percentage without a reference length, an
	// unparseable percentage string, or an ambiguous float >= 1.
	ErrInvalidSizeSpec = errors.New("invalid size spec")

	// ErrWindowTooLarge indicates the window size exceeds the axis length.
	// Fold returns this together with a degenerate single-segment result,
	// so callers may treat it as a warning.
	ErrWindowTooLarge = errors.New("window size exceeds axis length")

	// ErrUnsupportedPadPolicy indicates an unknown padding policy value.
	ErrUnsupportedPadPolicy = errors.New("unsupported pad policy")

	// ErrInvalidFillValue indicates a constant-policy fill value whose type
	// does not match the array's element type.
	ErrInvalidFillValue = errors.New("invalid fill value")
)

// Array shape and view errors.
var (
	// ErrInvalidShape indicates a shape with a negative dimension, or a
	// shape whose element count does not match the provided buffer.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrInvalidAxis indicates an axis outside the array's rank.
	ErrInvalidAxis = errors.New("axis out of range")

	// ErrStrideOutOfBounds indicates a strided view that would reach
	// outside the backing buffer.
	ErrStrideOutOfBounds = errors.New("strided view exceeds backing buffer")

	// ErrShapeMismatch indicates a mask whose shape differs from its data
	// array, or companion series of unequal length.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// Blob format errors.
var (
	// ErrInvalidHeaderSize indicates a blob shorter than the fixed header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber indicates the blob does not start with the
	// nfold magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidDType indicates an unknown element type tag, or a decode
	// into a Go type that does not match the encoded tag.
	ErrInvalidDType = errors.New("invalid element type")

	// ErrChecksumMismatch indicates the trailing checksum does not match
	// the blob contents.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrPayloadTruncated indicates a section extends past the end of the
	// blob.
	ErrPayloadTruncated = errors.New("payload truncated")
)
