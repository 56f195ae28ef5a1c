package blob

import (
	"fmt"

	"github.com/arloliu/nfold/errs"
)

// Element is the constraint for array element types the blob format can
// store.
type Element interface {
	float64 | float32 | int64 | int32 | uint8
}

// DType tags the element type of the stored array in the blob header.
type DType uint8

const (
	// DTypeFloat64 is a 64-bit IEEE 754 float.
	DTypeFloat64 DType = 0x1
	// DTypeFloat32 is a 32-bit IEEE 754 float.
	DTypeFloat32 DType = 0x2
	// DTypeInt64 is a 64-bit signed integer.
	DTypeInt64 DType = 0x3
	// DTypeInt32 is a 32-bit signed integer.
	DTypeInt32 DType = 0x4
	// DTypeUint8 is an 8-bit unsigned integer.
	DTypeUint8 DType = 0x5
)

// String returns the dtype name.
func (d DType) String() string {
	switch d {
	case DTypeFloat64:
		return "float64"
	case DTypeFloat32:
		return "float32"
	case DTypeInt64:
		return "int64"
	case DTypeInt32:
		return "int32"
	case DTypeUint8:
		return "uint8"
	default:
		return fmt.Sprintf("DType(%d)", uint8(d))
	}
}

// Size returns the element size in bytes.
func (d DType) Size() int {
	switch d {
	case DTypeFloat64, DTypeInt64:
		return 8
	case DTypeFloat32, DTypeInt32:
		return 4
	case DTypeUint8:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether d is a known dtype tag.
func (d DType) IsValid() bool {
	return d.Size() != 0
}

// dtypeOf maps a Go element type to its blob tag.
func dtypeOf[T Element]() (DType, error) {
	var zero T
	switch any(zero).(type) {
	case float64:
		return DTypeFloat64, nil
	case float32:
		return DTypeFloat32, nil
	case int64:
		return DTypeInt64, nil
	case int32:
		return DTypeInt32, nil
	case uint8:
		return DTypeUint8, nil
	default:
		return 0, fmt.Errorf("%w: %T", errs.ErrInvalidDType, zero)
	}
}
