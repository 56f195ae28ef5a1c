package fold

import (
	"fmt"

	"github.com/arloliu/nfold/errs"
)

// PadPolicy selects how the tail of the fold axis is filled when the step
// does not evenly divide it.
type PadPolicy uint8

const (
	// PadMasked fills with the element zero value and marks the filled
	// region invalid in the mask. This is the default.
	PadMasked PadPolicy = iota
	// PadEdge repeats the last element along the axis.
	PadEdge
	// PadReflect mirrors the tail without repeating the edge element.
	PadReflect
	// PadSymmetric mirrors the tail including the edge element.
	PadSymmetric
	// PadWrap continues from the start of the axis.
	PadWrap
	// PadConstant fills with a caller-supplied value (see WithFillValue).
	PadConstant
	// PadNone disables padding; a tail that cannot complete a window is
	// dropped from the folded result.
	PadNone
)

var policyNames = map[PadPolicy]string{
	PadMasked:    "masked",
	PadEdge:      "edge",
	PadReflect:   "reflect",
	PadSymmetric: "symmetric",
	PadWrap:      "wrap",
	PadConstant:  "constant",
	PadNone:      "none",
}

// String returns the policy name.
func (p PadPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}

	return fmt.Sprintf("PadPolicy(%d)", uint8(p))
}

// IsValid reports whether p is one of the defined policies.
func (p PadPolicy) IsValid() bool {
	_, ok := policyNames[p]
	return ok
}

// ParsePadPolicy converts a policy name to its PadPolicy value.
func ParsePadPolicy(name string) (PadPolicy, error) {
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedPadPolicy, name)
}
