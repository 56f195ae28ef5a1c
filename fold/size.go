package fold

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/arloliu/nfold/errs"
)

// percentRegex matches the numeric portion of a percentage literal such as
// "12.4%" or "50 %". Thousands separators are tolerated.
var percentRegex = regexp.MustCompile(`([\d.,]+)\s*%`)

// ResolveSize normalizes a size or overlap specification against a
// reference length and returns a concrete element count.
//
// Accepted specifications:
//   - int: an absolute count, returned unchanged.
//   - float32/float64 < 1: a fraction of ref, rounded to nearest.
//   - string ending in '%': a percentage of ref, rounded to nearest.
//
// A float >= 1 is rejected as ambiguous (it could be mistaken for an
// absolute count). Fractions and percentages require ref > 0.
func ResolveSize(spec any, ref int) (int, error) {
	switch v := spec.(type) {
	case int:
		if v < 0 {
			return 0, fmt.Errorf("%w: negative count %d", errs.ErrInvalidSizeSpec, v)
		}

		return v, nil

	case float32:
		return resolveFraction(float64(v), ref)

	case float64:
		return resolveFraction(v, ref)

	case string:
		m := percentRegex.FindStringSubmatch(v)
		if m == nil {
			return 0, fmt.Errorf("%w: %q is not a percentage", errs.ErrInvalidSizeSpec, v)
		}

		pct, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", errs.ErrInvalidSizeSpec, v, err)
		}

		return resolveFraction(pct/100, ref)

	default:
		return 0, fmt.Errorf("%w: unsupported type %T", errs.ErrInvalidSizeSpec, spec)
	}
}

func resolveFraction(frac float64, ref int) (int, error) {
	if frac >= 1 {
		return 0, fmt.Errorf(
			"%w: float %v is ambiguous; only fractions < 1 are accepted, use an int for absolute counts",
			errs.ErrInvalidSizeSpec, frac)
	}
	if frac < 0 {
		return 0, fmt.Errorf("%w: negative fraction %v", errs.ErrInvalidSizeSpec, frac)
	}
	if ref <= 0 {
		return 0, fmt.Errorf("%w: reference length required to resolve fraction %v",
			errs.ErrInvalidSizeSpec, frac)
	}

	return int(math.Round(frac * float64(ref))), nil
}
