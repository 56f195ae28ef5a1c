package fold

import (
	"fmt"

	"github.com/arloliu/nfold/errs"
	"github.com/arloliu/nfold/internal/options"
	"github.com/arloliu/nfold/ndarray"
)

// windowSpec is a fully resolved fold specification.
type windowSpec struct {
	size    int
	overlap int
	step    int
	axis    int
	policy  PadPolicy
	fill    any
}

// resolveSpec resolves size and overlap against the array and validates the
// window invariants: size > 0, 0 <= overlap < size, axis within rank.
func resolveSpec[T any](a *ndarray.Array[T], size any, cfg *config) (windowSpec, error) {
	sp := windowSpec{axis: cfg.axis, policy: cfg.policy, fill: cfg.fill}

	if err := a.CheckAxis(cfg.axis); err != nil {
		return sp, err
	}

	n := a.AxisLen(cfg.axis)

	var err error
	if sp.size, err = ResolveSize(size, n); err != nil {
		return sp, err
	}
	// Relative overlaps are fractions of the window, not of the axis.
	if sp.overlap, err = ResolveSize(cfg.overlap, sp.size); err != nil {
		return sp, err
	}

	if sp.size <= 0 {
		return sp, fmt.Errorf("%w: size %d must be positive", errs.ErrInvalidWindowSpec, sp.size)
	}
	if sp.overlap < 0 || sp.overlap >= sp.size {
		return sp, fmt.Errorf("%w: overlap %d must satisfy 0 <= overlap < size (%d)",
			errs.ErrInvalidWindowSpec, sp.overlap, sp.size)
	}

	sp.step = sp.size - sp.overlap

	return sp, nil
}

// Pad appends trailing elements along the fold axis so that the step evenly
// divides it, and returns the padded pair together with the exact segment
// count. If no padding is needed the caller's array is returned untouched.
//
// Fails with errs.ErrWindowTooLarge when size exceeds the axis length; use
// Fold for the degenerate single-segment behavior.
func Pad[T any](a *ndarray.Array[T], size any, opts ...Option) (*ndarray.Masked[T], int, error) {
	return PadWithMask(ndarray.Unmasked(a), size, opts...)
}

// PadWithMask is Pad for an array with an attached validity mask. The mask is
// padded in lockstep with the data.
func PadWithMask[T any](m *ndarray.Masked[T], size any, opts ...Option) (*ndarray.Masked[T], int, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, 0, err
	}

	sp, err := resolveSpec(m.Data, size, cfg)
	if err != nil {
		return nil, 0, err
	}

	if n := m.Data.AxisLen(sp.axis); sp.size > n {
		return nil, 0, fmt.Errorf("%w: size %d, axis %d length %d",
			errs.ErrWindowTooLarge, sp.size, sp.axis, n)
	}

	return padResolved(m, sp)
}

// padResolved applies the padding policy for an already validated spec.
func padResolved[T any](m *ndarray.Masked[T], sp windowSpec) (*ndarray.Masked[T], int, error) {
	n := m.Data.AxisLen(sp.axis)

	nSeg := (n - sp.overlap) / sp.step
	leftover := (n - sp.overlap) % sp.step
	padAmount := sp.step - leftover
	if sp.step == 1 {
		// Every element starts its own segment; the last size-1 of them
		// need trailing fill to complete their window.
		leftover = sp.size - 1
		padAmount = sp.size - leftover
	}

	if leftover == 0 || sp.policy == PadNone {
		// Evenly divisible, or the caller accepts a dropped tail.
		return m, nSeg, nil
	}

	padded, err := applyPolicy(m, sp, n, padAmount)
	if err != nil {
		return nil, 0, err
	}

	return padded, nSeg + 1, nil
}

func applyPolicy[T any](m *ndarray.Masked[T], sp windowSpec, n, padAmount int) (*ndarray.Masked[T], error) {
	newShape := m.Data.Shape()
	newShape[sp.axis] += padAmount

	var fill T
	if sp.policy == PadConstant && sp.fill != nil {
		v, ok := sp.fill.(T)
		if !ok {
			return nil, fmt.Errorf("%w: fill %T, element %T", errs.ErrInvalidFillValue, sp.fill, fill)
		}
		fill = v
	}

	data := ndarray.New[T](newShape...)
	var mask *ndarray.Array[bool]
	if m.HasMask() || sp.policy == PadMasked {
		mask = ndarray.New[bool](newShape...)
	}

	// Copy the original region, then fill the tail. Reading filled values
	// back out of the copied region keeps the policy mappings uniform for
	// any rank.
	for ix := range ndarray.Indices(m.Data.Shape()) {
		data.Set(m.Data.At(ix...), ix...)
		if m.HasMask() && mask != nil {
			mask.Set(m.Mask.At(ix...), ix...)
		}
	}

	src := make([]int, len(newShape))
	for ix := range ndarray.Indices(newShape) {
		p := ix[sp.axis]
		if p < n {
			continue
		}

		switch sp.policy {
		case PadMasked:
			mask.Set(true, ix...)
		case PadConstant:
			data.Set(fill, ix...)
		case PadEdge, PadReflect, PadSymmetric, PadWrap:
			copy(src, ix)
			src[sp.axis] = tailSourceIndex(sp.policy, p, n)
			data.Set(data.At(src...), ix...)
			if mask != nil {
				mask.Set(mask.At(src...), ix...)
			}
		default:
			return nil, fmt.Errorf("%w: %v", errs.ErrUnsupportedPadPolicy, sp.policy)
		}
	}

	return &ndarray.Masked[T]{Data: data, Mask: mask}, nil
}

// tailSourceIndex maps a padded position p >= n back onto an existing index
// along an axis of length n, according to the fill policy.
func tailSourceIndex(policy PadPolicy, p, n int) int {
	switch policy {
	case PadEdge:
		return n - 1

	case PadWrap:
		return p % n

	case PadReflect:
		// Mirror about the last element, excluding it: n-2, n-3, ...
		if n == 1 {
			return 0
		}
		period := 2 * (n - 1)
		q := p % period
		if q >= n {
			q = period - q
		}

		return q

	case PadSymmetric:
		// Mirror including the last element: n-1, n-2, ...
		period := 2 * n
		q := p % period
		if q >= n {
			q = period - 1 - q
		}

		return q

	default:
		return n - 1
	}
}
