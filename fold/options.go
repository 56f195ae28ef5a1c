package fold

import (
	"fmt"

	"github.com/arloliu/nfold/errs"
	"github.com/arloliu/nfold/internal/options"
)

// Option configures Fold, Pad and Segments.
type Option = options.Option[*config]

type config struct {
	overlap any
	axis    int
	policy  PadPolicy
	fill    any
}

func newConfig() *config {
	return &config{
		overlap: 0,
		axis:    0,
		policy:  PadMasked,
	}
}

// WithOverlap sets the number of elements shared between consecutive
// segments. Like the window size, it may be an absolute int, a fraction
// < 1, or a percentage string; fractions are resolved against the window
// size. Default 0.
func WithOverlap(overlap any) Option {
	return options.NoError(func(c *config) {
		c.overlap = overlap
	})
}

// WithAxis sets the axis to fold along. Default 0.
func WithAxis(axis int) Option {
	return options.NoError(func(c *config) {
		c.axis = axis
	})
}

// WithPadPolicy sets the padding policy. Default PadMasked.
func WithPadPolicy(policy PadPolicy) Option {
	return options.New(func(c *config) error {
		if !policy.IsValid() {
			return fmt.Errorf("%w: %v", errs.ErrUnsupportedPadPolicy, policy)
		}
		c.policy = policy

		return nil
	})
}

// WithPadPolicyName sets the padding policy by name, e.g. "edge" or "wrap".
func WithPadPolicyName(name string) Option {
	return options.New(func(c *config) error {
		policy, err := ParsePadPolicy(name)
		if err != nil {
			return err
		}
		c.policy = policy

		return nil
	})
}

// WithFillValue sets the fill value used by the PadConstant policy. The
// value must have the array's element type; a mismatch is reported when
// padding runs.
func WithFillValue(v any) Option {
	return options.NoError(func(c *config) {
		c.fill = v
	})
}
