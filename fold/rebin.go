package fold

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/arloliu/nfold/errs"
	"github.com/arloliu/nfold/internal/options"
	"github.com/arloliu/nfold/ndarray"
)

// RebinResult holds the rebinned series. Positions and Errors are nil
// unless the corresponding companion series was supplied.
type RebinResult struct {
	Values    []float64
	Positions []float64
	Errors    []float64
}

// RebinOption configures Rebin.
type RebinOption = options.Option[*rebinConfig]

type rebinConfig struct {
	positions []float64
	errors    []float64
}

// WithPositions supplies the sample positions (e.g. timestamps) of the
// series; each bin of positions is reduced with the median, which is robust
// to outliers within a bin.
func WithPositions(positions []float64) RebinOption {
	return options.NoError(func(c *rebinConfig) {
		c.positions = positions
	})
}

// WithErrors supplies the per-sample uncertainties; each bin is reduced as
// sqrt(mean(e^2)), the propagation rule for averaging independent
// uncertainties.
func WithErrors(e []float64) RebinOption {
	return options.NoError(func(c *rebinConfig) {
		c.errors = e
	})
}

// Rebin reduces an evenly sampled series into bins of binSize consecutive
// samples. Values are reduced with the arithmetic mean, positions with the
// median and errors with the root mean square. Elements introduced by tail
// padding are excluded from every reduction.
func Rebin(values []float64, binSize int, opts ...RebinOption) (RebinResult, error) {
	cfg := &rebinConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return RebinResult{}, err
	}

	if cfg.positions != nil && len(cfg.positions) != len(values) {
		return RebinResult{}, fmt.Errorf("%w: %d values, %d positions",
			errs.ErrShapeMismatch, len(values), len(cfg.positions))
	}
	if cfg.errors != nil && len(cfg.errors) != len(values) {
		return RebinResult{}, fmt.Errorf("%w: %d values, %d errors",
			errs.ErrShapeMismatch, len(values), len(cfg.errors))
	}

	var (
		result RebinResult
		err    error
	)

	if result.Values, err = reduceBins(values, binSize, mean); err != nil {
		return RebinResult{}, err
	}
	if cfg.positions != nil {
		if result.Positions, err = reduceBins(cfg.positions, binSize, median); err != nil {
			return RebinResult{}, err
		}
	}
	if cfg.errors != nil {
		if result.Errors, err = reduceBins(cfg.errors, binSize, rootMeanSquare); err != nil {
			return RebinResult{}, err
		}
	}

	return result, nil
}

// reduceBins folds x into non-overlapping bins and reduces each bin's valid
// elements with reduce. An oversized bin degrades to a single bin over the
// whole series, matching Fold's degenerate behavior.
func reduceBins(x []float64, binSize int, reduce func([]float64) float64) ([]float64, error) {
	arr, err := ndarray.FromSlice(x, len(x))
	if err != nil {
		return nil, err
	}

	seq, nSeg, err := Segments(arr, binSize)
	if err != nil && !errors.Is(err, errs.ErrWindowTooLarge) {
		return nil, err
	}

	out := make([]float64, 0, nSeg)
	vals := make([]float64, 0, binSize)
	for seg := range seq {
		vals = vals[:0]
		length := seg.Data.AxisLen(0)
		for i := 0; i < length; i++ {
			if seg.IsMasked(i) {
				continue
			}
			vals = append(vals, seg.Data.At(i))
		}
		out = append(out, reduce(vals))
	}

	return out, nil
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range vals {
		sum += v
	}

	return sum / float64(len(vals))
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}

	return sorted[mid]
}

func rootMeanSquare(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range vals {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(vals)))
}
