package fold

import (
	"errors"
	"fmt"

	"github.com/arloliu/nfold/errs"
	"github.com/arloliu/nfold/ndarray"
)

// CountRepeats returns, for each index 0..n-1, the number of fold segments
// that contain it when a length-n axis is folded with the given size and
// overlap. Synthetic elements introduced by tail padding are discounted.
//
// Downstream consumers use these multiplicities to weight values that were
// computed once per overlapping window but must be attributed back to
// individual positions.
func CountRepeats(n int, size, overlap any) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", errs.ErrInvalidShape, n)
	}

	folded, err := Fold(ndarray.Arange[int](n), size, WithOverlap(overlap))
	if err != nil && !errors.Is(err, errs.ErrWindowTooLarge) {
		return nil, err
	}

	// The folded identity indices tell us directly which original index
	// occupies each segment slot; tally the unmasked ones.
	counts := make([]int, n)
	for ix := range ndarray.Indices(folded.Data.Shape()) {
		if folded.Mask != nil && folded.Mask.At(ix...) {
			continue
		}
		counts[folded.Data.At(ix...)]++
	}

	return counts, nil
}
