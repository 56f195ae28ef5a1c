package fold

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/nfold/errs"
	"github.com/arloliu/nfold/ndarray"
)

func TestCountRepeats(t *testing.T) {
	// size=2, overlap=1: every interior index is the tail of one window
	// and the head of the next; index 0 appears once, and the final index
	// pairs with a synthetic fill element that is not counted.
	counts, err := CountRepeats(10, 2, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 2, 2, 2, 2, 2, 2, 2, 2}, counts)
}

func TestCountRepeatsNoOverlap(t *testing.T) {
	counts, err := CountRepeats(6, 2, 0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1, 1, 1, 1}, counts)
}

func TestCountRepeatsSumLaw(t *testing.T) {
	// Every unmasked slot in every segment counts exactly once:
	// sum(counts) == nSeg*size - maskedFill.
	cases := []struct {
		n, size, overlap int
	}{
		{10, 2, 1}, {10, 3, 1}, {10, 3, 2}, {12, 4, 0}, {7, 5, 3},
	}

	for _, tc := range cases {
		counts, err := CountRepeats(tc.n, tc.size, tc.overlap)
		require.NoError(t, err)
		require.Len(t, counts, tc.n)

		sum := 0
		for _, c := range counts {
			sum += c
		}

		folded, ferr := Fold(ndarray.Arange[int](tc.n), tc.size, WithOverlap(tc.overlap))
		require.NoError(t, ferr)

		total := folded.Data.Len() - folded.CountMasked()
		require.Equal(t, total, sum, "n=%d size=%d overlap=%d", tc.n, tc.size, tc.overlap)
	}
}

func TestCountRepeatsRelativeOverlap(t *testing.T) {
	// Overlap as a fraction of the window size.
	counts, err := CountRepeats(10, 2, 0.5)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 2, 2, 2, 2, 2, 2, 2, 2}, counts)
}

func TestCountRepeatsOversizedWindow(t *testing.T) {
	// A window larger than the sequence degrades to a single segment
	// containing each index once.
	counts, err := CountRepeats(3, 8, 0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1}, counts)
}

func TestCountRepeatsNegativeLength(t *testing.T) {
	_, err := CountRepeats(-1, 2, 0)
	require.ErrorIs(t, err, errs.ErrInvalidShape)
}
