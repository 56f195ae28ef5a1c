package fold

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/nfold/errs"
)

func TestRebinValues(t *testing.T) {
	res, err := Rebin([]float64{1, 2, 3, 4, 5, 6}, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 3.5, 5.5}, res.Values)
	require.Nil(t, res.Positions)
	require.Nil(t, res.Errors)
}

func TestRebinPartialTail(t *testing.T) {
	// The padded fill element is excluded from the final bin's mean.
	res, err := Rebin([]float64{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 3.5, 5}, res.Values)
}

func TestRebinPositions(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	times := []float64{10, 20, 30, 40, 50, 1000} // outlier in the last bin

	res, err := Rebin(values, 3, WithPositions(times))
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5}, res.Values)
	// Median is robust to the outlier: [40 50 1000] -> 50.
	require.Equal(t, []float64{20, 50}, res.Positions)
}

func TestRebinErrors(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	uncertainties := []float64{3, 4, 5, 12}

	res, err := Rebin(values, 2, WithErrors(uncertainties))
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(12.5), res.Errors[0], 1e-12) // rms(3,4)
	require.InDelta(t, math.Sqrt(84.5), res.Errors[1], 1e-12) // rms(5,12)
}

func TestRebinAllSeries(t *testing.T) {
	values := []float64{2, 4, 6, 8}
	times := []float64{0, 1, 2, 3}
	uncertainties := []float64{1, 1, 1, 1}

	res, err := Rebin(values, 2, WithPositions(times), WithErrors(uncertainties))
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, res.Values)
	require.Equal(t, []float64{0.5, 2.5}, res.Positions)
	require.Equal(t, []float64{1, 1}, res.Errors)
}

func TestRebinOversizedBin(t *testing.T) {
	// A bin larger than the series degrades to one bin over everything.
	res, err := Rebin([]float64{1, 2, 3}, 10)
	require.NoError(t, err)
	require.Equal(t, []float64{2}, res.Values)
}

func TestRebinLengthMismatch(t *testing.T) {
	_, err := Rebin([]float64{1, 2, 3}, 2, WithPositions([]float64{1, 2}))
	require.ErrorIs(t, err, errs.ErrShapeMismatch)

	_, err = Rebin([]float64{1, 2, 3}, 2, WithErrors([]float64{1}))
	require.ErrorIs(t, err, errs.ErrShapeMismatch)
}

func TestRebinInvalidBinSize(t *testing.T) {
	_, err := Rebin([]float64{1, 2, 3}, 0)
	require.ErrorIs(t, err, errs.ErrInvalidWindowSpec)
}
