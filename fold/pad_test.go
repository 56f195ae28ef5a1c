package fold

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/nfold/errs"
	"github.com/arloliu/nfold/ndarray"
)

func TestPadMaskedPolicy(t *testing.T) {
	// size=2, overlap=1 over [0..10) needs exactly one trailing fill
	// element to complete the final window.
	a := ndarray.Arange[float64](10)

	padded, nSeg, err := Pad(a, 2, WithOverlap(1))
	require.NoError(t, err)
	require.Equal(t, 10, nSeg)
	require.Equal(t, []int{11}, padded.Data.Shape())
	require.Equal(t, 0.0, padded.Data.At(10))

	require.True(t, padded.HasMask())
	require.True(t, padded.Mask.At(10))
	for i := 0; i < 10; i++ {
		require.False(t, padded.Mask.At(i), "pre-existing element %d must stay valid", i)
	}
}

func TestPadIdempotent(t *testing.T) {
	// (11 - 1) divides evenly by step 2: no padding, same arrays back.
	a := ndarray.Arange[float64](11)

	padded, nSeg, err := Pad(a, 3, WithOverlap(1))
	require.NoError(t, err)
	require.Equal(t, 5, nSeg)
	require.Same(t, a, padded.Data)
	require.False(t, padded.HasMask())
}

func TestPadExactness(t *testing.T) {
	// (paddedLen - overlap) == nSeg * step for a spread of specs.
	cases := []struct {
		n, size, overlap int
	}{
		{10, 2, 1}, {10, 3, 1}, {10, 3, 2}, {10, 4, 0}, {7, 5, 3},
		{100, 7, 3}, {12, 12, 11}, {5, 2, 0},
	}

	for _, tc := range cases {
		a := ndarray.Arange[float64](tc.n)
		padded, nSeg, err := Pad(a, tc.size, WithOverlap(tc.overlap))
		require.NoError(t, err, "n=%d size=%d overlap=%d", tc.n, tc.size, tc.overlap)

		step := tc.size - tc.overlap
		length := padded.Data.AxisLen(0)
		require.Equal(t, nSeg*step, length-tc.overlap,
			"n=%d size=%d overlap=%d: padded length %d, nSeg %d", tc.n, tc.size, tc.overlap, length, nSeg)
	}
}

func TestPadPolicies(t *testing.T) {
	// size=3, overlap=1 over [0..10): one fill element at index 10.
	newInput := func() *ndarray.Array[float64] { return ndarray.Arange[float64](10) }

	t.Run("Edge repeats the last element", func(t *testing.T) {
		padded, _, err := Pad(newInput(), 3, WithOverlap(1), WithPadPolicy(PadEdge))
		require.NoError(t, err)
		require.Equal(t, 9.0, padded.Data.At(10))
		require.False(t, padded.HasMask())
	})

	t.Run("Reflect mirrors without the edge", func(t *testing.T) {
		padded, _, err := Pad(newInput(), 3, WithOverlap(1), WithPadPolicy(PadReflect))
		require.NoError(t, err)
		require.Equal(t, 8.0, padded.Data.At(10))
	})

	t.Run("Symmetric mirrors including the edge", func(t *testing.T) {
		padded, _, err := Pad(newInput(), 3, WithOverlap(1), WithPadPolicy(PadSymmetric))
		require.NoError(t, err)
		require.Equal(t, 9.0, padded.Data.At(10))
	})

	t.Run("Wrap continues from the start", func(t *testing.T) {
		padded, _, err := Pad(newInput(), 3, WithOverlap(1), WithPadPolicy(PadWrap))
		require.NoError(t, err)
		require.Equal(t, 0.0, padded.Data.At(10))
	})

	t.Run("Constant uses the fill value", func(t *testing.T) {
		padded, _, err := Pad(newInput(), 3, WithOverlap(1),
			WithPadPolicy(PadConstant), WithFillValue(7.5))
		require.NoError(t, err)
		require.Equal(t, 7.5, padded.Data.At(10))
		require.False(t, padded.HasMask())
	})

	t.Run("Constant fill type mismatch", func(t *testing.T) {
		_, _, err := Pad(newInput(), 3, WithOverlap(1),
			WithPadPolicy(PadConstant), WithFillValue("oops"))
		require.ErrorIs(t, err, errs.ErrInvalidFillValue)
	})

	t.Run("None leaves the array untouched", func(t *testing.T) {
		a := newInput()
		padded, nSeg, err := Pad(a, 3, WithOverlap(1), WithPadPolicy(PadNone))
		require.NoError(t, err)
		require.Same(t, a, padded.Data)
		require.Equal(t, 4, nSeg) // incomplete tail dropped
	})
}

func TestPadExistingMask(t *testing.T) {
	data := ndarray.Arange[float64](10)
	mask := ndarray.New[bool](10)
	mask.Set(true, 3)
	m, err := ndarray.NewMasked(data, mask)
	require.NoError(t, err)

	padded, _, err := PadWithMask(m, 3, WithOverlap(1))
	require.NoError(t, err)

	// The caller's mask entry survives; only the fill region is new.
	require.True(t, padded.Mask.At(3))
	require.True(t, padded.Mask.At(10))
	require.Equal(t, 2, padded.CountMasked())
}

func TestPadWithMaskExplicitPolicy(t *testing.T) {
	// The masked-input entry point accepts the policy enum like Pad does;
	// selecting PadMasked explicitly matches the default behavior.
	m := ndarray.Unmasked(ndarray.Arange[float64](10))

	padded, nSeg, err := PadWithMask(m, 3, WithOverlap(1), WithPadPolicy(PadMasked))
	require.NoError(t, err)
	require.Equal(t, 5, nSeg)
	require.Equal(t, []int{11}, padded.Data.Shape())
	require.True(t, padded.Mask.At(10))

	defaulted, _, err := Pad(ndarray.Arange[float64](10), 3, WithOverlap(1))
	require.NoError(t, err)
	require.Equal(t, defaulted.Data.Ravel(), padded.Data.Ravel())
	require.Equal(t, defaulted.Mask.Ravel(), padded.Mask.Ravel())
}

func TestPadSecondAxis(t *testing.T) {
	a, err := ndarray.FromSlice([]float64{
		0, 1, 2, 3, 4,
		5, 6, 7, 8, 9,
	}, 2, 5)
	require.NoError(t, err)

	padded, nSeg, perr := Pad(a, 2, WithAxis(1))
	require.NoError(t, perr)
	require.Equal(t, 3, nSeg)
	require.Equal(t, []int{2, 6}, padded.Data.Shape())
	require.True(t, padded.Mask.At(0, 5))
	require.True(t, padded.Mask.At(1, 5))
	require.Equal(t, 4.0, padded.Data.At(0, 4))
}

func TestPadErrors(t *testing.T) {
	a := ndarray.Arange[float64](10)

	t.Run("Window too large", func(t *testing.T) {
		_, _, err := Pad(a, 11)
		require.ErrorIs(t, err, errs.ErrWindowTooLarge)
	})

	t.Run("Zero size", func(t *testing.T) {
		_, _, err := Pad(a, 0)
		require.ErrorIs(t, err, errs.ErrInvalidWindowSpec)
	})

	t.Run("Overlap not below size", func(t *testing.T) {
		_, _, err := Pad(a, 3, WithOverlap(3))
		require.ErrorIs(t, err, errs.ErrInvalidWindowSpec)
	})

	t.Run("Invalid axis", func(t *testing.T) {
		_, _, err := Pad(a, 3, WithAxis(1))
		require.ErrorIs(t, err, errs.ErrInvalidAxis)
	})

	t.Run("Unknown policy", func(t *testing.T) {
		_, _, err := Pad(a, 3, WithPadPolicy(PadPolicy(99)))
		require.ErrorIs(t, err, errs.ErrUnsupportedPadPolicy)
	})
}

func TestParsePadPolicy(t *testing.T) {
	for _, name := range []string{"masked", "edge", "reflect", "symmetric", "wrap", "constant", "none"} {
		p, err := ParsePadPolicy(name)
		require.NoError(t, err)
		require.Equal(t, name, p.String())
	}

	_, err := ParsePadPolicy("bogus")
	require.ErrorIs(t, err, errs.ErrUnsupportedPadPolicy)
}
