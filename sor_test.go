package spline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spline "github.com/tphakala/go-spline"
	"github.com/tphakala/go-spline/internal/testutil"
)

// cubic evaluates the reference polynomial the SOR fit must reproduce.
func cubic(x float64) (float64, float64) {
	return x*x*x - 2*x*x + x, 0.5*x*x*x + x - 3
}

func TestSOR_ReproducesCubic(t *testing.T) {
	pars := []float64{0, 1, 2, 3, 4}
	values := make([][]float64, len(pars))
	for i, x := range pars {
		a, b := cubic(x)
		values[i] = []float64{a, b}
	}
	s := buildPlain(t, spline.SOR, pars, values)

	// Every four-point window lies on the same cubic, so the per-segment fit
	// recovers it exactly, extrapolation included.
	for _, p := range []float64{-0.5, 0.25, 1.5, 2.5, 3.75, 4.5} {
		v, terms, err := spline.Evaluate(s, p)
		require.NoError(t, err)
		a, b := cubic(p)
		testutil.AssertVector(t, spline.Vector{a, b}, v, terms, testutil.SolveTolerance,
			"at p=%v", p)
	}
}

func TestSOR_InterpolatesControlPoints(t *testing.T) {
	pars := []float64{0, 0.5, 1.5, 2, 3}
	values := [][]float64{{1, 0}, {0, 2}, {3, -1}, {-1, 1}, {2, 2}}
	s := buildPlain(t, spline.SOR, pars, values)

	for i, p := range pars {
		v, terms, err := spline.Evaluate(s, p)
		require.NoError(t, err)
		want := spline.Vector{values[i][0], values[i][1]}
		testutil.AssertVector(t, want, v, terms, testutil.SolveTolerance,
			"at control point %d", i)
	}
}

func TestSOR_DuplicateParameterFallsBackToLinear(t *testing.T) {
	s := buildPlain(t, spline.SOR,
		[]float64{0, 1, 1, 2},
		[][]float64{{0, 0}, {2, 4}, {2, 4}, {6, 8}})

	// The window's Vandermonde system is singular; the bracketing segment
	// keeps its straight-line model.
	v, terms, err := spline.Evaluate(s, 0.5)
	require.NoError(t, err)
	testutil.AssertNoNaNOrInf(t, v, terms)
	testutil.AssertVector(t, spline.Vector{1, 2}, v, terms, testutil.SolveTolerance)
}

func TestSOR_TooFewEntries(t *testing.T) {
	s := buildPlain(t, spline.SOR,
		[]float64{0, 1, 2},
		[][]float64{{0, 0}, {1, 1}, {2, 2}})

	_, _, err := spline.Evaluate(s, 1)
	assert.ErrorIs(t, err, spline.ErrTooFewEntries)
}

func TestSOR_InsertionInvalidatesCache(t *testing.T) {
	pars := []float64{0, 1, 2, 3}
	values := make([][]float64, len(pars))
	for i, x := range pars {
		values[i] = []float64{x, x * x}
	}
	s := buildPlain(t, spline.SOR, pars, values)

	_, _, err := spline.Evaluate(s, 1.5)
	require.NoError(t, err)

	require.NoError(t, spline.Insert(s, 4, []float64{-8, 0}))
	v, terms, err := spline.Evaluate(s, 4)
	require.NoError(t, err)
	testutil.AssertVector(t, spline.Vector{-8, 0}, v, terms, testutil.SolveTolerance)
}
