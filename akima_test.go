package spline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spline "github.com/tphakala/go-spline"
	"github.com/tphakala/go-spline/internal/testutil"
)

func TestAkima_InterpolatesControlPoints(t *testing.T) {
	pars := []float64{0, 1, 2.5, 3, 4}
	values := [][]float64{{0, 2}, {3, -1}, {1, 1}, {-2, 4}, {0, 0}}
	s := buildPlain(t, spline.Akima, pars, values)

	for i, p := range pars {
		v, terms, err := spline.Evaluate(s, p)
		require.NoError(t, err)
		want := spline.Vector{values[i][0], values[i][1]}
		testutil.AssertVector(t, want, v, terms, testutil.SolveTolerance,
			"at control point %d", i)
	}
}

func TestAkima_ReproducesLine(t *testing.T) {
	pars := []float64{0, 1, 2, 3, 4}
	values := make([][]float64, len(pars))
	for i, x := range pars {
		values[i] = []float64{3*x - 1, -0.5 * x}
	}
	s := buildPlain(t, spline.Akima, pars, values)

	// All finite differences agree, so every selected slope is the line's
	// slope and the cubic terms vanish.
	for _, p := range []float64{0.5, 1.3, 2.5, 3.9} {
		v, terms, err := spline.Evaluate(s, p)
		require.NoError(t, err)
		want := spline.Vector{3*p - 1, -0.5 * p}
		testutil.AssertVector(t, want, v, terms, testutil.SolveTolerance,
			"at p=%v", p)
	}
}

func TestAkima_StepDataDoesNotOvershoot(t *testing.T) {
	pars := []float64{0, 1, 2, 3, 4, 5}
	values := [][]float64{{0, 0}, {0, 0}, {0, 0}, {1, 1}, {1, 1}, {1, 1}}
	s := buildPlain(t, spline.Akima, pars, values)

	// The weighted slope selection zeroes the tangents on the flat runs,
	// which is the classic case a natural cubic rings on.
	samples, terms, err := spline.Sample(s, 0, 5, 201)
	require.NoError(t, err)
	testutil.AssertAllInRange(t, samples, terms, -testutil.SolveTolerance, 1+testutil.SolveTolerance)
}

func TestAkima_TooFewEntries(t *testing.T) {
	s := buildPlain(t, spline.Akima,
		[]float64{0, 1},
		[][]float64{{0, 0}, {1, 1}})

	_, _, err := spline.Evaluate(s, 0.5)
	assert.ErrorIs(t, err, spline.ErrTooFewEntries)
}

func TestAkima_ZeroWidthSegment(t *testing.T) {
	s := buildPlain(t, spline.Akima,
		[]float64{0, 1, 1, 2},
		[][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}})

	v, terms, err := spline.Evaluate(s, 1)
	require.NoError(t, err)
	testutil.AssertNoNaNOrInf(t, v, terms)
	// The zero-width segment resolves to its later entry.
	testutil.AssertVector(t, spline.Vector{2, 2}, v, terms, testutil.ExactTolerance)
}
