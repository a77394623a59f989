package spline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spline "github.com/tphakala/go-spline"
	"github.com/tphakala/go-spline/internal/testutil"
)

// buildPlain inserts plain (par, value) pairs and fails the test on error.
func buildPlain(t *testing.T, kind spline.Kind, pars []float64, values [][]float64) spline.Spline {
	t.Helper()
	s, err := spline.New(kind)
	require.NoError(t, err)
	for i := range pars {
		require.NoError(t, spline.Insert(s, pars[i], values[i]))
	}
	return s
}

func TestLinear_InterpolatesControlPoints(t *testing.T) {
	pars := []float64{0, 1, 2}
	values := [][]float64{{0, 0}, {1, 2}, {4, 8}}
	s := buildPlain(t, spline.Linear, pars, values)

	for i, p := range pars {
		v, terms, err := spline.Evaluate(s, p)
		require.NoError(t, err)
		assert.Equal(t, 2, terms)
		want := spline.Vector{values[i][0], values[i][1]}
		testutil.AssertVector(t, want, v, terms, testutil.ExactTolerance)
	}
}

func TestLinear_BoundaryExtrapolation(t *testing.T) {
	s := buildPlain(t, spline.Linear,
		[]float64{0, 1, 2},
		[][]float64{{0, 0}, {1, 2}, {4, 8}})

	tests := []struct {
		name string
		p    float64
		want spline.Vector
	}{
		{"below_first_segment_slope", -1, spline.Vector{-1, -2}},
		{"above_last_segment_slope", 3, spline.Vector{7, 14}},
		{"interior", 1.5, spline.Vector{2.5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, terms, err := spline.Evaluate(s, tt.p)
			require.NoError(t, err)
			testutil.AssertVector(t, tt.want, v, terms, testutil.ExactTolerance)
		})
	}
}

func TestLinear_DuplicateParameter(t *testing.T) {
	s := buildPlain(t, spline.Linear,
		[]float64{0.5, 0.5},
		[][]float64{{1, 1}, {3, 3}})

	v, terms, err := spline.Evaluate(s, 0.5)
	require.NoError(t, err)
	testutil.AssertNoNaNOrInf(t, v, terms)
	// Zero-width segments resolve to the later entry.
	testutil.AssertVector(t, spline.Vector{3, 3}, v, terms, testutil.ExactTolerance)
}

func TestLinear_SingleEntry(t *testing.T) {
	s := buildPlain(t, spline.Linear, []float64{1}, [][]float64{{2, 4}})
	v, terms, err := spline.Evaluate(s, -10)
	require.NoError(t, err)
	testutil.AssertVector(t, spline.Vector{2, 4}, v, terms, testutil.ExactTolerance)
}

func TestLinear_NoEntries(t *testing.T) {
	s, err := spline.New(spline.Linear)
	require.NoError(t, err)
	_, _, err = spline.Evaluate(s, 0)
	assert.ErrorIs(t, err, spline.ErrNoEntries)
}

func TestLinear_ReversedInsertionMatches(t *testing.T) {
	pars := []float64{0, 1, 2}
	values := [][]float64{{0, 0}, {1, 2}, {4, 8}}
	asc := buildPlain(t, spline.Linear, pars, values)
	desc := buildPlain(t, spline.Linear,
		[]float64{2, 1, 0},
		[][]float64{{4, 8}, {1, 2}, {0, 0}})

	for _, p := range []float64{0.25, 0.5, 1.5, 1.75} {
		va, terms, err := spline.Evaluate(asc, p)
		require.NoError(t, err)
		vd, _, err := spline.Evaluate(desc, p)
		require.NoError(t, err)
		testutil.AssertVector(t, va, vd, terms, testutil.ExactTolerance)
	}
}

func TestLinear_TermsFollowFirstEntry(t *testing.T) {
	s, err := spline.New(spline.Linear)
	require.NoError(t, err)
	require.NoError(t, spline.Insert(s, 0, []float64{1, 2, 3}))
	require.NoError(t, spline.Insert(s, 1, []float64{4, 5, 6}))

	_, terms, err := spline.Evaluate(s, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 3, terms)

	err = spline.Insert(s, 2, []float64{7, 8})
	assert.ErrorIs(t, err, spline.ErrBadDimension)
}

func TestLinear_DimensionLimits(t *testing.T) {
	s, err := spline.New(spline.Linear)
	require.NoError(t, err)
	assert.ErrorIs(t, spline.Insert(s, 0, []float64{1}), spline.ErrBadDimension)
	assert.ErrorIs(t, spline.Insert(s, 0, []float64{1, 2, 3, 4, 5, 6}), spline.ErrBadDimension)
	assert.NoError(t, spline.Insert(s, 0, []float64{1, 2, 3, 4, 5}))
}
