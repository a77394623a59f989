package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-12

func TestPowers4(t *testing.T) {
	tests := []struct {
		x    float64
		want [4]float64
	}{
		{0, [4]float64{1, 0, 0, 0}},
		{1, [4]float64{1, 1, 1, 1}},
		{2, [4]float64{1, 2, 4, 8}},
		{-0.5, [4]float64{1, -0.5, 0.25, -0.125}},
	}
	for _, tt := range tests {
		got := Powers4(tt.x)
		for i := range got {
			assert.InDelta(t, tt.want[i], got[i], tolerance, "x=%v power %d", tt.x, i)
		}
	}
}

func TestHorner(t *testing.T) {
	// 2 - x + 3x² at a few points, against direct evaluation.
	c := []float64{2, -1, 3}
	for _, x := range []float64{-2, -0.5, 0, 0.25, 1, 3} {
		want := 2 - x + 3*x*x
		assert.InDelta(t, want, Horner(c, x), tolerance, "x=%v", x)
	}

	assert.Zero(t, Horner(nil, 5))
	assert.Equal(t, 7.0, Horner([]float64{7}, 5))
}

func TestHornerMatchesPowers4(t *testing.T) {
	c := []float64{1, -2, 0.5, 4}
	for _, x := range []float64{-1.5, 0, 0.3, 2} {
		pow := Powers4(x)
		direct := c[0]*pow[0] + c[1]*pow[1] + c[2]*pow[2] + c[3]*pow[3]
		assert.InDelta(t, direct, Horner(c, x), tolerance, "x=%v", x)
	}
}

func TestHermiteBasis(t *testing.T) {
	// End conditions pin the curve to values and tangents.
	h00, h10, h01, h11 := HermiteBasis(0)
	assert.InDelta(t, 1.0, h00, tolerance)
	assert.InDelta(t, 0.0, h10, tolerance)
	assert.InDelta(t, 0.0, h01, tolerance)
	assert.InDelta(t, 0.0, h11, tolerance)

	h00, h10, h01, h11 = HermiteBasis(1)
	assert.InDelta(t, 0.0, h00, tolerance)
	assert.InDelta(t, 0.0, h10, tolerance)
	assert.InDelta(t, 1.0, h01, tolerance)
	assert.InDelta(t, 0.0, h11, tolerance)

	// The value weights partition unity everywhere.
	for _, x := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		h00, _, h01, _ = HermiteBasis(x)
		assert.InDelta(t, 1.0, h00+h01, tolerance, "t=%v", x)
	}
}
