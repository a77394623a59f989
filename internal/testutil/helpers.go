// Package testutil provides reusable test helper functions for spline tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// ExactTolerance suits variants whose segment model passes exactly
	// through the control points.
	ExactTolerance = 1e-12

	// SolveTolerance suits variants whose coefficients come from a global
	// numeric solve.
	SolveTolerance = 1e-9
)

// Vec constrains helpers to the engine's fixed-capacity vector type without
// importing it (the root package imports this one from its tests).
type Vec interface {
	~[5]float64
}

// AssertVector verifies the first terms components of got against want.
func AssertVector[V Vec](t *testing.T, want, got V, terms int, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for k := 0; k < terms; k++ {
		if !assert.InDelta(t, want[k], got[k], tolerance,
			"component %d: got %v, want %v", k, got[k], want[k]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no active component is NaN or Inf.
func AssertNoNaNOrInf[V Vec](t *testing.T, v V, terms int, msgAndArgs ...any) bool {
	t.Helper()
	for k := 0; k < terms; k++ {
		if math.IsNaN(v[k]) {
			return assert.Fail(t, "found NaN", "component %d is NaN", k)
		}
		if math.IsInf(v[k], 0) {
			return assert.Fail(t, "found Inf", "component %d is Inf", k)
		}
	}
	return true
}

// AssertAllInRange verifies that every active component of every sample lies
// within [minVal, maxVal].
func AssertAllInRange[V Vec](t *testing.T, samples []V, terms int, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range samples {
		for k := 0; k < terms; k++ {
			if v[k] < minVal || v[k] > maxVal {
				return assert.Fail(t, "value out of range",
					"sample %d component %d = %f is outside [%f, %f]",
					i, k, v[k], minVal, maxVal)
			}
		}
	}
	return true
}

// AssertNotNear verifies that got lies further than delta from unwanted.
func AssertNotNear(t *testing.T, unwanted, got, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	if math.Abs(got-unwanted) <= delta {
		return assert.Fail(t, "values are too close",
			"got %v, within %v of unwanted %v", got, delta, unwanted)
	}
	return true
}

// MustPanic runs fn and reports whether it panicked.
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			assert.Fail(t, "expected panic")
		}
	}()
	fn()
}
