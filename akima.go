package spline

import (
	"math"

	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-spline/internal/mathutil"
)

// akimaSpline implements Akima's 1970 interpolation: per-point slopes are a
// weighted average of neighboring finite differences, which suppresses the
// overshoot a global cubic produces near abrupt changes. Per-segment cubic
// coefficients are cached in powers of the local offset and evaluated with
// the same four-coefficient dot product as the SOR variant.
type akimaSpline struct {
	store

	// coef[i*terms+k]: coefficients of component k over segment i, in
	// ascending powers of (p - par[i]).
	coef [][cubicCoeffs]float64
}

func (s *akimaSpline) Extension() ExtensionKind { return ExtensionNone }

func (s *akimaSpline) Clone() Spline {
	out := &akimaSpline{}
	s.cloneInto(&out.store)
	return out
}

func (s *akimaSpline) Evaluate(p float64) (Vector, int, error) {
	if err := s.evalCheck(minEntriesWindow); err != nil {
		return Vector{}, 0, err
	}
	e := s.entries
	if len(e) == 1 {
		return e[0].Vec, s.terms, nil
	}
	s.ensure(s.precompute)

	i := s.findSegment(p)
	if e[i+1].Par == e[i].Par {
		return e[i+1].Vec, s.terms, nil
	}
	pow := mathutil.Powers4(p - e[i].Par)
	var v Vector
	for k := 0; k < s.terms; k++ {
		v[k] = f64.DotProductUnsafe(s.coef[i*s.terms+k][:], pow[:])
	}
	return v, s.terms, nil
}

// precompute selects Akima slopes and derives per-segment cubics. The
// finite-difference sequence is extended by two quadratic phantom slopes on
// each side so every real point has the four differences the weighting
// needs. Zero-width segments keep a constant model; evaluation resolves
// them to the later entry anyway.
func (s *akimaSpline) precompute() {
	e := s.entries
	n := len(e)
	s.coef = make([][cubicCoeffs]float64, (n-1)*s.terms)

	h := make([]float64, n-1)
	for i := range h {
		h[i] = e[i+1].Par - e[i].Par
	}

	// ext holds the extended difference sequence: ext[i+2] is the slope of
	// segment i; two phantom slopes on each side.
	ext := make([]float64, n+3)
	slope := make([]float64, n)
	for k := 0; k < s.terms; k++ {
		for i := 0; i < n-1; i++ {
			if h[i] == 0 {
				ext[i+2] = 0
				continue
			}
			ext[i+2] = (e[i+1].Vec[k] - e[i].Vec[k]) / h[i]
		}
		ext[1] = 2*ext[2] - ext[3]
		ext[0] = 2*ext[1] - ext[2]
		ext[n+1] = 2*ext[n] - ext[n-1]
		ext[n+2] = 2*ext[n+1] - ext[n]

		for i := 0; i < n; i++ {
			// Akima weights: differences further along pull the slope
			// toward the nearer central differences.
			w1 := math.Abs(ext[i+3] - ext[i+2])
			w2 := math.Abs(ext[i+1] - ext[i])
			if w1+w2 == 0 {
				slope[i] = 0.5 * (ext[i+1] + ext[i+2])
				continue
			}
			slope[i] = (w1*ext[i+1] + w2*ext[i+2]) / (w1 + w2)
		}

		for i := 0; i < n-1; i++ {
			c := &s.coef[i*s.terms+k]
			if h[i] == 0 {
				*c = [cubicCoeffs]float64{e[i+1].Vec[k], 0, 0, 0}
				continue
			}
			d := ext[i+2]
			c[0] = e[i].Vec[k]
			c[1] = slope[i]
			c[2] = (3*d - 2*slope[i] - slope[i+1]) / h[i]
			c[3] = (slope[i] + slope[i+1] - 2*d) / (h[i] * h[i])
		}
	}
}
