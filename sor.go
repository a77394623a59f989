package spline

import (
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-spline/internal/mathutil"
)

// sorSpline precomputes, per segment and per component, the power-basis
// cubic passing exactly through the segment's four-point window. This is the
// interpolation surface-of-revolution profiles use: evaluation is a single
// dot product of the cached coefficients with [1, p, p², p³].
type sorSpline struct {
	store

	// coef[i*terms+k] holds the ascending power-basis coefficients of
	// component k over segment i.
	coef [][cubicCoeffs]float64
}

func (s *sorSpline) Extension() ExtensionKind { return ExtensionNone }

func (s *sorSpline) Clone() Spline {
	out := &sorSpline{}
	s.cloneInto(&out.store)
	return out
}

func (s *sorSpline) Evaluate(p float64) (Vector, int, error) {
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
	pow := mathutil.Powers4(p)
	var v Vector
	for k := 0; k < s.terms; k++ {
		v[k] = f64.DotProductUnsafe(s.coef[i*s.terms+k][:], pow[:])
	}
	return v, s.terms, nil
}

// precompute fits one cubic per (segment, component). Each segment's window
// is the four nearest entries, clamped at the curve ends. Windows whose
// Vandermonde system is singular (duplicate parameters) fall back to the
// segment's linear model.
func (s *sorSpline) precompute() {
	e := s.entries
	n := len(e)
	s.coef = make([][cubicCoeffs]float64, (n-1)*s.terms)

	a := mat.NewDense(windowPoints, windowPoints, nil)
	rhs := mat.NewVecDense(windowPoints, nil)
	sol := mat.NewVecDense(windowPoints, nil)
	var lu mat.LU

	for i := 0; i < n-1; i++ {
		j := i - 1
		if j < 0 {
			j = 0
		}
		if j > n-windowPoints {
			j = n - windowPoints
		}
		for r := 0; r < windowPoints; r++ {
			x := e[j+r].Par
			a.Set(r, 0, 1)
			a.Set(r, 1, x)
			a.Set(r, 2, x*x)
			a.Set(r, 3, x*x*x)
		}
		lu.Factorize(a)
		singular := lu.Cond() > sorCondLimit

		for k := 0; k < s.terms; k++ {
			c := &s.coef[i*s.terms+k]
			if !singular {
				for r := 0; r < windowPoints; r++ {
					rhs.SetVec(r, e[j+r].Vec[k])
				}
				if err := lu.SolveVecTo(sol, false, rhs); err == nil {
					for r := 0; r < cubicCoeffs; r++ {
						c[r] = sol.AtVec(r)
					}
					continue
				}
			}
			s.linearCoef(c, i, k)
		}
	}
}

// linearCoef writes the segment's straight-line model as a degenerate cubic.
func (s *sorSpline) linearCoef(c *[cubicCoeffs]float64, i, k int) {
	e := s.entries
	w := e[i+1].Par - e[i].Par
	if w == 0 {
		*c = [cubicCoeffs]float64{e[i+1].Vec[k], 0, 0, 0}
		return
	}
	slope := (e[i+1].Vec[k] - e[i].Vec[k]) / w
	*c = [cubicCoeffs]float64{e[i].Vec[k] - slope*e[i].Par, slope, 0, 0}
}
