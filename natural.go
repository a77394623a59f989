package spline

import "gonum.org/v1/gonum/mat"

// naturalSpline is the global natural cubic spline: second-derivative
// continuity at every interior point and zero second derivative at both
// ends. The second derivatives are found by solving one tridiagonal system
// per vector component and cached until the next insertion.
type naturalSpline struct {
	store

	// y2 holds the cached second derivative of each component at each entry.
	y2 [][MaxTerms]float64
}

func (s *naturalSpline) Extension() ExtensionKind { return ExtensionNone }

func (s *naturalSpline) Clone() Spline {
	out := &naturalSpline{}
	s.cloneInto(&out.store)
	return out
}

func (s *naturalSpline) Evaluate(p float64) (Vector, int, error) {
	if err := s.evalCheck(minEntriesLocal); err != nil {
		return Vector{}, 0, err
	}
	e := s.entries
	if len(e) == 1 {
		return e[0].Vec, s.terms, nil
	}
	s.ensure(s.precompute)

	i := s.findSegment(p)
	h := e[i+1].Par - e[i].Par
	if h == 0 {
		return e[i+1].Vec, s.terms, nil
	}
	a := (e[i+1].Par - p) / h
	b := 1 - a
	h2 := h * h * tridiagSixth
	var v Vector
	for k := 0; k < s.terms; k++ {
		v[k] = a*e[i].Vec[k] + b*e[i+1].Vec[k] +
			((a*a*a-a)*s.y2[i][k]+(b*b*b-b)*s.y2[i+1][k])*h2
	}
	return v, s.terms, nil
}

// precompute solves the natural second-derivative system. The end rows are
// fixed at zero, so only the n-2 interior unknowns enter the tridiagonal
// solve. Degenerate stores (any zero-width segment) keep all second
// derivatives at zero, which degrades the curve to piecewise linear instead
// of feeding a singular system to the solver.
func (s *naturalSpline) precompute() {
	e := s.entries
	n := len(e)
	s.y2 = make([][MaxTerms]float64, n)
	if n < 3 {
		return
	}

	h := make([]float64, n-1)
	for i := range h {
		h[i] = e[i+1].Par - e[i].Par
		if h[i] == 0 {
			return
		}
	}

	m := n - 2
	d := make([]float64, m)
	var dl, du []float64
	if m > 1 {
		dl = make([]float64, m-1)
		du = make([]float64, m-1)
	}
	for r := 0; r < m; r++ {
		d[r] = (h[r] + h[r+1]) * tridiagThird
		if r < m-1 {
			du[r] = h[r+1] * tridiagSixth
			dl[r] = h[r+1] * tridiagSixth
		}
	}
	tri := mat.NewTridiag(m, dl, d, du)

	rhs := make([]float64, m)
	sol := mat.NewVecDense(m, nil)
	for k := 0; k < s.terms; k++ {
		for r := 0; r < m; r++ {
			i := r + 1
			rhs[r] = (e[i+1].Vec[k]-e[i].Vec[k])/h[i] -
				(e[i].Vec[k]-e[i-1].Vec[k])/h[i-1]
		}
		if err := tri.SolveVecTo(sol, false, mat.NewVecDense(m, rhs)); err != nil {
			// Near-singular spacing: leave this component linear.
			for i := range s.y2 {
				s.y2[i][k] = 0
			}
			continue
		}
		for r := 0; r < m; r++ {
			s.y2[r+1][k] = sol.AtVec(r)
		}
	}
}
